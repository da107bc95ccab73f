package model

// All lists every table owned by the service, in dependency order.
func All() []interface{} {
	return []interface{}{
		&ChatSession{},
		&SessionContext{},
		&ChatMessage{},
		&AiRecommendation{},
		&AiRecommendationSong{},
		&Playlist{},
		&PlaylistItem{},
	}
}
