package constant

const (
	SessionKindMy    = "MY"
	SessionKindSpace = "SPACE"

	SenderUser = "user"
	SenderAi   = "ai"

	// Multiple image references are stored in one column joined by this.
	ImageUrlSeparator = ","

	MySessionCreatedMessage    = "Session created with AI-generated topic."
	SpaceSessionCreatedMessage = "Space session created."

	DegradedTopic     = "AI_RESPONSE_FAILED"
	DegradedKeyword   = "error"
	DegradedAiMessage = "AI 서버와 통신 중 문제가 발생했습니다. 잠시 후 다시 시도해주세요."

	DefaultPlaylistName = "AI Recommendations"
)
