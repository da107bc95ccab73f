package dto

import (
	"time"

	"github.com/google/uuid"
)

// --- Session start ---

type ChatStartMyRequest struct {
	InputText string   `json:"inputText" validate:"max=2000"`
	ImageUrls []string `json:"imageUrls" validate:"max=10,dive,required,max=2048"`
}

type LocationDTO struct {
	Lat       *float64 `json:"lat" validate:"omitempty,min=-90,max=90"`
	Lng       *float64 `json:"lng" validate:"omitempty,min=-180,max=180"`
	Address   string   `json:"address" validate:"max=500"`
	PlaceName string   `json:"placeName" validate:"max=255"`
}

type NearbyMusicDTO struct {
	SongId *int64 `json:"songId"`
	Title  string `json:"title" validate:"max=255"`
	Artist string `json:"artist" validate:"max=255"`
}

type ChatStartSpaceRequest struct {
	ImageUrl    string           `json:"imageUrl" validate:"max=2048"`
	Location    *LocationDTO     `json:"location"`
	NearbyMusic []NearbyMusicDTO `json:"nearbyMusic" validate:"max=50,dive"`
}

type ChatStartResponse struct {
	SessionId uuid.UUID `json:"sessionId"`
	Kind      string    `json:"kind"`
	Topic     string    `json:"topic"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// --- AI response ---

type AiResponseRequest struct {
	SessionId uuid.UUID `json:"sessionId" validate:"required"`
	InputText string    `json:"inputText" validate:"max=2000"`
	ImageUrls []string  `json:"imageUrls" validate:"max=10,dive,required,max=2048"`
}

type RecommendationDTO struct {
	SongId     *int64 `json:"songId"`
	Title      string `json:"title"`
	Artist     string `json:"artist"`
	AlbumCover string `json:"albumCover"`
	PreviewUrl string `json:"previewUrl"`
}

type AiResponse struct {
	SessionId       uuid.UUID           `json:"sessionId"`
	Topic           string              `json:"topic"`
	Keywords        []string            `json:"keywords"`
	AiMessage       string              `json:"aiMessage"`
	Recommendations []RecommendationDTO `json:"recommendations"`
	Timestamp       time.Time           `json:"timestamp"`
}

// --- History ---

type ChatMessageResponse struct {
	MessageId       uuid.UUID           `json:"messageId"`
	Sender          string              `json:"sender"`
	Text            string              `json:"text"`
	Keywords        []string            `json:"keywords"`
	Recommendations []RecommendationDTO `json:"recommendations"`
	Timestamp       time.Time           `json:"timestamp"`
}

type ChatHistoryResponse struct {
	SessionId uuid.UUID             `json:"sessionId"`
	Kind      string                `json:"kind"`
	Topic     string                `json:"topic"`
	Messages  []ChatMessageResponse `json:"messages"`
}
