package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreatePlaylistRequest struct {
	SessionId uuid.UUID `json:"sessionId" validate:"required"`
	Name      string    `json:"name" validate:"max=255"`
}

type PlaylistItemResponse struct {
	Id         uuid.UUID `json:"id"`
	SongId     *int64    `json:"songId"`
	Title      string    `json:"title"`
	Artist     string    `json:"artist"`
	AlbumCover string    `json:"albumCover"`
	PreviewUrl string    `json:"previewUrl"`
	TrackNo    int       `json:"trackNo"`
}

type PlaylistResponse struct {
	Id        uuid.UUID              `json:"id"`
	SessionId *uuid.UUID             `json:"sessionId"`
	Name      string                 `json:"name"`
	CreatedAt time.Time              `json:"createdAt"`
	Items     []PlaylistItemResponse `json:"items"`
}
