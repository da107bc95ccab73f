package entity

import (
	"time"

	"github.com/google/uuid"
)

type Playlist struct {
	Id        uuid.UUID
	SessionId *uuid.UUID
	Name      string
	CreatedAt time.Time
	Items     []*PlaylistItem
}

type PlaylistItem struct {
	Id         uuid.UUID
	PlaylistId uuid.UUID
	SongId     *int64
	SongTitle  string
	Artist     string
	AlbumCover string
	PreviewUrl string
	TrackNo    int
}
