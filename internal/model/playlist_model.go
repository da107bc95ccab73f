package model

import (
	"time"

	"github.com/google/uuid"
)

type Playlist struct {
	Id        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	SessionId *uuid.UUID `gorm:"type:uuid;index"`
	Name      string     `gorm:"type:varchar(255);not null"`
	CreatedAt time.Time  `gorm:"not null"`
}

func (Playlist) TableName() string {
	return "playlists"
}

type PlaylistItem struct {
	Id         uuid.UUID `gorm:"type:uuid;primaryKey"`
	PlaylistId uuid.UUID `gorm:"type:uuid;not null;index"`
	SongId     *int64
	SongTitle  string `gorm:"type:varchar(255);not null"`
	Artist     string `gorm:"type:varchar(255);not null"`
	AlbumCover string `gorm:"type:text"`
	PreviewUrl string `gorm:"type:text"`
	TrackNo    int    `gorm:"not null"`
}

func (PlaylistItem) TableName() string {
	return "playlist_items"
}
