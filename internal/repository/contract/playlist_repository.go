package contract

import (
	"context"

	"wink-music-be/internal/entity"
	"wink-music-be/internal/repository/specification"

	"github.com/google/uuid"
)

type PlaylistRepository interface {
	// Create stores the playlist and its items.
	Create(ctx context.Context, playlist *entity.Playlist) error
	// FindOne loads the playlist with items ordered by track number.
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Playlist, error)
	// Delete removes the items first, then the playlist.
	Delete(ctx context.Context, id uuid.UUID) error
}
