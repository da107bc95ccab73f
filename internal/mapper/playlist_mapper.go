package mapper

import (
	"wink-music-be/internal/entity"
	"wink-music-be/internal/model"
)

type PlaylistMapper struct{}

func NewPlaylistMapper() *PlaylistMapper {
	return &PlaylistMapper{}
}

func (m *PlaylistMapper) ToEntity(p *model.Playlist, items []*model.PlaylistItem) *entity.Playlist {
	if p == nil {
		return nil
	}
	result := &entity.Playlist{
		Id:        p.Id,
		SessionId: p.SessionId,
		Name:      p.Name,
		CreatedAt: p.CreatedAt,
		Items:     make([]*entity.PlaylistItem, 0, len(items)),
	}
	for _, item := range items {
		result.Items = append(result.Items, m.ItemToEntity(item))
	}
	return result
}

func (m *PlaylistMapper) ToModel(p *entity.Playlist) *model.Playlist {
	if p == nil {
		return nil
	}
	return &model.Playlist{
		Id:        p.Id,
		SessionId: p.SessionId,
		Name:      p.Name,
		CreatedAt: p.CreatedAt,
	}
}

func (m *PlaylistMapper) ItemToEntity(i *model.PlaylistItem) *entity.PlaylistItem {
	return &entity.PlaylistItem{
		Id:         i.Id,
		PlaylistId: i.PlaylistId,
		SongId:     i.SongId,
		SongTitle:  i.SongTitle,
		Artist:     i.Artist,
		AlbumCover: i.AlbumCover,
		PreviewUrl: i.PreviewUrl,
		TrackNo:    i.TrackNo,
	}
}

func (m *PlaylistMapper) ItemToModel(i *entity.PlaylistItem) *model.PlaylistItem {
	return &model.PlaylistItem{
		Id:         i.Id,
		PlaylistId: i.PlaylistId,
		SongId:     i.SongId,
		SongTitle:  i.SongTitle,
		Artist:     i.Artist,
		AlbumCover: i.AlbumCover,
		PreviewUrl: i.PreviewUrl,
		TrackNo:    i.TrackNo,
	}
}
