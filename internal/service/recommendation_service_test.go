package service

import (
	"context"
	"testing"

	"wink-music-be/internal/dto"
	"wink-music-be/internal/model"
	"wink-music-be/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestRankSongs(t *testing.T) {
	id := uuid.New()
	songs := rankSongs(id, []dto.RecommendationSongInput{
		{Title: "A", Rank: intPtr(1)},
		{Title: "B"},
		{Title: "C", Rank: intPtr(5)},
		{Title: "D"},
	})

	require.Len(t, songs, 4)
	got := map[string]int{}
	for _, s := range songs {
		assert.Equal(t, id, s.RecommendationId)
		got[s.Title] = s.RankNo
	}
	assert.Equal(t, map[string]int{"A": 1, "B": 1, "C": 5, "D": 2}, got)
}

func TestSaveRecommendationOrdersByRank(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	session, err := f.chat.StartMySession(ctx, &dto.ChatStartMyRequest{})
	require.NoError(t, err)

	saved, err := f.recommendations.SaveRecommendation(ctx, &dto.SaveRecommendationRequest{
		SessionId: session.SessionId,
		Summary:   "manual pick",
		Recommendations: []dto.RecommendationSongInput{
			{Title: "First", Artist: "X"},
			{Title: "Last", Artist: "Y", Rank: intPtr(5)},
			{Title: "Second", Artist: "Z"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{}, saved.Keywords)

	got, err := f.recommendations.GetRecommendation(ctx, session.SessionId)
	require.NoError(t, err)
	assert.Equal(t, "manual pick", got.Summary)

	var titles []string
	var ranks []int
	for _, s := range got.Songs {
		titles = append(titles, s.Title)
		ranks = append(ranks, s.Rank)
	}
	assert.Equal(t, []string{"First", "Second", "Last"}, titles)
	assert.Equal(t, []int{1, 2, 5}, ranks)
	assert.Equal(t, saved.Songs, got.Songs)
}

func TestSaveRecommendationUpsertKeepsOneBundle(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	session, err := f.chat.StartMySession(ctx, &dto.ChatStartMyRequest{})
	require.NoError(t, err)

	first := &dto.SaveRecommendationRequest{
		SessionId: session.SessionId,
		Summary:   "v1",
		Keywords:  []string{"a"},
		Recommendations: []dto.RecommendationSongInput{
			{Title: "1", Artist: "a"}, {Title: "2", Artist: "b"},
		},
	}
	_, err = f.recommendations.SaveRecommendation(ctx, first)
	require.NoError(t, err)

	second := &dto.SaveRecommendationRequest{SessionId: session.SessionId, Summary: "v2", Keywords: []string{"b"}}
	_, err = f.recommendations.SaveRecommendation(ctx, second)
	require.NoError(t, err)

	assert.Equal(t, int64(1), f.count(t, &model.AiRecommendation{}))
	assert.Equal(t, int64(0), f.count(t, &model.AiRecommendationSong{}))

	got, err := f.recommendations.GetRecommendation(ctx, session.SessionId)
	require.NoError(t, err)
	assert.Equal(t, "v2", got.Summary)
	assert.Equal(t, []string{"b"}, got.Keywords)
	assert.NotNil(t, got.Songs)
	assert.Empty(t, got.Songs)
}

func TestSaveRecommendationRollsBackOnSongFailure(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	session, err := f.chat.StartMySession(ctx, &dto.ChatStartMyRequest{})
	require.NoError(t, err)

	_, err = f.recommendations.SaveRecommendation(ctx, &dto.SaveRecommendationRequest{
		SessionId: session.SessionId,
		Summary:   "v1",
		Keywords:  []string{"a"},
		Recommendations: []dto.RecommendationSongInput{
			{Title: "1", Artist: "a"}, {Title: "2", Artist: "b"},
		},
	})
	require.NoError(t, err)

	broken := NewRecommendationService(failingSongs(f.factory), logger.NewNopLogger())
	_, err = broken.SaveRecommendation(ctx, &dto.SaveRecommendationRequest{
		SessionId:       session.SessionId,
		Summary:         "v2",
		Keywords:        []string{"b"},
		Recommendations: []dto.RecommendationSongInput{{Title: "3", Artist: "c"}},
	})
	require.Error(t, err)

	got, err := f.recommendations.GetRecommendation(ctx, session.SessionId)
	require.NoError(t, err)
	assert.Equal(t, "v1", got.Summary)
	assert.Equal(t, []string{"a"}, got.Keywords)
	require.Len(t, got.Songs, 2)
	assert.Equal(t, "1", got.Songs[0].Title)
	assert.Equal(t, "2", got.Songs[1].Title)
	assert.Equal(t, int64(1), f.count(t, &model.AiRecommendation{}))
	assert.Equal(t, int64(2), f.count(t, &model.AiRecommendationSong{}))
}

func TestSaveRecommendationUnknownSession(t *testing.T) {
	f := newFixture(t)

	_, err := f.recommendations.SaveRecommendation(context.Background(), &dto.SaveRecommendationRequest{
		SessionId: uuid.New(),
		Recommendations: []dto.RecommendationSongInput{
			{Title: "x", Artist: "y"},
		},
	})

	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.Equal(t, int64(0), f.count(t, &model.AiRecommendation{}))
	assert.Equal(t, int64(0), f.count(t, &model.AiRecommendationSong{}))
}

func TestGetRecommendationNotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.recommendations.GetRecommendation(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrRecommendationNotFound)
}
