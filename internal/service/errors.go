package service

import "errors"

var (
	ErrSessionNotFound        = errors.New("chat session not found")
	ErrRecommendationNotFound = errors.New("recommendation not found")
	ErrPlaylistNotFound       = errors.New("playlist not found")
)
