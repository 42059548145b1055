package repository

import (
	"context"
	"time"

	"coursepilot/internal/model"
)

//go:generate mockery --name FeedRepository

// FeedRepository pulls external feeds and renders them as raw sources the
// extraction pipeline can consume alongside pasted text.
type FeedRepository interface {
	// FetchFeed returns one calendar-feed source covering [from, to).
	FetchFeed(ctx context.Context, from, to time.Time) (model.RawSource, error)
}
