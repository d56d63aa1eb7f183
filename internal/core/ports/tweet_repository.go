package ports

import (
	"context"

	"github.com/minitweet/api/internal/core/domain"
)

// TweetRepository defines persistence for tweets and timeline reads.
type TweetRepository interface {
	// Insert stores a tweet with a store-assigned id and timestamp and
	// returns the stored record.
	Insert(ctx context.Context, authorID int64, body string) (*domain.Tweet, error)

	// Timeline returns the deduplicated union of the user's own tweets and
	// their followees' tweets, ordered most recent first.
	Timeline(ctx context.Context, userID int64) ([]domain.TimelineEntry, error)
}
