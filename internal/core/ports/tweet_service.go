package ports

import (
	"context"

	"github.com/minitweet/api/internal/core/domain"
)

// TweetService covers posting and timeline aggregation.
type TweetService interface {
	Post(ctx context.Context, authorID int64, body string) (*domain.Tweet, error)
	Timeline(ctx context.Context, userID int64) ([]domain.TimelineEntry, error)
}
