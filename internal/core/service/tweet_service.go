package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/minitweet/api/internal/core/domain"
	"github.com/minitweet/api/internal/core/ports"
)

// TimelineCache abstracts the short-lived timeline cache (Redis). Reads fall
// through to the repository on a miss; writes invalidate the affected user.
type TimelineCache interface {
	Get(ctx context.Context, userID int64) ([]domain.TimelineEntry, bool)
	Set(ctx context.Context, userID int64, entries []domain.TimelineEntry)
	Invalidate(ctx context.Context, userID int64)
}

// TweetService implements posting and timeline aggregation.
type TweetService struct {
	repo  ports.TweetRepository
	cache TimelineCache
	log   zerolog.Logger
}

// NewTweetService builds a TweetService. cache may be nil, which disables
// caching entirely.
func NewTweetService(repo ports.TweetRepository, cache TimelineCache, log zerolog.Logger) *TweetService {
	return &TweetService{repo: repo, cache: cache, log: log}
}

// Post stores a tweet after enforcing the length limit. The limit is checked
// before persistence so an oversized body never reaches the store.
func (s *TweetService) Post(ctx context.Context, authorID int64, body string) (*domain.Tweet, error) {
	if len([]rune(body)) > domain.MaxTweetLength {
		return nil, domain.ErrTweetTooLong
	}

	tweet, err := s.repo.Insert(ctx, authorID, body)
	if err != nil {
		return nil, err
	}

	// The author's own timeline is now stale. Followers' cached timelines are
	// left to expire by TTL; eagerly invalidating them would be fan-out.
	if s.cache != nil {
		s.cache.Invalidate(ctx, authorID)
	}

	s.log.Info().Int64("user_id", authorID).Int64("tweet_id", tweet.ID).Msg("tweet posted")
	return tweet, nil
}

// Timeline returns the user's aggregated timeline, serving from cache when a
// fresh copy exists.
func (s *TweetService) Timeline(ctx context.Context, userID int64) ([]domain.TimelineEntry, error) {
	if s.cache != nil {
		if entries, ok := s.cache.Get(ctx, userID); ok {
			return entries, nil
		}
	}

	entries, err := s.repo.Timeline(ctx, userID)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.Set(ctx, userID, entries)
	}
	return entries, nil
}
