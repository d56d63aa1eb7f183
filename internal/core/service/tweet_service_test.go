package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/minitweet/api/internal/core/domain"
)

type stubTweetRepo struct {
	tweets        []domain.Tweet
	timelines     map[int64][]domain.TimelineEntry
	timelineCalls int
	nextID        int64
}

func newStubTweetRepo() *stubTweetRepo {
	return &stubTweetRepo{timelines: make(map[int64][]domain.TimelineEntry)}
}

func (r *stubTweetRepo) Insert(_ context.Context, authorID int64, body string) (*domain.Tweet, error) {
	r.nextID++
	tweet := domain.Tweet{
		ID:        r.nextID,
		UserID:    authorID,
		Body:      body,
		CreatedAt: time.Now().UTC(),
	}
	r.tweets = append(r.tweets, tweet)
	return &tweet, nil
}

func (r *stubTweetRepo) Timeline(_ context.Context, userID int64) ([]domain.TimelineEntry, error) {
	r.timelineCalls++
	return r.timelines[userID], nil
}

// cannedCache serves a fixed timeline for one user and records writes.
type cannedCache struct {
	userID      int64
	entries     []domain.TimelineEntry
	sets        map[int64][]domain.TimelineEntry
	invalidated []int64
}

func newCannedCache() *cannedCache {
	return &cannedCache{sets: make(map[int64][]domain.TimelineEntry)}
}

func (c *cannedCache) Get(_ context.Context, userID int64) ([]domain.TimelineEntry, bool) {
	if userID == c.userID && c.entries != nil {
		return c.entries, true
	}
	return nil, false
}

func (c *cannedCache) Set(_ context.Context, userID int64, entries []domain.TimelineEntry) {
	c.sets[userID] = entries
}

func (c *cannedCache) Invalidate(_ context.Context, userID int64) {
	c.invalidated = append(c.invalidated, userID)
}

func TestTweetService_Post_AtLimit(t *testing.T) {
	repo := newStubTweetRepo()
	svc := NewTweetService(repo, nil, zerolog.Nop())

	body := strings.Repeat("a", domain.MaxTweetLength)
	tweet, err := svc.Post(context.Background(), 1, body)
	if err != nil {
		t.Fatalf("expected 300-character tweet to succeed: %v", err)
	}
	if tweet.Body != body || tweet.ID == 0 {
		t.Fatalf("unexpected tweet: %+v", tweet)
	}
	if len(repo.tweets) != 1 {
		t.Fatalf("expected 1 persisted tweet, got %d", len(repo.tweets))
	}
}

func TestTweetService_Post_OverLimit(t *testing.T) {
	repo := newStubTweetRepo()
	svc := NewTweetService(repo, nil, zerolog.Nop())

	body := strings.Repeat("a", domain.MaxTweetLength+1)
	if _, err := svc.Post(context.Background(), 1, body); !errors.Is(err, domain.ErrTweetTooLong) {
		t.Fatalf("expected ErrTweetTooLong, got %v", err)
	}
	if len(repo.tweets) != 0 {
		t.Fatalf("oversized tweet must not be persisted, got %d rows", len(repo.tweets))
	}
}

func TestTweetService_Post_CountsRunesNotBytes(t *testing.T) {
	repo := newStubTweetRepo()
	svc := NewTweetService(repo, nil, zerolog.Nop())

	// 300 multibyte characters are within the limit despite being 900 bytes.
	body := strings.Repeat("ä", domain.MaxTweetLength)
	if _, err := svc.Post(context.Background(), 1, body); err != nil {
		t.Fatalf("expected 300 multibyte characters to succeed: %v", err)
	}
}

func TestTweetService_Post_InvalidatesAuthorTimeline(t *testing.T) {
	cache := newCannedCache()
	svc := NewTweetService(newStubTweetRepo(), cache, zerolog.Nop())

	if _, err := svc.Post(context.Background(), 7, "hello"); err != nil {
		t.Fatalf("post: %v", err)
	}
	if len(cache.invalidated) != 1 || cache.invalidated[0] != 7 {
		t.Fatalf("expected author timeline invalidated, got %v", cache.invalidated)
	}
}

func TestTweetService_Timeline_Empty(t *testing.T) {
	svc := NewTweetService(newStubTweetRepo(), nil, zerolog.Nop())

	entries, err := svc.Timeline(context.Background(), 1)
	if err != nil {
		t.Fatalf("timeline: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected empty timeline, got %v", entries)
	}
}

func TestTweetService_Timeline_CacheHitSkipsStore(t *testing.T) {
	repo := newStubTweetRepo()
	cache := newCannedCache()
	cache.userID = 1
	cache.entries = []domain.TimelineEntry{{UserID: 1, Tweet: "cached"}}
	svc := NewTweetService(repo, cache, zerolog.Nop())

	entries, err := svc.Timeline(context.Background(), 1)
	if err != nil {
		t.Fatalf("timeline: %v", err)
	}
	if len(entries) != 1 || entries[0].Tweet != "cached" {
		t.Fatalf("expected cached entries, got %v", entries)
	}
	if repo.timelineCalls != 0 {
		t.Fatalf("cache hit must not reach the store, got %d calls", repo.timelineCalls)
	}
}

func TestTweetService_Timeline_MissPopulatesCache(t *testing.T) {
	repo := newStubTweetRepo()
	repo.timelines[2] = []domain.TimelineEntry{{UserID: 2, Tweet: "fresh"}}
	cache := newCannedCache()
	svc := NewTweetService(repo, cache, zerolog.Nop())

	entries, err := svc.Timeline(context.Background(), 2)
	if err != nil {
		t.Fatalf("timeline: %v", err)
	}
	if len(entries) != 1 || entries[0].Tweet != "fresh" {
		t.Fatalf("unexpected entries: %v", entries)
	}
	if got := cache.sets[2]; len(got) != 1 || got[0].Tweet != "fresh" {
		t.Fatalf("expected cache populated on miss, got %v", cache.sets)
	}
}
