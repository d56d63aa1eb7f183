package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/minitweet/api/internal/api/middleware"
	"github.com/minitweet/api/internal/core/domain"
)

type stubTweetService struct {
	postFn     func(ctx context.Context, authorID int64, body string) (*domain.Tweet, error)
	timelineFn func(ctx context.Context, userID int64) ([]domain.TimelineEntry, error)
}

func (s *stubTweetService) Post(ctx context.Context, authorID int64, body string) (*domain.Tweet, error) {
	return s.postFn(ctx, authorID, body)
}
func (s *stubTweetService) Timeline(ctx context.Context, userID int64) ([]domain.TimelineEntry, error) {
	return s.timelineFn(ctx, userID)
}

func TestTweetHandler_Post_Success(t *testing.T) {
	stub := &stubTweetService{
		postFn: func(_ context.Context, authorID int64, body string) (*domain.Tweet, error) {
			if authorID != 1 || body != "hello" {
				t.Fatalf("unexpected args: %d %q", authorID, body)
			}
			return &domain.Tweet{ID: 1, UserID: authorID, Body: body}, nil
		},
	}
	h := NewTweetHandler(stub)

	c, rec := newTestContext(http.MethodPost, "/tweet", `{"tweet":"hello"}`)
	c.Set(middleware.ContextUserIDKey, int64(1))
	if err := h.Post(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if rec.Body.String() != "success" {
		t.Fatalf("expected body %q, got %q", "success", rec.Body.String())
	}
}

func TestTweetHandler_Post_OverLimit(t *testing.T) {
	stub := &stubTweetService{
		postFn: func(context.Context, int64, string) (*domain.Tweet, error) {
			return nil, domain.ErrTweetTooLong
		},
	}
	h := NewTweetHandler(stub)

	body := `{"tweet":"` + strings.Repeat("a", 301) + `"}`
	c, rec := newTestContext(http.MethodPost, "/tweet", body)
	c.Set(middleware.ContextUserIDKey, int64(1))
	_ = h.Post(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if rec.Body.String() != "over 300 characters" {
		t.Fatalf("expected body %q, got %q", "over 300 characters", rec.Body.String())
	}
}

func TestTweetHandler_Post_NoAuthClaims(t *testing.T) {
	stub := &stubTweetService{
		postFn: func(context.Context, int64, string) (*domain.Tweet, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewTweetHandler(stub)

	c, _ := newTestContext(http.MethodPost, "/tweet", `{"tweet":"hello"}`)
	err := h.Post(c)
	if err == nil {
		t.Fatalf("expected error without auth claims")
	}
}

func TestTweetHandler_PublicTimeline(t *testing.T) {
	stub := &stubTweetService{
		timelineFn: func(_ context.Context, userID int64) ([]domain.TimelineEntry, error) {
			if userID != 5 {
				t.Fatalf("unexpected user id: %d", userID)
			}
			return []domain.TimelineEntry{
				{UserID: 5, Tweet: "newest"},
				{UserID: 6, Tweet: "older"},
			}, nil
		},
	}
	h := NewTweetHandler(stub)

	c, rec := newTestContext(http.MethodGet, "/timeline/5", "")
	c.SetParamNames("user_id")
	c.SetParamValues("5")
	if err := h.PublicTimeline(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		UserID   int64                  `json:"user_id"`
		Timeline []domain.TimelineEntry `json:"timeline"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.UserID != 5 || len(resp.Timeline) != 2 || resp.Timeline[0].Tweet != "newest" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestTweetHandler_PublicTimeline_EmptyIsArray(t *testing.T) {
	stub := &stubTweetService{
		timelineFn: func(context.Context, int64) ([]domain.TimelineEntry, error) {
			return nil, nil
		},
	}
	h := NewTweetHandler(stub)

	c, rec := newTestContext(http.MethodGet, "/timeline/5", "")
	c.SetParamNames("user_id")
	c.SetParamValues("5")
	if err := h.PublicTimeline(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if !strings.Contains(rec.Body.String(), `"timeline":[]`) {
		t.Fatalf("expected empty timeline array, got %s", rec.Body.String())
	}
}

func TestTweetHandler_PublicTimeline_BadID(t *testing.T) {
	stub := &stubTweetService{
		timelineFn: func(context.Context, int64) ([]domain.TimelineEntry, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewTweetHandler(stub)

	c, rec := newTestContext(http.MethodGet, "/timeline/abc", "")
	c.SetParamNames("user_id")
	c.SetParamValues("abc")
	_ = h.PublicTimeline(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestTweetHandler_OwnTimeline(t *testing.T) {
	stub := &stubTweetService{
		timelineFn: func(_ context.Context, userID int64) ([]domain.TimelineEntry, error) {
			if userID != 9 {
				t.Fatalf("unexpected user id: %d", userID)
			}
			return []domain.TimelineEntry{{UserID: 9, Tweet: "mine"}}, nil
		},
	}
	h := NewTweetHandler(stub)

	c, rec := newTestContext(http.MethodGet, "/timeline", "")
	c.Set(middleware.ContextUserIDKey, int64(9))
	if err := h.OwnTimeline(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"tweet":"mine"`) {
		t.Fatalf("unexpected payload: %s", rec.Body.String())
	}
}
