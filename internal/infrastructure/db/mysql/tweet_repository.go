package mysql

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/minitweet/api/internal/core/domain"
)

type TweetRepository struct {
	db *sqlx.DB
}

func NewTweetRepository(db *sqlx.DB) *TweetRepository {
	return &TweetRepository{db: db}
}

func (r *TweetRepository) Insert(ctx context.Context, authorID int64, body string) (*domain.Tweet, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx, `
		INSERT INTO tweets (user_id, tweet)
		VALUES (?, ?)`, authorID, body)
	if err != nil {
		return nil, fmt.Errorf("insert tweet: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("insert tweet: %w", err)
	}

	var tweet domain.Tweet
	err = r.db.GetContext(ctx, &tweet, `
		SELECT id, user_id, tweet, created_at
		FROM tweets
		WHERE id = ?`, id)
	if err != nil {
		return nil, fmt.Errorf("insert tweet: fetch back: %w", err)
	}
	return &tweet, nil
}

type timelineRow struct {
	UserID int64  `db:"user_id"`
	Tweet  string `db:"tweet"`
}

// Timeline returns the union of the user's own tweets and their followees'
// tweets, most recent first. Ties on created_at (second resolution) break on
// the monotonically increasing id. The single-table scan cannot produce
// duplicate rows, so no dedup is applied; reposting the same text is a
// distinct tweet.
func (r *TweetRepository) Timeline(ctx context.Context, userID int64) ([]domain.TimelineEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	rows := make([]timelineRow, 0)
	err := r.db.SelectContext(ctx, &rows, `
		SELECT t.user_id, t.tweet
		FROM tweets t
		WHERE t.user_id = ?
		   OR t.user_id IN (
			SELECT follow_user_id
			FROM users_follow_list
			WHERE user_id = ?
		   )
		ORDER BY t.created_at DESC, t.id DESC`, userID, userID)
	if err != nil {
		return nil, fmt.Errorf("timeline: %w", err)
	}

	entries := make([]domain.TimelineEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, domain.TimelineEntry{UserID: row.UserID, Tweet: row.Tweet})
	}
	return entries, nil
}
