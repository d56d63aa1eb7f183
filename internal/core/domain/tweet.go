package domain

import "time"

// MaxTweetLength is the hard cap on a tweet body, counted in characters
// (runes), not bytes.
const MaxTweetLength = 300

// Tweet is a single immutable post.
type Tweet struct {
	ID        int64     `json:"id"         db:"id"`
	UserID    int64     `json:"user_id"    db:"user_id"`
	Body      string    `json:"tweet"      db:"tweet"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// TimelineEntry is one row of an aggregated timeline: the union of a user's
// own tweets and their followees' tweets, most recent first.
type TimelineEntry struct {
	UserID int64  `json:"user_id" db:"user_id"`
	Tweet  string `json:"tweet"   db:"tweet"`
}
