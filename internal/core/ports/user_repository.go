package ports

import (
	"context"

	"github.com/minitweet/api/internal/core/domain"
)

// UserRepository defines persistence for accounts and the follow graph.
type UserRepository interface {
	// Create inserts the user and returns the stored record with its
	// server-assigned id. Returns domain.ErrEmailTaken when the email is
	// already registered.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)

	// FindByEmail returns domain.ErrUserNotFound when no account matches.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)

	// FindByID returns domain.ErrUserNotFound when no account matches.
	FindByID(ctx context.Context, id int64) (*domain.User, error)

	// InsertFollow records a follow edge. Inserting an existing edge is a
	// no-op. Returns domain.ErrUserNotFound when the followee does not exist.
	InsertFollow(ctx context.Context, followerID, followeeID int64) error

	// DeleteFollow removes a follow edge; absent edges are a no-op.
	DeleteFollow(ctx context.Context, followerID, followeeID int64) error

	// ListFollowees returns the ids the given user follows.
	ListFollowees(ctx context.Context, followerID int64) ([]int64, error)
}
