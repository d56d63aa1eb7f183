package ports

import (
	"context"

	"github.com/minitweet/api/internal/core/domain"
)

// RegisterInput carries the signup fields.
type RegisterInput struct {
	Name     string
	Email    string
	Profile  string
	Password string
}

// LoginResult is returned on successful authentication.
type LoginResult struct {
	UserID      int64
	AccessToken string
}

// UserService covers account management and the follow graph.
type UserService interface {
	Register(ctx context.Context, in RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	GetUser(ctx context.Context, id int64) (*domain.User, error)
	Follow(ctx context.Context, followerID, followeeID int64) error
	Unfollow(ctx context.Context, followerID, followeeID int64) error
	ListFollowees(ctx context.Context, followerID int64) ([]int64, error)
}
