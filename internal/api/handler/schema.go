package handler

import "github.com/minitweet/api/internal/core/domain"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---

type signupRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Profile  string `json:"profile"`
	Password string `json:"password" validate:"required,min=1"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

type tweetRequest struct {
	Tweet string `json:"tweet" validate:"required"`
}

type followRequest struct {
	Follow int64 `json:"follow" validate:"required,gt=0"`
}

type unfollowRequest struct {
	Unfollow int64 `json:"unfollow" validate:"required,gt=0"`
}

// --- Response types ---

// userResponse is the public projection of an account. The password hash is
// deliberately unrepresentable here.
type userResponse struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Profile string `json:"profile"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:      u.ID,
		Name:    u.Name,
		Email:   u.Email,
		Profile: u.Profile,
	}
}

type loginResponse struct {
	UserID      int64  `json:"user_id"`
	AccessToken string `json:"access_token"`
}

type timelineResponse struct {
	UserID   int64                  `json:"user_id"`
	Timeline []domain.TimelineEntry `json:"timeline"`
}
