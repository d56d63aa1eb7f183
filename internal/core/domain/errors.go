package domain

import "errors"

var (
	// ErrUserNotFound is returned when a user id or email matches no account.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailTaken is returned on signup when the email is already registered.
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials covers both unknown email and password mismatch on
	// login, so the two cases are indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrTweetTooLong is returned when a tweet body exceeds MaxTweetLength.
	ErrTweetTooLong = errors.New("tweet exceeds maximum length")

	// ErrSelfFollow is returned when a user attempts to follow themselves.
	ErrSelfFollow = errors.New("cannot follow yourself")
)
