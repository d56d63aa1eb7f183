package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/minitweet/api/internal/core/domain"
	"github.com/minitweet/api/internal/core/ports"
)

// UserService implements signup, login, token issuance, and the follow graph.
type UserService struct {
	repo      ports.UserRepository
	cache     TimelineCache
	jwtSecret string
	tokenTTL  time.Duration
	log       zerolog.Logger
}

// NewUserService builds a UserService. cache may be nil, which disables
// timeline invalidation. A non-positive tokenTTL falls back to 24 hours.
func NewUserService(repo ports.UserRepository, cache TimelineCache, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) *UserService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &UserService{
		repo:      repo,
		cache:     cache,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
		log:       log,
	}
}

// Register hashes the password and stores the new account. The plaintext
// password never leaves this method.
func (s *UserService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	if in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Name:         in.Name,
		Email:        in.Email,
		Profile:      in.Profile,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.Info().Int64("user_id", created.ID).Str("email", created.Email).Msg("user registered")
	return created, nil
}

// Login verifies the credentials and returns a signed access token. Unknown
// email and wrong password are both reported as ErrInvalidCredentials.
func (s *UserService) Login(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.IssueToken(user.ID)
	if err != nil {
		return nil, err
	}

	return &ports.LoginResult{UserID: user.ID, AccessToken: token}, nil
}

// IssueToken signs a stateless session token carrying the user id and an
// expiry. The token is never persisted; the auth middleware verifies it by
// signature and expiry alone.
func (s *UserService) IssueToken(userID int64) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

func (s *UserService) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

// Follow records a follow edge. Following the same user twice is a no-op;
// following yourself is rejected.
func (s *UserService) Follow(ctx context.Context, followerID, followeeID int64) error {
	if followerID == followeeID {
		return domain.ErrSelfFollow
	}

	if err := s.repo.InsertFollow(ctx, followerID, followeeID); err != nil {
		return err
	}

	if s.cache != nil {
		s.cache.Invalidate(ctx, followerID)
	}

	s.log.Info().Int64("follower", followerID).Int64("followee", followeeID).Msg("follow edge added")
	return nil
}

// Unfollow removes a follow edge if present.
func (s *UserService) Unfollow(ctx context.Context, followerID, followeeID int64) error {
	if err := s.repo.DeleteFollow(ctx, followerID, followeeID); err != nil {
		return err
	}

	if s.cache != nil {
		s.cache.Invalidate(ctx, followerID)
	}

	s.log.Info().Int64("follower", followerID).Int64("followee", followeeID).Msg("follow edge removed")
	return nil
}

func (s *UserService) ListFollowees(ctx context.Context, followerID int64) ([]int64, error) {
	return s.repo.ListFollowees(ctx, followerID)
}
