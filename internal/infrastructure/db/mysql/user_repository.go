package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	gomysql "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"

	"github.com/minitweet/api/internal/core/domain"
)

// MySQL server error numbers surfaced as domain errors.
const (
	errDuplicateEntry  = 1062
	errNoReferencedRow = 1452
)

type UserRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx, `
		INSERT INTO users (name, email, profile, hashed_password)
		VALUES (?, ?, ?, ?)`,
		user.Name, user.Email, user.Profile, user.PasswordHash)
	if err != nil {
		if isMySQLError(err, errDuplicateEntry) {
			return nil, domain.ErrEmailTaken
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("insert user: %w", err)
	}

	// fetch back to get the stored timestamp
	return r.FindByID(ctx, id)
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var user domain.User
	err := r.db.GetContext(ctx, &user, `
		SELECT id, name, email, profile, hashed_password, created_at
		FROM users
		WHERE email = ?`, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return &user, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var user domain.User
	err := r.db.GetContext(ctx, &user, `
		SELECT id, name, email, profile, hashed_password, created_at
		FROM users
		WHERE id = ?`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by id: %w", err)
	}
	return &user, nil
}

// InsertFollow records a follow edge. Re-following hits the composite
// primary key and is treated as a no-op. INSERT IGNORE cannot be used here:
// IGNORE also downgrades the followee foreign key failure to a warning, and
// an unknown followee must surface as an error.
func (r *UserRepository) InsertFollow(ctx context.Context, followerID, followeeID int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO users_follow_list (user_id, follow_user_id)
		VALUES (?, ?)`, followerID, followeeID)
	if err != nil {
		return followInsertError(err)
	}
	return nil
}

// followInsertError maps follow-insert failures: a duplicate primary key is
// an already-existing edge, a failed foreign key check means the followee
// does not exist.
func followInsertError(err error) error {
	switch {
	case isMySQLError(err, errDuplicateEntry):
		return nil
	case isMySQLError(err, errNoReferencedRow):
		return domain.ErrUserNotFound
	default:
		return fmt.Errorf("insert follow: %w", err)
	}
}

func (r *UserRepository) DeleteFollow(ctx context.Context, followerID, followeeID int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.db.ExecContext(ctx, `
		DELETE FROM users_follow_list
		WHERE user_id = ? AND follow_user_id = ?`, followerID, followeeID)
	if err != nil {
		return fmt.Errorf("delete follow: %w", err)
	}
	return nil
}

func (r *UserRepository) ListFollowees(ctx context.Context, followerID int64) ([]int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	ids := make([]int64, 0)
	err := r.db.SelectContext(ctx, &ids, `
		SELECT follow_user_id
		FROM users_follow_list
		WHERE user_id = ?`, followerID)
	if err != nil {
		return nil, fmt.Errorf("list followees: %w", err)
	}
	return ids, nil
}

func isMySQLError(err error, number uint16) bool {
	var me *gomysql.MySQLError
	return errors.As(err, &me) && me.Number == number
}
