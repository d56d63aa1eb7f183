package mysql

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// schemaStatements is the full relational schema. VARCHAR lengths are
// character counts under utf8mb4, so tweets(tweet) enforces the same
// 300-character cap the service layer checks.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id              BIGINT       NOT NULL AUTO_INCREMENT,
		name            VARCHAR(255) NOT NULL,
		email           VARCHAR(255) NOT NULL,
		profile         VARCHAR(2000) NOT NULL DEFAULT '',
		hashed_password VARCHAR(255) NOT NULL,
		created_at      TIMESTAMP    NOT NULL DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (id),
		UNIQUE KEY uq_users_email (email)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS tweets (
		id         BIGINT       NOT NULL AUTO_INCREMENT,
		user_id    BIGINT       NOT NULL,
		tweet      VARCHAR(300) NOT NULL,
		created_at TIMESTAMP    NOT NULL DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (id),
		KEY idx_tweets_user_id (user_id),
		CONSTRAINT fk_tweets_user FOREIGN KEY (user_id) REFERENCES users (id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS users_follow_list (
		user_id        BIGINT NOT NULL,
		follow_user_id BIGINT NOT NULL,
		PRIMARY KEY (user_id, follow_user_id),
		CONSTRAINT fk_follow_follower FOREIGN KEY (user_id) REFERENCES users (id),
		CONSTRAINT fk_follow_followee FOREIGN KEY (follow_user_id) REFERENCES users (id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
}

// EnsureSchema creates the tables if they do not exist. Run once at startup.
func EnsureSchema(ctx context.Context, db *sqlx.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
