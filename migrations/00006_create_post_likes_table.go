package migrations

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upCreatePostLikesTable, downCreatePostLikesTable)
}

func upCreatePostLikesTable(ctx context.Context, tx *sql.Tx) error {
	// The unique pair enforces the at-most-one-like-per-user invariant even
	// under concurrent requests.
	query := `
	CREATE TABLE post_likes (
	  post_id UUID NOT NULL REFERENCES posts(id) ON DELETE CASCADE,
	  user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	  created_at TIMESTAMP WITH TIME ZONE DEFAULT now(),
	  UNIQUE (post_id, user_id)
	);
	`

	_, err := tx.ExecContext(ctx, query)

	if err != nil {
		return err
	}

	return nil
}

func downCreatePostLikesTable(ctx context.Context, tx *sql.Tx) error {
	query := `DROP TABLE IF EXISTS post_likes;`
	_, err := tx.ExecContext(ctx, query)
	if err != nil {
		return err
	}
	return nil
}
