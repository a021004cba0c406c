package migrations

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upCreatePostsTable, downCreatePostsTable)
}

func upCreatePostsTable(ctx context.Context, tx *sql.Tx) error {
	query := `
	CREATE TABLE posts (
	  id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	  user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	  text TEXT NOT NULL,
	  name TEXT NOT NULL,
	  avatar_url TEXT NOT NULL DEFAULT '',
	  created_at TIMESTAMP WITH TIME ZONE DEFAULT now()
	);
	CREATE INDEX idx_posts_created_at ON posts(created_at DESC);
	`

	_, err := tx.ExecContext(ctx, query)

	if err != nil {
		return err
	}

	return nil
}

func downCreatePostsTable(ctx context.Context, tx *sql.Tx) error {
	query := `DROP TABLE IF EXISTS posts;`
	_, err := tx.ExecContext(ctx, query)
	if err != nil {
		return err
	}
	return nil
}
