package migrations

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upCreatePostCommentsTable, downCreatePostCommentsTable)
}

func upCreatePostCommentsTable(ctx context.Context, tx *sql.Tx) error {
	query := `
	CREATE TABLE post_comments (
	  id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	  post_id UUID NOT NULL REFERENCES posts(id) ON DELETE CASCADE,
	  user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	  text TEXT NOT NULL,
	  name TEXT NOT NULL,
	  avatar_url TEXT NOT NULL DEFAULT '',
	  created_at TIMESTAMP WITH TIME ZONE DEFAULT now()
	);
	CREATE INDEX idx_post_comments_post_id ON post_comments(post_id);
	`

	_, err := tx.ExecContext(ctx, query)

	if err != nil {
		return err
	}

	return nil
}

func downCreatePostCommentsTable(ctx context.Context, tx *sql.Tx) error {
	query := `DROP TABLE IF EXISTS post_comments;`
	_, err := tx.ExecContext(ctx, query)
	if err != nil {
		return err
	}
	return nil
}
