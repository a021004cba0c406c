package migrations

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upCreateProfilesTable, downCreateProfilesTable)
}

func upCreateProfilesTable(ctx context.Context, tx *sql.Tx) error {
	query := `
	CREATE TABLE profiles (
	  id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	  user_id UUID UNIQUE NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	  company TEXT,
	  website TEXT,
	  location TEXT,
	  status TEXT NOT NULL,
	  bio TEXT,
	  github_username TEXT,
	  skills JSONB NOT NULL DEFAULT '[]'::jsonb,
	  youtube TEXT,
	  twitter TEXT,
	  facebook TEXT,
	  linkedin TEXT,
	  instagram TEXT,
	  created_at TIMESTAMP WITH TIME ZONE DEFAULT now(),
	  updated_at TIMESTAMP WITH TIME ZONE DEFAULT now()
	);
	`

	_, err := tx.ExecContext(ctx, query)

	if err != nil {
		return err
	}

	return nil
}

func downCreateProfilesTable(ctx context.Context, tx *sql.Tx) error {
	query := `DROP TABLE IF EXISTS profiles;`
	_, err := tx.ExecContext(ctx, query)
	if err != nil {
		return err
	}
	return nil
}
