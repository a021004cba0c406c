package migrations

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upCreateExperiencesTable, downCreateExperiencesTable)
}

func upCreateExperiencesTable(ctx context.Context, tx *sql.Tx) error {
	query := `
	CREATE TABLE experiences (
	  id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	  profile_id UUID NOT NULL REFERENCES profiles(id) ON DELETE CASCADE,
	  title TEXT NOT NULL,
	  company TEXT NOT NULL,
	  location TEXT,
	  from_date TIMESTAMP WITH TIME ZONE NOT NULL,
	  to_date TIMESTAMP WITH TIME ZONE,
	  current BOOLEAN NOT NULL DEFAULT false,
	  description TEXT,
	  created_at TIMESTAMP WITH TIME ZONE DEFAULT now()
	);
	CREATE INDEX idx_experiences_profile_id ON experiences(profile_id);
	`

	_, err := tx.ExecContext(ctx, query)

	if err != nil {
		return err
	}

	return nil
}

func downCreateExperiencesTable(ctx context.Context, tx *sql.Tx) error {
	query := `DROP TABLE IF EXISTS experiences;`
	_, err := tx.ExecContext(ctx, query)
	if err != nil {
		return err
	}
	return nil
}
