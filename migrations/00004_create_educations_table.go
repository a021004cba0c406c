package migrations

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upCreateEducationsTable, downCreateEducationsTable)
}

func upCreateEducationsTable(ctx context.Context, tx *sql.Tx) error {
	query := `
	CREATE TABLE educations (
	  id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	  profile_id UUID NOT NULL REFERENCES profiles(id) ON DELETE CASCADE,
	  school TEXT NOT NULL,
	  degree TEXT NOT NULL,
	  field_of_study TEXT NOT NULL,
	  from_date TIMESTAMP WITH TIME ZONE NOT NULL,
	  to_date TIMESTAMP WITH TIME ZONE,
	  current BOOLEAN NOT NULL DEFAULT false,
	  description TEXT,
	  created_at TIMESTAMP WITH TIME ZONE DEFAULT now()
	);
	CREATE INDEX idx_educations_profile_id ON educations(profile_id);
	`

	_, err := tx.ExecContext(ctx, query)

	if err != nil {
		return err
	}

	return nil
}

func downCreateEducationsTable(ctx context.Context, tx *sql.Tx) error {
	query := `DROP TABLE IF EXISTS educations;`
	_, err := tx.ExecContext(ctx, query)
	if err != nil {
		return err
	}
	return nil
}
