package migrations

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upAddVerification, downAddVerification)
}

func upAddVerification(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `
		ALTER TABLE profiles ADD COLUMN verification VARCHAR;
		ALTER TABLE profiles ADD COLUMN affiliated_icon_url TEXT;
		ALTER TABLE organizations ADD COLUMN verification VARCHAR;
	`)
	if err != nil {
		return err
	}
	return nil
}

func downAddVerification(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `
		ALTER TABLE organizations DROP COLUMN verification;
		ALTER TABLE profiles DROP COLUMN affiliated_icon_url;
		ALTER TABLE profiles DROP COLUMN verification;
	`)
	if err != nil {
		return err
	}
	return nil
}
