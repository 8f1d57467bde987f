package migrations

import (
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigration(upInit, downInit)
}

func upInit(tx *sql.Tx) error {
	_, err := tx.Exec(`
	CREATE TABLE guild_configs (
		guild_id VARCHAR PRIMARY KEY,
		forum_channel_id VARCHAR,
		webhook_id VARCHAR,
		webhook_token VARCHAR,
		max_accounts_per_user INTEGER NOT NULL DEFAULT 1,
		created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
	);

	CREATE TABLE profiles (
		id UUID PRIMARY KEY,
		guild_id VARCHAR NOT NULL,
		user_id VARCHAR NOT NULL,
		handle VARCHAR(32) NOT NULL,
		username VARCHAR(64) NOT NULL,
		profile_image_url TEXT,
		created_by VARCHAR NOT NULL,
		created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),
		UNIQUE (guild_id, user_id, handle)
	);
	CREATE INDEX profiles_guild_handle_idx ON profiles (guild_id, handle);

	CREATE TABLE organizations (
		id UUID PRIMARY KEY,
		guild_id VARCHAR NOT NULL,
		handler VARCHAR NOT NULL,
		username VARCHAR NOT NULL,
		profile_image_url TEXT,
		owner_user_id VARCHAR NOT NULL,
		admin_user_ids TEXT[] NOT NULL DEFAULT '{}',
		poster_user_ids TEXT[] NOT NULL DEFAULT '{}',
		affiliated_handles TEXT[] NOT NULL DEFAULT '{}',
		created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),
		UNIQUE (guild_id, handler)
	);

	CREATE TABLE posts (
		id UUID PRIMARY KEY,
		guild_id VARCHAR NOT NULL,
		author_user_id VARCHAR NOT NULL,
		handle VARCHAR NOT NULL,
		username VARCHAR NOT NULL,
		content TEXT NOT NULL,
		image_url TEXT,
		message_id VARCHAR,
		thread_id VARCHAR,
		webhook_id VARCHAR,
		likes_count INTEGER NOT NULL DEFAULT 0,
		replies_count INTEGER NOT NULL DEFAULT 0,
		created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
	);
	CREATE INDEX posts_guild_handle_idx ON posts (guild_id, handle, created_at DESC);
	`)
	if err != nil {
		return err
	}
	return nil
}

func downInit(tx *sql.Tx) error {
	_, err := tx.Exec(`
	DROP TABLE posts;
	DROP TABLE organizations;
	DROP TABLE profiles;
	DROP TABLE guild_configs;
	`)
	if err != nil {
		return err
	}
	return nil
}
