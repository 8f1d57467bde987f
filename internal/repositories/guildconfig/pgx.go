package guildconfig

import (
	"context"
	"errors"
	"maps"
	"slices"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/orgball2608/forum-tweet-bot/internal/domain"
	"github.com/orgball2608/forum-tweet-bot/internal/repositories"
	"github.com/orgball2608/forum-tweet-bot/pkg/logger"
)

const table = "guild_configs"

type PgxRepository struct {
	pool   *pgxpool.Pool
	logger logger.Logger
}

func NewPgxRepository(pool *pgxpool.Pool, logger logger.Logger) *PgxRepository {
	return &PgxRepository{
		pool:   pool,
		logger: logger.WithComponent("GuildConfigRepo"),
	}
}

var _ Repository = (*PgxRepository)(nil)

func (r *PgxRepository) Get(ctx context.Context, guildID string) (*domain.GuildConfig, error) {
	query, args, err := repositories.SqBuilder.
		Select(
			"guild_id",
			"COALESCE(forum_channel_id, '')",
			"COALESCE(webhook_id, '')",
			"COALESCE(webhook_token, '')",
			"max_accounts_per_user",
		).
		From(table).
		Where(sq.Eq{"guild_id": guildID}).
		ToSql()
	if err != nil {
		return nil, repositories.ErrBadQuery
	}

	var cfg domain.GuildConfig
	err = r.pool.QueryRow(ctx, query, args...).Scan(
		&cfg.GuildID,
		&cfg.ForumChannelID,
		&cfg.WebhookID,
		&cfg.WebhookToken,
		&cfg.MaxAccountsPerUser,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &domain.GuildConfig{
				GuildID:            guildID,
				MaxAccountsPerUser: domain.DefaultMaxAccountsPerUser,
			}, nil
		}
		return nil, err
	}

	return &cfg, nil
}

func (r *PgxRepository) SetForumChannel(ctx context.Context, guildID, channelID string) error {
	// a new forum invalidates the cached webhook
	return r.upsert(ctx, guildID, map[string]any{
		"forum_channel_id": channelID,
		"webhook_id":       nil,
		"webhook_token":    nil,
	})
}

func (r *PgxRepository) SetWebhook(ctx context.Context, guildID, webhookID, webhookToken string) error {
	return r.upsert(ctx, guildID, map[string]any{
		"webhook_id":    repositories.NullString(webhookID),
		"webhook_token": repositories.NullString(webhookToken),
	})
}

func (r *PgxRepository) SetMaxAccounts(ctx context.Context, guildID string, n int) error {
	return r.upsert(ctx, guildID, map[string]any{
		"max_accounts_per_user": n,
	})
}

func (r *PgxRepository) upsert(ctx context.Context, guildID string, values map[string]any) error {
	now := time.Now()

	set := make([]string, 0, len(values)+1)
	for _, column := range slices.Sorted(maps.Keys(values)) {
		set = append(set, column+" = EXCLUDED."+column)
	}
	set = append(set, "updated_at = EXCLUDED.updated_at")

	row := maps.Clone(values)
	row["guild_id"] = guildID
	row["created_at"] = now
	row["updated_at"] = now

	query, args, err := repositories.SqBuilder.
		Insert(table).
		SetMap(row).
		Suffix("ON CONFLICT (guild_id) DO UPDATE SET " + strings.Join(set, ", ")).
		ToSql()
	if err != nil {
		return repositories.ErrBadQuery
	}

	if _, err := r.pool.Exec(ctx, query, args...); err != nil {
		r.logger.Error("Failed to save guild config", "guild_id", guildID, "error", err)
		return err
	}
	return nil
}
