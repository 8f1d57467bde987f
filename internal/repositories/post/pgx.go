package post

import (
	"context"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/orgball2608/forum-tweet-bot/internal/domain"
	"github.com/orgball2608/forum-tweet-bot/internal/repositories"
	"github.com/orgball2608/forum-tweet-bot/pkg/logger"
)

const table = "posts"

var columns = []string{
	"id",
	"guild_id",
	"author_user_id",
	"handle",
	"username",
	"content",
	"COALESCE(image_url, '')",
	"COALESCE(message_id, '')",
	"COALESCE(thread_id, '')",
	"COALESCE(webhook_id, '')",
	"likes_count",
	"replies_count",
	"created_at",
	"updated_at",
}

type Pgx struct {
	pg     *pgxpool.Pool
	logger logger.Logger
}

func NewPgx(pg *pgxpool.Pool, logger logger.Logger) *Pgx {
	return &Pgx{
		pg:     pg,
		logger: logger.WithComponent("PostRepo"),
	}
}

var _ Repository = (*Pgx)(nil)

func (p *Pgx) Create(ctx context.Context, post domain.Post) (*domain.Post, error) {
	now := time.Now()
	post.ID = uuid.NewString()
	post.CreatedAt = now
	post.UpdatedAt = now

	query, args, err := repositories.SqBuilder.
		Insert(table).
		Columns("id", "guild_id", "author_user_id", "handle", "username", "content", "image_url", "created_at", "updated_at").
		Values(post.ID, post.GuildID, post.AuthorUserID, post.Handle, post.Username, post.Content,
			repositories.NullString(post.ImageURL), post.CreatedAt, post.UpdatedAt).
		ToSql()
	if err != nil {
		return nil, repositories.ErrBadQuery
	}

	if _, err := p.pg.Exec(ctx, query, args...); err != nil {
		return nil, err
	}
	return &post, nil
}

func (p *Pgx) GetByID(ctx context.Context, id string) (*domain.Post, error) {
	query, args, err := repositories.SqBuilder.
		Select(columns...).
		From(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, repositories.ErrBadQuery
	}

	return scan(p.pg.QueryRow(ctx, query, args...))
}

func (p *Pgx) MarkDelivered(ctx context.Context, id string, d domain.PostDelivery) error {
	query, args, err := repositories.SqBuilder.
		Update(table).
		Set("message_id", repositories.NullString(d.MessageID)).
		Set("thread_id", repositories.NullString(d.ThreadID)).
		Set("webhook_id", repositories.NullString(d.WebhookID)).
		Set("updated_at", time.Now()).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return repositories.ErrBadQuery
	}

	result, err := p.pg.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (p *Pgx) IncrementLikes(ctx context.Context, id string) (*domain.Post, error) {
	return p.increment(ctx, id, "likes_count")
}

func (p *Pgx) IncrementReplies(ctx context.Context, id string) (*domain.Post, error) {
	return p.increment(ctx, id, "replies_count")
}

func (p *Pgx) increment(ctx context.Context, id, counter string) (*domain.Post, error) {
	query, args, err := repositories.SqBuilder.
		Update(table).
		Set(counter, sq.Expr(counter+" + 1")).
		Set("updated_at", time.Now()).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + repositories.JoinColumns(columns)).
		ToSql()
	if err != nil {
		return nil, repositories.ErrBadQuery
	}

	return scan(p.pg.QueryRow(ctx, query, args...))
}

func scan(row pgx.Row) (*domain.Post, error) {
	var post domain.Post
	err := row.Scan(
		&post.ID,
		&post.GuildID,
		&post.AuthorUserID,
		&post.Handle,
		&post.Username,
		&post.Content,
		&post.ImageURL,
		&post.MessageID,
		&post.ThreadID,
		&post.WebhookID,
		&post.LikesCount,
		&post.RepliesCount,
		&post.CreatedAt,
		&post.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &post, nil
}
