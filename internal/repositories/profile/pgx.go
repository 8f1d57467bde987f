package profile

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

const table = "profiles"

var columns = []string{
	"id",
	"guild_id",
	"user_id",
	"handle",
	"username",
	"COALESCE(profile_image_url, '')",
	"COALESCE(verification, '')",
	"COALESCE(affiliated_icon_url, '')",
	"created_by",
	"created_at",
}

type PgxRepository struct {
	pool   *pgxpool.Pool
	logger logger.Logger
}

func NewPgxRepository(pool *pgxpool.Pool, logger logger.Logger) *PgxRepository {
	return &PgxRepository{
		pool:   pool,
		logger: logger.WithComponent("ProfileRepo"),
	}
}

var _ Repository = (*PgxRepository)(nil)

func (r *PgxRepository) Upsert(ctx context.Context, p domain.Profile) (*domain.Profile, error) {
	query, args, err := repositories.SqBuilder.
		Insert(table).
		Columns("id", "guild_id", "user_id", "handle", "username", "profile_image_url", "created_by", "created_at").
		Values(uuid.NewString(), p.GuildID, p.UserID, p.Handle, p.Username,
			repositories.NullString(p.ProfileImageURL), p.CreatedBy, time.Now()).
		Suffix(`ON CONFLICT (guild_id, user_id, handle) DO UPDATE SET
			username = EXCLUDED.username,
			profile_image_url = COALESCE(EXCLUDED.profile_image_url, ` + table + `.profile_image_url)
			RETURNING ` + columnList()).
		ToSql()
	if err != nil {
		return nil, repositories.ErrBadQuery
	}

	return scan(r.pool.QueryRow(ctx, query, args...))
}

func (r *PgxRepository) GetByID(ctx context.Context, id string) (*domain.Profile, error) {
	return r.getOne(ctx, sq.Eq{"id": id})
}

func (r *PgxRepository) GetByHandle(ctx context.Context, guildID, userID, handle string) (*domain.Profile, error) {
	return r.getOne(ctx, sq.Eq{"guild_id": guildID, "user_id": userID, "handle": handle})
}

func (r *PgxRepository) FindByHandle(ctx context.Context, guildID, handle string) (*domain.Profile, error) {
	return r.getOne(ctx, sq.Eq{"guild_id": guildID, "handle": handle})
}

func (r *PgxRepository) getOne(ctx context.Context, where sq.Eq) (*domain.Profile, error) {
	query, args, err := repositories.SqBuilder.
		Select(columns...).
		From(table).
		Where(where).
		OrderBy("created_at ASC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, repositories.ErrBadQuery
	}

	return scan(r.pool.QueryRow(ctx, query, args...))
}

func (r *PgxRepository) ListByUser(ctx context.Context, guildID, userID string, limit int) ([]*domain.Profile, error) {
	query, args, err := repositories.SqBuilder.
		Select(columns...).
		From(table).
		Where(sq.Eq{"guild_id": guildID, "user_id": userID}).
		OrderBy("created_at ASC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, repositories.ErrBadQuery
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profiles []*domain.Profile
	for rows.Next() {
		p, err := scan(rows)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return profiles, nil
}

func (r *PgxRepository) CountByUser(ctx context.Context, guildID, userID string) (int, error) {
	query, args, err := repositories.SqBuilder.
		Select("COUNT(*)").
		From(table).
		Where(sq.Eq{"guild_id": guildID, "user_id": userID}).
		ToSql()
	if err != nil {
		return 0, repositories.ErrBadQuery
	}

	var count int
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *PgxRepository) SetVerification(ctx context.Context, filter Filter, v domain.Verification) (int64, error) {
	where := sq.Eq{"guild_id": filter.GuildID}
	if filter.UserID != "" {
		where["user_id"] = filter.UserID
	}
	if filter.Handle != "" {
		where["handle"] = filter.Handle
	}

	query, args, err := repositories.SqBuilder.
		Update(table).
		Set("verification", repositories.NullString(string(v))).
		Where(where).
		ToSql()
	if err != nil {
		return 0, repositories.ErrBadQuery
	}

	result, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

func (r *PgxRepository) SetAffiliatedIcon(ctx context.Context, id, iconURL string) error {
	query, args, err := repositories.SqBuilder.
		Update(table).
		Set("affiliated_icon_url", repositories.NullString(iconURL)).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return repositories.ErrBadQuery
	}

	result, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		r.logger.Error("Failed to set affiliated icon", "id", id, "error", err)
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PgxRepository) UpdateProfile(ctx context.Context, id string, u domain.ProfileUpdate) (*domain.Profile, error) {
	if u.Empty() {
		return r.GetByID(ctx, id)
	}

	update := repositories.SqBuilder.
		Update(table).
		Where(sq.Eq{"id": id})
	if u.Username != nil {
		update = update.Set("username", *u.Username)
	}
	if u.ProfileImageURL != nil {
		update = update.Set("profile_image_url", repositories.NullString(*u.ProfileImageURL))
	}

	query, args, err := update.Suffix("RETURNING " + columnList()).ToSql()
	if err != nil {
		return nil, repositories.ErrBadQuery
	}

	return scan(r.pool.QueryRow(ctx, query, args...))
}

func scan(row pgx.Row) (*domain.Profile, error) {
	var (
		p            domain.Profile
		verification string
	)
	err := row.Scan(&p.ID, &p.GuildID, &p.UserID, &p.Handle, &p.Username, &p.ProfileImageURL,
		&verification, &p.AffiliatedIconURL, &p.CreatedBy, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	p.Verification, _ = domain.ParseVerification(verification)
	return &p, nil
}

func columnList() string {
	return repositories.JoinColumns(columns)
}
