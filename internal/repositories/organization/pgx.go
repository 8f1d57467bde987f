package organization

import (
	"context"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/orgball2608/forum-tweet-bot/internal/domain"
	"github.com/orgball2608/forum-tweet-bot/internal/repositories"
	"github.com/orgball2608/forum-tweet-bot/pkg/logger"
)

const table = "organizations"

var columns = []string{
	"id",
	"guild_id",
	"handler",
	"username",
	"COALESCE(profile_image_url, '')",
	"owner_user_id",
	"admin_user_ids",
	"poster_user_ids",
	"affiliated_handles",
	"COALESCE(verification, '')",
	"created_at",
}

type PgxRepository struct {
	pool   *pgxpool.Pool
	logger logger.Logger
}

func NewPgxRepository(pool *pgxpool.Pool, logger logger.Logger) *PgxRepository {
	return &PgxRepository{
		pool:   pool,
		logger: logger.WithComponent("OrganizationRepo"),
	}
}

var _ Repository = (*PgxRepository)(nil)

func (r *PgxRepository) Create(ctx context.Context, org domain.Organization) (*domain.Organization, error) {
	org.ID = uuid.NewString()
	org.CreatedAt = time.Now()
	if org.AdminUserIDs == nil {
		org.AdminUserIDs = []string{}
	}
	if org.PosterUserIDs == nil {
		org.PosterUserIDs = []string{}
	}
	if org.AffiliatedHandles == nil {
		org.AffiliatedHandles = []string{}
	}

	query, args, err := repositories.SqBuilder.
		Insert(table).
		Columns("id", "guild_id", "handler", "username", "profile_image_url", "owner_user_id",
			"admin_user_ids", "poster_user_ids", "affiliated_handles", "verification", "created_at").
		Values(org.ID, org.GuildID, org.Handler, org.Username, repositories.NullString(org.ProfileImageURL),
			org.OwnerUserID, org.AdminUserIDs, org.PosterUserIDs, org.AffiliatedHandles,
			repositories.NullString(string(org.Verification)), org.CreatedAt).
		ToSql()
	if err != nil {
		return nil, repositories.ErrBadQuery
	}

	if _, err := r.pool.Exec(ctx, query, args...); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == repositories.UniqueViolation {
			return nil, ErrHandlerTaken
		}
		r.logger.Error("Failed to create organization", "handler", org.Handler, "error", err)
		return nil, err
	}

	return &org, nil
}

func (r *PgxRepository) GetByID(ctx context.Context, id string) (*domain.Organization, error) {
	return r.getOne(ctx, sq.Eq{"id": id})
}

func (r *PgxRepository) GetByHandler(ctx context.Context, guildID, handler string) (*domain.Organization, error) {
	return r.getOne(ctx, sq.Eq{"guild_id": guildID, "handler": handler})
}

func (r *PgxRepository) getOne(ctx context.Context, where sq.Eq) (*domain.Organization, error) {
	query, args, err := repositories.SqBuilder.
		Select(columns...).
		From(table).
		Where(where).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, repositories.ErrBadQuery
	}

	return scan(r.pool.QueryRow(ctx, query, args...))
}

func (r *PgxRepository) ListPostable(ctx context.Context, guildID, userID string, limit int) ([]*domain.Organization, error) {
	return r.list(ctx, guildID, sq.Or{
		sq.Eq{"owner_user_id": userID},
		sq.Expr("? = ANY(admin_user_ids)", userID),
		sq.Expr("? = ANY(poster_user_ids)", userID),
	}, limit)
}

func (r *PgxRepository) ListManaged(ctx context.Context, guildID, userID string, limit int) ([]*domain.Organization, error) {
	return r.list(ctx, guildID, sq.Or{
		sq.Eq{"owner_user_id": userID},
		sq.Expr("? = ANY(admin_user_ids)", userID),
	}, limit)
}

func (r *PgxRepository) list(ctx context.Context, guildID string, member sq.Sqlizer, limit int) ([]*domain.Organization, error) {
	query, args, err := repositories.SqBuilder.
		Select(columns...).
		From(table).
		Where(sq.Eq{"guild_id": guildID}).
		Where(member).
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

	var orgs []*domain.Organization
	for rows.Next() {
		org, err := scan(rows)
		if err != nil {
			return nil, err
		}
		orgs = append(orgs, org)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return orgs, nil
}

func (r *PgxRepository) AddPoster(ctx context.Context, id, userID string) error {
	return r.appendUnique(ctx, id, "poster_user_ids", userID)
}

func (r *PgxRepository) AddAffiliate(ctx context.Context, id, handle string) error {
	return r.appendUnique(ctx, id, "affiliated_handles", handle)
}

// appendUnique adds value to an array column unless it is already there.
func (r *PgxRepository) appendUnique(ctx context.Context, id, column, value string) error {
	query, args, err := repositories.SqBuilder.
		Update(table).
		Set(column, sq.Expr("array_append("+column+", ?)", value)).
		Where(sq.Eq{"id": id}).
		Where(sq.Expr("NOT (? = ANY("+column+"))", value)).
		ToSql()
	if err != nil {
		return repositories.ErrBadQuery
	}

	result, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		r.logger.Error("Failed to update organization", "id", id, "column", column, "error", err)
		return err
	}
	if result.RowsAffected() == 0 {
		// either the value is present already or the organization is gone
		_, err := r.GetByID(ctx, id)
		return err
	}
	return nil
}

func (r *PgxRepository) UpdateProfile(ctx context.Context, id string, u domain.ProfileUpdate) (*domain.Organization, error) {
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

	query, args, err := update.Suffix("RETURNING " + repositories.JoinColumns(columns)).ToSql()
	if err != nil {
		return nil, repositories.ErrBadQuery
	}

	return scan(r.pool.QueryRow(ctx, query, args...))
}

func (r *PgxRepository) SetVerification(ctx context.Context, guildID, ownerUserID, handler string, v domain.Verification) (int64, error) {
	where := sq.Eq{"guild_id": guildID}
	if ownerUserID != "" {
		where["owner_user_id"] = ownerUserID
	} else {
		where["handler"] = handler
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

func scan(row pgx.Row) (*domain.Organization, error) {
	var (
		org          domain.Organization
		verification string
	)
	err := row.Scan(
		&org.ID,
		&org.GuildID,
		&org.Handler,
		&org.Username,
		&org.ProfileImageURL,
		&org.OwnerUserID,
		&org.AdminUserIDs,
		&org.PosterUserIDs,
		&org.AffiliatedHandles,
		&verification,
		&org.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	org.Verification, _ = domain.ParseVerification(verification)
	return &org, nil
}
