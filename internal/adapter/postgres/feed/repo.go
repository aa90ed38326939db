// Package feed implements the feed record store using PostgreSQL.
package feed

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/babyfeed-backend/internal/adapter/postgres"
	"github.com/heartmarshall/babyfeed-backend/internal/domain"
)

const table = "feeds"

var columns = []string{
	"id", "feed_time", "amount", "wet_diaper", "pooped", "solid_foods", "created_at", "updated_at",
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides feed persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new feed repository. db is normally a *pgxpool.Pool.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// row mirrors the feeds table for pgxscan.
type row struct {
	ID         uuid.UUID `db:"id"`
	FeedTime   time.Time `db:"feed_time"`
	Amount     int       `db:"amount"`
	WetDiaper  bool      `db:"wet_diaper"`
	Pooped     bool      `db:"pooped"`
	SolidFoods []string  `db:"solid_foods"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}

func (r row) toDomain() domain.Feed {
	foods := r.SolidFoods
	if foods == nil {
		foods = []string{}
	}
	return domain.Feed{
		ID:         r.ID,
		FeedTime:   r.FeedTime,
		Amount:     r.Amount,
		WetDiaper:  r.WetDiaper,
		Pooped:     r.Pooped,
		SolidFoods: foods,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// ListInRange returns feeds with start <= feed_time <= end, oldest first.
func (r *Repo) ListInRange(ctx context.Context, start, end time.Time) ([]domain.Feed, error) {
	query := psql.Select(columns...).From(table).
		Where(sq.GtOrEq{"feed_time": start.UTC()}).
		Where(sq.LtOrEq{"feed_time": end.UTC()}).
		OrderBy("feed_time ASC")
	return r.selectMany(ctx, query, "list feeds in range")
}

// ListAll returns every feed, oldest first.
func (r *Repo) ListAll(ctx context.Context) ([]domain.Feed, error) {
	query := psql.Select(columns...).From(table).OrderBy("feed_time ASC")
	return r.selectMany(ctx, query, "list feeds")
}

// ListWithSolidFoods returns feeds that carry at least one solid food, newest first.
func (r *Repo) ListWithSolidFoods(ctx context.Context) ([]domain.Feed, error) {
	query := psql.Select(columns...).From(table).
		Where("cardinality(solid_foods) > 0").
		OrderBy("feed_time DESC")
	return r.selectMany(ctx, query, "list feeds with solid foods")
}

// foodMatch compares a stored element the way domain.NormalizeText does, so
// legacy rows written before normalization are still found.
const foodMatch = `EXISTS (SELECT 1 FROM unnest(solid_foods) AS f WHERE btrim(regexp_replace(lower(f), '\s+', ' ', 'g')) = ?)`

// ListContainingFood returns feeds whose solid foods include name, compared
// after normalization.
func (r *Repo) ListContainingFood(ctx context.Context, name string) ([]domain.Feed, error) {
	query := psql.Select(columns...).From(table).
		Where(sq.Expr(foodMatch, domain.NormalizeText(name))).
		OrderBy("feed_time ASC")
	return r.selectMany(ctx, query, "list feeds containing food")
}

// LastPooped returns the most recent feed flagged as pooped.
// Returns domain.ErrNotFound if there is none.
func (r *Repo) LastPooped(ctx context.Context) (*domain.Feed, error) {
	query := psql.Select(columns...).From(table).
		Where(sq.Eq{"pooped": true}).
		OrderBy("feed_time DESC").
		Limit(1)
	return r.selectOne(ctx, query, "last pooped feed")
}

// GetByID returns a feed by primary key.
// Returns domain.ErrNotFound if the feed does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Feed, error) {
	query := psql.Select(columns...).From(table).Where(sq.Eq{"id": id})
	return r.selectOne(ctx, query, fmt.Sprintf("feed %s", id))
}

// GetForUpdate is GetByID with a row lock. It must run inside RunInTx.
func (r *Repo) GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Feed, error) {
	query := psql.Select(columns...).From(table).Where(sq.Eq{"id": id}).Suffix("FOR UPDATE")
	return r.selectOne(ctx, query, fmt.Sprintf("feed %s", id))
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a feed and returns the persisted row.
func (r *Repo) Create(ctx context.Context, f *domain.Feed) (*domain.Feed, error) {
	id := f.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	query := psql.Insert(table).
		Columns("id", "feed_time", "amount", "wet_diaper", "pooped", "solid_foods").
		Values(id, f.FeedTime.UTC(), f.Amount, f.WetDiaper, f.Pooped, foodsOrEmpty(f.SolidFoods)).
		Suffix("RETURNING " + columnList())
	return r.selectOne(ctx, query, fmt.Sprintf("create feed %s", id))
}

// Update overwrites every mutable column of a feed and returns the new row.
// Returns domain.ErrNotFound if the feed does not exist.
func (r *Repo) Update(ctx context.Context, f *domain.Feed) (*domain.Feed, error) {
	query := psql.Update(table).
		Set("feed_time", f.FeedTime.UTC()).
		Set("amount", f.Amount).
		Set("wet_diaper", f.WetDiaper).
		Set("pooped", f.Pooped).
		Set("solid_foods", foodsOrEmpty(f.SolidFoods)).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": f.ID}).
		Suffix("RETURNING " + columnList())
	return r.selectOne(ctx, query, fmt.Sprintf("update feed %s", f.ID))
}

// UpdateSolidFoods replaces only the solid foods of a feed.
// Returns domain.ErrNotFound if the feed does not exist.
func (r *Repo) UpdateSolidFoods(ctx context.Context, id uuid.UUID, foods []string) error {
	query := psql.Update(table).
		Set("solid_foods", foodsOrEmpty(foods)).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id})
	return r.execOne(ctx, query, fmt.Sprintf("update solid foods of feed %s", id))
}

// Delete removes a feed. Returns domain.ErrNotFound if it does not exist.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	query := psql.Delete(table).Where(sq.Eq{"id": id})
	return r.execOne(ctx, query, fmt.Sprintf("delete feed %s", id))
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (r *Repo) selectMany(ctx context.Context, query sq.Sqlizer, what string) ([]domain.Feed, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: build query: %w", what, err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, what)
	}

	feeds := make([]domain.Feed, len(rows))
	for i, rw := range rows {
		feeds[i] = rw.toDomain()
	}
	return feeds, nil
}

func (r *Repo) selectOne(ctx context.Context, query sq.Sqlizer, what string) (*domain.Feed, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: build query: %w", what, err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, fmt.Errorf("%s: %w", what, domain.ErrNotFound)
		}
		return nil, postgres.MapError(err, what)
	}

	f := rw.toDomain()
	return &f, nil
}

func (r *Repo) execOne(ctx context.Context, query sq.Sqlizer, what string) error {
	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("%s: build query: %w", what, err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, what)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", what, domain.ErrNotFound)
	}
	return nil
}

func columnList() string {
	return strings.Join(columns, ", ")
}

// foodsOrEmpty keeps NULL out of the NOT NULL text[] column.
func foodsOrEmpty(foods []string) []string {
	if foods == nil {
		return []string{}
	}
	return foods
}
