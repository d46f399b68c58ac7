// Package inventory counts hotels on Postgres for the hotel validation pass.
package inventory

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/FACorreiaa/go-tripcore/internal/app/models"
	"github.com/FACorreiaa/go-tripcore/internal/pkg/logger"
)

// DB is the subset of pgxpool.Pool the repository needs.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// contains builds an ILIKE pattern matching s anywhere.
func contains(s string) string {
	return "%" + likeEscaper.Replace(strings.TrimSpace(s)) + "%"
}

type Repository struct {
	db     DB
	logger *zap.Logger
}

func NewRepository(db DB, log *zap.Logger) *Repository {
	return &Repository{db: db, logger: logger.OrNop(log)}
}

func (r *Repository) count(ctx context.Context, q sq.SelectBuilder) (int, error) {
	query, args, err := q.ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count query: %w", err)
	}
	var n int
	if err := r.db.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count hotels: %w", err)
	}
	return n, nil
}

// CountByName counts hotels rated at least minRating whose region, city or
// name contains name.
func (r *Repository) CountByName(ctx context.Context, name string, minRating float64) (int, error) {
	ctx, span := otel.Tracer("HotelInventory").Start(ctx, "CountByName", trace.WithAttributes(
		attribute.String("area.name", name),
	))
	defer span.End()

	p := contains(name)
	n, err := r.count(ctx, psql.Select("COUNT(*)").From("hotels").
		Where(sq.Or{sq.ILike{"region": p}, sq.ILike{"city": p}, sq.ILike{"name": p}}).
		Where(sq.GtOrEq{"rating": minRating}))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "count by name failed")
		r.logger.Warn("Hotel count by name failed", zap.String("name", name), zap.Error(err))
		return 0, err
	}
	span.SetAttributes(attribute.Int("hotels.count", n))
	return n, nil
}

// CountInBox counts hotels rated at least minRating inside box.
func (r *Repository) CountInBox(ctx context.Context, box models.BoundingBox, minRating float64) (int, error) {
	ctx, span := otel.Tracer("HotelInventory").Start(ctx, "CountInBox")
	defer span.End()

	n, err := r.count(ctx, psql.Select("COUNT(*)").From("hotels").
		Where(sq.And{
			sq.GtOrEq{"lat": box.MinLat},
			sq.LtOrEq{"lat": box.MaxLat},
			sq.GtOrEq{"lng": box.MinLng},
			sq.LtOrEq{"lng": box.MaxLng},
			sq.GtOrEq{"rating": minRating},
		}))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "count in box failed")
		r.logger.Warn("Hotel count in bounding box failed", zap.Any("box", box), zap.Error(err))
		return 0, err
	}
	span.SetAttributes(attribute.Int("hotels.count", n))
	return n, nil
}

// CountByCountry counts every hotel in a country regardless of rating.
func (r *Repository) CountByCountry(ctx context.Context, countryCode string) (int, error) {
	ctx, span := otel.Tracer("HotelInventory").Start(ctx, "CountByCountry", trace.WithAttributes(
		attribute.String("country.code", countryCode),
	))
	defer span.End()

	n, err := r.count(ctx, psql.Select("COUNT(*)").From("hotels").
		Where(sq.Eq{"country_code": strings.ToUpper(strings.TrimSpace(countryCode))}))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "count by country failed")
		r.logger.Warn("Hotel count by country failed", zap.String("country_code", countryCode), zap.Error(err))
		return 0, err
	}
	return n, nil
}

// Upsert inserts hotels and overwrites every column of existing ids. When an
// id repeats within the batch the last entry wins.
func (r *Repository) Upsert(ctx context.Context, hotels []models.Hotel) (int64, error) {
	if len(hotels) == 0 {
		return 0, nil
	}
	q := psql.Insert("hotels").Columns("id", "name", "region", "city", "country_code", "lat", "lng", "rating")
	for _, h := range dedupeHotels(hotels) {
		q = q.Values(h.ID, h.Name, h.Region, h.City, strings.ToUpper(h.CountryCode), h.Location.Lat, h.Location.Lng, h.Rating)
	}
	q = q.Suffix("ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, region = EXCLUDED.region, city = EXCLUDED.city, " +
		"country_code = EXCLUDED.country_code, lat = EXCLUDED.lat, lng = EXCLUDED.lng, rating = EXCLUDED.rating")

	query, args, err := q.ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build hotel insert: %w", err)
	}
	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to insert hotels: %w", err)
	}
	r.logger.Info("Hotels upserted", zap.Int64("rows", tag.RowsAffected()))
	return tag.RowsAffected(), nil
}

// dedupeHotels assigns missing ids and collapses repeated ids, keeping the
// position of the first occurrence and the values of the last.
func dedupeHotels(hotels []models.Hotel) []models.Hotel {
	out := make([]models.Hotel, 0, len(hotels))
	seen := make(map[uuid.UUID]int, len(hotels))
	for _, h := range hotels {
		if h.ID == uuid.Nil {
			h.ID = uuid.New()
		}
		if i, ok := seen[h.ID]; ok {
			out[i] = h
			continue
		}
		seen[h.ID] = len(out)
		out = append(out, h)
	}
	return out
}

// List returns the hotels of a country ordered by rating.
func (r *Repository) List(ctx context.Context, countryCode string, limit uint64) ([]models.Hotel, error) {
	q := psql.Select("id", "name", "region", "city", "country_code", "lat", "lng", "rating").
		From("hotels").
		OrderBy("rating DESC", "name")
	if countryCode != "" {
		q = q.Where(sq.Eq{"country_code": strings.ToUpper(countryCode)})
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build hotel list query: %w", err)
	}
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list hotels: %w", err)
	}
	defer rows.Close()

	var hotels []models.Hotel
	for rows.Next() {
		var h models.Hotel
		if err := rows.Scan(&h.ID, &h.Name, &h.Region, &h.City, &h.CountryCode, &h.Location.Lat, &h.Location.Lng, &h.Rating); err != nil {
			return nil, fmt.Errorf("failed to scan hotel: %w", err)
		}
		hotels = append(hotels, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate hotels: %w", err)
	}
	return hotels, nil
}
