// Package gazetteer geocodes area names against a Postgres places table.
package gazetteer

import (
	"context"
	"errors"
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

type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

type Repository struct {
	db     DB
	logger *zap.Logger
}

func NewRepository(db DB, log *zap.Logger) *Repository {
	return &Repository{db: db, logger: logger.OrNop(log)}
}

// splitQuery separates "Nosara, Guanacaste, Costa Rica" into the place name
// and the qualifying context that follows the first comma.
func splitQuery(q string) (name, within string) {
	name, within, _ = strings.Cut(q, ",")
	return strings.TrimSpace(name), strings.TrimSpace(within)
}

// Geocode resolves "Name, Context" to the most populous place called Name
// whose region or country matches Context. It returns models.ErrNotFound
// when nothing matches.
func (r *Repository) Geocode(ctx context.Context, query string) (models.LatLng, error) {
	ctx, span := otel.Tracer("Gazetteer").Start(ctx, "Geocode", trace.WithAttributes(
		attribute.String("geocode.query", query),
	))
	defer span.End()

	name, within := splitQuery(query)
	if name == "" {
		return models.LatLng{}, fmt.Errorf("empty geocode query: %w", models.ErrBadRequest)
	}

	q := psql.Select("lat", "lng").From("places").
		Where(sq.ILike{"name": likeEscaper.Replace(name)}).
		OrderBy("population DESC").
		Limit(1)
	if within != "" {
		// only the last component is compared, "Guanacaste, Costa Rica" -> "Costa Rica"
		parts := strings.Split(within, ",")
		last := strings.TrimSpace(parts[len(parts)-1])
		p := "%" + likeEscaper.Replace(last) + "%"
		q = q.Where(sq.Or{
			sq.ILike{"region": p},
			sq.ILike{"country": p},
			sq.Eq{"country_code": strings.ToUpper(last)},
		})
	}

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return models.LatLng{}, fmt.Errorf("failed to build geocode query: %w", err)
	}

	var p models.LatLng
	err = r.db.QueryRow(ctx, sqlStr, args...).Scan(&p.Lat, &p.Lng)
	if errors.Is(err, pgx.ErrNoRows) {
		span.SetAttributes(attribute.Bool("geocode.found", false))
		return models.LatLng{}, fmt.Errorf("place %q: %w", query, models.ErrNotFound)
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "geocode failed")
		r.logger.Warn("Geocode query failed", zap.String("query", query), zap.Error(err))
		return models.LatLng{}, fmt.Errorf("failed to geocode %q: %w", query, err)
	}
	span.SetAttributes(attribute.Bool("geocode.found", true))
	return p, nil
}

// Upsert inserts places, replacing the coordinates of existing ids.
func (r *Repository) Upsert(ctx context.Context, places []models.Place) (int64, error) {
	if len(places) == 0 {
		return 0, nil
	}
	q := psql.Insert("places").Columns("id", "name", "region", "country", "country_code", "lat", "lng", "population")
	seen := make(map[uuid.UUID]int, len(places))
	rows := make([]models.Place, 0, len(places))
	for _, p := range places {
		if p.ID == uuid.Nil {
			p.ID = uuid.New()
		}
		if i, ok := seen[p.ID]; ok {
			rows[i] = p
			continue
		}
		seen[p.ID] = len(rows)
		rows = append(rows, p)
	}
	for _, p := range rows {
		q = q.Values(p.ID, p.Name, p.Region, p.Country, strings.ToUpper(p.CountryCode), p.Location.Lat, p.Location.Lng, p.Population)
	}
	q = q.Suffix("ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, region = EXCLUDED.region, country = EXCLUDED.country, " +
		"country_code = EXCLUDED.country_code, lat = EXCLUDED.lat, lng = EXCLUDED.lng, population = EXCLUDED.population")

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build place insert: %w", err)
	}
	tag, err := r.db.Exec(ctx, sqlStr, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to insert places: %w", err)
	}
	r.logger.Info("Places upserted", zap.Int64("rows", tag.RowsAffected()))
	return tag.RowsAffected(), nil
}
