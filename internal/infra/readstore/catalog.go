package readstore

import (
	"context"
	"time"

	"quality-detailing/internal/infra"
	"quality-detailing/internal/pkg/pgconv"
	"quality-detailing/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CatalogReadStore struct {
	pool *pgxpool.Pool
}

func NewCatalogReadStore(pool *pgxpool.Pool) *CatalogReadStore {
	return &CatalogReadStore{pool: pool}
}

const packageColumns = `
p.id, p.service_id, s.name, s.slug, p.name, p.description,
p.price_cents, p.price_small_cents, p.price_medium_cents, p.price_large_cents,
p.price_original_small_cents, p.price_original_medium_cents, p.price_original_large_cents,
p.price_per_foot_cents, p.duration_minutes, p.turnaround_hours,
p.details, p.display_order, p.created_at`

func (r *CatalogReadStore) FindServices(ctx context.Context) ([]*queries.ServiceView, error) {
	const query = `
SELECT id, name, slug, description, created_at
FROM services
ORDER BY name`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list services", err)
	}
	defer rows.Close()

	result := make([]*queries.ServiceView, 0)
	for rows.Next() {
		view, err := scanServiceView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan service", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate services", err)
	}
	return result, nil
}

func (r *CatalogReadStore) FindServiceBySlug(ctx context.Context, slug string) (*queries.ServiceView, error) {
	const query = `
SELECT id, name, slug, description, created_at
FROM services
WHERE slug = $1`

	view, err := scanServiceView(r.pool.QueryRow(ctx, query, slug))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("service not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find service", err)
	}
	return view, nil
}

func (r *CatalogReadStore) FindPackagesByService(ctx context.Context, serviceID uuid.UUID) ([]*queries.PackageView, error) {
	query := `
SELECT ` + packageColumns + `
FROM packages p
JOIN services s ON s.id = p.service_id
WHERE p.service_id = $1
ORDER BY p.display_order NULLS LAST, p.name`

	rows, err := r.pool.Query(ctx, query, serviceID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list packages", err)
	}
	defer rows.Close()

	result := make([]*queries.PackageView, 0)
	for rows.Next() {
		view, err := scanPackageView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan package", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate packages", err)
	}
	return result, nil
}

func (r *CatalogReadStore) FindPackageByID(ctx context.Context, id uuid.UUID) (*queries.PackageView, error) {
	query := `
SELECT ` + packageColumns + `
FROM packages p
JOIN services s ON s.id = p.service_id
WHERE p.id = $1`

	view, err := scanPackageView(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("package not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find package", err)
	}
	return view, nil
}

func scanServiceView(row rowScanner) (*queries.ServiceView, error) {
	var (
		v           queries.ServiceView
		description pgtype.Text
	)
	if err := row.Scan(&v.ID, &v.Name, &v.Slug, &description, &v.CreatedAt); err != nil {
		return nil, err
	}
	v.Description = pgconv.StringPtrFromPgtype(description)
	return &v, nil
}

func scanPackageView(row rowScanner) (*queries.PackageView, error) {
	var (
		v                                  queries.PackageView
		description, details               pgtype.Text
		price, small, medium, large        pgtype.Int8
		origSmall, origMedium, origLarge   pgtype.Int8
		perFoot                            pgtype.Int8
		duration, turnaround, displayOrder pgtype.Int4
		createdAt                          time.Time
	)
	err := row.Scan(
		&v.ID, &v.ServiceID, &v.ServiceName, &v.ServiceSlug, &v.Name, &description,
		&price, &small, &medium, &large,
		&origSmall, &origMedium, &origLarge,
		&perFoot, &duration, &turnaround,
		&details, &displayOrder, &createdAt,
	)
	if err != nil {
		return nil, err
	}
	v.Description = pgconv.StringPtrFromPgtype(description)
	v.PriceCents = pgconv.Int64PtrFromPgtype(price)
	v.PriceSmallCents = pgconv.Int64PtrFromPgtype(small)
	v.PriceMediumCents = pgconv.Int64PtrFromPgtype(medium)
	v.PriceLargeCents = pgconv.Int64PtrFromPgtype(large)
	v.OriginalSmallCents = pgconv.Int64PtrFromPgtype(origSmall)
	v.OriginalMediumCents = pgconv.Int64PtrFromPgtype(origMedium)
	v.OriginalLargeCents = pgconv.Int64PtrFromPgtype(origLarge)
	v.PricePerFootCents = pgconv.Int64PtrFromPgtype(perFoot)
	v.DurationMinutes = pgconv.Int32PtrFromPgtype(duration)
	v.TurnaroundHours = pgconv.Int32PtrFromPgtype(turnaround)
	v.Details = pgconv.StringPtrFromPgtype(details)
	v.DisplayOrder = pgconv.Int32PtrFromPgtype(displayOrder)
	v.CreatedAt = createdAt
	return &v, nil
}
