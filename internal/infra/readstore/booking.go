package readstore

import (
	"context"

	"quality-detailing/internal/infra"
	"quality-detailing/internal/pkg/pgconv"
	"quality-detailing/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingReadStore struct {
	pool *pgxpool.Pool
}

func NewBookingReadStore(pool *pgxpool.Pool) *BookingReadStore {
	return &BookingReadStore{pool: pool}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	const query = `
SELECT id, customer_id, package_id, scheduled_date, status, notes, total_cents, created_at, updated_at
FROM bookings
WHERE id = $1`

	view, err := scanBookingView(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}
	return view, nil
}

// FindWithDetails joins each booking with its customer, primary package and
// booking items, most recent appointment first.
func (r *BookingReadStore) FindWithDetails(ctx context.Context, limit int32) ([]*queries.BookingDetails, error) {
	const query = `
SELECT
	b.id, b.customer_id, b.package_id, b.scheduled_date, b.status, b.notes, b.total_cents, b.created_at, b.updated_at,
	c.name, c.email, c.phone,
	p.name, p.price_cents, p.duration_minutes
FROM bookings b
JOIN customers c ON c.id = b.customer_id
JOIN packages p ON p.id = b.package_id
ORDER BY b.scheduled_date DESC
LIMIT $1`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings with details", err)
	}
	defer rows.Close()

	result := make([]*queries.BookingDetails, 0)
	byID := make(map[uuid.UUID]*queries.BookingDetails)
	for rows.Next() {
		var (
			d             queries.BookingDetails
			notes         pgtype.Text
			totalCents    pgtype.Int8
			custName      string
			custEmail     string
			custPhone     pgtype.Text
			pkgName       string
			pkgPrice      pgtype.Int8
			pkgDuration   pgtype.Int4
		)
		err := rows.Scan(
			&d.ID, &d.CustomerID, &d.PackageID, &d.ScheduledDate, &d.Status, &notes, &totalCents, &d.CreatedAt, &d.UpdatedAt,
			&custName, &custEmail, &custPhone,
			&pkgName, &pkgPrice, &pkgDuration,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking details", err)
		}
		d.Notes = pgconv.StringPtrFromPgtype(notes)
		d.TotalCents = pgconv.Int64PtrFromPgtype(totalCents)
		d.Customer = &queries.BookingCustomerInfo{
			ID:    d.CustomerID,
			Name:  custName,
			Email: custEmail,
			Phone: pgconv.StringPtrFromPgtype(custPhone),
		}
		d.Package = &queries.BookingPackageInfo{
			ID:              d.PackageID,
			Name:            pkgName,
			PriceCents:      pgconv.Int64PtrFromPgtype(pkgPrice),
			DurationMinutes: pgconv.Int32PtrFromPgtype(pkgDuration),
		}
		d.Items = []queries.BookingItemInfo{}
		result = append(result, &d)
		byID[d.ID] = &d
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate bookings", err)
	}

	if len(result) == 0 {
		return result, nil
	}

	ids := make([]uuid.UUID, 0, len(result))
	for _, d := range result {
		ids = append(ids, d.ID)
	}

	const itemsQuery = `
SELECT i.id, i.booking_id, i.package_id, i.quantity, p.name, p.price_cents, p.duration_minutes
FROM booking_items i
JOIN packages p ON p.id = i.package_id
WHERE i.booking_id = ANY($1)`

	itemRows, err := r.pool.Query(ctx, itemsQuery, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list booking items", err)
	}
	defer itemRows.Close()

	for itemRows.Next() {
		var (
			item        queries.BookingItemInfo
			bookingID   uuid.UUID
			pkgName     string
			pkgPrice    pgtype.Int8
			pkgDuration pgtype.Int4
		)
		if err := itemRows.Scan(&item.ID, &bookingID, &item.PackageID, &item.Quantity, &pkgName, &pkgPrice, &pkgDuration); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking item", err)
		}
		item.Package = &queries.BookingPackageInfo{
			ID:              item.PackageID,
			Name:            pkgName,
			PriceCents:      pgconv.Int64PtrFromPgtype(pkgPrice),
			DurationMinutes: pgconv.Int32PtrFromPgtype(pkgDuration),
		}
		if d, ok := byID[bookingID]; ok {
			d.Items = append(d.Items, item)
		}
	}
	if err := itemRows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking items", err)
	}

	return result, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBookingView(row rowScanner) (*queries.BookingView, error) {
	var (
		v          queries.BookingView
		notes      pgtype.Text
		totalCents pgtype.Int8
	)
	err := row.Scan(&v.ID, &v.CustomerID, &v.PackageID, &v.ScheduledDate, &v.Status, &notes, &totalCents, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		return nil, err
	}
	v.Notes = pgconv.StringPtrFromPgtype(notes)
	v.TotalCents = pgconv.Int64PtrFromPgtype(totalCents)
	return &v, nil
}
