package repository

import (
	"context"
	"log/slog"

	"quality-detailing/internal/domain/booking"
	"quality-detailing/internal/infra"
	"quality-detailing/internal/pkg/pgconv"
	"quality-detailing/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingRepository struct {
	pool *pgxpool.Pool
}

func NewBookingRepository(pool *pgxpool.Pool) *BookingRepository {
	return &BookingRepository{pool: pool}
}

// Create writes the booking row and one booking item per package in a single
// transaction, so a multi-package submission is one logical booking.
func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return infra.WrapRepoErr("failed to begin transaction", err)
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && rollbackErr != pgx.ErrTxClosed {
			slog.Warn("failed to rollback booking transaction", "error", rollbackErr)
		}
	}()

	const bookingStmt = `
INSERT INTO bookings (id, customer_id, package_id, scheduled_date, status, notes, total_cents)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err = tx.Exec(ctx, bookingStmt,
		b.ID(),
		b.CustomerID(),
		b.PrimaryPackageID(),
		b.ScheduledDate(),
		b.Status().String(),
		pgconv.StringPtrToPgtype(b.Notes()),
		pgconv.Int64PtrToPgtype(b.TotalCents()),
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return infra.WrapRepoErr("booking references missing customer or package", err, infra.KindForeignKeyViolated)
		}
		return infra.WrapRepoErr("failed to create booking", err)
	}

	const itemStmt = `
INSERT INTO booking_items (booking_id, package_id, quantity)
VALUES ($1, $2, 1)`

	for _, pkgID := range b.PackageIDs() {
		if _, err := tx.Exec(ctx, itemStmt, b.ID(), pkgID); err != nil {
			if isForeignKeyViolation(err) {
				return infra.WrapRepoErr("booking item references missing package", err, infra.KindForeignKeyViolated)
			}
			return infra.WrapRepoErr("failed to create booking item", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return infra.WrapRepoErr("failed to commit booking transaction", err)
	}
	return nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*commands.BookingSnapshot, error) {
	const query = `
SELECT id, customer_id, package_id, scheduled_date, status, notes, total_cents, created_at, updated_at
FROM bookings
WHERE id = $1`

	var snap commands.BookingSnapshot
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&snap.ID,
		&snap.CustomerID,
		&snap.PackageID,
		&snap.ScheduledDate,
		&snap.Status,
		&snap.Notes,
		&snap.TotalCents,
		&snap.CreatedAt,
		&snap.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}

	const itemsQuery = `SELECT package_id FROM booking_items WHERE booking_id = $1`
	rows, err := r.pool.Query(ctx, itemsQuery, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load booking items", err)
	}
	defer rows.Close()
	for rows.Next() {
		var pkgID uuid.UUID
		if err := rows.Scan(&pkgID); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking item", err)
		}
		snap.PackageIDs = append(snap.PackageIDs, pkgID)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking items", err)
	}

	return &snap, nil
}

func (r *BookingRepository) Update(ctx context.Context, b *booking.Booking) error {
	const stmt = `
UPDATE bookings
SET customer_id = $2, package_id = $3, scheduled_date = $4, status = $5, notes = $6, updated_at = NOW()
WHERE id = $1`

	tag, err := r.pool.Exec(ctx, stmt,
		b.ID(),
		b.CustomerID(),
		b.PrimaryPackageID(),
		b.ScheduledDate(),
		b.Status().String(),
		pgconv.StringPtrToPgtype(b.Notes()),
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return infra.WrapRepoErr("booking references missing customer or package", err, infra.KindForeignKeyViolated)
		}
		return infra.WrapRepoErr("failed to update booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

// Delete removes the booking row; booking items cascade with it.
func (r *BookingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const stmt = `DELETE FROM bookings WHERE id = $1`

	tag, err := r.pool.Exec(ctx, stmt, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}
