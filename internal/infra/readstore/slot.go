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

type SlotReadStore struct {
	pool *pgxpool.Pool
}

func NewSlotReadStore(pool *pgxpool.Pool) *SlotReadStore {
	return &SlotReadStore{pool: pool}
}

func (r *SlotReadStore) FindInWindow(ctx context.Context, from, to time.Time) ([]*queries.SlotView, error) {
	const query = `
SELECT id, slot_start, slot_end, created_at
FROM available_slots
WHERE slot_start >= $1 AND slot_start <= $2
ORDER BY slot_start`

	rows, err := r.pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list slots", err)
	}
	defer rows.Close()

	result := make([]*queries.SlotView, 0)
	for rows.Next() {
		var (
			id        uuid.UUID
			slotStart time.Time
			slotEnd   pgtype.Timestamptz
			createdAt time.Time
		)
		if err := rows.Scan(&id, &slotStart, &slotEnd, &createdAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan slot", err)
		}
		result = append(result, &queries.SlotView{
			ID:        id,
			SlotStart: slotStart,
			SlotEnd:   pgconv.TimePtrFromPgtype(slotEnd),
			CreatedAt: createdAt,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate slots", err)
	}
	return result, nil
}
