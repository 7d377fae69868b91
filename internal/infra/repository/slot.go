package repository

import (
	"context"

	"quality-detailing/internal/domain/slot"
	"quality-detailing/internal/infra"
	"quality-detailing/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SlotRepository struct {
	pool *pgxpool.Pool
}

func NewSlotRepository(pool *pgxpool.Pool) *SlotRepository {
	return &SlotRepository{pool: pool}
}

func (r *SlotRepository) Create(ctx context.Context, s *slot.Slot) error {
	const stmt = `
INSERT INTO available_slots (id, slot_start, slot_end)
VALUES ($1, $2, $3)`

	_, err := r.pool.Exec(ctx, stmt, s.ID(), s.Start(), pgconv.TimePtrToPgtype(s.End()))
	if err != nil {
		return infra.WrapRepoErr("failed to create slot", err)
	}
	return nil
}

func (r *SlotRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const stmt = `DELETE FROM available_slots WHERE id = $1`

	tag, err := r.pool.Exec(ctx, stmt, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete slot", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("slot not found", nil, infra.KindNotFound)
	}
	return nil
}
