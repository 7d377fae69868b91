package repository

import (
	"context"

	"quality-detailing/internal/domain/customer"
	"quality-detailing/internal/infra"
	"quality-detailing/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgxpool"
)

type CustomerRepository struct {
	pool *pgxpool.Pool
}

func NewCustomerRepository(pool *pgxpool.Pool) *CustomerRepository {
	return &CustomerRepository{pool: pool}
}

func (r *CustomerRepository) Create(ctx context.Context, c *customer.Customer) error {
	const stmt = `
INSERT INTO customers (id, name, email, phone)
VALUES ($1, $2, $3, $4)`

	_, err := r.pool.Exec(ctx, stmt, c.ID(), c.Name(), c.Email(), pgconv.StringPtrToPgtype(c.Phone()))
	if err != nil {
		return infra.WrapRepoErr("failed to create customer", err)
	}
	return nil
}
