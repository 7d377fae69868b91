package commands

import (
	"context"

	"quality-detailing/internal/domain/customer"
	"quality-detailing/internal/pkg/errs"
	"quality-detailing/internal/usecase/queries"
)

type CustomerCommands interface {
	// Create always inserts a fresh customer record. Submissions are never
	// merged by email: a retried submission makes a second customer.
	Create(ctx context.Context, name, email string, phone *string) (*queries.CustomerView, error)
}

type customerCommandsImpl struct {
	repo CustomerRepository
}

func NewCustomerCommands(repo CustomerRepository) CustomerCommands {
	return &customerCommandsImpl{repo: repo}
}

func (c *customerCommandsImpl) Create(ctx context.Context, name, email string, phone *string) (*queries.CustomerView, error) {
	entity, err := customer.NewCustomer(name, email, phone)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	if err := c.repo.Create(ctx, entity); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return &queries.CustomerView{
		ID:    entity.ID(),
		Name:  entity.Name(),
		Email: entity.Email(),
		Phone: entity.Phone(),
	}, nil
}
