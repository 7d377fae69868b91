package customer

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName    = errors.New("customer name is required")
	ErrInvalidEmail = errors.New("customer email is invalid")
)

// Customer is created fresh on every booking submission. There is no lookup
// or merge by email: two submissions from the same person are two records.
type Customer struct {
	id        uuid.UUID
	name      string
	email     string
	phone     *string
	createdAt time.Time
	updatedAt time.Time
}

func NewCustomer(name, email string, phone *string) (*Customer, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" {
		return nil, ErrEmptyName
	}
	if email == "" || !strings.Contains(email, "@") {
		return nil, ErrInvalidEmail
	}
	return &Customer{
		id:    uuid.New(),
		name:  name,
		email: email,
		phone: phone,
	}, nil
}

func Reconstruct(id uuid.UUID, name, email string, phone *string, createdAt, updatedAt time.Time) *Customer {
	return &Customer{
		id:        id,
		name:      name,
		email:     email,
		phone:     phone,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (c *Customer) ID() uuid.UUID        { return c.id }
func (c *Customer) Name() string         { return c.name }
func (c *Customer) Email() string        { return c.email }
func (c *Customer) Phone() *string       { return c.phone }
func (c *Customer) CreatedAt() time.Time { return c.createdAt }
func (c *Customer) UpdatedAt() time.Time { return c.updatedAt }
