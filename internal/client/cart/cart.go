package cart

import (
	"quality-detailing/internal/domain/pricing"

	"github.com/google/uuid"
)

// Item is one selected package with the vehicle size it was priced for.
type Item struct {
	PackageID  uuid.UUID           `json:"id"`
	Name       string              `json:"name"`
	PriceCents int64               `json:"price_cents"`
	Size       pricing.VehicleSize `json:"size"`
}

// Cart holds the current selection backed by a Store. Add and Remove
// persist immediately; a persistence failure leaves the in-memory state
// unchanged.
type Cart struct {
	store Store
	items []Item
}

func New(store Store) (*Cart, error) {
	items, err := store.Load()
	if err != nil {
		return nil, err
	}
	return &Cart{store: store, items: items}, nil
}

// Add appends the item to the selection. Adding a package already in the
// cart with the same size is a no-op; the same package with a different
// size replaces the earlier entry.
func (c *Cart) Add(item Item) error {
	for i, existing := range c.items {
		if existing.PackageID != item.PackageID {
			continue
		}
		if existing.Size == item.Size {
			return nil
		}
		next := make([]Item, len(c.items))
		copy(next, c.items)
		next[i] = item
		return c.persist(next)
	}
	next := make([]Item, len(c.items), len(c.items)+1)
	copy(next, c.items)
	return c.persist(append(next, item))
}

// Remove drops the package regardless of size. Removing an absent package
// is a no-op.
func (c *Cart) Remove(packageID uuid.UUID) error {
	next := make([]Item, 0, len(c.items))
	for _, existing := range c.items {
		if existing.PackageID != packageID {
			next = append(next, existing)
		}
	}
	if len(next) == len(c.items) {
		return nil
	}
	return c.persist(next)
}

func (c *Cart) Clear() error {
	return c.persist([]Item{})
}

func (c *Cart) Items() []Item {
	result := make([]Item, len(c.items))
	copy(result, c.items)
	return result
}

func (c *Cart) Count() int {
	return len(c.items)
}

func (c *Cart) TotalCents() int64 {
	var total int64
	for _, item := range c.items {
		total += item.PriceCents
	}
	return total
}

func (c *Cart) persist(items []Item) error {
	if err := c.store.Save(items); err != nil {
		return err
	}
	c.items = items
	return nil
}
