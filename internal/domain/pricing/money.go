package pricing

import (
	"errors"
	"fmt"
)

var ErrNegativeMoney = errors.New("money cannot be negative")

type Money struct {
	cents int64
}

func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrNegativeMoney
	}
	return Money{cents: cents}, nil
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

func (m Money) Dollars() float64 {
	return float64(m.cents) / 100.0
}

// Display formats whole-dollar amounts without decimals, others with two.
func (m Money) Display() string {
	if m.cents%100 == 0 {
		return fmt.Sprintf("$%d", m.cents/100)
	}
	return fmt.Sprintf("$%.2f", m.Dollars())
}
