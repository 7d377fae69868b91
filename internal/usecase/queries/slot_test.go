//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"quality-detailing/internal/pkg/clock"
	"quality-detailing/internal/usecase/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSlotReadStore struct {
	gotFrom time.Time
	gotTo   time.Time
	result  []*queries.SlotView
}

func (s *stubSlotReadStore) FindInWindow(_ context.Context, from, to time.Time) ([]*queries.SlotView, error) {
	s.gotFrom = from
	s.gotTo = to
	return s.result, nil
}

func TestSlotQueriesList(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	mockClock := clock.NewMockClock(now)

	t.Run("zero bounds default to a forward window from now", func(t *testing.T) {
		store := &stubSlotReadStore{}
		q := queries.NewSlotQueries(store, mockClock)

		_, err := q.List(context.Background(), time.Time{}, time.Time{}, queries.CustomerWindowDays)
		require.NoError(t, err)

		assert.Equal(t, now, store.gotFrom)
		assert.Equal(t, now.AddDate(0, 0, queries.CustomerWindowDays), store.gotTo)
	})

	t.Run("admin window is wider", func(t *testing.T) {
		store := &stubSlotReadStore{}
		q := queries.NewSlotQueries(store, mockClock)

		_, err := q.List(context.Background(), time.Time{}, time.Time{}, queries.AdminWindowDays)
		require.NoError(t, err)

		assert.Equal(t, now.AddDate(0, 0, queries.AdminWindowDays), store.gotTo)
	})

	t.Run("explicit bounds pass through unchanged", func(t *testing.T) {
		store := &stubSlotReadStore{}
		q := queries.NewSlotQueries(store, mockClock)

		from := now.AddDate(0, 0, 2)
		to := now.AddDate(0, 0, 9)
		_, err := q.List(context.Background(), from, to, queries.CustomerWindowDays)
		require.NoError(t, err)

		assert.Equal(t, from, store.gotFrom)
		assert.Equal(t, to, store.gotTo)
	})

	t.Run("explicit from with zero to anchors the window at from", func(t *testing.T) {
		store := &stubSlotReadStore{}
		q := queries.NewSlotQueries(store, mockClock)

		from := now.AddDate(0, 0, 5)
		_, err := q.List(context.Background(), from, time.Time{}, queries.CustomerWindowDays)
		require.NoError(t, err)

		assert.Equal(t, from.AddDate(0, 0, queries.CustomerWindowDays), store.gotTo)
	})

	t.Run("non-positive window falls back to the customer default", func(t *testing.T) {
		store := &stubSlotReadStore{}
		q := queries.NewSlotQueries(store, mockClock)

		_, err := q.List(context.Background(), time.Time{}, time.Time{}, 0)
		require.NoError(t, err)

		assert.Equal(t, now.AddDate(0, 0, queries.CustomerWindowDays), store.gotTo)
	})
}
