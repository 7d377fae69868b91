//go:build unit

package slot_test

import (
	"testing"
	"time"

	"quality-detailing/internal/domain/slot"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSlot(t *testing.T) {
	start := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)

	t.Run("open ended slot", func(t *testing.T) {
		s, err := slot.NewSlot(start, nil)
		require.NoError(t, err)
		require.NotNil(t, s)

		assert.NotEqual(t, uuid.Nil, s.ID())
		assert.Equal(t, start, s.Start())
		assert.Nil(t, s.End())
		assert.True(t, s.IsOpenEnded())
	})

	t.Run("bounded slot", func(t *testing.T) {
		end := start.Add(2 * time.Hour)
		s, err := slot.NewSlot(start, &end)
		require.NoError(t, err)
		require.NotNil(t, s.End())
		assert.Equal(t, end, *s.End())
		assert.False(t, s.IsOpenEnded())
	})

	t.Run("zero start", func(t *testing.T) {
		s, err := slot.NewSlot(time.Time{}, nil)
		require.Nil(t, s)
		require.ErrorIs(t, err, slot.ErrZeroStart)
	})

	t.Run("end equal to start", func(t *testing.T) {
		end := start
		s, err := slot.NewSlot(start, &end)
		require.Nil(t, s)
		require.ErrorIs(t, err, slot.ErrEndNotAfterStart)
	})

	t.Run("end before start", func(t *testing.T) {
		end := start.Add(-time.Minute)
		s, err := slot.NewSlot(start, &end)
		require.Nil(t, s)
		require.ErrorIs(t, err, slot.ErrEndNotAfterStart)
	})

	t.Run("UUID uniqueness", func(t *testing.T) {
		s1, err1 := slot.NewSlot(start, nil)
		s2, err2 := slot.NewSlot(start, nil)
		require.NoError(t, err1)
		require.NoError(t, err2)
		assert.NotEqual(t, s1.ID(), s2.ID())
	})
}
