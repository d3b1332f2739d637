package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saudesim/agenda-service/internal/domain"
)

func TestNewNormalizer(t *testing.T) {
	t.Run("Valid Timezone", func(t *testing.T) {
		n, err := NewNormalizer("America/Sao_Paulo")
		require.NoError(t, err)
		assert.Equal(t, "America/Sao_Paulo", n.Location().String())
	})

	t.Run("Invalid Timezone", func(t *testing.T) {
		_, err := NewNormalizer("America/Nowhere")
		assert.ErrorIs(t, err, ErrInvalidTimezone)
	})
}

func TestToInterval(t *testing.T) {
	n, err := NewNormalizer("America/Sao_Paulo")
	require.NoError(t, err)

	t.Run("Full Time", func(t *testing.T) {
		slot, err := n.ToInterval("15/10/2025", "14:00")
		require.NoError(t, err)

		assert.Equal(t, "15/10/2025", slot.Date())
		assert.Equal(t, "14:00", slot.Time())
		assert.Equal(t, time.Hour, slot.End.Sub(slot.Start), "slot must be exactly one hour")
	})

	t.Run("Bare Hour Normalizes To Full Hour", func(t *testing.T) {
		slot, err := n.ToInterval("15/10/2025", "9")
		require.NoError(t, err)

		assert.Equal(t, "09:00", slot.Time())
		assert.Equal(t, 9, slot.Hour())
	})

	t.Run("Two Digit Bare Hour", func(t *testing.T) {
		slot, err := n.ToInterval("15/10/2025", "19")
		require.NoError(t, err)

		assert.Equal(t, "19:00", slot.Time())
	})

	t.Run("One Hour Invariant Across Dates", func(t *testing.T) {
		dates := []string{"01/01/2025", "29/02/2024", "31/12/2025", "15/06/2025"}
		for _, date := range dates {
			slot, err := n.ToInterval(date, "23:00")
			require.NoError(t, err, date)
			assert.Equal(t, time.Hour, slot.End.Sub(slot.Start), date)
		}
	})

	t.Run("Slot Key Is Date Plus Hour", func(t *testing.T) {
		slot, err := n.ToInterval("15/10/2025", "8")
		require.NoError(t, err)

		assert.Equal(t, "15/10/2025 08:00", slot.Key())
	})

	t.Run("Rejects Impossible Day", func(t *testing.T) {
		_, err := n.ToInterval("31/02/2025", "10:00")
		assert.ErrorIs(t, err, ErrInvalidDate)
	})

	t.Run("Rejects Day Zero", func(t *testing.T) {
		_, err := n.ToInterval("00/01/2025", "10:00")
		assert.ErrorIs(t, err, ErrInvalidDate)
	})

	t.Run("Rejects Month Thirteen", func(t *testing.T) {
		_, err := n.ToInterval("15/13/2025", "10:00")
		assert.ErrorIs(t, err, ErrInvalidDate)
	})

	t.Run("Rejects ISO Date Shape", func(t *testing.T) {
		_, err := n.ToInterval("2025-10-15", "10:00")
		assert.ErrorIs(t, err, ErrInvalidDate)
	})

	t.Run("Rejects Hour Out Of Range", func(t *testing.T) {
		_, err := n.ToInterval("15/10/2025", "25")
		assert.ErrorIs(t, err, ErrInvalidTime)
	})

	t.Run("Rejects Minute Out Of Range", func(t *testing.T) {
		_, err := n.ToInterval("15/10/2025", "10:75")
		assert.ErrorIs(t, err, ErrInvalidTime)
	})

	t.Run("Rejects Garbage Time", func(t *testing.T) {
		_, err := n.ToInterval("15/10/2025", "9h30")
		assert.ErrorIs(t, err, ErrInvalidTime)
	})

	t.Run("Non Leap February 29", func(t *testing.T) {
		_, err := n.ToInterval("29/02/2025", "10:00")
		assert.ErrorIs(t, err, ErrInvalidDate)
	})
}

func TestDayBoundaries(t *testing.T) {
	n, err := NewNormalizer("America/Sao_Paulo")
	require.NoError(t, err)

	t.Run("Start Of Day", func(t *testing.T) {
		start, err := n.StartOfDay("15/10/2025")
		require.NoError(t, err)

		assert.Equal(t, 0, start.Hour())
		assert.Equal(t, 0, start.Minute())
		assert.Equal(t, "15/10/2025", start.Format(domain.DateFormat))
	})

	t.Run("End Of Day", func(t *testing.T) {
		end, err := n.EndOfDay("15/10/2025")
		require.NoError(t, err)

		assert.Equal(t, 23, end.Hour())
		assert.Equal(t, 59, end.Minute())
		assert.Equal(t, 59, end.Second())
	})

	t.Run("Invalid Date Propagates", func(t *testing.T) {
		_, err := n.StartOfDay("32/01/2025")
		assert.ErrorIs(t, err, ErrInvalidDate)
	})
}

func TestSlotStart(t *testing.T) {
	n, err := NewNormalizer("America/Sao_Paulo")
	require.NoError(t, err)

	start, err := n.SlotStart("15/10/2025", 19)
	require.NoError(t, err)

	assert.Equal(t, 19, start.Hour())
	assert.Equal(t, n.Location(), start.Location())
}
