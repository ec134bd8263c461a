package shipment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDaysOut(t *testing.T) {
	t.Run("counts whole days from shipment to now", func(t *testing.T) {
		s := &Shipment{ShipmentDate: ParseDate("2024-01-01")}
		now := time.Date(2024, 1, 11, 9, 30, 0, 0, time.UTC)

		assert.Equal(t, 10, s.DaysOut(now))
	})

	t.Run("same-day delivery is zero days", func(t *testing.T) {
		s := &Shipment{
			ShipmentDate: ParseDate("2024-01-01"),
			DeliveryDate: ParseDate("2024-01-01"),
		}

		assert.Equal(t, 0, s.DaysOut(time.Now()))
	})

	t.Run("uses delivery date instead of now when set", func(t *testing.T) {
		s := &Shipment{
			ShipmentDate: ParseDate("2024-01-01"),
			DeliveryDate: ParseDate("2024-01-06"),
		}

		early := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
		late := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, 5, s.DaysOut(early))
		assert.Equal(t, 5, s.DaysOut(late), "received records must not drift with wall-clock time")
	})

	t.Run("active records are monotonically non-decreasing", func(t *testing.T) {
		s := &Shipment{ShipmentDate: ParseDate("2024-03-15")}

		previous := -1
		now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
		for i := 0; i < 40; i++ {
			days := s.DaysOut(now)
			assert.GreaterOrEqual(t, days, previous)
			previous = days
			now = now.Add(18 * time.Hour)
		}
	})

	t.Run("never negative even when delivery precedes shipment", func(t *testing.T) {
		s := &Shipment{
			ShipmentDate: ParseDate("2024-05-10"),
			DeliveryDate: ParseDate("2024-05-01"),
		}

		assert.Equal(t, 0, s.DaysOut(time.Now()))
	})

	t.Run("missing shipment date counts as zero", func(t *testing.T) {
		s := &Shipment{}
		assert.Equal(t, 0, s.DaysOut(time.Now()))

		s = &Shipment{ShipmentDate: ParseDate("not-a-date")}
		assert.Equal(t, 0, s.DaysOut(time.Now()))
	})

	t.Run("time of day in now does not shift the count", func(t *testing.T) {
		s := &Shipment{ShipmentDate: ParseDate("2024-01-01")}

		morning := time.Date(2024, 1, 11, 0, 0, 1, 0, time.UTC)
		night := time.Date(2024, 1, 11, 23, 59, 59, 0, time.UTC)
		assert.Equal(t, s.DaysOut(morning), s.DaysOut(night))
	})
}

func TestReceived(t *testing.T) {
	active := &Shipment{Status: StatusSentToProvider}
	assert.False(t, active.Received())

	// Received is derived from the delivery date alone; status is ignored.
	back := &Shipment{Status: StatusQuoteReceived, DeliveryDate: ParseDate("2024-02-01")}
	assert.True(t, back.Received())
}

func TestEffectiveDate(t *testing.T) {
	created := time.Date(2024, 4, 1, 10, 0, 0, 0, time.UTC)

	withDate := &Shipment{ShipmentDate: ParseDate("2024-03-20"), CreatedAt: created}
	assert.Equal(t, ParseDate("2024-03-20").Time(), withDate.EffectiveDate())

	withoutDate := &Shipment{CreatedAt: created}
	assert.Equal(t, created, withoutDate.EffectiveDate())
}

func TestStatusValid(t *testing.T) {
	for _, status := range WorkflowStatuses() {
		assert.True(t, status.Valid(), string(status))
	}
	assert.False(t, Status("EN CAMINO").Valid())
	assert.False(t, Status("").Valid())
}

func TestParseDate(t *testing.T) {
	d := ParseDate("2024-06-15")
	require.False(t, d.IsZero())
	assert.Equal(t, "2024-06-15", d.String())

	assert.True(t, ParseDate("").IsZero())
	assert.True(t, ParseDate("garbage").IsZero())

	// Older records stored full timestamps.
	ts := ParseDate("2024-06-15T18:30:00Z")
	assert.Equal(t, "2024-06-15", ts.String())
}

func TestDateJSON(t *testing.T) {
	zero, err := Date{}.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, "null", string(zero))

	var d Date
	require.NoError(t, d.UnmarshalJSON([]byte(`"2024-06-15"`)))
	assert.Equal(t, "2024-06-15", d.String())

	require.NoError(t, d.UnmarshalJSON([]byte("null")))
	assert.True(t, d.IsZero())
}
