package shipment

import (
	"testing"
	"time"

	domainShipment "electromed-tracker/internal/domain/shipment"
	appErrors "electromed-tracker/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransition(t *testing.T) {
	now := time.Date(2024, 5, 20, 14, 0, 0, 0, time.UTC)

	t.Run("entering RECIBIDO stamps delivery date and celebrates", func(t *testing.T) {
		s := &domainShipment.Shipment{
			Status:       domainShipment.StatusSentToProvider,
			ShipmentDate: domainShipment.ParseDate("2024-05-01"),
		}

		celebrate, err := Transition(s, domainShipment.StatusReceived, now)

		require.NoError(t, err)
		assert.True(t, celebrate)
		assert.Equal(t, domainShipment.StatusReceived, s.Status)
		assert.Equal(t, "2024-05-20", s.DeliveryDate.String())
	})

	t.Run("existing delivery date is preserved", func(t *testing.T) {
		s := &domainShipment.Shipment{
			Status:       domainShipment.StatusQuoteAccepted,
			DeliveryDate: domainShipment.ParseDate("2024-05-10"),
		}

		celebrate, err := Transition(s, domainShipment.StatusReceived, now)

		require.NoError(t, err)
		assert.True(t, celebrate)
		assert.Equal(t, "2024-05-10", s.DeliveryDate.String())
	})

	t.Run("leaving RECIBIDO keeps the delivery date", func(t *testing.T) {
		s := &domainShipment.Shipment{
			Status:       domainShipment.StatusReceived,
			DeliveryDate: domainShipment.ParseDate("2024-05-10"),
		}

		celebrate, err := Transition(s, domainShipment.StatusQuoteReceived, now)

		require.NoError(t, err)
		assert.False(t, celebrate)
		assert.Equal(t, domainShipment.StatusQuoteReceived, s.Status)
		assert.Equal(t, "2024-05-10", s.DeliveryDate.String())
	})

	t.Run("any status is reachable from any other", func(t *testing.T) {
		for _, from := range domainShipment.WorkflowStatuses() {
			for _, to := range domainShipment.WorkflowStatuses() {
				s := &domainShipment.Shipment{Status: from}
				_, err := Transition(s, to, now)
				require.NoError(t, err)
				assert.Equal(t, to, s.Status)
			}
		}
	})

	t.Run("unknown target is rejected", func(t *testing.T) {
		s := &domainShipment.Shipment{Status: domainShipment.StatusSentToProvider}

		_, err := Transition(s, "PERDIDO", now)

		var appErr *appErrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "INVALID_STATUS", appErr.Code)
		assert.Equal(t, domainShipment.StatusSentToProvider, s.Status)
	})
}

func TestInitialStatus(t *testing.T) {
	assert.Equal(t, domainShipment.StatusSentToProvider, InitialStatus(domainShipment.Date{}))
	assert.Equal(t, domainShipment.StatusReceived, InitialStatus(domainShipment.ParseDate("2024-05-01")))
}
