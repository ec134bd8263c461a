package shipment

import (
	"fmt"
	"time"

	domainShipment "electromed-tracker/internal/domain/shipment"
	appErrors "electromed-tracker/pkg/errors"
)

// Transition moves a record to the target workflow status. Unlike a strict
// state machine, any status is reachable from any other; the workflow order
// is a display concern only.
//
// Side effects:
//   - entering RECIBIDO stamps the delivery date with today's date when it is
//     not already set, and reports celebrate=true so the UI can fire its
//     confetti effect;
//   - leaving RECIBIDO does NOT clear the delivery date. "Received" is
//     derived from the delivery date alone everywhere, so the asymmetry
//     cannot corrupt the active/received partition.
func Transition(s *domainShipment.Shipment, target domainShipment.Status, now time.Time) (bool, error) {
	if !target.Valid() {
		return false, appErrors.NewAppError(
			"INVALID_STATUS",
			fmt.Sprintf("Unknown status: %s", target),
			nil,
		)
	}

	s.Status = target

	if target == domainShipment.StatusReceived {
		if s.DeliveryDate.IsZero() {
			s.DeliveryDate = domainShipment.DateOf(now)
		}
		return true, nil
	}

	return false, nil
}

// InitialStatus picks the status for a newly created record: RECIBIDO when
// the delivery date is already known at creation, otherwise dispatched to the
// external provider.
func InitialStatus(deliveryDate domainShipment.Date) domainShipment.Status {
	if !deliveryDate.IsZero() {
		return domainShipment.StatusReceived
	}
	return domainShipment.StatusSentToProvider
}
