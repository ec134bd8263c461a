package shipment

import (
	"time"
)

// Status represents the position of a shipment in the repair workflow.
// The workflow is ordered for display but transitions are free: any status
// may be set from any other.
type Status string

const (
	StatusInHouseRepair  Status = "REPARANDO EN ELECTROMEDICINA" // Being repaired by the in-house team
	StatusSentToProvider Status = "ENVIADO A SERVICIO TECNICO"   // Dispatched to the external provider
	StatusQuoteReceived  Status = "PRESUPUESTO RECIBIDO"         // Repair quote received
	StatusQuoteAccepted  Status = "PRESUPUESTO ACEPTADO"         // Repair quote accepted
	StatusReceived       Status = "RECIBIDO"                     // Equipment back at the hospital
)

// WorkflowStatuses lists the workflow in display order.
func WorkflowStatuses() []Status {
	return []Status{
		StatusInHouseRepair,
		StatusSentToProvider,
		StatusQuoteReceived,
		StatusQuoteAccepted,
		StatusReceived,
	}
}

func (s Status) Valid() bool {
	switch s {
	case StatusInHouseRepair, StatusSentToProvider, StatusQuoteReceived, StatusQuoteAccepted, StatusReceived:
		return true
	}
	return false
}

// Priority marks the urgency of a repair.
type Priority string

const (
	PriorityNormal Priority = "NORMAL"
	PriorityHigh   Priority = "ALTA"
)

func (p Priority) Valid() bool {
	return p == PriorityNormal || p == PriorityHigh
}

// Shipment represents a tracked outbound dispatch of a hospital equipment
// item sent out for repair or calibration.
type Shipment struct {
	ID string

	// Equipment identification
	Model string
	SN    string
	Ref   string // canonical uppercase equipment reference

	// Logistics
	Provider        string
	ProviderContact string
	Service         string
	ShipmentDate    Date
	DeliveryDate    Date // zero while the equipment is still out

	// Workflow
	Status   Status
	Priority Priority

	// Loan equipment lent while the original is away
	Loan   bool
	LoanSN string

	Observations string
	ImageURL     string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Received reports whether the equipment is back at the hospital. The
// delivery date alone decides this; status is not consulted so that a status
// edited away from RECIBIDO cannot disagree with the partition used by every
// view.
func (s *Shipment) Received() bool {
	return !s.DeliveryDate.IsZero()
}

// EffectiveDate is the date used when sorting search results: the shipment
// date when present, otherwise the creation timestamp.
func (s *Shipment) EffectiveDate() time.Time {
	if !s.ShipmentDate.IsZero() {
		return s.ShipmentDate.Time()
	}
	return s.CreatedAt
}

// DaysOut computes the whole days the equipment has been away: from the
// shipment date to the delivery date when set, otherwise to now. Dates are
// compared as UTC midnight anchors so time-of-day components in "now" cannot
// shift the count. Missing or malformed shipment dates count as zero days,
// and a delivery date before the shipment date clamps to zero.
func (s *Shipment) DaysOut(now time.Time) int {
	if s.ShipmentDate.IsZero() {
		return 0
	}

	end := s.DeliveryDate
	if end.IsZero() {
		end = DateOf(now)
	}

	days := int(end.Time().Sub(s.ShipmentDate.Time()).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}
