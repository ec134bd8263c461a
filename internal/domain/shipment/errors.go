package shipment

import "errors"

var (
	ErrShipmentNotFound  = errors.New("shipment not found")
	ErrInvalidStatus     = errors.New("invalid shipment status")
	ErrInvalidPriority   = errors.New("invalid shipment priority")
	ErrShipmentDateEmpty = errors.New("shipment date is required")
)
