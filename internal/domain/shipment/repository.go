package shipment

import "context"

// Repository defines the interface for shipment record persistence. Every
// mutation is an independent last-write-wins operation at record granularity;
// there are no cross-record transactions.
type Repository interface {
	Create(ctx context.Context, s *Shipment) error
	GetByID(ctx context.Context, id string) (*Shipment, error)
	Update(ctx context.Context, s *Shipment) error
	Delete(ctx context.Context, id string) error

	// GetAll returns the full record set. Views, analytics and real-time
	// snapshots are all derived from it in memory; expected volumes are tens
	// to low hundreds of records.
	GetAll(ctx context.Context) ([]Shipment, error)
}
