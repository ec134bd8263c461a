package catalog

import (
	"context"

	"github.com/google/uuid"
)

// ServiceRepository persists the ordered service catalog.
type ServiceRepository interface {
	List(ctx context.Context) ([]Service, error)
	Add(ctx context.Context, name string) error
	Remove(ctx context.Context, name string) error
	Exists(ctx context.Context, name string) (bool, error)
}

// ReferenceRepository persists canonical equipment references. The backing
// store overwrites on duplicate natural keys (last-write-wins), so callers
// guard with GetByRef before creating.
type ReferenceRepository interface {
	List(ctx context.Context) ([]Reference, error)
	GetByRef(ctx context.Context, ref string) (*Reference, error)
	Create(ctx context.Context, r *Reference) error
	Update(ctx context.Context, r *Reference) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// ProviderRepository persists canonical provider entries keyed by name.
type ProviderRepository interface {
	List(ctx context.Context) ([]Provider, error)
	GetByName(ctx context.Context, name string) (*Provider, error)
	Create(ctx context.Context, p *Provider) error
	Update(ctx context.Context, p *Provider) error
	Delete(ctx context.Context, id uuid.UUID) error
}
