package postgres

import (
	"context"
	"errors"
	"fmt"

	"electromed-tracker/internal/domain/catalog"
	"electromed-tracker/internal/infrastructure/database/postgres/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ServiceRepository persists the ordered service catalog.
type ServiceRepository struct {
	db *DB
}

func NewServiceRepository(db *DB) *ServiceRepository {
	return &ServiceRepository{db: db}
}

func (r *ServiceRepository) List(ctx context.Context) ([]catalog.Service, error) {
	var dbModels []models.ServiceModel
	err := r.db.DB.WithContext(ctx).
		Order("position ASC").
		Find(&dbModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}

	services := make([]catalog.Service, len(dbModels))
	for i, m := range dbModels {
		services[i] = catalog.Service{Name: m.Name, Position: m.Position}
	}
	return services, nil
}

func (r *ServiceRepository) Add(ctx context.Context, name string) error {
	// New services are appended at the end of the display order.
	var maxPosition int
	err := r.db.DB.WithContext(ctx).
		Model(&models.ServiceModel{}).
		Select("COALESCE(MAX(position), -1)").
		Scan(&maxPosition).Error
	if err != nil {
		return fmt.Errorf("failed to determine service position: %w", err)
	}

	dbModel := &models.ServiceModel{Name: name, Position: maxPosition + 1}
	if err := r.db.DB.WithContext(ctx).Create(dbModel).Error; err != nil {
		return fmt.Errorf("failed to add service: %w", err)
	}
	return nil
}

func (r *ServiceRepository) Remove(ctx context.Context, name string) error {
	result := r.db.DB.WithContext(ctx).
		Where("name = ?", name).
		Delete(&models.ServiceModel{})

	if result.Error != nil {
		return fmt.Errorf("failed to remove service: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return catalog.ErrServiceNotFound
	}
	return nil
}

func (r *ServiceRepository) Exists(ctx context.Context, name string) (bool, error) {
	var count int64
	err := r.db.DB.WithContext(ctx).
		Model(&models.ServiceModel{}).
		Where("name = ?", name).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check service: %w", err)
	}
	return count > 0, nil
}

// ReferenceRepository persists canonical equipment references.
type ReferenceRepository struct {
	db *DB
}

func NewReferenceRepository(db *DB) *ReferenceRepository {
	return &ReferenceRepository{db: db}
}

func (r *ReferenceRepository) List(ctx context.Context) ([]catalog.Reference, error) {
	var dbModels []models.ReferenceModel
	err := r.db.DB.WithContext(ctx).
		Order("ref ASC").
		Find(&dbModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list references: %w", err)
	}

	references := make([]catalog.Reference, len(dbModels))
	for i := range dbModels {
		references[i] = *toReferenceEntity(&dbModels[i])
	}
	return references, nil
}

func (r *ReferenceRepository) GetByRef(ctx context.Context, ref string) (*catalog.Reference, error) {
	var dbModel models.ReferenceModel
	err := r.db.DB.WithContext(ctx).
		Where("ref = ?", ref).
		First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, catalog.ErrReferenceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get reference: %w", err)
	}

	return toReferenceEntity(&dbModel), nil
}

func (r *ReferenceRepository) Create(ctx context.Context, reference *catalog.Reference) error {
	dbModel := toReferenceModel(reference)
	if err := r.db.DB.WithContext(ctx).Create(dbModel).Error; err != nil {
		return fmt.Errorf("failed to create reference: %w", err)
	}
	return nil
}

func (r *ReferenceRepository) Update(ctx context.Context, reference *catalog.Reference) error {
	result := r.db.DB.WithContext(ctx).
		Model(&models.ReferenceModel{}).
		Where("id = ?", reference.ID).
		Updates(map[string]interface{}{
			"model":      reference.Model,
			"service":    reference.Service,
			"provider":   reference.Provider,
			"updated_at": reference.UpdatedAt,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update reference: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return catalog.ErrReferenceNotFound
	}
	return nil
}

func (r *ReferenceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.DB.WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.ReferenceModel{})

	if result.Error != nil {
		return fmt.Errorf("failed to delete reference: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return catalog.ErrReferenceNotFound
	}
	return nil
}

// ProviderRepository persists canonical provider entries.
type ProviderRepository struct {
	db *DB
}

func NewProviderRepository(db *DB) *ProviderRepository {
	return &ProviderRepository{db: db}
}

func (r *ProviderRepository) List(ctx context.Context) ([]catalog.Provider, error) {
	var dbModels []models.ProviderModel
	err := r.db.DB.WithContext(ctx).
		Order("name ASC").
		Find(&dbModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list providers: %w", err)
	}

	providers := make([]catalog.Provider, len(dbModels))
	for i := range dbModels {
		providers[i] = *toProviderEntity(&dbModels[i])
	}
	return providers, nil
}

func (r *ProviderRepository) GetByName(ctx context.Context, name string) (*catalog.Provider, error) {
	var dbModel models.ProviderModel
	err := r.db.DB.WithContext(ctx).
		Where("name = ?", name).
		First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, catalog.ErrProviderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get provider: %w", err)
	}

	return toProviderEntity(&dbModel), nil
}

func (r *ProviderRepository) Create(ctx context.Context, provider *catalog.Provider) error {
	dbModel := toProviderModel(provider)
	if err := r.db.DB.WithContext(ctx).Create(dbModel).Error; err != nil {
		return fmt.Errorf("failed to create provider: %w", err)
	}
	return nil
}

func (r *ProviderRepository) Update(ctx context.Context, provider *catalog.Provider) error {
	result := r.db.DB.WithContext(ctx).
		Model(&models.ProviderModel{}).
		Where("id = ?", provider.ID).
		Updates(map[string]interface{}{
			"emails":     models.StringList(provider.Emails),
			"updated_at": provider.UpdatedAt,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update provider: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return catalog.ErrProviderNotFound
	}
	return nil
}

func (r *ProviderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.DB.WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.ProviderModel{})

	if result.Error != nil {
		return fmt.Errorf("failed to delete provider: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return catalog.ErrProviderNotFound
	}
	return nil
}

// Helper functions to convert between domain entities and database models
func toReferenceModel(r *catalog.Reference) *models.ReferenceModel {
	return &models.ReferenceModel{
		ID:        r.ID,
		Ref:       r.Ref,
		Model:     r.Model,
		Service:   r.Service,
		Provider:  r.Provider,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func toReferenceEntity(m *models.ReferenceModel) *catalog.Reference {
	return &catalog.Reference{
		ID:        m.ID,
		Ref:       m.Ref,
		Model:     m.Model,
		Service:   m.Service,
		Provider:  m.Provider,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func toProviderModel(p *catalog.Provider) *models.ProviderModel {
	return &models.ProviderModel{
		ID:        p.ID,
		Name:      p.Name,
		Emails:    models.StringList(p.Emails),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func toProviderEntity(m *models.ProviderModel) *catalog.Provider {
	return &catalog.Provider{
		ID:        m.ID,
		Name:      m.Name,
		Emails:    []string(m.Emails),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
