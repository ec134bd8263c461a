package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"electromed-tracker/internal/domain/shipment"
	"electromed-tracker/internal/infrastructure/database/postgres/models"

	"gorm.io/gorm"
)

type ShipmentRepository struct {
	db *DB
}

func NewShipmentRepository(db *DB) *ShipmentRepository {
	return &ShipmentRepository{db: db}
}

func (r *ShipmentRepository) Create(ctx context.Context, s *shipment.Shipment) error {
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now()
	}
	s.UpdatedAt = time.Now()

	dbModel := toShipmentModel(s)
	if err := r.db.DB.WithContext(ctx).Create(dbModel).Error; err != nil {
		return fmt.Errorf("failed to create shipment: %w", err)
	}

	return nil
}

func (r *ShipmentRepository) GetByID(ctx context.Context, id string) (*shipment.Shipment, error) {
	var dbModel models.ShipmentModel
	err := r.db.DB.WithContext(ctx).
		Where("id = ?", id).
		First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, shipment.ErrShipmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get shipment: %w", err)
	}

	return toShipmentEntity(&dbModel), nil
}

func (r *ShipmentRepository) Update(ctx context.Context, s *shipment.Shipment) error {
	s.UpdatedAt = time.Now()

	result := r.db.DB.WithContext(ctx).
		Model(&models.ShipmentModel{}).
		Where("id = ?", s.ID).
		Updates(map[string]interface{}{
			"model":            s.Model,
			"sn":               s.SN,
			"ref":              s.Ref,
			"provider":         s.Provider,
			"provider_contact": s.ProviderContact,
			"service":          s.Service,
			"status":           string(s.Status),
			"priority":         string(s.Priority),
			"shipment_date":    dateOrNil(s.ShipmentDate),
			"delivery_date":    dateOrNil(s.DeliveryDate),
			"loan":             s.Loan,
			"loan_sn":          s.LoanSN,
			"observations":     s.Observations,
			"image_url":        s.ImageURL,
			"updated_at":       s.UpdatedAt,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update shipment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return shipment.ErrShipmentNotFound
	}

	return nil
}

func (r *ShipmentRepository) Delete(ctx context.Context, id string) error {
	result := r.db.DB.WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.ShipmentModel{})

	if result.Error != nil {
		return fmt.Errorf("failed to delete shipment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return shipment.ErrShipmentNotFound
	}

	return nil
}

// GetAll loads the whole record set. The views and analytics are derived
// in-process from the full snapshot, which stays cheap at the tens to low
// hundreds of records this dashboard manages.
func (r *ShipmentRepository) GetAll(ctx context.Context) ([]shipment.Shipment, error) {
	var dbModels []models.ShipmentModel
	err := r.db.DB.WithContext(ctx).
		Order("created_at DESC").
		Find(&dbModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list shipments: %w", err)
	}

	shipments := make([]shipment.Shipment, len(dbModels))
	for i := range dbModels {
		shipments[i] = *toShipmentEntity(&dbModels[i])
	}
	return shipments, nil
}

// Helper functions to convert between domain entities and database models
func toShipmentModel(s *shipment.Shipment) *models.ShipmentModel {
	return &models.ShipmentModel{
		ID:              s.ID,
		Model:           s.Model,
		SN:              s.SN,
		Ref:             s.Ref,
		Provider:        s.Provider,
		ProviderContact: s.ProviderContact,
		Service:         s.Service,
		Status:          string(s.Status),
		Priority:        string(s.Priority),
		ShipmentDate:    s.ShipmentDate.Time(),
		DeliveryDate:    dateOrNil(s.DeliveryDate),
		Loan:            s.Loan,
		LoanSN:          s.LoanSN,
		Observations:    s.Observations,
		ImageURL:        s.ImageURL,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}

func toShipmentEntity(m *models.ShipmentModel) *shipment.Shipment {
	deliveryDate := shipment.Date{}
	if m.DeliveryDate != nil {
		deliveryDate = shipment.DateOf(*m.DeliveryDate)
	}
	return &shipment.Shipment{
		ID:              m.ID,
		Model:           m.Model,
		SN:              m.SN,
		Ref:             m.Ref,
		Provider:        m.Provider,
		ProviderContact: m.ProviderContact,
		Service:         m.Service,
		Status:          shipment.Status(m.Status),
		Priority:        shipment.Priority(m.Priority),
		ShipmentDate:    shipment.DateOf(m.ShipmentDate),
		DeliveryDate:    deliveryDate,
		Loan:            m.Loan,
		LoanSN:          m.LoanSN,
		Observations:    m.Observations,
		ImageURL:        m.ImageURL,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func dateOrNil(d shipment.Date) *time.Time {
	if d.IsZero() {
		return nil
	}
	t := d.Time()
	return &t
}
