package shipment

import (
	"time"

	domainShipment "electromed-tracker/internal/domain/shipment"
)

// Request DTOs
type CreateShipmentRequest struct {
	Model           string              `json:"model" validate:"required,min=1,max=200"`
	SN              string              `json:"sn" validate:"omitempty,max=100"`
	Ref             string              `json:"ref" validate:"omitempty,max=100"`
	Provider        string              `json:"provider" validate:"required,min=1,max=200"`
	ProviderContact string              `json:"provider_contact" validate:"omitempty,max=300"`
	Service         string              `json:"service" validate:"omitempty,max=100"`
	Priority        string              `json:"priority" validate:"omitempty,priority"`
	ShipmentDate    domainShipment.Date `json:"shipment_date"`
	DeliveryDate    domainShipment.Date `json:"delivery_date"`
	Loan            bool                `json:"loan"`
	LoanSN          string              `json:"loan_sn" validate:"omitempty,max=100"`
	Observations    string              `json:"observations" validate:"omitempty,max=5000"`
	ImageURL        string              `json:"image_url" validate:"omitempty,url"`
}

type UpdateShipmentRequest struct {
	Model           string              `json:"model" validate:"required,min=1,max=200"`
	SN              string              `json:"sn" validate:"omitempty,max=100"`
	Ref             string              `json:"ref" validate:"omitempty,max=100"`
	Provider        string              `json:"provider" validate:"required,min=1,max=200"`
	ProviderContact string              `json:"provider_contact" validate:"omitempty,max=300"`
	Service         string              `json:"service" validate:"omitempty,max=100"`
	Priority        string              `json:"priority" validate:"omitempty,priority"`
	Status          string              `json:"status" validate:"omitempty,shipment_status"`
	ShipmentDate    domainShipment.Date `json:"shipment_date"`
	DeliveryDate    domainShipment.Date `json:"delivery_date"`
	Loan            bool                `json:"loan"`
	LoanSN          string              `json:"loan_sn" validate:"omitempty,max=100"`
	Observations    string              `json:"observations" validate:"omitempty,max=5000"`
	ImageURL        string              `json:"image_url" validate:"omitempty,url"`
}

type ChangeStatusRequest struct {
	Status string `json:"status" validate:"required,shipment_status"`
}

type ListShipmentsRequest struct {
	View    string `form:"view" validate:"omitempty,oneof=active received all"`
	Search  string `form:"search"`
	Service string `form:"service"`
	Loan    bool   `form:"loan"`
	Sort    string `form:"sort" validate:"omitempty,oneof=asc desc"`
}

// Response DTOs
type ShipmentResponse struct {
	ID              string              `json:"id"`
	Model           string              `json:"model"`
	SN              string              `json:"sn,omitempty"`
	Ref             string              `json:"ref,omitempty"`
	Provider        string              `json:"provider"`
	ProviderContact string              `json:"provider_contact,omitempty"`
	Service         string              `json:"service,omitempty"`
	Priority        string              `json:"priority"`
	Status          string              `json:"status"`
	ShipmentDate    domainShipment.Date `json:"shipment_date"`
	DeliveryDate    domainShipment.Date `json:"delivery_date"`
	Loan            bool                `json:"loan"`
	LoanSN          string              `json:"loan_sn,omitempty"`
	Observations    string              `json:"observations,omitempty"`
	ImageURL        string              `json:"image_url,omitempty"`
	DaysOut         int                 `json:"days_out"`
	Received        bool                `json:"received"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at"`
}

type StatusChangeResponse struct {
	Shipment *ShipmentResponse `json:"shipment"`
	// Celebrate flags the UI confetti effect fired on transition to RECIBIDO.
	Celebrate bool `json:"celebrate"`
}

type ShipmentListResponse struct {
	Shipments []ShipmentResponse `json:"shipments"`
	Total     int                `json:"total"`
	View      string             `json:"view"`
}

type MailLinkResponse struct {
	MailtoURL string `json:"mailto_url"`
	Recipient string `json:"recipient,omitempty"`
}

// Conversion functions
func ToShipmentResponse(s *domainShipment.Shipment, now time.Time) *ShipmentResponse {
	if s == nil {
		return nil
	}

	return &ShipmentResponse{
		ID:              s.ID,
		Model:           s.Model,
		SN:              s.SN,
		Ref:             s.Ref,
		Provider:        s.Provider,
		ProviderContact: s.ProviderContact,
		Service:         s.Service,
		Priority:        string(s.Priority),
		Status:          string(s.Status),
		ShipmentDate:    s.ShipmentDate,
		DeliveryDate:    s.DeliveryDate,
		Loan:            s.Loan,
		LoanSN:          s.LoanSN,
		Observations:    s.Observations,
		ImageURL:        s.ImageURL,
		DaysOut:         s.DaysOut(now),
		Received:        s.Received(),
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}

func toShipmentResponses(shipments []domainShipment.Shipment, now time.Time) []ShipmentResponse {
	responses := make([]ShipmentResponse, len(shipments))
	for i := range shipments {
		responses[i] = *ToShipmentResponse(&shipments[i], now)
	}
	return responses
}
