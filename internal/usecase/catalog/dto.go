package catalog

import (
	"time"

	domainCatalog "electromed-tracker/internal/domain/catalog"
)

// Request DTOs
type AddServiceRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

type RegisterReferenceRequest struct {
	Ref      string `json:"ref" validate:"required,min=1,max=100"`
	Model    string `json:"model" validate:"required,min=1,max=200"`
	Service  string `json:"service" validate:"omitempty,max=100"`
	Provider string `json:"provider" validate:"omitempty,max=200"`
}

type UpdateReferenceRequest struct {
	Model    string `json:"model" validate:"required,min=1,max=200"`
	Service  string `json:"service" validate:"omitempty,max=100"`
	Provider string `json:"provider" validate:"omitempty,max=200"`
}

type RegisterProviderRequest struct {
	Name   string   `json:"name" validate:"required,min=1,max=200"`
	Emails []string `json:"emails" validate:"omitempty,dive,email"`
}

type ProviderEmailRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// Response DTOs
type ServiceListResponse struct {
	Services []string `json:"services"`
}

type ReferenceResponse struct {
	ID        string    `json:"id"`
	Ref       string    `json:"ref"`
	Model     string    `json:"model"`
	Service   string    `json:"service,omitempty"`
	Provider  string    `json:"provider,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ProviderResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Emails    []string  `json:"emails"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FormDefaultsResponse carries everything the shipment form needs to
// auto-fill from a known reference code.
type FormDefaultsResponse struct {
	Ref             string   `json:"ref"`
	Model           string   `json:"model,omitempty"`
	Service         string   `json:"service,omitempty"`
	Provider        string   `json:"provider,omitempty"`
	ProviderEmails  []string `json:"provider_emails,omitempty"`
	ReferenceExists bool     `json:"reference_exists"`
}

func toReferenceResponse(r *domainCatalog.Reference) *ReferenceResponse {
	if r == nil {
		return nil
	}
	return &ReferenceResponse{
		ID:        r.ID.String(),
		Ref:       r.Ref,
		Model:     r.Model,
		Service:   r.Service,
		Provider:  r.Provider,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func toProviderResponse(p *domainCatalog.Provider) *ProviderResponse {
	if p == nil {
		return nil
	}
	emails := p.Emails
	if emails == nil {
		emails = []string{}
	}
	return &ProviderResponse{
		ID:        p.ID.String(),
		Name:      p.Name,
		Emails:    emails,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
