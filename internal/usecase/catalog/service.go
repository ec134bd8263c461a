package catalog

import (
	"context"
	"strings"
	"time"

	domainCatalog "electromed-tracker/internal/domain/catalog"
	"electromed-tracker/internal/logger"
	appErrors "electromed-tracker/pkg/errors"
	"electromed-tracker/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Notifier is told after service-catalog mutations so real-time subscribers
// get a fresh snapshot.
type Notifier interface {
	ServicesChanged(ctx context.Context)
}

type noopNotifier struct{}

func (noopNotifier) ServicesChanged(context.Context) {}

// Service implements master-data use cases: the service catalog, canonical
// equipment references, and provider contact books.
type Service struct {
	services   domainCatalog.ServiceRepository
	references domainCatalog.ReferenceRepository
	providers  domainCatalog.ProviderRepository
	notifier   Notifier
}

func NewService(
	services domainCatalog.ServiceRepository,
	references domainCatalog.ReferenceRepository,
	providers domainCatalog.ProviderRepository,
	notifier Notifier,
) *Service {
	if notifier == nil {
		notifier = noopNotifier{}
	}
	return &Service{
		services:   services,
		references: references,
		providers:  providers,
		notifier:   notifier,
	}
}

// --- Service catalog ---

func (s *Service) ListServices(ctx context.Context) (*ServiceListResponse, error) {
	services, err := s.services.List(ctx)
	if err != nil {
		return nil, err
	}

	names := make([]string, len(services))
	for i, svc := range services {
		names[i] = svc.Name
	}
	return &ServiceListResponse{Services: names}, nil
}

func (s *Service) AddService(ctx context.Context, req *AddServiceRequest) error {
	if err := utils.ValidateStruct(req); err != nil {
		return appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	name := strings.ToUpper(strings.TrimSpace(req.Name))
	if name == "" {
		return appErrors.NewAppError("VALIDATION_ERROR", "Service name is required", nil)
	}

	exists, err := s.services.Exists(ctx, name)
	if err != nil {
		return err
	}
	if exists {
		return appErrors.NewAppError("SERVICE_EXISTS", "Service already exists", domainCatalog.ErrServiceExists)
	}

	if err := s.services.Add(ctx, name); err != nil {
		return err
	}

	logger.Info("Service added to catalog",
		zap.String("service", name),
		zap.String("event", "catalog_service_added"),
	)

	s.notifier.ServicesChanged(ctx)
	return nil
}

func (s *Service) RemoveService(ctx context.Context, name string) error {
	name = strings.ToUpper(strings.TrimSpace(name))
	if name == domainCatalog.CatchAllService {
		return appErrors.NewAppError("SERVICE_PROTECTED", "The TODO service cannot be removed", domainCatalog.ErrServiceProtected)
	}

	if err := s.services.Remove(ctx, name); err != nil {
		return err
	}

	logger.Info("Service removed from catalog",
		zap.String("service", name),
		zap.String("event", "catalog_service_removed"),
	)

	s.notifier.ServicesChanged(ctx)
	return nil
}

// --- Equipment references ---

func (s *Service) ListReferences(ctx context.Context) ([]ReferenceResponse, error) {
	references, err := s.references.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]ReferenceResponse, len(references))
	for i := range references {
		responses[i] = *toReferenceResponse(&references[i])
	}
	return responses, nil
}

func (s *Service) RegisterReference(ctx context.Context, req *RegisterReferenceRequest) (*ReferenceResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	ref := strings.ToUpper(strings.TrimSpace(req.Ref))

	// The store overwrites on duplicate keys, so the uniqueness check has to
	// happen here.
	if existing, err := s.references.GetByRef(ctx, ref); err == nil && existing != nil {
		return nil, appErrors.NewAppError("REFERENCE_EXISTS", "Reference already registered", domainCatalog.ErrReferenceExists)
	}

	now := time.Now()
	reference := &domainCatalog.Reference{
		ID:        uuid.New(),
		Ref:       ref,
		Model:     strings.TrimSpace(req.Model),
		Service:   strings.ToUpper(strings.TrimSpace(req.Service)),
		Provider:  strings.TrimSpace(req.Provider),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.references.Create(ctx, reference); err != nil {
		return nil, err
	}

	logger.Info("Reference registered",
		zap.String("ref", reference.Ref),
		zap.String("model", reference.Model),
		zap.String("event", "catalog_reference_registered"),
	)
	return toReferenceResponse(reference), nil
}

func (s *Service) UpdateReference(ctx context.Context, id uuid.UUID, req *UpdateReferenceRequest) (*ReferenceResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	references, err := s.references.List(ctx)
	if err != nil {
		return nil, err
	}

	var reference *domainCatalog.Reference
	for i := range references {
		if references[i].ID == id {
			reference = &references[i]
			break
		}
	}
	if reference == nil {
		return nil, domainCatalog.ErrReferenceNotFound
	}

	reference.Model = strings.TrimSpace(req.Model)
	reference.Service = strings.ToUpper(strings.TrimSpace(req.Service))
	reference.Provider = strings.TrimSpace(req.Provider)
	reference.UpdatedAt = time.Now()

	if err := s.references.Update(ctx, reference); err != nil {
		return nil, err
	}
	return toReferenceResponse(reference), nil
}

func (s *Service) DeleteReference(ctx context.Context, id uuid.UUID) error {
	return s.references.Delete(ctx, id)
}

// FormDefaults resolves a reference code to form pre-fill values. An unknown
// code is not an error: the form simply gets nothing to fill.
func (s *Service) FormDefaults(ctx context.Context, ref string) (*FormDefaultsResponse, error) {
	ref = strings.ToUpper(strings.TrimSpace(ref))
	resp := &FormDefaultsResponse{Ref: ref}

	reference, err := s.references.GetByRef(ctx, ref)
	if err != nil || reference == nil {
		return resp, nil
	}

	resp.ReferenceExists = true
	resp.Model = reference.Model
	resp.Service = reference.Service
	resp.Provider = reference.Provider

	if reference.Provider != "" {
		if provider, err := s.providers.GetByName(ctx, reference.Provider); err == nil && provider != nil {
			resp.ProviderEmails = domainCatalog.MergeContacts(resp.ProviderEmails, provider.Emails)
		}
	}

	return resp, nil
}

// --- Providers ---

func (s *Service) ListProviders(ctx context.Context) ([]ProviderResponse, error) {
	providers, err := s.providers.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]ProviderResponse, len(providers))
	for i := range providers {
		responses[i] = *toProviderResponse(&providers[i])
	}
	return responses, nil
}

func (s *Service) RegisterProvider(ctx context.Context, req *RegisterProviderRequest) (*ProviderResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	name := strings.TrimSpace(req.Name)
	if existing, err := s.providers.GetByName(ctx, name); err == nil && existing != nil {
		return nil, appErrors.NewAppError("PROVIDER_EXISTS", "Provider already registered", domainCatalog.ErrProviderExists)
	}

	now := time.Now()
	provider := &domainCatalog.Provider{
		ID:        uuid.New(),
		Name:      name,
		Emails:    domainCatalog.MergeContacts(nil, req.Emails),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.providers.Create(ctx, provider); err != nil {
		return nil, err
	}

	logger.Info("Provider registered",
		zap.String("provider", provider.Name),
		zap.String("event", "catalog_provider_registered"),
	)
	return toProviderResponse(provider), nil
}

func (s *Service) AddProviderEmail(ctx context.Context, id uuid.UUID, req *ProviderEmailRequest) (*ProviderResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	provider, err := s.providerByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if provider.AddEmail(strings.TrimSpace(req.Email)) {
		provider.UpdatedAt = time.Now()
		if err := s.providers.Update(ctx, provider); err != nil {
			return nil, err
		}
	}
	return toProviderResponse(provider), nil
}

func (s *Service) RemoveProviderEmail(ctx context.Context, id uuid.UUID, email string) (*ProviderResponse, error) {
	provider, err := s.providerByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if provider.RemoveEmail(strings.TrimSpace(email)) {
		provider.UpdatedAt = time.Now()
		if err := s.providers.Update(ctx, provider); err != nil {
			return nil, err
		}
	}
	return toProviderResponse(provider), nil
}

func (s *Service) DeleteProvider(ctx context.Context, id uuid.UUID) error {
	return s.providers.Delete(ctx, id)
}

func (s *Service) providerByID(ctx context.Context, id uuid.UUID) (*domainCatalog.Provider, error) {
	providers, err := s.providers.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range providers {
		if providers[i].ID == id {
			return &providers[i], nil
		}
	}
	return nil, domainCatalog.ErrProviderNotFound
}
