package shipment

import (
	"context"
	"strings"
	"time"

	domainShipment "electromed-tracker/internal/domain/shipment"
	"electromed-tracker/internal/logger"
	"electromed-tracker/internal/mailer"
	"electromed-tracker/internal/view"
	appErrors "electromed-tracker/pkg/errors"
	"electromed-tracker/pkg/utils"

	"go.uber.org/zap"
)

const idTokenLength = 6

// Notifier is told after every successful mutation so real-time subscribers
// can be sent a fresh snapshot. Implementations must not block.
type Notifier interface {
	ShipmentsChanged(ctx context.Context)
}

type noopNotifier struct{}

func (noopNotifier) ShipmentsChanged(context.Context) {}

// Service implements shipment use cases
type Service struct {
	repo     domainShipment.Repository
	notifier Notifier
}

// NewService creates a new shipment service
func NewService(repo domainShipment.Repository, notifier Notifier) *Service {
	if notifier == nil {
		notifier = noopNotifier{}
	}
	return &Service{
		repo:     repo,
		notifier: notifier,
	}
}

func (s *Service) Create(ctx context.Context, req *CreateShipmentRequest) (*ShipmentResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}
	if req.ShipmentDate.IsZero() {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Shipment date is required", domainShipment.ErrShipmentDateEmpty)
	}

	priority := domainShipment.Priority(req.Priority)
	if priority == "" {
		priority = domainShipment.PriorityNormal
	}

	record := &domainShipment.Shipment{
		ID:              utils.GenerateToken(idTokenLength),
		Model:           req.Model,
		SN:              req.SN,
		Ref:             strings.ToUpper(strings.TrimSpace(req.Ref)),
		Provider:        req.Provider,
		ProviderContact: req.ProviderContact,
		Service:         req.Service,
		ShipmentDate:    req.ShipmentDate,
		DeliveryDate:    req.DeliveryDate,
		Status:          InitialStatus(req.DeliveryDate),
		Priority:        priority,
		Loan:            req.Loan,
		LoanSN:          req.LoanSN,
		Observations:    utils.SanitizeText(req.Observations),
		ImageURL:        req.ImageURL,
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}

	if err := s.repo.Create(ctx, record); err != nil {
		return nil, err
	}

	logger.Info("Shipment registered",
		zap.String("shipment_id", record.ID),
		zap.String("model", record.Model),
		zap.String("provider", record.Provider),
		zap.String("status", string(record.Status)),
		zap.String("event", "shipment_created"),
	)

	s.notifier.ShipmentsChanged(ctx)
	return ToShipmentResponse(record, time.Now()), nil
}

func (s *Service) Get(ctx context.Context, id string) (*ShipmentResponse, error) {
	record, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToShipmentResponse(record, time.Now()), nil
}

// Update replaces every editable field. The whole record is last-write-wins:
// two concurrent editors silently overwrite each other, matching the store's
// record-granularity contract.
func (s *Service) Update(ctx context.Context, id string, req *UpdateShipmentRequest) (*ShipmentResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	record, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	record.Model = req.Model
	record.SN = req.SN
	record.Ref = strings.ToUpper(strings.TrimSpace(req.Ref))
	record.Provider = req.Provider
	record.ProviderContact = req.ProviderContact
	record.Service = req.Service
	record.ShipmentDate = req.ShipmentDate
	record.DeliveryDate = req.DeliveryDate
	record.Loan = req.Loan
	record.LoanSN = req.LoanSN
	record.Observations = utils.SanitizeText(req.Observations)
	record.ImageURL = req.ImageURL
	if req.Priority != "" {
		record.Priority = domainShipment.Priority(req.Priority)
	}
	if req.Status != "" {
		record.Status = domainShipment.Status(req.Status)
	}
	record.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, record); err != nil {
		return nil, err
	}

	logger.Info("Shipment updated",
		zap.String("shipment_id", record.ID),
		zap.String("event", "shipment_updated"),
	)

	s.notifier.ShipmentsChanged(ctx)
	return ToShipmentResponse(record, time.Now()), nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	logger.Info("Shipment deleted",
		zap.String("shipment_id", id),
		zap.String("event", "shipment_deleted"),
	)

	s.notifier.ShipmentsChanged(ctx)
	return nil
}

// ChangeStatus applies a workflow transition with its RECIBIDO side effects.
func (s *Service) ChangeStatus(ctx context.Context, id string, req *ChangeStatusRequest) (*StatusChangeResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	record, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	celebrate, err := Transition(record, domainShipment.Status(req.Status), time.Now())
	if err != nil {
		return nil, err
	}
	record.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, record); err != nil {
		return nil, err
	}

	logger.Info("Shipment status changed",
		zap.String("shipment_id", record.ID),
		zap.String("status", string(record.Status)),
		zap.String("event", "shipment_status_changed"),
	)

	s.notifier.ShipmentsChanged(ctx)
	return &StatusChangeResponse{
		Shipment:  ToShipmentResponse(record, time.Now()),
		Celebrate: celebrate,
	}, nil
}

// QuickReceive marks the equipment back in one step, as the dashboard card's
// quick-receipt button does.
func (s *Service) QuickReceive(ctx context.Context, id string) (*StatusChangeResponse, error) {
	return s.ChangeStatus(ctx, id, &ChangeStatusRequest{Status: string(domainShipment.StatusReceived)})
}

// List derives the requested view from the full record set.
func (s *Service) List(ctx context.Context, req *ListShipmentsRequest) (*ShipmentListResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid query", err)
	}

	records, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	viewName := req.View
	if viewName == "" {
		viewName = "active"
	}

	var scoped []domainShipment.Shipment
	switch viewName {
	case "active":
		scoped = view.Active(records, now)
	case "received":
		scoped = view.Received(records)
	default:
		scoped = records
	}

	filter := view.Filter{
		Search:         req.Search,
		Service:        req.Service,
		LoanOnly:       req.Loan,
		SortDescending: req.Sort != "asc",
	}

	// Untouched filters keep the view's own ordering; any search, service or
	// loan narrowing switches to the date sort of the search context.
	if filter.Search != "" || (filter.Service != "" && filter.Service != "TODO") || filter.LoanOnly || req.Sort != "" {
		scoped = view.Apply(scoped, filter)
	}

	return &ShipmentListResponse{
		Shipments: toShipmentResponses(scoped, now),
		Total:     len(scoped),
		View:      viewName,
	}, nil
}

// MailLink renders the service-request mailto URL for a record.
func (s *Service) MailLink(ctx context.Context, id string, delivery string, needsLoan bool) (*MailLinkResponse, error) {
	record, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	deliveryType := mailer.DeliveryHospital
	if delivery == string(mailer.DeliveryPickup) || delivery == "" {
		deliveryType = mailer.DeliveryPickup
	}

	link := mailer.BuildServiceRequestLink(record, mailer.RequestOptions{
		DeliveryType: deliveryType,
		NeedsLoan:    needsLoan,
	})

	return &MailLinkResponse{
		MailtoURL: link.MailtoURL,
		Recipient: link.Recipient,
	}, nil
}
