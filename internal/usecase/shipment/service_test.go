package shipment

import (
	"context"
	"testing"

	domainShipment "electromed-tracker/internal/domain/shipment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRepository is an in-memory Repository for exercising the service.
type fakeRepository struct {
	records map[string]domainShipment.Shipment
	order   []string
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{records: make(map[string]domainShipment.Shipment)}
}

func (r *fakeRepository) Create(_ context.Context, s *domainShipment.Shipment) error {
	r.records[s.ID] = *s
	r.order = append(r.order, s.ID)
	return nil
}

func (r *fakeRepository) GetByID(_ context.Context, id string) (*domainShipment.Shipment, error) {
	s, ok := r.records[id]
	if !ok {
		return nil, domainShipment.ErrShipmentNotFound
	}
	copied := s
	return &copied, nil
}

func (r *fakeRepository) Update(_ context.Context, s *domainShipment.Shipment) error {
	if _, ok := r.records[s.ID]; !ok {
		return domainShipment.ErrShipmentNotFound
	}
	r.records[s.ID] = *s
	return nil
}

func (r *fakeRepository) Delete(_ context.Context, id string) error {
	if _, ok := r.records[id]; !ok {
		return domainShipment.ErrShipmentNotFound
	}
	delete(r.records, id)
	return nil
}

func (r *fakeRepository) GetAll(_ context.Context) ([]domainShipment.Shipment, error) {
	out := make([]domainShipment.Shipment, 0, len(r.records))
	for _, id := range r.order {
		if s, ok := r.records[id]; ok {
			out = append(out, s)
		}
	}
	return out, nil
}

type countingNotifier struct {
	changes int
}

func (n *countingNotifier) ShipmentsChanged(context.Context) { n.changes++ }

func validCreateRequest() *CreateShipmentRequest {
	return &CreateShipmentRequest{
		Model:        "Monitor Philips MX450",
		Provider:     "Acme Medical",
		Service:      "UCI",
		ShipmentDate: domainShipment.ParseDate("2024-05-01"),
	}
}

func TestServiceCreate(t *testing.T) {
	t.Run("generates an id and defaults status and priority", func(t *testing.T) {
		repo := newFakeRepository()
		notifier := &countingNotifier{}
		svc := NewService(repo, notifier)

		resp, err := svc.Create(context.Background(), validCreateRequest())

		require.NoError(t, err)
		assert.Len(t, resp.ID, 6)
		assert.Equal(t, string(domainShipment.StatusSentToProvider), resp.Status)
		assert.Equal(t, string(domainShipment.PriorityNormal), resp.Priority)
		assert.False(t, resp.Received)
		assert.Equal(t, 1, notifier.changes)
	})

	t.Run("creating with a delivery date starts as RECIBIDO", func(t *testing.T) {
		svc := NewService(newFakeRepository(), nil)

		req := validCreateRequest()
		req.DeliveryDate = domainShipment.ParseDate("2024-05-05")
		resp, err := svc.Create(context.Background(), req)

		require.NoError(t, err)
		assert.Equal(t, string(domainShipment.StatusReceived), resp.Status)
		assert.True(t, resp.Received)
	})

	t.Run("shipment date is required", func(t *testing.T) {
		svc := NewService(newFakeRepository(), nil)

		req := validCreateRequest()
		req.ShipmentDate = domainShipment.Date{}
		_, err := svc.Create(context.Background(), req)

		require.Error(t, err)
	})

	t.Run("reference is canonicalized to uppercase", func(t *testing.T) {
		svc := NewService(newFakeRepository(), nil)

		req := validCreateRequest()
		req.Ref = "  ref-100 "
		resp, err := svc.Create(context.Background(), req)

		require.NoError(t, err)
		assert.Equal(t, "REF-100", resp.Ref)
	})
}

func TestServiceChangeStatus(t *testing.T) {
	repo := newFakeRepository()
	notifier := &countingNotifier{}
	svc := NewService(repo, notifier)

	created, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	resp, err := svc.ChangeStatus(context.Background(), created.ID, &ChangeStatusRequest{
		Status: string(domainShipment.StatusReceived),
	})

	require.NoError(t, err)
	assert.True(t, resp.Celebrate)
	assert.True(t, resp.Shipment.Received)
	assert.Equal(t, 2, notifier.changes)

	// Side effect example from the dashboard: all other fields untouched.
	assert.Equal(t, created.Model, resp.Shipment.Model)
	assert.Equal(t, created.Provider, resp.Shipment.Provider)
}

func TestServiceQuickReceive(t *testing.T) {
	svc := NewService(newFakeRepository(), nil)

	created, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	resp, err := svc.QuickReceive(context.Background(), created.ID)

	require.NoError(t, err)
	assert.True(t, resp.Celebrate)
	assert.Equal(t, string(domainShipment.StatusReceived), resp.Shipment.Status)
	assert.False(t, resp.Shipment.DeliveryDate.IsZero())
}

func TestServiceList(t *testing.T) {
	repo := newFakeRepository()
	svc := NewService(repo, nil)

	out := validCreateRequest()
	out.Model = "Bomba de infusión"
	_, err := svc.Create(context.Background(), out)
	require.NoError(t, err)

	back := validCreateRequest()
	back.Model = "Desfibrilador"
	back.DeliveryDate = domainShipment.ParseDate("2024-05-10")
	_, err = svc.Create(context.Background(), back)
	require.NoError(t, err)

	t.Run("active view excludes received records", func(t *testing.T) {
		resp, err := svc.List(context.Background(), &ListShipmentsRequest{View: "active"})
		require.NoError(t, err)
		require.Equal(t, 1, resp.Total)
		assert.Equal(t, "Bomba de infusión", resp.Shipments[0].Model)
	})

	t.Run("received view excludes active records", func(t *testing.T) {
		resp, err := svc.List(context.Background(), &ListShipmentsRequest{View: "received"})
		require.NoError(t, err)
		require.Equal(t, 1, resp.Total)
		assert.Equal(t, "Desfibrilador", resp.Shipments[0].Model)
	})

	t.Run("all view with search", func(t *testing.T) {
		resp, err := svc.List(context.Background(), &ListShipmentsRequest{View: "all", Search: "desfib"})
		require.NoError(t, err)
		require.Equal(t, 1, resp.Total)
	})

	t.Run("view defaults to active", func(t *testing.T) {
		resp, err := svc.List(context.Background(), &ListShipmentsRequest{})
		require.NoError(t, err)
		assert.Equal(t, "active", resp.View)
	})
}

func TestServiceUpdateAndDelete(t *testing.T) {
	svc := NewService(newFakeRepository(), nil)

	created, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), created.ID, &UpdateShipmentRequest{
		Model:        "Monitor Philips MX550",
		Provider:     "Acme Medical",
		Service:      "QUIROFANO",
		ShipmentDate: domainShipment.ParseDate("2024-05-02"),
		Priority:     string(domainShipment.PriorityHigh),
	})
	require.NoError(t, err)
	assert.Equal(t, "Monitor Philips MX550", updated.Model)
	assert.Equal(t, "QUIROFANO", updated.Service)
	assert.Equal(t, string(domainShipment.PriorityHigh), updated.Priority)

	require.NoError(t, svc.Delete(context.Background(), created.ID))

	_, err = svc.Get(context.Background(), created.ID)
	assert.ErrorIs(t, err, domainShipment.ErrShipmentNotFound)
}

func TestServiceMailLink(t *testing.T) {
	svc := NewService(newFakeRepository(), nil)

	req := validCreateRequest()
	req.ProviderContact = "Juan Pérez <sat@acme-medical.es> 600123123"
	created, err := svc.Create(context.Background(), req)
	require.NoError(t, err)

	link, err := svc.MailLink(context.Background(), created.ID, "pickup", true)

	require.NoError(t, err)
	assert.Equal(t, "sat@acme-medical.es", link.Recipient)
	assert.Contains(t, link.MailtoURL, "mailto:sat@acme-medical.es")
}
