package catalog

import (
	"context"
	"testing"

	domainCatalog "electromed-tracker/internal/domain/catalog"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeServiceRepo struct {
	names []string
}

func (r *fakeServiceRepo) List(context.Context) ([]domainCatalog.Service, error) {
	out := make([]domainCatalog.Service, len(r.names))
	for i, n := range r.names {
		out[i] = domainCatalog.Service{Name: n, Position: i}
	}
	return out, nil
}

func (r *fakeServiceRepo) Add(_ context.Context, name string) error {
	r.names = append(r.names, name)
	return nil
}

func (r *fakeServiceRepo) Remove(_ context.Context, name string) error {
	for i, n := range r.names {
		if n == name {
			r.names = append(r.names[:i], r.names[i+1:]...)
			return nil
		}
	}
	return domainCatalog.ErrServiceNotFound
}

func (r *fakeServiceRepo) Exists(_ context.Context, name string) (bool, error) {
	for _, n := range r.names {
		if n == name {
			return true, nil
		}
	}
	return false, nil
}

type fakeReferenceRepo struct {
	refs map[string]domainCatalog.Reference
}

func newFakeReferenceRepo() *fakeReferenceRepo {
	return &fakeReferenceRepo{refs: make(map[string]domainCatalog.Reference)}
}

func (r *fakeReferenceRepo) List(context.Context) ([]domainCatalog.Reference, error) {
	out := make([]domainCatalog.Reference, 0, len(r.refs))
	for _, ref := range r.refs {
		out = append(out, ref)
	}
	return out, nil
}

func (r *fakeReferenceRepo) GetByRef(_ context.Context, ref string) (*domainCatalog.Reference, error) {
	if found, ok := r.refs[ref]; ok {
		copied := found
		return &copied, nil
	}
	return nil, domainCatalog.ErrReferenceNotFound
}

func (r *fakeReferenceRepo) Create(_ context.Context, ref *domainCatalog.Reference) error {
	r.refs[ref.Ref] = *ref
	return nil
}

func (r *fakeReferenceRepo) Update(_ context.Context, ref *domainCatalog.Reference) error {
	r.refs[ref.Ref] = *ref
	return nil
}

func (r *fakeReferenceRepo) Delete(_ context.Context, id uuid.UUID) error {
	for key, ref := range r.refs {
		if ref.ID == id {
			delete(r.refs, key)
			return nil
		}
	}
	return domainCatalog.ErrReferenceNotFound
}

type fakeProviderRepo struct {
	providers map[string]domainCatalog.Provider
}

func newFakeProviderRepo() *fakeProviderRepo {
	return &fakeProviderRepo{providers: make(map[string]domainCatalog.Provider)}
}

func (r *fakeProviderRepo) List(context.Context) ([]domainCatalog.Provider, error) {
	out := make([]domainCatalog.Provider, 0, len(r.providers))
	for _, p := range r.providers {
		out = append(out, p)
	}
	return out, nil
}

func (r *fakeProviderRepo) GetByName(_ context.Context, name string) (*domainCatalog.Provider, error) {
	if found, ok := r.providers[name]; ok {
		copied := found
		return &copied, nil
	}
	return nil, domainCatalog.ErrProviderNotFound
}

func (r *fakeProviderRepo) Create(_ context.Context, p *domainCatalog.Provider) error {
	r.providers[p.Name] = *p
	return nil
}

func (r *fakeProviderRepo) Update(_ context.Context, p *domainCatalog.Provider) error {
	r.providers[p.Name] = *p
	return nil
}

func (r *fakeProviderRepo) Delete(_ context.Context, id uuid.UUID) error {
	for key, p := range r.providers {
		if p.ID == id {
			delete(r.providers, key)
			return nil
		}
	}
	return domainCatalog.ErrProviderNotFound
}

func newTestService() (*Service, *fakeServiceRepo, *fakeReferenceRepo, *fakeProviderRepo) {
	services := &fakeServiceRepo{names: domainCatalog.DefaultServices()}
	references := newFakeReferenceRepo()
	providers := newFakeProviderRepo()
	return NewService(services, references, providers, nil), services, references, providers
}

func TestAddService(t *testing.T) {
	svc, repo, _, _ := newTestService()

	t.Run("uppercases and appends", func(t *testing.T) {
		err := svc.AddService(context.Background(), &AddServiceRequest{Name: " farmacia "})
		require.NoError(t, err)
		assert.Equal(t, "FARMACIA", repo.names[len(repo.names)-1])
	})

	t.Run("duplicates are rejected", func(t *testing.T) {
		err := svc.AddService(context.Background(), &AddServiceRequest{Name: "uci"})
		assert.Error(t, err)
	})
}

func TestRemoveService(t *testing.T) {
	svc, repo, _, _ := newTestService()

	t.Run("TODO cannot be removed", func(t *testing.T) {
		err := svc.RemoveService(context.Background(), "TODO")
		assert.ErrorIs(t, err, domainCatalog.ErrServiceProtected)
		assert.Contains(t, repo.names, "TODO")
	})

	t.Run("regular services are removed", func(t *testing.T) {
		require.NoError(t, svc.RemoveService(context.Background(), "NIDO"))
		assert.NotContains(t, repo.names, "NIDO")
	})
}

func TestRegisterReference(t *testing.T) {
	svc, _, _, _ := newTestService()

	req := &RegisterReferenceRequest{
		Ref:      "ref-100",
		Model:    "Infusion Pump",
		Service:  "uci",
		Provider: "Acme",
	}

	resp, err := svc.RegisterReference(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "REF-100", resp.Ref)
	assert.Equal(t, "UCI", resp.Service)

	// The backing store overwrites duplicate keys, so the service pre-checks.
	_, err = svc.RegisterReference(context.Background(), req)
	assert.Error(t, err)
}

func TestFormDefaults(t *testing.T) {
	svc, _, references, providers := newTestService()

	require.NoError(t, references.Create(context.Background(), &domainCatalog.Reference{
		ID: uuid.New(), Ref: "REF-100", Model: "Infusion Pump", Service: "UCI", Provider: "Acme",
	}))
	require.NoError(t, providers.Create(context.Background(), &domainCatalog.Provider{
		ID: uuid.New(), Name: "Acme", Emails: []string{"sat@acme.es", "admin@acme.es"},
	}))

	t.Run("known reference fills model, service, provider and contacts", func(t *testing.T) {
		resp, err := svc.FormDefaults(context.Background(), "ref-100")
		require.NoError(t, err)
		assert.True(t, resp.ReferenceExists)
		assert.Equal(t, "Infusion Pump", resp.Model)
		assert.Equal(t, "UCI", resp.Service)
		assert.Equal(t, "Acme", resp.Provider)
		assert.Equal(t, []string{"sat@acme.es", "admin@acme.es"}, resp.ProviderEmails)
	})

	t.Run("unknown reference is not an error", func(t *testing.T) {
		resp, err := svc.FormDefaults(context.Background(), "UNKNOWN")
		require.NoError(t, err)
		assert.False(t, resp.ReferenceExists)
		assert.Empty(t, resp.Model)
	})
}

func TestProviderEmails(t *testing.T) {
	svc, _, _, providers := newTestService()

	created, err := svc.RegisterProvider(context.Background(), &RegisterProviderRequest{
		Name:   "Acme",
		Emails: []string{"sat@acme.es", "sat@acme.es"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"sat@acme.es"}, created.Emails, "registration deduplicates")

	id := providers.providers["Acme"].ID

	updated, err := svc.AddProviderEmail(context.Background(), id, &ProviderEmailRequest{Email: "admin@acme.es"})
	require.NoError(t, err)
	assert.Equal(t, []string{"sat@acme.es", "admin@acme.es"}, updated.Emails)

	// Duplicate add is a no-op, not an error.
	again, err := svc.AddProviderEmail(context.Background(), id, &ProviderEmailRequest{Email: "admin@acme.es"})
	require.NoError(t, err)
	assert.Len(t, again.Emails, 2)

	removed, err := svc.RemoveProviderEmail(context.Background(), id, "sat@acme.es")
	require.NoError(t, err)
	assert.Equal(t, []string{"admin@acme.es"}, removed.Emails)
}

func TestRegisterProviderDuplicate(t *testing.T) {
	svc, _, _, _ := newTestService()

	_, err := svc.RegisterProvider(context.Background(), &RegisterProviderRequest{Name: "Acme"})
	require.NoError(t, err)

	_, err = svc.RegisterProvider(context.Background(), &RegisterProviderRequest{Name: "Acme"})
	assert.Error(t, err)
}
