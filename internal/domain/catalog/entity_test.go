package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProviderAddEmail(t *testing.T) {
	p := &Provider{Name: "Acme"}

	assert.True(t, p.AddEmail("sat@acme.es"))
	assert.True(t, p.AddEmail("admin@acme.es"))
	assert.False(t, p.AddEmail("sat@acme.es"), "duplicates are a no-op")
	assert.Equal(t, []string{"sat@acme.es", "admin@acme.es"}, p.Emails)
}

func TestProviderRemoveEmail(t *testing.T) {
	p := &Provider{Emails: []string{"a@x.es", "b@x.es"}}

	assert.True(t, p.RemoveEmail("a@x.es"))
	assert.False(t, p.RemoveEmail("missing@x.es"))
	assert.Equal(t, []string{"b@x.es"}, p.Emails)
}

func TestMergeContacts(t *testing.T) {
	t.Run("union preserving first-seen order", func(t *testing.T) {
		merged := MergeContacts(
			[]string{"a@x.es", "b@x.es"},
			[]string{"b@x.es", "c@x.es"},
		)
		assert.Equal(t, []string{"a@x.es", "b@x.es", "c@x.es"}, merged)
	})

	t.Run("empty strings are dropped", func(t *testing.T) {
		merged := MergeContacts([]string{"", "a@x.es"}, []string{""})
		assert.Equal(t, []string{"a@x.es"}, merged)
	})

	t.Run("nil inputs", func(t *testing.T) {
		assert.Empty(t, MergeContacts(nil, nil))
		assert.Equal(t, []string{"a@x.es"}, MergeContacts(nil, []string{"a@x.es"}))
	})
}

func TestDefaultServices(t *testing.T) {
	defaults := DefaultServices()
	assert.Equal(t, CatchAllService, defaults[0], "catch-all comes first")
	assert.Contains(t, defaults, "QUIROFANO")
	assert.Contains(t, defaults, "UCI")
}
