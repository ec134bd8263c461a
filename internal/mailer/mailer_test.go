package mailer

import (
	"net/url"
	"strings"
	"testing"

	domainShipment "electromed-tracker/internal/domain/shipment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample() *domainShipment.Shipment {
	return &domainShipment.Shipment{
		Model:           "Monitor MX450",
		SN:              "SN-9000",
		Ref:             "REF-100",
		Provider:        "Acme Medical",
		ProviderContact: "Juan <sat@acme.es> 600111222",
		Observations:    "No enciende",
	}
}

func TestBuildServiceRequestLink(t *testing.T) {
	link := BuildServiceRequestLink(sample(), RequestOptions{DeliveryType: DeliveryHospital})

	assert.Equal(t, "sat@acme.es", link.Recipient)
	assert.True(t, strings.HasPrefix(link.MailtoURL, "mailto:sat@acme.es?subject="))

	// Spaces must be %20: mail clients do not decode '+' in mailto URLs.
	assert.NotContains(t, link.MailtoURL, "+")

	decoded := decodeBody(t, link.MailtoURL)
	assert.Contains(t, decoded, "Monitor MX450")
	assert.Contains(t, decoded, "SN: SN-9000")
	assert.Contains(t, decoded, "No enciende")
	assert.Contains(t, decoded, "Procederemos al envío")
	assert.NotContains(t, decoded, "préstamo")
}

func TestBuildServiceRequestLinkPickup(t *testing.T) {
	link := BuildServiceRequestLink(sample(), RequestOptions{DeliveryType: DeliveryPickup})

	decoded := decodeBody(t, link.MailtoURL)
	assert.Contains(t, decoded, "Solicitamos recogida")
	assert.NotContains(t, decoded, "Procederemos al envío")
}

func TestBuildServiceRequestLinkLoan(t *testing.T) {
	link := BuildServiceRequestLink(sample(), RequestOptions{DeliveryType: DeliveryPickup, NeedsLoan: true})

	decoded := decodeBody(t, link.MailtoURL)
	assert.Contains(t, decoded, "préstamo")
}

func TestBuildServiceRequestLinkInstrumental(t *testing.T) {
	s := sample()
	s.Ref = "INSTRUMENTAL"
	s.Observations = "2 pinzas Kocher, 1 tijera Mayo"

	link := BuildServiceRequestLink(s, RequestOptions{DeliveryType: DeliveryHospital})

	decoded := decodeBody(t, link.MailtoURL)
	assert.Contains(t, decoded, "material para reparar")
	assert.Contains(t, decoded, "pinzas Kocher")
	// The short template omits the equipment identification block.
	assert.NotContains(t, decoded, "SN:")
}

func TestBuildServiceRequestLinkPlaceholders(t *testing.T) {
	s := &domainShipment.Shipment{Provider: "Acme"}

	link := BuildServiceRequestLink(s, RequestOptions{DeliveryType: DeliveryHospital})

	assert.Empty(t, link.Recipient, "no email in contact yields an empty recipient")

	decoded := decodeBody(t, link.MailtoURL)
	assert.Contains(t, decoded, "[NUMERO DE SERIE]")
	assert.Contains(t, decoded, "[REFERENCIA]")
}

func decodeBody(t *testing.T, mailto string) string {
	t.Helper()
	idx := strings.Index(mailto, "body=")
	require.Greater(t, idx, 0)
	decoded, err := url.QueryUnescape(mailto[idx+len("body="):])
	require.NoError(t, err)
	return decoded
}
