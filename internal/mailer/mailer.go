// Package mailer builds mailto deep links for requesting repair service from
// a provider. The actual mail client is external; this only renders the
// subject/body templates and the recipient extracted from the free-text
// provider contact.
package mailer

import (
	"fmt"
	"net/url"
	"strings"

	domainShipment "electromed-tracker/internal/domain/shipment"
	"electromed-tracker/pkg/utils"
)

type DeliveryType string

const (
	// DeliveryPickup asks the provider to collect the equipment at the
	// electromedicine office.
	DeliveryPickup DeliveryType = "pickup"
	// DeliveryHospital announces the hospital will ship the equipment itself.
	DeliveryHospital DeliveryType = "hospital"
)

// instrumentalRef marks surgical instrument batches, which get a shorter
// mail template without model/serial details.
const instrumentalRef = "INSTRUMENTAL"

type RequestOptions struct {
	DeliveryType DeliveryType
	NeedsLoan    bool
}

type Link struct {
	MailtoURL string
	Recipient string
}

// BuildServiceRequestLink renders the service-request mail as a mailto URL.
func BuildServiceRequestLink(s *domainShipment.Shipment, opts RequestOptions) *Link {
	recipient := utils.ExtractEmail(s.ProviderContact)

	model := s.Model
	if model == "" {
		model = "Equipo"
	}
	ref := s.Ref
	if ref == "" {
		ref = "N/A"
	}
	subject := fmt.Sprintf("Solicitud servicio técnico - %s - Ref: %s", model, ref)

	mailto := fmt.Sprintf("mailto:%s?subject=%s&body=%s",
		recipient, escape(subject), escape(buildBody(s, opts)))

	return &Link{
		MailtoURL: mailto,
		Recipient: recipient,
	}
}

func buildBody(s *domainShipment.Shipment, opts RequestOptions) string {
	actionText := "Procederemos al envío del equipo a vuestras instalaciones."
	if opts.DeliveryType == DeliveryPickup {
		actionText = "Solicitamos recogida en la oficina de electromedicina (Almacén general)."
	}

	loanText := ""
	if opts.NeedsLoan {
		loanText = "\n\nNos gustaría disponer de un equipo en préstamo para continuar con la actividad habitual."
	}

	if s.Ref == instrumentalRef {
		observations := s.Observations
		if observations == "" {
			observations = "[OBSERVACIONES Y DOCUMENTACIÓN]"
		}
		return fmt.Sprintf("Buenos días,\n\nTenemos el siguiente material para reparar: %s.\n\n%s%s\n\nMuchas gracias",
			observations, actionText, loanText)
	}

	model := s.Model
	if model == "" {
		model = "[DESCRIPCIÓN DEL EQUIPO]"
	}
	ref := s.Ref
	if ref == "" {
		ref = "[REFERENCIA]"
	}
	sn := s.SN
	if sn == "" {
		sn = "[NUMERO DE SERIE]"
	}
	observations := s.Observations
	if observations == "" {
		observations = "[PROBLEMA CONSTATADO/OBSERVACIONES]"
	}

	return fmt.Sprintf("Hola,\n\nTenemos el equipo %s referencia %s con SN: %s con el siguiente problema:\n\n%s\n\n%s%s\n\nMuchas gracias.",
		model, ref, sn, observations, actionText, loanText)
}

// escape percent-encodes for a mailto query; spaces must be %20, not '+'.
func escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
