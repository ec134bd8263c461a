package catalog

import (
	"time"

	"github.com/google/uuid"
)

// CatchAllService is the service filter value that matches every record. It
// is always present in the catalog and cannot be removed.
const CatchAllService = "TODO"

// DefaultServices seeds the service catalog on first start.
func DefaultServices() []string {
	return []string{
		CatchAllService, "QUIROFANO", "UCI", "URGENCIAS", "HOSPITALIZACIÓN",
		"RESONANCIA/TAC", "LABORATORIO", "CONSULTAS S1", "CONSULTAS 3P",
		"NIDO", "HOSPITAL DE DÍA",
	}
}

// Service is a named hospital department/category. The catalog is an
// ordered set of unique uppercase names.
type Service struct {
	Name     string
	Position int
}

// Reference is a canonical equipment-reference entry used to pre-fill
// repeated shipments of the same device type. Keyed by the uppercase
// reference code.
type Reference struct {
	ID       uuid.UUID
	Ref      string
	Model    string
	Service  string
	Provider string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Provider is a canonical external repair/service vendor entry keyed by
// name, carrying its known contact emails in first-seen order.
type Provider struct {
	ID     uuid.UUID
	Name   string
	Emails []string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// AddEmail appends an email if not already present; duplicates are a no-op.
func (p *Provider) AddEmail(email string) bool {
	for _, existing := range p.Emails {
		if existing == email {
			return false
		}
	}
	p.Emails = append(p.Emails, email)
	return true
}

// RemoveEmail filters the email out of the contact set.
func (p *Provider) RemoveEmail(email string) bool {
	for i, existing := range p.Emails {
		if existing == email {
			p.Emails = append(p.Emails[:i], p.Emails[i+1:]...)
			return true
		}
	}
	return false
}

// MergeContacts unions two contact lists, deduplicated, preserving
// first-seen order for display stability.
func MergeContacts(existing, referenced []string) []string {
	seen := make(map[string]struct{}, len(existing)+len(referenced))
	merged := make([]string, 0, len(existing)+len(referenced))

	for _, list := range [][]string{existing, referenced} {
		for _, contact := range list {
			if contact == "" {
				continue
			}
			if _, ok := seen[contact]; ok {
				continue
			}
			seen[contact] = struct{}{}
			merged = append(merged, contact)
		}
	}

	return merged
}
