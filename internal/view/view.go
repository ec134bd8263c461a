// Package view derives filtered and sorted projections from the full
// shipment record set. All functions are pure: they never mutate their input
// and can be re-run wholesale on every snapshot the record store delivers.
package view

import (
	"sort"
	"strings"
	"time"

	"electromed-tracker/internal/domain/catalog"
	"electromed-tracker/internal/domain/shipment"
)

// Filter describes what a dashboard view wants to see.
type Filter struct {
	// Search matches case-insensitively against model, serial number,
	// reference, provider and service. Empty matches everything.
	Search string
	// Service restricts to a single hospital service. Empty or TODO matches
	// everything.
	Service string
	// LoanOnly keeps only records with loan equipment out.
	LoanOnly bool
	// SortDescending orders by effective date, newest first, when true.
	SortDescending bool
}

// Matches reports whether a single record passes the filter.
func Matches(s *shipment.Shipment, f Filter) bool {
	if f.Search != "" {
		term := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(s.Model), term) &&
			!strings.Contains(strings.ToLower(s.SN), term) &&
			!strings.Contains(strings.ToLower(s.Ref), term) &&
			!strings.Contains(strings.ToLower(s.Provider), term) &&
			!strings.Contains(strings.ToLower(s.Service), term) {
			return false
		}
	}

	if f.Service != "" && f.Service != catalog.CatchAllService && s.Service != f.Service {
		return false
	}

	if f.LoanOnly && !s.Loan {
		return false
	}

	return true
}

// Apply filters the record set and sorts by effective date (shipment date,
// falling back to creation timestamp) in the requested direction.
func Apply(records []shipment.Shipment, f Filter) []shipment.Shipment {
	filtered := make([]shipment.Shipment, 0, len(records))
	for _, s := range records {
		if Matches(&s, f) {
			filtered = append(filtered, s)
		}
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		a := filtered[i].EffectiveDate()
		b := filtered[j].EffectiveDate()
		if f.SortDescending {
			return a.After(b)
		}
		return a.Before(b)
	})

	return filtered
}

// Partition splits the record set into active (no delivery date) and
// received (delivery date set). Every record lands in exactly one half.
func Partition(records []shipment.Shipment) (active, received []shipment.Shipment) {
	active = make([]shipment.Shipment, 0, len(records))
	received = make([]shipment.Shipment, 0, len(records))
	for _, s := range records {
		if s.Received() {
			received = append(received, s)
		} else {
			active = append(active, s)
		}
	}
	return active, received
}

// Active returns the still-out records sorted by elapsed days, longest out
// first. The sort is stable so equal day counts keep their input order.
func Active(records []shipment.Shipment, now time.Time) []shipment.Shipment {
	active, _ := Partition(records)
	sort.SliceStable(active, func(i, j int) bool {
		return active[i].DaysOut(now) > active[j].DaysOut(now)
	})
	return active
}

// Received returns the returned records sorted by delivery date, most
// recently received first.
func Received(records []shipment.Shipment) []shipment.Shipment {
	_, received := Partition(records)
	sort.SliceStable(received, func(i, j int) bool {
		return received[i].DeliveryDate.After(received[j].DeliveryDate)
	})
	return received
}
