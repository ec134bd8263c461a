package analytics

import (
	"context"
	"sort"
	"time"

	domainShipment "electromed-tracker/internal/domain/shipment"
	appErrors "electromed-tracker/pkg/errors"
	"electromed-tracker/pkg/utils"
)

const (
	topProviderCount = 5
	flowMonths       = 6
	// providerResponseShare estimates how much of the total management time
	// is spent waiting on the external vendor.
	providerResponseShare = 0.8
)

// monthLabels holds the Spanish short month names used on the flow chart.
var monthLabels = [...]string{
	"Ene", "Feb", "Mar", "Abr", "May", "Jun",
	"Jul", "Ago", "Sep", "Oct", "Nov", "Dic",
}

// Service computes the analytics report from the full record set.
type Service struct {
	repo domainShipment.Repository
}

func NewService(repo domainShipment.Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Report(ctx context.Context, req *ReportRequest) (*Report, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid query", err)
	}

	records, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	window := Range(req.Range)
	if window == "" {
		window = RangeLast30Days
	}

	return BuildReport(records, window, req.Provider, time.Now()), nil
}

// BuildReport aggregates statistics over the record set. Pure: recomputed
// wholesale on every call, which is fine at the tens-to-hundreds record
// volumes this dashboard sees.
func BuildReport(records []domainShipment.Shipment, window Range, provider string, now time.Time) *Report {
	if !window.Valid() {
		window = RangeLast30Days
	}

	byProvider := make([]domainShipment.Shipment, 0, len(records))
	for _, r := range records {
		if provider != "" && r.Provider != provider {
			continue
		}
		byProvider = append(byProvider, r)
	}

	cutoff, bounded := windowCutoff(window, now)
	filtered := make([]domainShipment.Shipment, 0, len(byProvider))
	for _, r := range byProvider {
		if bounded && r.EffectiveDate().Before(cutoff) {
			continue
		}
		filtered = append(filtered, r)
	}

	report := &Report{
		Range:    string(window),
		Provider: provider,
	}

	var receivedDays, receivedCount int
	for _, r := range filtered {
		if r.Received() {
			receivedCount++
			receivedDays += r.DaysOut(now)
		} else {
			report.TotalActive++
		}
	}
	report.TotalProcessed = len(filtered)
	if receivedCount > 0 {
		report.AvgManagementDays = float64(receivedDays) / float64(receivedCount)
	}
	report.AvgProviderResponseDays = report.AvgManagementDays * providerResponseShare

	denominator := len(filtered)
	if denominator < 1 {
		denominator = 1
	}
	report.ResolutionRate = float64(receivedCount) / float64(denominator) * 100

	report.TopProviders = rankProviders(filtered, now)
	// The flow chart ignores the time window on purpose: it always shows the
	// trailing six months, narrowed only by the provider filter.
	report.MonthlyFlow = monthlyFlow(byProvider, now)

	return report
}

func windowCutoff(window Range, now time.Time) (time.Time, bool) {
	switch window {
	case RangeLast30Days:
		return now.AddDate(0, 0, -30), true
	case RangeLast6Month:
		return now.AddDate(0, -6, 0), true
	default:
		return time.Time{}, false
	}
}

// rankProviders groups by provider and sorts by average elapsed days,
// slowest first, keeping the top 5. Still-active records count days up to
// now, so a provider sitting on equipment climbs the ranking daily.
func rankProviders(records []domainShipment.Shipment, now time.Time) []ProviderStats {
	type bucket struct {
		days   int
		total  int
		active int
	}
	buckets := make(map[string]*bucket)
	order := make([]string, 0)

	for _, r := range records {
		name := r.Provider
		if name == "" {
			continue
		}
		b, ok := buckets[name]
		if !ok {
			b = &bucket{}
			buckets[name] = b
			order = append(order, name)
		}
		b.total++
		b.days += r.DaysOut(now)
		if !r.Received() {
			b.active++
		}
	}

	stats := make([]ProviderStats, 0, len(order))
	for _, name := range order {
		b := buckets[name]
		stats = append(stats, ProviderStats{
			Provider:    name,
			AvgDays:     float64(b.days) / float64(b.total),
			Shipments:   b.total,
			ActiveCount: b.active,
		})
	}

	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].AvgDays > stats[j].AvgDays
	})

	if len(stats) > topProviderCount {
		stats = stats[:topProviderCount]
	}
	return stats
}

// monthlyFlow counts dispatches per calendar month over the trailing six
// months, oldest first. Month arithmetic anchors to day 1 so a call on the
// 31st cannot overflow into the wrong month.
func monthlyFlow(records []domainShipment.Shipment, now time.Time) []MonthlyFlowPoint {
	anchor := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	points := make([]MonthlyFlowPoint, flowMonths)
	index := make(map[[2]int]*MonthlyFlowPoint, flowMonths)
	for i := 0; i < flowMonths; i++ {
		month := anchor.AddDate(0, i-(flowMonths-1), 0)
		points[i] = MonthlyFlowPoint{
			Label: monthLabels[month.Month()-1],
			Year:  month.Year(),
			Month: int(month.Month()),
		}
		index[[2]int{month.Year(), int(month.Month())}] = &points[i]
	}

	for _, r := range records {
		if r.ShipmentDate.IsZero() {
			continue
		}
		t := r.ShipmentDate.Time()
		if p, ok := index[[2]int{t.Year(), int(t.Month())}]; ok {
			p.Count++
		}
	}

	return points
}
