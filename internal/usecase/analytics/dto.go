package analytics

// Range selects the reporting window.
type Range string

const (
	RangeLast30Days Range = "30D"
	RangeLast6Month Range = "6M"
	RangeAllTime    Range = "ALL"
)

func (r Range) Valid() bool {
	switch r {
	case RangeLast30Days, RangeLast6Month, RangeAllTime:
		return true
	}
	return false
}

type ReportRequest struct {
	Range    string `form:"range" validate:"omitempty,oneof=30D 6M ALL"`
	Provider string `form:"provider"`
}

// ProviderStats is one row of the slowest-provider ranking.
type ProviderStats struct {
	Provider    string  `json:"provider"`
	AvgDays     float64 `json:"avg_days"`
	Shipments   int     `json:"shipments"`
	ActiveCount int     `json:"active_count"`
}

// MonthlyFlowPoint counts shipments dispatched in one calendar month.
type MonthlyFlowPoint struct {
	Label string `json:"label"`
	Year  int    `json:"year"`
	Month int    `json:"month"`
	Count int    `json:"count"`
}

// Report is the full statistics payload for the analytics dashboard.
type Report struct {
	Range    string `json:"range"`
	Provider string `json:"provider,omitempty"`

	// AvgManagementDays averages elapsed days over received records only.
	AvgManagementDays float64 `json:"avg_management_days"`
	// AvgProviderResponseDays estimates the external vendor share of the
	// management time as 80% of the average.
	AvgProviderResponseDays float64 `json:"avg_provider_response_days"`
	TotalProcessed          int     `json:"total_processed"`
	TotalActive             int     `json:"total_active"`
	// ResolutionRate is received / total in the window, as a percentage.
	ResolutionRate float64 `json:"resolution_rate"`

	TopProviders []ProviderStats    `json:"top_providers"`
	MonthlyFlow  []MonthlyFlowPoint `json:"monthly_flow"`
}
