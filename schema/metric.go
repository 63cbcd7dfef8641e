package schema

// ServiceMetrics is a day-over-day snapshot of community activity,
// served from the secret metrics endpoint.
type ServiceMetrics struct {
	ReportsToday     int64 `json:"reports_today"`
	ReportsYesterday int64 `json:"reports_yesterday"`
	CommitsToday     int64 `json:"commits_today"`
	CommitsYesterday int64 `json:"commits_yesterday"`
}
