package models

// TrendPoint is one day's aggregate compliance metrics. Date is an ISO
// calendar date (YYYY-MM-DD), so lexicographic order equals chronological
// order.
type TrendPoint struct {
	Date            string  `json:"date"`
	ComplianceScore float64 `json:"compliance_score"`
	Passing         int     `json:"passing"`
	Failing         int     `json:"failing"`
}

// Event is a human-annotated milestone overlaid on the trend chart. Events
// whose date has no matching trend point are dropped at assembly time.
type Event struct {
	Date  string `json:"date"`
	Event string `json:"event"`
}

// TrendData mirrors the on-disk layout of the trend file
type TrendData struct {
	TrendData []TrendPoint `json:"trend_data"`
	Events    []Event      `json:"events"`
}
