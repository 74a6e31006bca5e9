package analyticsapimodels

type JobStat struct {
	JobID            string   `json:"job_id"`
	Title            string   `json:"title"`
	Views            int64    `json:"views"`
	Clicks           int64    `json:"clicks"`
	Applications     int      `json:"applications"`
	ClickThroughRate *float64 `json:"click_through_rate,omitempty"` // clicks/views, absent without views
	ConversionRate   *float64 `json:"conversion_rate,omitempty"`    // applications/clicks, absent without clicks
}

type Summary struct {
	Jobs         []JobStat `json:"jobs"`
	TotalViews   int64     `json:"total_views"`
	TotalClicks  int64     `json:"total_clicks"`
	Applications int       `json:"applications"`
}
