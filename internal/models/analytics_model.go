package models

// AnalyticsDataPoint is one calendar day of engagement figures. Pure value
// type, no identity.
type AnalyticsDataPoint struct {
	Date     string `json:"date"` // YYYY-MM-DD
	Likes    int    `json:"likes"`
	Comments int    `json:"comments"`
	Shares   int    `json:"shares"`
}
