package query

import "github.com/04yashgautam/adverai/internal/models"

// Fallback is the canned response used when the whole pipeline fails, and
// the source of substitute rows when a filtered read comes back empty. It is
// a pure constant; a fresh copy is built per call so callers can append to
// slices without aliasing.
func Fallback() models.VisualizationConfig {
	return models.VisualizationConfig{
		Metrics: []models.MetricSpec{
			{Title: "Impressions", ValueKey: "impressions"},
			{Title: "Conversions", ValueKey: "conversions"},
		},
		Visualizations: []models.VizSpec{
			{Type: "metric-card", Title: "Impressions", ValueKey: "impressions"},
			{Type: "metric-card", Title: "Conversions", ValueKey: "conversions"},
			{
				Type:  "bar-chart",
				Title: "Impressions vs Conversions",
				XKey:  "campaign_name",
				YKeys: []string{"impressions", "conversions"},
			},
		},
		Filters: models.FilterSpec{
			Date: &models.DateFilter{Type: "single", Value: "2025-08-04"},
		},
		Insights: []string{
			"Campaign A had higher engagement than Campaign B.",
			"Conversions were proportionally higher for Campaign A.",
		},
		Data: []models.Row{
			{"campaign_name": "Campaign A", "impressions": 1200, "conversions": 40},
			{"campaign_name": "Campaign B", "impressions": 900, "conversions": 25},
		},
		LineChartData: []models.TimePoint{
			{Date: "2025-08-01", Impressions: 1000},
			{Date: "2025-08-02", Impressions: 1500},
		},
	}
}
