package models

import (
	"encoding/json"
	"strings"
)

// Row is one campaign-stats document from the backing store. Documents are
// open records: fields beyond the known schema pass through untouched.
type Row = map[string]any

type MetricSpec struct {
	Title    string `json:"title"`
	ValueKey string `json:"value_key"`
	Format   string `json:"format,omitempty"` // number|currency|percentage
}

type VizSpec struct {
	Type        string   `json:"type"`
	Title       string   `json:"title"`
	XKey        string   `json:"x_key,omitempty"`
	YKeys       []string `json:"y_keys,omitempty"`
	ValueKey    string   `json:"value_key,omitempty"`
	Description string   `json:"description,omitempty"`
}

// DateFilter arrives from the provider either as a scalar date expression or
// as a {type, value} object; both decode into the same shape.
type DateFilter struct {
	Type  string `json:"type,omitempty"` // single|range
	Value string `json:"value"`
}

func (d *DateFilter) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		d.Type = ""
		d.Value = s
		return nil
	}
	type alias DateFilter
	var a alias
	if err := json.Unmarshal(b, &a); err != nil {
		return err
	}
	*d = DateFilter(a)
	return nil
}

// IsZero reports whether no usable date expression was supplied.
func (d *DateFilter) IsZero() bool {
	return d == nil || strings.TrimSpace(d.Value) == ""
}

type FilterSpec struct {
	Date              *DateFilter `json:"date"`
	Campaign          *string     `json:"campaign"`
	AdditionalContext *string     `json:"additional_context"`
}

type TimePoint struct {
	Date        string `json:"date"`
	Impressions int    `json:"impressions"`
}

// VisualizationConfig is the full response contract: the provider-authored
// plan plus the data merged in by the pipeline. All six fields are present
// on every response.
type VisualizationConfig struct {
	Metrics        []MetricSpec `json:"metrics"`
	Visualizations []VizSpec    `json:"visualizations"`
	Filters        FilterSpec   `json:"filters"`
	Insights       []string     `json:"insights"`
	Data           []Row        `json:"data"`
	LineChartData  []TimePoint  `json:"line_chart_data"`
}
