package metrics

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/04yashgautam/adverai/internal/models"
)

const noDate = "No Date"

// ImpressionsByDate folds the full history into one impressions total per
// normalized date, sorted ascending. Dates that fail to parse as YYYY-MM-DD
// keep their raw stringified value; missing dates land under "No Date".
// Lexicographic order on the normalized keys coincides with chronological
// order for well-formed dates.
func ImpressionsByDate(rows []models.Row) []models.TimePoint {
	totals := map[string]int{}
	for _, r := range rows {
		totals[normDate(r["date"])] += toInt(r["impressions"])
	}
	keys := make([]string, 0, len(totals))
	for k := range totals {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]models.TimePoint, 0, len(keys))
	for _, k := range keys {
		out = append(out, models.TimePoint{Date: k, Impressions: totals[k]})
	}
	return out
}

func normDate(v any) string {
	if v == nil {
		return noDate
	}
	s := fmt.Sprintf("%v", v)
	if s == "" {
		return noDate
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t.Format("2006-01-02")
	}
	return s
}

// toInt coerces whatever numeric shape the store hands back; anything
// non-numeric counts as zero.
func toInt(v any) int {
	switch n := v.(type) {
	case int:
		return n
	case int32:
		return int(n)
	case int64:
		return int(n)
	case float64:
		return int(n)
	case float32:
		return int(n)
	case string:
		if i, err := strconv.Atoi(n); err == nil {
			return i
		}
		if f, err := strconv.ParseFloat(n, 64); err == nil {
			return int(f)
		}
		return 0
	default:
		return 0
	}
}
