package query

import (
	"strings"
	"time"

	"github.com/04yashgautam/adverai/internal/models"
)

// ResolveDateFilter maps the parsed date expression to the literal the store
// matches on. "today" and "yesterday" (and their possessive forms) resolve
// against the supplied clock; anything else non-empty passes through
// verbatim; empty means no date constraint.
func ResolveDateFilter(df *models.DateFilter, today time.Time) string {
	if df.IsZero() {
		return ""
	}
	v := strings.TrimSpace(df.Value)
	switch strings.ToLower(v) {
	case "yesterday", "yesterday's":
		return today.AddDate(0, 0, -1).Format("2006-01-02")
	case "today", "today's":
		return today.Format("2006-01-02")
	default:
		return v
	}
}
