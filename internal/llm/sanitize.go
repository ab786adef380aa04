package llm

import (
	"regexp"
	"strings"
)

var fenceRe = regexp.MustCompile("(?m)^```(?:json)?\\s*|```$")

// Sanitize strips markdown code fences wrapping a provider response so the
// remainder can be fed to the JSON decoder. Content between the fences is
// never touched; applying Sanitize to already-clean text is a no-op.
func Sanitize(s string) string {
	s = strings.TrimSpace(s)
	s = fenceRe.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}
