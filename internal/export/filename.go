package export

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var (
	nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9_-]`)
	multiUnderscore = regexp.MustCompile(`_+`)
)

// SanitizeFilename cleans a name for use in Content-Disposition. Characters
// other than letters, digits, - and _ become _, runs of _ collapse, and the
// result is cut to 100 characters.
func SanitizeFilename(name string) string {
	s := nonAlphanumeric.ReplaceAllString(name, "_")
	s = multiUnderscore.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if len(s) > 100 {
		s = s[:100]
	}
	return s
}

// BuildFilename returns {sanitized_base}_{YYYY-MM-DD}.{ext}. An empty base
// falls back to "LexAsta_Report".
func BuildFilename(base string, f Format, at time.Time) string {
	sanitized := SanitizeFilename(base)
	if sanitized == "" {
		sanitized = "LexAsta_Report"
	}
	return fmt.Sprintf("%s_%s.%s", sanitized, at.Format("2006-01-02"), f)
}
