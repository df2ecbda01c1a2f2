package recovery

import (
	"regexp"
	"strings"
)

var (
	letterRunRe  = regexp.MustCompile(`[a-zA-Z]{3,}`)
	whitespaceRe = regexp.MustCompile(`\s{3,}`)
)

// ScrapeBinary recovers readable text from an undecoded binary dump. It keeps
// printable ASCII plus line breaks, drops short lines and lines without a run
// of three letters, and collapses long whitespace runs. The result may be
// empty.
func ScrapeBinary(data []byte, minLineLength int) string {
	printable := make([]byte, 0, len(data))
	for _, c := range data {
		if (c >= 32 && c <= 126) || c == '\n' || c == '\r' {
			printable = append(printable, c)
		}
	}

	var kept []string
	for _, line := range strings.Split(string(printable), "\n") {
		if len(strings.TrimSpace(line)) <= minLineLength {
			continue
		}
		if !letterRunRe.MatchString(line) {
			continue
		}
		kept = append(kept, line)
	}

	text := whitespaceRe.ReplaceAllString(strings.Join(kept, "\n"), " ")
	return strings.TrimSpace(text)
}
