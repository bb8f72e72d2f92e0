package notes

import (
	"strings"
	"time"
	"unicode"

	"notebook/internal/period"
	"notebook/internal/scanner"
)

// CarryOver builds the content of a new note for the period starting at date,
// seeded from the text of an earlier note.
func CarryOver(kind period.Kind, date time.Time, source string) string {
	content := period.Header(kind, date)
	if filtered := FilterCarryOver(source); filtered != "" {
		content += filtered + "\n"
	}
	return content
}

// FilterCarryOver strips what should not survive into the next period:
// the first "## " heading (plus one blank line right after it) and every
// completed checklist item. Everything else is kept verbatim and in order.
// Leading blank lines and trailing whitespace are trimmed from the result.
func FilterCarryOver(source string) string {
	var kept []string
	headerSkipped := false
	skipBlankAfterHeader := false

	for _, line := range splitLines(source) {
		if !headerSkipped && strings.HasPrefix(line, "## ") {
			headerSkipped = true
			skipBlankAfterHeader = true
			continue
		}

		if skipBlankAfterHeader && strings.TrimSpace(line) == "" {
			skipBlankAfterHeader = false
			continue
		}
		skipBlankAfterHeader = false

		if scanner.IsCompletedTask(line) {
			continue
		}

		kept = append(kept, line)
	}

	for len(kept) > 0 && strings.TrimSpace(kept[0]) == "" {
		kept = kept[1:]
	}

	return strings.TrimRightFunc(strings.Join(kept, "\n"), unicode.IsSpace)
}

func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}

