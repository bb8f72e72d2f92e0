package notes

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// ErrNoContent is returned by Append when there is nothing to write
var ErrNoContent = errors.New("no content provided to append")

// Append adds text as a new paragraph at the end of the note at path,
// creating the file if needed. Exactly one blank line separates it from
// existing content; an empty file gets no separator.
func Append(path, text string) error {
	text = strings.TrimRight(text, "\n")
	if strings.TrimSpace(text) == "" {
		return ErrNoContent
	}

	existing, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("read %s: %w", path, err)
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open %s for append: %w", path, err)
	}
	defer f.Close()

	if _, err := f.WriteString(separator(string(existing)) + text + "\n"); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func separator(existing string) string {
	switch {
	case existing == "", strings.HasSuffix(existing, "\n\n"):
		return ""
	case strings.HasSuffix(existing, "\n"):
		return "\n"
	default:
		return "\n\n"
	}
}
