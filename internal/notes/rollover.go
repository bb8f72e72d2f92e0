package notes

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"notebook/internal/logs"
	"notebook/internal/period"
)

// Prepare makes sure the note of the given kind for the period containing ref
// exists under root and returns its path. A zero ref means today.
//
// An existing note is returned untouched. A missing one is seeded from the
// previous period's note, or failing that from the most recent earlier note
// in the same directory, with the old header and completed checklist items
// removed. Without any earlier note it gets just a fresh header.
func Prepare(kind period.Kind, root string, ref time.Time) (string, error) {
	current, stamp := period.Current(kind, ref)
	noteDir := filepath.Join(root, kind.String())
	target := filepath.Join(noteDir, stamp+".md")

	if err := os.MkdirAll(noteDir, 0755); err != nil {
		return "", fmt.Errorf("create %s directory: %w", kind, err)
	}

	if fileExists(target) {
		return target, nil
	}

	content := period.Header(kind, current)

	if source := findSource(kind, noteDir, current, target); source != "" {
		data, err := os.ReadFile(source)
		if err != nil {
			return "", fmt.Errorf("read %s: %w", source, err)
		}
		content = CarryOver(kind, current, string(data))
		logs.Logger.WithField("source", source).WithField("note", target).Debug("seeding note from earlier note")
	} else {
		logs.Logger.WithField("note", target).Debug("creating note without earlier note")
	}

	if err := os.WriteFile(target, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("write %s: %w", target, err)
	}

	return target, nil
}

// findSource returns the note to seed target from, or "" when there is none.
// The previous period's note wins when present.
func findSource(kind period.Kind, noteDir string, current time.Time, target string) string {
	_, previousStamp := period.Previous(kind, current)
	previous := filepath.Join(noteDir, previousStamp+".md")
	if fileExists(previous) {
		return previous
	}
	return findLatestBefore(kind, noteDir, current, target)
}

// findLatestBefore scans noteDir for the note with the latest stamp strictly
// before current. Names that don't parse as stamps are ignored, as is target.
// Equal dates resolve to the lexically greatest filename.
func findLatestBefore(kind period.Kind, noteDir string, current time.Time, target string) string {
	entries, err := os.ReadDir(noteDir)
	if err != nil {
		return ""
	}

	var latestPath string
	var latestDate time.Time

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".md") {
			continue
		}

		path := filepath.Join(noteDir, name)
		if path == target {
			continue
		}

		date, err := period.ParseStamp(kind, strings.TrimSuffix(name, ".md"))
		if err != nil || !date.Before(current) {
			continue
		}

		// ReadDir sorts by name, so >= lets later names win ties.
		if latestPath == "" || !date.Before(latestDate) {
			latestDate = date
			latestPath = path
		}
	}

	return latestPath
}
