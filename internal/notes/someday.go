package notes

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"notebook/internal/period"
)

// Someday returns the path of the someday note, creating an empty one if needed
func Someday(root string) (string, error) {
	if err := os.MkdirAll(root, 0755); err != nil {
		return "", fmt.Errorf("create notebook root: %w", err)
	}

	path := filepath.Join(root, SomedayFile)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}
	f.Close()

	return path, nil
}

// Resolve maps a selection ("daily", "monthly", "yearly" or "someday") to a
// note path, preparing the note if it does not exist yet.
func Resolve(selection, root string, ref time.Time) (string, error) {
	if selection == SomedayLabel {
		return Someday(root)
	}

	kind, err := period.Parse(selection)
	if err != nil {
		return "", err
	}
	return Prepare(kind, root, ref)
}

// Current prepares the daily, monthly and yearly notes for ref and the someday
// note, in that order.
func Current(root string, ref time.Time) ([]Note, error) {
	var result []Note

	for _, kind := range period.All() {
		path, err := Prepare(kind, root, ref)
		if err != nil {
			return nil, err
		}
		date, stamp := period.Current(kind, ref)
		result = append(result, Note{
			Label:   kind.String(),
			Path:    path,
			RelPath: relPath(root, path),
			Stamp:   stamp,
			Date:    date,
		})
	}

	path, err := Someday(root)
	if err != nil {
		return nil, err
	}
	result = append(result, Note{
		Label:   SomedayLabel,
		Path:    path,
		RelPath: SomedayFile,
		Stamp:   SomedayLabel,
	})

	return result, nil
}

func relPath(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return path
	}
	return rel
}
