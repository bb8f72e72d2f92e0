package notes

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sahilm/fuzzy"

	"notebook/internal/period"
)

// Match is a note ranked against a find query
type Match struct {
	Note    Note
	Display string
	Score   int
}

// List returns every dated note (newest first within each kind, kinds in
// catalog order) followed by the someday note if it exists. Files whose names
// are not valid stamps are left out.
func List(root string) ([]Note, error) {
	var result []Note

	for _, kind := range period.All() {
		noteDir := filepath.Join(root, kind.String())
		entries, err := os.ReadDir(noteDir)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, err
		}

		var found []Note
		for _, entry := range entries {
			name := entry.Name()
			if entry.IsDir() || !strings.HasSuffix(name, ".md") {
				continue
			}
			stamp := strings.TrimSuffix(name, ".md")
			date, err := period.ParseStamp(kind, stamp)
			if err != nil {
				continue
			}
			path := filepath.Join(noteDir, name)
			found = append(found, Note{
				Label:   kind.String(),
				Path:    path,
				RelPath: relPath(root, path),
				Stamp:   stamp,
				Date:    date,
				Heading: readHeading(path),
			})
		}

		sort.SliceStable(found, func(i, j int) bool {
			return found[i].Date.After(found[j].Date)
		})
		result = append(result, found...)
	}

	someday := filepath.Join(root, SomedayFile)
	if fileExists(someday) {
		result = append(result, Note{
			Label:   SomedayLabel,
			Path:    someday,
			RelPath: SomedayFile,
			Stamp:   SomedayLabel,
			Heading: readHeading(someday),
		})
	}

	return result, nil
}

// Find ranks every note in the notebook against query using fuzzy matching on
// "<kind>/<stamp> <heading>". The best match comes first.
func Find(root, query string) ([]Match, error) {
	all, err := List(root)
	if err != nil {
		return nil, err
	}

	displays := make([]string, len(all))
	for i, n := range all {
		displays[i] = displayName(n)
	}

	var result []Match
	for _, m := range fuzzy.Find(query, displays) {
		result = append(result, Match{
			Note:    all[m.Index],
			Display: m.Str,
			Score:   m.Score,
		})
	}
	return result, nil
}

func displayName(n Note) string {
	name := n.Label
	if n.Label != SomedayLabel {
		name = n.Label + "/" + n.Stamp
	}
	if n.Heading != "" {
		name += " " + n.Heading
	}
	return name
}

func readHeading(path string) string {
	content, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	return Heading(content)
}
