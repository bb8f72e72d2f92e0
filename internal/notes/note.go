package notes

import (
	"os"
	"time"
)

const (
	// SomedayLabel names the single, unscoped note that is never rolled over
	SomedayLabel = "someday"
	// SomedayFile is the someday note's filename under the notebook root
	SomedayFile = "someday.md"
)

// Note represents a markdown note in the notebook
type Note struct {
	Label   string    // "daily", "monthly", "yearly" or "someday"
	Path    string    // Absolute path to file
	RelPath string    // Path relative to the notebook root (for display)
	Stamp   string    // Filename without extension
	Date    time.Time // Parsed from the stamp; zero for the someday note
	Heading string    // First level-2 heading, if any
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
