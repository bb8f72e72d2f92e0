package scanner

import (
	"bufio"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/gobwas/glob"

	"notebook/internal/logs"
)

var (
	completedTaskPattern  = regexp.MustCompile(`^\s*(?:[-+*]\s+)?\[[xX]\]\s`)
	incompleteTaskPattern = regexp.MustCompile(`^\s*(?:[-+*]\s+)?\[\s\]\s*`)
)

// Task is an unchecked checklist line found in a note
type Task struct {
	Path string // absolute path of the note
	Line int    // 1-based line number
	Text string // the line with surrounding whitespace trimmed
}

// Options tunes a scan
type Options struct {
	// Ignore holds glob patterns matched against slash-separated paths
	// relative to the scanned root. Matching files and directories are skipped.
	Ignore []string
}

// IsCompletedTask reports whether line is a checked checklist item ("[x]" or "[X]")
func IsCompletedTask(line string) bool {
	return completedTaskPattern.MatchString(line)
}

// IsOpenTask reports whether line is an unchecked checklist item ("[ ]").
// A line that also reads as completed is never open.
func IsOpenTask(line string) bool {
	if IsCompletedTask(line) {
		return false
	}
	return incompleteTaskPattern.MatchString(line)
}

// CollectUncompletedTasks scans every .md file under root, in lexical order of
// the slash-separated relative path, and returns its unchecked checklist
// lines. Files that cannot be read are skipped.
func CollectUncompletedTasks(root string, opts Options) ([]Task, error) {
	ignore, err := compileIgnore(opts.Ignore)
	if err != nil {
		return nil, err
	}

	notes, err := collectNotes(root, ignore)
	if err != nil {
		return nil, err
	}

	var tasks []Task
	for _, n := range notes {
		found, err := scanFile(n.path)
		if err != nil {
			logs.Logger.WithField("path", n.path).WithError(err).Debug("skipping unreadable note")
			continue
		}
		tasks = append(tasks, found...)
	}
	return tasks, nil
}

type noteFile struct {
	rel  string
	path string
}

// collectNotes lists the note files under root sorted by relative path.
// WalkDir orders entries per directory, which puts "work/" ahead of
// "work-log.md"; the full-path sort does not.
func collectNotes(root string, ignore []glob.Glob) ([]noteFile, error) {
	var notes []noteFile
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			logs.Logger.WithField("path", path).WithError(err).Debug("skipping unreadable entry")
			if d != nil && d.IsDir() && path != root {
				return fs.SkipDir
			}
			return nil
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			rel = path
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if path != root && (shouldSkipDir(d.Name()) || ignored(ignore, rel)) {
				return fs.SkipDir
			}
			return nil
		}

		if isNoteFile(d.Name()) && !ignored(ignore, rel) {
			notes = append(notes, noteFile{rel: rel, path: path})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(notes, func(i, j int) bool { return notes[i].rel < notes[j].rel })
	return notes, nil
}

// scanFile reads path line by line. Lines of any length are accepted.
func scanFile(path string) ([]Task, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var tasks []Task
	reader := bufio.NewReader(file)
	lineNum := 0
	for {
		line, err := reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, err
		}
		if line == "" && err == io.EOF {
			break
		}

		lineNum++
		line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
		if IsOpenTask(line) {
			tasks = append(tasks, Task{
				Path: path,
				Line: lineNum,
				Text: strings.TrimSpace(line),
			})
		}

		if err == io.EOF {
			break
		}
	}
	return tasks, nil
}

func compileIgnore(patterns []string) ([]glob.Glob, error) {
	var globs []glob.Glob
	for _, p := range patterns {
		g, err := glob.Compile(p, '/')
		if err != nil {
			return nil, fmt.Errorf("invalid ignore pattern %q: %w", p, err)
		}
		globs = append(globs, g)
	}
	return globs, nil
}

func ignored(globs []glob.Glob, rel string) bool {
	for _, g := range globs {
		if g.Match(rel) {
			return true
		}
	}
	return false
}

func isNoteFile(name string) bool {
	return strings.HasSuffix(name, ".md")
}

// shouldSkipDir reports whether a directory holds repository internals
// rather than notes
func shouldSkipDir(name string) bool {
	return name == ".git"
}
