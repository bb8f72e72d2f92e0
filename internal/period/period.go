package period

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Kind identifies one of the rolling, date-partitioned note types
type Kind int

const (
	Daily Kind = iota
	Monthly
	Yearly
)

// ErrUnknownKind is returned by Parse for names outside the catalog
var ErrUnknownKind = errors.New("unknown period kind")

// Spec holds the static definition of a period kind: the directory it lives
// in, the time layout used to render and parse filename stamps, and the
// layout of the level-2 heading written at the top of a fresh note.
type Spec struct {
	Name         string
	StampLayout  string
	HeaderLayout string
}

var catalog = map[Kind]Spec{
	Daily:   {Name: "daily", StampLayout: "06-01-02", HeaderLayout: "Monday 06-01-02"},
	Monthly: {Name: "monthly", StampLayout: "06-01", HeaderLayout: "January 2006"},
	Yearly:  {Name: "yearly", StampLayout: "2006", HeaderLayout: "2006"},
}

// All returns every kind in catalog order
func All() []Kind {
	return []Kind{Daily, Monthly, Yearly}
}

// Spec returns the catalog entry for k. It panics for values outside the enum.
func (k Kind) Spec() Spec {
	spec, ok := catalog[k]
	if !ok {
		panic(fmt.Sprintf("period: invalid kind %d", int(k)))
	}
	return spec
}

func (k Kind) String() string {
	if spec, ok := catalog[k]; ok {
		return spec.Name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Parse maps a directory/flag name such as "monthly" to its Kind
func Parse(name string) (Kind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, k := range All() {
		if catalog[k].Name == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// Stamp renders the filename stem (without extension) for date
func Stamp(k Kind, date time.Time) string {
	return date.Format(k.Spec().StampLayout)
}

// Header renders the heading block placed at the top of a new note.
// It is always a single "## " line followed by one blank line.
func Header(k Kind, date time.Time) string {
	return "## " + date.Format(k.Spec().HeaderLayout) + "\n\n"
}

// ParseStamp parses a filename stem back into the local date it was rendered from
func ParseStamp(k Kind, stem string) (time.Time, error) {
	return time.ParseInLocation(k.Spec().StampLayout, stem, time.Local)
}

// Current returns the start of the period containing ref, and its stamp.
// ref is read as a calendar date in whatever location it carries; the result
// is that date in the local calendar. A zero ref means today.
func Current(k Kind, ref time.Time) (time.Time, string) {
	if ref.IsZero() {
		ref = time.Now()
	}

	var current time.Time
	switch k {
	case Monthly:
		current = time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, time.Local)
	case Yearly:
		current = time.Date(ref.Year(), time.January, 1, 0, 0, 0, 0, time.Local)
	default:
		current = time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, time.Local)
	}
	return current, Stamp(k, current)
}

// Previous returns the start of the period immediately before current, and its stamp
func Previous(k Kind, current time.Time) (time.Time, string) {
	var previous time.Time
	switch k {
	case Monthly:
		// Step back from day 1 so month lengths never matter.
		first := time.Date(current.Year(), current.Month(), 1, 0, 0, 0, 0, time.Local)
		last := first.AddDate(0, 0, -1)
		previous = time.Date(last.Year(), last.Month(), 1, 0, 0, 0, 0, time.Local)
	case Yearly:
		previous = time.Date(current.Year()-1, time.January, 1, 0, 0, 0, 0, time.Local)
	default:
		day := time.Date(current.Year(), current.Month(), current.Day(), 0, 0, 0, 0, time.Local)
		previous = day.AddDate(0, 0, -1)
	}
	return previous, Stamp(k, previous)
}
