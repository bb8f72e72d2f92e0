package proc

import "strings"

// Fake records commands instead of running them. It is meant for tests.
type Fake struct {
	Calls []Cmd
	// Handle decides the outcome of each call; nil means every call exits 0
	Handle func(c Cmd) (int, error)
}

func (f *Fake) Run(c Cmd) (int, error) {
	f.Calls = append(f.Calls, c)
	if f.Handle == nil {
		return 0, nil
	}
	return f.Handle(c)
}

// CommandLines returns each recorded call as "name arg1 arg2 ..."
func (f *Fake) CommandLines() []string {
	lines := make([]string, len(f.Calls))
	for i, c := range f.Calls {
		lines[i] = strings.Join(append([]string{c.Name}, c.Args...), " ")
	}
	return lines
}
