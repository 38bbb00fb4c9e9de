package browse

import (
	"sort"
	"strings"

	"github.com/gobwas/glob"
)

// Predicate decides the new marked state of one name given its old state.
type Predicate func(old bool, name string) bool

// Mark, Unmark and Toggle are the fixed marking predicates.
func Mark(bool, string) bool         { return true }
func Unmark(bool, string) bool       { return false }
func Toggle(old bool, _ string) bool { return !old }

// MatchPattern builds a predicate that marks names matching a glob pattern,
// leaving already-marked names marked. A pattern without glob metacharacters
// is treated as a suffix filter ("txt" marks every *.txt).
func MatchPattern(pattern string) (Predicate, error) {
	if !strings.ContainsAny(pattern, "*?[{\\") {
		if !strings.HasPrefix(pattern, ".") {
			pattern = "." + pattern
		}
		pattern = "*" + pattern
	}
	g, err := glob.Compile(pattern)
	if err != nil {
		return nil, err
	}
	return func(old bool, name string) bool {
		return g.Match(name) || old
	}, nil
}

// MarkStore tracks the set of marked entry names for one directory view.
// Marks are keyed by name, not line position, so they survive refresh and
// reordering; names that disappear are pruned on refresh.
type MarkStore struct {
	names map[string]struct{}
}

// NewMarkStore creates an empty mark store.
func NewMarkStore() *MarkStore {
	return &MarkStore{names: make(map[string]struct{})}
}

// Apply evaluates pred for every target name and records the result.
// Applying to zero names is a no-op.
func (m *MarkStore) Apply(pred Predicate, names []string) {
	for _, name := range names {
		_, old := m.names[name]
		if pred(old, name) {
			m.names[name] = struct{}{}
		} else {
			delete(m.names, name)
		}
	}
}

// Contains reports whether name is marked.
func (m *MarkStore) Contains(name string) bool {
	_, ok := m.names[name]
	return ok
}

// Names returns the marked names. Order is not significant; it is sorted
// only to be deterministic.
func (m *MarkStore) Names() []string {
	names := make([]string, 0, len(m.names))
	for name := range m.names {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of marked names.
func (m *MarkStore) Len() int {
	return len(m.names)
}

// Clear unmarks everything.
func (m *MarkStore) Clear() {
	m.names = make(map[string]struct{})
}

// Prune drops marks whose names are no longer present. A renamed-away or
// deleted entry silently falls out of the marked set.
func (m *MarkStore) Prune(entries []Entry) {
	present := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		present[e.Name] = struct{}{}
	}
	for name := range m.names {
		if _, ok := present[name]; !ok {
			delete(m.names, name)
		}
	}
}
