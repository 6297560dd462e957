// Package optim holds the set of optimization toggles that the
// command-line layer exposes and the (out-of-scope) grid-solving
// orchestration consults before collapsing concatenations, groups, or
// unions in a compiled regex.
package optim

// Kind identifies one of the optimization passes that can be individually
// disabled from the command line.
type Kind int

const (
	// Concatenations identifies the pass that collapses runs of
	// single-character concatenations into more compact matchers.
	Concatenations Kind = iota
	// Groups identifies the pass that inlines groups that do not need to
	// be tracked individually.
	Groups
	// Unions identifies the pass that merges alternatives sharing a
	// common prefix or suffix.
	Unions
)

// Flags records which optimization passes are enabled. The zero value is
// not meaningful on its own; use All or None to obtain a starting point.
type Flags struct {
	concatenations bool
	groups         bool
	unions         bool
}

// All returns Flags with every optimization pass enabled.
func All() Flags {
	return Flags{concatenations: true, groups: true, unions: true}
}

// None returns Flags with every optimization pass disabled.
func None() Flags {
	return Flags{}
}

// Concatenations reports whether the concatenation-collapsing pass is
// enabled.
func (f Flags) Concatenations() bool { return f.concatenations }

// Groups reports whether the group-inlining pass is enabled.
func (f Flags) Groups() bool { return f.groups }

// Unions reports whether the union-merging pass is enabled.
func (f Flags) Unions() bool { return f.unions }

// Enabled reports whether the pass identified by kind is enabled.
func (f Flags) Enabled(kind Kind) bool {
	switch kind {
	case Concatenations:
		return f.concatenations
	case Groups:
		return f.groups
	case Unions:
		return f.unions
	default:
		return false
	}
}

// With returns a copy of f with the pass identified by kind set to
// enabled.
func (f Flags) With(kind Kind, enabled bool) Flags {
	switch kind {
	case Concatenations:
		f.concatenations = enabled
	case Groups:
		f.groups = enabled
	case Unions:
		f.unions = enabled
	}
	return f
}
