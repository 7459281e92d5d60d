package pathmatch

import "io"

// Option functions optionally alter how a Matcher operates.
type Option = func(*Matcher)

// WithFilesystem overrides the default OS-backed filesystem. Useful for
// walking virtual namespaces, and for testing without real I/O.
func WithFilesystem(fsys FileSystem) Option {
	return func(m *Matcher) {
		if fsys != nil {
			m.fsys = fsys
		}
	}
}

// WithTraceLogs logs debugging information about the walk itself to the
// provided writer. Disabled by default.
func WithTraceLogs(out io.Writer) Option {
	return func(m *Matcher) {
		m.trace = out
	}
}

// CaseSensitive enables or disables case-sensitive comparison of literal
// characters. Matching is case-insensitive by default.
func CaseSensitive(sensitive bool) Option {
	return func(m *Matcher) {
		m.fold = !sensitive
	}
}

// WithMaxPathLength overrides the walk's path budget
// ([DefaultMaxPathLength]). Branches whose composed path would exceed the
// budget are silently abandoned; sibling branches are unaffected.
func WithMaxPathLength(n int) Option {
	return func(m *Matcher) {
		if n > 0 {
			m.maxPath = n
		}
	}
}
