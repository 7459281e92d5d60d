// Package pathmatch matches directory trees against wildcard path patterns.
//
// A pattern names a path whose segments may contain ? (any single
// character), * (any run of characters within one segment), and ... or **
// (any run of characters across any number of segments). Matching is
// case-insensitive by default, either slash is a separator, and a trailing
// separator restricts matches to directories.
package pathmatch

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"
)

// MatchFunc is called once per matching entry with the composed path (using
// forward slashes) and the entry's metadata. Returning false stops the
// entire walk immediately. The path string must not be retained beyond the
// call without copying.
type MatchFunc func(path string, d fs.DirEntry) bool

// DefaultMaxPathLength is the path budget for a walk. Branches whose
// composed path would exceed the budget are abandoned.
const DefaultMaxPathLength = 4096

// A Matcher walks a directory tree and reports every entry matching a
// pattern. The zero options are an OS-backed filesystem, case-insensitive
// matching and [DefaultMaxPathLength]. A Matcher holds no per-walk state,
// so it may be used by multiple goroutines simultaneously.
type Matcher struct {
	fsys    FileSystem
	fold    bool
	maxPath int
	trace   io.Writer
}

// New creates a Matcher.
func New(opts ...Option) *Matcher {
	m := &Matcher{
		fsys:    osFS{},
		fold:    true,
		maxPath: DefaultMaxPathLength,
	}
	for _, o := range opts {
		if o == nil {
			continue
		}
		o(m)
	}
	return m
}

// Match walks the tree with a default Matcher, calling fn for every entry
// matching the pattern.
func Match(pattern string, fn MatchFunc) error {
	return New().Match(pattern, fn)
}

// Match calls fn for every entry matching the pattern. Inaccessible
// directories and over-long paths contribute no matches but are not errors;
// an empty pattern matches nothing.
func (m *Matcher) Match(pattern string, fn MatchFunc) error {
	return m.MatchPattern(Parse(pattern), fn)
}

// MatchPattern is like [Matcher.Match] for an already-parsed pattern.
func (m *Matcher) MatchPattern(p *Pattern, fn MatchFunc) error {
	if fn == nil {
		return errors.New("nil MatchFunc in arg to MatchPattern")
	}
	w := &walk{m: m, fn: fn, dirsOnly: p.dirsOnly}
	w.logf("starting walk: pattern %q, %d segments, dirsOnly=%v\n", p, len(p.segs), p.dirsOnly)
	w.matchDir("", p.segs)
	return nil
}

// walk is the state of one Match call.
type walk struct {
	m        *Matcher
	fn       MatchFunc
	dirsOnly bool
	stopped  bool
}

func (w *walk) logf(f string, v ...any) {
	if w.m.trace == nil {
		return
	}
	fmt.Fprintf(w.m.trace, f, v...)
}

func (w *walk) report(path string, d fs.DirEntry) {
	if !w.fn(path, d) {
		w.stopped = true
	}
}

// matchDir matches the remaining segments against the contents of dir,
// dispatching on the kind of the next segment.
func (w *walk) matchDir(dir string, segs []segment) {
	if w.stopped || len(segs) == 0 {
		return
	}
	seg, rest := segs[0], segs[1:]
	switch seg.kind {
	case segRoot:
		w.matchDir("/", rest)
	case segLiteral:
		w.literalDescent(dir, seg, rest)
	case segWildcard:
		w.wildDescent(dir, seg, rest)
	case segMulti:
		w.multiDescent(dir, segs)
	}
}

// literalDescent handles a segment with no wildcards: no enumeration is
// needed, the name is composed onto the path directly.
func (w *walk) literalDescent(dir string, seg segment, rest []segment) {
	child, ok := w.join(dir, seg.text)
	if !ok {
		return
	}
	if len(rest) > 0 {
		// Descend into the presumed subdirectory. If it doesn't exist, the
		// eventual enumeration fails and the branch contributes nothing.
		w.matchDir(child, rest)
		return
	}
	fi, err := w.m.fsys.Stat(child)
	if err != nil {
		w.logf("stat %q: %v\n", child, err)
		return
	}
	if w.dirsOnly && !fi.IsDir() {
		return
	}
	w.report(child, fs.FileInfoToDirEntry(fi))
}

// wildDescent handles a ?/* segment: enumerate the directory and test each
// entry name against the segment pattern.
func (w *walk) wildDescent(dir string, seg segment, rest []segment) {
	entries, err := w.m.fsys.ReadDir(dirName(dir))
	if err != nil {
		w.logf("readdir %q: %v\n", dirName(dir), err)
		return
	}
	last := len(rest) == 0
	for _, d := range entries {
		if w.stopped {
			return
		}
		name := d.Name()
		if isDots(name) {
			continue
		}
		if !wildMatch([]rune(seg.text), []rune(name), w.m.fold) {
			continue
		}
		if last {
			if w.dirsOnly && !d.IsDir() {
				continue
			}
			if child, ok := w.join(dir, name); ok {
				w.report(child, d)
			}
			continue
		}
		if !d.IsDir() {
			continue
		}
		if child, ok := w.join(dir, name); ok {
			w.matchDir(child, rest)
		}
	}
}

// multiDescent handles a multi-segment wildcard: every descendant below dir
// is fetched, and the remaining pattern is verified against each one's
// relative path.
func (w *walk) multiDescent(dir string, segs []segment) {
	seg := segs[0]

	// The text before the wildcard token, if any, prunes first-level
	// candidates before the full fetch.
	var filter string
	if seg.prefix != "" {
		filter = seg.prefix + "*"
	}

	// A bare trailing ellipsis matches every descendant unconditionally;
	// anything else needs the remaining pattern verified per entry.
	var suffix string
	if seg.text != "..." || len(segs) > 1 {
		parts := make([]string, len(segs))
		for i, s := range segs {
			parts[i] = s.text
		}
		suffix = strings.Join(parts, "/")
	}

	// Suffix matching is anchored at the directory where the wildcard
	// became active.
	baseLen := 0
	if dir != "" {
		baseLen = len(dir)
		if !strings.HasSuffix(dir, "/") {
			baseLen++
		}
	}

	w.logf("recursive fetch below %q: filter %q, suffix %q\n", dirName(dir), filter, suffix)
	w.fetchAll(dir, baseLen, filter, suffix)
}

// fetchAll recursively visits every entry below dir. filter applies to the
// first level only; suffix (if any) is matched against each entry's path
// relative to the anchor. Descent continues regardless of whether the
// current entry matched, since deeper descendants may still satisfy the
// suffix.
func (w *walk) fetchAll(dir string, baseLen int, filter, suffix string) {
	entries, err := w.m.fsys.ReadDir(dirName(dir))
	if err != nil {
		w.logf("readdir %q: %v\n", dirName(dir), err)
		return
	}
	for _, d := range entries {
		if w.stopped {
			return
		}
		name := d.Name()
		if isDots(name) {
			continue
		}
		if w.dirsOnly && !d.IsDir() {
			continue
		}
		if filter != "" && !wildMatch([]rune(filter), []rune(name), w.m.fold) {
			continue
		}
		child, ok := w.join(dir, name)
		if !ok {
			continue
		}
		if suffix == "" || pathMatch([]rune(suffix), []rune(child[baseLen:]), w.m.fold) {
			w.report(child, d)
			if w.stopped {
				return
			}
		}
		if d.IsDir() {
			w.fetchAll(child, baseLen, "", suffix)
			if w.stopped {
				return
			}
		}
	}
}

// join composes an entry name onto the accumulated path. ok is false if the
// result would exceed the walk's path budget, in which case the branch is
// abandoned.
func (w *walk) join(dir, name string) (string, bool) {
	path := name
	switch {
	case dir == "":
	case strings.HasSuffix(dir, "/"):
		path = dir + name
	default:
		path = dir + "/" + name
	}
	if len(path) > w.m.maxPath {
		w.logf("path budget exceeded below %q\n", dir)
		return "", false
	}
	return path, true
}

// dirName is the name passed to the filesystem for the accumulated path,
// which is "." while still in the starting directory.
func dirName(dir string) string {
	if dir == "" {
		return "."
	}
	return dir
}

// isDots reports whether the name is one of the self/parent pseudo-entries.
func isDots(name string) bool { return name == "." || name == ".." }
