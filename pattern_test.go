package pathmatch

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	tests := []struct {
		pattern  string
		want     []string
		dirsOnly bool
	}{
		{"", nil, false},
		{"/", nil, true},
		{`\\////\\\\`, nil, true},
		{".", nil, false},
		{"./", nil, true},

		{"a", []string{"a"}, false},
		{"a/", []string{"a"}, true},
		{"a////", []string{"a"}, true},
		{"a\\", []string{"a"}, true},
		{"/a", []string{"/", "a"}, false},
		{"/a/", []string{"/", "a"}, true},
		{`\a`, []string{"/", "a"}, false},

		{"a/b/c", []string{"a", "b", "c"}, false},
		{"a/b/c/", []string{"a", "b", "c"}, true},
		{`a/b\c/d\e`, []string{"a", "b", "c", "d", "e"}, false},
		{`a//\\/b//c`, []string{"a", "b", "c"}, false},
		{"a/./b/./././c", []string{"a", "b", "c"}, false},

		// Parent references cancel the nearest concrete segment, or are
		// kept literally where there is none to cancel.
		{"a/b/../c", []string{"a", "c"}, false},
		{"a/b/c/../../x/y", []string{"a", "x", "y"}, false},
		{"../../x", []string{"..", "..", "x"}, false},
		{"a/../../x", []string{"..", "x"}, false},
		{"a/b/../../../../x", []string{"..", "..", "x"}, false},
		{"a*/../b", []string{"a*", "..", "b"}, false},
		{"a/.../../b", []string{"a", "...", "..", "b"}, false},
		{"/..", []string{"/", ".."}, false},

		// Wildcard segments.
		{"a/b*?/c", []string{"a", "b*?", "c"}, false},
		{"*", []string{"*"}, false},

		// Multi-segment wildcards, in both spellings, collapse.
		{"...", []string{"..."}, false},
		{"**", []string{"..."}, false},
		{"a/**/b", []string{"a", "...", "b"}, false},
		{"a/.../b", []string{"a", "...", "b"}, false},
		{"a/.../**/.../b", []string{"a", "...", "b"}, false},
		{"a/.../*/.../b", []string{"a", "...", "b"}, false},
		{"a/**......****/b", []string{"a", "...", "b"}, false},
		{"a/**/b/.../c/**", []string{"a", "...", "b", "...", "c", "..."}, false},
		{"a/**/b/.../c/**/", []string{"a", "...", "b", "...", "c", "..."}, true},

		// Multi-wildcards embedded in a chunk keep their prefix and suffix.
		{"....obj", []string{"....obj"}, false},
		{"a...b", []string{"a...b"}, false},
		{"a.../b", []string{"a...", "b"}, false},
		{"...b/c", []string{"...b", "c"}, false},
		{"a/b*.../c", []string{"a", "b...", "c"}, false},
		{"a/...*b/c", []string{"a", "...b", "c"}, false},
		{"src/...*.go", []string{"src", "....go"}, false},

		// Adjacent multi segments merge rather than sit side by side.
		{"a.../.../b", []string{"a...", "b"}, false},
		{"a...c/.../b", []string{"a...c/...", "b"}, false},
	}

	for _, test := range tests {
		p := Parse(test.pattern)
		if diff := cmp.Diff(p.Segments(), test.want); diff != "" {
			t.Errorf("Parse(%q).Segments() diff (-got +want):\n%s", test.pattern, diff)
		}
		if got, want := p.DirsOnly(), test.dirsOnly; got != want {
			t.Errorf("Parse(%q).DirsOnly() = %v, want %v", test.pattern, got, want)
		}
	}
}

// Parsing the rendering of a parsed pattern is a fixed point.
func TestParseIdempotent(t *testing.T) {
	patterns := []string{
		"", "/", `\\////\\\\`, ".", "./", "a", "a/", "/a", "a/b/c",
		`a/b\c/d\e\`, "a/b/../c", "../../x", "a/./b", "a/**/b/.../c/**",
		"a/**......****/b", "a...b", "a.../b", "...b/c", "a/b*.../c",
		"....obj", "a...c/.../b", "a*/../b", "/..",
	}

	for _, pattern := range patterns {
		p1 := Parse(pattern)
		p2 := Parse(p1.String())
		if diff := cmp.Diff(p1.Segments(), p2.Segments()); diff != "" {
			t.Errorf("Parse(Parse(%q).String()) segments diff (-first +second):\n%s", pattern, diff)
		}
		if p1.DirsOnly() != p2.DirsOnly() {
			t.Errorf("Parse(%q): dirsOnly %v, but %v after re-parsing %q", pattern, p1.DirsOnly(), p2.DirsOnly(), p1.String())
		}
	}
}

func TestPatternString(t *testing.T) {
	tests := []struct {
		pattern, want string
	}{
		{"", ""},
		{"/", "/"},
		{"a\\b//c/", "a/b/c/"},
		{"/a/b", "/a/b"},
		{"a/./b/../c", "a/c"},
		{"a/**/b", "a/.../b"},
		{"....obj", "....obj"},
	}

	for _, test := range tests {
		if got, want := Parse(test.pattern).String(), test.want; got != want {
			t.Errorf("Parse(%q).String() = %q, want %q", test.pattern, got, want)
		}
	}
}
