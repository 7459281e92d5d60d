package pathmatch

import "unicode"

// WildMatch reports whether a single path segment matches a pattern
// containing ? and * wildcards. ? matches exactly one rune, * matches any
// run of runes (including none). All other runes match themselves without
// regard to case. Neither the pattern nor the name should contain path
// separators; for whole paths, use [PathMatch].
func WildMatch(pattern, name string) bool {
	return wildMatch([]rune(pattern), []rune(name), true)
}

// WildMatchCase is like [WildMatch], but literal runes are compared
// case-sensitively.
func WildMatchCase(pattern, name string) bool {
	return wildMatch([]rune(pattern), []rune(name), false)
}

func wildMatch(pattern, name []rune, fold bool) bool {
	// Scan through the single-rune matches, stopping at a star, a mismatch,
	// or the end of either string.
	for len(pattern) > 0 && len(name) > 0 {
		if pattern[0] == '*' {
			break
		}
		if pattern[0] != '?' && !runeEq(pattern[0], name[0], fold) {
			break
		}
		pattern, name = pattern[1:], name[1:]
	}

	// Unless we stopped on a star, matching is over: both sides must be
	// exhausted simultaneously.
	if len(pattern) == 0 || pattern[0] != '*' {
		return len(pattern) == 0 && len(name) == 0
	}

	// Collapse a run of stars into one. Without this, patterns with many
	// stars in a row backtrack in pathologically exponential time.
	for len(pattern) > 0 && pattern[0] == '*' {
		pattern = pattern[1:]
	}

	// A trailing star matches any remainder.
	if len(pattern) == 0 {
		return true
	}

	// The star has more pattern after it. Nibble away at the name until the
	// remainder matches or the name runs out.
	for {
		if wildMatch(pattern, name, fold) {
			return true
		}
		if len(name) == 0 {
			return false
		}
		name = name[1:]
	}
}

// runeEq compares two runes, optionally folding case.
func runeEq(a, b rune, fold bool) bool {
	if a == b {
		return true
	}
	return fold && unicode.ToLower(a) == unicode.ToLower(b)
}
