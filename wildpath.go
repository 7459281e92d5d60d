package pathmatch

// PathMatch reports whether an entire path matches a wildcard path pattern.
// Forward and backward slashes are interchangeable separators on both sides,
// and repeated separators compare equal to one. Within the pattern, ? matches
// any single rune except a separator, * matches any run of runes up to the
// next separator, and ... (equivalently **) matches any run of runes
// including separators. Literal runes match without regard to case.
//
// A multi-segment wildcard may match zero characters, so ".../foo" and
// "*/foo" both match "foo", and "...b" matches "b". To require at least one
// character, follow the wildcard with a question mark: "...?b".
func PathMatch(pattern, path string) bool {
	return pathMatch([]rune(pattern), []rune(path), true)
}

// PathMatchCase is like [PathMatch], but literal runes are compared
// case-sensitively.
func PathMatchCase(pattern, path string) bool {
	return pathMatch([]rune(pattern), []rune(path), false)
}

func pathMatch(pattern, path []rune, fold bool) bool {
	// Scan through the single-rune matches, stopping at a multi-rune
	// wildcard, a mismatch, or the end of either string.
	for len(pattern) > 0 && len(path) > 0 {
		// Repeated separators on either side compare as one.
		if isSep(path[0]) {
			for len(path) > 1 && isSep(path[1]) {
				path = path[1:]
			}
		}
		if isSep(pattern[0]) {
			if !isSep(path[0]) {
				return false
			}
			for len(pattern) > 1 && isSep(pattern[1]) {
				pattern = pattern[1:]
			}
			pattern, path = pattern[1:], path[1:]
			continue
		}

		if isMultiWild(pattern) {
			break
		}

		if pattern[0] == '?' {
			if isSep(path[0]) { // ? matches all but a separator
				return false
			}
		} else if !runeEq(pattern[0], path[0], fold) {
			return false
		}
		pattern, path = pattern[1:], path[1:]
	}

	// Unless we stopped on a multi-rune wildcard, matching is over: both
	// sides must be exhausted simultaneously.
	if !isMultiWild(pattern) {
		return len(pattern) == 0 && len(path) == 0
	}

	// Collapse the run of multi-rune wildcards. A run of asterisks is
	// equivalent to a single asterisk, and a run containing an ellipsis or
	// double asterisk is equivalent to a single ellipsis. Collapsing here is
	// what keeps stacked wildcards from going exponential.
	ellipsis := false
	for {
		if isEllipsis(pattern) {
			pattern = pattern[3:]
			ellipsis = true
			continue
		}
		if len(pattern) >= 2 && pattern[0] == '*' && pattern[1] == '*' {
			pattern = pattern[2:]
			ellipsis = true
			continue
		}
		if len(pattern) >= 1 && pattern[0] == '*' {
			pattern = pattern[1:]
			continue
		}
		break
	}

	// A trailing ellipsis matches any remainder of the path.
	if ellipsis && len(pattern) == 0 {
		return true
	}

	// A multi-rune wildcard followed by separators may match the empty
	// string, so ".../foo" and "*/foo" both match "foo". Try that before the
	// general backtracking below.
	if len(pattern) > 0 && isSep(pattern[0]) {
		rest := pattern[1:]
		for len(rest) > 0 && isSep(rest[0]) {
			rest = rest[1:]
		}
		if pathMatch(rest, path, fold) {
			return true
		}
	}

	if ellipsis {
		// Nibble away at the path, separators included, until the remainder
		// matches or the path runs out.
		for {
			if pathMatch(pattern, path, fold) {
				return true
			}
			if len(path) == 0 {
				return false
			}
			path = path[1:]
		}
	}

	// A plain asterisk backtracks only up to the next separator.
	for len(path) > 0 && !isSep(path[0]) {
		if pathMatch(pattern, path, fold) {
			return true
		}
		path = path[1:]
	}
	return pathMatch(pattern, path, fold)
}

// isSep reports whether the rune is a forward or backward slash.
func isSep(r rune) bool { return r == '/' || r == '\\' }

// isEllipsis reports whether the pattern begins with "...".
func isEllipsis(p []rune) bool {
	return len(p) >= 3 && p[0] == '.' && p[1] == '.' && p[2] == '.'
}

// isMultiWild reports whether the pattern begins with a wildcard that can
// match multiple runes ("*", "**" or "...").
func isMultiWild(p []rune) bool {
	return (len(p) > 0 && p[0] == '*') || isEllipsis(p)
}
