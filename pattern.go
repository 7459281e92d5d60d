package pathmatch

import "strings"

// A Pattern is a wildcard path pattern, normalized into an ordered list of
// path-segment patterns. Normalization collapses separator runs, drops "."
// segments, resolves ".." against preceding literal segments, and collapses
// adjacent multi-segment wildcards. A Pattern is immutable once parsed.
type Pattern struct {
	segs     []segment
	dirsOnly bool
}

type segmentKind int

const (
	// segLiteral is a segment with no wildcard characters (including "..").
	segLiteral segmentKind = iota
	// segWildcard contains ? or * but matches within one segment.
	segWildcard
	// segMulti contains an ellipsis (or double asterisk) and matches across
	// separator boundaries.
	segMulti
	// segRoot is the single leading separator of an absolute pattern.
	segRoot
)

type segment struct {
	// text is the canonical text of the segment. For segMulti it contains
	// the "..." token and, after merging adjacent multi-wildcard segments,
	// may contain separators.
	text string
	kind segmentKind
	// prefix is the literal/wildcard text before the multi-wildcard token,
	// used to filter first-level candidates during a recursive fetch.
	// Set for segMulti only.
	prefix string
}

// Parse normalizes a raw pattern into a Pattern. It has no error conditions:
// an empty pattern (or one consisting only of separators) yields a Pattern
// with no segments, which matches nothing.
func Parse(pattern string) *Pattern {
	p := &Pattern{}

	// Either separator character is accepted.
	s := strings.ReplaceAll(pattern, `\`, "/")

	// A trailing run of separators means the pattern names directories only.
	if t := strings.TrimRight(s, "/"); t != s {
		s, p.dirsOnly = t, true
	}

	var raw []segment

	// A single leading separator is the absolute-root marker.
	if strings.HasPrefix(s, "/") {
		raw = append(raw, segment{text: "/", kind: segRoot})
		s = strings.TrimLeft(s, "/")
	}

	for _, chunk := range strings.Split(s, "/") {
		switch chunk {
		case "", ".":
			// Empty chunks come from separator runs; "." names the current
			// directory. Both vanish.
		default:
			raw = append(raw, parseChunk(chunk))
		}
	}

	p.segs = normalize(raw)
	return p
}

// parseChunk classifies one separator-delimited chunk of the pattern.
func parseChunk(chunk string) segment {
	pre, suf, ok := splitMulti(chunk)
	if ok {
		return segment{text: pre + "..." + suf, kind: segMulti, prefix: pre}
	}
	if strings.ContainsAny(chunk, "*?") {
		return segment{text: chunk, kind: segWildcard}
	}
	return segment{text: chunk, kind: segLiteral}
}

// splitMulti locates the first multi-wildcard run ("..." or "**", plus any
// adjacent asterisks and ellipses) within a chunk, returning the text before
// and after it. ok is false if the chunk contains no multi-wildcard.
func splitMulti(chunk string) (prefix, suffix string, ok bool) {
	start := -1
	for i := 0; i < len(chunk); i++ {
		if strings.HasPrefix(chunk[i:], "**") || strings.HasPrefix(chunk[i:], "...") {
			start = i
			break
		}
	}
	if start < 0 {
		return "", "", false
	}

	// Single asterisks adjacent to the run are absorbed by it, so "*...",
	// "**......****" and "..." all normalize identically.
	for start > 0 && chunk[start-1] == '*' {
		start--
	}
	end := start
	for {
		if end < len(chunk) && chunk[end] == '*' {
			end++
			continue
		}
		if strings.HasPrefix(chunk[end:], "...") {
			end += 3
			continue
		}
		break
	}
	return chunk[:start], chunk[end:], true
}

// normalize resolves ".." segments and collapses adjacent multi-wildcard
// segments, producing the final segment list.
func normalize(raw []segment) []segment {
	var out []segment
	for i := 0; i < len(raw); i++ {
		seg := raw[i]

		if seg.kind == segLiteral && seg.text == ".." {
			// A parent reference cancels the nearest preceding concrete
			// segment. It cannot cancel a wildcard (that would change how
			// many levels the pattern consumes), another "..", or the root,
			// and resolution never crosses a multi-wildcard; in those cases
			// it is kept literally.
			if n := len(out); n > 0 && out[n-1].kind == segLiteral && out[n-1].text != ".." {
				out = out[:n-1]
				continue
			}
			out = append(out, seg)
			continue
		}

		if seg.kind == segMulti {
			// Absorb any following run of bare-asterisk segments interleaved
			// with further multi-wildcard segments: "a/.../*/.../b" and
			// "a/.../**/.../b" both reduce to "a/.../b".
			for i+1 < len(raw) {
				j := i + 1
				for j < len(raw) && raw[j].kind == segWildcard && raw[j].text == "*" {
					j++
				}
				if j < len(raw) && raw[j].kind == segMulti {
					seg = mergeMulti(seg, raw[j])
					i = j
					continue
				}
				break
			}
		}

		out = append(out, seg)
	}
	return out
}

// mergeMulti combines two adjacent multi-wildcard segments into one, so the
// segment list never holds two multi-wildcards in a row. A bare ellipsis
// following a segment that already ends in one adds nothing; anything else
// continues the first segment's text across a separator.
func mergeMulti(a, b segment) segment {
	if b.text == "..." && strings.HasSuffix(a.text, "...") {
		return a
	}
	return segment{text: a.text + "/" + b.text, kind: segMulti, prefix: a.prefix}
}

// Segments returns the canonical text of each segment in order. The
// absolute-root marker, when present, is the single segment "/".
func (p *Pattern) Segments() []string {
	if len(p.segs) == 0 {
		return nil
	}
	out := make([]string, len(p.segs))
	for i, s := range p.segs {
		out[i] = s.text
	}
	return out
}

// DirsOnly reports whether the pattern ended in a separator, restricting
// matches to directories.
func (p *Pattern) DirsOnly() bool { return p.dirsOnly }

// String renders the canonical form of the pattern. Parsing the result
// yields an identical Pattern.
func (p *Pattern) String() string {
	if len(p.segs) == 0 {
		if p.dirsOnly {
			return "/"
		}
		return ""
	}
	var sb strings.Builder
	for i, s := range p.segs {
		if s.kind == segRoot {
			sb.WriteString("/")
			continue
		}
		if i > 0 && p.segs[i-1].kind != segRoot {
			sb.WriteString("/")
		}
		sb.WriteString(s.text)
	}
	if p.dirsOnly {
		sb.WriteString("/")
	}
	return sb.String()
}
