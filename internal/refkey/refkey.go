package refkey

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var (
	// noisePattern matches whitespace plus the zero-width and non-breaking
	// space characters that spreadsheets commonly smuggle into cells.
	noisePattern = regexp.MustCompile(`[\s\x{200B}\x{00A0}]+`)

	// kitPattern extracts a bracketed kit code anywhere in the text. When
	// present, the inner token replaces the whole reference.
	kitPattern = regexp.MustCompile(`\[([a-z0-9-]+kit[a-z0-9_-]+)\]`)

	// sourcePrefixPattern matches the routing prefixes prepended by the
	// upstream tracking systems.
	sourcePrefixPattern = regexp.MustCompile(`^(?:zr|za|zxx)\d+`)

	// duplicatePattern matches the X[X] shape produced when a reference is
	// pasted with its own bracket annotation appended.
	duplicatePattern = regexp.MustCompile(`^([a-z0-9_-]+)\[([a-z0-9_-]+)\]$`)
)

// Normalize maps a raw reference value to its canonical grouping key.
// Empty and whitespace-only input yields the empty key.
func Normalize(raw string) string {
	txt := norm.NFKC.String(raw)
	txt = noisePattern.ReplaceAllString(txt, "")
	txt = strings.ToLower(txt)

	if match := kitPattern.FindStringSubmatch(txt); match != nil {
		txt = match[1]
	} else {
		txt = sourcePrefixPattern.ReplaceAllString(txt, "")
	}

	// Collapse before trimming brackets: the X[X] shape needs its trailing
	// bracket intact to be recognized.
	if match := duplicatePattern.FindStringSubmatch(txt); match != nil && match[1] == match[2] {
		txt = match[1]
	}
	txt = strings.Trim(txt, "[]")

	return strings.TrimSpace(txt)
}
