package content

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// stripPolicy removes all tag markup; text content survives re-escaped.
var stripPolicy = bluemonday.StrictPolicy()

// numericEntity matches decimal and hexadecimal character references.
var numericEntity = regexp.MustCompile(`&#(x[0-9a-fA-F]+|[0-9]+);`)

// namedEntities covers the six entities WordPress emits in rendered titles.
var namedEntities = strings.NewReplacer(
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&#039;", "'",
	"&apos;", "'",
)

// DecodeEntities replaces numeric character references and the standard
// named entities with their literal characters. Best effort in a single
// pass: malformed or partial references are left as-is, and already-decoded
// text passes through unchanged.
func DecodeEntities(s string) string {
	if s == "" {
		return s
	}

	s = numericEntity.ReplaceAllStringFunc(s, func(ref string) string {
		digits := ref[2 : len(ref)-1]
		base := 10
		if digits[0] == 'x' {
			digits = digits[1:]
			base = 16
		}
		code, err := strconv.ParseInt(digits, base, 32)
		if err != nil || code <= 0 {
			return ref
		}
		return string(rune(code))
	})

	return namedEntities.Replace(s)
}

// StripTags removes all tag markup, trims surrounding whitespace, and
// decodes entities. Block-level whitespace is not preserved; this is for
// listing and summary contexts, not rich-text bodies.
func StripTags(s string) string {
	if s == "" {
		return s
	}
	return DecodeEntities(strings.TrimSpace(stripPolicy.Sanitize(s)))
}

// ParseLines splits a newline-delimited field into trimmed, non-empty lines.
// Empty input yields an empty slice.
func ParseLines(s string) []string {
	lines := make([]string, 0)
	for _, line := range strings.Split(s, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return lines
}
