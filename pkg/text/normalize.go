// Package text implements input normalization and the page layout engine.
//
// Normalization turns arbitrary input into plain multi-line ASCII that the
// glyph alphabet can render. Layout word-wraps that text and batches it into
// square pages: the resolved width is both the character count per line and
// the line count per page, so every page is a width x width grid.
package text

import (
	"strings"

	"github.com/mozillazg/go-unidecode"
)

// tabSpaces replaces each horizontal tab during normalization.
const tabSpaces = "     " // 5 spaces

// lineBreaks collapses the esoteric vertical whitespace characters to plain
// newlines. \r\n must be handled before lone \r.
var lineBreaks = strings.NewReplacer(
	"\r\n", "\n",
	"\r", "\n",
	"\f", "\n",
	"\v", "\n",
)

// Normalize cleans raw input text for rendering: tabs become five spaces,
// all line-ending styles collapse to \n, non-ASCII characters are
// transliterated to their closest ASCII equivalents, anything the glyph
// alphabet cannot represent is dropped, and outer whitespace is trimmed.
//
// Normalizing already-normalized ASCII text returns it unchanged.
func Normalize(raw string) string {
	s := strings.ReplaceAll(raw, "\t", tabSpaces)
	s = lineBreaks.Replace(s)
	s = unidecode.Unidecode(s)
	s = dropUnsupported(s)
	return strings.TrimSpace(s)
}

// dropUnsupported removes characters outside the printable-ASCII alphabet,
// keeping newlines. Transliteration handles nearly everything; this is the
// backstop that upholds the renderer's all-characters-in-alphabet invariant.
func dropUnsupported(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r == '\n' || (r >= ' ' && r <= '~') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
