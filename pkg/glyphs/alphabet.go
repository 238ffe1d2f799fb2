// Package glyphs provides the handwriting glyph dataset and its in-memory store.
//
// Every supported symbol has six pre-rendered handwriting variants; rendering
// picks among them at random per character occurrence so that repeated letters
// do not look stamped. A seventh pseudo-symbol, the ruled-margin decoration,
// has its own six variants and is never ink-tinted.
//
// The dataset ships embedded in the binary (go:embed), addressed by
// (symbol index, variant index). The symbol order is fixed: printable ASCII
// from space (0x20) through tilde (0x7E). Text must be normalized to this
// set before rendering; the store does not transliterate.
package glyphs

// Alphabet bounds: printable ASCII, space through tilde.
const (
	alphabetFirst = ' '
	alphabetLast  = '~'
)

const (
	// AlphabetSize is the number of supported symbols.
	AlphabetSize = int(alphabetLast-alphabetFirst) + 1

	// VariantCount is the number of pre-rendered variants per symbol.
	VariantCount = 6
)

// Index returns the dataset index for a symbol and whether it is supported.
// The index is stable for the process lifetime: it is the symbol's offset in
// the printable ASCII range.
func Index(r rune) (int, bool) {
	if r < alphabetFirst || r > alphabetLast {
		return 0, false
	}
	return int(r - alphabetFirst), true
}

// Supported reports whether r is in the glyph alphabet.
func Supported(r rune) bool {
	_, ok := Index(r)
	return ok
}

// Symbol returns the rune at the given dataset index.
// The index must be in [0, AlphabetSize).
func Symbol(index int) rune {
	return alphabetFirst + rune(index)
}
