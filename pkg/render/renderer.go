package render

import (
	"math/rand/v2"

	"github.com/Ananya54321/handwritten/pkg/glyphs"
)

// Output page dimensions, matching A4 at 300 DPI.
const (
	PageWidth  = 2480
	PageHeight = 3508
)

// Native glyph cell size in the dataset.
const (
	glyphWidth  = 18
	glyphHeight = 50
)

// cellMargin is the blank border around the glyph grid on every page.
const cellMargin = 50

// pickVariant chooses one of the handwriting variants for a cell.
// Every cell draws independently so repeated characters vary across the page.
func pickVariant(rng *rand.Rand) int {
	return rng.IntN(glyphs.VariantCount)
}
