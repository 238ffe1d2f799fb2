package render

import (
	"context"
	"image"
	"math/rand/v2"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"

	"github.com/Ananya54321/handwritten/pkg/glyphs"
	"github.com/Ananya54321/handwritten/pkg/text"
)

// Raster renders every page of a document as an A4 image.
//
// Each page is first composited at the glyphs' native size on an
// intermediate canvas of (18*width+100) x (50*width+100) pixels, one
// glyph per character cell, then resampled down to PageWidth x
// PageHeight. The returned slice preserves page order.
func Raster(ctx context.Context, doc text.Document, store *glyphs.Store, ruled bool, rng *rand.Rand) ([]image.Image, error) {
	pages := make([]image.Image, 0, len(doc.Pages))
	for _, page := range doc.Pages {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		pages = append(pages, rasterPage(page, doc.Width, store, ruled, rng))
	}
	return pages, nil
}

// rasterPage composites a single page onto a white canvas and scales it
// to the output size.
func rasterPage(page text.Page, width int, store *glyphs.Store, ruled bool, rng *rand.Rand) image.Image {
	dc := gg.NewContext(glyphWidth*width+2*cellMargin, glyphHeight*width+2*cellMargin)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	for row, line := range page {
		y := cellMargin + glyphHeight*row
		for col, r := range []byte(line) {
			x := cellMargin + glyphWidth*col
			dc.DrawImage(store.Glyph(rune(r), pickVariant(rng)).Image, x, y)
			if ruled {
				dc.DrawImage(store.Margin(pickVariant(rng)).Image, x, y)
			}
		}
	}

	return imaging.Resize(dc.Image(), PageWidth, PageHeight, imaging.Lanczos)
}
