package render

import (
	"bytes"
	"fmt"
	"math/rand/v2"

	"codeberg.org/go-pdf/fpdf"

	"github.com/Ananya54321/handwritten/pkg/errors"
	"github.com/Ananya54321/handwritten/pkg/glyphs"
	"github.com/Ananya54321/handwritten/pkg/text"
)

// PDF renders the whole document as a single multi-page A4 PDF.
//
// Pages are PageWidth x PageHeight points. Unlike the raster backend
// there is no intermediate canvas: each glyph cell is scaled so the
// width x width grid fills the page inside the cellMargin border. Glyph
// images are embedded once per symbol/variant pair and referenced from
// every cell that uses them, which keeps the document small even for
// long texts.
func PDF(doc text.Document, store *glyphs.Store, ruled bool, rng *rand.Rand) ([]byte, error) {
	pdf := fpdf.NewCustom(&fpdf.InitType{
		UnitStr: "pt",
		Size:    fpdf.SizeType{Wd: PageWidth, Ht: PageHeight},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)

	cellW := float64(PageWidth-2*cellMargin) / float64(doc.Width)
	cellH := float64(PageHeight-2*cellMargin) / float64(doc.Width)

	b := &pdfBuilder{pdf: pdf, registered: make(map[string]struct{})}

	for _, page := range doc.Pages {
		pdf.AddPage()
		for row, line := range page {
			y := cellMargin + cellH*float64(row)
			for col, r := range []byte(line) {
				x := cellMargin + cellW*float64(col)
				g := rune(r)
				v := pickVariant(rng)
				b.place(glyphKey(g, v), store.Glyph(g, v), x, y, cellW, cellH)
				if ruled {
					mv := pickVariant(rng)
					b.place(fmt.Sprintf("margin-%d", mv), store.Margin(mv), x, y, cellW, cellH)
				}
			}
		}
	}

	if pdf.Err() {
		return nil, errors.Wrap(errors.ErrCodeRender, pdf.Error(), "build pdf document")
	}
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeRender, err, "write pdf document")
	}
	return buf.Bytes(), nil
}

// pdfBuilder tracks which glyph images have already been embedded so
// each symbol/variant pair is registered exactly once.
type pdfBuilder struct {
	pdf        *fpdf.Fpdf
	registered map[string]struct{}
}

func (b *pdfBuilder) place(name string, g glyphs.Glyph, x, y, w, h float64) {
	opts := fpdf.ImageOptions{ImageType: "PNG"}
	if _, ok := b.registered[name]; !ok {
		b.pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(g.PNG))
		b.registered[name] = struct{}{}
	}
	b.pdf.ImageOptions(name, x, y, w, h, false, opts, 0, "")
}

// glyphKey names the embedded image for a symbol/variant pair. Runes
// outside the alphabet share the blank glyph's name, mirroring the
// store's fallback.
func glyphKey(r rune, variant int) string {
	idx, ok := glyphs.Index(r)
	if !ok {
		idx = 0
	}
	return fmt.Sprintf("glyph-%d-%d", idx, variant)
}
