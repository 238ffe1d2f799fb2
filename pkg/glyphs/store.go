package glyphs

import (
	"bytes"
	"context"
	"image"

	"github.com/disintegration/imaging"
	"golang.org/x/sync/errgroup"

	"github.com/Ananya54321/handwritten/pkg/errors"
)

// Ink is an optional ink-color tint applied to glyphs at load time.
type Ink string

// Supported ink colors. The zero value means untinted (black) ink.
const (
	InkNone Ink = ""
	InkRed  Ink = "red"
	InkBlue Ink = "blue"
)

// SupportedInks lists the non-default ink colors, for error messages.
var SupportedInks = []string{string(InkRed), string(InkBlue)}

// ParseInk validates an ink color string.
func ParseInk(s string) (Ink, error) {
	switch Ink(s) {
	case InkNone, InkRed, InkBlue:
		return Ink(s), nil
	}
	return InkNone, errors.New(errors.ErrCodeInvalidInkColor,
		"invalid ink color: %q (supported: red, blue)", s)
}

// Glyph is one decoded handwriting variant. Image is used by the raster
// backend; PNG holds the encoded form the PDF backend embeds. For tinted
// glyphs PNG is a re-encode of the tinted image, otherwise it is the
// original dataset bytes.
type Glyph struct {
	Image image.Image
	PNG   []byte
}

// Store holds the decoded glyph set for one ink color.
// It is populated once by Load and read-only afterwards, so it is safe for
// concurrent readers.
type Store struct {
	ink    Ink
	glyphs []Glyph // AlphabetSize * VariantCount, row-major by symbol
	margin []Glyph // VariantCount entries
}

// Load decodes the full glyph dataset into memory, applying the ink tint to
// every non-margin glyph. All symbol and variant decodes run concurrently;
// the store is returned only once every one of them has completed. A nil src
// uses the embedded dataset.
func Load(ctx context.Context, src Source, ink Ink) (*Store, error) {
	if src == nil {
		src = DefaultSource()
	}
	if _, err := ParseInk(string(ink)); err != nil {
		return nil, err
	}

	s := &Store{
		ink:    ink,
		glyphs: make([]Glyph, AlphabetSize*VariantCount),
		margin: make([]Glyph, VariantCount),
	}

	g, ctx := errgroup.WithContext(ctx)
	for idx := 0; idx < AlphabetSize; idx++ {
		for v := 0; v < VariantCount; v++ {
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				raw, err := src.Glyph(idx, v)
				if err != nil {
					return err
				}
				glyph, err := decodeGlyph(raw, ink)
				if err != nil {
					return errors.Wrap(errors.ErrCodeGlyphDecode, err,
						"decode glyph %q variant %d", Symbol(idx), v)
				}
				s.glyphs[idx*VariantCount+v] = glyph
				return nil
			})
		}
	}
	// The margin decoration keeps its own color regardless of ink.
	for v := 0; v < VariantCount; v++ {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			raw, err := src.Margin(v)
			if err != nil {
				return err
			}
			glyph, err := decodeGlyph(raw, InkNone)
			if err != nil {
				return errors.Wrap(errors.ErrCodeGlyphDecode, err, "decode margin variant %d", v)
			}
			s.margin[v] = glyph
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return s, nil
}

// decodeGlyph decodes raw PNG bytes and applies the ink tint.
func decodeGlyph(raw []byte, ink Ink) (Glyph, error) {
	img, err := imaging.Decode(bytes.NewReader(raw))
	if err != nil {
		return Glyph{}, err
	}
	if ink == InkNone {
		return Glyph{Image: img, PNG: raw}, nil
	}
	tinted := tint(img, ink)
	encoded, err := encodePNG(tinted)
	if err != nil {
		return Glyph{}, err
	}
	return Glyph{Image: tinted, PNG: encoded}, nil
}

// Ink returns the ink color this store was loaded with.
func (s *Store) Ink() Ink {
	return s.ink
}

// Glyph returns the decoded glyph for a symbol and variant index.
// The symbol must be in the alphabet and the variant in [0, VariantCount);
// normalization upstream guarantees this for pipeline callers.
func (s *Store) Glyph(r rune, variant int) Glyph {
	idx, ok := Index(r)
	if !ok {
		idx = 0 // render unsupported symbols as blank (space)
	}
	return s.glyphs[idx*VariantCount+variant]
}

// Margin returns the ruled-margin decoration for a variant index.
func (s *Store) Margin(variant int) Glyph {
	return s.margin[variant]
}
