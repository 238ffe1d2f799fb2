package glyphs

import (
	"embed"
	"fmt"

	"github.com/Ananya54321/handwritten/pkg/errors"
)

// The glyph dataset is embedded directly into the binary, making it
// available without external files. Regenerate with scripts/gen_dataset.py.
//
//go:embed dataset
var datasetFS embed.FS

// Source is an opaque glyph asset source addressable by symbol and variant
// index. It returns raw encoded image bytes (PNG); decoding and tinting are
// the store's job.
type Source interface {
	// Glyph returns the raw bytes for the given symbol and variant.
	Glyph(symbolIndex, variant int) ([]byte, error)

	// Margin returns the raw bytes for the ruled-margin decoration variant.
	Margin(variant int) ([]byte, error)
}

// embeddedSource serves the go:embed dataset.
type embeddedSource struct{}

// DefaultSource returns the embedded glyph dataset.
func DefaultSource() Source {
	return embeddedSource{}
}

// Glyph returns the embedded bytes for the given symbol and variant.
func (embeddedSource) Glyph(symbolIndex, variant int) ([]byte, error) {
	if symbolIndex < 0 || symbolIndex >= AlphabetSize {
		return nil, errors.New(errors.ErrCodeGlyphMissing, "symbol index %d out of range [0,%d)", symbolIndex, AlphabetSize)
	}
	if variant < 0 || variant >= VariantCount {
		return nil, errors.New(errors.ErrCodeGlyphMissing, "variant %d out of range [0,%d)", variant, VariantCount)
	}
	data, err := datasetFS.ReadFile(fmt.Sprintf("dataset/%03d/%d.png", symbolIndex, variant))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeGlyphMissing, err, "glyph %d variant %d", symbolIndex, variant)
	}
	return data, nil
}

// Margin returns the embedded bytes for the ruled-margin decoration variant.
func (embeddedSource) Margin(variant int) ([]byte, error) {
	if variant < 0 || variant >= VariantCount {
		return nil, errors.New(errors.ErrCodeGlyphMissing, "variant %d out of range [0,%d)", variant, VariantCount)
	}
	data, err := datasetFS.ReadFile(fmt.Sprintf("dataset/margin/%d.png", variant))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeGlyphMissing, err, "margin variant %d", variant)
	}
	return data, nil
}
