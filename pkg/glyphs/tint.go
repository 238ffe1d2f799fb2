package glyphs

import (
	"bytes"
	"image"
	"image/color"
	"image/png"

	"github.com/disintegration/imaging"
)

// inkBoost is how much the named channel is raised on tinted glyphs.
// The dataset ink is near-black, so a strong boost shifts it to a saturated
// pen color without washing out the stroke edges.
const inkBoost = 170

// tint boosts one color channel across the whole glyph image.
// Fully transparent pixels stay untouched so the paper shows through.
func tint(img image.Image, ink Ink) *image.NRGBA {
	return imaging.AdjustFunc(img, func(c color.NRGBA) color.NRGBA {
		if c.A == 0 {
			return c
		}
		switch ink {
		case InkRed:
			c.R = boost(c.R)
		case InkBlue:
			c.B = boost(c.B)
		}
		return c
	})
}

func boost(v uint8) uint8 {
	n := int(v) + inkBoost
	if n > 255 {
		n = 255
	}
	return uint8(n)
}

// encodePNG re-encodes a tinted glyph so the PDF backend can embed it.
func encodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
