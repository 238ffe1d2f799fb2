// Package encode turns rendered page images into transportable bytes.
package encode

import (
	"bytes"
	"context"
	"encoding/base64"
	"image"

	"github.com/disintegration/imaging"
	"golang.org/x/sync/errgroup"

	"github.com/Ananya54321/handwritten/pkg/errors"
)

// Format is a raster page encoding.
type Format string

const (
	FormatPNG  Format = "png"
	FormatJPEG Format = "jpeg"
)

// imagingFormat maps a Format to the imaging encoder constant.
func imagingFormat(f Format) (imaging.Format, error) {
	switch f {
	case FormatPNG:
		return imaging.PNG, nil
	case FormatJPEG:
		return imaging.JPEG, nil
	}
	return 0, errors.New(errors.ErrCodeEncode, "unsupported image format: %q", f)
}

// Pages encodes every page image in the requested format. Pages are
// encoded concurrently; the returned slice preserves page order.
func Pages(ctx context.Context, pages []image.Image, format Format) ([][]byte, error) {
	ifmt, err := imagingFormat(format)
	if err != nil {
		return nil, err
	}

	out := make([][]byte, len(pages))
	g, ctx := errgroup.WithContext(ctx)
	for i, img := range pages {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			var buf bytes.Buffer
			if err := imaging.Encode(&buf, img, ifmt); err != nil {
				return errors.Wrap(errors.ErrCodeEncode, err, "encode page %d as %s", i, format)
			}
			out[i] = buf.Bytes()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// Base64Pages encodes pages like Pages and wraps each one in standard
// base64, for JSON transport.
func Base64Pages(ctx context.Context, pages []image.Image, format Format) ([]string, error) {
	raw, err := Pages(ctx, pages, format)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(raw))
	for i, b := range raw {
		out[i] = base64.StdEncoding.EncodeToString(b)
	}
	return out, nil
}
