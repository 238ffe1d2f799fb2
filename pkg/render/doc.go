// Package render draws laid-out handwriting pages as images and PDFs.
//
// # Overview
//
// This package turns a [text.Document] plus a loaded [glyphs.Store] into
// final page artifacts. Two renderers are provided:
//
//   - [Raster]: per-page A4 images (2480x3508) composited with fogleman/gg
//   - [PDF]: a single multi-page A4 document built with go-pdf/fpdf
//
// # Coordinate Model
//
// Both renderers place one glyph per character cell on a width x width
// grid, where width is the side length chosen by the layout step. The
// raster renderer composites glyphs at their native 18x50 size on an
// intermediate canvas and scales the whole page down to A4. The PDF
// renderer instead scales each glyph cell so the grid fills the page
// directly.
//
// When ruled output is requested, the margin decoration is drawn over
// every cell after its character glyph, which yields the ruled-line and
// left-margin look of lined paper.
//
//	doc := text.Layout(clean, rng)
//	pages, err := render.Raster(ctx, doc, store, true, rng)
//	pdf, err := render.PDF(doc, store, true, rng)
package render
