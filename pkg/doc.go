// Package pkg provides the core libraries for Handwritten text rendering.
//
// # Overview
//
// Handwritten turns plain text into documents that look like they were
// written by hand. The pkg directory is organized into these areas:
//
//  1. [text] - Normalization and square-page layout
//  2. [glyphs] - Embedded handwriting dataset and tinted glyph stores
//  3. [render] - Raster and PDF page renderers
//  4. [encode] - Page image encoding (PNG/JPEG, raw or base64)
//  5. [handwriting] - Pipeline orchestration (normalize → layout → render → encode)
//  6. [cache] - Artifact caching (file, redis, null backends)
//
// # Architecture
//
// The typical data flow through Handwritten:
//
//	Input text
//	     ↓
//	[text] package (normalize + wrap into width x width pages)
//	     ↓
//	[glyphs] package (look up per-character handwriting variants)
//	     ↓
//	[render] package (draw pages as images or a PDF)
//	     ↓
//	[encode] package (serialize raster pages)
//	     ↓
//	PDF/PNG/JPEG output
//
// # Quick Start
//
//	result, err := handwriting.Generate(ctx, handwriting.Options{
//	    Text: "hello world",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("hello.pdf", result.PDF, 0o644)
//
// Supporting packages: [errors] for coded errors, [observability] for
// pipeline hooks, and [buildinfo] for version stamping.
package pkg
