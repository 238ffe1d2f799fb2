package text

import (
	"math/rand/v2"
	"strings"
)

// Batch size random walk parameters. The minimum line width starts at 10 and
// takes 176 independent one-in-eight increments, giving a binomial-like
// distribution. The randomness varies page shape per invocation the way real
// handwriting varies line length.
const (
	batchSizeBase   = 10
	batchSizeTrials = 176
	batchSizeOdds   = 8 // each trial increments with probability 1/8
)

// Page is one page of laid-out text: exactly Width lines of exactly Width
// characters each, space-padded.
type Page []string

// Document is the laid-out form of one input text.
type Document struct {
	Pages []Page
	// Width is both the character count per line and the line count per
	// page. All pages in a document share it.
	Width int
}

// BatchSize draws a randomized minimum line width via a biased random walk.
// The rng is injectable so tests can pin layout shape; production callers
// pass an unseeded source.
func BatchSize(rng *rand.Rand) int {
	n := batchSizeBase
	for i := 0; i < batchSizeTrials; i++ {
		if rng.IntN(batchSizeOdds) == 0 {
			n++
		}
	}
	return n
}

// Layout word-wraps normalized text and batches it into square pages.
//
// The resolved width is the larger of the randomized batch size and the
// longest input line. Each input line is wrapped independently, then the
// wrapped lines are padded to exactly width characters and grouped into
// pages of width lines, the last page padded with blank lines.
func Layout(clean string, rng *rand.Rand) Document {
	lines := strings.Split(clean, "\n")

	width := BatchSize(rng)
	for _, line := range lines {
		if len(line) > width {
			width = len(line)
		}
	}

	wrapped := make([]string, 0, len(lines))
	for _, line := range lines {
		wrapped = append(wrapped, strings.Split(wrapLine(line, width), "\n")...)
	}

	return Document{
		Pages: padPages(wrapped, width),
		Width: width,
	}
}

// wrapLine word-wraps a single line to the target width by breaking at the
// last space at or before the width index. A single word longer than the
// width is never hyphenated or hard-broken; it is emitted as-is. The wrap
// recurses on the remainder, so removing the inserted newlines (restoring
// the spaces they replaced) reconstructs the input exactly.
func wrapLine(line string, width int) string {
	if len(line) <= width {
		return line
	}
	at := strings.LastIndexByte(line[:width+1], ' ')
	if at < 0 {
		return line
	}
	return line[:at] + "\n" + wrapLine(line[at+1:], width)
}

// padPages pads every line to exactly width characters and batches the lines
// into pages of width lines each. Empty lines become full blank lines; a
// short final page is filled out with blank lines so every page is complete.
func padPages(lines []string, width int) []Page {
	// One column of slack before truncation, matching the layout contract:
	// a line that still exceeds width after wrapping (an unbreakable word)
	// is cut at the page edge.
	padding := strings.Repeat(" ", width+1)
	blank := padding[:width]

	var pages []Page
	page := make(Page, 0, width)
	for _, line := range lines {
		if line == "" {
			page = append(page, blank)
		} else {
			page = append(page, (line + padding)[:width])
		}
		if len(page) == width {
			pages = append(pages, page)
			page = make(Page, 0, width)
		}
	}
	if len(page) > 0 {
		for len(page) < width {
			page = append(page, blank)
		}
		pages = append(pages, page)
	}
	return pages
}
