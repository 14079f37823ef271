// Package glyph renders short strings as large FIGlet glyph art.
// The font is compiled into the binary; nothing is read from disk
// at runtime.
package glyph

import (
	"fmt"

	"github.com/common-nighthawk/go-figure"

	"github.com/lixenwraith/bigclock/constants"
)

// Block is the multi-line glyph rendering of a short string.
// All lines come from the same font but vary in length with the
// proportional glyph widths, so Width is the maximum, not uniform.
type Block struct {
	Lines []string
}

// Height returns the number of rendered lines
func (b Block) Height() int {
	return len(b.Lines)
}

// Width returns the widest line in character cells
func (b Block) Width() int {
	max := 0
	for _, line := range b.Lines {
		if n := len([]rune(line)); n > max {
			max = n
		}
	}
	return max
}

// Renderer converts text into glyph blocks. Render is a pure function
// of the loaded font and its input
type Renderer struct {
	fontName string
}

// NewRenderer loads the embedded font and verifies it by rendering a
// probe covering the clock alphabet. Construct before entering raw
// mode: a bad font must never leave the terminal altered
func NewRenderer() (*Renderer, error) {
	r := &Renderer{fontName: constants.FontName}
	if _, err := r.Render("01:23:45"); err != nil {
		return nil, fmt.Errorf("font %q unusable: %w", r.fontName, err)
	}
	return r, nil
}

// Render converts text to a glyph block. A rune outside the font's
// glyph set is an error; there is no fallback glyph
func (r *Renderer) Render(text string) (block Block, err error) {
	for _, c := range text {
		if c < ' ' || c > '~' {
			return Block{}, fmt.Errorf("rune %q has no glyph in font %q", c, r.fontName)
		}
	}

	// go-figure panics on unknown fonts and unsupported input; surface
	// those as errors so the caller keeps control of terminal cleanup
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("glyph rendering %q: %v", text, rec)
		}
	}()

	fig := figure.NewFigure(text, r.fontName, true)
	lines := fig.Slicify()
	if len(lines) == 0 {
		return Block{}, fmt.Errorf("font %q produced no output for %q", r.fontName, text)
	}

	return Block{Lines: lines}, nil
}
