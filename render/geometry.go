package render

// Offset is the top-left cell where a glyph block is painted
type Offset struct {
	Col int
	Row int
}

// Center computes the offset that centers a blockW x blockH block
// inside a termW x termH viewport. Integer division truncates toward
// zero. A block larger than the viewport clamps to the origin in that
// dimension and clips at the bottom-right; offsets are never negative
func Center(blockW, blockH, termW, termH int) Offset {
	col := (termW - blockW) / 2
	if col < 0 {
		col = 0
	}

	row := (termH - blockH) / 2
	if row < 0 {
		row = 0
	}

	return Offset{Col: col, Row: row}
}
