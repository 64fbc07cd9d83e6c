package engine

// ClearLines removes every complete row and returns how many were removed.
//
// The sweep runs bottom-up. When a complete row is found, the rows above it
// shift down one position and the cleared storage is zeroed and reused as the
// topmost not-yet-cleared row. The same row index is examined again, since it
// now holds what used to be the row above. Rows [0, removed) are freshly
// emptied and are never rescanned.
func (b *Board) ClearLines() int {
	removed := 0
	for y := b.height - 1; y >= removed; {
		if !b.RowFull(y) {
			y--
			continue
		}
		stride := b.order[y]
		copy(b.order[removed+1:y+1], b.order[removed:y])
		b.order[removed] = stride
		clear(b.cells[stride*b.width : (stride+1)*b.width])
		removed++
	}
	return removed
}
