package reader

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Bounds is the bounding box of non-empty cells, 0-based and inclusive.
type Bounds struct {
	MinRow, MaxRow int
	MinCol, MaxCol int
}

// DataBounds finds the bounding box of non-empty cells.
// ok is false when every cell is empty.
func DataBounds(rows [][]string) (b Bounds, ok bool) {
	b = Bounds{MinRow: -1, MaxRow: -1, MinCol: -1, MaxCol: -1}

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell == "" {
				continue
			}
			if b.MinRow < 0 || rowIdx < b.MinRow {
				b.MinRow = rowIdx
			}
			if rowIdx > b.MaxRow {
				b.MaxRow = rowIdx
			}
			if b.MinCol < 0 || colIdx < b.MinCol {
				b.MinCol = colIdx
			}
			if colIdx > b.MaxCol {
				b.MaxCol = colIdx
			}
		}
	}

	return b, b.MinRow >= 0
}

// Range converts the bounds to A1 notation (e.g., "A1:D10").
func (b Bounds) Range() (string, error) {
	startCell, err := excelize.CoordinatesToCellName(b.MinCol+1, b.MinRow+1)
	if err != nil {
		return "", err
	}
	endCell, err := excelize.CoordinatesToCellName(b.MaxCol+1, b.MaxRow+1)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s:%s", startCell, endCell), nil
}

// UsedRange returns the A1 range covering all non-empty cells, or "" if none.
func UsedRange(rows [][]string) string {
	b, ok := DataBounds(rows)
	if !ok {
		return ""
	}
	r, err := b.Range()
	if err != nil {
		return ""
	}
	return r
}

// MaxWidth returns the length of the longest row.
func MaxWidth(rows [][]string) int {
	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}
	return width
}
