package heightmap

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

// HeightMap is a coordinate-indexed elevation grid. It is immutable once
// built by Parse; all accessors are safe for concurrent use.
type HeightMap struct {
	cells map[Coord]Cell
	start Coord
	end   Coord
	rows  int
	cols  int
}

// Parse consumes raw multi-line text and builds a HeightMap.
// Each line is trimmed of surrounding whitespace; blank lines are skipped.
// Characters are decoded in reading order via DecodeSymbol.
//
// Returns ErrUnknownSymbol (with the offending rune) on the first
// unrecognized character; no partial grid is returned. Returns
// ErrDuplicateStart / ErrDuplicateEnd if a marker repeats, and
// ErrNoStart / ErrNoEnd if, after scanning everything, a marker was
// never seen.
//
// Complexity: O(R×C) time and memory.
func Parse(input string) (*HeightMap, error) {
	hm := &HeightMap{cells: make(map[Coord]Cell)}
	var haveStart, haveEnd bool

	row := 0
	for _, line := range strings.Split(input, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		for col, ch := range line {
			cell, err := DecodeSymbol(ch)
			if err != nil {
				return nil, fmt.Errorf("row %d, col %d: %w", row, col, err)
			}
			coord := Coord{R: row, C: col}
			switch cell.Role {
			case RoleStart:
				if haveStart {
					return nil, fmt.Errorf("%w: second marker at %v", ErrDuplicateStart, coord)
				}
				haveStart = true
				hm.start = coord
			case RoleEnd:
				if haveEnd {
					return nil, fmt.Errorf("%w: second marker at %v", ErrDuplicateEnd, coord)
				}
				haveEnd = true
				hm.end = coord
			}
			hm.cells[coord] = cell
			if col+1 > hm.cols {
				hm.cols = col + 1
			}
		}
		row++
	}
	hm.rows = row

	if !haveStart {
		return nil, ErrNoStart
	}
	if !haveEnd {
		return nil, ErrNoEnd
	}

	return hm, nil
}

// At returns the cell at coord and whether it exists.
// Complexity: O(1).
func (hm *HeightMap) At(coord Coord) (Cell, bool) {
	cell, ok := hm.cells[coord]
	return cell, ok
}

// Start returns the coordinate of the unique Start marker.
func (hm *HeightMap) Start() Coord { return hm.start }

// End returns the coordinate of the unique End marker.
func (hm *HeightMap) End() Coord { return hm.end }

// Len returns the number of cells in the grid.
func (hm *HeightMap) Len() int { return len(hm.cells) }

// Rows returns the number of non-blank input rows.
func (hm *HeightMap) Rows() int { return hm.rows }

// Cols returns the widest row length seen during parsing.
func (hm *HeightMap) Cols() int { return hm.cols }

// Coords returns every coordinate in the grid, sorted row-major.
// The slice is freshly allocated; callers may keep or mutate it.
// Complexity: O(n log n).
func (hm *HeightMap) Coords() []Coord {
	coords := make([]Coord, 0, len(hm.cells))
	for c := range hm.cells {
		coords = append(coords, c)
	}
	slices.SortFunc(coords, func(a, b Coord) int {
		if a.R != b.R {
			return a.R - b.R
		}
		return a.C - b.C
	})
	return coords
}

// Equal reports whether two height maps contain identical cells and
// identical Start/End coordinates.
func (hm *HeightMap) Equal(other *HeightMap) bool {
	if other == nil || len(hm.cells) != len(other.cells) {
		return false
	}
	if hm.start != other.start || hm.end != other.end {
		return false
	}
	for coord, cell := range hm.cells {
		oc, ok := other.cells[coord]
		if !ok || oc != cell {
			return false
		}
	}
	return true
}
