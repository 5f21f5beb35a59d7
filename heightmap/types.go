// Package heightmap defines core types and sentinel errors
// for the heightmap subpackage of github.com/katalvlaran/hillclimb.
package heightmap

import (
	"errors"
	"fmt"
)

// Sentinel errors for heightmap construction.
var (
	// ErrUnknownSymbol indicates an input rune outside 'a'..'z', 'S', 'E'.
	ErrUnknownSymbol = errors.New("heightmap: unknown elevation symbol")

	// ErrNoStart indicates the input contained no 'S' marker.
	ErrNoStart = errors.New("heightmap: no start coordinate")

	// ErrNoEnd indicates the input contained no 'E' marker.
	ErrNoEnd = errors.New("heightmap: no end coordinate")

	// ErrDuplicateStart indicates more than one 'S' marker was seen.
	ErrDuplicateStart = errors.New("heightmap: duplicate start coordinate")

	// ErrDuplicateEnd indicates more than one 'E' marker was seen.
	ErrDuplicateEnd = errors.New("heightmap: duplicate end coordinate")
)

// Elevation bounds for valid cells ('a' maps to MinElevation, 'z' to MaxElevation).
const (
	MinElevation = 0
	MaxElevation = 25
)

// Coord identifies a grid cell by row and column.
// Coords compare and hash by value, so they are usable as map keys.
type Coord struct {
	R, C int
}

// String renders the coordinate as "(r,c)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.R, c.C)
}

// Role tags a cell as the designated start, the designated end,
// or a plain elevation cell. The set of roles is closed.
type Role uint8

const (
	// RolePlain marks an ordinary elevation cell.
	RolePlain Role = iota
	// RoleStart marks the unique start cell (elevation fixed to MinElevation).
	RoleStart
	// RoleEnd marks the unique end cell (elevation fixed to MaxElevation).
	RoleEnd
)

// String returns a human-readable role name.
func (r Role) String() string {
	switch r {
	case RoleStart:
		return "Start"
	case RoleEnd:
		return "End"
	default:
		return "Plain"
	}
}

// Cell couples an elevation value with its role tag.
type Cell struct {
	// Elevation is the cell height in [MinElevation, MaxElevation].
	Elevation int

	// Role tags the cell as Start, End, or Plain.
	Role Role
}

// String renders the cell as "Start(0)", "End(25)", or the bare elevation.
func (c Cell) String() string {
	switch c.Role {
	case RoleStart:
		return fmt.Sprintf("Start(%d)", c.Elevation)
	case RoleEnd:
		return fmt.Sprintf("End(%d)", c.Elevation)
	default:
		return fmt.Sprintf("%d", c.Elevation)
	}
}
