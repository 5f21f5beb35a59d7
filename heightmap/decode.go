package heightmap

import "fmt"

// elevationTable maps 'a'..'z' to 0..25. Built once at package init and
// never mutated afterward; DecodeSymbol reads it, nothing writes it.
var elevationTable = buildElevationTable()

func buildElevationTable() map[rune]int {
	t := make(map[rune]int, 26)
	for ch := 'a'; ch <= 'z'; ch++ {
		t[ch] = int(ch - 'a')
	}
	return t
}

// DecodeSymbol translates a single input rune into a Cell:
//
//	'S'       → Cell{MinElevation, RoleStart}
//	'E'       → Cell{MaxElevation, RoleEnd}
//	'a'..'z'  → Cell{0..25, RolePlain}
//
// Any other rune fails with ErrUnknownSymbol wrapping the offending symbol.
// Pure function of its input; safe for concurrent use.
// Complexity: O(1).
func DecodeSymbol(ch rune) (Cell, error) {
	switch ch {
	case 'S':
		return Cell{Elevation: elevationTable['a'], Role: RoleStart}, nil
	case 'E':
		return Cell{Elevation: elevationTable['z'], Role: RoleEnd}, nil
	default:
		v, ok := elevationTable[ch]
		if !ok {
			return Cell{}, fmt.Errorf("%w: %q", ErrUnknownSymbol, ch)
		}
		return Cell{Elevation: v, Role: RolePlain}, nil
	}
}
