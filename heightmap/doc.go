// Package heightmap turns raw elevation-grid text into an immutable,
// coordinate-indexed map of cells.
//
// What
//
//   - DecodeSymbol: maps one rune to a Cell (elevation + role):
//     'S' → Start at elevation 0, 'E' → End at elevation 25,
//     'a'..'z' → Plain at 0..25.
//   - Parse: scans multi-line text in reading order, trims each line,
//     skips blank lines, and records the Start and End coordinates.
//   - HeightMap: read-only accessors (At, Start, End, Coords, Equal).
//
// Why
//
//   - The downstream graph builder (climbgraph) wants a stable, fully
//     populated Coord→Cell mapping with the two markers resolved, and
//     nothing else.
//
// Immutability
//
//	A HeightMap never changes after Parse returns. Parsing shares no
//	state between calls, so concurrent parses are safe, and parsing the
//	same input twice yields maps that compare Equal.
//
// Errors
//
//   - ErrUnknownSymbol    on the first rune outside 'a'..'z', 'S', 'E';
//     parsing aborts, no partial grid is returned.
//   - ErrDuplicateStart / ErrDuplicateEnd on a repeated marker.
//   - ErrNoStart / ErrNoEnd when a marker never appears.
//
// All errors are sentinel values matchable with errors.Is; offending
// positions and runes are attached via wrapping.
package heightmap
