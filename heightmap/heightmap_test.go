package heightmap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hillclimb/heightmap"
)

const canonicalGrid = `
Sabqponm
abcryxxl
accszExk
acctuvwj
abdefghi
`

//----------------------------------------------------------------------------//
// DecodeSymbol Tests
//----------------------------------------------------------------------------//

// TestDecodeSymbol_Valid checks the three symbol classes.
func TestDecodeSymbol_Valid(t *testing.T) {
	cases := []struct {
		name string
		ch   rune
		want heightmap.Cell
	}{
		{"Start", 'S', heightmap.Cell{Elevation: 0, Role: heightmap.RoleStart}},
		{"End", 'E', heightmap.Cell{Elevation: 25, Role: heightmap.RoleEnd}},
		{"LowestPlain", 'a', heightmap.Cell{Elevation: 0, Role: heightmap.RolePlain}},
		{"MidPlain", 'm', heightmap.Cell{Elevation: 12, Role: heightmap.RolePlain}},
		{"HighestPlain", 'z', heightmap.Cell{Elevation: 25, Role: heightmap.RolePlain}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cell, err := heightmap.DecodeSymbol(tc.ch)
			require.NoError(t, err)
			assert.Equal(t, tc.want, cell)
		})
	}
}

// TestDecodeSymbol_Unknown verifies rejection of anything outside the table.
func TestDecodeSymbol_Unknown(t *testing.T) {
	for _, ch := range []rune{'#', '1', 'Q', ' ', 'Z'} {
		_, err := heightmap.DecodeSymbol(ch)
		assert.ErrorIs(t, err, heightmap.ErrUnknownSymbol, "rune %q", ch)
		assert.ErrorContains(t, err, string(ch))
	}
}

//----------------------------------------------------------------------------//
// Parse Tests
//----------------------------------------------------------------------------//

// TestParse_Canonical verifies dimensions, markers, and a few cells of the
// reference 5×8 grid.
func TestParse_Canonical(t *testing.T) {
	hm, err := heightmap.Parse(canonicalGrid)
	require.NoError(t, err)

	assert.Equal(t, 40, hm.Len())
	assert.Equal(t, 5, hm.Rows())
	assert.Equal(t, 8, hm.Cols())
	assert.Equal(t, heightmap.Coord{R: 0, C: 0}, hm.Start())
	assert.Equal(t, heightmap.Coord{R: 2, C: 5}, hm.End())

	cell, ok := hm.At(heightmap.Coord{R: 0, C: 0})
	require.True(t, ok)
	assert.Equal(t, heightmap.Cell{Elevation: 0, Role: heightmap.RoleStart}, cell)

	cell, ok = hm.At(heightmap.Coord{R: 2, C: 4})
	require.True(t, ok)
	assert.Equal(t, heightmap.Cell{Elevation: 25, Role: heightmap.RolePlain}, cell)

	_, ok = hm.At(heightmap.Coord{R: 5, C: 0})
	assert.False(t, ok, "coordinate beyond the last row must be absent")
}

// TestParse_TrimsAndSkipsBlankLines checks that per-line whitespace and
// interior blank lines do not shift coordinates.
func TestParse_TrimsAndSkipsBlankLines(t *testing.T) {
	indented := "\n\t  Sz  \n\n   aE\t\n\n"
	hm, err := heightmap.Parse(indented)
	require.NoError(t, err)

	assert.Equal(t, 2, hm.Rows())
	assert.Equal(t, heightmap.Coord{R: 0, C: 0}, hm.Start())
	assert.Equal(t, heightmap.Coord{R: 1, C: 1}, hm.End())

	cell, ok := hm.At(heightmap.Coord{R: 1, C: 0})
	require.True(t, ok)
	assert.Equal(t, 0, cell.Elevation)
}

// TestParse_Errors covers every construction failure.
func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name  string
		input string
		err   error
	}{
		{"Empty", "", heightmap.ErrNoStart},
		{"NoStart", "abc\ndEf", heightmap.ErrNoStart},
		{"NoEnd", "Sbc\ndef", heightmap.ErrNoEnd},
		{"UnknownSymbol", "Sa#\nabE", heightmap.ErrUnknownSymbol},
		{"DuplicateStart", "SaS\nabE", heightmap.ErrDuplicateStart},
		{"DuplicateEnd", "SaE\nabE", heightmap.ErrDuplicateEnd},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			hm, err := heightmap.Parse(tc.input)
			assert.ErrorIs(t, err, tc.err)
			assert.Nil(t, hm, "no partial grid may be returned")
		})
	}
}

// TestParse_UnknownSymbolPosition checks the wrapped error names the spot.
func TestParse_UnknownSymbolPosition(t *testing.T) {
	_, err := heightmap.Parse("Sab\na7E")
	require.ErrorIs(t, err, heightmap.ErrUnknownSymbol)
	assert.ErrorContains(t, err, "row 1, col 1")
}

// TestParse_Idempotent verifies that parsing the same input twice yields
// equal maps, and that distinct inputs do not compare equal.
func TestParse_Idempotent(t *testing.T) {
	first, err := heightmap.Parse(canonicalGrid)
	require.NoError(t, err)
	second, err := heightmap.Parse(canonicalGrid)
	require.NoError(t, err)
	assert.True(t, first.Equal(second))
	assert.True(t, second.Equal(first))

	other, err := heightmap.Parse("Sz\nzE")
	require.NoError(t, err)
	assert.False(t, first.Equal(other))
	assert.False(t, first.Equal(nil))
}

// TestCoords_RowMajorOrder verifies the deterministic arena ordering.
func TestCoords_RowMajorOrder(t *testing.T) {
	hm, err := heightmap.Parse("Sab\ncdE")
	require.NoError(t, err)

	want := []heightmap.Coord{
		{R: 0, C: 0}, {R: 0, C: 1}, {R: 0, C: 2},
		{R: 1, C: 0}, {R: 1, C: 1}, {R: 1, C: 2},
	}
	assert.Equal(t, want, hm.Coords())
}
