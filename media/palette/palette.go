package palette

import (
	"image/color"

	"github.com/pkg/errors"
)

// ColorTable is a read-only snapshot of one palette from the interfac.drs
// color tables. Builders may share a table across goroutines because the
// colors slice is never mutated after construction.
type ColorTable struct {
	colors []color.NRGBA
}

func NewColorTable(colors []color.NRGBA) *ColorTable {
	snapshot := make([]color.NRGBA, len(colors))
	copy(snapshot, colors)
	return &ColorTable{colors: snapshot}
}

// NewColorTableFromRaw builds a table from packed 0xAABBGGRR values,
// the layout palette loaders hand over.
func NewColorTableFromRaw(raw []uint32) *ColorTable {
	colors := make([]color.NRGBA, len(raw))
	for i, clr := range raw {
		colors[i] = color.NRGBA{
			R: uint8(clr),
			G: uint8(clr >> 8),
			B: uint8(clr >> 16),
			A: uint8(clr >> 24),
		}
	}
	return &ColorTable{colors: colors}
}

func (ct *ColorTable) Len() int {
	return len(ct.colors)
}

// Color looks up a palette entry. Index validity is the caller's
// contract, out of range panics like any slice access.
func (ct *ColorTable) Color(index int) color.NRGBA {
	return ct.colors[index]
}

// Table is the palette-number -> color-table mapping consumed by the
// texture builder. Lookup of a missing number is a contract violation
// of whoever validated palette indices upstream.
type Table map[int]*ColorTable

func (t Table) Lookup(index int) (*ColorTable, error) {
	ct, ok := t[index]
	if !ok {
		return nil, errors.Errorf("No color table for palette number %d", index)
	}
	return ct, nil
}
