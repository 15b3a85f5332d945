// internal/display/icon.go
package display

import "fmt"

// Icon is a 1-bit bitmap described row by row: '#' is a lit pixel, anything else is dark.
type Icon struct {
	Name string
	Rows []string
}

// Size returns the icon's width and height.
func (ic Icon) Size() (w, h int) {
	if len(ic.Rows) == 0 {
		return 0, 0
	}
	return len(ic.Rows[0]), len(ic.Rows)
}

// Lit reports whether pixel (x, y) is on.
func (ic Icon) Lit(x, y int) bool {
	if y < 0 || y >= len(ic.Rows) || x < 0 || x >= len(ic.Rows[y]) {
		return false
	}
	return ic.Rows[y][x] == '#'
}

// Validate checks that every row has the same width.
func (ic Icon) Validate() error {
	w, _ := ic.Size()
	for i, r := range ic.Rows {
		if len(r) != w {
			return fmt.Errorf("icon %s: row %d is %d wide, want %d", ic.Name, i, len(r), w)
		}
	}
	return nil
}

// DataRx is a 32x32 "data received" icon: an arrow pointing down into a tray.
var DataRx = Icon{Name: "data_rx", Rows: []string{
	"................................",
	"................................",
	"..............####..............",
	"..............####..............",
	"..............####..............",
	"..............####..............",
	"..............####..............",
	"..............####..............",
	"..............####..............",
	"..............####..............",
	"..............####..............",
	"..............####..............",
	".........##############.........",
	"..........############..........",
	"...........##########...........",
	"............########............",
	".............######.............",
	"..............####..............",
	"...............##...............",
	"................................",
	"................................",
	"...##......................##...",
	"...##......................##...",
	"...##......................##...",
	"...##......................##...",
	"...##......................##...",
	"...##########################...",
	"...##########################...",
	"................................",
	"................................",
	"................................",
	"................................",
}}

// DataTx is a 32x32 "data transmitted" icon: an arrow leaving a tray upwards.
var DataTx = Icon{Name: "data_tx", Rows: []string{
	"................................",
	"................................",
	"...............##...............",
	"..............####..............",
	".............######.............",
	"............########............",
	"...........##########...........",
	"..........############..........",
	".........##############.........",
	"..............####..............",
	"..............####..............",
	"..............####..............",
	"..............####..............",
	"..............####..............",
	"..............####..............",
	"..............####..............",
	"..............####..............",
	"..............####..............",
	"..............####..............",
	"................................",
	"................................",
	"...##......................##...",
	"...##......................##...",
	"...##......................##...",
	"...##......................##...",
	"...##......................##...",
	"...##########################...",
	"...##########################...",
	"................................",
	"................................",
	"................................",
	"................................",
}}
