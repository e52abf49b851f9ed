package defn

import (
	"sort"

	"github.com/kpitt/hexcells-solver/internal/hexcoord"
)

// Entry pairs a coordinate with its cell, as returned by Defn.All.
type Entry struct {
	Coord hexcoord.Coord
	Cell  Cell
}

// Defn is the read-only puzzle definition: a map from coordinate to cell,
// plus the puzzle's declared total blue count. It never changes once built.
type Defn struct {
	cells     map[hexcoord.Coord]Cell
	order     []hexcoord.Coord
	totalBlue int
}

// New builds a Defn from a coordinate->cell map and the declared blue count.
// The map is copied; callers retain ownership of the argument.
func New(cells map[hexcoord.Coord]Cell, totalBlue int) *Defn {
	d := &Defn{
		cells:     make(map[hexcoord.Coord]Cell, len(cells)),
		order:     make([]hexcoord.Coord, 0, len(cells)),
		totalBlue: totalBlue,
	}
	for c, cell := range cells {
		d.cells[c] = cell
		d.order = append(d.order, c)
	}
	sort.Slice(d.order, func(i, j int) bool { return d.order[i].Less(d.order[j]) })
	return d
}

// Cell returns the cell at c, or (Cell{}, false) if c is off-grid.
func (d *Defn) Cell(c hexcoord.Coord) (Cell, bool) {
	cell, ok := d.cells[c]
	return cell, ok
}

// Colorable reports whether c is present and colorable.
func (d *Defn) Colorable(c hexcoord.Coord) bool {
	cell, ok := d.cells[c]
	return ok && cell.Colorable()
}

// All returns every (coord, cell) pair in canonical coordinate order.
func (d *Defn) All() []Entry {
	entries := make([]Entry, 0, len(d.order))
	for _, c := range d.order {
		entries = append(entries, Entry{Coord: c, Cell: d.cells[c]})
	}
	return entries
}

// TotalBlueCount returns the puzzle's declared total number of blue cells.
func (d *Defn) TotalBlueCount() int {
	return d.totalBlue
}
