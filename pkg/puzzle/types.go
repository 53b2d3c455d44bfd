// Package puzzle implements the Puzzle data model: a width×height grid
// of cells, the slots (clue entries) that run across it, and the
// mutable fill state, generalizing the square-grid model in
// pkg/grid/types.go and pkg/grid/entries.go to arbitrary rectangular
// geometry per spec.md §3/§4.3.
package puzzle

// Direction is a crossword entry's orientation.
type Direction int

const (
	Across Direction = iota
	Down
)

func (d Direction) String() string {
	switch d {
	case Across:
		return "across"
	case Down:
		return "down"
	default:
		return "unknown"
	}
}

// SlotId uniquely identifies a clue: its printed number plus direction.
type SlotId struct {
	Number    int
	Direction Direction
}

// Slot is an immutable crossword entry: its identity, clue text, and the
// ordered sequence of linear cell indices (row-major: row*width+col) it
// occupies. For Across slots the indices are consecutive; for Down they
// are separated by the grid width.
type Slot struct {
	Id    SlotId
	Clue  string
	Cells []int
}

// Length is the number of cells (and so the required answer length) of
// the slot.
func (s Slot) Length() int {
	return len(s.Cells)
}

// cellState is a tagged union over a single cell: either permanently
// black, or white and either empty or holding a letter.
type cellState struct {
	black  bool
	letter byte // 0 means empty; otherwise 'A'-'Z'
}

// RawSlot is a geometry-only slot shape: a slot identity plus its cell
// indices, mirroring Slot without clue text. internal/puzfile does not
// use it; its reader returns clue strings and ToModel builds Slots
// through New.
type RawSlot struct {
	Id    SlotId
	Cells []int
}
