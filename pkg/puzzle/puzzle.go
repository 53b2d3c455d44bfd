package puzzle

import (
	"fmt"

	"github.com/crossplay/solver/pkg/xwerrors"
)

// Puzzle is the mutable solving target: fixed geometry and slot list,
// plus a mutable vector of cell states. Slots are immutable once built;
// only cell states change during solving.
type Puzzle struct {
	Width, Height int
	Slots         []Slot
	cells         []cellState

	// crossings[slotIndex][cellPositionInSlot] is the index into Slots of
	// the other slot passing through that cell, or -1 if none.
	crossings [][]int

	// acrossAt and downAt map a linear cell index to the index into
	// Slots of the Across and Down slot covering it, -1 where absent.
	acrossAt []int
	downAt   []int
}

// New builds a Puzzle from raw geometry: dimensions, black-cell mask
// (true = black), and a clue-text lookup keyed by SlotId. Slot
// construction follows pkg/grid/entries.go's two-pass scan, generalized
// to width != height.
func New(width, height int, black []bool, clueText map[SlotId]string) (*Puzzle, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("dimensions %dx%d: %w", width, height, xwerrors.ErrInvalidPuzzle)
	}
	if len(black) != width*height {
		return nil, fmt.Errorf("black mask length %d, want %d: %w", len(black), width*height, xwerrors.ErrInvalidPuzzle)
	}

	p := &Puzzle{Width: width, Height: height}
	p.cells = make([]cellState, width*height)
	for i, b := range black {
		p.cells[i] = cellState{black: b}
	}

	p.Slots = buildSlots(width, height, black, clueText)

	p.acrossAt = make([]int, width*height)
	p.downAt = make([]int, width*height)
	for i := range p.acrossAt {
		p.acrossAt[i] = -1
		p.downAt[i] = -1
	}
	for si, s := range p.Slots {
		for _, cellIdx := range s.Cells {
			if s.Id.Direction == Across {
				p.acrossAt[cellIdx] = si
			} else {
				p.downAt[cellIdx] = si
			}
		}
	}

	p.crossings = make([][]int, len(p.Slots))
	for si, s := range p.Slots {
		p.crossings[si] = make([]int, len(s.Cells))
		for pos, cellIdx := range s.Cells {
			if s.Id.Direction == Across {
				p.crossings[si][pos] = p.downAt[cellIdx]
			} else {
				p.crossings[si][pos] = p.acrossAt[cellIdx]
			}
		}
	}

	return p, nil
}

// index converts (row, col) to a linear row-major cell index.
func (p *Puzzle) index(row, col int) int {
	return row*p.Width + col
}

// buildSlots scans the black mask and assigns Across/Down entries the
// way pkg/grid/entries.go's computeEntries does: a first pass assigns
// clue numbers to every cell that begins a run, a second and third pass
// collect the Across and Down runs themselves.
func buildSlots(width, height int, black []bool, clueText map[SlotId]string) []Slot {
	isBlack := func(row, col int) bool {
		if row < 0 || row >= height || col < 0 || col >= width {
			return true
		}
		return black[row*width+col]
	}

	number := make([]int, width*height)
	next := 1
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			if isBlack(row, col) {
				continue
			}
			startsAcross := (col == 0 || isBlack(row, col-1)) && !isBlack(row, col+1)
			startsDown := (row == 0 || isBlack(row-1, col)) && !isBlack(row+1, col)
			if startsAcross || startsDown {
				number[row*width+col] = next
				next++
			}
		}
	}

	var slots []Slot

	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			if isBlack(row, col) {
				continue
			}
			if col != 0 && !isBlack(row, col-1) {
				continue
			}
			var cells []int
			c := col
			for c < width && !isBlack(row, c) {
				cells = append(cells, row*width+c)
				c++
			}
			if len(cells) < 2 {
				continue
			}
			id := SlotId{Number: number[row*width+col], Direction: Across}
			slots = append(slots, Slot{Id: id, Clue: clueText[id], Cells: cells})
		}
	}

	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			if isBlack(row, col) {
				continue
			}
			if row != 0 && !isBlack(row-1, col) {
				continue
			}
			var cells []int
			r := row
			for r < height && !isBlack(r, col) {
				cells = append(cells, r*width+col)
				r++
			}
			if len(cells) < 2 {
				continue
			}
			id := SlotId{Number: number[row*width+col], Direction: Down}
			slots = append(slots, Slot{Id: id, Clue: clueText[id], Cells: cells})
		}
	}

	return slots
}

// slotIndex finds a Slot's position in p.Slots by identity. Puzzle
// methods take a Slot by value (as returned from p.Slots), so this
// re-derives the index rather than requiring callers to track it.
func (p *Puzzle) slotIndex(slot Slot) (int, error) {
	for i, s := range p.Slots {
		if s.Id == slot.Id {
			return i, nil
		}
	}
	return 0, fmt.Errorf("slot %v: %w", slot.Id, xwerrors.ErrInvalidPuzzle)
}

// Crossing returns the other Slot passing through the cell at position
// cellIndex within slot (the Across<->Down pair), or false if that cell
// has no crossing slot.
func (p *Puzzle) Crossing(slot Slot, cellIndex int) (Slot, bool) {
	si, err := p.slotIndex(slot)
	if err != nil || cellIndex < 0 || cellIndex >= len(p.crossings[si]) {
		return Slot{}, false
	}
	other := p.crossings[si][cellIndex]
	if other < 0 {
		return Slot{}, false
	}
	return p.Slots[other], true
}

// NSet counts the cells holding a letter (filled, non-black, non-empty).
func (p *Puzzle) NSet() int {
	n := 0
	for _, c := range p.cells {
		if !c.black && c.letter != 0 {
			n++
		}
	}
	return n
}

// Copy returns an independent deep copy: slots (immutable) are shared,
// but the mutable cell vector is duplicated.
func (p *Puzzle) Copy() *Puzzle {
	cp := &Puzzle{
		Width:     p.Width,
		Height:    p.Height,
		Slots:     p.Slots,
		crossings: p.crossings,
		acrossAt:  p.acrossAt,
		downAt:    p.downAt,
	}
	cp.cells = make([]cellState, len(p.cells))
	copy(cp.cells, p.cells)
	return cp
}
