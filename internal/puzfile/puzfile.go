// Package puzfile reads the binary .puz format, the inverse of
// pkg/output/puz.go's writer: magic string, width/height bytes,
// solution/state grids, then a null-terminated string section holding
// title, author, copyright, and every clue in number-then-direction
// order.
package puzfile

import (
	"bytes"
	"fmt"

	"github.com/crossplay/solver/pkg/puzzle"
	"github.com/crossplay/solver/pkg/xwerrors"
)

const (
	magic          = "ACROSS&DOWN\x00"
	headerSize     = 0x34
	widthOffset    = 0x2C
	heightOffset   = 0x2D
	numCluesOffset = 0x2E
)

// Puzzle is the parsed result of ReadPuz: geometry (dimensions and
// black-cell mask), title and author, the clue strings in file order
// (not yet attached to slots -- see ToModel), and the solution letters
// in row-major order.
type Puzzle struct {
	Width, Height int
	Black         []bool
	Solution      []byte // row-major, 0 for black cells
	Title, Author string
	Clues         []string // in .puz file order: number ascending, across before down
}

// ReadPuz parses the bytes of a .puz file.
func ReadPuz(data []byte) (*Puzzle, error) {
	if len(data) < headerSize || !bytes.HasPrefix(data, []byte(magic)) {
		return nil, fmt.Errorf("missing ACROSS&DOWN magic: %w", xwerrors.ErrParse)
	}

	width := int(data[widthOffset])
	height := int(data[heightOffset])
	numClues := int(data[numCluesOffset]) | int(data[numCluesOffset+1])<<8

	boardSize := width * height
	solutionStart := headerSize
	solutionEnd := solutionStart + boardSize
	stateEnd := solutionEnd + boardSize
	if len(data) < stateEnd {
		return nil, fmt.Errorf("file truncated before solution/state grids: %w", xwerrors.ErrParse)
	}

	solutionBytes := data[solutionStart:solutionEnd]
	black := make([]bool, boardSize)
	solution := make([]byte, boardSize)
	for i, b := range solutionBytes {
		if b == '.' {
			black[i] = true
		} else {
			solution[i] = b
		}
	}

	strs, err := readNullTerminatedStrings(data[stateEnd:], 3+numClues)
	if err != nil {
		return nil, err
	}

	return &Puzzle{
		Width:    width,
		Height:   height,
		Black:    black,
		Solution: solution,
		Title:    strs[0],
		Author:   strs[1],
		Clues:    strs[3:],
	}, nil
}

// readNullTerminatedStrings splits a byte run into exactly want
// null-terminated strings (title, author, copyright, then one per
// clue), matching writeStrings's layout.
func readNullTerminatedStrings(data []byte, want int) ([]string, error) {
	var out []string
	start := 0
	for i := 0; i < len(data) && len(out) < want; i++ {
		if data[i] == 0 {
			out = append(out, string(data[start:i]))
			start = i + 1
		}
	}
	if len(out) < want {
		return nil, fmt.Errorf("expected %d null-terminated strings, found %d: %w", want, len(out), xwerrors.ErrParse)
	}
	return out, nil
}

// ToModel builds a pkg/puzzle.Puzzle from the parsed file, assigning
// clue text to slots in the same number-then-(across-before-down)
// order the .puz clue list is stored in -- the same order
// pkg/puzzle.New's own slot-numbering pass produces, so zipping the two
// lists together lines clues up with slots without the file needing to
// store slot identities explicitly. If includeSolution is true, every
// white cell is pre-filled with the embedded solution letter (spec.md
// §4.3's `load(reader, include_solution?)`); otherwise the puzzle comes
// back empty, ready for a solver to fill in.
func (pf *Puzzle) ToModel(includeSolution bool) (*puzzle.Puzzle, error) {
	geometrySlots, err := numberSlotsOnly(pf.Width, pf.Height, pf.Black)
	if err != nil {
		return nil, err
	}
	if len(geometrySlots) != len(pf.Clues) {
		return nil, fmt.Errorf("puzzle has %d slots but %d clues: %w", len(geometrySlots), len(pf.Clues), xwerrors.ErrParse)
	}

	clueText := make(map[puzzle.SlotId]string, len(geometrySlots))
	for i, id := range geometrySlots {
		clueText[id] = pf.Clues[i]
	}

	p, err := puzzle.New(pf.Width, pf.Height, pf.Black, clueText)
	if err != nil {
		return nil, err
	}

	if includeSolution {
		if err := p.FillFromSolution(pf.Solution); err != nil {
			return nil, fmt.Errorf("applying embedded solution: %w", err)
		}
	}

	return p, nil
}

// numberSlotsOnly reconstructs just the SlotId list, in clue-file
// order (number ascending, across before down at the same number), by
// building a Puzzle with empty clue text and reading its own slot
// list -- pkg/puzzle.New's buildSlots already produces across before
// down within a shared starting cell, matching the .puz convention.
func numberSlotsOnly(width, height int, black []bool) ([]puzzle.SlotId, error) {
	p, err := puzzle.New(width, height, black, nil)
	if err != nil {
		return nil, err
	}
	ids := make([]puzzle.SlotId, 0, len(p.Slots))
	for _, s := range p.Slots {
		ids = append(ids, s.Id)
	}
	return sortByNumberThenDirection(ids), nil
}

func sortByNumberThenDirection(ids []puzzle.SlotId) []puzzle.SlotId {
	out := append([]puzzle.SlotId(nil), ids...)
	for i := 1; i < len(out); i++ {
		for j := i; j > 0; j-- {
			a, b := out[j-1], out[j]
			if a.Number > b.Number || (a.Number == b.Number && a.Direction == puzzle.Down && b.Direction == puzzle.Across) {
				out[j-1], out[j] = out[j], out[j-1]
				continue
			}
			break
		}
	}
	return out
}
