package puzzle

import (
	"fmt"
	"strings"

	"github.com/crossplay/solver/pkg/xwerrors"
)

// GetFill returns the current per-cell state of slot as a string, using
// '.' for an empty cell and the uppercase letter for a filled one.
func (p *Puzzle) GetFill(slot Slot) string {
	var b strings.Builder
	for _, cellIdx := range slot.Cells {
		c := p.cells[cellIdx]
		if c.letter == 0 {
			b.WriteByte('.')
		} else {
			b.WriteByte(c.letter)
		}
	}
	return b.String()
}

// WouldConflict reports whether placing word into slot would either
// mismatch its length or contradict an already-set letter.
func (p *Puzzle) WouldConflict(slot Slot, word string) bool {
	if len(word) != slot.Length() {
		return true
	}
	for i, cellIdx := range slot.Cells {
		existing := p.cells[cellIdx].letter
		if existing != 0 && existing != normalizeLetter(word[i]) {
			return true
		}
	}
	return false
}

func normalizeLetter(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - ('a' - 'A')
	}
	return b
}

// SetFill plays word into slot. It fails with ErrLengthMismatch if the
// lengths differ, or ErrConflict if an already-set letter disagrees.
// Cells already holding the matching letter are left untouched (a no-op
// write), matching spec.md §4.3's "setting preserves any already-set
// letters identical to the incoming word".
func (p *Puzzle) SetFill(slot Slot, word string) error {
	if len(word) != slot.Length() {
		return fmt.Errorf("slot %v wants length %d, got %d: %w", slot.Id, slot.Length(), len(word), xwerrors.ErrLengthMismatch)
	}
	if p.WouldConflict(slot, word) {
		return fmt.Errorf("slot %v: %w", slot.Id, xwerrors.ErrConflict)
	}
	for i, cellIdx := range slot.Cells {
		p.cells[cellIdx].letter = normalizeLetter(word[i])
	}
	return nil
}

// EraseFill clears every cell in slot back to empty, regardless of
// whether a crossing slot still claims one of those cells as set. This
// mirrors the original's per-slot erase (no crossing-aware partial
// erase is specified).
func (p *Puzzle) EraseFill(slot Slot) {
	for _, cellIdx := range slot.Cells {
		p.cells[cellIdx].letter = 0
	}
}

// FillFromSolution sets every non-black cell's letter directly from a
// row-major solution buffer (as read from a .puz file's embedded
// solution grid), bypassing the per-slot conflict check since the
// solution is authoritative by construction.
func (p *Puzzle) FillFromSolution(solution []byte) error {
	if len(solution) != len(p.cells) {
		return fmt.Errorf("solution length %d, want %d: %w", len(solution), len(p.cells), xwerrors.ErrInvalidPuzzle)
	}
	for i, c := range p.cells {
		if c.black {
			continue
		}
		p.cells[i].letter = normalizeLetter(solution[i])
	}
	return nil
}

// IsBlack reports whether the cell at the given linear index is black.
func (p *Puzzle) IsBlack(cellIndex int) bool {
	return p.cells[cellIndex].black
}

// Letter returns the letter currently set at cellIndex, or 0 if empty.
func (p *Puzzle) Letter(cellIndex int) byte {
	return p.cells[cellIndex].letter
}
