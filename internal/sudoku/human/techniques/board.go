// Package techniques contains Sudoku solving technique implementations.
//
// Techniques are decoupled from the concrete Board implementation via BoardInterface.
// This allows for better testability and flexibility.
package techniques

import "github.com/humansolve/sudoku/internal/digitset"

// Candidates is the digit-set type the technique catalog reads and writes.
// It is an alias of digitset.DigitSet: the catalog and the candidate fabric
// share one bitmask representation, so a fabric snapshot can be handed
// straight to any finder with no conversion.
type Candidates = digitset.DigitSet

// NewCandidates creates a Candidates bitmask from a slice of digits.
func NewCandidates(digits []int) Candidates {
	return digitset.New(digits...)
}

// AllCandidates returns a Candidates with all digits 1-9 set.
func AllCandidates() Candidates {
	return digitset.All
}

// ============================================================================
// Unit Types
// ============================================================================

// UnitType represents row, column, or box
type UnitType int

const (
	UnitRow UnitType = iota
	UnitCol
	UnitBox
)

func (u UnitType) String() string {
	switch u {
	case UnitRow:
		return "row"
	case UnitCol:
		return "column"
	case UnitBox:
		return "box"
	}
	return ""
}

// Unit represents a single row, column, or box
type Unit struct {
	Type  UnitType
	Index int   // 0-8, which row/col/box
	Cells []int // The GridSize cell indices
}

// ============================================================================
// BoardInterface - Abstract Board Operations for Techniques
// ============================================================================

// BoardInterface defines the board operations needed by solving techniques
type BoardInterface interface {
	// Cell state queries
	GetCell(idx int) int                // Returns 0 for empty, 1-9 for filled
	GetCandidatesAt(idx int) Candidates // Returns candidate bitmask for cell
	IsGiven(idx int) bool                // Returns true for a starting clue, not a solved deduction

	// Unit queries
	CellsWithDigitInUnit(unit Unit, digit int) []int

	// Mutation (for simulation in forcing chains)
	CloneBoard() BoardInterface
	SetCell(idx, digit int)
	RemoveCandidate(idx, digit int) bool
}
