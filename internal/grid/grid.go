// Package grid implements the 9x9 puzzle grid: parsing, serialization,
// per-cell candidate bookkeeping, and the row/column/box sector layout every
// other package in the engine builds on.
//
// Grid wraps human.Board (the candidate-bitmask board the technique catalog
// already understands), which also records which cells were given as clues.
// That distinction matters once the solver
// reasons about uniqueness (a Unique Rectangle corner may never be a given)
// and once the generator needs to report how many clues remain.
package grid

import (
	"fmt"
	"strings"

	"github.com/humansolve/sudoku/internal/digitset"
	"github.com/humansolve/sudoku/internal/fabric"
	"github.com/humansolve/sudoku/internal/sudoku/human"
	"github.com/humansolve/sudoku/pkg/constants"
)

// Position is a (row, col) coordinate, both 0..8.
type Position struct {
	Row, Col int
}

// Index returns the flat 0..80 cell index for p.
func (p Position) Index() int { return p.Row*constants.GridSize + p.Col }

// PositionOf returns the Position for a flat cell index.
func PositionOf(idx int) Position {
	return Position{Row: idx / constants.GridSize, Col: idx % constants.GridSize}
}

// SectorType names one of the three families of houses.
type SectorType int

const (
	SectorRow SectorType = iota
	SectorCol
	SectorBox
)

// Grid is a 9x9 Sudoku board: cell values, the given/placed distinction, and
// a recomputable cache of per-cell candidates. The given/placed distinction
// itself is tracked by the wrapped human.Board, so it survives every clone
// and simulation that board takes part in, not just the ones that go
// through Grid's own methods.
type Grid struct {
	board *human.Board
}

// Empty returns a Grid with no placed values.
func Empty() *Grid {
	return &Grid{board: human.NewBoard(make([]int, constants.TotalCells))}
}

// ParseError reports why an 81-character grid string could not be parsed.
type ParseError struct {
	Reason   string
	Position int // -1 when the error is not localized to one character
}

func (e *ParseError) Error() string {
	if e.Position >= 0 {
		return fmt.Sprintf("sudoku: %s at position %d", e.Reason, e.Position)
	}
	return fmt.Sprintf("sudoku: %s", e.Reason)
}

// Parse reads an 81-character grid string, '.' or '0' for blanks and '1'-'9'
// for clues. Every non-blank character becomes a given.
func Parse(s string) (*Grid, error) {
	if len(s) != constants.TotalCells {
		return nil, &ParseError{Reason: fmt.Sprintf("expected %d characters, got %d", constants.TotalCells, len(s)), Position: -1}
	}
	givens := make([]int, constants.TotalCells)
	g := &Grid{}
	for i, ch := range s {
		switch {
		case ch == '.' || ch == '0':
			givens[i] = 0
		case ch >= '1' && ch <= '9':
			givens[i] = int(ch - '0')
		default:
			return nil, &ParseError{Reason: fmt.Sprintf("invalid character %q", ch), Position: i}
		}
	}
	g.board = human.NewBoard(givens)
	return g, nil
}

// MustParse parses s and panics on failure. Intended for literals in tests
// and fixtures, never for puzzle strings originating outside the program.
func MustParse(s string) *Grid {
	g, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return g
}

// Serialize renders the grid back to its 81-character compact form, '0' for
// blanks.
func (g *Grid) Serialize() string {
	var sb strings.Builder
	sb.Grow(constants.TotalCells)
	for i := 0; i < constants.TotalCells; i++ {
		v := g.board.GetCell(i)
		if v == 0 {
			sb.WriteByte('0')
		} else {
			sb.WriteByte(byte('0' + v))
		}
	}
	return sb.String()
}

// Value returns the placed digit at pos, or 0 if empty.
func (g *Grid) Value(pos Position) int {
	return g.board.GetCell(pos.Index())
}

// IsGiven reports whether pos was a clue at parse time.
func (g *Grid) IsGiven(pos Position) bool {
	return g.board.IsGiven(pos.Index())
}

// IsEmpty reports whether pos holds no value.
func (g *Grid) IsEmpty(pos Position) bool {
	return g.board.GetCell(pos.Index()) == 0
}

// SetValue places digit at pos, leaving its given flag as it was, and
// updates peer candidates.
// It does not revalidate the grid; callers that need that call Validate.
func (g *Grid) SetValue(pos Position, digit int) {
	g.board.SetCell(pos.Index(), digit)
}

// SetGiven places digit at pos and marks it as a clue. Used only while
// constructing a grid programmatically (e.g. the generator).
func (g *Grid) SetGiven(pos Position, digit int) {
	g.board.SetCell(pos.Index(), digit)
	g.board.SetGivenFlag(pos.Index(), digit != 0)
}

// ClearValue removes the value at pos, clears its given flag, and
// recalculates that cell's candidates from its peers.
func (g *Grid) ClearValue(pos Position) {
	g.board.ClearCell(pos.Index())
	g.board.SetGivenFlag(pos.Index(), false)
}

// GetCandidates returns the peer-excluded candidate set for pos.
func (g *Grid) GetCandidates(pos Position) digitset.DigitSet {
	return g.board.GetCandidatesAt(pos.Index())
}

// RemoveCandidate removes digit from pos's candidate set; reports whether it
// had been present.
func (g *Grid) RemoveCandidate(pos Position, digit int) bool {
	return g.board.RemoveCandidate(pos.Index(), digit)
}

// RecalculateCandidates rebuilds every empty cell's candidate set from
// scratch by scanning its peers, restoring the grid invariant in O(81x20).
func (g *Grid) RecalculateCandidates() {
	g.board.InitCandidates()
}

// DeepClone returns an independent copy of the grid.
func (g *Grid) DeepClone() *Grid {
	return &Grid{board: g.board.Clone()}
}

// IsComplete reports whether every cell holds a value.
func (g *Grid) IsComplete() bool {
	for i := 0; i < constants.TotalCells; i++ {
		if g.board.GetCell(i) == 0 {
			return false
		}
	}
	return true
}

// IsValid reports whether no sector has a duplicated placed digit.
func (g *Grid) IsValid() bool {
	return g.board.IsValid()
}

// IsSolved reports whether the grid is complete and valid.
func (g *Grid) IsSolved() bool {
	return g.board.IsSolved()
}

// SectorDuplicate names one conflicting pair found by Validate.
type SectorDuplicate struct {
	Sector   SectorType
	Index    int
	Digit    int
	Cells    [2]Position
}

// Validate reports whether the grid has no sector duplicates, and lists any
// it finds. Used by the rendering/test layer, not by the solver itself.
func (g *Grid) Validate() (ok bool, duplicates []SectorDuplicate) {
	check := func(st SectorType, sectorIdx int, cells []int) {
		seen := make(map[int]int, 9)
		for _, idx := range cells {
			v := g.board.GetCell(idx)
			if v == 0 {
				continue
			}
			if prev, dup := seen[v]; dup {
				duplicates = append(duplicates, SectorDuplicate{
					Sector: st, Index: sectorIdx, Digit: v,
					Cells: [2]Position{PositionOf(prev), PositionOf(idx)},
				})
			} else {
				seen[v] = idx
			}
		}
	}
	for i := 0; i < constants.GridSize; i++ {
		check(SectorRow, i, human.RowIndices[i])
		check(SectorCol, i, human.ColIndices[i])
		check(SectorBox, i, human.BoxIndices[i])
	}
	return len(duplicates) == 0, duplicates
}

// EmptyPositions returns the positions of every unfilled cell.
func (g *Grid) EmptyPositions() []Position {
	var out []Position
	for i := 0; i < constants.TotalCells; i++ {
		if g.board.GetCell(i) == 0 {
			out = append(out, PositionOf(i))
		}
	}
	return out
}

// GivenCount returns the number of clue cells.
func (g *Grid) GivenCount() int {
	n := 0
	for i := 0; i < constants.TotalCells; i++ {
		if g.board.IsGiven(i) {
			n++
		}
	}
	return n
}

// Board exposes the underlying human.Board for packages (solver, backtrack)
// that still operate against the candidate-bitmask board directly. Mutating
// it bypasses the given/clue bookkeeping, so callers outside this module
// should prefer the Grid methods above.
func (g *Grid) Board() *human.Board { return g.board }

// Fabric builds a candidate fabric snapshot of the grid's current state, for
// callers (technique finders operating outside the solver's own dispatch
// loop) that want the indexed view
// instead of walking the board directly.
func (g *Grid) Fabric() *fabric.Fabric { return fabric.New(g.board) }
