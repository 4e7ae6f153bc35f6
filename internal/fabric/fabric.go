// Package fabric builds the candidate fabric: a read-only, dual-indexed
// snapshot of a board taken once per solving step. Every technique finder
// reads from a fabric instead of re-deriving row/column/box scans itself,
// so the cost of computing "which cells in this box still hold 4" is paid
// once per step no matter how many finders ask.
//
// Fabric wraps a techniques.BoardInterface (the candidate-bitmask board the
// technique catalog already walks) and adds the sector-oriented index the
// catalog never needed: for each of the 27 houses and each digit, the
// bitmask of in-house positions that still carry that digit as a candidate.
// Fish and subset finders want that view directly instead of re-scanning
// CellsWithDigitInUnit for every digit they consider. Wrapping the interface
// rather than a concrete board type lets both the solving orchestrator
// (internal/sudoku/human) and the grid wrapper (internal/grid) build a
// fabric from whatever board they already hold, with no import cycle
// between the two.
package fabric

import (
	"github.com/humansolve/sudoku/internal/sudoku/human/techniques"
	"github.com/humansolve/sudoku/pkg/constants"
)

// Sector ids: 0-8 are rows, 9-17 are columns, 18-26 are boxes.
const (
	sectorRowBase = 0
	sectorColBase = constants.GridSize
	sectorBoxBase = 2 * constants.GridSize
	sectorCount   = 3 * constants.GridSize
)

// rowIndices, colIndices and boxIndices give the flat cell indices making up
// each row, column and box. This is the same fixed 9x9 layout
// internal/sudoku/human computes for itself; fabric keeps its own copy so it
// depends on nothing but the technique catalog's interface, letting that
// catalog's own package build a fabric without an import cycle.
var rowIndices, colIndices, boxIndices [constants.GridSize][]int

func init() {
	for r := 0; r < constants.GridSize; r++ {
		for c := 0; c < constants.GridSize; c++ {
			idx := r*constants.GridSize + c
			boxNum := (r/3)*3 + c/3
			rowIndices[r] = append(rowIndices[r], idx)
			colIndices[c] = append(colIndices[c], idx)
			boxIndices[boxNum] = append(boxIndices[boxNum], idx)
		}
	}
}

// Fabric is a read-only snapshot of a board's values and candidates, indexed
// both by cell and by (sector, digit).
type Fabric struct {
	board techniques.BoardInterface

	cellSectors [constants.TotalCells][3]int // row, col, box sector ids for each cell
	sectorCells [sectorCount][]int           // the cell indices belonging to each sector, in sector order

	// sectorDigitCells[sector][digit] is a bitmask over sector-local position
	// 0..8: bit i is set iff sectorCells[sector][i] still carries digit as a
	// candidate. Index 0 is unused (digits are 1-9).
	sectorDigitCells [sectorCount][10]uint16
	sectorDigitCount [sectorCount][10]int

	peers [constants.TotalCells][]int

	emptyCount int
}

// New builds a Fabric snapshot wrapping board. The snapshot is independent
// of board: later mutation of the source board does not affect a Fabric
// already built from it, because New takes its own clone.
func New(board techniques.BoardInterface) *Fabric {
	f := &Fabric{board: board.CloneBoard()}
	f.indexSectors()
	f.indexCandidates()
	return f
}

func (f *Fabric) indexSectors() {
	for i := 0; i < constants.TotalCells; i++ {
		row, col := i/constants.GridSize, i%constants.GridSize
		rowSector := sectorRowBase + row
		colSector := sectorColBase + col
		boxSector := sectorBoxBase + (row/3)*3 + col/3
		f.cellSectors[i] = [3]int{rowSector, colSector, boxSector}
	}
	for r := 0; r < constants.GridSize; r++ {
		f.sectorCells[sectorRowBase+r] = rowIndices[r]
		f.sectorCells[sectorColBase+r] = colIndices[r]
		f.sectorCells[sectorBoxBase+r] = boxIndices[r]
	}
	for i := 0; i < constants.TotalCells; i++ {
		peers := make(map[int]struct{}, 20)
		for _, sector := range f.cellSectors[i] {
			for _, cell := range f.sectorCells[sector] {
				if cell != i {
					peers[cell] = struct{}{}
				}
			}
		}
		list := make([]int, 0, len(peers))
		for cell := range peers {
			list = append(list, cell)
		}
		f.peers[i] = list
	}
}

func (f *Fabric) indexCandidates() {
	f.emptyCount = 0
	f.sectorDigitCells = [sectorCount][10]uint16{}
	f.sectorDigitCount = [sectorCount][10]int{}
	for i := 0; i < constants.TotalCells; i++ {
		if f.board.GetCell(i) == 0 {
			f.emptyCount++
		}
		cands := f.board.GetCandidatesAt(i)
		for _, sector := range f.cellSectors[i] {
			pos := f.positionInSector(sector, i)
			for d := 1; d <= 9; d++ {
				if cands.Has(d) {
					f.sectorDigitCells[sector][d] |= 1 << uint(pos)
					f.sectorDigitCount[sector][d]++
				}
			}
		}
	}
}

func (f *Fabric) positionInSector(sector, cell int) int {
	for i, c := range f.sectorCells[sector] {
		if c == cell {
			return i
		}
	}
	return -1
}

// Value returns the placed digit at cell idx, or 0 if empty.
func (f *Fabric) Value(idx int) int { return f.board.GetCell(idx) }

// IsGiven reports whether cell idx was a clue, not a solved deduction.
func (f *Fabric) IsGiven(idx int) bool { return f.board.IsGiven(idx) }

// Candidates returns the candidate set at cell idx.
func (f *Fabric) Candidates(idx int) techniques.Candidates { return f.board.GetCandidatesAt(idx) }

// EmptyCount returns the number of unfilled cells in the snapshot.
func (f *Fabric) EmptyCount() int { return f.emptyCount }

// Peers returns the 20 cells sharing a row, column or box with idx.
func (f *Fabric) Peers(idx int) []int { return f.peers[idx] }

// SectorCells returns the cell indices making up sector, in sector order.
func (f *Fabric) SectorCells(sector int) []int { return f.sectorCells[sector] }

// RowSector, ColSector and BoxSector return the sector id for the row,
// column and box containing idx, respectively.
func (f *Fabric) RowSector(idx int) int { return f.cellSectors[idx][0] }
func (f *Fabric) ColSector(idx int) int { return f.cellSectors[idx][1] }
func (f *Fabric) BoxSector(idx int) int { return f.cellSectors[idx][2] }

// SectorCount is the number of sectors (27: 9 rows, 9 columns, 9 boxes).
func SectorCount() int { return sectorCount }

// DigitPositions returns the bitmask of sector-local positions (0..8) that
// still carry digit as a candidate within sector.
func (f *Fabric) DigitPositions(sector, digit int) uint16 {
	return f.sectorDigitCells[sector][digit]
}

// DigitCount returns how many cells in sector still carry digit as a
// candidate.
func (f *Fabric) DigitCount(sector, digit int) int {
	return f.sectorDigitCount[sector][digit]
}

// CellsForDigit returns the actual cell indices in sector that still carry
// digit as a candidate.
func (f *Fabric) CellsForDigit(sector, digit int) []int {
	mask := f.sectorDigitCells[sector][digit]
	cells := f.sectorCells[sector]
	var out []int
	for i := 0; i < len(cells); i++ {
		if mask&(1<<uint(i)) != 0 {
			out = append(out, cells[i])
		}
	}
	return out
}

// Underlying exposes the wrapped board so callers that need the plain
// candidate-board contract (e.g. to build another fabric from a fresh
// clone) can reach it.
func (f *Fabric) Underlying() techniques.BoardInterface { return f.board }

// The methods below satisfy techniques.BoardInterface, letting any existing
// finder take a *Fabric wherever it previously took a *human.Board.

// GetCell implements techniques.BoardInterface.
func (f *Fabric) GetCell(idx int) int { return f.board.GetCell(idx) }

// GetCandidatesAt implements techniques.BoardInterface.
func (f *Fabric) GetCandidatesAt(idx int) techniques.Candidates { return f.board.GetCandidatesAt(idx) }

// CellsWithDigitInUnit implements techniques.BoardInterface.
func (f *Fabric) CellsWithDigitInUnit(unit techniques.Unit, digit int) []int {
	return f.board.CellsWithDigitInUnit(unit, digit)
}

// CloneBoard implements techniques.BoardInterface. Simulation branches (e.g.
// forcing chains) only need the plain candidate-board contract, so the clone
// is the wrapped board itself rather than a re-indexed Fabric: sector
// indices are expensive to keep live through a hypothetical branch that gets
// thrown away as soon as it contradicts.
func (f *Fabric) CloneBoard() techniques.BoardInterface { return f.board.CloneBoard() }

// SetCell implements techniques.BoardInterface. It mutates the snapshot in
// place and reindexes; callers that want an untouched fabric should build a
// fresh one instead of calling SetCell on a shared snapshot.
func (f *Fabric) SetCell(idx, digit int) {
	f.board.SetCell(idx, digit)
	f.indexCandidates()
}

// RemoveCandidate implements techniques.BoardInterface, reindexing the
// affected sectors after the change.
func (f *Fabric) RemoveCandidate(idx, digit int) bool {
	removed := f.board.RemoveCandidate(idx, digit)
	if removed {
		f.indexCandidates()
	}
	return removed
}
