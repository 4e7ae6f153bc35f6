// Package backtrack implements the constraint-propagating depth-first
// search used as a fallback solver and for uniqueness counting. It is
// grounded on the same recursive structure as the project's original
// first-empty-cell search, with two additions the fallback path needs:
// a naked/hidden-singles fixpoint before every branch point, and a
// minimum-remaining-values cell choice instead of a raster scan.
package backtrack

import (
	"github.com/humansolve/sudoku/internal/grid"
)

// Solve runs the search to completion and returns a solved grid, or nil if
// g has no solution. g is not mutated; the returned grid is independent.
func Solve(g *grid.Grid) *grid.Grid {
	working := g.DeepClone()
	if solve(working) {
		return working
	}
	return nil
}

// CountSolutions counts solutions to g, stopping once limit is reached. It
// is used both to check uniqueness (limit=2) and, during generation, to
// reject a clue removal that breaks uniqueness.
func CountSolutions(g *grid.Grid, limit int) int {
	working := g.DeepClone()
	count := 0
	countSolutions(working, &count, limit)
	return count
}

// HasUniqueSolution reports whether g has exactly one solution.
func HasUniqueSolution(g *grid.Grid) bool {
	return CountSolutions(g, 2) == 1
}

// NextPlacement reports the forced placement a full search would make next:
// the minimum-remaining-values cell of g, and the digit the search fixes
// there on its way to a complete solution. It is the fallback used once the
// human technique catalog finds no applicable move but the grid is not yet
// solved; nodes reports how many recursive calls the search needed, for
// inclusion in the resulting proof certificate. ok is false if g has no
// solution or is already complete.
func NextPlacement(g *grid.Grid) (pos grid.Position, digit int, nodes int, ok bool) {
	target, hasTarget := minimumRemainingValuesCell(g)
	if !hasTarget {
		return grid.Position{}, 0, 0, false
	}

	working := g.DeepClone()
	if !solveCount(working, &nodes) {
		return grid.Position{}, 0, 0, false
	}
	return target, working.Value(target), nodes, true
}

// solve performs steps 1-4 of the search: propagate singles to a fixpoint,
// detect contradiction or completion, else branch on the MRV cell.
func solve(g *grid.Grid) bool {
	if !propagateSingles(g) {
		return false
	}
	if g.IsComplete() {
		return g.IsValid()
	}

	pos, ok := minimumRemainingValuesCell(g)
	if !ok {
		return false // an empty cell has no candidates left
	}

	for _, digit := range g.GetCandidates(pos).Digits() {
		branch := g.DeepClone()
		branch.SetValue(pos, digit)
		branch.RecalculateCandidates()
		if solve(branch) {
			*g = *branch
			return true
		}
	}
	return false
}

// solveCount mirrors solve, additionally counting recursive calls so
// callers can report search effort (e.g. in a backtracking hint's proof
// certificate).
func solveCount(g *grid.Grid, nodes *int) bool {
	*nodes++
	if !propagateSingles(g) {
		return false
	}
	if g.IsComplete() {
		return g.IsValid()
	}

	pos, ok := minimumRemainingValuesCell(g)
	if !ok {
		return false
	}

	for _, digit := range g.GetCandidates(pos).Digits() {
		branch := g.DeepClone()
		branch.SetValue(pos, digit)
		branch.RecalculateCandidates()
		if solveCount(branch, nodes) {
			*g = *branch
			return true
		}
	}
	return false
}

func countSolutions(g *grid.Grid, count *int, limit int) {
	if *count >= limit {
		return
	}
	if !propagateSingles(g) {
		return
	}
	if g.IsComplete() {
		if g.IsValid() {
			*count++
		}
		return
	}

	pos, ok := minimumRemainingValuesCell(g)
	if !ok {
		return
	}

	for _, digit := range g.GetCandidates(pos).Digits() {
		if *count >= limit {
			return
		}
		branch := g.DeepClone()
		branch.SetValue(pos, digit)
		branch.RecalculateCandidates()
		countSolutions(branch, count, limit)
	}
}

// propagateSingles applies naked singles (a cell with exactly one
// candidate) and hidden singles (a digit with exactly one legal cell in
// some row, column or box) to a fixpoint. It reports false the moment a
// contradiction is detected: an empty cell with no candidates, or a sector
// that is missing a digit it must eventually contain.
func propagateSingles(g *grid.Grid) bool {
	for {
		changed := false

		for _, pos := range g.EmptyPositions() {
			cands := g.GetCandidates(pos)
			if cands.IsEmpty() {
				return false
			}
			if digit, ok := cands.Single(); ok {
				g.SetValue(pos, digit)
				g.RecalculateCandidates()
				changed = true
			}
		}

		if found, ok := findHiddenSingle(g); ok {
			g.SetValue(found.pos, found.digit)
			g.RecalculateCandidates()
			changed = true
		}

		if !changed {
			break
		}
	}
	return contradictionFree(g)
}

type hiddenSingleResult struct {
	pos   grid.Position
	digit int
}

// findHiddenSingle scans every row, column and box for a digit that has
// exactly one legal cell remaining.
func findHiddenSingle(g *grid.Grid) (hiddenSingleResult, bool) {
	for sector := 0; sector < 3; sector++ {
		for line := 0; line < 9; line++ {
			for digit := 1; digit <= 9; digit++ {
				var match grid.Position
				count := 0
				for cell := 0; cell < 9; cell++ {
					pos := sectorCell(sector, line, cell)
					if !g.IsEmpty(pos) {
						continue
					}
					if g.GetCandidates(pos).Has(digit) {
						count++
						match = pos
					}
				}
				if count == 1 {
					return hiddenSingleResult{pos: match, digit: digit}, true
				}
			}
		}
	}
	return hiddenSingleResult{}, false
}

func sectorCell(sectorType, line, cell int) grid.Position {
	switch sectorType {
	case 0: // row
		return grid.Position{Row: line, Col: cell}
	case 1: // column
		return grid.Position{Row: cell, Col: line}
	default: // box
		boxRow, boxCol := (line/3)*3, (line%3)*3
		return grid.Position{Row: boxRow + cell/3, Col: boxCol + cell%3}
	}
}

// contradictionFree reports whether every sector still has room for every
// digit it is missing, and no empty cell has run out of candidates.
func contradictionFree(g *grid.Grid) bool {
	for _, pos := range g.EmptyPositions() {
		if g.GetCandidates(pos).IsEmpty() {
			return false
		}
	}
	for sector := 0; sector < 3; sector++ {
		for line := 0; line < 9; line++ {
			present := make(map[int]bool, 9)
			canHold := make(map[int]bool, 9)
			for cell := 0; cell < 9; cell++ {
				pos := sectorCell(sector, line, cell)
				if v := g.Value(pos); v != 0 {
					present[v] = true
					continue
				}
				for _, d := range g.GetCandidates(pos).Digits() {
					canHold[d] = true
				}
			}
			for digit := 1; digit <= 9; digit++ {
				if !present[digit] && !canHold[digit] {
					return false
				}
			}
		}
	}
	return true
}

// minimumRemainingValuesCell returns the empty cell with the fewest
// candidates. ok is false when an empty cell has zero candidates (the
// caller should already have caught this via propagateSingles, but the
// check is cheap insurance against calling this after a direct mutation).
func minimumRemainingValuesCell(g *grid.Grid) (grid.Position, bool) {
	best := grid.Position{}
	bestCount := 10
	found := false
	for _, pos := range g.EmptyPositions() {
		n := g.GetCandidates(pos).Count()
		if n == 0 {
			return grid.Position{}, false
		}
		if n < bestCount {
			bestCount = n
			best = pos
			found = true
		}
	}
	return best, found
}
