package backtrack

import (
	"testing"

	"github.com/humansolve/sudoku/internal/grid"
)

const easyPuzzle = "530070000600195000098000060800060003400803001700020006060000280000419005000080079"

func TestSolveFindsSolution(t *testing.T) {
	g := grid.MustParse(easyPuzzle)
	solved := Solve(g)
	if solved == nil {
		t.Fatal("expected a solution")
	}
	if !solved.IsSolved() {
		t.Error("returned grid is not a valid complete solution")
	}
}

func TestSolveDoesNotMutateInput(t *testing.T) {
	g := grid.MustParse(easyPuzzle)
	before := g.Serialize()
	Solve(g)
	if g.Serialize() != before {
		t.Error("Solve must not mutate its input grid")
	}
}

func TestHasUniqueSolutionTrueForWellFormedPuzzle(t *testing.T) {
	g := grid.MustParse(easyPuzzle)
	if !HasUniqueSolution(g) {
		t.Error("expected the classic easy puzzle to have a unique solution")
	}
}

func TestCountSolutionsRespectsLimit(t *testing.T) {
	g := grid.Empty() // wide open grid, far more than 2 solutions
	count := CountSolutions(g, 2)
	if count != 2 {
		t.Errorf("CountSolutions(empty, 2) = %d, want 2", count)
	}
}

func TestSolveUnsolvableReturnsNil(t *testing.T) {
	g := grid.MustParse(easyPuzzle)
	// Force a contradiction: two 5s in the same row.
	g.SetValue(grid.Position{Row: 0, Col: 1}, 5)
	g.RecalculateCandidates()
	if got := Solve(g); got != nil {
		t.Error("expected nil for a contradictory grid")
	}
}
