package engine

import (
	"testing"

	"github.com/humansolve/sudoku/internal/proof"
	"github.com/humansolve/sudoku/internal/rate"
	"github.com/humansolve/sudoku/internal/sudoku/human"
)

const easyPuzzle = "530070000600195000098000060800060003400803001700020006060000280000419005000080079"

func TestParseSerializeRoundTrip(t *testing.T) {
	g, err := Parse(easyPuzzle)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if Serialize(g) != easyPuzzle {
		t.Errorf("Serialize(Parse(x)) != x")
	}
}

func TestSolveEasyPuzzle(t *testing.T) {
	g, _ := Parse(easyPuzzle)
	solved, ok := Solve(g)
	if !ok || solved == nil {
		t.Fatal("expected a solution for the classic easy puzzle")
	}
	if !solved.IsSolved() {
		t.Error("returned grid should be a valid complete solution")
	}
}

func TestHasUniqueSolution(t *testing.T) {
	g, _ := Parse(easyPuzzle)
	if !HasUniqueSolution(g) {
		t.Error("expected the classic easy puzzle to have a unique solution")
	}
}

func TestCountSolutionsBoundedByLimit(t *testing.T) {
	g, _ := Parse(easyPuzzle)
	if got := CountSolutions(g, 2); got != 1 {
		t.Errorf("CountSolutions = %d, want 1", got)
	}
}

func TestHintReturnsNilWhenSolved(t *testing.T) {
	g, _ := Parse(easyPuzzle)
	solved, _ := Solve(g)
	if _, ok := Hint(solved); ok {
		t.Error("Hint should report ok=false for a solved grid")
	}
}

func TestHintReturnsAStepForAnUnsolvedPuzzle(t *testing.T) {
	g, _ := Parse(easyPuzzle)
	hint, ok := Hint(g)
	if !ok || hint == nil {
		t.Fatal("expected a hint for an unsolved puzzle")
	}
	if hint.Technique == "" {
		t.Error("expected a named technique")
	}
	if hint.Proof == nil {
		t.Error("expected a proof certificate")
	}
}

func TestHintFallsBackToBacktrackingWhenNoTechniqueApplies(t *testing.T) {
	g, _ := Parse(easyPuzzle)
	// A solver with every catalog technique disabled can never find a move,
	// forcing the search fallback regardless of how easy the puzzle is.
	solver := human.CreateSolverWithOnlyTechniques()
	hint, ok := hintUsing(solver, g)
	if !ok || hint == nil {
		t.Fatal("expected a backtracking hint when no technique applies")
	}
	if hint.Technique != "backtracking" {
		t.Errorf("Technique = %q, want %q", hint.Technique, "backtracking")
	}
	if hint.Proof == nil || hint.Proof.Kind != proof.KindBacktracking {
		t.Fatal("expected a backtracking proof certificate")
	}
	if hint.Proof.Backtracking == nil || hint.Proof.Backtracking.NodesExplored <= 0 {
		t.Error("expected a positive node count in the backtracking certificate")
	}
	if hint.Digit < 1 || hint.Digit > 9 {
		t.Errorf("Digit = %d, want 1-9", hint.Digit)
	}
}

func TestRateDifficultyAndNumericAreConsistent(t *testing.T) {
	g, _ := Parse(easyPuzzle)
	tier := RateDifficulty(g)
	numeric := RateNumeric(g)
	if numeric < 1.0 || numeric > 11.0 {
		t.Errorf("RateNumeric = %v, out of range", numeric)
	}
	// Both ratings come from the same solve trace.
	slug, backtracked := solveTrace(g)
	if want := rate.Difficulty(slug, g.GivenCount(), backtracked); tier != want {
		t.Errorf("RateDifficulty = %v, want %v for hardest technique %q", tier, want, slug)
	}
	if want := rate.Numeric(slug, backtracked); numeric != want {
		t.Errorf("RateNumeric = %v, want %v for hardest technique %q", numeric, want, slug)
	}
}
