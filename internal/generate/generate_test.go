package generate

import (
	"testing"

	"github.com/humansolve/sudoku/internal/backtrack"
	"github.com/humansolve/sudoku/internal/grid"
	"github.com/humansolve/sudoku/internal/rate"
)

// alwaysSingles simulates a trivially easy puzzle regardless of content,
// keeping these tests independent of the technique catalog.
func alwaysSingles(_ *grid.Grid) (string, bool) {
	return "naked-single", false
}

func TestSymmetryPartnerRotational180(t *testing.T) {
	p := SymmetryRotational180.Partner(grid.Position{Row: 0, Col: 0})
	want := grid.Position{Row: 8, Col: 8}
	if p != want {
		t.Errorf("Rotational180 partner of (0,0) = %+v, want %+v", p, want)
	}
	center := grid.Position{Row: 4, Col: 4}
	if SymmetryRotational180.Partner(center) != center {
		t.Error("center cell should be its own partner under Rotational180")
	}
}

func TestSymmetryPartnerNone(t *testing.T) {
	p := grid.Position{Row: 2, Col: 3}
	if SymmetryNone.Partner(p) != p {
		t.Error("SymmetryNone should pair a position with itself")
	}
}

func TestSymmetryPartnerHorizontal(t *testing.T) {
	p := SymmetryHorizontal.Partner(grid.Position{Row: 1, Col: 5})
	want := grid.Position{Row: 7, Col: 5}
	if p != want {
		t.Errorf("Horizontal partner of (1,5) = %+v, want %+v", p, want)
	}
}

func TestNewConfigMatchesTierTable(t *testing.T) {
	cfg := NewConfig(rate.Extreme)
	if cfg.Symmetry != SymmetryNone {
		t.Errorf("Extreme symmetry = %v, want SymmetryNone", cfg.Symmetry)
	}
	if cfg.MinGivens != 17 || cfg.MaxGivens != 22 {
		t.Errorf("Extreme givens range = [%d,%d], want [17,22]", cfg.MinGivens, cfg.MaxGivens)
	}

	beginner := NewConfig(rate.Beginner)
	if beginner.Symmetry != SymmetryRotational180 {
		t.Errorf("Beginner symmetry = %v, want SymmetryRotational180", beginner.Symmetry)
	}
	if beginner.MinGivens != 45 || beginner.MaxGivens != 55 {
		t.Errorf("Beginner givens range = [%d,%d], want [45,55]", beginner.MinGivens, beginner.MaxGivens)
	}
}

func TestGenerateSameSeedIsDeterministic(t *testing.T) {
	cfg := NewConfig(rate.Beginner)
	cfg.HasSeed = true
	cfg.Seed = 42
	cfg.MaxAttempts = 2

	a := Generate(cfg, alwaysSingles)
	b := Generate(cfg, alwaysSingles)

	if a.Puzzle.Serialize() != b.Puzzle.Serialize() {
		t.Error("same seed should produce the same puzzle")
	}
}

func TestGenerateProducesUniquePuzzle(t *testing.T) {
	cfg := NewConfig(rate.Beginner)
	cfg.HasSeed = true
	cfg.Seed = 7
	cfg.MaxAttempts = 2

	result := Generate(cfg, alwaysSingles)
	if result.Puzzle == nil {
		t.Fatal("expected a puzzle")
	}
	if !result.Puzzle.IsValid() {
		t.Error("generated puzzle should have no duplicate conflicts")
	}
	if !backtrack.HasUniqueSolution(result.Puzzle) {
		t.Error("generated puzzle should have exactly one solution")
	}
}
