package fabric_test

import (
	"testing"

	"github.com/humansolve/sudoku/internal/fabric"
	"github.com/humansolve/sudoku/internal/grid"
)

const easyPuzzle = "530070000600195000098000060800060003400803001700020006060000280000419005000080079"

func TestNewMatchesGrid(t *testing.T) {
	g := grid.MustParse(easyPuzzle)
	f := fabric.New(g.Board())

	for i := 0; i < 81; i++ {
		pos := grid.PositionOf(i)
		if f.Value(i) != g.Value(pos) {
			t.Fatalf("cell %d: fabric value %d != grid value %d", i, f.Value(i), g.Value(pos))
		}
		if f.IsGiven(i) != g.IsGiven(pos) {
			t.Fatalf("cell %d: fabric given %v != grid given %v", i, f.IsGiven(i), g.IsGiven(pos))
		}
	}
}

func TestEmptyCount(t *testing.T) {
	g := grid.MustParse(easyPuzzle)
	f := fabric.New(g.Board())
	want := len(g.EmptyPositions())
	if f.EmptyCount() != want {
		t.Errorf("EmptyCount() = %d, want %d", f.EmptyCount(), want)
	}
}

func TestPeersAreTwentyAndExcludeSelf(t *testing.T) {
	g := grid.MustParse(easyPuzzle)
	f := fabric.New(g.Board())
	for i := 0; i < 81; i++ {
		peers := f.Peers(i)
		if len(peers) != 20 {
			t.Fatalf("cell %d has %d peers, want 20", i, len(peers))
		}
		for _, p := range peers {
			if p == i {
				t.Fatalf("cell %d lists itself as a peer", i)
			}
		}
	}
}

func TestDigitPositionsMatchesCellsForDigit(t *testing.T) {
	g := grid.MustParse(easyPuzzle)
	f := fabric.New(g.Board())
	for sector := 0; sector < fabric.SectorCount(); sector++ {
		for digit := 1; digit <= 9; digit++ {
			cells := f.CellsForDigit(sector, digit)
			if len(cells) != f.DigitCount(sector, digit) {
				t.Fatalf("sector %d digit %d: %d cells but count %d", sector, digit, len(cells), f.DigitCount(sector, digit))
			}
		}
	}
}

func TestGridFabricMatchesDirectConstruction(t *testing.T) {
	g := grid.MustParse(easyPuzzle)
	viaGrid := g.Fabric()
	direct := fabric.New(g.Board())
	for i := 0; i < 81; i++ {
		if viaGrid.Value(i) != direct.Value(i) {
			t.Fatalf("cell %d: Grid.Fabric() value %d != fabric.New value %d", i, viaGrid.Value(i), direct.Value(i))
		}
	}
}

func TestBoardInterfaceDelegation(t *testing.T) {
	g := grid.MustParse(easyPuzzle)
	f := fabric.New(g.Board())

	empty := -1
	for i := 0; i < 81; i++ {
		if f.GetCell(i) == 0 {
			empty = i
			break
		}
	}
	if empty == -1 {
		t.Fatal("expected at least one empty cell in the fixture")
	}

	cands := f.GetCandidatesAt(empty)
	if cands.IsEmpty() {
		t.Fatalf("expected some candidates at empty cell %d", empty)
	}

	clone := f.CloneBoard()
	if clone.GetCell(empty) != 0 {
		t.Fatal("clone should start with the same empty cell")
	}
}
