package human

import (
	"strings"
	"testing"

	"github.com/humansolve/sudoku/pkg/constants"
)

// SimpleMediumTechniquePuzzles maps technique slugs to puzzle strings that REQUIRE that technique.
// Each puzzle is an 81-character string where '0' represents an empty cell.
// These puzzles are carefully selected so that the specific technique is needed to solve them.
//
// This file covers SIMPLE and MEDIUM tier techniques.
// HARD tier techniques are in technique_puzzles_hard_test.go
// EXTREME tier techniques are in technique_puzzles_extreme_test.go
//
// Sources for puzzles:
// - SudokuWiki.org technique examples
// - Hodoku technique demonstrations
// - Validated sudoku puzzle collections
var SimpleMediumTechniquePuzzles = map[string]struct {
	Puzzle      string
	Description string
	Tier        string
}{
	// ==========================================================================
	// SIMPLE TIER TECHNIQUES
	// ==========================================================================

	// Naked Single: A cell with only one possible candidate
	// Easy puzzle that solves primarily with naked singles
	"naked-single": {
		Puzzle:      "530070000600195000098000060800060003400803001700020006060000280000419005000080079",
		Description: "Easy puzzle requiring naked singles",
		Tier:        "simple",
	},

	// Hidden Single: A digit that can only go in one cell in a row/column/box
	// Gentle puzzle solvable with hidden singles
	"hidden-single": {
		Puzzle:      "000000000904607000076804100309701080008000300050308702007502610000403208000000000",
		Description: "Puzzle requiring hidden singles",
		Tier:        "simple",
	},

	// Pointing Pair: When candidates in a box are restricted to one row/column,
	// they can be eliminated from the rest of that row/column
	"pointing-pair": {
		Puzzle:      "017903600000080000900000507072010430000402000064070890203000005000030000005765140",
		Description: "Puzzle requiring pointing pair elimination",
		Tier:        "simple",
	},

	// Box-Line Reduction: When candidates in a row/column are restricted to one box,
	// they can be eliminated from the rest of that box
	"box-line-reduction": {
		Puzzle:      "016007803090800000870001260048000300650009082039000650060900020080002936924600510",
		Description: "Puzzle requiring box-line reduction",
		Tier:        "simple",
	},

	// Naked Pair: Two cells in a unit with exactly the same two candidates
	"naked-pair": {
		Puzzle:      "400000938032094100095300240370609004529001673604703090957008300003900400240030709",
		Description: "Puzzle requiring naked pair",
		Tier:        "simple",
	},

	// Hidden Pair: Two digits that can only appear in two cells in a unit
	"hidden-pair": {
		Puzzle:      "720096003000205000080004020000000060106503802090000000030800090000702000200430018",
		Description: "Puzzle requiring hidden pair",
		Tier:        "simple",
	},

	// ==========================================================================
	// MEDIUM TIER TECHNIQUES
	// ==========================================================================

	// Naked Triple: Three cells in a unit containing only three candidates (in any combination)
	"naked-triple": {
		Puzzle:      "300000000970010000600583000200000900500621003007000008000435002000090056000000001",
		Description: "Puzzle requiring naked triple",
		Tier:        "medium",
	},

	// Hidden Triple: Three digits that can only appear in three cells in a unit
	"hidden-triple": {
		Puzzle:      "000000000231400000065003100008924000100050006000136800002300500400002183000000054",
		Description: "Puzzle requiring hidden triple",
		Tier:        "medium",
	},

	// Naked Quad: Four cells in a unit containing only four candidates
	"naked-quad": {
		Puzzle:      "650087024000649050040025000570438061000501000310902085000890010000213000130750098",
		Description: "Puzzle requiring naked quad",
		Tier:        "medium",
	},

	// Hidden Quad: Four digits that can only appear in four cells in a unit
	"hidden-quad": {
		Puzzle:      "905400080040001050000090030010704020009000100070206090050020000090300060020009703",
		Description: "Puzzle requiring hidden quad",
		Tier:        "medium",
	},

	// X-Wing: A digit forming a rectangle pattern in exactly two rows/columns
	// eliminating candidates from those columns/rows
	"x-wing": {
		Puzzle:      "100000569492056108056109240009640801064010000218035604040500016905061402621000005",
		Description: "Puzzle requiring X-Wing technique",
		Tier:        "medium",
	},

	// XY-Wing: A pivot cell with two candidates seeing two pincer cells
	"xy-wing": {
		Puzzle:      "900240000050690231020050090090000000002935600000000030030060010169083020000021003",
		Description: "Puzzle requiring XY-Wing",
		Tier:        "medium",
	},

	// Simple Coloring: Using color chains of strong links to find eliminations
	"simple-coloring": {
		Puzzle:      "000704005020000070600020001000900600040302010006001000400010006010000020900605000",
		Description: "Puzzle requiring simple coloring",
		Tier:        "medium",
	},
}

// parsePuzzle converts an 81-character string to a slice of ints
func parsePuzzle(s string) []int {
	// Remove any non-digit characters and replace with 0
	cleaned := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return '0'
	}, s)

	// Ensure exactly 81 characters
	if len(cleaned) < 81 {
		cleaned += strings.Repeat("0", 81-len(cleaned))
	} else if len(cleaned) > 81 {
		cleaned = cleaned[:81]
	}

	result := make([]int, 81)
	for i, c := range cleaned {
		if c >= '1' && c <= '9' {
			result[i] = int(c - '0')
		}
	}
	return result
}

// TestSimpleMediumTechniquePuzzlesValid verifies puzzle format
func TestSimpleMediumTechniquePuzzlesValid(t *testing.T) {
	for technique, data := range SimpleMediumTechniquePuzzles {
		t.Run(technique, func(t *testing.T) {
			if len(data.Puzzle) != 81 {
				t.Errorf("puzzle for %s has length %d, expected 81", technique, len(data.Puzzle))
				return
			}

			for i, c := range data.Puzzle {
				if c < '0' || c > '9' {
					t.Errorf("puzzle for %s has invalid character '%c' at position %d", technique, c, i)
				}
			}

			// Count givens
			givens := 0
			for _, c := range data.Puzzle {
				if c != '0' {
					givens++
				}
			}
			if givens < 17 {
				t.Errorf("puzzle for %s has only %d givens (minimum is 17)", technique, givens)
			}
		})
	}
}

// TestSimpleMediumTechniquePuzzlesAreSolvable verifies that all test puzzles can be solved
func TestSimpleMediumTechniquePuzzlesAreSolvable(t *testing.T) {
	solver := NewSolver()

	for technique, data := range SimpleMediumTechniquePuzzles {
		t.Run(technique, func(t *testing.T) {
			puzzle := parsePuzzle(data.Puzzle)
			board := NewBoard(puzzle)

			moves, status := solver.SolveWithSteps(board, constants.MaxSolverSteps)

			if status != constants.StatusCompleted {
				t.Errorf("Puzzle for %s did not complete: status=%s, moves=%d",
					technique, status, len(moves))
			}
		})
	}
}

// TestSimpleMediumTechniquePuzzlesUseTechnique logs each completed puzzle whose solve did not use its specified technique
func TestSimpleMediumTechniquePuzzlesUseTechnique(t *testing.T) {
	solver := NewSolver()

	for technique, data := range SimpleMediumTechniquePuzzles {
		t.Run(technique, func(t *testing.T) {
			puzzle := parsePuzzle(data.Puzzle)
			board := NewBoard(puzzle)

			moves, status := solver.SolveWithSteps(board, constants.MaxSolverSteps)

			if status != constants.StatusCompleted {
				t.Skipf("Puzzle for %s did not complete - skipping technique check", technique)
				return
			}

			// Check if the expected technique was used
			techniqueUsed := false
			for _, move := range moves {
				if move.Technique == technique {
					techniqueUsed = true
					break
				}
			}

			if !techniqueUsed {
				// List techniques that were used
				usedTechniques := make(map[string]int)
				for _, move := range moves {
					usedTechniques[move.Technique]++
				}
				t.Logf("Puzzle for %s did not use the expected technique. Used: %v",
					technique, usedTechniques)
				// Note: This is logged but not failed, as puzzles may be solved
				// by simpler techniques depending on solver ordering
			}
		})
	}
}

// TestSimpleTierPuzzlesComplete verifies simple tier puzzles complete and logs any non-simple technique used
func TestSimpleTierPuzzlesComplete(t *testing.T) {
	simpleTechniques := map[string]bool{
		"naked-single":       true,
		"hidden-single":      true,
		"pointing-pair":      true,
		"box-line-reduction": true,
		"naked-pair":         true,
		"hidden-pair":        true,
		"fill-candidate":     true,
	}

	solver := NewSolver()

	for technique, data := range SimpleMediumTechniquePuzzles {
		if data.Tier != "simple" {
			continue
		}

		t.Run(technique, func(t *testing.T) {
			puzzle := parsePuzzle(data.Puzzle)
			board := NewBoard(puzzle)

			moves, status := solver.SolveWithSteps(board, constants.MaxSolverSteps)

			if status != constants.StatusCompleted {
				t.Errorf("Simple tier puzzle for %s did not complete: status=%s", technique, status)
				return
			}

			// Verify only simple techniques were used
			for _, move := range moves {
				if !simpleTechniques[move.Technique] {
					// This is a warning - puzzles may require higher techniques
					t.Logf("Warning: Simple tier puzzle %s used non-simple technique %s", technique, move.Technique)
				}
			}
		})
	}
}

// TestMediumTierPuzzles verifies medium puzzles are solvable and use appropriate techniques
func TestMediumTierPuzzles(t *testing.T) {
	solver := NewSolver()

	for technique, data := range SimpleMediumTechniquePuzzles {
		if data.Tier != "medium" {
			continue
		}

		t.Run(technique, func(t *testing.T) {
			puzzle := parsePuzzle(data.Puzzle)
			board := NewBoard(puzzle)

			moves, status := solver.SolveWithSteps(board, constants.MaxSolverSteps)

			if status != constants.StatusCompleted {
				t.Errorf("Medium tier puzzle for %s did not complete: status=%s", technique, status)
				return
			}

			// Check if the expected technique was used
			techniqueUsed := false
			for _, move := range moves {
				if move.Technique == technique {
					techniqueUsed = true
					break
				}
			}

			if !techniqueUsed {
				usedTechniques := make(map[string]int)
				for _, move := range moves {
					usedTechniques[move.Technique]++
				}
				t.Logf("Puzzle for %s did not use the expected technique. Used: %v",
					technique, usedTechniques)
			}
		})
	}
}

// TestSimpleTechniqueRegistry verifies all simple tier techniques exist in the registry
func TestSimpleTechniqueRegistry(t *testing.T) {
	registry := NewTechniqueRegistry()

	simpleTechniques := []string{
		"naked-single",
		"hidden-single",
		"pointing-pair",
		"box-line-reduction",
		"naked-pair",
		"hidden-pair",
		"naked-triple",
		"hidden-triple",
	}

	for _, slug := range simpleTechniques {
		t.Run(slug, func(t *testing.T) {
			tech := registry.GetBySlug(slug)
			if tech == nil {
				t.Errorf("technique %s not found in registry", slug)
				return
			}

			if tech.Tier != "simple" {
				t.Errorf("technique %s is tier %s, expected 'simple'", slug, tech.Tier)
			}

			if tech.Detector == nil {
				t.Errorf("technique %s has nil detector", slug)
			}
		})
	}
}

// TestMediumTechniqueRegistry verifies all medium tier techniques exist in the registry
func TestMediumTechniqueRegistry(t *testing.T) {
	registry := NewTechniqueRegistry()

	mediumTechniques := []string{
		"naked-quad",
		"hidden-quad",
		"x-wing",
		"xy-wing",
		"simple-coloring",
	}

	for _, slug := range mediumTechniques {
		t.Run(slug, func(t *testing.T) {
			tech := registry.GetBySlug(slug)
			if tech == nil {
				t.Errorf("technique %s not found in registry", slug)
				return
			}

			if tech.Tier != "medium" {
				t.Errorf("technique %s is tier %s, expected 'medium'", slug, tech.Tier)
			}

			if tech.Detector == nil {
				t.Errorf("technique %s has nil detector", slug)
			}
		})
	}
}

// BenchmarkSimpleMediumTechniquePuzzles benchmarks solving each technique puzzle
func BenchmarkSimpleMediumTechniquePuzzles(b *testing.B) {
	solver := NewSolver()

	for technique, data := range SimpleMediumTechniquePuzzles {
		puzzle := parsePuzzle(data.Puzzle)

		b.Run(technique, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				board := NewBoard(puzzle)
				solver.SolveWithSteps(board, constants.MaxSolverSteps)
			}
		})
	}
}
