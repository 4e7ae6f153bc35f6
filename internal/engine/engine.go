// Package engine is the public library surface: parse/serialize a grid,
// solve or count solutions, produce the next human-style hint, rate
// difficulty, and generate new puzzles. It is the thin orchestration layer
// that wires the grid, fabric, technique catalog, rater, backtracking core
// and generator together; callers (the HTTP transport, CLI tools, or a
// future FFI wrapper) should depend on this package rather than reaching
// into the internal packages directly.
package engine

import (
	"fmt"

	"github.com/humansolve/sudoku/internal/backtrack"
	"github.com/humansolve/sudoku/internal/generate"
	"github.com/humansolve/sudoku/internal/grid"
	"github.com/humansolve/sudoku/internal/proof"
	"github.com/humansolve/sudoku/internal/rate"
	"github.com/humansolve/sudoku/internal/sudoku/human"
)

// Parse reads an 81-character grid string. See grid.Parse for the accepted
// alphabet and error cases.
func Parse(s string) (*grid.Grid, error) { return grid.Parse(s) }

// Serialize renders g back to its 81-character compact form.
func Serialize(g *grid.Grid) string { return g.Serialize() }

// Solve returns a solved copy of g, or ok=false if g has no solution.
func Solve(g *grid.Grid) (*grid.Grid, bool) {
	solved := backtrack.Solve(g)
	return solved, solved != nil
}

// CountSolutions counts solutions to g, stopping at limit.
func CountSolutions(g *grid.Grid, limit int) int { return backtrack.CountSolutions(g, limit) }

// HasUniqueSolution reports whether g has exactly one solution.
func HasUniqueSolution(g *grid.Grid) bool { return backtrack.HasUniqueSolution(g) }

// HintKind distinguishes a placement hint from an elimination hint.
type HintKind int

const (
	KindSetValue HintKind = iota
	KindEliminateCandidates
)

// Hint is a single human-style deduction, projected into position-space.
type Hint struct {
	Technique   string
	Kind        HintKind
	Position    grid.Position
	Digit       int
	Digits      []int
	Explanation string
	Positions   []grid.Position
	Proof       *proof.Certificate
}

// Hint returns the next applicable human-style deduction for g, or ok=false
// if g is already solved. It skips the catalog's internal candidate-fill
// bookkeeping steps, surfacing only steps a human solver would call a move.
func Hint(g *grid.Grid) (*Hint, bool) {
	return hintUsing(human.NewSolver(), g)
}

// hintUsing drives the hint loop with a caller-supplied solver, so tests can
// force the no-technique-applies path with a solver whose catalog has every
// technique disabled.
func hintUsing(solver *human.Solver, g *grid.Grid) (*Hint, bool) {
	if g.IsSolved() {
		return nil, false
	}
	board := g.Board().Clone()

	for {
		move := solver.FindNextMove(board)
		if move == nil {
			return backtrackingHint(g)
		}
		if move.Technique == "fill-candidate" {
			solver.ApplyMove(board, move)
			continue
		}

		positions := make([]grid.Position, 0, len(move.Targets))
		for _, t := range move.Targets {
			positions = append(positions, grid.Position{Row: t.Row, Col: t.Col})
		}

		h := &Hint{
			Technique:   move.Technique,
			Explanation: move.Explanation,
			Positions:   positions,
			Proof:       proof.FromMove(move.Technique, move),
		}
		if move.Action == "assign" {
			h.Kind = KindSetValue
			h.Digit = move.Digit
			if len(positions) > 0 {
				h.Position = positions[0]
			}
		} else {
			h.Kind = KindEliminateCandidates
			digits := make(map[int]struct{}, len(move.Eliminations))
			for _, e := range move.Eliminations {
				digits[e.Digit] = struct{}{}
			}
			for d := range digits {
				h.Digits = append(h.Digits, d)
			}
			if len(positions) > 0 {
				h.Position = positions[0]
			}
		}
		return h, true
	}
}

// backtrackingHint is the fallback once the technique catalog has nothing
// left to offer but the grid is still unsolved: it reports the placement a
// full search would make next, certified as search rather than as a named
// technique.
func backtrackingHint(g *grid.Grid) (*Hint, bool) {
	pos, digit, nodes, ok := backtrack.NextPlacement(g)
	if !ok {
		return nil, false
	}
	return &Hint{
		Technique:   "backtracking",
		Kind:        KindSetValue,
		Position:    pos,
		Digit:       digit,
		Positions:   []grid.Position{pos},
		Explanation: fmt.Sprintf("No cataloged technique applies; search places %d at R%dC%d", digit, pos.Row+1, pos.Col+1),
		Proof:       proof.Backtracking(nodes),
	}, true
}

// solveTrace runs the human technique catalog to completion (or stall) and
// reports the hardest technique slug used and whether the search fallback
// was needed.
func solveTrace(g *grid.Grid) (hardestSlug string, backtracked bool) {
	solver := human.NewSolver()
	board := g.Board().Clone()
	moves, status := solver.SolveWithSteps(board, 500)

	for _, m := range moves {
		if m.Technique == "fill-candidate" || m.Technique == "constraint-violation" {
			continue
		}
		if hardestSlug == "" || rate.HarderThan(m.Technique, hardestSlug) {
			hardestSlug = m.Technique
		}
	}

	if status != "completed" {
		backtracked = true
	}
	return hardestSlug, backtracked
}

// RateDifficulty returns g's tier on the eight-step scale.
func RateDifficulty(g *grid.Grid) rate.Tier {
	slug, backtracked := solveTrace(g)
	return rate.Difficulty(slug, g.GivenCount(), backtracked)
}

// RateNumeric returns g's numeric Sudoku-Explainer rating.
func RateNumeric(g *grid.Grid) float64 {
	slug, backtracked := solveTrace(g)
	return rate.Numeric(slug, backtracked)
}

// Generate builds a new puzzle per cfg, rating each candidate with the same
// technique catalog RateDifficulty and RateNumeric use.
func Generate(cfg generate.Config) generate.Result {
	return generate.Generate(cfg, solveTrace)
}
