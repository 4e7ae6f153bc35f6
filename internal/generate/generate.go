// Package generate builds new puzzles at a requested difficulty tier and
// clue symmetry. It follows the same seed-then-carve shape as the
// project's original grid generator (diagonal boxes seeded independently,
// then clues removed while uniqueness holds), extended with symmetry-aware
// removal and a difficulty-targeting outer loop.
package generate

import (
	"github.com/humansolve/sudoku/internal/backtrack"
	"github.com/humansolve/sudoku/internal/grid"
	"github.com/humansolve/sudoku/internal/rate"
)

// Symmetry names the clue-placement symmetry the generator preserves while
// removing cells.
type Symmetry int

const (
	SymmetryNone Symmetry = iota
	SymmetryRotational180
	SymmetryRotational90
	SymmetryHorizontal
	SymmetryVertical
	SymmetryDiagonal
)

// Partner returns the position that must be cleared alongside pos to
// preserve the symmetry, or pos itself under SymmetryNone (no pairing).
func (s Symmetry) Partner(pos grid.Position) grid.Position {
	const last = 8 // GridSize-1
	switch s {
	case SymmetryRotational180:
		return grid.Position{Row: last - pos.Row, Col: last - pos.Col}
	case SymmetryRotational90:
		return grid.Position{Row: pos.Col, Col: last - pos.Row}
	case SymmetryHorizontal:
		return grid.Position{Row: last - pos.Row, Col: pos.Col}
	case SymmetryVertical:
		return grid.Position{Row: pos.Row, Col: last - pos.Col}
	case SymmetryDiagonal:
		return grid.Position{Row: pos.Col, Col: pos.Row}
	default:
		return pos
	}
}

// Config configures one generation request.
type Config struct {
	Tier        rate.Tier
	Symmetry    Symmetry
	MaxAttempts int
	MinGivens   int
	MaxGivens   int
	Seed        int64
	HasSeed     bool
}

// tierDefault is the recognised configuration for a tier when the caller
// does not override it.
type tierDefault struct {
	symmetry    Symmetry
	maxAttempts int
	minGivens   int
	maxGivens   int
}

var defaultsByTier = map[rate.Tier]tierDefault{
	rate.Beginner:     {SymmetryRotational180, 30, 45, 55},
	rate.Easy:         {SymmetryRotational180, 50, 36, 45},
	rate.Medium:       {SymmetryRotational180, 100, 32, 38},
	rate.Intermediate: {SymmetryRotational180, 150, 28, 34},
	rate.Hard:         {SymmetryRotational180, 200, 24, 30},
	rate.Expert:       {SymmetryRotational180, 500, 22, 26},
	rate.Master:       {SymmetryRotational180, 1000, 20, 24},
	rate.Extreme:      {SymmetryNone, 2000, 17, 22},
}

// NewConfig builds the recognised configuration for tier, which the caller
// may still override field by field before calling Generate.
func NewConfig(tier rate.Tier) Config {
	d := defaultsByTier[tier]
	return Config{
		Tier:        tier,
		Symmetry:    d.symmetry,
		MaxAttempts: d.maxAttempts,
		MinGivens:   d.minGivens,
		MaxGivens:   d.maxGivens,
	}
}

// Result is one generated puzzle and the rating the generator measured.
type Result struct {
	Puzzle       *grid.Grid
	Tier         rate.Tier
	Numeric      float64
	GivenCount   int
	Attempts     int
	BudgetSpent  bool // true when every attempt was exhausted and the best-effort puzzle is returned unfiltered
}

// Rater abstracts the call back into the technique-based difficulty rater
// so this package does not import the orchestrator and create a cycle. It
// returns the hardest technique slug used and whether the solve had to fall
// back to search; Generate passes both, with the candidate's own given
// count, to rate.Difficulty.
type Rater func(g *grid.Grid) (hardestSlug string, backtracked bool)

// Generate builds a puzzle matching cfg, using rater to grade each
// candidate. With a seed set, the same seed always produces the same
// puzzle.
func Generate(cfg Config, rater Rater) Result {
	rng := newPRNG(cfg.seedOrOSRandom())

	var best Result
	for attempt := 1; attempt <= cfg.MaxAttempts; attempt++ {
		puzzle := carve(rng, cfg.Symmetry, cfg.MinGivens)

		slug, backtracked := rater(puzzle)
		tier := rate.Difficulty(slug, puzzle.GivenCount(), backtracked)
		numeric := rate.Numeric(slug, backtracked)

		result := Result{
			Puzzle:     puzzle,
			Tier:       tier,
			Numeric:    numeric,
			GivenCount: puzzle.GivenCount(),
			Attempts:   attempt,
		}
		best = result

		if tierAcceptable(tier, cfg.Tier) && result.GivenCount >= cfg.MinGivens && result.GivenCount <= cfg.MaxGivens {
			return result
		}
	}
	best.BudgetSpent = true
	return best
}

// tierAcceptable implements the soft-floor rule: the measured tier must
// equal the target, or sit exactly one tier below it for tiers that allow a
// soft floor. The ceiling is never relaxed.
func tierAcceptable(measured, target rate.Tier) bool {
	if measured == target {
		return true
	}
	return measured == target-1 && target > rate.Beginner
}

func (c Config) seedOrOSRandom() uint64 {
	if c.HasSeed {
		return uint64(c.Seed)
	}
	return osRandomSeed()
}

// carve seeds a filled grid via the diagonal-box technique, then removes
// clues in symmetric pairs down to minGivens, rejecting any removal that
// breaks uniqueness.
func carve(rng *prng, sym Symmetry, minGivens int) *grid.Grid {
	full := seedFilledGrid(rng)
	puzzle := full.DeepClone()
	markAllGiven(puzzle)

	positions := shuffledPositions(rng)
	for _, pos := range positions {
		if puzzle.GivenCount() <= minGivens {
			break
		}
		if !puzzle.IsGiven(pos) {
			continue
		}
		partner := sym.Partner(pos)

		saved := puzzle.Value(pos)
		savedPartner := puzzle.Value(partner)
		puzzle.ClearValue(pos)
		if partner != pos {
			puzzle.ClearValue(partner)
		}
		puzzle.RecalculateCandidates()

		if backtrack.HasUniqueSolution(puzzle) {
			continue
		}

		puzzle.SetGiven(pos, saved)
		if partner != pos {
			puzzle.SetGiven(partner, savedPartner)
		}
		puzzle.RecalculateCandidates()
	}

	return puzzle
}

func markAllGiven(g *grid.Grid) {
	for i := 0; i < 81; i++ {
		pos := grid.PositionOf(i)
		if v := g.Value(pos); v != 0 {
			g.SetGiven(pos, v)
		}
	}
}

// seedFilledGrid fills the three diagonal boxes (0-0, 3-3, 6-6) with
// independent shuffles of 1..9, then completes the grid via the
// backtracking core. The diagonal boxes share no row, column or box with
// each other, so any shuffle of each is consistent on its own; the
// remaining cells are then fully constrained by backtracking.
func seedFilledGrid(rng *prng) *grid.Grid {
	for {
		g := grid.Empty()
		for _, boxStart := range []int{0, 3, 6} {
			digits := []int{1, 2, 3, 4, 5, 6, 7, 8, 9}
			rng.shuffle(digits)
			k := 0
			for r := boxStart; r < boxStart+3; r++ {
				for c := boxStart; c < boxStart+3; c++ {
					g.SetValue(grid.Position{Row: r, Col: c}, digits[k])
					k++
				}
			}
		}
		g.RecalculateCandidates()
		if solved := backtrack.Solve(g); solved != nil {
			return solved
		}
	}
}

func shuffledPositions(rng *prng) []grid.Position {
	positions := make([]grid.Position, 81)
	for i := range positions {
		positions[i] = grid.PositionOf(i)
	}
	rng.shufflePositions(positions)
	return positions
}
