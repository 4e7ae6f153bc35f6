package techniques

import (
	"fmt"

	"github.com/humansolve/sudoku/internal/core"
)

// ============================================================================
// Avoidable Rectangle Detection
// ============================================================================
//
// An Avoidable Rectangle is the placed-digit mirror of a Unique Rectangle:
// instead of arguing from candidates that a deadly pattern must not arise,
// it argues from digits already ON the board that completing the one
// remaining corner a certain way WOULD recreate one. Because a swap of two
// solved, non-given corners would leave every row, column and box
// unaffected, such a swap is only ruled out by the puzzle's unique-solution
// guarantee, which is why a clue corner can never take part: a clue is fixed
// by the puzzle's statement, not by a solving deduction, so no uniqueness
// argument can rest on one.

// findAvoidableRectangleCorners walks every rectangle of 4 cells spanning
// exactly 2 boxes (the same geometry findURRectangles uses) and reports the
// ones with exactly one unsolved corner.
func findAvoidableRectangleCorners(b BoardInterface) [][4]int {
	var rects [][4]int
	for r1 := 0; r1 < 9; r1++ {
		for r3 := r1 + 1; r3 < 9; r3++ {
			for c1 := 0; c1 < 9; c1++ {
				for c3 := c1 + 1; c3 < 9; c3++ {
					tl, tr := r1*9+c1, r1*9+c3
					bl, br := r3*9+c1, r3*9+c3

					box0 := (r1/3)*3 + c1/3
					box1 := (r1/3)*3 + c3/3
					box2 := (r3/3)*3 + c1/3
					box3 := (r3/3)*3 + c3/3
					boxes := map[int]bool{box0: true, box1: true, box2: true, box3: true}
					if len(boxes) != 2 {
						continue
					}

					emptyCount := 0
					for _, idx := range [4]int{tl, tr, bl, br} {
						if b.GetCell(idx) == 0 {
							emptyCount++
						}
					}
					if emptyCount != 1 {
						continue
					}

					rects = append(rects, [4]int{tl, tr, bl, br})
				}
			}
		}
	}
	return rects
}

// DetectAvoidableRectangle finds Avoidable Rectangle Type 1 patterns: a
// rectangle across exactly 2 boxes with one unsolved corner U, where the two
// corners adjacent to U (sharing its row and its column) are solved,
// non-given and hold the same digit B, and U's diagonal partner is solved,
// non-given and holds a different digit A. Placing A at U would let the two
// B corners and the two A corners swap without disturbing any row, column or
// box, a deadly pattern only the clue-given corners of a UR cannot form.
// Because the puzzle has a unique solution, that swap cannot be valid, so A
// is eliminated from U.
func DetectAvoidableRectangle(b BoardInterface) *core.Move {
	for _, corners := range findAvoidableRectangleCorners(b) {
		tl, tr, bl, br := corners[0], corners[1], corners[2], corners[3]

		var u, diag, adj0, adj1 int
		switch {
		case b.GetCell(tl) == 0:
			u, diag, adj0, adj1 = tl, br, tr, bl
		case b.GetCell(tr) == 0:
			u, diag, adj0, adj1 = tr, bl, tl, br
		case b.GetCell(bl) == 0:
			u, diag, adj0, adj1 = bl, tr, tl, br
		default:
			u, diag, adj0, adj1 = br, tl, tr, bl
		}

		if b.IsGiven(diag) || b.IsGiven(adj0) || b.IsGiven(adj1) {
			continue
		}

		digitB0, digitB1 := b.GetCell(adj0), b.GetCell(adj1)
		if digitB0 == 0 || digitB1 == 0 || digitB0 != digitB1 {
			continue
		}
		digitB := digitB0
		digitA := b.GetCell(diag)
		if digitA == 0 || digitA == digitB {
			continue
		}
		if !b.GetCandidatesAt(u).Has(digitA) {
			continue
		}

		row, col := u/9, u%9
		return &core.Move{
			Action:       "eliminate",
			Digit:        digitA,
			Targets:      CellRefsFromIndices(u, diag, adj0, adj1),
			Eliminations: []core.Candidate{{Row: row, Col: col, Digit: digitA}},
			Explanation: fmt.Sprintf("Avoidable Rectangle: placing %d at R%dC%d would let it swap with R%dC%d's %d against the %d/%d pair: eliminate %d.",
				digitA, row+1, col+1, diag/9+1, diag%9+1, digitA, digitA, digitB, digitA),
			Highlights: core.Highlights{
				Primary:   CellRefsFromIndices(u),
				Secondary: CellRefsFromIndices(diag, adj0, adj1),
			},
		}
	}
	return nil
}
