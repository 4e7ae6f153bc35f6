package generate

import (
	"crypto/rand"
	"encoding/binary"

	"github.com/humansolve/sudoku/internal/grid"
)

// prng is a seeded linear congruential generator. The generator never
// claims statistical quality; it only needs to be deterministic given a
// seed and pass trivial shuffling-bias tests, which an LCG does.
type prng struct {
	state uint64
}

func newPRNG(seed uint64) *prng {
	return &prng{state: seed}
}

func (p *prng) next() uint64 {
	// Constants from Knuth's MMIX LCG.
	p.state = p.state*6364136223846793005 + 1442695040888963407
	return p.state
}

func (p *prng) intn(n int) int {
	return int(p.next() % uint64(n))
}

func (p *prng) shuffle(digits []int) {
	for i := len(digits) - 1; i > 0; i-- {
		j := p.intn(i + 1)
		digits[i], digits[j] = digits[j], digits[i]
	}
}

func (p *prng) shufflePositions(positions []grid.Position) {
	for i := len(positions) - 1; i > 0; i-- {
		j := p.intn(i + 1)
		positions[i], positions[j] = positions[j], positions[i]
	}
}

// osRandomSeed draws a seed from the OS randomness source, for callers that
// did not request a reproducible seed.
func osRandomSeed() uint64 {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0x9e3779b97f4a7c15 // fallback constant if the OS source is unavailable
	}
	return binary.LittleEndian.Uint64(buf[:])
}
