package puzzle

import "math/rand"

// Scramble produces a uniformly random solvable board: a Fisher–Yates
// permutation of the goal's nine values, with parity repaired by swapping
// the tiles labeled 1 and 2 when the permutation lands in the unsolvable
// class. Exactly one swap of two non-blank tiles flips inversion parity, so
// the result is always solvable. Producing the goal itself is a legitimate,
// already-solved outcome and is not rejected.
func Scramble(rng *rand.Rand) Board {
	b := Goal()
	rng.Shuffle(BoardLen, func(i, j int) {
		b[i], b[j] = b[j], b[i]
	})
	repairParity(&b)
	return b
}

// RandomSolvable scrambles with the process-wide seedless random source.
// Tests and reproducible harnesses should call Scramble with their own rng.
func RandomSolvable() Board {
	b := Goal()
	rand.Shuffle(BoardLen, func(i, j int) {
		b[i], b[j] = b[j], b[i]
	})
	repairParity(&b)
	return b
}

// Walk scrambles by applying steps random legal moves starting from the
// goal, which keeps the board solvable by construction. Unlike Scramble the
// result is biased toward boards near the goal for small step counts.
func Walk(rng *rand.Rand, steps int) Board {
	b := Goal()
	for i := 0; i < steps; i++ {
		nbs := b.Neighbors()
		b = nbs[rng.Intn(len(nbs))]
	}
	return b
}

func repairParity(b *Board) {
	if b.IsSolvable() {
		return
	}
	i, j := b.PositionOf(1), b.PositionOf(2)
	b[i], b[j] = b[j], b[i]
}
