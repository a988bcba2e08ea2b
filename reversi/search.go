package reversi

import (
	"math/rand"

	"caia-webclient/caia"
)

const (
	minValue = -9999
	maxValue = 9999
)

// Evaluate scores the position for the side to move: one point per stone
// and two per square where a side has a flipping move.
func (b *Board) Evaluate() int {
	p, q := b.Next, b.Next.Other()
	score := 0
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			switch b.Cells[r][c] {
			case Empty:
				if !b.hasOccupiedNeighbor(r, c) {
					continue
				}
				if b.hasFlips(p, r, c) {
					score += 2
				}
				if b.hasFlips(q, r, c) {
					score -= 2
				}
			case p:
				score++
			default:
				score--
			}
		}
	}
	return score
}

// Search returns the negamax value of the position at the given depth.
func (b Board) Search(depth int) int {
	if depth <= 0 {
		return b.Evaluate()
	}
	moves := b.ListMoves()
	if len(moves) == 0 {
		return b.Evaluate()
	}
	best := minValue - 1
	for _, m := range moves {
		child := b
		child.apply(m)
		if v := -child.Search(depth - 1); v > best {
			best = v
		}
	}
	return best
}

// SelectMove picks the best move searching depth plies below each
// candidate. Candidates are shuffled first so equal moves vary between
// games. ok is false when there is no move.
func (b Board) SelectMove(depth int, rng *rand.Rand) (best caia.Move, value int, ok bool) {
	moves := b.ListMoves()
	rng.Shuffle(len(moves), func(i, j int) { moves[i], moves[j] = moves[j], moves[i] })
	value = minValue - 1
	for _, m := range moves {
		child := b
		child.apply(m)
		if v := -child.Search(depth); v > value {
			best, value = m, v
		}
	}
	return best, value, value >= minValue && value <= maxValue
}
