// Package eval contains static position evaluation logic.
package eval

import (
	"context"

	"github.com/nimblechess/nimbus/pkg/board/position"
	"github.com/nimblechess/nimbus/pkg/movegen"
)

// WindowMax bounds the score range returned by search and evaluation: material never
// approaches it, so it is safe to use as the initial alpha-beta window and as the
// terminal-position sentinel.
const WindowMax = 1 << 30

// materialValue is the nominal value of a piece kind, used as the base material term and
// in the defensive and offensive bonus terms.
func materialValue(k position.Kind) int {
	switch k {
	case position.Pawn:
		return 1
	case position.Knight, position.Bishop:
		return 3
	case position.Rook:
		return 6
	case position.Queen:
		return 10
	case position.King:
		return 2_000_000
	default:
		return 0
	}
}

// Evaluate returns a signed score for pos, relative to the side to move: positive when
// the side to move stands better. It special-cases king-missing and kings-only endings,
// then sums a per-piece term over every occupied square, crediting every move and adding
// a bonus for moves that defend a mid-value piece or attack a more valuable one. The
// per-piece term is negated for the side not to move, matching the negamax convention
// used by the search.
func Evaluate(ctx context.Context, pos *position.Position) int {
	if !pos.HasKing(position.White) {
		if pos.Turn() == position.White {
			return -WindowMax
		}
		return WindowMax
	}
	if !pos.HasKing(position.Black) {
		if pos.Turn() == position.Black {
			return -WindowMax
		}
		return WindowMax
	}
	if pos.IsOnlyKings() {
		return 0
	}

	total := 0
	for sq := position.ZeroSquare; sq < position.NumSquares; sq++ {
		piece := pos.Get(sq)
		if piece.IsEmpty() {
			continue
		}

		term := pieceTerm(pos, sq, piece)
		if piece.Color != pos.Turn() {
			term = -term
		}
		total += term
	}
	return total
}

// pieceTerm computes the per-piece evaluation term for the piece on sq: base material
// plus a contribution from every pseudo-legal move available to it.
func pieceTerm(pos *position.Position, sq position.Square, piece position.Piece) int {
	ownValue := materialValue(piece.Kind)
	term := 3 * ownValue

	movegen.GenerateFrom(pos, sq, func(m position.Move) bool {
		if m.PTo.IsEmpty() {
			term++
			return true
		}
		if m.PTo.Color == piece.Color {
			// Defending one's own king contributes nothing -- it is never in danger of
			// being usefully "defended" in this model.
			if m.PTo.Kind == position.King {
				return true
			}
			term++
			term += max(0, 3-abs(materialValue(m.PTo.Kind)-4))
			return true
		}

		// An attacked king is valued at 2000 here, not the terminal-position sentinel
		// materialValue(King) -- this is the offensive swing bonus, not a mate score.
		targetValue := 2000
		if m.PTo.Kind != position.King {
			targetValue = materialValue(m.PTo.Kind)
		}
		term++
		term += max(0, targetValue-ownValue)
		return true
	})

	return term
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
