// Package search implements iterative-deepening negamax with alpha-beta pruning over a
// transposition table rebuilt fresh for every iteration.
package search

import (
	"context"
	"errors"
	"sort"

	"github.com/seekerror/logw"

	"github.com/nimblechess/nimbus/pkg/board/position"
	"github.com/nimblechess/nimbus/pkg/eval"
	"github.com/nimblechess/nimbus/pkg/movegen"
)

// ErrNoMovesPossible is returned by Think when the side to move has no candidate root
// moves. The board façade maps this to board.ErrNoMovesPossible at its boundary.
var ErrNoMovesPossible = errors.New("search: no moves possible")

// OnProgress is called once per completed depth, in strictly increasing order from 0 to
// maxDepth, with the best move found at that depth and its score.
type OnProgress func(m position.Move, depth, score int)

// rootMoves enumerates every candidate move for the side to move, skipping any that
// target a same-color square -- a defensive filter on top of the generator's own
// soundness guarantee.
func rootMoves(pos *position.Position) []position.MoveScore {
	var moves []position.MoveScore
	movegen.Generate(pos, func(m position.Move) bool {
		if m.PFrom.Color != pos.Turn() {
			return true
		}
		if !m.PTo.IsEmpty() && m.PTo.Color == m.PFrom.Color {
			return true
		}
		moves = append(moves, position.MoveScore{Move: m})
		return true
	})
	return moves
}

// Think runs iterative deepening from depth 0 through maxDepth, reporting the best move
// found at each depth via onProgress. It returns the best move, its depth, and its
// score after the final iteration.
func Think(ctx context.Context, pos *position.Position, maxDepth int, onProgress OnProgress) (position.Move, int, int, error) {
	moves := rootMoves(pos)
	if len(moves) == 0 {
		return position.Move{}, 0, 0, ErrNoMovesPossible
	}

	var best position.Move
	var bestScore int

	for depth := 0; depth <= maxDepth; depth++ {
		a, b := -eval.WindowMax, eval.WindowMax
		tt := newTable()

		for i := range moves {
			child := pos.Clone()
			child.Apply(moves[i].Move)

			aBefore := a
			score := -negamax(ctx, tt, child, depth, -b, -a)
			if score > a {
				a = score
			}

			penalty := 0
			if score == aBefore {
				penalty = 1
			}
			moves[i].Score = 2*score - penalty
		}

		sort.SliceStable(moves, func(i, j int) bool {
			return moves[i].Score > moves[j].Score
		})

		best = moves[0].Move
		bestScore = moves[0].Score
		logw.Debugf(ctx, "depth %v: best %v (score %v)", depth, best, bestScore)
		onProgress(best, depth, bestScore)
	}

	return best, maxDepth, bestScore, nil
}

// negamax searches pos to the given depth, returning a score relative to the side to
// move, within window [a, b]. It consults and updates tt, a table local to the current
// iterative-deepening iteration.
func negamax(ctx context.Context, tt *table, pos *position.Position, depth, a, b int) int {
	if depth <= 0 || isTerminal(pos) {
		return eval.Evaluate(ctx, pos)
	}

	movegen.Generate(pos, func(m position.Move) bool {
		if m.PFrom.Color != pos.Turn() {
			return true
		}
		if !m.PTo.IsEmpty() && m.PTo.Color == m.PFrom.Color {
			return true
		}

		child := pos.Clone()
		child.Apply(m)

		e, ok := tt.lookup(child)
		var score int
		switch {
		case ok && e.st == finding:
			return true
		case ok && e.st == found:
			score = e.score
		default:
			tt.markFinding(child)
			aBefore := a
			score = -negamax(ctx, tt, child, depth-1, -b, -a)
			tt.store(child, score, aBefore)
		}

		if score > a {
			a = score
		}
		return a < b
	})

	return a
}

func isTerminal(pos *position.Position) bool {
	return !pos.HasKing(position.White) || !pos.HasKing(position.Black) || pos.IsOnlyKings()
}
