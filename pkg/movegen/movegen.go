// Package movegen generates pseudo-legal chess moves, piece by piece, via a visitor
// callback. Split out from package board because it is the single largest component of
// the engine, following the pack's own convention of a dedicated move-generation package
// alongside the board representation.
package movegen

import (
	"errors"

	"github.com/nimblechess/nimbus/pkg/board/position"
)

// ErrInvalidGenerateTarget indicates a programming error: GenerateFrom was called on an
// empty square. Callers must check Position.Get(sq) first; the public, validating entry
// point is board.Board.MovesFrom.
var ErrInvalidGenerateTarget = errors.New("movegen: invalid generate target: empty square")

// Visitor is invoked once per candidate move. It returns true to request continuation,
// false to stop all further emission (used for alpha-beta cutoff).
type Visitor func(m position.Move) bool

// rookDirs and bishopDirs are (dx, dy) steps, ordered to match the original engine: the
// rook walks +x, -x, +y, -y; the bishop walks NE, NW, SE, SW.
var rookDirs = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
var bishopDirs = [4][2]int{{1, 1}, {-1, 1}, {1, -1}, {-1, -1}}

// knightOffsets and kingOffsets are ordered to match the original engine's emission order.
var knightOffsets = [8][2]int{{1, 2}, {-1, 2}, {-1, -2}, {1, -2}, {2, -1}, {2, 1}, {-2, 1}, {-2, -1}}
var kingOffsets = [8][2]int{{0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}, {-1, 0}, {-1, 1}}

// Generate emits every pseudo-legal move for every occupied square, for either color, in
// square-index order 0..63. The generator itself is not side-to-move aware -- callers
// that want only the side to move's moves filter on Move.PFrom.Color (see
// board.Board.Moves, which does exactly that as a safety net).
func Generate(pos *position.Position, visit Visitor) {
	for sq := position.ZeroSquare; sq < position.NumSquares; sq++ {
		if pos.Get(sq).IsEmpty() {
			continue
		}
		if !GenerateFrom(pos, sq, visit) {
			return
		}
	}
}

// GenerateFrom emits every pseudo-legal move for the piece on sq. It panics with
// ErrInvalidGenerateTarget if sq is empty.
func GenerateFrom(pos *position.Position, sq position.Square, visit Visitor) bool {
	piece := pos.Get(sq)
	if piece.IsEmpty() {
		panic(ErrInvalidGenerateTarget)
	}

	switch piece.Kind {
	case position.Pawn:
		return genPawn(pos, sq, piece, visit)
	case position.Rook:
		return genSliding(pos, sq, piece, rookDirs[:], visit)
	case position.Bishop:
		return genSliding(pos, sq, piece, bishopDirs[:], visit)
	case position.Queen:
		// Matches the original engine: bishop rays, then rook rays.
		if !genSliding(pos, sq, piece, bishopDirs[:], visit) {
			return false
		}
		return genSliding(pos, sq, piece, rookDirs[:], visit)
	case position.Knight:
		return genSteps(pos, sq, piece, knightOffsets[:], visit)
	case position.King:
		return genSteps(pos, sq, piece, kingOffsets[:], visit)
	default:
		return true
	}
}

// target classifies the square at (x,y) relative to the moving piece's color.
type target int

const (
	targetOffBoard target = iota
	targetEmpty
	targetCapture
	targetBlocked // occupied by a piece of the moving piece's color
)

func classify(pos *position.Position, x, y int, moving position.Piece) (position.Square, position.Piece, target) {
	if !position.IsInside(x, y) {
		return 0, position.NoPiece, targetOffBoard
	}
	to := position.NewSquare(x, y)
	pto := pos.Get(to)
	switch {
	case pto.IsEmpty():
		return to, pto, targetEmpty
	case pto.Color != moving.Color:
		return to, pto, targetCapture
	default:
		return to, pto, targetBlocked
	}
}

func genSliding(pos *position.Position, from position.Square, piece position.Piece, dirs []([2]int), visit Visitor) bool {
	for _, d := range dirs {
		x, y := from.X(), from.Y()
		for {
			x += d[0]
			y += d[1]

			to, pto, t := classify(pos, x, y, piece)
			switch t {
			case targetOffBoard, targetBlocked:
				// Ray stops; nothing emitted for this square.
			case targetEmpty:
				if !visit(position.Move{From: from, To: to, PFrom: piece, PTo: pto}) {
					return false
				}
				continue
			case targetCapture:
				if !visit(position.Move{From: from, To: to, PFrom: piece, PTo: pto}) {
					return false
				}
			}
			break
		}
	}
	return true
}

func genSteps(pos *position.Position, from position.Square, piece position.Piece, offsets []([2]int), visit Visitor) bool {
	for _, d := range offsets {
		x, y := from.X()+d[0], from.Y()+d[1]
		to, pto, t := classify(pos, x, y, piece)
		if t != targetEmpty && t != targetCapture {
			continue
		}
		if !visit(position.Move{From: from, To: to, PFrom: piece, PTo: pto}) {
			return false
		}
	}
	return true
}

func genPawn(pos *position.Position, from position.Square, piece position.Piece, visit Visitor) bool {
	dir := 1
	startRank := 1
	if piece.Color == position.Black {
		dir = -1
		startRank = 6
	}
	x, y := from.X(), from.Y()

	// Diagonal captures, left then right.
	for _, dx := range []int{-1, 1} {
		to, pto, t := classify(pos, x+dx, y+dir, piece)
		if t == targetCapture {
			if !visit(position.Move{From: from, To: to, PFrom: piece, PTo: pto}) {
				return false
			}
		}
	}

	// Single push.
	to, pto, t := classify(pos, x, y+dir, piece)
	if t != targetEmpty {
		return true
	}
	if !visit(position.Move{From: from, To: to, PFrom: piece, PTo: pto}) {
		return false
	}

	// Double push, only from the starting rank, and only if the path is clear.
	if y != startRank {
		return true
	}
	to, pto, t = classify(pos, x, y+2*dir, piece)
	if t != targetEmpty {
		return true
	}
	return visit(position.Move{From: from, To: to, PFrom: piece, PTo: pto})
}
