// Package board ties the position model, move generator, evaluator and search together
// behind a single façade type, Board, that maintains an undo history.
//
// The core position types (Square, Piece, Move, Position, ...) live in the sibling
// package board/position rather than here: the move generator, evaluator and search all
// need those types, and Go does not allow a package cycle between them and a façade that
// calls into all three, so the façade is kept one layer up. The type aliases below let
// callers write board.Square, board.Move, and so on, exactly as if everything lived in
// one package.
package board

import (
	"context"
	"errors"

	"github.com/nimblechess/nimbus/pkg/board/fen"
	"github.com/nimblechess/nimbus/pkg/board/position"
	"github.com/nimblechess/nimbus/pkg/eval"
	"github.com/nimblechess/nimbus/pkg/movegen"
	"github.com/nimblechess/nimbus/pkg/search"
)

type (
	Square      = position.Square
	Color       = position.Color
	Kind        = position.Kind
	Piece       = position.Piece
	Move        = position.Move
	MoveScore   = position.MoveScore
	Position    = position.Position
	ZobristHash = position.ZobristHash
)

const (
	White = position.White
	Black = position.Black

	NoKind = position.NoKind
	Pawn   = position.Pawn
	Rook   = position.Rook
	Knight = position.Knight
	Bishop = position.Bishop
	Queen  = position.Queen
	King   = position.King

	ZeroSquare = position.ZeroSquare
	NumSquares = position.NumSquares
)

// Named squares, re-exported from package position for callers that only ever deal with
// the façade.
const (
	A1, B1, C1, D1, E1, F1, G1, H1 = position.A1, position.B1, position.C1, position.D1, position.E1, position.F1, position.G1, position.H1
	A2, B2, C2, D2, E2, F2, G2, H2 = position.A2, position.B2, position.C2, position.D2, position.E2, position.F2, position.G2, position.H2
	A3, B3, C3, D3, E3, F3, G3, H3 = position.A3, position.B3, position.C3, position.D3, position.E3, position.F3, position.G3, position.H3
	A4, B4, C4, D4, E4, F4, G4, H4 = position.A4, position.B4, position.C4, position.D4, position.E4, position.F4, position.G4, position.H4
	A5, B5, C5, D5, E5, F5, G5, H5 = position.A5, position.B5, position.C5, position.D5, position.E5, position.F5, position.G5, position.H5
	A6, B6, C6, D6, E6, F6, G6, H6 = position.A6, position.B6, position.C6, position.D6, position.E6, position.F6, position.G6, position.H6
	A7, B7, C7, D7, E7, F7, G7, H7 = position.A7, position.B7, position.C7, position.D7, position.E7, position.F7, position.G7, position.H7
	A8, B8, C8, D8, E8, F8, G8, H8 = position.A8, position.B8, position.C8, position.D8, position.E8, position.F8, position.G8, position.H8
)

var NoPiece = position.NoPiece

var (
	NewSquare      = position.NewSquare
	ParseSquare    = position.ParseSquare
	ParseSquareStr = position.ParseSquareStr
	ParseMove      = position.ParseMove
	ParsePiece     = position.ParsePiece
	IsInside       = position.IsInside
)

// OnProgress reports one completed iterative-deepening depth from Think.
type OnProgress = search.OnProgress

// Board is a position history stack: the façade every other package's caller (the REPL,
// tests) talks to. Mutating operations snapshot the current top before changing it, so
// Undo is a pop rather than an inverse-move computation.
type Board struct {
	history []*position.Position
}

// NewBoard returns a Board at the starting position.
func NewBoard() *Board {
	b := &Board{}
	b.Reset()
	return b
}

// Reset clears history and installs a fresh starting position.
func (b *Board) Reset() {
	b.history = []*position.Position{position.NewPosition()}
}

// top returns the current position.
func (b *Board) top() *position.Position {
	return b.history[len(b.history)-1]
}

// Position returns the current position.
func (b *Board) Position() *position.Position {
	return b.top()
}

// Turn returns the side to move in the current position.
func (b *Board) Turn() position.Color {
	return b.top().Turn()
}

// Hash returns the current position's Zobrist hash.
func (b *Board) Hash() position.ZobristHash {
	return b.top().Hash()
}

// Moves returns every pseudo-legal move available to the side to move. Moves onto a
// same-color square are filtered out as a safety net after generation.
func (b *Board) Moves() []position.Move {
	pos := b.top()

	var moves []position.Move
	movegen.Generate(pos, func(m position.Move) bool {
		if m.PFrom.Color == pos.Turn() && (m.PTo.IsEmpty() || m.PTo.Color != m.PFrom.Color) {
			moves = append(moves, m)
		}
		return true
	})
	return moves
}

// MovesFrom returns every pseudo-legal move available to the piece on sq, which must be
// inside the board, non-empty, and belong to the side to move. Moves onto a same-color
// square are filtered out, as in Moves.
func (b *Board) MovesFrom(sq position.Square) ([]position.Move, error) {
	pos := b.top()

	if int(sq) >= int(position.NumSquares) {
		return nil, ErrInvalidPosition
	}
	piece := pos.Get(sq)
	if piece.IsEmpty() {
		return nil, ErrNoPieceHere
	}
	if piece.Color != pos.Turn() {
		return nil, ErrWrongPlayersTurn
	}

	var moves []position.Move
	movegen.GenerateFrom(pos, sq, func(m position.Move) bool {
		if m.PTo.IsEmpty() || m.PTo.Color != m.PFrom.Color {
			moves = append(moves, m)
		}
		return true
	})
	return moves, nil
}

// Move validates and applies a move: move.To must appear among MovesFrom(move.From). On
// success, a copy of the current top is pushed and the move applied to the new top.
func (b *Board) Move(m position.Move) error {
	candidates, err := b.MovesFrom(m.From)
	if err != nil {
		return ErrInvalidMove
	}

	var applied position.Move
	ok := false
	for _, c := range candidates {
		if c.To == m.To {
			applied = c
			ok = true
			break
		}
	}
	if !ok {
		return ErrInvalidMove
	}

	next := b.top().Clone()
	next.Apply(applied)
	b.history = append(b.history, next)
	return nil
}

// MoveText parses s as a move and applies it via Move.
func (b *Board) MoveText(s string) error {
	m, err := position.ParseMove(s)
	if err != nil {
		return ErrInvalidMove
	}
	return b.Move(m)
}

// Undo pops the current position, restoring the prior one. It is an error to undo past
// the first position in the history.
func (b *Board) Undo() error {
	if len(b.history) <= 1 {
		return ErrNoUndoAvailable
	}
	b.history = b.history[:len(b.history)-1]
	return nil
}

// Evaluate returns the static evaluation of the current position.
func (b *Board) Evaluate(ctx context.Context) int {
	return eval.Evaluate(ctx, b.top())
}

// Think runs iterative-deepening search from depth 0 through maxDepth on the current
// position, reporting progress synchronously via onProgress.
func (b *Board) Think(ctx context.Context, maxDepth int, onProgress OnProgress) (position.Move, int, int, error) {
	best, depth, score, err := search.Think(ctx, b.top(), maxDepth, onProgress)
	if errors.Is(err, search.ErrNoMovesPossible) {
		return best, depth, score, ErrNoMovesPossible
	}
	return best, depth, score, err
}

// FEN encodes the current position in this engine's two-field FEN subset.
func (b *Board) FEN() string {
	return fen.Encode(b.top(), b.top().Turn())
}

// LoadFEN replaces the current position with the one decoded from s, preserving undo
// history below it (LoadFEN counts as a single mutation, like Move).
func (b *Board) LoadFEN(s string) error {
	pos, _, err := fen.Decode(s)
	if err != nil {
		return err
	}
	b.history = append(b.history, pos)
	return nil
}

func (b *Board) String() string {
	return b.top().String()
}
