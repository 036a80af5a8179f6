package movegen_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nimblechess/nimbus/pkg/board/position"
	"github.com/nimblechess/nimbus/pkg/movegen"
)

func collect(pos *position.Position, sq position.Square) []position.Move {
	var moves []position.Move
	movegen.GenerateFrom(pos, sq, func(m position.Move) bool {
		moves = append(moves, m)
		return true
	})
	return moves
}

func moveStrings(moves []position.Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.From.String() + "-" + m.To.String()
	}
	return out
}

// S1: the starting position has exactly 20 legal moves -- 4 knight moves and 16 pawn
// moves, each to an empty square.
func TestGenerate_StartingPosition(t *testing.T) {
	pos := position.NewPosition()

	var got []string
	movegen.Generate(pos, func(m position.Move) bool {
		if m.PFrom.Color == position.White {
			got = append(got, m.From.String()+"-"+m.To.String())
		}
		return true
	})

	want := []string{
		"B1-A3", "B1-C3", "G1-F3", "G1-H3",
		"A2-A3", "A2-A4", "B2-B3", "B2-B4", "C2-C3", "C2-C4", "D2-D3", "D2-D4",
		"E2-E3", "E2-E4", "F2-F3", "F2-F4", "G2-G3", "G2-G4", "H2-H3", "H2-H4",
	}
	assert.ElementsMatch(t, want, got)
}

// Generator soundness (invariant #4): no emitted move ever targets a square occupied by
// a piece of the same color as the mover.
func TestGenerate_NeverTargetsOwnPiece(t *testing.T) {
	pos := position.NewPosition()

	movegen.Generate(pos, func(m position.Move) bool {
		pto := m.PTo
		if !pto.IsEmpty() {
			assert.NotEqual(t, m.PFrom.Color, pto.Color, "move %v targets own piece", m)
		}
		return true
	})
}

func TestGenerateFrom_EmptySquarePanics(t *testing.T) {
	pos := position.NewPosition()
	assert.Panics(t, func() {
		movegen.GenerateFrom(pos, position.A3, func(position.Move) bool { return true })
	})
}

func TestGenerateFrom_KnightOrder(t *testing.T) {
	pos := position.NewPosition()
	for sq := position.ZeroSquare; sq < position.NumSquares; sq++ {
		pos.Set(sq, position.NoPiece)
	}
	pos.Set(position.D4, position.NewPiece(position.White, position.Knight))

	got := moveStrings(collect(pos, position.D4))
	want := []string{"D4-E6", "D4-C6", "D4-C2", "D4-E2", "D4-F3", "D4-F5", "D4-B5", "D4-B3"}
	assert.Equal(t, want, got)
}

func TestGenerateFrom_KingOrder(t *testing.T) {
	pos := position.NewPosition()
	for sq := position.ZeroSquare; sq < position.NumSquares; sq++ {
		pos.Set(sq, position.NoPiece)
	}
	pos.Set(position.D4, position.NewPiece(position.White, position.King))

	got := moveStrings(collect(pos, position.D4))
	want := []string{"D4-D5", "D4-E5", "D4-E4", "D4-E3", "D4-D3", "D4-C3", "D4-C4", "D4-C5"}
	assert.Equal(t, want, got)
}

func TestGenerateFrom_QueenBishopThenRook(t *testing.T) {
	pos := position.NewPosition()
	for sq := position.ZeroSquare; sq < position.NumSquares; sq++ {
		pos.Set(sq, position.NoPiece)
	}
	pos.Set(position.D4, position.NewPiece(position.White, position.Queen))

	got := collect(pos, position.D4)
	require.NotEmpty(t, got)
	// First batch of emitted moves must be diagonal (bishop rays) before any
	// orthogonal (rook ray) move appears.
	sawOrthogonal := false
	for _, m := range got {
		dx := m.To.X() - m.From.X()
		dy := m.To.Y() - m.From.Y()
		diagonal := dx != 0 && dy != 0
		if !diagonal {
			sawOrthogonal = true
			continue
		}
		assert.False(t, sawOrthogonal, "diagonal move %v emitted after an orthogonal one", m)
	}
}

// S3: a rook walked to E3 on an otherwise-starting-ish board sees exactly these targets.
func TestGenerateFrom_RookWalk(t *testing.T) {
	pos := position.NewPosition()
	for _, mv := range []string{"A2-A4", "A7-A5", "A1-A3", "A8-A6", "A3-E3", "A6-C6"} {
		m, err := position.ParseMove(mv)
		require.NoError(t, err)
		m.PFrom = pos.Get(m.From)
		m.PTo = pos.Get(m.To)
		pos.Apply(m)
	}

	got := moveStrings(collect(pos, position.E3))
	want := []string{
		"E3-F3", "E3-G3", "E3-H3",
		"E3-D3", "E3-C3", "E3-B3", "E3-A3",
		"E3-E4", "E3-E5", "E3-E6", "E3-E7",
	}
	assert.ElementsMatch(t, want, got)
}

func TestGenerateFrom_PawnDoublePushOnlyFromStartRank(t *testing.T) {
	pos := position.NewPosition()
	pos.Set(position.E2, position.NoPiece)
	pos.Set(position.E3, position.NewPiece(position.White, position.Pawn))

	got := moveStrings(collect(pos, position.E3))
	assert.Equal(t, []string{"E3-E4"}, got)
}

func TestGenerateFrom_PawnCaptureOrder(t *testing.T) {
	pos := position.NewPosition()
	for sq := position.ZeroSquare; sq < position.NumSquares; sq++ {
		pos.Set(sq, position.NoPiece)
	}
	pos.Set(position.D4, position.NewPiece(position.White, position.Pawn))
	pos.Set(position.C5, position.NewPiece(position.Black, position.Pawn))
	pos.Set(position.E5, position.NewPiece(position.Black, position.Pawn))

	got := moveStrings(collect(pos, position.D4))
	assert.Equal(t, []string{"D4-C5", "D4-E5", "D4-D5"}, got)
}
