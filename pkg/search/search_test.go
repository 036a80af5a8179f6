package search_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nimblechess/nimbus/pkg/board/fen"
	"github.com/nimblechess/nimbus/pkg/board/position"
	"github.com/nimblechess/nimbus/pkg/search"
)

func TestThink_ReportsEveryDepthInOrder(t *testing.T) {
	pos := position.NewPosition()

	var depths []int
	_, _, _, err := search.Think(context.Background(), pos, 2, func(m position.Move, depth, score int) {
		depths = append(depths, depth)
	})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, depths)
}

func TestThink_NoMovesPossible(t *testing.T) {
	pos, _, err := fen.Decode("8/8/8/8/8/8/8/8 w")
	require.NoError(t, err)

	_, _, _, err = search.Think(context.Background(), pos, 1, func(position.Move, int, int) {})
	assert.ErrorIs(t, err, search.ErrNoMovesPossible)
}

// A hanging queen one diagonal capture away should be found immediately, even at depth
// 0, since root-move evaluation already credits the material swing.
func TestThink_FindsFreeCaptureAtDepthZero(t *testing.T) {
	pos := position.NewPosition()
	for sq := position.ZeroSquare; sq < position.NumSquares; sq++ {
		pos.Set(sq, position.NoPiece)
	}
	pos.Set(position.E1, position.NewPiece(position.White, position.King))
	pos.Set(position.E8, position.NewPiece(position.Black, position.King))
	pos.Set(position.D4, position.NewPiece(position.White, position.Pawn))
	pos.Set(position.E5, position.NewPiece(position.Black, position.Queen))

	best, _, _, err := search.Think(context.Background(), pos, 0, func(position.Move, int, int) {})
	require.NoError(t, err)
	assert.Equal(t, position.D4, best.From)
	assert.Equal(t, position.E5, best.To)
}

// negamax must only ever generate the side-to-move's moves at each ply: a knight hanging
// to a rook recapture must be recognized as a blunder once the search looks one ply deep,
// since that recognition depends on the opponent's reply (the recapture) being searched,
// not some other White move standing in for it.
func TestThink_AvoidsHangingPieceAtDepthOne(t *testing.T) {
	pos := position.NewPosition()
	for sq := position.ZeroSquare; sq < position.NumSquares; sq++ {
		pos.Set(sq, position.NoPiece)
	}
	pos.Set(position.E1, position.NewPiece(position.White, position.King))
	pos.Set(position.E8, position.NewPiece(position.Black, position.King))
	pos.Set(position.D4, position.NewPiece(position.White, position.Knight))
	pos.Set(position.A5, position.NewPiece(position.Black, position.Rook))

	best, _, _, err := search.Think(context.Background(), pos, 1, func(position.Move, int, int) {})
	require.NoError(t, err)

	hangs := best.From == position.D4 && (best.To == position.B5 || best.To == position.F5)
	assert.False(t, hangs, "search chose a knight move the opponent's rook immediately recaptures: %v", best)
}
