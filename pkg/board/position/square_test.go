package position_test

import (
	"testing"

	"github.com/nimblechess/nimbus/pkg/board/position"
	"github.com/stretchr/testify/assert"
)

func TestSquare(t *testing.T) {
	assert.Equal(t, position.Square(0), position.A1)
	assert.Equal(t, position.Square(7), position.H1)
	assert.Equal(t, position.Square(8), position.A2)
	assert.Equal(t, position.Square(63), position.H8)

	assert.Equal(t, position.C2, position.NewSquare(2, 1))
	assert.Equal(t, position.G5, position.NewSquare(6, 4))

	assert.Equal(t, "H1", position.H1.String())
	assert.Equal(t, "A1", position.A1.String())
	assert.Equal(t, "D4", position.D4.String())
}

func TestParseSquare(t *testing.T) {
	sq, err := position.ParseSquareStr("D4")
	assert.NoError(t, err)
	assert.Equal(t, position.D4, sq)

	sq, err = position.ParseSquareStr("a1")
	assert.NoError(t, err)
	assert.Equal(t, position.A1, sq)

	_, err = position.ParseSquareStr("Z9")
	assert.Error(t, err)

	_, err = position.ParseSquareStr("A")
	assert.Error(t, err)
}

func TestIsInside(t *testing.T) {
	assert.True(t, position.IsInside(0, 0))
	assert.True(t, position.IsInside(7, 7))
	assert.False(t, position.IsInside(-1, 0))
	assert.False(t, position.IsInside(8, 0))
	assert.False(t, position.IsInside(0, 8))
}
