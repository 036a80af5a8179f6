// Package fen reads and writes positions in a two-field subset of Forsyth-Edwards
// Notation: board placement and active color only. No castling, en-passant, halfmove or
// fullmove fields -- this engine has no use for them (see DESIGN.md).
package fen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nimblechess/nimbus/pkg/board/position"
)

// Initial is the starting position in this engine's FEN subset.
const Initial = "RNBQKBNR/PPPPPPPP/8/8/8/8/pppppppp/rnbqkbnr w"

// ErrFenTooManyPieces and ErrFenTooFewPieces flag a malformed board section: the
// placement field must describe exactly 64 squares.
var (
	ErrFenTooManyPieces = fmt.Errorf("fen: too many pieces")
	ErrFenTooFewPieces  = fmt.Errorf("fen: too few pieces")
)

// Decode parses a position from its placement and active-color fields, in raw
// square-index order (A1, B1, ..., H1, A2, ..., H8), not standard FEN's rank-8-first
// order (see DESIGN.md). Digits 1-8 advance the cursor by that many empty squares; any
// other non-whitespace, non-slash, non-piece-letter rune is also treated as advancing by
// one, matching the original engine's permissive reader.
//
// Example: "RNBQKBNR/PPPPPPPP/8/8/8/8/pppppppp/rnbqkbnr w"
func Decode(s string) (*position.Position, position.Color, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return nil, 0, ErrFenTooFewPieces
	}

	pos := &position.Position{}
	pos.Reset()

	sq := position.ZeroSquare
	for _, r := range fields[0] {
		if r == '/' {
			continue
		}
		if p, ok := position.ParsePiece(r); ok {
			if sq >= position.NumSquares {
				return nil, 0, ErrFenTooManyPieces
			}
			pos.Set(sq, p)
			sq++
			continue
		}

		n := 1
		if r >= '0' && r <= '9' {
			n = int(r - '0')
		}
		for i := 0; i < n; i++ {
			if sq >= position.NumSquares {
				return nil, 0, ErrFenTooManyPieces
			}
			pos.Set(sq, position.NoPiece)
			sq++
		}
	}
	if sq != position.NumSquares {
		return nil, 0, ErrFenTooFewPieces
	}

	active := position.Black
	if len(fields) > 1 && strings.EqualFold(fields[1], "w") {
		active = position.White
	}
	pos.SetTurn(active)

	return pos, active, nil
}

// Encode writes the position's placement, in raw square-index order, followed by the
// active color.
func Encode(pos *position.Position, active position.Color) string {
	var sb strings.Builder

	blanks := 0
	for sq := position.ZeroSquare; sq < position.NumSquares; sq++ {
		if sq != 0 && sq%8 == 0 {
			if blanks > 0 {
				sb.WriteString(strconv.Itoa(blanks))
				blanks = 0
			}
			sb.WriteRune('/')
		}

		p := pos.Get(sq)
		if p.IsEmpty() {
			blanks++
			continue
		}
		if blanks > 0 {
			sb.WriteString(strconv.Itoa(blanks))
			blanks = 0
		}
		sb.WriteString(p.String())
	}
	if blanks > 0 {
		sb.WriteString(strconv.Itoa(blanks))
	}

	return fmt.Sprintf("%v %v", sb.String(), active)
}
