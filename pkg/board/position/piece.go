package position

import "strings"

// Kind represents a chess piece kind, without color. Numbered to match the original
// engine's piece-code scheme used by the Zobrist hash (see PieceCode).
type Kind uint8

const (
	NoKind Kind = iota
	Pawn
	Rook
	Knight
	Bishop
	Queen
	King
)

func (k Kind) String() string {
	switch k {
	case Pawn:
		return "p"
	case Rook:
		return "r"
	case Knight:
		return "n"
	case Bishop:
		return "b"
	case Queen:
		return "q"
	case King:
		return "k"
	default:
		return " "
	}
}

// Piece is a chess piece: a Kind plus a Color. The zero value is the empty piece.
type Piece struct {
	Kind  Kind
	Color Color
}

// NoPiece is the empty piece, the zero value of Piece.
var NoPiece = Piece{}

// NewPiece returns the piece of the given color and kind.
func NewPiece(c Color, k Kind) Piece {
	return Piece{Kind: k, Color: c}
}

// IsEmpty returns true iff the piece represents no piece.
func (p Piece) IsEmpty() bool {
	return p.Kind == NoKind
}

// IsOfColor returns true iff the piece is non-empty and of the given color.
func (p Piece) IsOfColor(white bool) bool {
	if p.IsEmpty() {
		return false
	}
	return (p.Color == White) == white
}

// PieceCode is the Zobrist piece index: 0 for empty, else 2*kind+color.
func (p Piece) PieceCode() int {
	if p.IsEmpty() {
		return 0
	}
	return 2*int(p.Kind) + int(p.Color)
}

// ParsePiece parses a single FEN piece letter, such as 'P' (white pawn) or 'q' (black queen).
func ParsePiece(r rune) (Piece, bool) {
	var c Color
	if 'a' <= r && r <= 'z' {
		c = Black
	} else {
		c = White
	}

	switch strings.ToLower(string(r)) {
	case "p":
		return NewPiece(c, Pawn), true
	case "r":
		return NewPiece(c, Rook), true
	case "n":
		return NewPiece(c, Knight), true
	case "b":
		return NewPiece(c, Bishop), true
	case "q":
		return NewPiece(c, Queen), true
	case "k":
		return NewPiece(c, King), true
	default:
		return NoPiece, false
	}
}

func (p Piece) String() string {
	if p.IsEmpty() {
		return " "
	}
	if p.Color == White {
		return strings.ToUpper(p.Kind.String())
	}
	return p.Kind.String()
}
