package position

import "fmt"

// Square is a coordinate on the 8x8 board, packed as x + 8*y where x is the file
// (0=A .. 7=H) and y is the rank (0=rank1 .. 7=rank8). This ordering is ascending
// file-then-rank, A1=0 .. H1=7, A2=8 .. H8=63, matching the raw order this engine
// reads and writes FEN in (see board/fen).
type Square uint8

const (
	ZeroSquare Square = 0
	NumSquares Square = 64
)

// Named squares, for convenience and for tests. A1=0 .. H1=7, A2=8 .. H8=63.
const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1

	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2

	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3

	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4

	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5

	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6

	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7

	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
)

// NewSquare builds a Square from a file and rank, both in [0;8).
func NewSquare(x, y int) Square {
	return Square(x + 8*y)
}

// ParseSquare parses a square from a file letter and rank digit, such as 'd' and '4'.
func ParseSquare(f, r rune) (Square, error) {
	x, ok := parseFile(f)
	if !ok {
		return 0, fmt.Errorf("invalid file: %v", f)
	}
	y, ok := parseRank(r)
	if !ok {
		return 0, fmt.Errorf("invalid rank: %v", r)
	}
	return NewSquare(x, y), nil
}

// ParseSquareStr parses a square such as "D4".
func ParseSquareStr(s string) (Square, error) {
	runes := []rune(s)
	if len(runes) != 2 {
		return 0, fmt.Errorf("invalid square: %v", s)
	}
	return ParseSquare(runes[0], runes[1])
}

// X returns the file index, 0=A .. 7=H.
func (s Square) X() int {
	return int(s) % 8
}

// Y returns the rank index, 0=rank1 .. 7=rank8.
func (s Square) Y() int {
	return int(s) / 8
}

// IsInside returns true iff x and y are both valid board coordinates. It works on raw
// coordinates rather than a packed Square and is used while walking candidate offsets
// during move generation, where x or y may run off the edge.
func IsInside(x, y int) bool {
	return x >= 0 && x < 8 && y >= 0 && y < 8
}

func (s Square) String() string {
	return fmt.Sprintf("%v%v", fileString(s.X()), s.Y()+1)
}

func parseFile(r rune) (int, bool) {
	switch r {
	case 'a', 'A':
		return 0, true
	case 'b', 'B':
		return 1, true
	case 'c', 'C':
		return 2, true
	case 'd', 'D':
		return 3, true
	case 'e', 'E':
		return 4, true
	case 'f', 'F':
		return 5, true
	case 'g', 'G':
		return 6, true
	case 'h', 'H':
		return 7, true
	default:
		return 0, false
	}
}

func parseRank(r rune) (int, bool) {
	if r < '1' || r > '8' {
		return 0, false
	}
	return int(r - '1'), true
}

func fileString(x int) string {
	return string(rune('A' + x))
}
