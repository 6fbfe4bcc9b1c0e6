package core

import "fmt"

// Square is a zero-indexed board coordinate. Col 0..7 maps to files a..h,
// Row 0..7 maps to ranks 8..1, so row 0 is Black's home rank.
type Square struct {
	Col int
	Row int
}

// ParseSquare converts notation like "e2" into a Square. The letter is
// case-insensitive. Malformed notation is an error, never a panic.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return Square{}, fmt.Errorf("invalid square %q: expected a file letter followed by a rank digit", s)
	}
	file := s[0] | 0x20 // fold to lowercase
	if file < 'a' || file > 'h' {
		return Square{}, fmt.Errorf("invalid square %q: file must be a-h", s)
	}
	rank := s[1]
	if rank < '1' || rank > '8' {
		return Square{}, fmt.Errorf("invalid square %q: rank must be 1-8", s)
	}
	return Square{Col: int(file - 'a'), Row: int('8' - rank)}, nil
}

// MustSquare parses notation known to be valid, such as fixed layouts and
// test fixtures.
func MustSquare(s string) Square {
	sq, err := ParseSquare(s)
	if err != nil {
		panic(err)
	}
	return sq
}

// Notation returns the "e2"-style form. Only meaningful for in-bounds squares.
func (s Square) Notation() string {
	return string([]byte{byte('a' + s.Col), byte('8' - s.Row)})
}

func (s Square) String() string {
	if !s.InBounds() {
		return fmt.Sprintf("(%d,%d)", s.Col, s.Row)
	}
	return s.Notation()
}

// InBounds reports whether the square lies on the 8x8 grid.
func (s Square) InBounds() bool {
	return s.Col >= 0 && s.Col < 8 && s.Row >= 0 && s.Row < 8
}

// Offset returns the square shifted by dc columns and dr rows. The result
// may be out of bounds; callers check InBounds.
func (s Square) Offset(dc, dr int) Square {
	return Square{Col: s.Col + dc, Row: s.Row + dr}
}
