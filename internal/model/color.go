package model

type Color uint8

const (
	White Color = iota
	Black
)

func (c Color) Opposite() Color {
	if c == White {
		return Black
	}
	return White
}

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// forward is the row step a pawn of this color advances by.
func (c Color) forward() int {
	if c == White {
		return 1
	}
	return -1
}
