package model

import (
	"fmt"
	"strings"
)

// Size is the board dimension. The grid is 9x9 while the back rank is the
// usual eight pieces, so file i stays empty on both back ranks.
const Size = 9

type PieceType uint8

const (
	Pawn PieceType = iota + 1
	Rook
	Knight
	Bishop
	Queen
	King
)

func (p PieceType) getPieceNotation() string {
	switch p {
	case King:
		return "K"
	case Queen:
		return "Q"
	case Rook:
		return "R"
	case Bishop:
		return "B"
	case Knight:
		return "N"
	case Pawn:
		return "P"
	}
	return "?"
}

func (p PieceType) String() string {
	switch p {
	case King:
		return "king"
	case Queen:
		return "queen"
	case Rook:
		return "rook"
	case Bishop:
		return "bishop"
	case Knight:
		return "knight"
	case Pawn:
		return "pawn"
	}
	return fmt.Sprintf("piece(%d)", uint8(p))
}

// Piece is never modified once placed; a move relocates the pointer.
type Piece struct {
	Type  PieceType
	Color Color
}

// Symbol is the render character: uppercase for white, lowercase for black.
func (p *Piece) Symbol() string {
	s := p.Type.getPieceNotation()
	if p.Color == Black {
		return strings.ToLower(s)
	}
	return s
}

// Position is a (row, column) pair. Row 0 is White's back rank.
type Position struct {
	Row int
	Col int
}

func (p Position) inBounds() bool {
	return p.Row >= 0 && p.Row < Size && p.Col >= 0 && p.Col < Size
}

// Notation formats the position as "<file><rank>", e.g. row 0 col 0 is "a8".
func (p Position) Notation() string {
	return fmt.Sprintf("%c%d", 'a'+p.Col, Size-1-p.Row)
}

func (p Position) String() string {
	return p.Notation()
}

// ParseSquare is the inverse of Notation.
func ParseSquare(token string) (Position, error) {
	if len(token) != 2 {
		return Position{}, fmt.Errorf("%w: %q", ErrBadSquare, token)
	}
	file, rank := token[0], token[1]
	if rank < '0' || rank > '9' {
		return Position{}, fmt.Errorf("%w: %q", ErrBadSquare, token)
	}
	pos := Position{Row: Size - 1 - int(rank-'0'), Col: int(file) - 'a'}
	if !pos.inBounds() {
		return Position{}, fmt.Errorf("%w: %q out of range", ErrBadSquare, token)
	}
	return pos, nil
}

// BoardState is a value type: assigning it yields an independent scratch copy.
type BoardState struct {
	Board [Size][Size]*Piece
}

func (b *BoardState) At(p Position) *Piece {
	return b.Board[p.Row][p.Col]
}

func (b *BoardState) Set(p Position, piece *Piece) {
	b.Board[p.Row][p.Col] = piece
}

func (b *BoardState) isEmpty(p Position) bool {
	return b.Board[p.Row][p.Col] == nil
}

// relocate moves whatever is on from onto to, replacing any occupant.
func (b *BoardState) relocate(from, to Position) {
	b.Board[to.Row][to.Col] = b.Board[from.Row][from.Col]
	b.Board[from.Row][from.Col] = nil
}

// String renders one line per row, symbols space-joined, '.' for empty.
func (b *BoardState) String() string {
	var sb strings.Builder
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if col > 0 {
				sb.WriteByte(' ')
			}
			if piece := b.Board[row][col]; piece != nil {
				sb.WriteString(piece.Symbol())
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

var backRank = []PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

func pawnRank(c Color) int {
	if c == White {
		return 1
	}
	return Size - 2
}

func homeRank(c Color) int {
	if c == White {
		return 0
	}
	return Size - 1
}

func newBoard() BoardState {
	var board BoardState
	for _, color := range []Color{White, Black} {
		for col, pt := range backRank {
			board.Board[homeRank(color)][col] = &Piece{Type: pt, Color: color}
		}
		for col := 0; col < Size; col++ {
			board.Board[pawnRank(color)][col] = &Piece{Type: Pawn, Color: color}
		}
	}
	return board
}
