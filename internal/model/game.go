package model

import (
	"fmt"
)

// Game is one two-player session: the board and whose turn it is.
type Game struct {
	board  BoardState
	toMove Color
}

func NewGame() *Game {
	return &Game{
		board:  newBoard(),
		toMove: White,
	}
}

// NewGameFromBoard starts a game from an arbitrary position.
func NewGameFromBoard(board BoardState, toMove Color) *Game {
	return &Game{
		board:  board,
		toMove: toMove,
	}
}

// Board returns a snapshot; changing it does not affect the game.
func (g *Game) Board() BoardState {
	return g.board
}

func (g *Game) ToMove() Color {
	return g.toMove
}

// MakeMove validates and applies from->to for the side to move. On error the
// board and turn are left untouched.
func (g *Game) MakeMove(from, to Position) error {
	if !from.inBounds() || !to.inBounds() {
		return fmt.Errorf("%w: out of bounds", ErrIllegalMove)
	}
	piece := g.board.At(from)
	if piece == nil {
		return fmt.Errorf("%w: no piece at %s", ErrIllegalMove, from)
	}
	if piece.Color != g.toMove {
		return fmt.Errorf("%w: %s piece at %s", ErrNotYourTurn, piece.Color, from)
	}
	if !isValidMove(piece, from, to, &g.board) {
		return fmt.Errorf("%w: %s cannot move %s to %s", ErrIllegalMove, piece.Type, from, to)
	}

	next := g.board
	next.relocate(from, to)
	if isKingInCheck(&next, piece.Color) {
		return fmt.Errorf("%w: %s %s", ErrKingInCheck, from, to)
	}

	g.board = next
	g.switchTurn()
	return nil
}

func (g *Game) switchTurn() {
	g.toMove = g.toMove.Opposite()
}

// IsCheck reports whether color's king is attacked in the current position.
func (g *Game) IsCheck(color Color) bool {
	return isKingInCheck(&g.board, color)
}

// IsCheckmate reports whether color is in check and no single king step to a
// neighbouring square escapes the attack. Interposition and capture of the
// attacker by another piece are not considered, nor is stalemate.
func (g *Game) IsCheckmate(color Color) bool {
	kingPos, err := findKing(&g.board, color)
	if err != nil || !isSquareAttacked(&g.board, color.Opposite(), kingPos) {
		return false
	}
	for row := max(0, kingPos.Row-1); row <= min(Size-1, kingPos.Row+1); row++ {
		for col := max(0, kingPos.Col-1); col <= min(Size-1, kingPos.Col+1); col++ {
			target := Position{Row: row, Col: col}
			if target == kingPos {
				continue
			}
			if occupant := g.board.At(target); occupant != nil && occupant.Color == color {
				continue
			}
			scratch := g.board
			scratch.relocate(kingPos, target)
			if !isSquareAttacked(&scratch, color.Opposite(), target) {
				return false
			}
		}
	}
	return true
}

// LegalMoves lists every move MakeMove would accept for color, ordered by
// origin then destination in row-major order.
func (g *Game) LegalMoves(color Color) []Move {
	legalMoves := []Move{}
	for fromRow := 0; fromRow < Size; fromRow++ {
		for fromCol := 0; fromCol < Size; fromCol++ {
			from := Position{Row: fromRow, Col: fromCol}
			piece := g.board.At(from)
			if piece == nil || piece.Color != color {
				continue
			}
			legalMoves = append(legalMoves, g.getLegalMovesForPiece(piece, from)...)
		}
	}
	return legalMoves
}

func (g *Game) getLegalMovesForPiece(piece *Piece, from Position) []Move {
	moves := []Move{}
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			to := Position{Row: row, Col: col}
			if !isValidMove(piece, from, to, &g.board) {
				continue
			}
			scratch := g.board
			scratch.relocate(from, to)
			if !isKingInCheck(&scratch, piece.Color) {
				moves = append(moves, Move{From: from, To: to})
			}
		}
	}
	return moves
}

// isKingInCheck falls back to false when color has no king on the board.
func isKingInCheck(board *BoardState, color Color) bool {
	kingPos, err := findKing(board, color)
	if err != nil {
		return false
	}
	return isSquareAttacked(board, color.Opposite(), kingPos)
}

func findKing(board *BoardState, color Color) (Position, error) {
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			piece := board.Board[row][col]
			if piece != nil && piece.Type == King && piece.Color == color {
				return Position{Row: row, Col: col}, nil
			}
		}
	}
	return Position{}, fmt.Errorf("%w: %s", ErrNoKing, color)
}

// isSquareAttacked reports whether any attackingColor piece could move to
// position under the piece rules.
func isSquareAttacked(board *BoardState, attackingColor Color, position Position) bool {
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			piece := board.Board[row][col]
			if piece == nil || piece.Color != attackingColor {
				continue
			}
			if isValidMove(piece, Position{Row: row, Col: col}, position, board) {
				return true
			}
		}
	}
	return false
}
