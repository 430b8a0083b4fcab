package model

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}

// isValidMove reports whether piece, standing on from, may move to to given
// the current occupancy. It ignores whose turn it is and whether the mover's
// king ends up attacked.
func isValidMove(piece *Piece, from, to Position, board *BoardState) bool {
	if !from.inBounds() || !to.inBounds() || from == to {
		return false
	}
	if target := board.At(to); target != nil && target.Color == piece.Color {
		return false
	}
	switch piece.Type {
	case Pawn:
		return isValidPawnMove(piece, from, to, board)
	case Rook:
		return isValidRookMove(from, to, board)
	case Knight:
		return isValidKnightMove(from, to)
	case Bishop:
		return isValidBishopMove(from, to, board)
	case Queen:
		return isValidRookMove(from, to, board) || isValidBishopMove(from, to, board)
	case King:
		return isValidKingMove(from, to)
	default:
		return false
	}
}

func isValidPawnMove(piece *Piece, from, to Position, board *BoardState) bool {
	dir := piece.Color.forward()
	dRow, dCol := to.Row-from.Row, to.Col-from.Col
	switch {
	// forward one
	case dCol == 0 && dRow == dir:
		return board.isEmpty(to)
	// forward two from the pawn rank, passing over an empty square
	case dCol == 0 && dRow == 2*dir:
		over := Position{Row: from.Row + dir, Col: from.Col}
		return from.Row == pawnRank(piece.Color) && board.isEmpty(over) && board.isEmpty(to)
	// diagonal capture
	case abs(dCol) == 1 && dRow == dir:
		return !board.isEmpty(to)
	}
	return false
}

func isValidRookMove(from, to Position, board *BoardState) bool {
	if from.Row != to.Row && from.Col != to.Col {
		return false
	}
	return isPathClear(from, to, board)
}

func isValidBishopMove(from, to Position, board *BoardState) bool {
	if abs(to.Row-from.Row) != abs(to.Col-from.Col) {
		return false
	}
	return isPathClear(from, to, board)
}

func isValidKnightMove(from, to Position) bool {
	dRow, dCol := abs(to.Row-from.Row), abs(to.Col-from.Col)
	return (dRow == 2 && dCol == 1) || (dRow == 1 && dCol == 2)
}

func isValidKingMove(from, to Position) bool {
	return abs(to.Row-from.Row) <= 1 && abs(to.Col-from.Col) <= 1
}

// isPathClear scans the squares strictly between from and to along a rank,
// file or diagonal. Callers guarantee the two squares are aligned.
func isPathClear(from, to Position, board *BoardState) bool {
	step := Position{Row: sign(to.Row - from.Row), Col: sign(to.Col - from.Col)}
	pos := Position{Row: from.Row + step.Row, Col: from.Col + step.Col}
	for pos != to {
		if !board.isEmpty(pos) {
			return false
		}
		pos = Position{Row: pos.Row + step.Row, Col: pos.Col + step.Col}
	}
	return true
}
