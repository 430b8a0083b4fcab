package model

import "errors"

var (
	ErrBadSquare   = errors.New("invalid square")
	ErrIllegalMove = errors.New("illegal move")
	ErrNotYourTurn = errors.New("not your turn")
	ErrKingInCheck = errors.New("move leaves king in check")
	ErrNoKing      = errors.New("no king found")
)
