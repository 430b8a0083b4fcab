package service

import (
	"fmt"
	"log"

	"github.com/benbeisheim/console-chess/internal/model"
	"github.com/google/uuid"
)

// MoveResult describes the position after an accepted move.
type MoveResult struct {
	Move      model.Move
	Mover     model.Color
	Check     bool // the side now to move is in check
	Checkmate bool
}

// GameService owns one game session.
type GameService struct {
	id     string
	game   *model.Game
	logger *log.Logger
}

func NewGameService(logger *log.Logger) *GameService {
	return NewGameServiceFrom(model.NewGame(), logger)
}

// NewGameServiceFrom wraps an existing game, e.g. one set up from a fixture.
func NewGameServiceFrom(game *model.Game, logger *log.Logger) *GameService {
	gs := &GameService{
		id:     uuid.New().String(),
		game:   game,
		logger: logger,
	}
	gs.logger.Printf("game %s: created, %s to move", gs.id, game.ToMove())
	return gs
}

func (gs *GameService) ID() string {
	return gs.id
}

func (gs *GameService) ToMove() model.Color {
	return gs.game.ToMove()
}

func (gs *GameService) RenderBoard() string {
	board := gs.game.Board()
	return board.String()
}

// LegalMoves lists the moves available to the side to move.
func (gs *GameService) LegalMoves() []model.Move {
	return gs.game.LegalMoves(gs.game.ToMove())
}

// HandleMove parses the two square tokens and plays the move.
func (gs *GameService) HandleMove(fromToken, toToken string) (MoveResult, error) {
	from, err := model.ParseSquare(fromToken)
	if err != nil {
		return MoveResult{}, fmt.Errorf("from square: %w", err)
	}
	to, err := model.ParseSquare(toToken)
	if err != nil {
		return MoveResult{}, fmt.Errorf("to square: %w", err)
	}

	mover := gs.game.ToMove()
	move := model.Move{From: from, To: to}
	if err := gs.game.MakeMove(from, to); err != nil {
		gs.logger.Printf("game %s: %s rejected %s: %v", gs.id, mover, move, err)
		return MoveResult{}, err
	}

	result := MoveResult{
		Move:      move,
		Mover:     mover,
		Check:     gs.game.IsCheck(gs.game.ToMove()),
		Checkmate: gs.game.IsCheckmate(gs.game.ToMove()),
	}
	gs.logger.Printf("game %s: %s played %s (check=%t, checkmate=%t)", gs.id, mover, move, result.Check, result.Checkmate)
	return result, nil
}
