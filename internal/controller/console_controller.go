package controller

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/benbeisheim/console-chess/internal/i18n"
	"github.com/benbeisheim/console-chess/internal/model"
	"github.com/benbeisheim/console-chess/internal/service"
	"golang.org/x/text/message"
)

type ConsoleController struct {
	gameService *service.GameService
	printer     *message.Printer
	logger      *log.Logger
	out         io.Writer
}

func NewConsoleController(gameService *service.GameService, printer *message.Printer, logger *log.Logger) *ConsoleController {
	return &ConsoleController{
		gameService: gameService,
		printer:     printer,
		logger:      logger,
	}
}

// Run plays the session over in and out until the player exits, the game
// ends in checkmate, or in is exhausted.
func (cc *ConsoleController) Run(in io.Reader, out io.Writer) error {
	cc.out = out
	cc.writeLine(i18n.Banner, cc.gameService.ID())
	cc.writeBoard()

	reader := bufio.NewReader(in)
	for {
		cc.writeLine(i18n.Prompt, cc.sideName(cc.gameService.ToMove()))
		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("read input: %w", err)
		}
		if line == "" && err != nil {
			break
		}

		cmd, perr := ParseCommand(line)
		if perr != nil {
			cc.logger.Printf("game %s: %v", cc.gameService.ID(), perr)
			cc.writeLine(i18n.BadInput)
		} else if done := cc.handleCommand(cmd); done {
			return nil
		}
		if err != nil {
			break
		}
	}

	cc.logger.Printf("game %s: input closed", cc.gameService.ID())
	return nil
}

// handleCommand reports whether the session is over.
func (cc *ConsoleController) handleCommand(cmd Command) bool {
	switch cmd.Type {
	case CommandTypeEmpty:
		return false
	case CommandTypeExit:
		cc.writeLine(i18n.Farewell)
		return true
	case CommandTypeMove:
		return cc.handleMove(cmd)
	default:
		cc.logger.Printf("game %s: unknown command type: %s", cc.gameService.ID(), cmd.Type)
		return false
	}
}

func (cc *ConsoleController) handleMove(cmd Command) bool {
	result, err := cc.gameService.HandleMove(cmd.From, cmd.To)
	if err != nil {
		cc.sendError(err)
		return false
	}

	cc.writeBoard()
	if result.Checkmate {
		cc.writeLine(i18n.Checkmate, cc.sideName(result.Mover))
		return true
	}
	if result.Check {
		cc.writeLine(i18n.Check)
	}
	return false
}

// sendError reports a rejected move. A bad square token is a format error;
// anything else is followed by the moves that were available.
func (cc *ConsoleController) sendError(err error) {
	switch {
	case errors.Is(err, model.ErrBadSquare):
		cc.writeLine(i18n.BadInput)
		return
	case errors.Is(err, model.ErrKingInCheck):
		cc.writeLine(i18n.KingInCheck)
	case errors.Is(err, model.ErrNotYourTurn):
		cc.writeLine(i18n.NotYourTurn)
	default:
		cc.writeLine(i18n.IllegalMove)
	}
	cc.writeLine(i18n.PossibleMove)
	for _, move := range cc.gameService.LegalMoves() {
		fmt.Fprintln(cc.out, move.String())
	}
}

func (cc *ConsoleController) writeBoard() {
	fmt.Fprintln(cc.out, cc.gameService.RenderBoard())
}

func (cc *ConsoleController) writeLine(key string, args ...any) {
	fmt.Fprintln(cc.out, cc.printer.Sprintf(key, args...))
}

func (cc *ConsoleController) sideName(color model.Color) string {
	if color == model.White {
		return cc.printer.Sprintf(i18n.White)
	}
	return cc.printer.Sprintf(i18n.Black)
}
