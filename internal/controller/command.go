package controller

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInputFormat = errors.New("malformed input")

// maxLineLength bounds a move line; anything longer cannot be two squares.
const maxLineLength = 64

// CommandType is the kind of line the player typed.
type CommandType string

const (
	CommandTypeMove  CommandType = "move"
	CommandTypeExit  CommandType = "exit"
	CommandTypeEmpty CommandType = "empty"
)

// Command is one parsed input line. From and To are raw square tokens.
type Command struct {
	Type CommandType
	From string
	To   string
}

func ParseCommand(line string) (Command, error) {
	line = strings.TrimSpace(line)
	if len(line) > maxLineLength {
		return Command{}, fmt.Errorf("%w: line of %d bytes", ErrInputFormat, len(line))
	}
	if line == "" {
		return Command{Type: CommandTypeEmpty}, nil
	}
	if strings.EqualFold(line, "exit") {
		return Command{Type: CommandTypeExit}, nil
	}
	parts := strings.Fields(line)
	if len(parts) != 2 {
		return Command{}, fmt.Errorf("%w: want two squares, got %d fields", ErrInputFormat, len(parts))
	}
	return Command{Type: CommandTypeMove, From: parts[0], To: parts[1]}, nil
}
