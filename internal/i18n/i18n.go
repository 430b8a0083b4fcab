// Package i18n holds the console text in every supported language. Message
// keys are the English strings; other languages translate them.
package i18n

import (
	"errors"
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

var ErrUnsupportedLanguage = errors.New("unsupported language")

const (
	White        = "White"
	Black        = "Black"
	Banner       = "Game %s"
	Prompt       = "%s's turn. Enter your move (e.g., a8 a7) or 'exit' to quit:"
	Farewell     = "Game over."
	IllegalMove  = "Illegal move!"
	NotYourTurn  = "That is not your piece!"
	KingInCheck  = "That move leaves your king in check!"
	PossibleMove = "Possible moves:"
	BadInput     = "Invalid input! Please enter a move in the format 'a8 a7'."
	Check        = "Check!"
	Checkmate    = "Checkmate! %s wins."
)

var supported = []language.Tag{language.English, language.Russian}

var russian = map[string]string{
	White:        "Белые",
	Black:        "Черные",
	Banner:       "Партия %s",
	Prompt:       "Ход: %s. Введите ваш ход (например, a8 a7) или введите 'exit' для выхода:",
	Farewell:     "Игра завершена.",
	IllegalMove:  "Невалидный ход!",
	NotYourTurn:  "Это не ваша фигура!",
	KingInCheck:  "Ход ставит короля под шах!",
	PossibleMove: "Возможные ходы:",
	BadInput:     "Неверный ввод! Пожалуйста, введите ход в формате 'a8 a7'.",
	Check:        "Шах!",
	Checkmate:    "Мат! %s побеждают.",
}

var cat = newCatalog()

func newCatalog() catalog.Catalog {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for key, msg := range russian {
		if err := b.SetString(language.Russian, key, msg); err != nil {
			panic(fmt.Sprintf("i18n: %q: %v", key, err))
		}
	}
	return b
}

// NewPrinter returns a printer for lang, e.g. "en" or "ru-RU".
func NewPrinter(lang string) (*message.Printer, error) {
	tag, err := language.Parse(lang)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrUnsupportedLanguage, lang, err)
	}
	_, index, confidence := language.NewMatcher(supported).Match(tag)
	if confidence == language.No {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedLanguage, lang)
	}
	return message.NewPrinter(supported[index], message.Catalog(cat)), nil
}

// Languages lists the supported language tags.
func Languages() []string {
	out := make([]string, len(supported))
	for i, tag := range supported {
		out[i] = tag.String()
	}
	return out
}
