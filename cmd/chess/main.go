package main

import (
	"flag"
	"io"
	"log"
	"os"
	"strings"

	"github.com/benbeisheim/console-chess/internal/controller"
	"github.com/benbeisheim/console-chess/internal/i18n"
	"github.com/benbeisheim/console-chess/internal/service"
)

func main() {
	// Flags (env fallbacks).
	lang := flag.String("lang", getenv("CHESS_LANG", "en"), "interface language, one of "+strings.Join(i18n.Languages(), ", "))
	verbose := flag.Bool("v", getenb("CHESS_VERBOSE", false), "log diagnostics to stderr")
	flag.Parse()

	printer, err := i18n.NewPrinter(*lang)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	// stdout carries the game itself, so diagnostics stay off it
	logger := log.New(io.Discard, "", 0)
	if *verbose {
		logger = log.New(os.Stderr, "chess: ", log.LstdFlags)
	}

	gameService := service.NewGameService(logger)
	consoleController := controller.NewConsoleController(gameService, printer, logger)

	if err := consoleController.Run(os.Stdin, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenb(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "1", "true", "t", "yes", "y", "on":
			return true
		case "0", "false", "f", "no", "n", "off":
			return false
		}
	}
	return def
}
