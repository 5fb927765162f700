package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/ardanlabs/connect4/cmd/connect/board"
	"github.com/ardanlabs/connect4/cmd/connect/config"
	"github.com/ardanlabs/connect4/cmd/connect/console"
	"github.com/ardanlabs/connect4/cmd/connect/game"
	"github.com/ardanlabs/connect4/cmd/connect/media"
	"github.com/ardanlabs/connect4/cmd/connect/session"
	"golang.org/x/term"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg := config.Load()

	flag.StringVar(&cfg.PlayerX, "x", cfg.PlayerX, "player kind for X: human or ai, empty asks")
	flag.StringVar(&cfg.PlayerO, "o", cfg.PlayerO, "player kind for O: human or ai, empty asks")
	flag.StringVar(&cfg.NameX, "name-x", cfg.NameX, "name for a human X player, empty asks")
	flag.StringVar(&cfg.NameO, "name-o", cfg.NameO, "name for a human O player, empty asks")
	flag.StringVar(&cfg.First, "first", cfg.First, "token that moves first: X, O or random")
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed, 0 uses the clock")
	flag.StringVar(&cfg.UI, "ui", cfg.UI, "user interface: console or tui")
	flag.StringVar(&cfg.Color, "color", cfg.Color, "console colors: auto, always or never")
	flag.StringVar(&cfg.DebugLog, "debug", cfg.DebugLog, "write a debug log to this file")
	flag.BoolVar(&cfg.Sound, "sound", cfg.Sound, "speak the result of each game")
	flag.StringVar(&cfg.AudioFolder, "audio", cfg.AudioFolder, "folder for speech files")
	flag.StringVar(&cfg.SnapshotDir, "snapshot", cfg.SnapshotDir, "save a PNG of each final board in this folder")

	flag.Parse()

	// -------------------------------------------------------------------------
	// Open the debug log.

	logf, closeLog, err := debugLogger(cfg.DebugLog)
	if err != nil {
		return fmt.Errorf("debug log: %w", err)
	}
	defer closeLog()

	// -------------------------------------------------------------------------
	// Construct the user interface.

	var t session.Terminal
	switch cfg.UI {
	case config.UITerminal:
		b, err := board.New()
		if err != nil {
			return fmt.Errorf("new board: %w", err)
		}
		defer b.Shutdown()
		t = b

	case config.UIConsole:
		color, err := console.ParseColorMode(cfg.Color)
		if err != nil {
			return fmt.Errorf("color: %w", err)
		}

		fmt.Println("Welcome to Connect 4!")
		t = console.New(os.Stdin, os.Stdout, color.Enabled(term.IsTerminal(int(os.Stdout.Fd()))))

	default:
		return fmt.Errorf("unknown user interface %q", cfg.UI)
	}

	// -------------------------------------------------------------------------
	// Play games until the players are done.

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logf("session: seed %d", seed)

	report := session.Report{
		Announce: media.NewSpeaker(cfg.AudioFolder, cfg.Sound).Speak,
	}

	if cfg.SnapshotDir != "" {
		report.Snapshot = func(state game.BoardState) (string, error) {
			return media.SaveSnapshot(cfg.SnapshotDir, state)
		}
	}

	s := session.New(cfg, t, rand.New(rand.NewSource(seed)), logf, report)

	for {
		_, err := s.Play()
		switch {
		case errors.Is(err, board.ErrQuit), errors.Is(err, io.EOF):
			return nil
		case err != nil:
			return err
		}

		again, err := s.PlayAgain()
		switch {
		case errors.Is(err, board.ErrQuit), errors.Is(err, io.EOF):
			return nil
		case err != nil:
			return err
		case !again:
			return nil
		}
	}
}

// debugLogger returns a logger writing to the file, or one that discards
// everything when no file is named.
func debugLogger(fileName string) (game.Logger, func() error, error) {
	if fileName == "" {
		return func(format string, v ...any) {}, func() error { return nil }, nil
	}

	f, err := os.OpenFile(fileName, os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0666)
	if err != nil {
		return nil, nil, err
	}

	l := log.New(f, "", log.LstdFlags|log.Lmicroseconds)

	return l.Printf, f.Close, nil
}
