// Package session runs a series of games, asking the players who plays
// each side and whether to play again.
package session

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/ardanlabs/connect4/cmd/connect/ai"
	"github.com/ardanlabs/connect4/cmd/connect/config"
	"github.com/ardanlabs/connect4/cmd/connect/game"
	"github.com/ardanlabs/connect4/cmd/connect/player"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Set of messages shown when an answer is rejected.
const (
	msgInvalidKind   = "Invalid input. Please enter 1 or 2."
	msgInvalidAnswer = "Invalid input. Please enter 'yes' or 'no'."
)

var lower = cases.Lower(language.English)

// Terminal is what a session needs from a user interface.
type Terminal interface {
	game.Display
	player.Input
}

// Report says what to do with a finished game. Either func may be nil.
type Report struct {
	Announce func(msg string) error
	Snapshot func(state game.BoardState) (string, error)
}

// Session plays games on one terminal.
type Session struct {
	cfg    config.Config
	term   Terminal
	rnd    *rand.Rand
	log    game.Logger
	report Report
}

// New constructs a session. A nil logger discards the debug log.
func New(cfg config.Config, term Terminal, rnd *rand.Rand, log game.Logger, report Report) *Session {
	if log == nil {
		log = func(format string, v ...any) {}
	}

	s := Session{
		cfg:    cfg,
		term:   term,
		rnd:    rnd,
		log:    log,
		report: report,
	}

	return &s
}

// Play sets up and plays a single game and reports the result.
func (s *Session) Play() (game.Result, error) {
	first, second, err := s.sides()
	if err != nil {
		return game.Result{}, err
	}

	g, err := game.New(game.Config{Log: s.log, Display: s.term}, first, second)
	if err != nil {
		return game.Result{}, fmt.Errorf("new game: %w", err)
	}

	res, err := g.Run()
	if err != nil {
		return game.Result{}, err
	}

	// -------------------------------------------------------------------------
	// Report the result.

	msg := "It's a draw!"
	if res.Outcome.Status == game.StatusWin {
		msg = fmt.Sprintf("It's a Connect 4! %s wins!", res.Winner.Name)
	}
	s.term.Message(msg)

	if s.report.Snapshot != nil {
		fileName, err := s.report.Snapshot(g.ToBoardState())
		if err != nil {
			s.log("game[%s]: %s", res.GameID, err)
		} else {
			s.log("game[%s]: snapshot %s", res.GameID, fileName)
		}
	}

	if s.report.Announce != nil {
		if err := s.report.Announce(msg); err != nil {
			s.log("game[%s]: %s", res.GameID, err)
		}
	}

	return res, nil
}

// sides builds both sides and returns them in the order they move.
func (s *Session) sides() (game.Side, game.Side, error) {
	x, err := s.newSide(1, game.Tokens.X, s.cfg.PlayerX, s.cfg.NameX)
	if err != nil {
		return game.Side{}, game.Side{}, err
	}

	o, err := s.newSide(2, game.Tokens.O, s.cfg.PlayerO, s.cfg.NameO)
	if err != nil {
		return game.Side{}, game.Side{}, err
	}

	if lower.String(strings.TrimSpace(s.cfg.First)) == "random" {
		if s.rnd.Intn(2) == 1 {
			return o, x, nil
		}
		return x, o, nil
	}

	token, err := game.ParseToken(strings.ToUpper(strings.TrimSpace(s.cfg.First)))
	if err != nil {
		return game.Side{}, game.Side{}, fmt.Errorf("first: %w", err)
	}

	if token == game.Tokens.O {
		return o, x, nil
	}

	return x, o, nil
}

// PlayAgain asks until the answer is yes or no.
func (s *Session) PlayAgain() (bool, error) {
	for {
		answer, err := s.term.ReadLine("Do you want to play again? (yes/no) ")
		if err != nil {
			return false, err
		}

		switch lower.String(strings.TrimSpace(answer)) {
		case "yes":
			return true, nil
		case "no":
			return false, nil
		}

		s.term.Message(msgInvalidAnswer)
	}
}

// =============================================================================

// newSide builds the side for the token, asking for anything the
// configuration leaves open.
func (s *Session) newSide(number int, token game.Token, kind string, name string) (game.Side, error) {
	kind = lower.String(strings.TrimSpace(kind))

	for kind != config.KindHuman && kind != config.KindAI {
		answer, err := s.term.ReadLine(fmt.Sprintf("Choose the type of Player %d: (1) Human or (2) AI ", number))
		if err != nil {
			return game.Side{}, err
		}

		switch lower.String(strings.TrimSpace(answer)) {
		case "1", config.KindHuman:
			kind = config.KindHuman
		case "2", config.KindAI:
			kind = config.KindAI
		default:
			s.term.Message(msgInvalidKind)
		}
	}

	if kind == config.KindAI {
		side := game.Side{
			Name:   fmt.Sprintf("Player %d (AI)", number),
			Token:  token,
			Policy: ai.New(token, rand.NewSource(s.rnd.Int63()), s.log),
		}
		return side, nil
	}

	if name == "" {
		answer, err := s.term.ReadLine(fmt.Sprintf("Enter name for Player %d: ", number))
		if err != nil {
			return game.Side{}, err
		}

		name = strings.TrimSpace(answer)
		if name == "" {
			name = fmt.Sprintf("Player %d", number)
		}
	}

	side := game.Side{
		Name:   name,
		Token:  token,
		Policy: player.NewInteractive(name, token, s.term),
	}

	return side, nil
}
