package game

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// MaxAttempts is the number of times a policy is asked for a column before
// the game gives up on it.
const MaxAttempts = 3

// Set of errors returned by the game loop.
var (
	ErrIllegalMove = errors.New("policy chose an illegal move")
	ErrGameOver    = errors.New("game is over")
	ErrSameToken   = errors.New("both sides use the same token")
	ErrNoPolicy    = errors.New("side has no policy")
)

// Policy chooses the column for the next move. The board is a copy of the
// game board and can be changed freely.
type Policy interface {
	ChooseColumn(board Board) (int, error)
}

// PolicyFunc allows an ordinary function to be used as a Policy.
type PolicyFunc func(board Board) (int, error)

// ChooseColumn implements the Policy interface.
func (f PolicyFunc) ChooseColumn(board Board) (int, error) {
	return f(board)
}

// Display renders the state of the board.
type Display interface {
	Render(state BoardState)
}

// Logger writes a formatted line to the debug log.
type Logger func(format string, v ...any)

// Side represents one of the two players in a game.
type Side struct {
	Name   string
	Token  Token
	Policy Policy
}

// Config provides the optional collaborators for a game.
type Config struct {
	Log     Logger
	Display Display
}

// Result represents how a game ended.
type Result struct {
	GameID  uuid.UUID
	Outcome Outcome
	Winner  Side
	Moves   []LastMove
}

// Game alternates two sides over one board until the game is over.
type Game struct {
	id       uuid.UUID
	log      Logger
	display  Display
	board    Board
	sides    [2]Side
	current  int
	lastMove LastMove
	history  []LastMove
}

// New constructs a game where the first side moves first.
func New(cfg Config, first Side, second Side) (*Game, error) {
	for _, side := range []Side{first, second} {
		if side.Token.IsZero() {
			return nil, fmt.Errorf("side %q: %w", side.Name, ErrInvalidToken)
		}

		if side.Policy == nil {
			return nil, fmt.Errorf("side %q: %w", side.Name, ErrNoPolicy)
		}
	}

	if first.Token == second.Token {
		return nil, ErrSameToken
	}

	log := cfg.Log
	if log == nil {
		log = func(format string, v ...any) {}
	}

	g := Game{
		id:      uuid.New(),
		log:     log,
		display: cfg.Display,
		board:   NewBoard(),
		sides:   [2]Side{first, second},
	}

	return &g, nil
}

// ID returns the unique id of this game.
func (g *Game) ID() uuid.UUID {
	return g.id
}

// Board returns a copy of the game board.
func (g *Game) Board() Board {
	return g.board.Clone()
}

// Current returns the side whose turn it is.
func (g *Game) Current() Side {
	return g.sides[g.current]
}

// Side returns the side playing the specified token.
func (g *Game) Side(token Token) (Side, bool) {
	for _, side := range g.sides {
		if side.Token == token {
			return side, true
		}
	}

	return Side{}, false
}

// Outcome computes the current outcome from the board.
func (g *Game) Outcome() Outcome {
	return g.board.Outcome()
}

// ToBoardState provides the state of the game for display.
func (g *Game) ToBoardState() BoardState {
	state := g.board.ToBoardState()
	state.GameID = g.id.String()
	state.LastMove = g.lastMove
	state.Turn = g.sides[g.current].Token

	return state
}

// Step plays a single turn for the current side and returns the outcome
// after the move.
func (g *Game) Step() (Outcome, error) {
	if outcome := g.board.Outcome(); outcome.Terminal() {
		return outcome, ErrGameOver
	}

	side := g.sides[g.current]

	column, err := g.chooseColumn(side)
	if err != nil {
		return Outcome{}, err
	}

	row, err := g.board.PlaceToken(side.Token, column)
	if err != nil {
		return Outcome{}, fmt.Errorf("place token: %s: %w", side.Name, err)
	}

	g.lastMove = LastMove{
		Column: column,
		Row:    row,
		Token:  side.Token,
	}
	g.history = append(g.history, g.lastMove)

	g.log("game[%s]: move %d: %s (%s) dropped in column %d", g.id, g.board.Moves(), side.Name, side.Token, column)

	outcome := g.board.Outcome()
	if !outcome.Terminal() {
		g.current = 1 - g.current
	}

	g.render()

	return outcome, nil
}

// Run plays turns until the game is won or drawn.
func (g *Game) Run() (Result, error) {
	g.render()

	for {
		outcome, err := g.Step()
		if err != nil {
			return Result{}, err
		}

		if outcome.Terminal() {
			return g.result(outcome), nil
		}
	}
}

// =============================================================================

// chooseColumn asks the side for a column and checks it against the game
// board. Policies are never trusted to respect the board.
func (g *Game) chooseColumn(side Side) (int, error) {
	for attempt := 1; attempt <= MaxAttempts; attempt++ {
		column, err := side.Policy.ChooseColumn(g.board.Clone())
		if err != nil {
			return 0, fmt.Errorf("choose column: %s: %w", side.Name, err)
		}

		full, err := g.board.IsColumnFull(column)
		switch {
		case err != nil:
			g.log("game[%s]: attempt %d: %s chose column %d: %s", g.id, attempt, side.Name, column, err)

		case full:
			g.log("game[%s]: attempt %d: %s chose column %d: %s", g.id, attempt, side.Name, column, ErrColumnFull)

		default:
			return column, nil
		}
	}

	return 0, fmt.Errorf("%s: %d attempts: %w", side.Name, MaxAttempts, ErrIllegalMove)
}

func (g *Game) render() {
	if g.display == nil {
		return
	}

	g.display.Render(g.ToBoardState())
}

func (g *Game) result(outcome Outcome) Result {
	res := Result{
		GameID:  g.id,
		Outcome: outcome,
		Moves:   append([]LastMove(nil), g.history...),
	}

	if outcome.Status == StatusWin {
		res.Winner, _ = g.Side(outcome.Winner)
	}

	g.log("game[%s]: over: %s after %d moves", g.id, outcome, len(g.history))

	return res
}
