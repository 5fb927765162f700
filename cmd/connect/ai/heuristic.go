// Package ai provides the computer player for the game.
package ai

import (
	"errors"
	"math/rand"
	"time"

	"github.com/ardanlabs/connect4/cmd/connect/game"
)

// ErrNoMoves is returned when the board has no open column.
var ErrNoMoves = errors.New("no open column")

// preferred lists the columns from the center out.
var preferred = [...]int{4, 3, 5, 2, 6, 1, 7}

// Set of reasons a column was chosen.
const (
	ReasonWin       = "win"
	ReasonBlock     = "block"
	ReasonPreferred = "preferred"
	ReasonRandom    = "random"
)

// Heuristic plays one move ahead: win if possible, block if needed, else
// play toward the center.
type Heuristic struct {
	token game.Token
	rnd   *rand.Rand
	log   game.Logger
}

// New constructs a heuristic player for the token. A nil source is seeded
// from the clock. A nil logger discards the decision log.
func New(token game.Token, src rand.Source, log game.Logger) *Heuristic {
	if src == nil {
		src = rand.NewSource(time.Now().UnixNano())
	}

	h := Heuristic{
		token: token,
		rnd:   rand.New(src),
		log:   log,
	}

	return &h
}

// ChooseColumn implements the game.Policy interface.
func (h *Heuristic) ChooseColumn(board game.Board) (int, error) {
	pick, err := h.Decide(board)
	if err != nil {
		return 0, err
	}

	h.writeLogf("ai[%s]: column %d: %s", h.token, pick.Column, pick.Reason)

	return pick.Column, nil
}

// Decide picks the next column and reports why.
func (h *Heuristic) Decide(board game.Board) (Pick, error) {
	if column, ok := WinningMove(board, h.token); ok {
		return Pick{Column: column, Reason: ReasonWin}, nil
	}

	if column, ok := WinningMove(board, h.token.Opponent()); ok {
		return Pick{Column: column, Reason: ReasonBlock}, nil
	}

	for _, column := range preferred {
		if full, err := board.IsColumnFull(column); err == nil && !full {
			return Pick{Column: column, Reason: ReasonPreferred}, nil
		}
	}

	column, err := h.randomColumn(board)
	if err != nil {
		return Pick{}, err
	}

	return Pick{Column: column, Reason: ReasonRandom}, nil
}

// WinningMove returns the lowest column where dropping the token wins
// the game.
func WinningMove(board game.Board, token game.Token) (int, bool) {
	for column := 1; column <= game.Cols; column++ {
		test := board.Clone()
		if _, err := test.PlaceToken(token, column); err != nil {
			continue
		}

		if test.CheckForWin(token) {
			return column, true
		}
	}

	return 0, false
}

// =============================================================================

func (h *Heuristic) randomColumn(board game.Board) (int, error) {
	columns := board.ValidMoves()
	if len(columns) == 0 {
		return 0, ErrNoMoves
	}

	return columns[h.rnd.Intn(len(columns))], nil
}
