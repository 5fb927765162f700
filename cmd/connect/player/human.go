// Package player provides the interactive policy that asks a person for
// each move.
package player

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ardanlabs/connect4/cmd/connect/game"
)

// Set of messages shown when a selection is rejected.
const (
	msgInvalid = "Invalid input. Please enter a number between 1 and 7."
	msgFull    = "Column is full. Choose another column."
)

// Input supplies raw lines of text from a person and shows them messages.
type Input interface {
	ReadLine(prompt string) (string, error)
	Message(msg string)
}

// Interactive asks the input for a column until it names a legal move.
type Interactive struct {
	prompt string
	input  Input
}

// NewInteractive constructs an interactive policy for the named side.
func NewInteractive(name string, token game.Token, input Input) *Interactive {
	h := Interactive{
		prompt: fmt.Sprintf("%s's turn (%s): ", name, token),
		input:  input,
	}

	return &h
}

// ChooseColumn implements the game.Policy interface. Only errors from the
// input are returned, bad selections are asked for again.
func (h *Interactive) ChooseColumn(board game.Board) (int, error) {
	for {
		line, err := h.input.ReadLine(h.prompt)
		if err != nil {
			return 0, fmt.Errorf("read line: %w", err)
		}

		column, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			h.input.Message(msgInvalid)
			continue
		}

		full, err := board.IsColumnFull(column)
		switch {
		case err != nil:
			h.input.Message(msgInvalid)

		case full:
			h.input.Message(msgFull)

		default:
			return column, nil
		}
	}
}
