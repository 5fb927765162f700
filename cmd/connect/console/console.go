// Package console provides a line oriented display and input for the game
// that works over any reader and writer.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ardanlabs/connect4/cmd/connect/game"
)

// Console renders boards as text and reads answers one line at a time.
type Console struct {
	in    *bufio.Reader
	out   io.Writer
	color bool
}

// New constructs a console over the reader and writer. With color on, X
// is drawn in red and O in blue.
func New(in io.Reader, out io.Writer, color bool) *Console {
	c := Console{
		in:    bufio.NewReader(in),
		out:   out,
		color: color,
	}

	return &c
}

// Render implements the game.Display interface.
func (c *Console) Render(state game.BoardState) {
	var b strings.Builder

	b.WriteString(" 1 2 3 4 5 6 7\n")
	for row := range game.Rows {
		b.WriteString("|")
		for col := range game.Cols {
			token := state.Cell(row, col)
			switch {
			case token.IsZero():
				b.WriteString(" |")
			default:
				b.WriteString(c.token(token) + "|")
			}
		}
		b.WriteString("\n")
	}

	if !state.LastMove.IsZero() {
		fmt.Fprintf(&b, "Last move: %s in column %d\n", c.token(state.LastMove.Token), state.LastMove.Column)
	}

	io.WriteString(c.out, b.String())
}

// ReadLine writes the prompt and returns the next line of input without
// the line ending. io.EOF is returned once the input is exhausted.
func (c *Console) ReadLine(prompt string) (string, error) {
	io.WriteString(c.out, prompt)

	line, err := c.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) || line == "" {
			return "", err
		}
	}

	return strings.TrimRight(line, "\r\n"), nil
}

// Message writes the message on its own line.
func (c *Console) Message(msg string) {
	fmt.Fprintln(c.out, msg)
}

func (c *Console) token(token game.Token) string {
	if c.color {
		return paint(token)
	}
	return token.String()
}
