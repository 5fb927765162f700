// Package board handles the terminal game board and all interactions.
package board

import (
	"fmt"

	"github.com/ardanlabs/connect4/cmd/connect/game"
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

const (
	rows        = game.Rows
	cols        = game.Cols
	cellWidth   = 5
	cellHeight  = 2
	boardWidth  = cols*cellWidth + 1
	boardHeight = rows * cellHeight
	padTop      = 4
	padLeft     = 1
)

const (
	hozTopRune = '━'
	hozBotRune = '▅'
	verRune    = '┃'
	space      = 32
)

// Lines below the board used for input and feedback.
const (
	numbersLine = boardHeight + padTop + 1
	messageLine = numbersLine + 2
	promptLine  = messageLine + 1
)

// Board represents the terminal display and keyboard input.
type Board struct {
	screen     tcell.Screen
	style      tcell.Style
	state      game.BoardState
	inputCol   int
	line       []rune
	fromMarker bool
	prompt     string
	message    string
}

// New constructs a terminal board on the real screen.
func New() (*Board, error) {
	tcell.SetEncodingFallback(tcell.EncodingFallbackASCII)

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("new screen: %w", err)
	}

	return NewWithScreen(screen)
}

// NewWithScreen constructs a terminal board on the specified screen.
func NewWithScreen(screen tcell.Screen) (*Board, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("screen init: %w", err)
	}

	style := tcell.StyleDefault
	style = style.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)

	board := Board{
		screen:   screen,
		style:    style,
		inputCol: 4,
	}

	board.drawInit()

	return &board, nil
}

// Shutdown tears down the game board.
func (b *Board) Shutdown() {
	b.screen.Fini()
}

// Render implements the game.Display interface.
func (b *Board) Render(state game.BoardState) {
	b.state = state
	b.drawInit()
}

// Message implements the player.Input interface.
func (b *Board) Message(msg string) {
	b.message = msg
	b.drawFooter()
}

// =============================================================================

func (b *Board) drawInit() {
	b.drawEmptyGameBoard()
	b.applyBoardState()
	b.drawFooter()
}

func (b *Board) drawEmptyGameBoard() {
	b.screen.Clear()

	style := b.style
	style = style.Background(tcell.ColorBlack).Foreground(tcell.ColorGrey)

	for h := 0; h <= boardHeight; h++ {
		for w := 0; w < boardWidth; w++ {

			// Clear the entire line.
			b.screen.SetContent(w+padLeft, h+padTop, space, nil, style)

			if h%cellHeight == 0 {

				// These are the '━' characters creating each row.
				b.screen.SetContent(w+padLeft, h+padTop, hozTopRune, nil, style)

				if h == boardHeight {

					// These are the '▅' characters creating the bottom row.
					b.screen.SetContent(w+padLeft, h+padTop, hozBotRune, nil, style)
				}
			}

			if w%cellWidth == 0 {

				// These are the '┃' characters creating each column.
				b.screen.SetContent(w+padLeft, h+padTop, verRune, nil, style)
			}
		}
	}

	b.print(10, 1, "Connect 4")
	b.print(boardWidth+3, padTop-1, "<←/→> move   <↓> drop   <esc> quit")
}

func (b *Board) applyBoardState() {
	for row := range rows {
		for col := range cols {
			token := b.state.Cell(row, col)
			if token.IsZero() {
				continue
			}

			b.print(cellX(col), cellY(row), glyph(token))
		}
	}

	// Column numbers, with the last move highlighted.
	for col := range cols {
		style := b.style
		if lm := b.state.LastMove; !lm.IsZero() && lm.Column == col+1 {
			style = style.Foreground(tcell.ColorYellow).Bold(true)
		}
		b.printStyle(cellX(col), numbersLine, fmt.Sprintf("%d", col+1), style)
	}

	var status string
	switch outcome := b.state.Outcome; outcome.Status {
	case game.StatusWin:
		status = fmt.Sprintf("Winner: %s %s", glyph(outcome.Winner), outcome.Winner)
	case game.StatusDraw:
		status = "It's a draw"
	default:
		if !b.state.Turn.IsZero() {
			status = fmt.Sprintf("Turn:   %s %s", glyph(b.state.Turn), b.state.Turn)
		}
	}
	b.print(boardWidth+3, padTop+1, status)

	if lm := b.state.LastMove; !lm.IsZero() {
		b.print(boardWidth+3, padTop+3, fmt.Sprintf("Last move: %s in column %d", lm.Token, lm.Column))
	}

	b.print(boardWidth+3, padTop+5, fmt.Sprintf("Moves: %d", b.state.Moves))
}

// drawFooter redraws the marker, message and prompt lines.
func (b *Board) drawFooter() {
	b.clearLine(padTop - 1)
	if !b.state.Outcome.Terminal() && !b.state.Turn.IsZero() {
		b.print(cellX(b.inputCol-1), padTop-1, glyph(b.state.Turn))
	}
	b.print(boardWidth+3, padTop-1, "<←/→> move   <↓> drop   <esc> quit")

	b.clearLine(messageLine)
	b.print(padLeft, messageLine, b.message)

	b.clearLine(promptLine)
	b.print(padLeft, promptLine, b.prompt+string(b.line))
}

func (b *Board) clearLine(y int) {
	width, _ := b.screen.Size()
	for x := range width {
		b.screen.SetContent(x, y, space, nil, b.style)
	}
}

func (b *Board) print(x, y int, str string) {
	b.printStyle(x, y, str, b.style)
}

func (b *Board) printStyle(x, y int, str string, style tcell.Style) {
	for _, c := range str {
		var comb []rune
		w := runewidth.RuneWidth(c)
		if w == 0 {
			comb = []rune{c}
			c = ' '
			w = 1
		}
		b.screen.SetContent(x, y, c, comb, style)
		x += w
	}
	b.screen.Show()
}

// cellX returns the screen column for the zero based board column.
func cellX(col int) int {
	return padLeft + 2 + cellWidth*col
}

// cellY returns the screen row for the zero based board row.
func cellY(row int) int {
	return padTop + 1 + cellHeight*row
}
