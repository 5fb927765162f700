package board

import (
	"errors"
	"strconv"

	"github.com/gdamore/tcell/v2"
)

// ErrQuit is returned when the user asks to leave the game.
var ErrQuit = errors.New("quit")

// ReadLine implements the player.Input interface. Typed characters are
// collected until enter is pressed. The arrow keys move the drop marker
// and the down key drops the piece under it.
func (b *Board) ReadLine(prompt string) (string, error) {
	b.prompt = prompt
	b.line = b.line[:0]
	b.fromMarker = false
	b.drawFooter()

	defer func() {
		b.prompt = ""
		b.line = b.line[:0]
		b.fromMarker = false
		b.message = ""
	}()

	for {
		event := b.screen.PollEvent()

		// The screen was finalized.
		if event == nil {
			return "", ErrQuit
		}

		// Check if we received a key event.
		ev, isEventKey := event.(*tcell.EventKey)
		if !isEventKey {
			continue
		}

		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return "", ErrQuit

		case tcell.KeyEnter:
			return string(b.line), nil

		case tcell.KeyDown:
			return strconv.Itoa(b.inputCol), nil

		case tcell.KeyLeft:
			b.movePlayerPiece(-1)

		case tcell.KeyRight:
			b.movePlayerPiece(1)

		case tcell.KeyBackspace, tcell.KeyBackspace2:
			if len(b.line) > 0 {
				b.line = b.line[:len(b.line)-1]
			}
			b.fromMarker = false

		case tcell.KeyRune:

			// Typing after an arrow key replaces the marker column.
			if b.fromMarker {
				b.line = b.line[:0]
				b.fromMarker = false
			}
			b.line = append(b.line, ev.Rune())

			// A typed column also moves the marker.
			if n, err := strconv.Atoi(string(ev.Rune())); err == nil && n >= 1 && n <= cols {
				b.inputCol = n
			}

		default:
			b.screen.Beep()
		}

		b.drawFooter()
	}
}

// movePlayerPiece moves the drop marker and makes its column the
// pending answer.
func (b *Board) movePlayerPiece(delta int) {
	col := b.inputCol + delta
	if col < 1 || col > cols {
		b.screen.Beep()
		return
	}

	b.inputCol = col
	b.line = []rune(strconv.Itoa(col))
	b.fromMarker = true
}
