package console

import (
	"fmt"
	"strings"

	"github.com/ardanlabs/connect4/cmd/connect/game"
	"github.com/gdamore/tcell/v2"
)

// ColorMode says when tokens are drawn in color.
type ColorMode int

// Set of color modes.
const (
	ColorAuto ColorMode = iota
	ColorAlways
	ColorNever
)

// ParseColorMode parses auto, always or never.
func ParseColorMode(value string) (ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "auto":
		return ColorAuto, nil
	case "always":
		return ColorAlways, nil
	case "never":
		return ColorNever, nil
	}

	return ColorAuto, fmt.Errorf("invalid color mode %q", value)
}

// Enabled reports whether the mode colors output going to a terminal or
// not, as told by isTerminal.
func (m ColorMode) Enabled(isTerminal bool) bool {
	switch m {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}

	return isTerminal
}

// =============================================================================

var tokenColors = map[game.Token]tcell.Color{
	game.Tokens.X: tcell.ColorRed,
	game.Tokens.O: tcell.ColorBlue,
}

const reset = "\x1b[0m"

// paint wraps the token letter in a 24-bit ANSI foreground color.
func paint(token game.Token) string {
	color, exists := tokenColors[token]
	if !exists {
		return token.String()
	}

	r, g, b := color.RGB()

	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm%s%s", r, g, b, token, reset)
}
