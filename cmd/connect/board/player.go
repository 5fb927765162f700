package board

import "github.com/ardanlabs/connect4/cmd/connect/game"

// glyphs maps each token to the piece drawn for it.
var glyphs = map[game.Token]string{
	game.Tokens.X: "🔴",
	game.Tokens.O: "🔵",
}

func glyph(token game.Token) string {
	if g, exists := glyphs[token]; exists {
		return g
	}

	return " "
}
