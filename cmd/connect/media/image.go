// Package media produces pictures and speech for finished games.
package media

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ardanlabs/connect4/cmd/connect/game"
	"github.com/fogleman/gg"
)

// Image dimensions for a board snapshot.
const (
	Width  = 190
	Height = 165
)

// RenderPNG draws the board as a PNG image.
func RenderPNG(state game.BoardState) ([]byte, error) {
	y := float64(20)
	gap := float64(25)

	dc := gg.NewContext(Width, Height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	for row := range game.Rows {
		x := float64(20)

		for col := range game.Cols {
			switch state.Cell(row, col) {
			case game.Tokens.X:
				dc.SetRGB(1, 0, 0)
			case game.Tokens.O:
				dc.SetRGB(0, 0, 1)
			default:
				dc.SetRGB(0.85, 0.85, 0.85)
			}

			dc.DrawCircle(x, y, 10)
			dc.Fill()

			x += gap
		}

		y += gap
	}

	var b bytes.Buffer
	if err := dc.EncodePNG(&b); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}

	return b.Bytes(), nil
}

// SaveSnapshot writes the board image into the directory, named after the
// game id, and returns the file name.
func SaveSnapshot(dir string, state game.BoardState) (string, error) {
	data, err := RenderPNG(state)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("snapshot dir: %w", err)
	}

	fileName := filepath.Join(dir, state.GameID+".png")
	if err := os.WriteFile(fileName, data, 0644); err != nil {
		return "", fmt.Errorf("write snapshot: %w", err)
	}

	return fileName, nil
}
