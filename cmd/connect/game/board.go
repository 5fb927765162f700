// Package game maintains the connect 4 board, its rules and the turn loop.
package game

import "errors"

// Board dimensions. Row 0 is the top of the board.
const (
	Rows  = 6
	Cols  = 7
	toWin = 4
)

// Set of errors returned by board operations.
var (
	ErrColumnRange  = errors.New("column out of range")
	ErrColumnFull   = errors.New("column is full")
	ErrInvalidToken = errors.New("invalid token")
	ErrCellRange    = errors.New("cell out of range")
)

// Board represents the game board and all its state. The zero value is an
// empty board ready for use.
type Board struct {
	cells [Rows][Cols]Token
	moves int
}

// NewBoard constructs an empty board.
func NewBoard() Board {
	return Board{}
}

// Clone returns a deep copy of the board that can be changed without
// affecting the original.
func (b Board) Clone() Board {
	return b
}

// Moves returns the number of tokens on the board.
func (b Board) Moves() int {
	return b.moves
}

// Cell returns the token at the specified row and column. Both are zero
// based and row 0 is the top of the board. An empty cell is the zero token.
func (b Board) Cell(row int, col int) (Token, error) {
	if row < 0 || row >= Rows || col < 0 || col >= Cols {
		return Token{}, ErrCellRange
	}

	return b.cells[row][col], nil
}

// IsColumnFull reports whether the top cell of the specified column is
// occupied. Columns are numbered 1 through 7.
func (b Board) IsColumnFull(column int) (bool, error) {
	if err := validColumn(column); err != nil {
		return false, err
	}

	return !b.cells[0][column-1].IsZero(), nil
}

// PlaceToken drops the token into the specified column and returns the
// zero based row it landed in. The board is not changed when an error is
// returned.
func (b *Board) PlaceToken(token Token, column int) (int, error) {
	if err := validColumn(column); err != nil {
		return -1, err
	}

	if token.IsZero() {
		return -1, ErrInvalidToken
	}

	// Walk the column from the bottom up.
	col := column - 1
	for row := Rows - 1; row >= 0; row-- {
		if b.cells[row][col].IsZero() {
			b.cells[row][col] = token
			b.moves++
			return row, nil
		}
	}

	return -1, ErrColumnFull
}

// ValidMoves returns the columns that can still accept a token, in order.
func (b Board) ValidMoves() []int {
	var columns []int
	for col := range Cols {
		if b.cells[0][col].IsZero() {
			columns = append(columns, col+1)
		}
	}

	return columns
}

// IsFull reports whether every cell on the board is occupied.
func (b Board) IsFull() bool {
	for col := range Cols {
		if b.cells[0][col].IsZero() {
			return false
		}
	}

	return true
}

// CheckForWin reports whether the token has four in a row anywhere on
// the board.
func (b Board) CheckForWin(token Token) bool {
	if token.IsZero() {
		return false
	}

	// -------------------------------------------------------------------------
	// Horizontal

	for row := 0; row < Rows; row++ {
		for col := 0; col <= Cols-toWin; col++ {
			if b.line(token, row, col, 0, 1) {
				return true
			}
		}
	}

	// -------------------------------------------------------------------------
	// Vertical

	for row := 0; row <= Rows-toWin; row++ {
		for col := 0; col < Cols; col++ {
			if b.line(token, row, col, 1, 0) {
				return true
			}
		}
	}

	// -------------------------------------------------------------------------
	// SW to NE line, starting from the bottom-left end.

	for row := toWin - 1; row < Rows; row++ {
		for col := 0; col <= Cols-toWin; col++ {
			if b.line(token, row, col, -1, 1) {
				return true
			}
		}
	}

	// -------------------------------------------------------------------------
	// NW to SE line, starting from the top-left end.

	for row := 0; row <= Rows-toWin; row++ {
		for col := 0; col <= Cols-toWin; col++ {
			if b.line(token, row, col, 1, 1) {
				return true
			}
		}
	}

	return false
}

// IsDraw reports whether the board is full and neither token has won.
func (b Board) IsDraw() bool {
	if !b.IsFull() {
		return false
	}

	return !b.CheckForWin(Tokens.X) && !b.CheckForWin(Tokens.O)
}

// Outcome computes the state of the game from the board contents.
func (b Board) Outcome() Outcome {
	switch {
	case b.CheckForWin(Tokens.X):
		return Outcome{Status: StatusWin, Winner: Tokens.X}
	case b.CheckForWin(Tokens.O):
		return Outcome{Status: StatusWin, Winner: Tokens.O}
	case b.IsFull():
		return Outcome{Status: StatusDraw}
	}

	return Outcome{Status: StatusInProgress}
}

// =============================================================================

// line checks the four cells starting at row, col and stepping by the
// deltas. The caller guarantees the window is on the board.
func (b Board) line(token Token, row int, col int, deltaRow int, deltaCol int) bool {
	for i := range toWin {
		if b.cells[row+i*deltaRow][col+i*deltaCol] != token {
			return false
		}
	}

	return true
}

func validColumn(column int) error {
	if column < 1 || column > Cols {
		return ErrColumnRange
	}

	return nil
}
