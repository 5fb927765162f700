package game

// LastMove represents the last move in the game. Column is 1 based and Row
// is 0 based from the top of the board.
type LastMove struct {
	Column int
	Row    int
	Token  Token
}

// IsZero reports whether no move has been played yet.
func (lm LastMove) IsZero() bool {
	return lm.Token.IsZero()
}

// BoardState represents the state of the board for any UI to display.
type BoardState struct {
	GameID   string
	Cells    [Rows][Cols]Token
	LastMove LastMove
	Turn     Token
	Moves    int
	Outcome  Outcome
}

// Cell returns the token at the zero based row and column.
func (bs BoardState) Cell(row int, col int) Token {
	return bs.Cells[row][col]
}

// ToBoardState represents what we will hand to a display.
func (b Board) ToBoardState() BoardState {
	return BoardState{
		Cells:   b.cells,
		Moves:   b.moves,
		Outcome: b.Outcome(),
	}
}
