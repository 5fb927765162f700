package game

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var (
	x = Tokens.X
	o = Tokens.O
)

// drop plays the columns in order, alternating the tokens starting with
// the first one.
func drop(t *testing.T, b *Board, first Token, columns ...int) {
	t.Helper()

	token := first
	for i, column := range columns {
		if _, err := b.PlaceToken(token, column); err != nil {
			t.Fatalf("move %d: column %d: %s", i, column, err)
		}
		token = token.Opponent()
	}
}

// checkGravity fails the test if any token sits above an empty cell.
func checkGravity(t *testing.T, b Board) {
	t.Helper()

	for col := range Cols {
		for row := 0; row < Rows-1; row++ {
			if !b.cells[row][col].IsZero() && b.cells[row+1][col].IsZero() {
				t.Fatalf("token floating at row %d, column %d", row, col+1)
			}
		}
	}
}

func TestPlaceTokenGravity(t *testing.T) {
	var b Board

	moves := []int{4, 4, 3, 5, 4, 1, 7, 7, 7, 2, 6, 4, 4, 3}
	token := x
	for i, column := range moves {
		row, err := b.PlaceToken(token, column)
		if err != nil {
			t.Fatalf("move %d: %s", i, err)
		}

		if got := b.cells[row][column-1]; got != token {
			t.Fatalf("move %d: expected %s at row %d, got %q", i, token, row, got)
		}

		checkGravity(t, b)
		token = token.Opponent()
	}

	if b.Moves() != len(moves) {
		t.Fatalf("expected %d moves, got %d", len(moves), b.Moves())
	}
}

func TestPlaceTokenLandsOnBottom(t *testing.T) {
	var b Board

	row, err := b.PlaceToken(x, 1)
	if err != nil {
		t.Fatalf("place: %s", err)
	}
	if row != Rows-1 {
		t.Fatalf("expected bottom row %d, got %d", Rows-1, row)
	}

	row, err = b.PlaceToken(o, 1)
	if err != nil {
		t.Fatalf("place: %s", err)
	}
	if row != Rows-2 {
		t.Fatalf("expected row %d, got %d", Rows-2, row)
	}
}

func TestPlaceTokenFullColumn(t *testing.T) {
	var b Board
	drop(t, &b, x, 2, 2, 2, 2, 2, 2)

	full, err := b.IsColumnFull(2)
	if err != nil {
		t.Fatalf("is column full: %s", err)
	}
	if !full {
		t.Fatalf("expected column 2 to be full")
	}

	before := b.ToBoardState()

	if _, err := b.PlaceToken(x, 2); !errors.Is(err, ErrColumnFull) {
		t.Fatalf("expected ErrColumnFull, got %v", err)
	}

	if diff := cmp.Diff(before, b.ToBoardState()); diff != "" {
		t.Fatalf("board changed on full column (-before +after):\n%s", diff)
	}
}

func TestColumnRange(t *testing.T) {
	var b Board

	for _, column := range []int{-1, 0, 8, 100} {
		if _, err := b.IsColumnFull(column); !errors.Is(err, ErrColumnRange) {
			t.Fatalf("IsColumnFull(%d): expected ErrColumnRange, got %v", column, err)
		}

		if _, err := b.PlaceToken(x, column); !errors.Is(err, ErrColumnRange) {
			t.Fatalf("PlaceToken(%d): expected ErrColumnRange, got %v", column, err)
		}
	}

	if b.Moves() != 0 {
		t.Fatalf("expected an empty board, got %d moves", b.Moves())
	}
}

func TestPlaceTokenZeroToken(t *testing.T) {
	var b Board

	if _, err := b.PlaceToken(Token{}, 4); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestCell(t *testing.T) {
	var b Board
	drop(t, &b, o, 7)

	token, err := b.Cell(Rows-1, Cols-1)
	if err != nil {
		t.Fatalf("cell: %s", err)
	}
	if token != o {
		t.Fatalf("expected %s, got %q", o, token)
	}

	if _, err := b.Cell(Rows, 0); !errors.Is(err, ErrCellRange) {
		t.Fatalf("expected ErrCellRange, got %v", err)
	}
}

func TestCheckForWin(t *testing.T) {
	tests := []struct {
		name   string
		first  Token
		moves  []int
		winner Token
	}{
		{
			name:   "horizontal",
			first:  x,
			moves:  []int{1, 1, 2, 2, 3, 3, 4},
			winner: x,
		},
		{
			name:   "vertical",
			first:  o,
			moves:  []int{1, 2, 1, 2, 1, 2, 1},
			winner: o,
		},
		{
			// X climbs from column 1 to 4 towards the top right.
			name:   "diagonal up",
			first:  x,
			moves:  []int{1, 2, 2, 3, 3, 4, 3, 4, 4, 7, 4},
			winner: x,
		},
		{
			// X climbs from column 4 to 1 towards the top left.
			name:   "diagonal down",
			first:  x,
			moves:  []int{4, 3, 3, 2, 2, 1, 2, 1, 1, 7, 1},
			winner: x,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b Board

			last := len(tt.moves) - 1
			drop(t, &b, tt.first, tt.moves[:last]...)

			if b.CheckForWin(tt.winner) {
				t.Fatalf("win reported one move early")
			}

			if _, err := b.PlaceToken(tt.winner, tt.moves[last]); err != nil {
				t.Fatalf("winning move: %s", err)
			}

			if !b.CheckForWin(tt.winner) {
				t.Fatalf("expected a win for %s", tt.winner)
			}

			if b.CheckForWin(tt.winner.Opponent()) {
				t.Fatalf("unexpected win for %s", tt.winner.Opponent())
			}

			want := Outcome{Status: StatusWin, Winner: tt.winner}
			if diff := cmp.Diff(want, b.Outcome()); diff != "" {
				t.Fatalf("outcome mismatch (-want +got):\n%s", diff)
			}

			checkGravity(t, b)
		})
	}
}

func TestCheckForWinZeroToken(t *testing.T) {
	var b Board

	if b.CheckForWin(Token{}) {
		t.Fatalf("empty cells must never win")
	}
}

// drawBoard fills every cell with no four in a row. Columns alternate
// between XXOOXX and OOXXOO from the top.
func drawBoard() Board {
	a := [Rows]Token{x, x, o, o, x, x}
	c := [Rows]Token{o, o, x, x, o, o}
	pattern := [Cols][Rows]Token{a, c, a, c, a, c, a}

	var b Board
	for col := range Cols {
		for row := range Rows {
			b.cells[row][col] = pattern[col][row]
		}
	}
	b.moves = Rows * Cols

	return b
}

func TestIsDraw(t *testing.T) {
	b := drawBoard()

	checkGravity(t, b)

	if !b.IsFull() {
		t.Fatalf("expected a full board")
	}

	if b.CheckForWin(x) || b.CheckForWin(o) {
		t.Fatalf("expected no winner")
	}

	if !b.IsDraw() {
		t.Fatalf("expected a draw")
	}

	if got := b.Outcome(); got.Status != StatusDraw {
		t.Fatalf("expected a draw outcome, got %s", got)
	}

	if moves := b.ValidMoves(); len(moves) != 0 {
		t.Fatalf("expected no valid moves, got %v", moves)
	}
}

func TestIsDrawNotFull(t *testing.T) {
	var b Board
	drop(t, &b, x, 1, 2, 3)

	if b.IsDraw() {
		t.Fatalf("a board with empty cells is not a draw")
	}

	if got := b.Outcome(); got.Terminal() {
		t.Fatalf("expected the game in progress, got %s", got)
	}
}

func TestCloneIsolation(t *testing.T) {
	var b Board
	drop(t, &b, x, 4, 4, 3)

	before := b.ToBoardState()

	clone := b.Clone()
	for column := 1; column <= Cols; column++ {
		clone.PlaceToken(o, column)
		clone.PlaceToken(x, column)
	}

	if diff := cmp.Diff(before, b.ToBoardState()); diff != "" {
		t.Fatalf("original board changed (-before +after):\n%s", diff)
	}

	if clone.Moves() == b.Moves() {
		t.Fatalf("expected the clone to move on")
	}
}

func TestValidMoves(t *testing.T) {
	var b Board
	drop(t, &b, x, 3, 3, 3, 3, 3, 3)

	want := []int{1, 2, 4, 5, 6, 7}
	if diff := cmp.Diff(want, b.ValidMoves()); diff != "" {
		t.Fatalf("valid moves mismatch (-want +got):\n%s", diff)
	}
}
