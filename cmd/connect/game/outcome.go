package game

// Status represents where a game stands.
type Status int

// Set of game statuses. Win and Draw are terminal.
const (
	StatusInProgress Status = iota
	StatusWin
	StatusDraw
)

// String returns the name of the status.
func (s Status) String() string {
	switch s {
	case StatusWin:
		return "Win"
	case StatusDraw:
		return "Draw"
	}

	return "InProgress"
}

// Outcome is derived from the board contents and never stored.
type Outcome struct {
	Status Status
	Winner Token
}

// Terminal reports whether no more moves can be played.
func (o Outcome) Terminal() bool {
	return o.Status != StatusInProgress
}

// String describes the outcome.
func (o Outcome) String() string {
	if o.Status == StatusWin {
		return "Win(" + o.Winner.String() + ")"
	}

	return o.Status.String()
}
