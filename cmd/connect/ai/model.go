package ai

// Pick provides the heuristic's choice for the next move.
type Pick struct {
	Column int
	Reason string
}
