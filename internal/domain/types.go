package domain

// Player is an index into the configured set of players, 0..playerCount-1.
type Player int

// NoPlayer marks an empty cell and a game without a winner.
const NoPlayer Player = -1

// Board holds the grid, row 0 is the top and row rows-1 is the bottom.
type Board [][]Player

// to represent what a placement did to the game
type OutcomeKind string

const (
	OutcomeContinue OutcomeKind = "continue"
	OutcomeWin      OutcomeKind = "win"
	OutcomeTie      OutcomeKind = "tie"
)

// Outcome is returned by a successful placement.
type Outcome struct {
	Kind   OutcomeKind
	Winner Player // NoPlayer unless Kind is OutcomeWin
	Turn   int    // 1-based turn of the win, 0 otherwise
	Row    int    // 0-based row the token landed in
	Column int    // 1-based column the token was dropped into
}

// Ended reports whether the placement finished the game.
func (o Outcome) Ended() bool {
	return o.Kind == OutcomeWin || o.Kind == OutcomeTie
}

// basic errors that can occur while placing a token
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrInvalidColumn   Error = "invalid column"
	ErrColumnFull      Error = "column is full"
	ErrGameAlreadyOver Error = "game is already over"
)
