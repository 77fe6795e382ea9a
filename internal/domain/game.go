package domain

import "github.com/pkg/errors"

type Game struct {
	board       Board
	rows        int
	cols        int
	playerCount int
	current     Player
	turnCount   int
	winLength   int
	winner      Player
	gameOver    bool
}

// NewGame does not validate its arguments. Callers guarantee every value is
// at least 1 and that winLength <= min(rows, cols).
func NewGame(rows, cols, playerCount, winLength int) *Game {
	return &Game{
		board:       NewBoard(rows, cols),
		rows:        rows,
		cols:        cols,
		playerCount: playerCount,
		current:     0,
		turnCount:   0,
		winLength:   winLength,
		winner:      NoPlayer,
		gameOver:    false,
	}
}

// PlaceToken drops a token for the current player into the 1-based column.
// A failed placement leaves the game untouched.
func (g *Game) PlaceToken(column int) (Outcome, error) {
	if g.gameOver {
		return Outcome{}, errors.Wrapf(ErrGameAlreadyOver, "column %d", column)
	}

	if column < 1 || column > g.cols {
		return Outcome{}, errors.Wrapf(ErrInvalidColumn, "column %d outside 1-%d", column, g.cols)
	}

	row, err := g.board.DropDisk(column-1, g.current)
	if err != nil {
		return Outcome{}, errors.Wrapf(err, "column %d", column)
	}

	if CheckWin(g.board, row, column-1, g.current, g.winLength) {
		g.winner = g.current
		g.gameOver = true
		return Outcome{
			Kind:   OutcomeWin,
			Winner: g.current,
			Turn:   g.turnCount + 1,
			Row:    row,
			Column: column,
		}, nil
	}

	if g.nextTurn() >= g.rows*g.cols {
		g.gameOver = true
		return Outcome{Kind: OutcomeTie, Winner: NoPlayer, Row: row, Column: column}, nil
	}

	return Outcome{Kind: OutcomeContinue, Winner: NoPlayer, Row: row, Column: column}, nil
}

// nextTurn rotates to the next player and returns the new turn count.
func (g *Game) nextTurn() int {
	g.current = Player((int(g.current) + 1) % g.playerCount)
	g.turnCount++
	return g.turnCount
}

func (g *Game) CurrentPlayer() Player {
	return g.current
}

func (g *Game) TurnCount() int {
	return g.turnCount
}

func (g *Game) Winner() Player {
	return g.winner
}

func (g *Game) IsFinished() bool {
	return g.gameOver
}

// Snapshot is a read-only copy of everything a view needs to draw the game.
type Snapshot struct {
	Rows          int
	Cols          int
	PlayerCount   int
	WinLength     int
	Board         Board
	CurrentPlayer Player
	TurnCount     int
	Winner        Player
	GameOver      bool
}

func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Rows:          g.rows,
		Cols:          g.cols,
		PlayerCount:   g.playerCount,
		WinLength:     g.winLength,
		Board:         g.board.Copy(),
		CurrentPlayer: g.current,
		TurnCount:     g.turnCount,
		Winner:        g.winner,
		GameOver:      g.gameOver,
	}
}
