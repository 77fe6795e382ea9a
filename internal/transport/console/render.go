package console

import (
	"fmt"
	"strings"

	"github.com/iamasit07/connect-n/internal/domain"
	"github.com/iamasit07/connect-n/internal/service/game"
)

// Renderer draws a snapshot as the classic bracketed text grid.
type Renderer struct {
	tokens []rune
}

func NewRenderer(tokens []rune) *Renderer {
	return &Renderer{tokens: tokens}
}

func (r *Renderer) Token(player domain.Player) rune {
	if player < 0 || int(player) >= len(r.tokens) {
		return '?'
	}
	return r.tokens[player]
}

func (r *Renderer) Render(snap domain.Snapshot) string {
	var sb strings.Builder

	for col := 1; col <= snap.Cols; col++ {
		fmt.Fprintf(&sb, "._%d_.", col)
	}
	sb.WriteString("\n")

	for _, row := range snap.Board {
		for _, cell := range row {
			if cell == domain.NoPlayer {
				sb.WriteString("[   ]")
			} else {
				fmt.Fprintf(&sb, "[ %c ]", r.Token(cell))
			}
		}
		sb.WriteString("\n")
	}

	switch {
	case snap.GameOver && snap.Winner == domain.NoPlayer:
		sb.WriteString("\nThe board's full, it's a tie!\n")
	case snap.GameOver:
		// the turn counter does not move on a winning placement
		fmt.Fprintf(&sb, "\n%c won on turn %d!\n", r.Token(snap.Winner), snap.TurnCount+1)
	default:
		fmt.Fprintf(&sb, "\nTurn %d, %c to move.\n", snap.TurnCount+1, r.Token(snap.CurrentPlayer))
	}

	return sb.String()
}

// RenderStandings lists each player's record for this run.
func (r *Renderer) RenderStandings(standings []game.Standing) string {
	var sb strings.Builder
	sb.WriteString("\nScores this session:\n")
	for _, st := range standings {
		fmt.Fprintf(&sb, "  %c  %d won, %d lost, %d tied, rating %d\n",
			r.Token(st.Player), st.Wins, st.Losses, st.Ties, st.Rating)
	}
	return sb.String()
}
