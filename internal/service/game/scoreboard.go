package game

import (
	"github.com/iamasit07/connect-n/internal/domain"
)

// Standing is one seat's record across the games of a single run.
type Standing struct {
	Player domain.Player
	Wins   int
	Losses int
	Ties   int
	Rating int
}

// Scoreboard lives only as long as the process. It starts over whenever the
// number of players changes.
type Scoreboard struct {
	standings []Standing
}

func NewScoreboard() *Scoreboard {
	return &Scoreboard{}
}

func (sb *Scoreboard) Record(players int, outcome domain.Outcome) {
	if len(sb.standings) != players {
		sb.reset(players)
	}

	ratings := make([]int, players)
	for i, st := range sb.standings {
		ratings[i] = st.Rating
	}

	winner := domain.NoPlayer
	if outcome.Kind == domain.OutcomeWin {
		winner = outcome.Winner
	}
	ratings = domain.UpdateRatings(ratings, winner)

	for i := range sb.standings {
		st := &sb.standings[i]
		st.Rating = ratings[i]
		switch {
		case winner == domain.NoPlayer:
			st.Ties++
		case st.Player == winner:
			st.Wins++
		default:
			st.Losses++
		}
	}
}

func (sb *Scoreboard) Standings() []Standing {
	out := make([]Standing, len(sb.standings))
	copy(out, sb.standings)
	return out
}

func (sb *Scoreboard) reset(players int) {
	sb.standings = make([]Standing, players)
	for i := range sb.standings {
		sb.standings[i] = Standing{Player: domain.Player(i), Rating: domain.InitialRating}
	}
}
