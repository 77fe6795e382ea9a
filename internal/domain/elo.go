package domain

import "math"

const (
	KFactor       = 32.0
	InitialRating = 1200
)

// CalculateElo returns the new rating for player A.
// score is 1.0 for a win, 0.5 for a draw, and 0.0 for a loss.
func CalculateElo(ratingA, ratingB int, score float64) int {
	expectedScoreA := 1.0 / (1.0 + math.Pow(10.0, float64(ratingB-ratingA)/400.0))
	newRating := float64(ratingA) + KFactor*(score-expectedScoreA)

	if newRating < 0 {
		return 0
	}
	return int(math.Round(newRating))
}

// UpdateRatings settles a finished game between any number of players as a
// set of pairwise matches. The winner beat everyone else, and the losers drew
// among themselves. With NoPlayer as winner every pair drew.
func UpdateRatings(ratings []int, winner Player) []int {
	updated := make([]int, len(ratings))
	for i := range ratings {
		delta := 0
		for j := range ratings {
			if i == j {
				continue
			}
			score := 0.5
			switch winner {
			case Player(i):
				score = 1.0
			case Player(j):
				score = 0.0
			}
			delta += CalculateElo(ratings[i], ratings[j], score) - ratings[i]
		}
		updated[i] = max(0, ratings[i]+delta)
	}
	return updated
}
