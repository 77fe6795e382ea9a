package bot

import "math/rand"

// RandomChooser picks uniformly among the open columns.
type RandomChooser struct {
	rng *rand.Rand
}

func NewRandomChooser(seed int64) *RandomChooser {
	return &RandomChooser{rng: rand.New(rand.NewSource(seed))}
}

func (r *RandomChooser) Choose(open []int) int {
	return open[r.rng.Intn(len(open))]
}
