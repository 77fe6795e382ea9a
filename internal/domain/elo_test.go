package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateElo(t *testing.T) {
	assert.Equal(t, 1216, CalculateElo(1200, 1200, 1.0))
	assert.Equal(t, 1184, CalculateElo(1200, 1200, 0.0))
	assert.Equal(t, 1200, CalculateElo(1200, 1200, 0.5))
	assert.Equal(t, 0, CalculateElo(0, 3000, 0.0))
}

func TestUpdateRatings(t *testing.T) {
	t.Run("two players", func(t *testing.T) {
		got := UpdateRatings([]int{1200, 1200}, 0)
		assert.Equal(t, []int{1216, 1184}, got)
	})

	t.Run("three players", func(t *testing.T) {
		got := UpdateRatings([]int{1200, 1200, 1200}, 2)
		assert.Equal(t, []int{1184, 1184, 1232}, got)
	})

	t.Run("tie between equals changes nothing", func(t *testing.T) {
		got := UpdateRatings([]int{1200, 1200, 1200}, NoPlayer)
		assert.Equal(t, []int{1200, 1200, 1200}, got)
	})

	t.Run("input is not modified", func(t *testing.T) {
		in := []int{1300, 1100}
		UpdateRatings(in, 1)
		assert.Equal(t, []int{1300, 1100}, in)
	})
}
