package dataset

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateBalance(t *testing.T) {
	rng := rand.New(rand.NewSource(0))

	assert.Equal(t, 25, CountPositives(Generate(50, rng)))
	assert.Equal(t, 3, CountPositives(Generate(7, rng)))
	assert.Len(t, Generate(7, rng), 7)
	assert.Empty(t, Generate(0, rng))
}

func TestGenerateRanges(t *testing.T) {
	for _, s := range Generate(500, rand.New(rand.NewSource(9))) {
		if s.Class() == 1 {
			assert.True(t, s.DrinksPerSession >= 5 && s.DrinksPerSession <= 12)
			assert.True(t, s.TimesDrunkPerMonth >= 10 && s.TimesDrunkPerMonth <= 29)
			assert.True(t, s.AvgAlcoholContent >= 0.10 && s.AvgAlcoholContent <= 0.20)
			assert.True(t, s.ThoughtsPerDay >= 8 && s.ThoughtsPerDay <= 22)
			assert.True(t, s.SessionDurationHours >= 3 && s.SessionDurationHours <= 7)
			assert.True(t, s.MorningDrinkingPerWeek >= 2 && s.MorningDrinkingPerWeek <= 7)
		} else {
			assert.Equal(t, LabelNonAlcoholic, s.Label)
			assert.True(t, s.DrinksPerSession >= 1 && s.DrinksPerSession <= 4)
			assert.True(t, s.TimesDrunkPerMonth >= 0 && s.TimesDrunkPerMonth <= 4)
			assert.True(t, s.AvgAlcoholContent >= 0.04 && s.AvgAlcoholContent <= 0.12)
			assert.True(t, s.ThoughtsPerDay >= 0 && s.ThoughtsPerDay <= 3)
			assert.True(t, s.SessionDurationHours >= 1 && s.SessionDurationHours <= 3.5)
			assert.True(t, s.MorningDrinkingPerWeek >= 0 && s.MorningDrinkingPerWeek <= 1)
		}
	}
}

func TestRound(t *testing.T) {
	assert.Equal(t, 0.15, round(0.1549, 2))
	assert.Equal(t, 3.5, round(3.46, 1))
}
