package dataset

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupClasses(t *testing.T) {
	samples := []Sample{
		{Label: LabelNonAlcoholic},
		{Label: LabelAlcoholic},
		{Label: LabelNonAlcoholic},
		{Label: LabelAlcoholic},
		{Label: LabelNonAlcoholic},
	}

	groups := groupClasses(samples)
	assert.Equal(t, []int{0, 1}, groups.label)
	assert.Equal(t, []int{0, 3}, groups.start)
	assert.Equal(t, []int{3, 2}, groups.count)
	assert.Equal(t, []int{0, 2, 4, 1, 3}, groups.perm)
}

func TestStratifiedSplit(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	samples := Generate(100, rng)
	for i := range samples {
		// tag every sample so the partition can be checked
		samples[i].ThoughtsPerDay = float64(i)
	}

	train, test, err := StratifiedSplit(samples, 0.3, rng)
	require.NoError(t, err)
	assert.Len(t, train, 70)
	assert.Len(t, test, 30)
	assert.Equal(t, 35, CountPositives(train))
	assert.Equal(t, 15, CountPositives(test))

	var seen []int
	for _, s := range append(append([]Sample{}, train...), test...) {
		seen = append(seen, int(s.ThoughtsPerDay))
	}
	sort.Ints(seen)
	for i := range seen {
		assert.Equal(t, i, seen[i])
	}
}

func TestStratifiedSplitUnevenClasses(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	var samples []Sample
	for i := 0; i < 10; i++ {
		samples = append(samples, Sample{Label: LabelAlcoholic})
	}
	for i := 0; i < 30; i++ {
		samples = append(samples, Sample{Label: LabelNonAlcoholic})
	}

	train, test, err := StratifiedSplit(samples, 0.3, rng)
	require.NoError(t, err)
	assert.Equal(t, 3, CountPositives(test))
	assert.Len(t, test, 12)
	assert.Equal(t, 7, CountPositives(train))
	assert.Len(t, train, 28)
}

func TestStratifiedSplitRejectsBadInput(t *testing.T) {
	rng := rand.New(rand.NewSource(0))
	samples := Generate(10, rng)

	_, _, err := StratifiedSplit(samples, 0, rng)
	assert.Error(t, err)
	_, _, err = StratifiedSplit(samples, 1, rng)
	assert.Error(t, err)
	_, _, err = StratifiedSplit(samples[:1], 0.3, rng)
	assert.Error(t, err)
	_, _, err = StratifiedSplit(nil, 0.3, rng)
	assert.Error(t, err)
}

func TestShuffleKeepsSamples(t *testing.T) {
	samples := Generate(20, rand.New(rand.NewSource(2)))
	shuffled := append([]Sample{}, samples...)
	Shuffle(shuffled, rand.New(rand.NewSource(3)))

	assert.ElementsMatch(t, samples, shuffled)
}
