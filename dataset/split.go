package dataset

import (
	"math"
	"math/rand"

	"github.com/pkg/errors"
)

// Shuffle permutes samples in place
func Shuffle(samples []Sample, rng *rand.Rand) {
	rng.Shuffle(len(samples), func(i, j int) {
		samples[i], samples[j] = samples[j], samples[i]
	})
}

// classGroups lists the sample indices per class. Classes appear in the
// order they are first seen; perm[start[i]:start[i]+count[i]] are the
// indices of class label[i].
type classGroups struct {
	label []int
	start []int
	count []int
	perm  []int
}

func groupClasses(samples []Sample) *classGroups {
	var label, count []int
	dataLabel := make([]int, len(samples))

	for i, s := range samples {
		thisLabel := s.Class()
		j := 0
		for ; j < len(label); j++ {
			if label[j] == thisLabel {
				count[j]++
				break
			}
		}
		dataLabel[i] = j
		if j == len(label) {
			label = append(label, thisLabel)
			count = append(count, 1)
		}
	}

	start := make([]int, len(label))
	for i := 1; i < len(label); i++ {
		start[i] = start[i-1] + count[i-1]
	}

	next := make([]int, len(label))
	copy(next, start)
	perm := make([]int, len(samples))
	for i := range samples {
		perm[next[dataLabel[i]]] = i
		next[dataLabel[i]]++
	}

	return &classGroups{label: label, start: start, count: count, perm: perm}
}

// StratifiedSplit splits samples into a train and a test set, holding out
// round(count * testRatio) samples of every class. Both sets are shuffled.
func StratifiedSplit(samples []Sample, testRatio float64, rng *rand.Rand) (train []Sample, test []Sample, err error) {
	if testRatio <= 0 || testRatio >= 1 {
		return nil, nil, errors.Errorf("test ratio must be in (0, 1), got %g", testRatio)
	}

	groups := groupClasses(samples)
	for i := range groups.label {
		idx := groups.perm[groups.start[i] : groups.start[i]+groups.count[i]]
		rng.Shuffle(len(idx), func(a, b int) {
			idx[a], idx[b] = idx[b], idx[a]
		})

		nTest := int(math.Round(float64(len(idx)) * testRatio))
		for k, j := range idx {
			if k < nTest {
				test = append(test, samples[j])
			} else {
				train = append(train, samples[j])
			}
		}
	}

	if len(train) == 0 || len(test) == 0 {
		return nil, nil, errors.Errorf("%d samples are too few to split with test ratio %g", len(samples), testRatio)
	}

	Shuffle(train, rng)
	Shuffle(test, rng)
	return train, test, nil
}
