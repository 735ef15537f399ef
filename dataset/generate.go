package dataset

import (
	"math"
	"math/rand"
)

// Generate returns n synthetic samples, half of them alcoholic (rounded
// down), in random order
func Generate(n int, rng *rand.Rand) []Sample {
	numAlcoholic := n / 2
	samples := make([]Sample, 0, n)

	for i := 0; i < numAlcoholic; i++ {
		samples = append(samples, Sample{
			DrinksPerSession:       float64(rng.Intn(8) + 5),
			TimesDrunkPerMonth:     float64(rng.Intn(20) + 10),
			AvgAlcoholContent:      round(rng.Float64()*0.1+0.10, 2),
			ThoughtsPerDay:         float64(rng.Intn(15) + 8),
			SessionDurationHours:   round(rng.Float64()*4+3, 1),
			MorningDrinkingPerWeek: float64(rng.Intn(6) + 2),
			Label:                  LabelAlcoholic,
		})
	}

	for i := numAlcoholic; i < n; i++ {
		samples = append(samples, Sample{
			DrinksPerSession:       float64(rng.Intn(4) + 1),
			TimesDrunkPerMonth:     float64(rng.Intn(5)),
			AvgAlcoholContent:      round(rng.Float64()*0.08+0.04, 2),
			ThoughtsPerDay:         float64(rng.Intn(4)),
			SessionDurationHours:   round(rng.Float64()*2.5+1, 1),
			MorningDrinkingPerWeek: float64(rng.Intn(2)),
			Label:                  LabelNonAlcoholic,
		})
	}

	Shuffle(samples, rng)
	return samples
}

func round(val float64, places int) float64 {
	pow := math.Pow(10, float64(places))
	return math.Round(val*pow) / pow
}
