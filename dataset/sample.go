package dataset

import (
	"io"
	"os"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/pkg/errors"
)

// Labels used in the label column
const (
	LabelAlcoholic    = "alcoholic"
	LabelNonAlcoholic = "non-alcoholic"
)

// Sample is one row of the drinking habits dataset
type Sample struct {
	DrinksPerSession       float64 `csv:"drinks_per_session"`
	TimesDrunkPerMonth     float64 `csv:"times_drunk_per_month"`
	AvgAlcoholContent      float64 `csv:"avg_alcohol_content"`
	ThoughtsPerDay         float64 `csv:"thoughts_per_day"`
	SessionDurationHours   float64 `csv:"session_duration_hours"`
	MorningDrinkingPerWeek float64 `csv:"morning_drinking_per_week"`
	Label                  string  `csv:"label"`
}

// NewSample builds a Sample from a feature vector in model order
func NewSample(x []float64, label string) (Sample, error) {
	if len(x) != 6 {
		return Sample{}, errors.Errorf("sample needs 6 features, got %d", len(x))
	}
	return Sample{
		DrinksPerSession:       x[0],
		TimesDrunkPerMonth:     x[1],
		AvgAlcoholContent:      x[2],
		ThoughtsPerDay:         x[3],
		SessionDurationHours:   x[4],
		MorningDrinkingPerWeek: x[5],
		Label:                  label,
	}, nil
}

// Features returns the feature vector in model order
func (s Sample) Features() []float64 {
	return []float64{
		s.DrinksPerSession,
		s.TimesDrunkPerMonth,
		s.AvgAlcoholContent,
		s.ThoughtsPerDay,
		s.SessionDurationHours,
		s.MorningDrinkingPerWeek,
	}
}

// Class maps the label to 1 for "alcoholic" and 0 for anything else
func (s Sample) Class() int {
	if strings.EqualFold(strings.TrimSpace(s.Label), LabelAlcoholic) {
		return 1
	}
	return 0
}

// ToProblem splits samples into a feature matrix and a label vector
func ToProblem(samples []Sample) ([][]float64, []int) {
	x := make([][]float64, len(samples))
	y := make([]int, len(samples))
	for i, s := range samples {
		x[i] = s.Features()
		y[i] = s.Class()
	}
	return x, y
}

// CountPositives counts the alcoholic samples
func CountPositives(samples []Sample) int {
	var n int
	for _, s := range samples {
		n += s.Class()
	}
	return n
}

// Load reads samples from CSV with a header row
func Load(r io.Reader) ([]Sample, error) {
	var samples []Sample
	if err := gocsv.Unmarshal(r, &samples); err != nil {
		return nil, errors.Wrap(err, "unable to parse samples")
	}
	return samples, nil
}

// LoadFile reads samples from a CSV file
func LoadFile(path string) ([]Sample, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to open %s", path)
	}
	defer f.Close()

	var samples []Sample
	if err := gocsv.UnmarshalFile(f, &samples); err != nil {
		return nil, errors.Wrapf(err, "unable to parse %s", path)
	}
	return samples, nil
}

// Write writes samples as CSV with a header row
func Write(w io.Writer, samples []Sample) error {
	if err := gocsv.Marshal(samples, w); err != nil {
		return errors.Wrap(err, "unable to write samples")
	}
	return nil
}
