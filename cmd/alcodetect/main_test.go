package main

import (
	"bytes"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Stat1c-Null/AlcoholicDetector/perceptron"
	"github.com/Stat1c-Null/AlcoholicDetector/test"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	resetFlags()

	var out bytes.Buffer
	cmd := newMainCmd()
	cmd.SetArgs(append(args, "--log-level=ERROR"))
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	err := cmd.Execute()
	return out.String(), err
}

func generated(t *testing.T, n int) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.csv")
	_, err := run(t, "", "generate", "--samples="+strconv.Itoa(n), "--seed=3", "--out="+path)
	require.NoError(t, err)
	return path
}

func TestGenerateToStdout(t *testing.T) {
	out, err := run(t, "", "generate", "-n", "4", "--seed=1")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, test.SampleCSV[0], lines[0])
}

func TestGenerateRejectsNegativeCount(t *testing.T) {
	_, err := run(t, "", "generate", "--samples=-1")
	assert.Error(t, err)
}

func TestTrain(t *testing.T) {
	path := generated(t, 60)

	out, err := run(t, "", "train", "--data="+path, "--seed=5", "--epochs=50")
	require.NoError(t, err)

	assert.Contains(t, out, "Number of alcoholic samples: 30 out of 60 total samples.")
	assert.Contains(t, out, "Alcoholic percentage in dataset: 50.00%")
	assert.Contains(t, out, "Training time:")
	assert.Contains(t, out, "Model accuracy on test set:")
	assert.Contains(t, out, "Model precision on test set:")
	assert.Contains(t, out, "Model recall on test set:")
	assert.Contains(t, out, "Model F1 score on test set:")
	assert.Contains(t, out, "Model ROC AUC on test set:")
}

func TestTrainIsReproducibleWithSeed(t *testing.T) {
	path := generated(t, 60)

	first, err := run(t, "", "train", "--data="+path, "--seed=9")
	require.NoError(t, err)
	second, err := run(t, "", "train", "--data="+path, "--seed=9")
	require.NoError(t, err)

	strip := func(s string) string {
		var kept []string
		for _, line := range strings.Split(s, "\n") {
			if !strings.HasPrefix(line, "Training time:") {
				kept = append(kept, line)
			}
		}
		return strings.Join(kept, "\n")
	}
	assert.Equal(t, strip(first), strip(second))
}

func TestTrainCrossValidation(t *testing.T) {
	path := generated(t, 60)

	out, err := run(t, "", "train", "--data="+path, "--seed=5", "-v", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "Cross Validation Accuracy = ")

	_, err = run(t, "", "train", "--data="+path, "--folds=1")
	assert.ErrorIs(t, err, perceptron.ErrInvalidParameter)
}

func TestTrainAnalyze(t *testing.T) {
	path := generated(t, 60)

	stdin := "yes\n5\n2\nlots\n0.1\n3\n4\n0\nno\n"
	out, err := run(t, stdin, "train", "--data="+path, "--seed=5", "--analyze")
	require.NoError(t, err)

	for _, q := range questions {
		assert.Contains(t, out, q)
	}
	assert.Contains(t, out, "Please answer with a number.")
	assert.Contains(t, out, "The person is predicted to be")
	assert.Contains(t, out, "Do you want to analyze another drinking habit? (yes/no): ")
}

func TestTrainRejectsBadParameters(t *testing.T) {
	path := generated(t, 60)

	_, err := run(t, "", "train", "--data="+path, "--epochs=0")
	assert.ErrorIs(t, err, perceptron.ErrInvalidParameter)

	_, err = run(t, "", "train", "--data="+path, "--learning-rate=-1")
	assert.ErrorIs(t, err, perceptron.ErrInvalidParameter)

	_, err = run(t, "", "train", "--data="+path+".missing")
	assert.Error(t, err)
}

func TestCheck(t *testing.T) {
	path := generated(t, 60)

	out, err := run(t, "", "check", "--data="+path, "--seed=5", "--features=12,29,0.2,22,7,7")
	require.NoError(t, err)
	assert.Contains(t, out, "The person is predicted to be")

	_, err = run(t, "", "check", "--data="+path, "--features=1,2")
	assert.ErrorIs(t, err, perceptron.ErrShapeMismatch)
}

func TestPredict(t *testing.T) {
	path := generated(t, 60)
	input, err := test.WriteToFile(t.TempDir(), "input.csv", test.SampleCSV)
	require.NoError(t, err)

	out, err := run(t, "", "predict", "--data="+path, "--seed=5", "--input="+input)
	require.NoError(t, err)
	assert.Contains(t, out, "Accuracy = ")

	_, err = run(t, "", "predict", "--data="+path)
	assert.Error(t, err)
}

func TestDoPredict(t *testing.T) {
	// the zero model predicts every sample alcoholic
	model := perceptron.NewPerceptron(6, perceptron.DefaultLearningRate)

	var out bytes.Buffer
	require.NoError(t, DoPredict(strings.NewReader(strings.Join(test.SampleCSV, "\n")), &out, model))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 9)
	for _, line := range lines[:8] {
		assert.Equal(t, "Alcoholic", line)
	}
	assert.Equal(t, "Accuracy = 50% (4/8)", lines[8])
}

func TestDoPredictWithoutLabels(t *testing.T) {
	model := perceptron.NewPerceptron(6, perceptron.DefaultLearningRate)
	input := "drinks_per_session,times_drunk_per_month,avg_alcohol_content,thoughts_per_day,session_duration_hours,morning_drinking_per_week\n" +
		"1,0,0.04,0,1,0\n"

	var out bytes.Buffer
	require.NoError(t, DoPredict(strings.NewReader(input), &out, model))
	assert.Equal(t, "Alcoholic\n", out.String())
}

func TestDoPredictCorruptLine(t *testing.T) {
	model := perceptron.NewPerceptron(6, perceptron.DefaultLearningRate)
	input := test.SampleCSV[0] + "\nabc,1,1,1,1,1,alcoholic\n"

	var out bytes.Buffer
	assert.Error(t, DoPredict(strings.NewReader(input), &out, model))
}

func TestAttachFlagsPanicsOnUnknownFlag(t *testing.T) {
	resetFlags()
	cmd := newMainCmd()
	assert.Panics(t, func() { attachFlags(cmd, []string{"no-such-flag"}) })
}
