package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Stat1c-Null/AlcoholicDetector/perceptron"
)

var questions = []string{
	"How many drinks do you consume when drinking? ",
	"How many times do you get drunk per month? ",
	"What is the average amount of alcohol (ABV) in a drink? Ranges from (0.05 - 0.50) ",
	"How many times do you think about alcohol per week? ",
	"What is the duration of your drinking sessions in hours? ",
	"How many times do you drink in the morning per month? ",
}

// analyze asks for drinking habits until the answer to "another?" is not yes
func analyze(in io.Reader, out io.Writer, model *perceptron.Perceptron) error {
	scanner := bufio.NewScanner(in)
	ask := func(prompt string) (string, bool) {
		fmt.Fprint(out, prompt)
		if !scanner.Scan() {
			return "", false
		}
		return strings.TrimSpace(scanner.Text()), true
	}

	answer, ok := ask("Do you want to analyze your drinking habits? (yes/no): ")
	for ok && strings.EqualFold(answer, "yes") {
		x := make([]float64, len(questions))
		for i, q := range questions {
			for {
				a, more := ask(q)
				if !more {
					return scanner.Err()
				}
				v, err := strconv.ParseFloat(a, 64)
				if err == nil {
					x[i] = v
					break
				}
				fmt.Fprintln(out, "Please answer with a number.")
			}
		}

		if _, err := model.CheckAlcoholic(out, x); err != nil {
			return err
		}
		answer, ok = ask("Do you want to analyze another drinking habit? (yes/no): ")
	}
	return scanner.Err()
}
