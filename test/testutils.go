package test

import (
	"io"
	"os"
	"path/filepath"
)

// WriteLines writes lines to w, each terminated by a newline
func WriteLines(w io.Writer, lines []string) error {
	for _, line := range lines {
		if _, err := io.WriteString(w, line+"\n"); err != nil {
			return err
		}
	}
	return nil
}

// WriteToFile creates name inside dir with the given lines and returns its path
func WriteToFile(dir string, name string, lines []string) (string, error) {
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := WriteLines(f, lines); err != nil {
		return "", err
	}
	return path, nil
}

// SampleCSV is a small dataset with a header row, four alcoholic and four
// non-alcoholic rows
var SampleCSV = []string{
	"drinks_per_session,times_drunk_per_month,avg_alcohol_content,thoughts_per_day,session_duration_hours,morning_drinking_per_week,label",
	"9,22,0.15,14,5.5,4,alcoholic",
	"2,1,0.05,0,1.5,0,non-alcoholic",
	"11,27,0.18,20,6.1,6,alcoholic",
	"3,3,0.11,2,3,1,non-alcoholic",
	"6,12,0.1,9,3.2,2,alcoholic",
	"1,0,0.04,1,1,0,non-alcoholic",
	"12,29,0.2,22,7,7,alcoholic",
	"4,4,0.12,3,3.5,1,non-alcoholic",
}
