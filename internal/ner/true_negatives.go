package ner

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
)

// CountTrueNegatives compares two tag streams line by line and counts the
// lines both sides label as outside. Blank line pairs are sentence
// boundaries and are skipped.
//
// When the streams differ in line count the tokens cannot be aligned, so the
// mismatch is logged and the count is 0 without an error.
func CountTrueNegatives(pred, truth io.Reader, outside string) (int, error) {
	if outside == "" {
		outside = OutsideLabel
	}

	predLines, err := readLines(pred)
	if err != nil {
		return 0, fmt.Errorf("read predicted tags: %w", err)
	}
	truthLines, err := readLines(truth)
	if err != nil {
		return 0, fmt.Errorf("read truth tags: %w", err)
	}

	if len(predLines) != len(truthLines) {
		slog.Warn("Tag line counts differ, true negatives counted as 0",
			"predLines", len(predLines),
			"truthLines", len(truthLines),
		)
		return 0, nil
	}

	var tn int
	for i := range predLines {
		p := trimLine(predLines[i])
		t := trimLine(truthLines[i])

		if p == "" && t == "" {
			continue
		}
		if p == outside && t == outside {
			tn++
		}
	}

	return tn, nil
}

func CountTrueNegativesFromFiles(predPath, truthPath, outside string) (int, error) {
	pred, err := os.Open(predPath)
	if err != nil {
		return 0, fmt.Errorf("open predicted tag file: %w", err)
	}
	defer pred.Close()

	truth, err := os.Open(truthPath)
	if err != nil {
		return 0, fmt.Errorf("open truth tag file: %w", err)
	}
	defer truth.Close()

	return CountTrueNegatives(pred, truth, outside)
}

func readLines(reader io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
