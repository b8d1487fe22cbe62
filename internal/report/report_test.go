package report

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/DjordjeVuckovic/ner-eval/internal/evaluate"
	"github.com/DjordjeVuckovic/ner-eval/internal/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResult() *evaluate.Result {
	return &evaluate.Result{
		Micro: metrics.Metrics{Precision: 0.5, Recall: 0.25, F1: 1.0 / 3.0, TP: 1, FP: 1, FN: 3},
		Macro: metrics.Metrics{Precision: 0.75, TP: 1, FP: 1, FN: 3},
		PerClass: []metrics.Metrics{
			{Class: "LOC", FN: 2},
			{Class: "PER", Precision: 0.5, Recall: 0.5, F1: 0.5, TP: 1, FP: 1, FN: 1},
		},
	}
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	WriteTable(sampleResult(), &buf)
	out := buf.String()

	assert.Contains(t, out, "=== Entity Evaluation ===")
	assert.Contains(t, out, "Per-Class Results (2 classes)")
	assert.Contains(t, out, "0.3333")

	var micro string
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "micro") {
			micro = line
		}
	}
	require.NotEmpty(t, micro)
	assert.Equal(t, []string{"micro", "0.5000", "0.2500", "0.3333", "0.0000", "1", "1", "3", "0"}, strings.Fields(micro))
}

func TestWriteTable_NoClasses(t *testing.T) {
	var buf bytes.Buffer
	WriteTable(&evaluate.Result{}, &buf)
	assert.NotContains(t, buf.String(), "Per-Class")
}

func TestWriteMetricsTable(t *testing.T) {
	var buf bytes.Buffer
	WriteMetricsTable("light", &metrics.Metrics{Accuracy: 1, TN: 4}, &buf)
	assert.Contains(t, buf.String(), "light")
	assert.Contains(t, buf.String(), "1.0000")
}

func TestWriteJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	require.NoError(t, WriteJSON(sampleResult(), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded evaluate.Result
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, *sampleResult(), decoded)

	err = WriteJSON(sampleResult(), filepath.Join(t.TempDir(), "missing", "report.json"))
	assert.Error(t, err)
}

func TestEncodeJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, EncodeJSON(metrics.Metrics{Class: "PER", TP: 2}, &buf))
	assert.Contains(t, buf.String(), `"class": "PER"`)
	assert.Contains(t, buf.String(), `"TP": 2`)
}
