package metrics

import (
	"testing"

	"github.com/DjordjeVuckovic/ner-eval/internal/ner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func span(class string, start, end int64) ner.Span {
	return ner.Span{Text: class, Class: class, Start: start, End: end}
}

func TestMicro(t *testing.T) {
	tests := []struct {
		name   string
		truth  []ner.Span
		pred   []ner.Span
		wantTP int
		wantFP int
		wantFN int
	}{
		{
			name: "no spans at all",
		},
		{
			name:   "perfect match",
			truth:  []ner.Span{span("PER", 0, 1), span("LOC", 3, 3)},
			pred:   []ner.Span{span("LOC", 3, 3), span("PER", 0, 1)},
			wantTP: 2,
		},
		{
			name:   "class mismatch is a miss",
			truth:  []ner.Span{span("PER", 0, 1)},
			pred:   []ner.Span{span("ORG", 0, 1)},
			wantFP: 1,
			wantFN: 1,
		},
		{
			name:   "boundary mismatch is a miss",
			truth:  []ner.Span{span("PER", 0, 1)},
			pred:   []ner.Span{span("PER", 0, 2)},
			wantFP: 1,
			wantFN: 1,
		},
		{
			name:   "duplicate predictions consume a single truth span",
			truth:  []ner.Span{span("PER", 2, 4)},
			pred:   []ner.Span{span("PER", 2, 4), span("PER", 2, 4), span("PER", 2, 4)},
			wantTP: 1,
			wantFP: 2,
		},
		{
			name:   "text is ignored",
			truth:  []ner.Span{{Text: "a", Class: "PER", Start: 0, End: 0}},
			pred:   []ner.Span{{Text: "b", Class: "PER", Start: 0, End: 0}},
			wantTP: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Micro(tt.truth, tt.pred)
			assert.Equal(t, tt.wantTP, m.TP)
			assert.Equal(t, tt.wantFP, m.FP)
			assert.Equal(t, tt.wantFN, m.FN)
			assert.InDelta(t, Precision(tt.wantTP, tt.wantFP), m.Precision, 1e-9)
			assert.InDelta(t, Recall(tt.wantTP, tt.wantFN), m.Recall, 1e-9)
			assert.Empty(t, m.Class)
		})
	}
}

func TestMicro_EmptyInputsAreZeroNotNaN(t *testing.T) {
	m := Micro(nil, nil)
	assert.Equal(t, 0.0, m.Precision)
	assert.Equal(t, 0.0, m.Recall)
	assert.Equal(t, 0.0, m.F1)

	mac := Macro(nil, nil)
	assert.Equal(t, 0.0, mac.Precision)
	assert.Equal(t, 0.0, mac.Recall)
	assert.Equal(t, 0.0, mac.F1)
}

func TestMacro(t *testing.T) {
	t.Run("averages per class without weighting", func(t *testing.T) {
		truth := []ner.Span{
			span("PER", 0, 0), span("PER", 2, 2), span("PER", 4, 4), span("PER", 6, 6),
			span("LOC", 8, 8),
		}
		pred := []ner.Span{
			span("PER", 0, 0), span("PER", 2, 2), span("PER", 4, 4), span("PER", 6, 6),
		}

		m := Macro(truth, pred)
		// PER: P=1 R=1 F1=1, LOC: P=0 R=0 F1=0
		assert.InDelta(t, 0.5, m.Precision, 1e-9)
		assert.InDelta(t, 0.5, m.Recall, 1e-9)
		assert.InDelta(t, 0.5, m.F1, 1e-9)
		assert.Equal(t, 4, m.TP)
		assert.Equal(t, 1, m.FN)
	})

	t.Run("classes absent from truth are excluded from the average", func(t *testing.T) {
		truth := []ner.Span{span("PER", 0, 1)}
		pred := []ner.Span{span("PER", 0, 1), span("ORG", 5, 6), span("ORG", 8, 9)}

		m := Macro(truth, pred)
		assert.InDelta(t, 1.0, m.Precision, 1e-9)
		assert.InDelta(t, 1.0, m.Recall, 1e-9)
		assert.InDelta(t, 1.0, m.F1, 1e-9)
		assert.Equal(t, 1, m.TP)
		assert.Equal(t, 2, m.FP)
	})

	t.Run("matching is restricted to the same class", func(t *testing.T) {
		truth := []ner.Span{span("PER", 0, 1), span("LOC", 3, 4)}
		pred := []ner.Span{span("LOC", 0, 1), span("LOC", 3, 4)}

		m := Macro(truth, pred)
		// PER: P=0 R=0, LOC: P=0.5 R=1 F1=2/3
		assert.InDelta(t, 0.25, m.Precision, 1e-9)
		assert.InDelta(t, 0.5, m.Recall, 1e-9)
		assert.InDelta(t, 1.0/3.0, m.F1, 1e-9)
	})

	t.Run("only predictions", func(t *testing.T) {
		m := Macro(nil, []ner.Span{span("PER", 0, 0)})
		assert.Zero(t, m.Precision)
		assert.Zero(t, m.Recall)
		assert.Zero(t, m.F1)
		assert.Equal(t, 1, m.FP)
	})
}

func TestPerClass(t *testing.T) {
	truth := []ner.Span{span("PER", 0, 1), span("LOC", 3, 3), span("LOC", 7, 8)}
	pred := []ner.Span{span("PER", 0, 1), span("LOC", 3, 3), span("ORG", 7, 8)}

	for _, policy := range []MatchPolicy{Keyed, Exhaustive} {
		t.Run(policy.String(), func(t *testing.T) {
			got := PerClass(truth, pred, policy)
			require.Len(t, got, 3)

			assert.Equal(t, "LOC", got[0].Class)
			assert.Equal(t, 1, got[0].TP)
			assert.Equal(t, 0, got[0].FP)
			assert.Equal(t, 1, got[0].FN)
			assert.InDelta(t, 1.0, got[0].Precision, 1e-9)
			assert.InDelta(t, 0.5, got[0].Recall, 1e-9)

			assert.Equal(t, "ORG", got[1].Class)
			assert.Equal(t, 0, got[1].TP)
			assert.Equal(t, 1, got[1].FP)
			assert.Equal(t, 0, got[1].FN)

			assert.Equal(t, "PER", got[2].Class)
			assert.Equal(t, 1, got[2].TP)
			assert.InDelta(t, 1.0, got[2].F1, 1e-9)
		})
	}
}

func TestPerClass_Empty(t *testing.T) {
	assert.Empty(t, PerClass(nil, nil, Keyed))
	assert.Empty(t, PerClass(nil, nil, Exhaustive))
}

func TestPerClass_DuplicatePredictions(t *testing.T) {
	truth := []ner.Span{span("PER", 1, 2)}
	pred := []ner.Span{span("PER", 1, 2), span("PER", 1, 2)}

	for _, policy := range []MatchPolicy{Keyed, Exhaustive} {
		t.Run(policy.String(), func(t *testing.T) {
			got := PerClass(truth, pred, policy)
			require.Len(t, got, 1)
			assert.Equal(t, 1, got[0].TP)
			assert.Equal(t, 1, got[0].FP)
			assert.Equal(t, 0, got[0].FN)
		})
	}
}

func TestPerClass_DuplicateTruthDiverges(t *testing.T) {
	truth := []ner.Span{span("PER", 1, 2), span("PER", 1, 2)}
	pred := []ner.Span{span("PER", 1, 2)}

	t.Run("keyed collapses duplicate truth keys", func(t *testing.T) {
		got := PerClass(truth, pred, Keyed)
		require.Len(t, got, 1)
		assert.Equal(t, 1, got[0].TP)
		assert.Equal(t, 0, got[0].FN)
		assert.InDelta(t, 1.0, got[0].Recall, 1e-9)
	})

	t.Run("exhaustive counts the unconsumed duplicate", func(t *testing.T) {
		got := PerClass(truth, pred, Exhaustive)
		require.Len(t, got, 1)
		assert.Equal(t, 1, got[0].TP)
		assert.Equal(t, 1, got[0].FN)
		assert.InDelta(t, 0.5, got[0].Recall, 1e-9)
	})
}

func TestMatchPolicy_Text(t *testing.T) {
	tests := []struct {
		in      string
		want    MatchPolicy
		wantErr bool
	}{
		{in: "keyed", want: Keyed},
		{in: "fast", want: Keyed},
		{in: " Exhaustive ", want: Exhaustive},
		{in: "fuzzy", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var p MatchPolicy
			err := p.UnmarshalText([]byte(tt.in))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, p)
		})
	}

	text, err := Exhaustive.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "exhaustive", string(text))
	assert.Equal(t, "MatchPolicy(7)", MatchPolicy(7).String())
}

func TestSetMatch(t *testing.T) {
	e := func(start, end int, typ, word string) ner.TaggedEntity {
		return ner.TaggedEntity{Start: start, End: end, Type: typ, Word: word}
	}

	t.Run("structural equality", func(t *testing.T) {
		pred := []ner.TaggedEntity{e(0, 2, "LOC", "China"), e(4, 5, "PER", "Li"), e(7, 8, "ORG", "UN")}
		truth := []ner.TaggedEntity{e(0, 2, "LOC", "China"), e(4, 5, "PER", "Lee")}

		m := SetMatch(pred, truth)
		assert.Equal(t, 1, m.TP)
		assert.Equal(t, 2, m.FP)
		assert.Equal(t, 1, m.FN)
		// |P| + |T| - TP - FP - FN = 3 + 2 - 1 - 2 - 1
		assert.Equal(t, 1, m.TN)
		assert.InDelta(t, 1.0/3.0, m.Precision, 1e-9)
		assert.InDelta(t, 0.5, m.Recall, 1e-9)
		assert.InDelta(t, 2.0/5.0, m.Accuracy, 1e-9)
	})

	t.Run("duplicates are collapsed", func(t *testing.T) {
		pred := []ner.TaggedEntity{e(0, 1, "PER", "Li"), e(0, 1, "PER", "Li")}
		truth := []ner.TaggedEntity{e(0, 1, "PER", "Li")}

		m := SetMatch(pred, truth)
		assert.Equal(t, 1, m.TP)
		assert.Equal(t, 0, m.FP)
		assert.Equal(t, 0, m.FN)
		assert.Equal(t, 1, m.TN)
		assert.InDelta(t, 1.0, m.Accuracy, 1e-9)
	})

	t.Run("empty", func(t *testing.T) {
		m := SetMatch(nil, nil)
		assert.Equal(t, Metrics{}, m)
	})
}

func TestApproximateTrueNegatives(t *testing.T) {
	assert.Equal(t, 2, ApproximateTrueNegatives(4, 3, 2, 2, 1))
	assert.Zero(t, ApproximateTrueNegatives(0, 0, 0, 0, 0))
}
