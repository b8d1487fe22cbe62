package metrics

import "github.com/DjordjeVuckovic/ner-eval/internal/ner"

// Macro scores each class present in truth separately and averages the
// per-class precision, recall and F1 without weighting. Classes that only
// appear in predictions are counted but left out of the average.
//
// TP/FP/FN on the result are the sums over all classes. Evaluate replaces
// them with the micro counts; see evaluate.Evaluator.
func Macro(truth, pred []ner.Span) Metrics {
	tallies, truthClasses := matchWithinClass(truth, pred)

	var (
		sumP, sumR, sumF1 float64
		result            Metrics
	)
	for _, class := range truthClasses {
		t := tallies[class]
		m := fromCounts(class, t.tp, t.fp, t.fn)
		sumP += m.Precision
		sumR += m.Recall
		sumF1 += m.F1
	}
	for _, t := range tallies {
		result.TP += t.tp
		result.FP += t.fp
		result.FN += t.fn
	}

	if n := len(truthClasses); n > 0 {
		result.Precision = sumP / float64(n)
		result.Recall = sumR / float64(n)
		result.F1 = sumF1 / float64(n)
	}

	return result
}

// matchWithinClass runs one-to-one matching restricted to spans of the same
// class. It returns a tally per class seen in truth or predictions, and the
// truth classes in first-seen order.
func matchWithinClass(truth, pred []ner.Span) (map[string]*tally, []string) {
	byClass := make(map[string][]ner.Span)
	var truthClasses []string
	for _, s := range truth {
		if _, ok := byClass[s.Class]; !ok {
			truthClasses = append(truthClasses, s.Class)
		}
		byClass[s.Class] = append(byClass[s.Class], s)
	}

	matched := make(map[string][]bool, len(byClass))
	for class, spans := range byClass {
		matched[class] = make([]bool, len(spans))
	}

	tallies := make(map[string]*tally)
	get := func(class string) *tally {
		t, ok := tallies[class]
		if !ok {
			t = &tally{}
			tallies[class] = t
		}
		return t
	}
	for _, class := range truthClasses {
		get(class)
	}

	for _, p := range pred {
		t := get(p.Class)
		gold, ok := byClass[p.Class]
		if !ok {
			t.fp++
			continue
		}
		if i := firstUnmatched(gold, matched[p.Class], p); i >= 0 {
			matched[p.Class][i] = true
			t.tp++
		} else {
			t.fp++
		}
	}

	for class, flags := range matched {
		tallies[class].fn = countUnmatched(flags)
	}

	return tallies, truthClasses
}
