package metrics

import "github.com/DjordjeVuckovic/ner-eval/internal/ner"

// Micro pools every span regardless of class into a single TP/FP/FN count.
//
// Matching is greedy and one-to-one: each prediction consumes the first
// unmatched truth span it matches, in truth order.
func Micro(truth, pred []ner.Span) Metrics {
	matched := make([]bool, len(truth))
	var tp, fp int

	for _, p := range pred {
		if i := firstUnmatched(truth, matched, p); i >= 0 {
			matched[i] = true
			tp++
		} else {
			fp++
		}
	}

	return fromCounts("", tp, fp, countUnmatched(matched))
}

func firstUnmatched(truth []ner.Span, matched []bool, pred ner.Span) int {
	for i, t := range truth {
		if !matched[i] && pred.Matches(t) {
			return i
		}
	}
	return -1
}

func countUnmatched(matched []bool) int {
	var n int
	for _, m := range matched {
		if !m {
			n++
		}
	}
	return n
}
