package metrics

// Metrics is a scored view over TP/FP/FN counts. Class is set only for
// per-class records.
type Metrics struct {
	Precision float64 `json:"precision" yaml:"precision"`
	Recall    float64 `json:"recall" yaml:"recall"`
	F1        float64 `json:"f1" yaml:"f1"`
	Accuracy  float64 `json:"accuracy" yaml:"accuracy"`
	Class     string  `json:"class,omitempty" yaml:"class,omitempty"`
	TP        int     `json:"TP" yaml:"tp"`
	FP        int     `json:"FP" yaml:"fp"`
	FN        int     `json:"FN" yaml:"fn"`
	TN        int     `json:"TN" yaml:"tn"`
}

// CalculateAccuracy records tn and derives Accuracy from the current
// TP/FP/FN, so it must run after those are final.
func (m *Metrics) CalculateAccuracy(tn int) {
	m.TN = tn
	m.Accuracy = Accuracy(m.TP, m.FP, m.FN, tn)
}

// Precision returns tp/(tp+fp), or 0 when nothing was predicted.
func Precision(tp, fp int) float64 {
	if tp+fp == 0 {
		return 0
	}
	return float64(tp) / float64(tp+fp)
}

// Recall returns tp/(tp+fn), or 0 when there is nothing to find.
func Recall(tp, fn int) float64 {
	if tp+fn == 0 {
		return 0
	}
	return float64(tp) / float64(tp+fn)
}

// F1 is the harmonic mean of precision and recall.
func F1(precision, recall float64) float64 {
	if precision+recall == 0 {
		return 0
	}
	return 2 * precision * recall / (precision + recall)
}

// Accuracy returns (tp+tn)/(tp+fp+fn+tn), or 0 when every count is zero.
func Accuracy(tp, fp, fn, tn int) float64 {
	total := tp + fp + fn + tn
	if total == 0 {
		return 0
	}
	return float64(tp+tn) / float64(total)
}

func fromCounts(class string, tp, fp, fn int) Metrics {
	p := Precision(tp, fp)
	r := Recall(tp, fn)
	return Metrics{
		Precision: p,
		Recall:    r,
		F1:        F1(p, r),
		Class:     class,
		TP:        tp,
		FP:        fp,
		FN:        fn,
	}
}

// tally holds the match counts of one class.
type tally struct {
	tp, fp, fn int
}
