package metrics

import "github.com/DjordjeVuckovic/ner-eval/internal/ner"

// SetMatch scores pre-segmented entities by set membership. Both inputs are
// deduplicated; an entity matches only when all of its fields are equal.
//
// There is no token universe behind these records, so TN is the
// approximation from ApproximateTrueNegatives rather than a counted value.
func SetMatch(pred, truth []ner.TaggedEntity) Metrics {
	predSet := toSet(pred)
	truthSet := toSet(truth)

	var tp, fp, fn int
	for e := range predSet {
		if _, ok := truthSet[e]; ok {
			tp++
		} else {
			fp++
		}
	}
	for e := range truthSet {
		if _, ok := predSet[e]; !ok {
			fn++
		}
	}

	m := fromCounts("", tp, fp, fn)
	m.CalculateAccuracy(ApproximateTrueNegatives(len(predSet), len(truthSet), tp, fp, fn))
	return m
}

// ApproximateTrueNegatives returns |pred| + |truth| - TP - FP - FN.
// It is set arithmetic over the two entity sets, not a count of agreed
// outside tokens.
func ApproximateTrueNegatives(predSize, truthSize, tp, fp, fn int) int {
	return predSize + truthSize - tp - fp - fn
}

func toSet(entities []ner.TaggedEntity) map[ner.TaggedEntity]struct{} {
	set := make(map[ner.TaggedEntity]struct{}, len(entities))
	for _, e := range entities {
		set[e] = struct{}{}
	}
	return set
}
