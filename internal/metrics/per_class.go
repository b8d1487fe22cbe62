package metrics

import (
	"fmt"
	"slices"
	"strings"

	"github.com/DjordjeVuckovic/ner-eval/internal/ner"
)

// MatchPolicy selects the per-class matching algorithm.
type MatchPolicy int

const (
	// Keyed matches predictions against a set of truth keys (start|end|class).
	// Truth spans that share a key collapse into one unit.
	Keyed MatchPolicy = iota
	// Exhaustive scans truth spans pairwise with one-to-one consumption, so
	// duplicate truth spans are each counted.
	Exhaustive
)

func (p MatchPolicy) String() string {
	switch p {
	case Keyed:
		return "keyed"
	case Exhaustive:
		return "exhaustive"
	default:
		return fmt.Sprintf("MatchPolicy(%d)", int(p))
	}
}

func ParseMatchPolicy(s string) (MatchPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "keyed", "fast":
		return Keyed, nil
	case "exhaustive":
		return Exhaustive, nil
	default:
		return 0, fmt.Errorf("unknown match policy %q", s)
	}
}

func (p MatchPolicy) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *MatchPolicy) UnmarshalText(text []byte) error {
	parsed, err := ParseMatchPolicy(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// PerClass scores every class seen in truth or predictions. Records are
// ordered by class name.
func PerClass(truth, pred []ner.Span, policy MatchPolicy) []Metrics {
	var tallies map[string]*tally
	switch policy {
	case Exhaustive:
		tallies, _ = matchWithinClass(truth, pred)
	default:
		tallies = matchByKey(truth, pred)
	}

	classes := make([]string, 0, len(tallies))
	for class := range tallies {
		classes = append(classes, class)
	}
	slices.Sort(classes)

	results := make([]Metrics, 0, len(classes))
	for _, class := range classes {
		t := tallies[class]
		results = append(results, fromCounts(class, t.tp, t.fp, t.fn))
	}
	return results
}

func matchByKey(truth, pred []ner.Span) map[string]*tally {
	tallies := make(map[string]*tally)
	for _, class := range ner.Classes(truth, pred) {
		tallies[class] = &tally{}
	}

	truthKeys := make(map[string]string, len(truth))
	for _, t := range truth {
		truthKeys[t.Key()] = t.Class
	}

	claimed := make(map[string]bool)
	for _, p := range pred {
		key := p.Key()
		if _, ok := truthKeys[key]; ok && !claimed[key] {
			tallies[p.Class].tp++
			claimed[key] = true
		} else {
			tallies[p.Class].fp++
		}
	}

	for key, class := range truthKeys {
		if !claimed[key] {
			tallies[class].fn++
		}
	}

	return tallies
}
