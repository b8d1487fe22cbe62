package ner

import "fmt"

const (
	BeginPrefix  = "B-"
	InsidePrefix = "I-"
	OutsideLabel = "O"
)

// Span is an entity decoded from a BIO tag stream.
// Start and End are inclusive token positions within a sentence.
type Span struct {
	Text  string `json:"text"`
	Class string `json:"class"`
	Start int64  `json:"start"`
	End   int64  `json:"end"`
}

// Matches reports whether two spans cover the same tokens with the same class.
// Text is not compared.
func (s Span) Matches(other Span) bool {
	return s.Start == other.Start && s.End == other.End && s.Class == other.Class
}

// Key identifies a span by position and class.
func (s Span) Key() string {
	return fmt.Sprintf("%d|%d|%s", s.Start, s.End, s.Class)
}

// TaggedEntity is a pre-segmented entity record.
// Two records match only if all four fields are equal, so the struct is used
// directly as a set key.
type TaggedEntity struct {
	Start int    `json:"start"`
	End   int    `json:"end"`
	Type  string `json:"type"`
	Word  string `json:"word"`
}

// Classes returns the distinct span classes in first-seen order.
func Classes(spans ...[]Span) []string {
	seen := make(map[string]bool)
	var classes []string
	for _, list := range spans {
		for _, s := range list {
			if !seen[s.Class] {
				seen[s.Class] = true
				classes = append(classes, s.Class)
			}
		}
	}
	return classes
}
