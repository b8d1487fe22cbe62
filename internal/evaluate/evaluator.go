package evaluate

import (
	"fmt"
	"log/slog"

	"github.com/DjordjeVuckovic/ner-eval/internal/metrics"
	"github.com/DjordjeVuckovic/ner-eval/internal/ner"
)

// Result is the full entity level evaluation of one prediction file.
type Result struct {
	Micro    metrics.Metrics   `json:"micro"`
	Macro    metrics.Metrics   `json:"macro"`
	PerClass []metrics.Metrics `json:"perClass"`
}

// Evaluator scores prediction files against truth files. It holds no state
// between calls and is safe for concurrent use.
type Evaluator struct {
	cfg Config
}

// New validates cfg, filling in defaults for empty fields.
func New(cfg Config) (*Evaluator, error) {
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("evaluation config: %w", err)
	}
	return &Evaluator{cfg: cfg}, nil
}

func (e *Evaluator) Config() Config {
	return e.cfg
}

// Evaluate decodes both BIO files and computes micro, macro and per-class
// metrics. A file that cannot be read fails the call; a true negative count
// that cannot be computed is logged and treated as 0.
func (e *Evaluator) Evaluate(truthPath, predPath string) (*Result, error) {
	truth, pred, err := decodePair(truthPath, predPath)
	if err != nil {
		return nil, err
	}

	tn := e.trueNegatives(predPath, truthPath)
	r := Score(truth, pred, tn, e.cfg.PerClassPolicy)
	return &r, nil
}

// EvaluateLight returns only the macro record of Evaluate, carrying the
// micro TP/FP/FN.
func (e *Evaluator) EvaluateLight(truthPath, predPath string) (*metrics.Metrics, error) {
	truth, pred, err := decodePair(truthPath, predPath)
	if err != nil {
		return nil, err
	}

	tn := e.trueNegatives(predPath, truthPath)
	_, macro := scoreAverages(truth, pred, tn)
	return &macro, nil
}

// EvaluateAlternate scores two JSON entity files by set membership. If
// either file cannot be loaded it returns false and no metrics.
func (e *Evaluator) EvaluateAlternate(predPath, truthPath string) (*metrics.Metrics, bool) {
	pred, err := ner.LoadTaggedFile(predPath)
	if err != nil {
		slog.Error("Failed to load predicted entities", "path", predPath, "error", err)
		return nil, false
	}
	truth, err := ner.LoadTaggedFile(truthPath)
	if err != nil {
		slog.Error("Failed to load truth entities", "path", truthPath, "error", err)
		return nil, false
	}

	m := metrics.SetMatch(pred, truth)
	return &m, true
}

// Score computes a Result from decoded spans and an externally counted tn.
func Score(truth, pred []ner.Span, tn int, policy metrics.MatchPolicy) Result {
	micro, macro := scoreAverages(truth, pred, tn)
	return Result{
		Micro:    micro,
		Macro:    macro,
		PerClass: metrics.PerClass(truth, pred, policy),
	}
}

// scoreAverages computes micro and macro records with accuracy.
//
// The macro TP/FP/FN are overwritten with the micro counts so both records
// share one accuracy denominator. Macro.TP therefore means the pooled TP.
func scoreAverages(truth, pred []ner.Span, tn int) (metrics.Metrics, metrics.Metrics) {
	micro := metrics.Micro(truth, pred)
	micro.CalculateAccuracy(tn)

	macro := metrics.Macro(truth, pred)
	macro.TP = micro.TP
	macro.FP = micro.FP
	macro.FN = micro.FN
	macro.CalculateAccuracy(tn)

	return micro, macro
}

func (e *Evaluator) trueNegatives(predPath, truthPath string) int {
	tn, err := ner.CountTrueNegativesFromFiles(predPath, truthPath, e.cfg.OutsideLabel)
	if err != nil {
		slog.Error("Failed to count true negatives, using 0", "error", err)
		return 0
	}
	return tn
}

func decodePair(truthPath, predPath string) ([]ner.Span, []ner.Span, error) {
	truth, err := ner.DecodeFile(truthPath)
	if err != nil {
		return nil, nil, fmt.Errorf("decode truth file: %w", err)
	}
	pred, err := ner.DecodeFile(predPath)
	if err != nil {
		return nil, nil, fmt.Errorf("decode predicted file: %w", err)
	}
	return truth, pred, nil
}
