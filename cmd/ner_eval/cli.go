package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/DjordjeVuckovic/ner-eval/internal/evaluate"
	"github.com/DjordjeVuckovic/ner-eval/internal/report"
	"github.com/alecthomas/kong"
)

// Globals are shared by every subcommand.
type Globals struct {
	Config  string `name:"config" short:"c" help:"Evaluation config YAML" type:"existingfile"`
	Format  string `name:"format" short:"f" enum:"table,json" default:"table" help:"Output format: table or json"`
	Output  string `name:"output" short:"o" help:"Also write the JSON report to this file" type:"path"`
	Verbose bool   `name:"verbose" short:"v" help:"Verbose output"`
}

// CLI defines the command-line interface using Kong
type CLI struct {
	Globals

	Full  FullCmd  `cmd:"" help:"Micro, macro and per-class metrics for BIO tagged files"`
	Light LightCmd `cmd:"" help:"Macro metrics only for BIO tagged files"`
	JSON  JSONCmd  `cmd:"" name:"json" help:"Set match metrics for JSON entity files"`
}

type FullCmd struct {
	Truth string `arg:"" help:"Truth BIO file" type:"path"`
	Pred  string `arg:"" help:"Predicted BIO file" type:"path"`
}

func (c *FullCmd) Run(g *Globals, w io.Writer) error {
	ev, err := g.evaluator()
	if err != nil {
		return err
	}

	res, err := ev.Evaluate(c.Truth, c.Pred)
	if err != nil {
		return err
	}

	return g.render(w, res, func(w io.Writer) { report.WriteTable(res, w) })
}

type LightCmd struct {
	Truth string `arg:"" help:"Truth BIO file" type:"path"`
	Pred  string `arg:"" help:"Predicted BIO file" type:"path"`
}

func (c *LightCmd) Run(g *Globals, w io.Writer) error {
	ev, err := g.evaluator()
	if err != nil {
		return err
	}

	m, err := ev.EvaluateLight(c.Truth, c.Pred)
	if err != nil {
		return err
	}

	return g.render(w, m, func(w io.Writer) { report.WriteMetricsTable("macro", m, w) })
}

type JSONCmd struct {
	Pred  string `arg:"" help:"Predicted entity JSON file" type:"path"`
	Truth string `arg:"" help:"Ground truth entity JSON file" type:"path"`
}

var ErrNoEntities = errors.New("entity files could not be loaded")

func (c *JSONCmd) Run(g *Globals, w io.Writer) error {
	ev, err := g.evaluator()
	if err != nil {
		return err
	}

	m, ok := ev.EvaluateAlternate(c.Pred, c.Truth)
	if !ok {
		return ErrNoEntities
	}

	return g.render(w, m, func(w io.Writer) { report.WriteMetricsTable("set", m, w) })
}

func (g *Globals) evaluator() (*evaluate.Evaluator, error) {
	cfg := evaluate.DefaultConfig()
	if g.Config != "" {
		loaded, err := evaluate.LoadConfigFromFile(g.Config)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	slog.Debug("Evaluation config", "perClassPolicy", cfg.PerClassPolicy.String(), "outsideLabel", cfg.OutsideLabel)
	return evaluate.New(cfg)
}

func (g *Globals) render(w io.Writer, v any, table func(io.Writer)) error {
	switch g.Format {
	case "json":
		if err := report.EncodeJSON(v, w); err != nil {
			return err
		}
	default:
		table(w)
	}

	if g.Output != "" {
		if err := report.WriteJSON(v, g.Output); err != nil {
			return err
		}
		slog.Info("Report written", "path", g.Output)
	}
	return nil
}

// run parses args and executes the selected command, writing results to w.
func run(args []string, w io.Writer) error {
	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("ner_eval"),
		kong.Description("Entity level evaluation of named entity recognition output"),
		kong.UsageOnError(),
	)
	if err != nil {
		return err
	}

	ctx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	if cli.Verbose {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	ctx.BindTo(w, (*io.Writer)(nil))
	if err := ctx.Run(&cli.Globals); err != nil {
		return fmt.Errorf("%s: %w", ctx.Command(), err)
	}
	return nil
}
