// Package main provides the CLI entry point for ner_eval.
package main

import (
	"log/slog"
	"os"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		slog.Error("Evaluation failed", "error", err)
		os.Exit(1)
	}
}
