package main

import (
	"testing"

	"github.com/geoknoesis/penman-go/penman"
)

func TestFlagsRegistered(t *testing.T) {
	for _, name := range []string{"indent", "no-indent", "compact", "triples", "amr", "output"} {
		if rootCmd.Flags().Lookup(name) == nil {
			t.Fatalf("flag --%s is not registered", name)
		}
	}
}

func applyCLIOptions(t *testing.T) penman.Options {
	t.Helper()
	var options penman.Options
	for _, opt := range cliOptions() {
		opt(&options)
	}
	return options
}

func TestCLIOptions(t *testing.T) {
	defer func() {
		flagIndent = penman.IndentAuto
		flagNoAlign = false
		flagCompact = false
		flagTriples = false
		flagAMR = false
	}()

	flagIndent = penman.IndentAuto
	flagNoAlign = true
	flagCompact = true
	flagTriples = true
	flagAMR = true

	options := applyCLIOptions(t)
	if options.Indent != penman.IndentNone {
		t.Fatalf("indent = %d, want IndentNone", options.Indent)
	}
	if !options.Compact || !options.Triples {
		t.Fatalf("compact/triples not applied: %+v", options)
	}
	if options.Model != penman.AMRModel {
		t.Fatal("--amr did not select the AMR model")
	}
}
