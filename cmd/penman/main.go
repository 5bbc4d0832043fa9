// Command penman reformats PENMAN graphs.
//
// It reads graphs from the given files (or stdin when none are given)
// and writes them back out under the requested layout options.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/geoknoesis/penman-go/penman"
)

var (
	flagIndent  int
	flagNoAlign bool
	flagCompact bool
	flagTriples bool
	flagAMR     bool
	flagOutput  string
)

var rootCmd = &cobra.Command{
	Use:   "penman [file...]",
	Short: "Read and reformat PENMAN-notation graphs",
	Long: `Reads PENMAN graphs from files or stdin and reformats them to stdout
or --output. Graphs in the output are separated by blank lines.`,
	Args: cobra.ArbitraryArgs,
	RunE: run,
}

func init() {
	rootCmd.Flags().IntVar(&flagIndent, "indent", penman.IndentAuto, "fixed indent columns (-1 for automatic alignment)")
	rootCmd.Flags().BoolVar(&flagNoAlign, "no-indent", false, "write each graph on a single line")
	rootCmd.Flags().BoolVar(&flagCompact, "compact", false, "keep leading attributes on the first line")
	rootCmd.Flags().BoolVar(&flagTriples, "triples", false, "read and write triple conjunctions")
	rootCmd.Flags().BoolVar(&flagAMR, "amr", false, "use the AMR role model for inversion")
	rootCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "write output to a file instead of stdout")
}

// cliOptions maps the parsed flags onto codec options.
func cliOptions() []penman.Option {
	opts := []penman.Option{penman.WithIndent(flagIndent)}
	if flagNoAlign {
		opts = []penman.Option{penman.WithIndent(penman.IndentNone)}
	}
	if flagCompact {
		opts = append(opts, penman.WithCompact())
	}
	if flagTriples {
		opts = append(opts, penman.WithTriples())
	}
	if flagAMR {
		opts = append(opts, penman.WithModel(penman.AMRModel))
	}
	return opts
}

func run(cmd *cobra.Command, args []string) error {
	opts := cliOptions()

	var graphs []*penman.Graph
	if len(args) == 0 {
		loaded, err := penman.Load(os.Stdin, opts...)
		if err != nil {
			return err
		}
		graphs = loaded
	}
	for _, path := range args {
		loaded, err := penman.Load(path, opts...)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		graphs = append(graphs, loaded...)
	}

	if flagOutput != "" {
		return penman.Dump(graphs, flagOutput, opts...)
	}
	return penman.Dump(graphs, os.Stdout, opts...)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "penman:", err)
		os.Exit(1)
	}
}
