package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/crossplay/solver/pkg/cluedb"
)

var cluedbCmd = &cobra.Command{
	Use:   "cluedb",
	Short: "Build and inspect historical clue databases",
}

var (
	cluedbBuildInput  string
	cluedbBuildOutput string
	cluedbBuildSource string
	cluedbBuildYearMin int
	cluedbBuildYearMax int
)

var cluedbBuildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build a serialized historical clue index from a clue text file",
	Long: `build reads a fixed-column historical clue text file (spec.md §6's
format: answer, count, year, source, clue text) and writes a serialized
HistoricalIndex, the Go analogue of generate_cluedb.py's glob-over-clue-files
step in the original solver.

Example:
  xwsolve cluedb build --input clues.txt --output clues.mpk`,
	RunE: runCluedbBuild,
}

func init() {
	rootCmd.AddCommand(cluedbCmd)
	cluedbCmd.AddCommand(cluedbBuildCmd)

	cluedbBuildCmd.Flags().StringVarP(&cluedbBuildInput, "input", "i", "", "path to the fixed-column clue text file (required)")
	cluedbBuildCmd.Flags().StringVarP(&cluedbBuildOutput, "output", "o", "clues.mpk", "path to write the serialized clue index")
	cluedbBuildCmd.Flags().StringVar(&cluedbBuildSource, "source", "", "if set, only load records from this source tag")
	cluedbBuildCmd.Flags().IntVar(&cluedbBuildYearMin, "year-min", 0, "if nonzero and --year-max is set, only load records at or after this year")
	cluedbBuildCmd.Flags().IntVar(&cluedbBuildYearMax, "year-max", 0, "if nonzero, only load records at or before this year")
	cluedbBuildCmd.MarkFlagRequired("input")
}

func runCluedbBuild(cmd *cobra.Command, args []string) error {
	in, err := os.Open(cluedbBuildInput)
	if err != nil {
		return fmt.Errorf("opening input: %w", err)
	}
	defer in.Close()

	idx := cluedb.New()
	n, err := cluedb.LoadRecords(idx, in, cluedb.LoadOptions{
		Source:  cluedbBuildSource,
		YearMin: cluedbBuildYearMin,
		YearMax: cluedbBuildYearMax,
	})
	if err != nil {
		return fmt.Errorf("loading records: %w", err)
	}
	fmt.Printf("loaded %d records into %d distinct clues\n", n, idx.Len())

	out, err := os.Create(cluedbBuildOutput)
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}
	defer out.Close()

	if err := idx.Serialize(out); err != nil {
		return fmt.Errorf("serializing clue index: %w", err)
	}
	fmt.Printf("wrote clue index to %s\n", cluedbBuildOutput)
	return nil
}
