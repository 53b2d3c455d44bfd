// Package cmd implements the xwsolve command-line driver: the root
// `solve` command plus the `cluedb build` and `validate` subcommands,
// grounded on cmd/crossgen/cmd's cobra structure (root.go's
// PersistentFlags/OnInitialize pattern, subcommands registering
// themselves from their own init()).
package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

const version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:   "xwsolve [puzzle files...]",
	Short: "Solve American-style crossword puzzles",
	Long: `xwsolve solves crossword puzzles given a dictionary and/or a historical
clue database, using clique enumeration over a compatibility graph
composed with a dictionary fallback pass.

Examples:
  # Solve a single puzzle using both a clue database and dictionary
  xwsolve --cluedb clues.mpk --dictionary en.txt puzzle.puz

  # Solve several puzzles concurrently, keeping the top 5 fills each
  xwsolve --cluedb clues.mpk --nsolutions 5 --nthreads 4 a.puz b.puz c.puz`,
	Version: version,
	Args:    cobra.MinimumNArgs(1),
	RunE:    runSolve,
}

// Execute adds all child commands to the root command and runs it.
// This is called by main.main(), once.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	if err := godotenv.Load(); err != nil {
		// Absence of a .env file is expected outside development; fall
		// back to whatever is already in the environment.
		_ = err
	}

	rootCmd.Flags().StringVar(&dictionaryPath, "dictionary", "", "path to a dictionary text file (one word per line)")
	rootCmd.Flags().StringVar(&cluedbPath, "cluedb", "", "path to a serialized historical clue index")
	rootCmd.Flags().StringVar(&cluedbCachePath, "cluedb-cache", "", "path to a sqlite cache of fuzzy clue search results (created if absent)")
	rootCmd.Flags().IntVar(&nsolutions, "nsolutions", 10, "number of top solutions to keep per puzzle")
	rootCmd.Flags().IntVar(&maxExamined, "max-examined", 0, "stop each puzzle's solve after examining this many candidates (0 means unbounded)")
	rootCmd.Flags().IntVar(&emptyPenalty, "empty-penalty", 2, "benchmark penalty per unset square, when the puzzle file embeds a solution")
	rootCmd.Flags().IntVar(&incorrectPenalty, "incorrect-penalty", 10, "benchmark penalty per incorrect square, when the puzzle file embeds a solution")
	rootCmd.Flags().StringVar(&loggingLevel, "logging", "info", "logging level: debug, info, warning, error, critical")
	rootCmd.Flags().IntVar(&nthreads, "nthreads", 8, "number of puzzles to solve concurrently")
}
