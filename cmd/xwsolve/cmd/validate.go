package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/crossplay/solver/internal/puzfile"
)

var validateCmd = &cobra.Command{
	Use:   "validate [puzzle files...]",
	Short: "Validate crossword puzzle files",
	Long: `validate checks that one or more .puz files parse correctly and
describe a well-formed Puzzle: every slot stays in-bounds and off black
cells, and every white cell is reachable from every other -- the
standalone exposure of the original's Crossword._validate, the way
cmd/crossgen/cmd/validate.go validates a puzzle before writing it out.

Example:
  xwsolve validate puzzle.puz`,
	Args: cobra.MinimumNArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	invalid := 0
	for _, path := range args {
		if err := validatePuzzleFile(path); err != nil {
			fmt.Printf("%s: INVALID - %v\n", filepath.Base(path), err)
			invalid++
			continue
		}
		fmt.Printf("%s: VALID\n", filepath.Base(path))
	}

	fmt.Printf("\n%d of %d files valid\n", len(args)-invalid, len(args))
	if invalid > 0 {
		os.Exit(1)
	}
	return nil
}

func validatePuzzleFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading file: %w", err)
	}
	pf, err := puzfile.ReadPuz(data)
	if err != nil {
		return fmt.Errorf("parsing .puz: %w", err)
	}
	p, err := pf.ToModel(false)
	if err != nil {
		return fmt.Errorf("building puzzle model: %w", err)
	}
	if err := p.Validate(); err != nil {
		return err
	}
	return nil
}
