package cmd

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/spf13/cobra"

	"github.com/crossplay/solver/internal/benchmark"
	"github.com/crossplay/solver/internal/logging"
	"github.com/crossplay/solver/internal/puzfile"
	"github.com/crossplay/solver/pkg/cluedb"
	"github.com/crossplay/solver/pkg/lexicon"
	"github.com/crossplay/solver/pkg/ranking"
	"github.com/crossplay/solver/pkg/solver"
)

// historicalSearchThreshold is the N-gram similarity cutoff used when
// looking up candidate answers by clue text. It is set above the 0.5
// threshold of spec.md §8's literal fuzzy-search example, so only
// clearly similar clues contribute candidates.
const historicalSearchThreshold = 0.6

var (
	dictionaryPath   string
	cluedbPath       string
	cluedbCachePath  string
	nsolutions       int
	maxExamined      int
	emptyPenalty     int
	incorrectPenalty int
	loggingLevel     string
	nthreads         int
)

// puzzleResult is one worker's outcome, collected back on the main
// goroutine so results print in a stable, input-order sequence rather
// than whatever order the worker pool happens to finish in.
type puzzleResult struct {
	path  string
	best  []ranking.Scored
	score int
	hasGolden bool
	err   error
}

func runSolve(cmd *cobra.Command, args []string) error {
	level, err := logging.ParseLevel(loggingLevel)
	if err != nil {
		return fmt.Errorf("invalid --logging level: %w", err)
	}
	logger := logging.New(os.Stderr, level)

	s, err := buildSolver(logger)
	if err != nil {
		return err
	}

	results := make([]puzzleResult, len(args))
	sem := make(chan struct{}, maxWorkers())
	var wg sync.WaitGroup
	for i, path := range args {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, path string) {
			defer wg.Done()
			defer func() { <-sem }()
			results[i] = solveOne(s, path, logger)
		}(i, path)
	}
	wg.Wait()

	exitCode := 0
	for _, r := range results {
		if r.err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", r.path, r.err)
			exitCode = 1
			continue
		}
		printResult(r)
	}
	if exitCode != 0 {
		os.Exit(exitCode)
	}
	return nil
}

func maxWorkers() int {
	if nthreads <= 0 {
		return 1
	}
	return nthreads
}

func buildSolver(logger *logging.Logger) (solver.Solver, error) {
	var stages []solver.Solver

	if cluedbPath != "" {
		logger.Infof("loading clue database from %s", cluedbPath)
		f, err := os.Open(cluedbPath)
		if err != nil {
			return nil, fmt.Errorf("opening clue database: %w", err)
		}
		defer f.Close()
		idx, err := cluedb.Deserialize(f)
		if err != nil {
			return nil, fmt.Errorf("deserializing clue database: %w", err)
		}
		logger.Infof("loaded %d historical clues", idx.Len())

		if cluedbCachePath != "" {
			cache, err := cluedb.OpenSearchCache(cluedbCachePath)
			if err != nil {
				return nil, fmt.Errorf("opening clue search cache: %w", err)
			}
			idx.SetSearchCache(cache)
		}

		stages = append(stages, &solver.CliqueSolver{
			QueryAnswers: solver.HistoricalQueryAnswers(idx, historicalSearchThreshold),
			Logger:       logger,
		})
	}

	if dictionaryPath != "" {
		logger.Infof("loading dictionary from %s", dictionaryPath)
		lex, err := lexicon.LoadDictionaryFile(dictionaryPath)
		if err != nil {
			return nil, fmt.Errorf("loading dictionary: %w", err)
		}
		logger.Infof("loaded %d dictionary words", lex.Size())
		stages = append(stages, &solver.CliqueSolver{
			QueryAnswers: solver.LexiconQueryAnswers(lex),
			Logger:       logger,
		})
	}

	if len(stages) == 0 {
		return nil, fmt.Errorf("at least one of --dictionary or --cluedb is required")
	}
	if len(stages) == 1 {
		return stages[0], nil
	}
	return &solver.MultiStageSolver{Stages: stages}, nil
}

func solveOne(s solver.Solver, path string, logger *logging.Logger) puzzleResult {
	data, err := os.ReadFile(path)
	if err != nil {
		return puzzleResult{path: path, err: fmt.Errorf("reading puzzle: %w", err)}
	}
	pf, err := puzfile.ReadPuz(data)
	if err != nil {
		return puzzleResult{path: path, err: fmt.Errorf("parsing puzzle: %w", err)}
	}

	working, err := pf.ToModel(false)
	if err != nil {
		return puzzleResult{path: path, err: fmt.Errorf("building puzzle model: %w", err)}
	}
	if err := working.Validate(); err != nil {
		return puzzleResult{path: path, err: fmt.Errorf("invalid puzzle geometry: %w", err)}
	}

	top := ranking.NewTopNWithLimit(nsolutions, maxExamined)
	err = s.Solve(context.Background(), working, func(r ranking.Scored) bool {
		return top.Add(r)
	})
	if err != nil {
		return puzzleResult{path: path, err: fmt.Errorf("solving: %w", err)}
	}

	res := puzzleResult{path: path, best: top.Results()}

	golden, goldenErr := pf.ToModel(true)
	if goldenErr == nil && len(res.best) > 0 {
		score, scoreErr := benchmark.Score(res.best[0].Puzzle, golden, emptyPenalty, incorrectPenalty)
		if scoreErr == nil {
			res.score = score
			res.hasGolden = true
		}
	}

	return res
}

func printResult(r puzzleResult) {
	if len(r.best) == 0 {
		fmt.Printf("%s: no solutions found\n", r.path)
		return
	}
	best := r.best[0]
	fmt.Printf("%s: best fill has %d filled cells", r.path, int(best.Score))
	if r.hasGolden {
		fmt.Printf(", benchmark score %d (lower is better)", r.score)
	}
	fmt.Println()
	for _, slot := range best.Puzzle.Slots {
		fmt.Printf("  %3d %-5s %s  %s\n", slot.Id.Number, slot.Id.Direction, best.Puzzle.GetFill(slot), slot.Clue)
	}
}
