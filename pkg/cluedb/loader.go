package cluedb

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/crossplay/solver/internal/logging"
	"github.com/crossplay/solver/pkg/xwerrors"
)

// parseRecord parses one fixed-column historical clue record line,
// grounded on ClueDBRecord.parse: columns [0,26) hold the answer,
// column 26 a single source-count digit, [28,32) the year, [33,36) the
// source code, and everything from 37 onward the clue text. Short or
// malformed lines are skipped by the caller, matching the original's
// try/except around ClueDBRecord.parse inside ClueDB.load.
func parseRecord(line string) (Record, error) {
	if len(line) < 37 {
		return Record{}, fmt.Errorf("record line too short (%d bytes): %w", len(line), xwerrors.ErrParse)
	}

	answer := strings.TrimRight(line[:26], " \t")
	year := -1
	if len(line) >= 32 {
		if y, err := strconv.Atoi(strings.TrimSpace(line[28:32])); err == nil {
			year = y
		}
	}
	source := ""
	if len(line) >= 36 {
		source = strings.TrimSpace(line[33:36])
	}
	text := strings.TrimRight(line[37:], " \t\r\n")

	if answer == "" || text == "" {
		return Record{}, fmt.Errorf("record missing answer or clue text: %w", xwerrors.ErrParse)
	}

	return Record{Answer: answer, Clue: text, Year: year, Source: source}, nil
}

// LoadOptions restricts which records LoadRecords keeps, mirroring the
// source and year_range filters on ClueDB.load.
type LoadOptions struct {
	// Source, if non-empty, keeps only records whose source code matches
	// exactly.
	Source string
	// YearMin and YearMax, if YearMax > 0, restrict records to
	// [YearMin, YearMax] inclusive.
	YearMin, YearMax int
}

func (o LoadOptions) accepts(r Record) bool {
	if o.Source != "" && r.Source != o.Source {
		return false
	}
	if o.YearMax > 0 && (r.Year < o.YearMin || r.Year > o.YearMax) {
		return false
	}
	return true
}

// LoadRecords reads fixed-column historical clue records from r, adding
// every accepted one to idx. Malformed lines are logged and skipped
// rather than aborting the whole load, matching ClueDB.load's
// logger.exception-and-continue behavior.
func LoadRecords(idx *HistoricalIndex, r io.Reader, opts LoadOptions) (int, error) {
	logger := logging.Default()
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	added := 0
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		record, err := parseRecord(line)
		if err != nil {
			logger.Warningf("skipping invalid clue record at line %d: %v", lineNo, err)
			continue
		}
		if !opts.accepts(record) {
			continue
		}

		idx.AddRecord(record)
		added++
	}
	if err := scanner.Err(); err != nil {
		return added, fmt.Errorf("reading historical records: %w", err)
	}
	return added, nil
}
