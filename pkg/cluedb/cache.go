package cluedb

import (
	"database/sql"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"

	_ "github.com/mattn/go-sqlite3"
)

// SearchCache is an optional sqlite-backed cache of fuzzy Search results,
// keyed by (normalized clue, threshold). HistoricalIndex.Search consults
// it before running the n-gram scan and populates it after, so repeated
// lookups of the same clue at the same threshold -- the common case while
// a solver iterates over the same puzzle -- skip the shingle scan
// entirely after the first call.
type SearchCache struct {
	db *sql.DB
}

// OpenSearchCache opens (creating if necessary) a sqlite database at path
// and ensures its schema exists.
func OpenSearchCache(path string) (*SearchCache, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("opening cluedb cache %q: %w", path, err)
	}
	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS search_cache (
			clue      TEXT    NOT NULL,
			threshold REAL    NOT NULL,
			matches   BLOB    NOT NULL,
			PRIMARY KEY (clue, threshold)
		)
	`); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating search_cache table: %w", err)
	}
	return &SearchCache{db: db}, nil
}

// Close releases the underlying database handle.
func (c *SearchCache) Close() error {
	if c.db == nil {
		return nil
	}
	return c.db.Close()
}

// lookup returns a previously cached Search result for (clue, threshold),
// and whether one was found.
func (c *SearchCache) lookup(clue string, threshold float64) ([]SearchMatch, bool) {
	if c.db == nil {
		return nil, false
	}
	var blob []byte
	err := c.db.QueryRow(
		`SELECT matches FROM search_cache WHERE clue = ? AND threshold = ?`,
		clue, threshold,
	).Scan(&blob)
	if err != nil {
		return nil, false
	}
	var matches []SearchMatch
	if err := msgpack.Unmarshal(blob, &matches); err != nil {
		return nil, false
	}
	return matches, true
}

// store records matches as the Search result for (clue, threshold),
// overwriting any previous entry.
func (c *SearchCache) store(clue string, threshold float64, matches []SearchMatch) error {
	if c.db == nil {
		return fmt.Errorf("search cache is not open")
	}
	blob, err := msgpack.Marshal(matches)
	if err != nil {
		return fmt.Errorf("encoding search result for %q: %w", clue, err)
	}
	_, err = c.db.Exec(
		`INSERT OR REPLACE INTO search_cache (clue, threshold, matches) VALUES (?, ?, ?)`,
		clue, threshold, blob,
	)
	if err != nil {
		return fmt.Errorf("storing search result for %q: %w", clue, err)
	}
	return nil
}
