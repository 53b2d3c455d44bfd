package cluedb

import (
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"
)

// serializedEntry is one clue's wire record: the clue string and the
// list of answers ever recorded for it. This mirrors ClueDB.serialize's
// loop of msgpack.pack((clue, list(answers))) for every entry in
// self._clue_to_answers.
type serializedEntry struct {
	_msgpack struct{} `msgpack:",as_array"`

	Clue    string   `msgpack:"clue"`
	Answers []string `msgpack:"answers"`
}

// Serialize writes the index as a msgpack stream of (clue, answers)
// pairs, one per indexed clue, the Go analogue of ClueDB.serialize.
func (idx *HistoricalIndex) Serialize(w io.Writer) error {
	enc := msgpack.NewEncoder(w)
	for clue, answers := range idx.clueToAnswers {
		entry := serializedEntry{
			Clue:    clue,
			Answers: make([]string, 0, len(answers)),
		}
		for a := range answers {
			entry.Answers = append(entry.Answers, a)
		}
		if err := enc.Encode(entry); err != nil {
			return fmt.Errorf("encoding clue %q: %w", clue, err)
		}
	}
	return nil
}

// Deserialize reads a msgpack stream written by Serialize and rebuilds
// a HistoricalIndex from it, the Go analogue of ClueDB.deserialize's
// msgpack.Unpacker loop feeding db.add(clue, answer) for every answer.
func Deserialize(r io.Reader) (*HistoricalIndex, error) {
	idx := New()
	dec := msgpack.NewDecoder(r)
	for {
		var entry serializedEntry
		err := dec.Decode(&entry)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("decoding historical index: %w", err)
		}
		for _, answer := range entry.Answers {
			idx.Add(entry.Clue, answer)
		}
	}
	return idx, nil
}
