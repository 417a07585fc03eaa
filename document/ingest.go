package document

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
)

// Record pairs an ingested document with the document id assigned to it in
// arrival order.
type Record struct {
	DocID uint32
	Value Value
}

// Ingest reads one JSON document per line from r and assigns each a
// zero-based document id in arrival order. A malformed record is a fatal
// input-decode error: Ingest stops and reports the offending 1-based line
// number.
func Ingest(r io.Reader) ([]Record, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	var records []Record
	var docID uint32
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var decoded any
		if err := json.Unmarshal(line, &decoded); err != nil {
			return nil, fmt.Errorf("line %d: invalid json: %w", lineNo, err)
		}

		value, err := FromAny(decoded)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}

		records = append(records, Record{DocID: docID, Value: value})
		docID++
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}

	return records, nil
}
