package dataset

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pingcap/errors"

	"github.com/katalvlaran/mstbench/analyzer"
	"github.com/katalvlaran/mstbench/core"
)

// ReadInput decodes the input document at path. Records are not validated
// here; ToGraph rejects malformed ones per graph.
func ReadInput(path string) (InputData, error) {
	var data InputData
	content, err := os.ReadFile(path)
	if err != nil {
		return data, errors.Trace(err)
	}
	if err = json.Unmarshal(content, &data); err != nil {
		return data, errors.Annotatef(err, "decode input file %s", path)
	}
	return data, nil
}

// WriteInput writes data to path as indented JSON, replacing any existing
// file atomically.
func WriteInput(path string, data InputData) error {
	return writeJSON(path, data)
}

// WriteReport writes r to path as indented JSON, replacing any existing
// file atomically.
func WriteReport(path string, r Report) error {
	return writeJSON(path, r)
}

// Items turns every record into a batch item whose loader builds the graph.
func Items(data InputData) []analyzer.Item {
	items := make([]analyzer.Item, len(data.Graphs))
	for i, rec := range data.Graphs {
		rec := rec
		items[i] = analyzer.Item{
			ID:   rec.ID,
			Load: func() (*core.Graph, error) { return rec.ToGraph() },
		}
	}
	return items
}

// rawInput defers decoding of each record to its batch item.
type rawInput struct {
	Graphs []json.RawMessage `json:"graphs"`
}

// ReadItems decodes the input document at path into batch items that decode
// and build their record lazily. A record whose JSON does not fit
// GraphRecord, e.g. a fractional weight, fails only its own item.
func ReadItems(path string) ([]analyzer.Item, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Trace(err)
	}
	var raw rawInput
	if err = json.Unmarshal(content, &raw); err != nil {
		return nil, errors.Annotatef(err, "decode input file %s", path)
	}

	items := make([]analyzer.Item, len(raw.Graphs))
	for i, msg := range raw.Graphs {
		msg := msg
		id := recordID(msg, i+1)
		items[i] = analyzer.Item{
			ID: id,
			Load: func() (*core.Graph, error) {
				var rec GraphRecord
				if err := json.Unmarshal(msg, &rec); err != nil {
					return nil, fmt.Errorf("%w: graph %d: %w", ErrMalformedInput, id, err)
				}
				return rec.ToGraph()
			},
		}
	}
	return items, nil
}

// recordID reads the "id" of one raw record, falling back to its 1-based
// position when the field is missing or not an integer.
func recordID(msg json.RawMessage, fallback int) int {
	var head struct {
		ID *int `json:"id"`
	}
	if json.Unmarshal(msg, &head) != nil || head.ID == nil {
		return fallback
	}
	return *head.ID
}

func writeJSON(path string, v any) error {
	content, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.Trace(err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err = os.MkdirAll(dir, 0776); err != nil {
			return errors.Trace(err)
		}
	}
	return errors.Annotatef(atomicWrite(path, content), "write %s", path)
}

func atomicWrite(path string, content []byte) error {
	// there's a little chance that rand.Int conflicts
	tmpFile := path + ".tmp" + strconv.Itoa(rand.Int())
	if err := os.WriteFile(tmpFile, content, 0666); err != nil {
		return errors.Trace(err)
	}
	return errors.Trace(os.Rename(tmpFile, path))
}
