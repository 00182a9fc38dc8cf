// Package csvsource loads plottable data from CSV files and can follow
// files that are still being appended to.
//
// The expected layout is a header row followed by numeric records: the first
// column is the key (for example a timestamp), every further column becomes
// one series. Cells that fail to parse are skipped rather than aborting the
// whole load.
package csvsource

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/fsnotify/fsnotify"

	"git.sr.ht/~whereswaldon/chartkit"
)

// Series is one named data column.
type Series struct {
	Name string
	Data *chartkit.GraphData
}

// Table is the parsed contents of one CSV source.
type Table struct {
	// KeyLabel is the header of the key column.
	KeyLabel string
	Series   []Series
}

// SeriesByName returns the series with the given header, or nil.
func (t *Table) SeriesByName(name string) *Series {
	for i := range t.Series {
		if t.Series[i].Name == name {
			return &t.Series[i]
		}
	}
	return nil
}

// Load parses CSV data from r. It fails only when the header cannot be read;
// malformed cells and rows are skipped.
func Load(r io.Reader) (*Table, error) {
	csvReader := csv.NewReader(r)
	csvReader.TrimLeadingSpace = true
	csvReader.FieldsPerRecord = -1
	headings, err := csvReader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading csv header: %w", err)
	}
	if len(headings) < 2 {
		return nil, fmt.Errorf("csv needs a key column and at least one value column, got %d columns", len(headings))
	}
	table := &Table{KeyLabel: headings[0]}
	for _, h := range headings[1:] {
		table.Series = append(table.Series, Series{
			Name: strings.TrimSpace(h),
			Data: chartkit.NewGraphData(),
		})
	}
	for {
		rec, err := csvReader.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return table, nil
			}
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				// tolerate ragged or malformed rows
				continue
			}
			return table, fmt.Errorf("reading csv record: %w", err)
		}
		table.appendRecord(rec)
	}
}

func (t *Table) appendRecord(rec []string) {
	if len(rec) < 2 {
		return
	}
	key, err := strconv.ParseFloat(strings.TrimSpace(rec[0]), 64)
	if err != nil {
		return
	}
	for i := 1; i < len(rec) && i-1 < len(t.Series); i++ {
		cell := strings.TrimSpace(rec[i])
		if cell == "" {
			// null cell
			continue
		}
		value, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			continue
		}
		t.Series[i-1].Data.AddKV(key, value)
	}
}

// LoadFile parses the CSV file at path.
func LoadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening csv source: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// loadComplete parses the file at path, withholding any trailing line that
// has not been newline-terminated yet. A writer appending to the file may be
// mid-record when the reload fires.
func loadComplete(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening csv source: %w", err)
	}
	defer f.Close()
	return Load(newLineReader(f))
}

// Watch parses the file at path and re-parses it whenever it is written to,
// sending each complete parse on the returned channel. The channel carries
// the initial contents immediately and closes when ctx is cancelled.
func Watch(ctx context.Context, path string) (<-chan *Table, error) {
	initial, err := loadComplete(path)
	if err != nil {
		return nil, err
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating file watcher: %w", err)
	}
	if err := watcher.Add(path); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("watching %q: %w", path, err)
	}

	tables := make(chan *Table, 1)
	tables <- initial
	go func() {
		defer close(tables)
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if ev.Op&fsnotify.Write == 0 {
					continue
				}
				table, err := loadComplete(path)
				if err != nil {
					continue
				}
				select {
				case tables <- table:
				case <-ctx.Done():
					return
				}
			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
			}
		}
	}()
	return tables, nil
}
