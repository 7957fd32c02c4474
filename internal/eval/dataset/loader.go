package dataset

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/parquet-go/parquet-go"

	"github.com/lehigh-university-libraries/langbench/internal/eval/evalerr"
)

// Loader reads benchmark record files
type Loader struct {
	path   string
	layout Layout
}

// NewLoader creates a loader for path; layout names the optional columns.
func NewLoader(path string, layout Layout) *Loader {
	return &Loader{
		path:   path,
		layout: layout,
	}
}

// Load loads records from a record file (TSV or Parquet)
func (l *Loader) Load() ([]Record, error) {
	ext := strings.ToLower(filepath.Ext(l.path))

	switch ext {
	case ".tsv", ".txt":
		return l.loadTSV()
	case ".parquet":
		return l.loadParquet()
	default:
		return nil, fmt.Errorf("unsupported file format: %s (supported: .tsv, .txt, .parquet)", ext)
	}
}

// loadTSV reads a tab separated file. The first line is a header and is
// skipped without validation. Lines with fewer than MinColumns parts make the
// whole read fail; every offending line index is reported.
func (l *Loader) loadTSV() ([]Record, error) {
	slog.Debug("Opening TSV file", "path", l.path)

	file, err := os.Open(l.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open record file: %w", err)
	}
	defer file.Close()

	return l.readTSV(file)
}

func (l *Loader) readTSV(r io.Reader) ([]Record, error) {
	scanner := bufio.NewScanner(r)

	// Transcriptions can be long
	const maxCapacity = 10 * 1024 * 1024
	buf := make([]byte, 64*1024)
	scanner.Buffer(buf, maxCapacity)

	var records []Record
	var badLines []int

	index := -1
	for scanner.Scan() {
		index++
		if index == 0 {
			continue
		}

		line := strings.TrimRightFunc(scanner.Text(), unicode.IsSpace)
		parts := strings.Split(line, Delimiter)
		if len(parts) < MinColumns {
			badLines = append(badLines, index)
			continue
		}

		records = append(records, newRecord(parts, l.layout))
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading %s: %w", l.path, err)
	}

	if len(badLines) > 0 {
		slog.Debug("Rejecting record file", "path", l.path, "bad_lines", len(badLines))
		return nil, evalerr.Malformed(l.path, badLines)
	}

	slog.Debug("Finished reading TSV file", "path", l.path, "total_records", len(records))

	return records, nil
}

// loadParquet loads records from a Parquet file
func (l *Loader) loadParquet() ([]Record, error) {
	slog.Debug("Opening Parquet file", "path", l.path)

	file, err := os.Open(l.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open parquet file: %w", err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	pf, err := parquet.OpenFile(file, info.Size())
	if err != nil {
		return nil, fmt.Errorf("failed to open parquet: %w", err)
	}

	var missing []string
	for _, column := range requiredColumns {
		if _, ok := pf.Schema().Lookup(column); !ok {
			missing = append(missing, column)
		}
	}
	if len(missing) > 0 {
		return nil, evalerr.MissingColumns(l.path, missing)
	}

	slog.Debug("Parquet file opened successfully", "num_rows", pf.NumRows(), "num_row_groups", len(pf.RowGroups()))

	reader := parquet.NewGenericReader[parquetRecord](pf)
	defer reader.Close()

	records := make([]Record, 0, pf.NumRows())
	rows := make([]parquetRecord, 128)

	for {
		clear(rows)
		n, err := reader.Read(rows)
		for _, row := range rows[:n] {
			records = append(records, row.toRecord(l.layout))
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("failed to read parquet rows: %w", err)
		}
	}

	slog.Debug("Finished reading Parquet file", "path", l.path, "total_records", len(records))

	return records, nil
}
