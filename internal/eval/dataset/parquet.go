package dataset

import (
	"fmt"

	"github.com/parquet-go/parquet-go"
)

var requiredColumns = []string{"id", "text", "language", "group", "family"}

// parquetRecord is the columnar form of a Record. Optional columns are
// nullable so that an absent field survives a round trip.
type parquetRecord struct {
	ID       string `parquet:"id"`
	Text     string `parquet:"text"`
	Language string `parquet:"language"`
	Group    string `parquet:"group"`
	Family   string `parquet:"family"`

	Comment           *string `parquet:"comment,optional"`
	ProbablyRepeating *string `parquet:"probably_repeating,optional"`
	ProbablyStimulus  *string `parquet:"probably_stimulus,optional"`
	NumSpeakers       *string `parquet:"num_speakers,optional"`
}

func (p *parquetRecord) column(name string) **string {
	switch name {
	case FieldComment:
		return &p.Comment
	case FieldProbablyRepeating:
		return &p.ProbablyRepeating
	case FieldProbablyStimulus:
		return &p.ProbablyStimulus
	case FieldNumSpeakers:
		return &p.NumSpeakers
	}
	return nil
}

func (p parquetRecord) toRecord(layout Layout) Record {
	rec := Record{
		ID:       p.ID,
		Text:     p.Text,
		Language: p.Language,
		Group:    p.Group,
		Family:   p.Family,
	}
	for _, name := range layout {
		col := p.column(name)
		if col == nil || *col == nil {
			continue
		}
		if rec.Extra == nil {
			rec.Extra = make(map[string]string, len(layout))
		}
		rec.Extra[name] = **col
	}
	return rec
}

func fromRecord(r Record, layout Layout) parquetRecord {
	row := parquetRecord{
		ID:       r.ID,
		Text:     r.Text,
		Language: r.Language,
		Group:    r.Group,
		Family:   r.Family,
	}
	for _, name := range layout {
		v, ok := r.Field(name)
		col := row.column(name)
		if !ok || col == nil {
			continue
		}
		*col = &v
	}
	return row
}

// WriteParquet writes records to a Parquet file. Only the optional fields
// named by layout are written; the others stay null.
func WriteParquet(path string, records []Record, layout Layout) error {
	rows := make([]parquetRecord, len(records))
	for i, r := range records {
		rows[i] = fromRecord(r, layout)
	}

	if err := parquet.WriteFile(path, rows); err != nil {
		return fmt.Errorf("failed to write parquet file: %w", err)
	}
	return nil
}
