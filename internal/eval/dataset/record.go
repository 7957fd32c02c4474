package dataset

const (
	// Delimiter separates columns in a benchmark TSV file.
	Delimiter = "\t"
	// LanguageUnknown is the reference language label of held-out ("surprise") utterances.
	LanguageUnknown = "X"
	// MinColumns is the number of columns every record line must have.
	MinColumns = 5
)

// Optional column names.
const (
	FieldComment           = "comment"
	FieldProbablyRepeating = "probably_repeating"
	FieldProbablyStimulus  = "probably_stimulus"
	FieldNumSpeakers       = "num_speakers"
)

// Layout names the optional columns that may follow the five required ones,
// in column order. A field is only set when its column is present.
type Layout []string

var (
	// LanguageDetectionLayout is used by the single-task language detection evaluator.
	LanguageDetectionLayout = Layout{FieldComment}

	// MultiTaskLayout is used for the four-task submission format.
	MultiTaskLayout = Layout{FieldProbablyRepeating, FieldProbablyStimulus, FieldNumSpeakers}
)

// LayoutByName resolves a layout from its command-line name.
func LayoutByName(name string) (Layout, bool) {
	switch name {
	case "comment":
		return LanguageDetectionLayout, true
	case "multi":
		return MultiTaskLayout, true
	}
	return nil, false
}

// Record is one utterance line of a submission or reference file.
type Record struct {
	ID       string
	Text     string
	Language string
	Group    string
	Family   string

	// Extra holds the optional trailing columns that were present on the line.
	Extra map[string]string
}

// Field returns an optional field and whether it was present.
func (r Record) Field(name string) (string, bool) {
	v, ok := r.Extra[name]
	return v, ok
}

// IsSurprise reports whether the record's language is the unknown label.
func (r Record) IsSurprise() bool {
	return r.Language == LanguageUnknown
}

// newRecord maps the split columns of a line onto a Record.
// parts must hold at least MinColumns entries.
func newRecord(parts []string, layout Layout) Record {
	rec := Record{
		ID:       parts[0],
		Text:     parts[1],
		Language: parts[2],
		Group:    parts[3],
		Family:   parts[4],
	}

	extra := parts[MinColumns:]
	for i, name := range layout {
		if i >= len(extra) {
			break
		}
		if rec.Extra == nil {
			rec.Extra = make(map[string]string, len(layout))
		}
		rec.Extra[name] = extra[i]
	}

	return rec
}
