package metrics

import (
	"github.com/lehigh-university-libraries/langbench/internal/eval/dataset"
)

// lang builds a language detection record.
func lang(id, language, group, family string) dataset.Record {
	return dataset.Record{ID: id, Text: "text", Language: language, Group: group, Family: family}
}

// text builds a transcription record.
func text(id, t string) dataset.Record {
	return dataset.Record{ID: id, Text: t, Language: "eng", Group: "germanic", Family: "indo-european"}
}

// speakers builds a speaker count record; num_speakers is set only when present.
func speakers(id, n string, present bool) dataset.Record {
	r := dataset.Record{ID: id, Text: "text", Language: "eng", Group: "germanic", Family: "indo-european"}
	if present {
		r.Extra = map[string]string{dataset.FieldNumSpeakers: n}
	}
	return r
}
