package metrics

import (
	"github.com/lehigh-university-libraries/langbench/internal/eval/dataset"
)

// Metric names of the language detection task.
const (
	LanguageTotal    = "language total"
	GroupTotal       = "group total"
	FamilyTotal      = "family total"
	LanguageKnown    = "language known"
	GroupKnown       = "group known"
	FamilyKnown      = "family known"
	LanguageSurprise = "language surprise"
	GroupSurprise    = "group surprise"
	FamilySurprise   = "family surprise"
)

// LanguageDetectionKeys are the metrics always reported for language detection.
var LanguageDetectionKeys = []string{
	LanguageTotal, GroupTotal, FamilyTotal,
	LanguageKnown, GroupKnown, FamilyKnown,
}

// LevelCounts counts correct predictions at one level of the taxonomy.
type LevelCounts struct {
	Known    int `yaml:"known" json:"known"`
	Surprise int `yaml:"surprise" json:"surprise"`
}

// Correct returns the number of correct predictions across both splits.
func (c LevelCounts) Correct() int {
	return c.Known + c.Surprise
}

// LanguageCounts are the raw tallies behind the language detection metrics.
type LanguageCounts struct {
	Total    int         `yaml:"total" json:"total"`
	Surprise int         `yaml:"surprise" json:"surprise"`
	Family   LevelCounts `yaml:"family" json:"family"`
	Group    LevelCounts `yaml:"group" json:"group"`
	Language LevelCounts `yaml:"language" json:"language"`
}

// KnownTotal is the number of records whose reference language is known.
func (c LanguageCounts) KnownTotal() int {
	return c.Total - c.Surprise
}

// CountLanguages tallies hierarchical matches over the matched pairs of an
// alignment. A level is only checked when every coarser level matched, so a
// language match always implies group and family matches.
func CountLanguages(a *Alignment) LanguageCounts {
	c := LanguageCounts{Total: a.Len()}

	for _, p := range a.Pairs {
		if !p.Matched {
			continue
		}

		surprise := p.Reference.IsSurprise()
		if surprise {
			c.Surprise++
		}

		if p.Submission.Family != p.Reference.Family {
			continue
		}
		c.Family.inc(surprise)

		if p.Submission.Group != p.Reference.Group {
			continue
		}
		c.Group.inc(surprise)

		if p.Submission.Language != p.Reference.Language {
			continue
		}
		c.Language.inc(surprise)
	}

	return c
}

func (c *LevelCounts) inc(surprise bool) {
	if surprise {
		c.Surprise++
	} else {
		c.Known++
	}
}

// ScoreLanguage scores the three-level language identification task.
// Surprise metrics are only reported when the reference holds at least one
// surprise record. Known metrics are 0 when every record is a surprise.
func ScoreLanguage(submission, reference []dataset.Record) *Result {
	a, r := align("language detection", submission, reference)
	if a == nil {
		return r
	}

	c := CountLanguages(a)
	r.Counts = &c

	r.add(LanguageTotal, ratio(c.Language.Correct(), c.Total))
	r.add(GroupTotal, ratio(c.Group.Correct(), c.Total))
	r.add(FamilyTotal, ratio(c.Family.Correct(), c.Total))

	known := c.KnownTotal()
	r.add(LanguageKnown, ratio(c.Language.Known, known))
	r.add(GroupKnown, ratio(c.Group.Known, known))
	r.add(FamilyKnown, ratio(c.Family.Known, known))

	if c.Surprise > 0 {
		r.add(LanguageSurprise, ratio(c.Language.Surprise, c.Surprise))
		r.add(GroupSurprise, ratio(c.Group.Surprise, c.Surprise))
		r.add(FamilySurprise, ratio(c.Family.Surprise, c.Surprise))
	}

	return r
}
