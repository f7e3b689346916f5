package annotation

import (
	"strings"
	"time"
)

// Record represents one machine-generated attitude annotation extracted
// from a news article sentence.
type Record struct {
	ID               int     `json:"id"`
	Title            string  `json:"title"`
	Date             string  `json:"date"`
	Journal          string  `json:"journal"`
	Company          string  `json:"company"`
	Region           string  `json:"region,omitempty"`
	Sentiment        string  `json:"sentiment"`
	SentimentScore   float64 `json:"sentimentScore"`
	AttitudeType     string  `json:"attitudeType"`
	AttitudeSubtype  string  `json:"attitudeSubtype"`
	AttitudePolarity string  `json:"attitudePolarity"`
	MatchedText      string  `json:"matchedText"`
	MatchType        string  `json:"matchType"`
	NumMatches       int     `json:"numMatches"`
	Sentence         string  `json:"sentence"`
	SentenceRaw      string  `json:"sentenceRaw"`
}

// dateLayouts lists the date formats accepted in source datasets.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
}

// ParsedDate parses the record's date field.
func (r Record) ParsedDate() (time.Time, bool) {
	s := strings.TrimSpace(r.Date)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// HasAttitude reports whether the record carries an attitude annotation.
// Extraction pipelines emit an empty string or "nan" when no attitude was
// found in the sentence.
func (r Record) HasAttitude() bool {
	return r.AttitudeType != "" && r.AttitudeType != "nan"
}

// EditRecord captures an original/edited pair for one record. The original
// snapshot is re-captured from the current in-memory record at every save,
// so a second edit diffs against the previously saved state, not the
// pristine load-time values.
type EditRecord struct {
	ID              int    `json:"id"`
	Original        Record `json:"original"`
	Edited          Record `json:"edited"`
	SentenceChanged bool   `json:"sentenceChanged"`
}

// Added is an annotation attached to an existing record by a reviewer,
// for sentences carrying more than one appraisal. Descriptive fields are
// inherited from the parent record at creation time.
type Added struct {
	ParentID         int    `json:"parentId"`
	AttitudeType     string `json:"attitudeType"`
	AttitudeSubtype  string `json:"attitudeSubtype"`
	AttitudePolarity string `json:"attitudePolarity"`
	MatchedText      string `json:"matchedText"`
	Title            string `json:"title"`
	Date             string `json:"date"`
	Journal          string `json:"journal"`
	Company          string `json:"company"`
	Region           string `json:"region,omitempty"`
	Sentence         string `json:"sentence"`
	SentenceRaw      string `json:"sentenceRaw"`
}

// AdditionGroup is the set of added annotations attached to one parent id.
type AdditionGroup struct {
	ParentID    int     `json:"parentId"`
	Annotations []Added `json:"annotations"`
}
