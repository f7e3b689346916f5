// Package export serializes pending corrections into the CSV and JSON
// interchange formats consumed by the downstream annotation pipeline.
package export

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"sentiview/internal/annotation"
)

// ErrNoChanges is returned when there is nothing to export.
var ErrNoChanges = errors.New("no changes to export")

// csvHeader is the fixed column order of the corrections CSV.
const csvHeader = "Change_Type,ID,Original_Type,Original_Subtype,Original_Polarity,Original_MatchedText,Original_Sentence,New_Type,New_Subtype,New_Polarity,New_MatchedText,New_Sentence,Sentence_Changed,Title,Date,Company,Journal\n"

// CSV encodes pending corrections as a corrections file: one EDIT row per
// edit and one ADD row per added annotation. ADD rows are emitted only for
// parents still present in the dataset; additions whose parent is gone are
// dropped silently. Every column except Change_Type and ID is quoted, with
// embedded quotes doubled in the free-text columns.
func CSV(edits []annotation.EditRecord, groups []annotation.AdditionGroup, present func(id int) bool) (string, error) {
	if len(edits) == 0 && len(groups) == 0 {
		return "", ErrNoChanges
	}

	var b strings.Builder
	b.WriteString(csvHeader)

	for _, e := range edits {
		orig := e.Original
		edit := e.Edited
		sentenceChanged := "NO"
		if e.SentenceChanged {
			sentenceChanged = "YES"
		}
		fmt.Fprintf(&b, "EDIT,%d,\"%s\",\"%s\",\"%s\",\"%s\",\"%s\",\"%s\",\"%s\",\"%s\",\"%s\",\"%s\",\"%s\",\"%s\",\"%s\",\"%s\",\"%s\"\n",
			e.ID,
			orig.AttitudeType, orig.AttitudeSubtype, orig.AttitudePolarity,
			orig.MatchedText, escapeQuotes(orig.SentenceRaw),
			edit.AttitudeType, edit.AttitudeSubtype, edit.AttitudePolarity,
			edit.MatchedText, escapeQuotes(edit.SentenceRaw),
			sentenceChanged,
			escapeQuotes(edit.Title), edit.Date,
			escapeQuotes(edit.Company), escapeQuotes(edit.Journal))
	}

	for _, g := range groups {
		if !present(g.ParentID) {
			continue
		}
		for _, ann := range g.Annotations {
			fmt.Fprintf(&b, "ADD,%d,\"\",\"\",\"\",\"\",\"%s\",\"%s\",\"%s\",\"%s\",\"%s\",\"\",\"NO\",\"%s\",\"%s\",\"%s\",\"%s\"\n",
				g.ParentID,
				escapeQuotes(ann.SentenceRaw),
				ann.AttitudeType, ann.AttitudeSubtype, ann.AttitudePolarity,
				ann.MatchedText,
				escapeQuotes(ann.Title), ann.Date,
				escapeQuotes(ann.Company), escapeQuotes(ann.Journal))
		}
	}

	return b.String(), nil
}

// escapeQuotes doubles embedded quotes per the usual CSV convention.
func escapeQuotes(s string) string {
	return strings.ReplaceAll(s, `"`, `""`)
}

// CSVFilename names the corrections CSV after the export date.
func CSVFilename(now time.Time) string {
	return fmt.Sprintf("corrections_%s.csv", now.Format("2006-01-02"))
}

// JSONFilename names the structured export after the source dataset and
// the export date.
func JSONFilename(sourcePath string, now time.Time) string {
	base := filepath.Base(sourcePath)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	if base == "" || base == "." {
		base = "dataset"
	}
	return fmt.Sprintf("corrections_%s_%s.json", base, now.Format("2006-01-02"))
}
