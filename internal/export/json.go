package export

import (
	"encoding/json"
	"fmt"
	"time"

	"sentiview/internal/annotation"
)

// Summary counts what the structured export contains. TotalAdditions sums
// individual added annotations across all parents, which deliberately
// differs from the store's change count (that one counts touched items).
type Summary struct {
	TotalEdits     int `json:"totalEdits"`
	TotalAdditions int `json:"totalAdditions"`
}

// Document is the structured corrections export.
type Document struct {
	ExportDate       string                     `json:"exportDate"`
	Summary          Summary                    `json:"summary"`
	ModifiedData     []annotation.EditRecord    `json:"modifiedData"`
	AddedAnnotations []annotation.AdditionGroup `json:"addedAnnotations"`
}

// JSON encodes pending corrections as an indented structured document.
// Edits and addition groups are expected in id order for deterministic
// output.
func JSON(edits []annotation.EditRecord, groups []annotation.AdditionGroup, now time.Time) ([]byte, error) {
	if len(edits) == 0 && len(groups) == 0 {
		return nil, ErrNoChanges
	}

	totalAdditions := 0
	for _, g := range groups {
		totalAdditions += len(g.Annotations)
	}

	doc := Document{
		ExportDate: now.UTC().Format(time.RFC3339),
		Summary: Summary{
			TotalEdits:     len(edits),
			TotalAdditions: totalAdditions,
		},
		ModifiedData:     edits,
		AddedAnnotations: groups,
	}
	if doc.ModifiedData == nil {
		doc.ModifiedData = []annotation.EditRecord{}
	}
	if doc.AddedAnnotations == nil {
		doc.AddedAnnotations = []annotation.AdditionGroup{}
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode corrections: %w", err)
	}
	return data, nil
}
