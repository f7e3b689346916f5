package export

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"sentiview/internal/annotation"
)

func TestJSONNoChanges(t *testing.T) {
	if _, err := JSON(nil, nil, time.Now()); !errors.Is(err, ErrNoChanges) {
		t.Errorf("JSON with nothing pending: err = %v, want ErrNoChanges", err)
	}
}

func TestJSON(t *testing.T) {
	now := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)
	edits := []annotation.EditRecord{
		{
			ID:       2,
			Original: annotation.Record{ID: 2, AttitudeType: "affect"},
			Edited:   annotation.Record{ID: 2, AttitudeType: "judgement"},
		},
	}
	groups := []annotation.AdditionGroup{
		{
			ParentID: 5,
			Annotations: []annotation.Added{
				{ParentID: 5, MatchedText: "strong"},
				{ParentID: 5, MatchedText: "weak"},
			},
		},
		{
			ParentID: 9,
			Annotations: []annotation.Added{
				{ParentID: 9, MatchedText: "steady"},
			},
		},
	}

	data, err := JSON(edits, groups, now)
	if err != nil {
		t.Fatalf("JSON() error = %v", err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("export is not valid JSON: %v", err)
	}

	if doc.ExportDate != "2024-03-15T10:30:00Z" {
		t.Errorf("exportDate = %q", doc.ExportDate)
	}
	if doc.Summary.TotalEdits != 1 {
		t.Errorf("totalEdits = %d, want 1", doc.Summary.TotalEdits)
	}
	// Additions are counted individually, not per parent.
	if doc.Summary.TotalAdditions != 3 {
		t.Errorf("totalAdditions = %d, want 3", doc.Summary.TotalAdditions)
	}
	if len(doc.ModifiedData) != 1 || doc.ModifiedData[0].ID != 2 {
		t.Errorf("modifiedData = %+v", doc.ModifiedData)
	}
	if len(doc.AddedAnnotations) != 2 || doc.AddedAnnotations[0].ParentID != 5 {
		t.Errorf("addedAnnotations = %+v", doc.AddedAnnotations)
	}
}

func TestJSONEmptySlicesNotNull(t *testing.T) {
	now := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	data, err := JSON(nil, []annotation.AdditionGroup{{ParentID: 1, Annotations: []annotation.Added{{ParentID: 1}}}}, now)
	if err != nil {
		t.Fatalf("JSON() error = %v", err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if string(raw["modifiedData"]) == "null" {
		t.Error("modifiedData encoded as null, want []")
	}
}
