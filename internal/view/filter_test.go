package view

import (
	"reflect"
	"testing"
	"time"

	"sentiview/internal/annotation"
)

func filterRecords() []annotation.Record {
	return []annotation.Record{
		{ID: 1, Title: "Acme beats estimates", Date: "2023-01-10", Company: "Acme", SentimentScore: 0.9, MatchedText: "strong", Sentence: "A strong quarter."},
		{ID: 2, Title: "Globex under fire", Date: "2023-02-20", Company: "Globex", SentimentScore: 0.7, MatchedText: "scandal", Sentence: "The scandal deepened."},
		{ID: 3, Title: "Acme expands", Date: "2023-02-20", Company: "Acme", SentimentScore: 0.3, MatchedText: "growth", Sentence: "Growth continued."},
		{ID: 4, Title: "Initech steady", Date: "2023-03-05", Company: "N/A", SentimentScore: 0.1, MatchedText: "", Sentence: ""},
	}
}

func ids(records []annotation.Record) []int {
	out := make([]int, len(records))
	for i, r := range records {
		out[i] = r.ID
	}
	return out
}

func date(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

func TestApplyFiltering(t *testing.T) {
	tests := []struct {
		name     string
		criteria Criteria
		want     []int
	}{
		{"no criteria", Criteria{}, []int{1, 2, 3, 4}},
		{"company all", Criteria{Company: "all"}, []int{1, 2, 3, 4}},
		{"company exact", Criteria{Company: "Acme"}, []int{1, 3}},
		{"company no match", Criteria{Company: "Umbrella"}, []int{}},
		{"date from", Criteria{From: date("2023-02-01")}, []int{2, 3, 4}},
		{"date to inclusive of whole day", Criteria{To: date("2023-02-20")}, []int{1, 2, 3}},
		{"date range", Criteria{From: date("2023-02-20"), To: date("2023-02-20")}, []int{2, 3}},
		{"search matched text", Criteria{Search: "SCANDAL"}, []int{2}},
		{"search title", Criteria{Search: "initech"}, []int{4}},
		{"search sentence", Criteria{Search: "quarter"}, []int{1}},
		{"search no hit", Criteria{Search: "zzz"}, []int{}},
		{"search whitespace only", Criteria{Search: "   "}, []int{1, 2, 3, 4}},
		{"combined", Criteria{Company: "Acme", Search: "growth"}, []int{3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Apply(filterRecords(), tt.criteria, SortNone)
			if !reflect.DeepEqual(ids(got), tt.want) {
				t.Errorf("Apply() ids = %v, want %v", ids(got), tt.want)
			}
		})
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	records := filterRecords()
	Apply(records, Criteria{}, SortDateDesc)
	if !reflect.DeepEqual(ids(records), []int{1, 2, 3, 4}) {
		t.Errorf("input reordered: %v", ids(records))
	}
}

func TestApplySorting(t *testing.T) {
	tests := []struct {
		name string
		key  SortKey
		want []int
	}{
		{"none preserves order", SortNone, []int{1, 2, 3, 4}},
		{"date desc is stable for ties", SortDateDesc, []int{4, 2, 3, 1}},
		{"date asc", SortDateAsc, []int{1, 2, 3, 4}},
		{"score desc", SortScoreDesc, []int{1, 2, 3, 4}},
		{"score asc", SortScoreAsc, []int{4, 3, 2, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Apply(filterRecords(), Criteria{}, tt.key)
			if !reflect.DeepEqual(ids(got), tt.want) {
				t.Errorf("Apply(%s) ids = %v, want %v", tt.key, ids(got), tt.want)
			}
		})
	}
}

func TestApplyOutputIsSubsetInOrder(t *testing.T) {
	records := filterRecords()
	got := Apply(records, Criteria{From: date("2023-01-01"), To: date("2023-12-31")}, SortNone)

	pos := -1
	for _, r := range got {
		found := -1
		for i, in := range records {
			if in.ID == r.ID {
				found = i
				break
			}
		}
		if found < 0 {
			t.Fatalf("output record %d not in input", r.ID)
		}
		if found <= pos {
			t.Fatalf("output out of input order at record %d", r.ID)
		}
		pos = found
	}
}

func TestParseSortKey(t *testing.T) {
	tests := []struct {
		in   string
		want SortKey
	}{
		{"date-desc", SortDateDesc},
		{"score-asc", SortScoreAsc},
		{"none", SortNone},
		{"", SortNone},
		{"bogus", SortNone},
	}
	for _, tt := range tests {
		if got := ParseSortKey(tt.in); got != tt.want {
			t.Errorf("ParseSortKey(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
