// Package view derives filtered, sorted, paginated views of the dataset.
// Everything here is a pure function of its inputs; no view operation
// mutates the records it is given.
package view

import (
	"sort"
	"strings"
	"time"

	"sentiview/internal/annotation"
)

// SortKey selects the view ordering.
type SortKey string

const (
	SortNone      SortKey = "none"
	SortDateDesc  SortKey = "date-desc"
	SortDateAsc   SortKey = "date-asc"
	SortScoreDesc SortKey = "score-desc"
	SortScoreAsc  SortKey = "score-asc"
)

// ParseSortKey maps a request parameter to a SortKey, defaulting to
// SortNone for unknown values.
func ParseSortKey(s string) SortKey {
	switch SortKey(s) {
	case SortDateDesc, SortDateAsc, SortScoreDesc, SortScoreAsc:
		return SortKey(s)
	default:
		return SortNone
	}
}

// Criteria is the transient filter state, recomputed per request. A zero
// From or To leaves that bound open; Company "all" or empty matches every
// company; Search is matched case-insensitively as a substring of matched
// text, title, or sentence.
type Criteria struct {
	From    time.Time
	To      time.Time
	Company string
	Search  string
}

// Apply returns the ordered subsequence of records satisfying the
// criteria, sorted by key. SortNone preserves the input order; all sorts
// are stable.
func Apply(records []annotation.Record, c Criteria, key SortKey) []annotation.Record {
	search := strings.ToLower(strings.TrimSpace(c.Search))
	to := c.To
	if !to.IsZero() {
		to = endOfDay(to)
	}

	filtered := make([]annotation.Record, 0, len(records))
	for _, r := range records {
		if !matchesDate(r, c.From, to) {
			continue
		}
		if !matchesCompany(r, c.Company) {
			continue
		}
		if search != "" && !matchesSearch(r, search) {
			continue
		}
		filtered = append(filtered, r)
	}

	sortRecords(filtered, key)
	return filtered
}

func matchesDate(r annotation.Record, from, to time.Time) bool {
	d, ok := r.ParsedDate()
	if !ok {
		return false
	}
	if !from.IsZero() && d.Before(from) {
		return false
	}
	if !to.IsZero() && d.After(to) {
		return false
	}
	return true
}

func matchesCompany(r annotation.Record, company string) bool {
	return company == "" || company == "all" || r.Company == company
}

// matchesSearch treats a missing field as a non-match rather than an
// error.
func matchesSearch(r annotation.Record, search string) bool {
	return contains(r.MatchedText, search) ||
		contains(r.Title, search) ||
		contains(r.Sentence, search)
}

func contains(field, search string) bool {
	return field != "" && strings.Contains(strings.ToLower(field), search)
}

func sortRecords(records []annotation.Record, key SortKey) {
	switch key {
	case SortDateDesc:
		sort.SliceStable(records, func(i, j int) bool {
			return recordDate(records[i]).After(recordDate(records[j]))
		})
	case SortDateAsc:
		sort.SliceStable(records, func(i, j int) bool {
			return recordDate(records[i]).Before(recordDate(records[j]))
		})
	case SortScoreDesc:
		sort.SliceStable(records, func(i, j int) bool {
			return records[i].SentimentScore > records[j].SentimentScore
		})
	case SortScoreAsc:
		sort.SliceStable(records, func(i, j int) bool {
			return records[i].SentimentScore < records[j].SentimentScore
		})
	}
}

func recordDate(r annotation.Record) time.Time {
	d, _ := r.ParsedDate()
	return d
}

// endOfDay extends a date to 23:59:59.999 so the To bound is inclusive of
// the whole calendar day.
func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999000000, t.Location())
}
