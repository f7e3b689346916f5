package view

import (
	"sort"

	"sentiview/internal/annotation"
)

// GroupKey selects how a page of records is grouped for display.
type GroupKey string

const (
	GroupNone    GroupKey = "none"
	GroupCompany GroupKey = "company"
	GroupWord    GroupKey = "word"
)

// ParseGroupKey maps a request parameter to a GroupKey, defaulting to
// GroupNone for unknown values.
func ParseGroupKey(s string) GroupKey {
	switch GroupKey(s) {
	case GroupCompany, GroupWord:
		return GroupKey(s)
	default:
		return GroupNone
	}
}

// Group is one display bucket of a grouped page.
type Group struct {
	Key     string
	Records []annotation.Record
}

// GroupRecords buckets a page of records by company or matched word, with
// bucket keys sorted. Records missing the grouping field fall into an
// "N/A" bucket. GroupNone returns a single bucket in page order.
func GroupRecords(records []annotation.Record, by GroupKey) []Group {
	if by == GroupNone {
		return []Group{{Key: "All Entries", Records: records}}
	}

	buckets := make(map[string][]annotation.Record)
	for _, r := range records {
		key := ""
		switch by {
		case GroupCompany:
			key = r.Company
		case GroupWord:
			key = r.MatchedText
		}
		if key == "" {
			key = "N/A"
		}
		buckets[key] = append(buckets[key], r)
	}

	keys := make([]string, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	groups := make([]Group, 0, len(keys))
	for _, k := range keys {
		groups = append(groups, Group{Key: k, Records: buckets[k]})
	}
	return groups
}
