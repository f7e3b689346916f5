// Package dataset owns the in-memory annotation dataset and the two
// correction overlays: the edit map and the addition map, both keyed by
// record id.
package dataset

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"sentiview/internal/annotation"
)

var (
	// ErrNotFound is returned when no record exists for a given id.
	ErrNotFound = errors.New("record not found")
	// ErrEmptyDataset is returned when a load produces no records.
	ErrEmptyDataset = errors.New("dataset is empty")
)

// EditPatch holds the editable annotation fields of a record.
type EditPatch struct {
	AttitudeType     string
	AttitudeSubtype  string
	AttitudePolarity string
	MatchedText      string
}

// AddInput holds the reviewer-supplied fields of a new annotation.
type AddInput struct {
	AttitudeType     string
	AttitudeSubtype  string
	AttitudePolarity string
	MatchedText      string
}

// Store holds the loaded records plus pending edits and additions.
// All methods are safe for concurrent use.
type Store struct {
	mu        sync.Mutex
	records   []annotation.Record
	index     map[int]int // id -> position in records
	edits     map[int]annotation.EditRecord
	additions map[int][]annotation.Added
	source    string
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		index:     make(map[int]int),
		edits:     make(map[int]annotation.EditRecord),
		additions: make(map[int][]annotation.Added),
	}
}

// Load replaces the dataset wholesale and resets both overlays. It fails
// if the input is empty, contains duplicate ids, or contains records with
// an unparsable date.
func (s *Store) Load(records []annotation.Record) error {
	if len(records) == 0 {
		return ErrEmptyDataset
	}
	index := make(map[int]int, len(records))
	for i, r := range records {
		if _, dup := index[r.ID]; dup {
			return fmt.Errorf("duplicate record id %d", r.ID)
		}
		if _, ok := r.ParsedDate(); !ok {
			return fmt.Errorf("record %d: invalid date %q", r.ID, r.Date)
		}
		index[r.ID] = i
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append([]annotation.Record(nil), records...)
	s.index = index
	s.edits = make(map[int]annotation.EditRecord)
	s.additions = make(map[int][]annotation.Added)
	return nil
}

// SetSource records the path the dataset was loaded from. The base name is
// used in export filenames.
func (s *Store) SetSource(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.source = path
}

// Source returns the dataset source path, if any.
func (s *Store) Source() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.source
}

// Len returns the number of loaded records.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

// Records returns a copy of the current dataset.
func (s *Store) Records() []annotation.Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]annotation.Record(nil), s.records...)
}

// Get returns the current state of one record.
func (s *Store) Get(id int) (annotation.Record, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.index[id]
	if !ok {
		return annotation.Record{}, false
	}
	return s.records[i], true
}

// ApplyEdit mutates the stored record in place and records an EditRecord
// for it. The original snapshot is taken from the record's current state,
// so repeated saves diff against the most recently committed values. A
// non-empty sentenceReplacement also replaces sentence and sentenceRaw.
func (s *Store) ApplyEdit(id int, patch EditPatch, sentenceReplacement string) (annotation.EditRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[id]
	if !ok {
		return annotation.EditRecord{}, ErrNotFound
	}

	original := s.records[i]
	s.records[i].AttitudeType = patch.AttitudeType
	s.records[i].AttitudeSubtype = patch.AttitudeSubtype
	s.records[i].AttitudePolarity = patch.AttitudePolarity
	s.records[i].MatchedText = patch.MatchedText

	sentenceChanged := sentenceReplacement != ""
	if sentenceChanged {
		s.records[i].Sentence = sentenceReplacement
		s.records[i].SentenceRaw = sentenceReplacement
	}

	edit := annotation.EditRecord{
		ID:              id,
		Original:        original,
		Edited:          s.records[i],
		SentenceChanged: sentenceChanged,
	}
	s.edits[id] = edit
	return edit, nil
}

// AddAnnotation appends a reviewer-supplied annotation to the record's
// addition list. Descriptive fields are inherited from the parent; the
// sentence fields both take the parent's raw sentence.
func (s *Store) AddAnnotation(id int, input AddInput) (annotation.Added, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[id]
	if !ok {
		return annotation.Added{}, ErrNotFound
	}
	parent := s.records[i]

	added := annotation.Added{
		ParentID:         id,
		AttitudeType:     input.AttitudeType,
		AttitudeSubtype:  input.AttitudeSubtype,
		AttitudePolarity: input.AttitudePolarity,
		MatchedText:      input.MatchedText,
		Title:            parent.Title,
		Date:             parent.Date,
		Journal:          parent.Journal,
		Company:          parent.Company,
		Region:           parent.Region,
		Sentence:         parent.SentenceRaw,
		SentenceRaw:      parent.SentenceRaw,
	}
	s.additions[id] = append(s.additions[id], added)
	return added, nil
}

// RemoveAnnotation removes the addition at index from id's list and
// deletes the list once it is empty. An unknown id or out-of-range index
// is a silent no-op; it reports whether an annotation was removed.
func (s *Store) RemoveAnnotation(id, index int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, ok := s.additions[id]
	if !ok || index < 0 || index >= len(list) {
		return false
	}
	list = append(list[:index], list[index+1:]...)
	if len(list) == 0 {
		delete(s.additions, id)
	} else {
		s.additions[id] = list
	}
	return true
}

// IsEdited reports whether id has a pending edit.
func (s *Store) IsEdited(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.edits[id]
	return ok
}

// HasAdditions reports whether id has at least one added annotation.
func (s *Store) HasAdditions(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.additions[id]
	return ok
}

// Additions returns a copy of id's addition list.
func (s *Store) Additions(id int) []annotation.Added {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]annotation.Added(nil), s.additions[id]...)
}

// ChangeCount counts items touched: edited records plus records with at
// least one addition. A record with three additions counts once.
func (s *Store) ChangeCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.edits) + len(s.additions)
}

// ChangeSummary returns a human-readable count of pending changes.
func (s *Store) ChangeSummary() string {
	n := s.ChangeCount()
	if n == 1 {
		return "1 change made"
	}
	return fmt.Sprintf("%d changes made", n)
}

// EditList returns pending edits ordered by record id.
func (s *Store) EditList() []annotation.EditRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	edits := make([]annotation.EditRecord, 0, len(s.edits))
	for _, e := range s.edits {
		edits = append(edits, e)
	}
	sort.Slice(edits, func(i, j int) bool { return edits[i].ID < edits[j].ID })
	return edits
}

// AdditionGroups returns the addition lists ordered by parent id.
func (s *Store) AdditionGroups() []annotation.AdditionGroup {
	s.mu.Lock()
	defer s.mu.Unlock()
	groups := make([]annotation.AdditionGroup, 0, len(s.additions))
	for id, list := range s.additions {
		groups = append(groups, annotation.AdditionGroup{
			ParentID:    id,
			Annotations: append([]annotation.Added(nil), list...),
		})
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].ParentID < groups[j].ParentID })
	return groups
}

// Companies returns the sorted distinct company names, skipping empty and
// "N/A" values.
func (s *Store) Companies() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	seen := make(map[string]struct{})
	for _, r := range s.records {
		if r.Company == "" || r.Company == "N/A" {
			continue
		}
		seen[r.Company] = struct{}{}
	}
	companies := make([]string, 0, len(seen))
	for c := range seen {
		companies = append(companies, c)
	}
	sort.Strings(companies)
	return companies
}

// DateRange returns the earliest and latest record dates. The third result
// is false when the dataset is empty; callers must not derive date-range
// defaults in that case.
func (s *Store) DateRange() (time.Time, time.Time, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var min, max time.Time
	found := false
	for _, r := range s.records {
		d, ok := r.ParsedDate()
		if !ok {
			continue
		}
		if !found {
			min, max = d, d
			found = true
			continue
		}
		if d.Before(min) {
			min = d
		}
		if d.After(max) {
			max = d
		}
	}
	return min, max, found
}
