package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_review_service.go -package=mocks -mock_names=ReviewService=MockReviewService sentiview/internal/service ReviewService

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"sentiview/internal/annotation"
	"sentiview/internal/dataset"
	"sentiview/internal/export"
	"sentiview/internal/view"
)

// Query carries the full control state of the viewer for one list request,
// the way the original page reads every control before redrawing. Page is
// an explicit navigation request; zero means "stay on the current page".
type Query struct {
	From     string
	To       string
	Company  string
	Search   string
	Sort     string
	Group    string
	PageSize int
	Page     int
}

// Item is a record decorated with its review state.
type Item struct {
	annotation.Record
	HasAttitude  bool               `json:"hasAttitude"`
	IsEdited     bool               `json:"isEdited"`
	HasAdditions bool               `json:"hasAdditions"`
	Additions    []annotation.Added `json:"additions,omitempty"`
}

// GroupView is one display bucket of a grouped page.
type GroupView struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
	Items []Item `json:"items"`
}

// Stats summarizes the current view.
type Stats struct {
	Total     int    `json:"total"`
	Filtered  int    `json:"filtered"`
	Displayed int    `json:"displayed"`
	DateFrom  string `json:"dateFrom,omitempty"`
	DateTo    string `json:"dateTo,omitempty"`
}

// PageInfo is the pagination block of a list response.
type PageInfo struct {
	view.Pagination
	Window []int `json:"window"`
}

// ListResult is one page of the filtered dataset.
type ListResult struct {
	Items         []Item      `json:"items"`
	Groups        []GroupView `json:"groups,omitempty"`
	Stats         Stats       `json:"stats"`
	Page          PageInfo    `json:"pagination"`
	ChangeSummary string      `json:"changeSummary"`
}

// EditInput holds the reviewer-supplied replacement values for an edit.
// NewSentence is optional; empty keeps the original sentence.
type EditInput struct {
	AttitudeType     string
	AttitudeSubtype  string
	AttitudePolarity string
	MatchedText      string
	NewSentence      string
}

// AddInput holds the reviewer-supplied fields of a new annotation.
type AddInput struct {
	AttitudeType     string
	AttitudeSubtype  string
	AttitudePolarity string
	MatchedText      string
}

// ChangeSummary reports pending corrections.
type ChangeSummary struct {
	Count          int    `json:"count"`
	Summary        string `json:"summary"`
	Edits          int    `json:"edits"`
	AdditionGroups int    `json:"additionGroups"`
}

// Overview describes the loaded dataset for populating the controls. The
// taxonomy rides along so the page offers exactly the vocabulary the
// server validates against.
type Overview struct {
	TotalRecords int                 `json:"totalRecords"`
	Companies    []string            `json:"companies"`
	DateFrom     string              `json:"dateFrom,omitempty"`
	DateTo       string              `json:"dateTo,omitempty"`
	Source       string              `json:"source,omitempty"`
	Taxonomy     map[string][]string `json:"taxonomy"`
	Polarities   []string            `json:"polarities"`
}

// ExportFile is a generated corrections download.
type ExportFile struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ReviewService exposes the annotation review operations to the HTTP
// layer.
type ReviewService interface {
	// List returns one page of the dataset under the given criteria.
	List(ctx context.Context, q Query) (ListResult, error)
	// SaveEdit applies an edit to a record and tracks the diff.
	SaveEdit(ctx context.Context, id int, input EditInput) (annotation.EditRecord, error)
	// AddAnnotation attaches an additional annotation to a record.
	AddAnnotation(ctx context.Context, id int, input AddInput) (annotation.Added, error)
	// RemoveAnnotation removes an added annotation by index. Out-of-range
	// indexes are silently ignored.
	RemoveAnnotation(ctx context.Context, id, index int) error
	// Changes reports the pending correction counts.
	Changes(ctx context.Context) ChangeSummary
	// ExportCSV encodes pending corrections as a tabular download.
	ExportCSV(ctx context.Context) (ExportFile, error)
	// ExportJSON encodes pending corrections as a structured download.
	ExportJSON(ctx context.Context) (ExportFile, error)
	// Overview describes the loaded dataset.
	Overview(ctx context.Context) Overview
}

// reviewService implements ReviewService.
type reviewService struct {
	store           *dataset.Store
	taxonomy        *annotation.Taxonomy
	defaultPageSize int
	logger          *slog.Logger

	// Navigation state survives requests the way the original keeps
	// currentPage across redraws: criteria changes reset it, rejected
	// page jumps keep it.
	mu          sync.Mutex
	viewKey     string
	currentPage int
}

// NewReviewService creates a ReviewService over a loaded store.
func NewReviewService(store *dataset.Store, defaultPageSize int) ReviewService {
	if defaultPageSize < 1 {
		defaultPageSize = 25
	}
	return &reviewService{
		store:           store,
		taxonomy:        annotation.Attitudes,
		defaultPageSize: defaultPageSize,
		logger:          slog.Default(),
		currentPage:     1,
	}
}

const dateLayout = "2006-01-02"

// List derives the filtered, sorted, paginated view.
func (s *reviewService) List(ctx context.Context, q Query) (ListResult, error) {
	records := s.store.Records()

	pageSize := q.PageSize
	if pageSize < 1 {
		pageSize = s.defaultPageSize
	}
	sortKey := view.ParseSortKey(q.Sort)
	groupKey := view.ParseGroupKey(q.Group)

	criteria, err := s.buildCriteria(q, len(records) > 0)
	if err != nil {
		return ListResult{}, err
	}

	filtered := view.Apply(records, criteria, sortKey)

	// Any criteria change resets navigation to the first page.
	key := fmt.Sprintf("%s|%s|%s|%s|%s|%s|%d",
		q.From, q.To, q.Company, strings.TrimSpace(q.Search), sortKey, groupKey, pageSize)
	s.mu.Lock()
	if key != s.viewKey {
		s.viewKey = key
		s.currentPage = 1
	}
	page := s.currentPage
	s.mu.Unlock()

	pg := view.Paginate(len(filtered), pageSize, page)
	if q.Page != 0 {
		pg = view.Paginate(len(filtered), pageSize, view.GoToPage(pg.CurrentPage, q.Page, pg.TotalPages))
	}

	s.mu.Lock()
	s.currentPage = pg.CurrentPage
	s.mu.Unlock()

	pageRecords := filtered[pg.Start:pg.End]
	items := s.decorate(pageRecords)

	result := ListResult{
		Items: items,
		Stats: Stats{
			Total:     len(records),
			Filtered:  len(filtered),
			Displayed: len(pageRecords),
		},
		Page:          PageInfo{Pagination: pg, Window: pg.Window()},
		ChangeSummary: s.store.ChangeSummary(),
	}
	if min, max, ok := filteredDateRange(filtered); ok {
		result.Stats.DateFrom = min.Format(dateLayout)
		result.Stats.DateTo = max.Format(dateLayout)
	}
	if groupKey != view.GroupNone {
		for _, g := range view.GroupRecords(pageRecords, groupKey) {
			result.Groups = append(result.Groups, GroupView{
				Key:   g.Key,
				Count: len(g.Records),
				Items: s.decorate(g.Records),
			})
		}
	}

	s.logger.DebugContext(ctx, "list computed",
		"filtered", len(filtered), "page", pg.CurrentPage, "total_pages", pg.TotalPages)
	return result, nil
}

// buildCriteria parses the date bounds, falling back to the dataset's own
// range. Defaults are never derived from an empty dataset.
func (s *reviewService) buildCriteria(q Query, hasData bool) (view.Criteria, error) {
	c := view.Criteria{
		Company: q.Company,
		Search:  q.Search,
	}
	if q.From != "" {
		from, err := time.Parse(dateLayout, q.From)
		if err != nil {
			return view.Criteria{}, &ValidationError{Field: "from", Message: "invalid date"}
		}
		c.From = from
	}
	if q.To != "" {
		to, err := time.Parse(dateLayout, q.To)
		if err != nil {
			return view.Criteria{}, &ValidationError{Field: "to", Message: "invalid date"}
		}
		c.To = to
	}
	if hasData && (c.From.IsZero() || c.To.IsZero()) {
		if min, max, ok := s.store.DateRange(); ok {
			if c.From.IsZero() {
				c.From = min
			}
			if c.To.IsZero() {
				c.To = max
			}
		}
	}
	return c, nil
}

func (s *reviewService) decorate(records []annotation.Record) []Item {
	items := make([]Item, 0, len(records))
	for _, r := range records {
		items = append(items, Item{
			Record:       r,
			HasAttitude:  r.HasAttitude(),
			IsEdited:     s.store.IsEdited(r.ID),
			HasAdditions: s.store.HasAdditions(r.ID),
			Additions:    s.store.Additions(r.ID),
		})
	}
	return items
}

func filteredDateRange(records []annotation.Record) (time.Time, time.Time, bool) {
	var min, max time.Time
	found := false
	for _, r := range records {
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

// SaveEdit validates the replacement values against the taxonomy and
// applies them.
func (s *reviewService) SaveEdit(ctx context.Context, id int, input EditInput) (annotation.EditRecord, error) {
	logger := s.logger

	if err := s.taxonomy.Validate(input.AttitudeType, input.AttitudeSubtype, input.AttitudePolarity); err != nil {
		logger.WarnContext(ctx, "edit rejected by taxonomy", "id", id, "error", err)
		return annotation.EditRecord{}, &ValidationError{Field: "attitude", Message: err.Error()}
	}

	patch := dataset.EditPatch{
		AttitudeType:     input.AttitudeType,
		AttitudeSubtype:  input.AttitudeSubtype,
		AttitudePolarity: input.AttitudePolarity,
		MatchedText:      input.MatchedText,
	}
	edit, err := s.store.ApplyEdit(id, patch, strings.TrimSpace(input.NewSentence))
	if err != nil {
		if err == dataset.ErrNotFound {
			return annotation.EditRecord{}, ErrNotFound
		}
		return annotation.EditRecord{}, WrapError(err, "failed to apply edit")
	}

	logger.InfoContext(ctx, "edit saved", "id", id, "sentence_changed", edit.SentenceChanged)
	return edit, nil
}

// AddAnnotation validates and attaches an additional annotation.
func (s *reviewService) AddAnnotation(ctx context.Context, id int, input AddInput) (annotation.Added, error) {
	logger := s.logger

	matched := strings.TrimSpace(input.MatchedText)
	if matched == "" {
		logger.WarnContext(ctx, "addition rejected: empty matched text", "id", id)
		return annotation.Added{}, &ValidationError{Field: "matchedText", Message: "cannot be empty"}
	}
	if err := s.taxonomy.Validate(input.AttitudeType, input.AttitudeSubtype, input.AttitudePolarity); err != nil {
		logger.WarnContext(ctx, "addition rejected by taxonomy", "id", id, "error", err)
		return annotation.Added{}, &ValidationError{Field: "attitude", Message: err.Error()}
	}

	added, err := s.store.AddAnnotation(id, dataset.AddInput{
		AttitudeType:     input.AttitudeType,
		AttitudeSubtype:  input.AttitudeSubtype,
		AttitudePolarity: input.AttitudePolarity,
		MatchedText:      matched,
	})
	if err != nil {
		if err == dataset.ErrNotFound {
			return annotation.Added{}, ErrNotFound
		}
		return annotation.Added{}, WrapError(err, "failed to add annotation")
	}

	logger.InfoContext(ctx, "annotation added", "id", id, "matched_text", matched)
	return added, nil
}

// RemoveAnnotation removes by index; out-of-range requests are a silent
// no-op rather than an error.
func (s *reviewService) RemoveAnnotation(ctx context.Context, id, index int) error {
	if removed := s.store.RemoveAnnotation(id, index); !removed {
		s.logger.DebugContext(ctx, "removal ignored", "id", id, "index", index)
		return nil
	}
	s.logger.InfoContext(ctx, "annotation removed", "id", id, "index", index)
	return nil
}

// Changes reports pending correction counts.
func (s *reviewService) Changes(ctx context.Context) ChangeSummary {
	edits := s.store.EditList()
	groups := s.store.AdditionGroups()
	return ChangeSummary{
		Count:          s.store.ChangeCount(),
		Summary:        s.store.ChangeSummary(),
		Edits:          len(edits),
		AdditionGroups: len(groups),
	}
}

// ExportCSV encodes pending corrections as the tabular download.
func (s *reviewService) ExportCSV(ctx context.Context) (ExportFile, error) {
	data, err := export.CSV(s.store.EditList(), s.store.AdditionGroups(), func(id int) bool {
		_, ok := s.store.Get(id)
		return ok
	})
	if err != nil {
		return ExportFile{}, err
	}
	now := time.Now()
	s.logger.InfoContext(ctx, "csv export generated", "bytes", len(data))
	return ExportFile{
		Filename:    export.CSVFilename(now),
		ContentType: "text/csv",
		Data:        []byte(data),
	}, nil
}

// ExportJSON encodes pending corrections as the structured download.
func (s *reviewService) ExportJSON(ctx context.Context) (ExportFile, error) {
	now := time.Now()
	data, err := export.JSON(s.store.EditList(), s.store.AdditionGroups(), now)
	if err != nil {
		return ExportFile{}, err
	}
	s.logger.InfoContext(ctx, "json export generated", "bytes", len(data))
	return ExportFile{
		Filename:    export.JSONFilename(s.store.Source(), now),
		ContentType: "application/json",
		Data:        data,
	}, nil
}

// Overview describes the loaded dataset.
func (s *reviewService) Overview(ctx context.Context) Overview {
	taxonomy := make(map[string][]string)
	for _, name := range s.taxonomy.TypeNames() {
		taxonomy[name] = append([]string{}, s.taxonomy.Subtypes(name)...)
	}

	o := Overview{
		TotalRecords: s.store.Len(),
		Companies:    s.store.Companies(),
		Source:       s.store.Source(),
		Taxonomy:     taxonomy,
		Polarities:   s.taxonomy.Polarities,
	}
	if min, max, ok := s.store.DateRange(); ok {
		o.DateFrom = min.Format(dateLayout)
		o.DateTo = max.Format(dateLayout)
	}
	return o
}
