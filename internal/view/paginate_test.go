package view

import (
	"reflect"
	"testing"
)

func TestPaginate(t *testing.T) {
	tests := []struct {
		name      string
		total     int
		pageSize  int
		page      int
		wantPage  int
		wantTotal int
		wantStart int
		wantEnd   int
	}{
		{"single page", 10, 25, 1, 1, 1, 0, 10},
		{"exact fit", 50, 25, 2, 2, 2, 25, 50},
		{"partial last page", 30, 25, 2, 2, 2, 25, 30},
		{"clamp high", 30, 25, 7, 2, 2, 25, 30},
		{"clamp low", 30, 25, 0, 1, 2, 0, 25},
		{"clamp negative", 30, 25, -3, 1, 2, 0, 25},
		{"empty view still page 1 of 1", 0, 25, 1, 1, 1, 0, 0},
		{"page size one", 3, 1, 2, 2, 3, 1, 2},
		{"invalid page size", 10, 0, 1, 1, 10, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Paginate(tt.total, tt.pageSize, tt.page)
			if p.CurrentPage != tt.wantPage {
				t.Errorf("CurrentPage = %d, want %d", p.CurrentPage, tt.wantPage)
			}
			if p.TotalPages != tt.wantTotal {
				t.Errorf("TotalPages = %d, want %d", p.TotalPages, tt.wantTotal)
			}
			if p.Start != tt.wantStart || p.End != tt.wantEnd {
				t.Errorf("slice = [%d, %d), want [%d, %d)", p.Start, p.End, tt.wantStart, tt.wantEnd)
			}
		})
	}
}

// Concatenating every page reconstructs the sequence exactly once, in
// order, for a spread of counts and page sizes.
func TestPaginateReconstruction(t *testing.T) {
	for _, total := range []int{0, 1, 7, 24, 25, 26, 100} {
		for _, size := range []int{1, 3, 10, 25} {
			first := Paginate(total, size, 1)
			covered := 0
			for page := 1; page <= first.TotalPages; page++ {
				p := Paginate(total, size, page)
				if p.Start != covered {
					t.Fatalf("total=%d size=%d page=%d: Start = %d, want %d", total, size, page, p.Start, covered)
				}
				covered = p.End
			}
			if covered != total {
				t.Fatalf("total=%d size=%d: pages covered %d items", total, size, covered)
			}
			wantPages := (total + size - 1) / size
			if wantPages < 1 {
				wantPages = 1
			}
			if first.TotalPages != wantPages {
				t.Fatalf("total=%d size=%d: TotalPages = %d, want %d", total, size, first.TotalPages, wantPages)
			}
		}
	}
}

func TestGoToPage(t *testing.T) {
	tests := []struct {
		name       string
		current    int
		requested  int
		totalPages int
		want       int
	}{
		{"valid jump", 2, 1, 2, 1},
		{"rejected above range", 2, 3, 2, 2},
		{"rejected zero", 2, 0, 2, 2},
		{"rejected negative", 1, -1, 5, 1},
		{"same page", 3, 3, 5, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GoToPage(tt.current, tt.requested, tt.totalPages); got != tt.want {
				t.Errorf("GoToPage(%d, %d, %d) = %d, want %d", tt.current, tt.requested, tt.totalPages, got, tt.want)
			}
		})
	}
}

func TestPaginationWindow(t *testing.T) {
	tests := []struct {
		name       string
		current    int
		totalPages int
		want       []int
	}{
		{"fewer pages than buttons", 1, 3, []int{1, 2, 3}},
		{"centered", 5, 9, []int{3, 4, 5, 6, 7}},
		{"clamped at start", 1, 9, []int{1, 2, 3, 4, 5}},
		{"clamped near start", 2, 9, []int{1, 2, 3, 4, 5}},
		{"clamped at end", 9, 9, []int{5, 6, 7, 8, 9}},
		{"clamped near end", 8, 9, []int{5, 6, 7, 8, 9}},
		{"single page", 1, 1, []int{1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Pagination{CurrentPage: tt.current, TotalPages: tt.totalPages}
			if got := p.Window(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Window() = %v, want %v", got, tt.want)
			}
		})
	}
}

// The 30-record, page-size-25 walkthrough: two pages, a rejected jump to
// page 3 keeps the current page.
func TestPaginateThirtyRecordsScenario(t *testing.T) {
	p1 := Paginate(30, 25, 1)
	if p1.TotalPages != 2 || p1.Start != 0 || p1.End != 25 {
		t.Fatalf("page 1 = %+v", p1)
	}
	p2 := Paginate(30, 25, GoToPage(p1.CurrentPage, 2, p1.TotalPages))
	if p2.CurrentPage != 2 || p2.Start != 25 || p2.End != 30 {
		t.Fatalf("page 2 = %+v", p2)
	}
	if got := GoToPage(p2.CurrentPage, 3, p2.TotalPages); got != 2 {
		t.Errorf("GoToPage(3) = %d, want current page 2 kept", got)
	}
}
