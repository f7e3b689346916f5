package view

// maxPageButtons is the size of the page-number window shown in the
// navigation controls.
const maxPageButtons = 5

// Pagination describes one page of a filtered sequence. CurrentPage is
// 1-based and always within [1, TotalPages]; the page slice is
// [Start, End) over the filtered sequence.
type Pagination struct {
	Total       int `json:"total"`
	PageSize    int `json:"pageSize"`
	CurrentPage int `json:"currentPage"`
	TotalPages  int `json:"totalPages"`
	Start       int `json:"-"`
	End         int `json:"-"`
}

// Paginate computes page bounds for a filtered count. TotalPages is
// ceil(total/pageSize) with a minimum of 1 so an empty view still reads
// as page 1 of 1; the requested page is clamped into range.
func Paginate(total, pageSize, requestedPage int) Pagination {
	if pageSize < 1 {
		pageSize = 1
	}
	totalPages := (total + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}

	page := requestedPage
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	return Pagination{
		Total:       total,
		PageSize:    pageSize,
		CurrentPage: page,
		TotalPages:  totalPages,
		Start:       start,
		End:         end,
	}
}

// GoToPage applies a navigation request: a target outside
// [1, totalPages] is rejected and the current page is kept.
func GoToPage(current, requested, totalPages int) int {
	if requested < 1 || requested > totalPages {
		return current
	}
	return requested
}

// Window returns up to five contiguous page numbers centered on the
// current page, sliding at the boundaries so min(5, TotalPages) buttons
// are always shown.
func (p Pagination) Window() []int {
	start := p.CurrentPage - maxPageButtons/2
	if start < 1 {
		start = 1
	}
	end := start + maxPageButtons - 1
	if end > p.TotalPages {
		end = p.TotalPages
	}
	if end-start < maxPageButtons-1 {
		start = end - maxPageButtons + 1
		if start < 1 {
			start = 1
		}
	}

	window := make([]int, 0, end-start+1)
	for i := start; i <= end; i++ {
		window = append(window, i)
	}
	return window
}
