package query

// PageRef points at another page of the same listing.
type PageRef struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// Pagination carries the optional neighbours of the current page.
type Pagination struct {
	Next *PageRef `json:"next,omitempty"`
	Prev *PageRef `json:"prev,omitempty"`
}

// NewPagination decides which neighbour pages exist given the pre-pagination total.
func NewPagination(page, limit int, total int64) Pagination {
	var p Pagination
	startIndex := (page - 1) * limit
	endIndex := page * limit

	if total > int64(endIndex) {
		p.Next = &PageRef{Page: page + 1, Limit: limit}
	}
	if startIndex > 0 {
		p.Prev = &PageRef{Page: page - 1, Limit: limit}
	}

	return p
}
