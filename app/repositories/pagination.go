package repositories

// PageSize is the fixed page size for every paginated listing.
const PageSize = 10

// Pagination carries listing metadata returned alongside page items.
type Pagination struct {
	Page       int   `json:"page"`
	PerPage    int   `json:"per_page"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

func newPagination(page int, total int64) Pagination {
	pages := int((total + PageSize - 1) / PageSize)
	return Pagination{Page: page, PerPage: PageSize, Total: total, TotalPages: pages}
}

func offset(page int) int {
	return (page - 1) * PageSize
}
