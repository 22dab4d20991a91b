package response

// Pagination is the page descriptor attached to list responses. TotalJobs is
// a pointer so only the job search carries it, where it must appear even when
// the result set is empty.
type Pagination struct {
	CurrentPage int    `json:"current_page"`
	PerPage     int    `json:"per_page"`
	TotalJobs   *int64 `json:"total_jobs,omitempty"`
	TotalItems  int64  `json:"total_items"`
	TotalPages  int64  `json:"total_pages"`
	HasMore     bool   `json:"has_more"`
}

// NewPagination computes total_pages as ceil(total/perPage).
func NewPagination(page, perPage int, total int64) *Pagination {
	if perPage < 1 {
		perPage = 1
	}
	totalPages := (total + int64(perPage) - 1) / int64(perPage)
	return &Pagination{
		CurrentPage: page,
		PerPage:     perPage,
		TotalItems:  total,
		TotalPages:  totalPages,
		HasMore:     int64(page) < totalPages,
	}
}

// NewJobPagination is the job-search variant that always includes total_jobs.
func NewJobPagination(page, perPage int, total int64) *Pagination {
	p := NewPagination(page, perPage, total)
	p.TotalJobs = &total
	return p
}
