package sitecontent

// Pagination translates a 1-based page number and page size into the
// offset/limit pair the store consumes.
type Pagination struct {
	Offset int
	Limit  int
}

// ResolvePagination validates page/limit query values. Page numbers start at
// one; a zero limit means no limit.
func ResolvePagination(page, limit int) (Pagination, error) {
	if page <= 0 {
		return Pagination{}, NewValidationError("page must be bigger than '0'")
	}
	if limit < 0 {
		return Pagination{}, NewValidationError("limit must not be negative")
	}
	return Pagination{
		Offset: (page - 1) * limit,
		Limit:  limit,
	}, nil
}
