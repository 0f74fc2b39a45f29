package domain

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// NormalizePage clamps a 1-based page number and a page size to sane bounds.
func NormalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}

	return page, pageSize
}

func PageOffset(page, pageSize int) int {
	return (page - 1) * pageSize
}
