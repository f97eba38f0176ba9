package dto

// Pagination defaults shared by every list endpoint.
const (
	DefaultPage    = 1
	DefaultPerPage = 10
)

// PageQuery is the normalized page/perPage pair.
type PageQuery struct {
	Page    int
	PerPage int
}

func (q PageQuery) Offset() int {
	return (q.Page - 1) * q.PerPage
}

// NormalizePage clamps raw query values to sane defaults.
func NormalizePage(page, perPage int) PageQuery {
	if page <= 0 {
		page = DefaultPage
	}
	if perPage <= 0 {
		perPage = DefaultPerPage
	}
	return PageQuery{Page: page, PerPage: perPage}
}

// Paginated is the list envelope: totalPages = ceil(totalItems/perPage).
// An empty page is a valid result, not an error.
type Paginated struct {
	CurrentPage int         `json:"currentPage"`
	PerPage     int         `json:"perPage"`
	TotalPages  int         `json:"totalPages"`
	TotalItems  int64       `json:"totalItems"`
	Data        interface{} `json:"data"`
}

func NewPaginated(q PageQuery, total int64, data interface{}) *Paginated {
	totalPages := int((total + int64(q.PerPage) - 1) / int64(q.PerPage))
	return &Paginated{
		CurrentPage: q.Page,
		PerPage:     q.PerPage,
		TotalPages:  totalPages,
		TotalItems:  total,
		Data:        data,
	}
}
