package domain

const (
	SortNewest   = "newest"
	SortExpAsc   = "exp_asc"
	SortExpDesc  = "exp_desc"
	SortNameAsc  = "name_asc"
	SortNameDesc = "name_desc"
)

const (
	// RoleAll is the filter sentinel meaning "no role filter".
	RoleAll = "All"

	DefaultPage  = 1
	DefaultLimit = 10
	// MaxLimit caps the page size; the wire format leaves it unbounded.
	MaxLimit = 100
)

// ListQuery is the filter/search/sort/pagination contract for listing
// developers. Zero values mean "not set"; call Normalized before handing
// a query to a repository.
type ListQuery struct {
	Role   string
	Search string
	Sort   string
	Page   int
	Limit  int
}

// Normalized applies defaults, drops the "All" role sentinel, caps the
// page size and maps unknown sort keys back to newest.
func (q ListQuery) Normalized() ListQuery {
	if q.Role == RoleAll {
		q.Role = ""
	}

	switch q.Sort {
	case SortNewest, SortExpAsc, SortExpDesc, SortNameAsc, SortNameDesc:
	default:
		q.Sort = SortNewest
	}

	if q.Page < 1 {
		q.Page = DefaultPage
	}
	if q.Limit < 1 {
		q.Limit = DefaultLimit
	}
	if q.Limit > MaxLimit {
		q.Limit = MaxLimit
	}
	return q
}

// Offset is the number of records to skip for the requested page.
func (q ListQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}

// DeveloperPage is one page of list results plus the numbers the
// response envelope reports.
type DeveloperPage struct {
	Developers []Developer
	Count      int
	Total      int
	Page       int
	Pages      int
}

func NewDeveloperPage(developers []Developer, total int, q ListQuery) *DeveloperPage {
	pages := 0
	if total > 0 {
		pages = (total + q.Limit - 1) / q.Limit
	}
	return &DeveloperPage{
		Developers: developers,
		Count:      len(developers),
		Total:      total,
		Page:       q.Page,
		Pages:      pages,
	}
}
