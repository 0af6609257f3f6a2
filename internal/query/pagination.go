package query

import "fmt"

const (
	DefaultPage    = 0
	DefaultPerPage = 20
	MinPerPage     = 1
	MaxPerPage     = 100
)

// Links carries the navigation urls of a paginated resource. Previous and Next are
// nil on the first and last page.
type Links struct {
	Self     string  `json:"self"`
	First    string  `json:"first"`
	Previous *string `json:"previous"`
	Next     *string `json:"next"`
	Last     string  `json:"last"`
}

// Metadata is serialised next to every paginated collection.
type Metadata struct {
	Page       int   `json:"page"`
	PerPage    int   `json:"perPage"`
	PageCount  int   `json:"pageCount"`
	TotalItems int   `json:"totalItems"`
	Links      Links `json:"links"`
}

// Pagination computes slice bounds and links for one list request.
type Pagination struct {
	resourcePath string
	page         int
	perPage      int
	total        int
	extraParams  string
}

// NewPagination expects extraParams to be empty or to start with '&'
// (see ExtractExtraParams).
func NewPagination(resourcePath string, page, perPage, totalItems int, extraParams string) Pagination {
	if perPage < MinPerPage {
		perPage = DefaultPerPage
	}
	if page < 0 {
		page = 0
	}
	if totalItems < 0 {
		totalItems = 0
	}
	return Pagination{
		resourcePath: resourcePath,
		page:         page,
		perPage:      perPage,
		total:        totalItems,
		extraParams:  extraParams,
	}
}

func (p Pagination) Page() int       { return p.page }
func (p Pagination) PerPage() int    { return p.perPage }
func (p Pagination) TotalItems() int { return p.total }
func (p Pagination) Take() int       { return p.perPage }
func (p Pagination) Skip() int       { return p.page * p.perPage }

// PageCount is never below 1 so an empty collection still has a first page.
func (p Pagination) PageCount() int {
	count := (p.total + p.perPage - 1) / p.perPage
	if count < 1 {
		return 1
	}
	return count
}

// ExceedsPageLimit is true when page > PageCount. Requesting page == PageCount is
// tolerated and produces an empty page.
func (p Pagination) ExceedsPageLimit() bool {
	return p.page > p.PageCount()
}

func (p Pagination) lastPage() int {
	last := p.PageCount() - 1
	if last < 0 {
		return 0
	}
	return last
}

// ExceedPageLimitHint tells the caller where the last available page lives.
func (p Pagination) ExceedPageLimitHint() string {
	return fmt.Sprintf("Page n°%d cannot be found with %d items per page. Last available page can be retrieved here: %s",
		p.page, p.perPage, p.link(p.lastPage()))
}

func (p Pagination) link(page int) string {
	return fmt.Sprintf("%s?page=%d&perPage=%d%s", p.resourcePath, page, p.perPage, p.extraParams)
}

func (p Pagination) SelfLink() string  { return p.link(p.page) }
func (p Pagination) FirstLink() string { return p.link(0) }
func (p Pagination) LastLink() string  { return p.link(p.lastPage()) }

func (p Pagination) PreviousLink() *string {
	if p.page == 0 {
		return nil
	}
	l := p.link(p.page - 1)
	return &l
}

func (p Pagination) NextLink() *string {
	if p.page+1 >= p.PageCount() {
		return nil
	}
	l := p.link(p.page + 1)
	return &l
}

func (p Pagination) Metadata() Metadata {
	return Metadata{
		Page:       p.page,
		PerPage:    p.perPage,
		PageCount:  p.PageCount(),
		TotalItems: p.total,
		Links: Links{
			Self:     p.SelfLink(),
			First:    p.FirstLink(),
			Previous: p.PreviousLink(),
			Next:     p.NextLink(),
			Last:     p.LastLink(),
		},
	}
}
