package service

const (
	defaultPage    = 1
	defaultPerPage = 5
	maxPerPage     = 100
)

// PageQuery holds the page and per_page query parameters shared by every listing
type PageQuery struct {
	Page    int `form:"page" json:"page" example:"1"`
	PerPage int `form:"per_page" json:"per_page" example:"5"`
}

// normalize applies defaults and bounds, returning the page, its size and the row offset
func (q PageQuery) normalize() (page, perPage, offset int) {
	page, perPage = q.Page, q.PerPage
	if page < 1 {
		page = defaultPage
	}
	if perPage < 1 {
		perPage = defaultPerPage
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}
	return page, perPage, (page - 1) * perPage
}
