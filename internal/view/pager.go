package view

import (
	"net/url"
	"strconv"

	"workspace-admin/internal/model"
)

// NewPager builds previous/next links for u, keeping its other query values.
// Returns nil when everything fits on one page.
func NewPager(u *url.URL, p model.Pagination) *Pager {
	if p.TotalPages <= 1 {
		return nil
	}

	link := func(page int) string {
		q := u.Query()
		q.Set("page", strconv.Itoa(page))
		return u.Path + "?" + q.Encode()
	}

	pager := &Pager{Page: p.Page, TotalPages: p.TotalPages}
	if p.HasPrev() {
		pager.PrevURL = link(p.Page - 1)
	}
	if p.HasNext() {
		pager.NextURL = link(p.Page + 1)
	}
	return pager
}
