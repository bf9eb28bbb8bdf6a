package listutil

import (
	"net/url"
	"sort"
	"strconv"
	"strings"
)

// ListParams is the query-string convention shared by every list page:
// page, per_page, sort, dir, q, plus page-specific exact-match filters.
type ListParams struct {
	Page    int
	PerPage int
	Sort    string // column name, empty for the page default
	Dir     string // "asc" or "desc"
	Search  string
	Filters map[string]string
}

// DefaultPerPage is the default number of rows per page.
const DefaultPerPage = 20

// PerPageOptions are the allowed rows-per-page values.
var PerPageOptions = []int{10, 20, 50, 100}

// Parse extracts list parameters from URL query values. Sort columns outside
// allowedSortCols and filter keys outside filterKeys are dropped; page and
// per_page are clamped to sane values.
// PRE: none
// POST: Page >= 1; PerPage is a valid option; Dir is "asc" or "desc"
func Parse(q url.Values, allowedSortCols, filterKeys []string) ListParams {
	lp := ListParams{
		Search:  strings.TrimSpace(q.Get("q")),
		Filters: make(map[string]string),
	}

	lp.Page, _ = strconv.Atoi(q.Get("page"))
	if lp.Page < 1 {
		lp.Page = 1
	}

	lp.PerPage, _ = strconv.Atoi(q.Get("per_page"))
	if !validPerPage(lp.PerPage) {
		lp.PerPage = DefaultPerPage
	}

	if s := q.Get("sort"); contains(allowedSortCols, s) {
		lp.Sort = s
	}
	lp.Dir = q.Get("dir")
	if lp.Dir != "asc" && lp.Dir != "desc" {
		lp.Dir = "asc"
	}

	for _, key := range filterKeys {
		if v := q.Get(key); v != "" {
			lp.Filters[key] = v
		}
	}
	return lp
}

// PageInfo carries pagination metadata for rendering.
type PageInfo struct {
	Page       int
	PerPage    int
	Total      int
	TotalPages int
}

// NewPageInfo computes pagination metadata with the page clamped into range.
// PRE: total >= 0
// POST: 1 <= Page <= TotalPages; TotalPages >= 1
func NewPageInfo(page, perPage, total int) PageInfo {
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	totalPages := (total + perPage - 1) / perPage
	if totalPages < 1 {
		totalPages = 1
	}
	if page > totalPages {
		page = totalPages
	}
	if page < 1 {
		page = 1
	}
	return PageInfo{Page: page, PerPage: perPage, Total: total, TotalPages: totalPages}
}

// Offset returns the index of the first row on the current page.
func (p PageInfo) Offset() int {
	return (p.Page - 1) * p.PerPage
}

// StartRow returns the 1-indexed first row number shown, 0 when empty.
func (p PageInfo) StartRow() int {
	if p.Total == 0 {
		return 0
	}
	return p.Offset() + 1
}

// EndRow returns the 1-indexed last row number shown.
func (p PageInfo) EndRow() int {
	end := p.Offset() + p.PerPage
	if end > p.Total {
		end = p.Total
	}
	return end
}

// ShowPagination reports whether pagination controls are worth rendering.
func (p PageInfo) ShowPagination() bool {
	return p.Total > p.PerPage
}

// PageNumbers returns up to 5 page numbers centered on the current page.
func (p PageInfo) PageNumbers() []int {
	const maxButtons = 5
	start := p.Page - maxButtons/2
	if start < 1 {
		start = 1
	}
	end := start + maxButtons - 1
	if end > p.TotalPages {
		end = p.TotalPages
		start = end - maxButtons + 1
		if start < 1 {
			start = 1
		}
	}
	nums := make([]int, 0, end-start+1)
	for i := start; i <= end; i++ {
		nums = append(nums, i)
	}
	return nums
}

// SortSlice orders items by the given less function, descending when dir is
// "desc". The sort is stable so equal rows keep backend order.
func SortSlice[T any](items []T, dir string, less func(a, b T) bool) {
	if dir == "desc" {
		sort.SliceStable(items, func(i, j int) bool { return less(items[j], items[i]) })
		return
	}
	sort.SliceStable(items, func(i, j int) bool { return less(items[i], items[j]) })
}

// Page returns the slice window for the current page. The backend API returns
// whole collections; list pages window them here rather than in SQL.
// PRE: p was produced by NewPageInfo for len(items)
func Page[T any](items []T, p PageInfo) []T {
	start := p.Offset()
	if start >= len(items) {
		return nil
	}
	end := start + p.PerPage
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// MatchesSearch reports whether any of the fields contains the query,
// case-insensitively. An empty query matches everything.
func MatchesSearch(query string, fields ...string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

func validPerPage(n int) bool {
	for _, opt := range PerPageOptions {
		if n == opt {
			return true
		}
	}
	return false
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
