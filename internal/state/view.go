package state

import (
	"sort"
	"strings"

	"github.com/shopbook/bookdesk/internal/catalog"
)

// FilterAll is the sentinel selector value meaning "no filtering".
const FilterAll = "all"

// SortOrder selects price ordering for the derived view.
type SortOrder int

const (
	SortNone SortOrder = iota
	SortPriceAsc
	SortPriceDesc
)

// ViewState is a screen's in-memory projection of the fetched catalog plus
// the user-entered filter, sort, and pagination parameters. Each screen owns
// its own instance; nothing here is shared or persisted.
type ViewState struct {
	Books    []catalog.Book
	Category string
	Author   string
	Search   string
	Sort     SortOrder
	Page     int
	PageSize int // 0 means unpaginated
}

// NewViewState builds a ViewState with the sentinel filters selected.
func NewViewState(pageSize int) ViewState {
	return ViewState{
		Category: FilterAll,
		Author:   FilterAll,
		Page:     1,
		PageSize: pageSize,
	}
}

// SetBooks replaces the fetched sequence, clamping the page to the new range.
// The active filters are preserved across refetches.
func (v *ViewState) SetBooks(books []catalog.Book) {
	v.Books = books
	v.ClampPage()
}

// SetSearch replaces the search term and resets to the first page.
func (v *ViewState) SetSearch(term string) {
	v.Search = term
	v.Page = 1
}

// ResetFilters restores the sentinel selectors and clears search and sort.
func (v *ViewState) ResetFilters() {
	v.Category = FilterAll
	v.Author = FilterAll
	v.Search = ""
	v.Sort = SortNone
	v.Page = 1
}

// Filtered returns the filtered and sorted sequence, before pagination.
// The computation order is fixed: category, author, search, then a stable
// sort on the discounted price.
func (v ViewState) Filtered() []catalog.Book {
	out := make([]catalog.Book, 0, len(v.Books))
	search := strings.ToLower(v.Search)
	for _, b := range v.Books {
		if v.Category != FilterAll && b.Category != v.Category {
			continue
		}
		if v.Author != FilterAll && b.Author != v.Author {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(b.Name), search) {
			continue
		}
		out = append(out, b)
	}

	switch v.Sort {
	case SortPriceAsc:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].FinalPrice() < out[j].FinalPrice()
		})
	case SortPriceDesc:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].FinalPrice() > out[j].FinalPrice()
		})
	}
	return out
}

// Visible returns the page window of the filtered sequence.
func (v ViewState) Visible() []catalog.Book {
	filtered := v.Filtered()
	if v.PageSize <= 0 {
		return filtered
	}
	page := v.Page
	if page < 1 {
		page = 1
	}
	start := (page - 1) * v.PageSize
	if start >= len(filtered) {
		return nil
	}
	end := start + v.PageSize
	if end > len(filtered) {
		end = len(filtered)
	}
	return filtered[start:end]
}

// PageCount returns ceil(filtered/pageSize), at least 1.
func (v ViewState) PageCount() int {
	if v.PageSize <= 0 {
		return 1
	}
	count := (len(v.Filtered()) + v.PageSize - 1) / v.PageSize
	if count < 1 {
		return 1
	}
	return count
}

// ClampPage forces Page into [1, PageCount]. Deleting the last row of the
// last page lands on the previous page.
func (v *ViewState) ClampPage() {
	if v.Page < 1 {
		v.Page = 1
	}
	if max := v.PageCount(); v.Page > max {
		v.Page = max
	}
}

// NextPage advances one page when one exists.
func (v *ViewState) NextPage() {
	if v.Page < v.PageCount() {
		v.Page++
	}
}

// PrevPage steps back one page when possible.
func (v *ViewState) PrevPage() {
	if v.Page > 1 {
		v.Page--
	}
}

// CategoryOptions returns the sentinel plus the distinct categories observed
// in the full fetched sequence, in order of first appearance.
func CategoryOptions(books []catalog.Book) []string {
	return distinctOptions(books, func(b catalog.Book) string { return b.Category })
}

// AuthorOptions returns the sentinel plus the distinct authors observed in
// the full fetched sequence, in order of first appearance.
func AuthorOptions(books []catalog.Book) []string {
	return distinctOptions(books, func(b catalog.Book) string { return b.Author })
}

func distinctOptions(books []catalog.Book, key func(catalog.Book) string) []string {
	options := []string{FilterAll}
	seen := make(map[string]bool, len(books))
	for _, b := range books {
		k := key(b)
		if k == "" || seen[k] {
			continue
		}
		seen[k] = true
		options = append(options, k)
	}
	return options
}
