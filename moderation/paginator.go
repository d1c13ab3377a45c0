package moderation

import (
	"fmt"

	"moderation-bot/model"
)

// DefaultPageSize is the number of cases shown per listing page.
const DefaultPageSize = 10

// Page is a bounded, ordered chunk of case records prepared for
// sequential display. Empty marks the terminal "no cases" page.
type Page struct {
	Header string
	Cases  []model.CaseRecord
	Index  int // zero-based
	Count  int // total pages in the listing
	Empty  bool
}

// NavAction is a pagination control input.
type NavAction string

const (
	NavBack NavAction = "back"
	NavNext NavAction = "next"
	NavEnd  NavAction = "end"
)

// Paginate chunks cases into pages of up to pageSize records, in the
// order received. Every page header carries totalCases, the guild's
// unfiltered case count, even when the listing is a filtered subset.
// An empty input yields exactly one "no cases" page.
func Paginate(cases []model.CaseRecord, pageSize, totalCases int) []Page {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	header := fmt.Sprintf("Total Cases (%d)", totalCases)

	if len(cases) == 0 {
		return []Page{{Header: header, Index: 0, Count: 1, Empty: true}}
	}

	count := (len(cases) + pageSize - 1) / pageSize
	pages := make([]Page, 0, count)
	for start := 0; start < len(cases); start += pageSize {
		end := start + pageSize
		if end > len(cases) {
			end = len(cases)
		}
		pages = append(pages, Page{
			Header: header,
			Cases:  cases[start:end],
			Index:  len(pages),
			Count:  count,
		})
	}
	return pages
}

// Navigate computes the next page index for a control input. Back and
// next clamp at the first and last page with no wraparound; end leaves
// the index unchanged and reports the session as closed.
func Navigate(current, totalPages int, action NavAction) (next int, done bool) {
	switch action {
	case NavBack:
		current--
	case NavNext:
		current++
	case NavEnd:
		return current, true
	}
	if current < 0 {
		current = 0
	}
	if current > totalPages-1 {
		current = totalPages - 1
	}
	return current, false
}
