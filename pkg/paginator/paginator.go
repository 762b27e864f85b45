package paginator

import "strconv"

// PageSize is the number of items on a full page of any feed.
const PageSize = 10

type Page struct {
	Number   int
	NumPages int
	Total    int
}

// New resolves the raw "page" query value against total items.
// Garbage gives the first page, out of range numbers clamp to the nearest end.
func New(total int, raw string) *Page {
	if total < 0 {
		total = 0
	}
	numPages := (total + PageSize - 1) / PageSize
	if numPages < 1 {
		numPages = 1
	}

	n, err := strconv.Atoi(raw)
	switch {
	case err != nil:
		n = 1
	case n < 1:
		n = 1
	case n > numPages:
		n = numPages
	}

	return &Page{Number: n, NumPages: numPages, Total: total}
}

func (p *Page) Offset() int {
	return (p.Number - 1) * PageSize
}

func (p *Page) Limit() int {
	return PageSize
}

func (p *Page) HasPrevious() bool {
	return p.Number > 1
}

func (p *Page) HasNext() bool {
	return p.Number < p.NumPages
}

func (p *Page) PreviousPageNumber() int {
	return p.Number - 1
}

func (p *Page) NextPageNumber() int {
	return p.Number + 1
}

// Pages lists page numbers for the navigation bar.
func (p *Page) Pages() []int {
	pages := make([]int, p.NumPages)
	for i := range pages {
		pages[i] = i + 1
	}
	return pages
}
