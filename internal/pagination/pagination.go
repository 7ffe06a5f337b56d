package pagination

import "speakify/internal/domain"

// Page is one slice of an ordered question list.
type Page struct {
	Items  []domain.Question
	Number int
	Total  int
}

// Paginate slices items into the requested page. The page number is
// clamped into [1, total], so out-of-range requests return the nearest
// valid page instead of an error.
func Paginate(items []domain.Question, page, size int) Page {
	if size < 1 {
		size = 1
	}

	total := (len(items) + size - 1) / size
	if total == 0 {
		total = 1
	}

	if page < 1 {
		page = 1
	}
	if page > total {
		page = total
	}

	start := (page - 1) * size
	if start > len(items) {
		start = len(items)
	}
	end := start + size
	if end > len(items) {
		end = len(items)
	}

	return Page{
		Items:  items[start:end],
		Number: page,
		Total:  total,
	}
}

// HasPrev reports whether a previous page exists.
func (p Page) HasPrev() bool {
	return p.Number > 1
}

// HasNext reports whether a next page exists.
func (p Page) HasNext() bool {
	return p.Number < p.Total
}
