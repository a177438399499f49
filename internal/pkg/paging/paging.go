// Package paging implements the shared list pagination math used by the
// admin pages: fixed page size, clamped page numbers and the sliding
// window of page buttons rendered under each table.
package paging

// DefaultPageSize is the page size used by every admin list.
const DefaultPageSize = 10

// TotalPages returns the number of pages needed for total items at the
// given page size. Zero items still produce one (empty) page.
func TotalPages(total, pageSize int) int {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if total <= 0 {
		return 1
	}
	pages := total / pageSize
	if total%pageSize != 0 {
		pages++
	}
	return pages
}

// Clamp forces page into [1, totalPages].
func Clamp(page, totalPages int) int {
	if page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}

// Window returns up to five page-button numbers centred on the current
// page. Pages beyond totalPages are filtered out, so short lists show
// fewer than five buttons.
func Window(page, totalPages int) []int {
	count := totalPages
	if count > 5 {
		count = 5
	}
	buttons := make([]int, 0, count)
	for i := 0; i < count; i++ {
		num := i + 1
		if page > 3 {
			num = page + i - 2
		}
		if num >= 1 && num <= totalPages {
			buttons = append(buttons, num)
		}
	}
	return buttons
}

// Meta is the pagination block rendered under every admin list: the
// clamped current page, the button window and the "showing X to Y of Z"
// bounds.
type Meta struct {
	Page       int
	TotalPages int
	Total      int
	From       int
	To         int
	Buttons    []int
}

func MetaFor(page, pageSize, total int) Meta {
	totalPages := TotalPages(total, pageSize)
	page = Clamp(page, totalPages)
	from, to := ShowingRange(page, pageSize, total)
	return Meta{
		Page:       page,
		TotalPages: totalPages,
		Total:      total,
		From:       from,
		To:         to,
		Buttons:    Window(page, totalPages),
	}
}

// ShowingRange returns the 1-based "showing X to Y of Z" bounds for the
// current page. An empty list yields 0 to 0.
func ShowingRange(page, pageSize, total int) (from, to int) {
	if total <= 0 {
		return 0, 0
	}
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	from = (page-1)*pageSize + 1
	to = page * pageSize
	if to > total {
		to = total
	}
	if from > total {
		from = total
	}
	return from, to
}
