package booking

import (
	"strings"
	"time"

	"venue-webapp/model"
)

// StatusAll passes every entry through the status predicate.
const StatusAll = "all"

// Query holds the three table filters. The predicates are independent and
// ANDed together.
type Query struct {
	Search string
	Status string
	Date   *time.Time
}

// Filter keeps entries whose client name or event type contains the search
// text (case-insensitive), whose raw status matches exactly unless the
// filter is "all" or empty, and whose date equals the selected calendar
// date when one is set.
func Filter(entries []model.Booking, q Query) []model.Booking {
	search := strings.ToLower(strings.TrimSpace(q.Search))

	out := make([]model.Booking, 0, len(entries))
	for _, e := range entries {
		matchesSearch := search == "" ||
			strings.Contains(strings.ToLower(e.ClientName), search) ||
			strings.Contains(strings.ToLower(e.EventType), search)
		matchesStatus := q.Status == "" || q.Status == StatusAll || e.Status == q.Status
		matchesDate := q.Date == nil || sameDay(e.Date, *q.Date)

		if matchesSearch && matchesStatus && matchesDate {
			out = append(out, e)
		}
	}
	return out
}

type PageResult struct {
	Items      []model.Booking `json:"items"`
	Page       int             `json:"page"`
	PageSize   int             `json:"pageSize"`
	Total      int             `json:"total"`
	TotalPages int             `json:"totalPages"`
}

// Paginate slices the filtered list into 1-indexed pages. There is always at
// least one page; out-of-range page numbers clamp to the valid range.
func Paginate(items []model.Booking, pageSize, page int) PageResult {
	if pageSize < 1 {
		pageSize = 1
	}
	totalPages := (len(items) + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > len(items) {
		start = len(items)
	}
	if end > len(items) {
		end = len(items)
	}

	return PageResult{
		Items:      items[start:end],
		Page:       page,
		PageSize:   pageSize,
		Total:      len(items),
		TotalPages: totalPages,
	}
}

// CategoryAll passes every event through the category predicate.
const CategoryAll = "All categories"

// FilterEvents filters the published events listing: search over name and
// description, exact category, and the event's first booking date against
// the selected date.
func FilterEvents(events []model.Event, search, category string, date *time.Time) []model.Event {
	needle := strings.ToLower(strings.TrimSpace(search))

	out := make([]model.Event, 0, len(events))
	for _, ev := range events {
		matchesSearch := needle == "" ||
			strings.Contains(strings.ToLower(ev.EventName), needle) ||
			strings.Contains(strings.ToLower(ev.EventDescription), needle)
		matchesCategory := category == "" || category == CategoryAll || ev.EventType == category

		matchesDate := true
		if date != nil {
			matchesDate = false
			if len(ev.BookingDates) > 0 {
				matchesDate = sameDay(ParseDate(ev.BookingDates[0].Date), *date)
			}
		}

		if matchesSearch && matchesCategory && matchesDate {
			out = append(out, ev)
		}
	}
	return out
}
