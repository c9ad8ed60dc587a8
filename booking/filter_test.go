package booking

import (
	"fmt"
	"testing"
	"time"

	"venue-webapp/model"

	"github.com/stretchr/testify/assert"
)

func smithFixture() []model.Booking {
	entries := []model.Booking{
		{Id: "1", ClientName: "John Smith", EventType: "Wedding", Status: model.StatusPending, Date: day(2025, time.March, 1)},
		{Id: "2", ClientName: "SMITHERS CO", EventType: "Conference", Status: model.StatusApprovedPaid, Date: day(2025, time.March, 2)},
		{Id: "3", ClientName: "Anna smith", EventType: "Party", Status: model.StatusCancelled, Date: day(2025, time.March, 3)},
	}
	for i := 4; i <= 12; i++ {
		entries = append(entries, model.Booking{
			Id:         fmt.Sprint(i),
			ClientName: fmt.Sprintf("Client %v", i),
			EventType:  "Meeting",
			Status:     model.StatusPending,
			Date:       day(2025, time.March, i),
		})
	}
	return entries
}

func TestFilterSearchCaseInsensitive(t *testing.T) {
	filtered := Filter(smithFixture(), Query{Search: "smith", Status: StatusAll})

	assert.Len(t, filtered, 3)
	for _, e := range filtered {
		assert.Contains(t, []string{"1", "2", "3"}, e.Id)
	}
}

func TestFilterStatus(t *testing.T) {
	entries := smithFixture()

	assert.Len(t, Filter(entries, Query{Status: StatusAll}), 12)
	assert.Len(t, Filter(entries, Query{Status: ""}), 12)
	assert.Len(t, Filter(entries, Query{Status: model.StatusApprovedPaid}), 1)
	assert.Empty(t, Filter(entries, Query{Status: model.StatusRejected}))
}

func TestFilterSelectedDate(t *testing.T) {
	selected := day(2025, time.March, 3)
	filtered := Filter(smithFixture(), Query{Status: StatusAll, Date: &selected})

	assert.Len(t, filtered, 1)
	assert.Equal(t, "3", filtered[0].Id)
}

func TestFilterPredicatesCompose(t *testing.T) {
	entries := smithFixture()
	selected := day(2025, time.March, 1)
	q := Query{Search: "smith", Status: model.StatusPending, Date: &selected}

	combined := Filter(entries, q)

	// Combined filtering equals intersecting the independent predicate runs.
	bySearch := Filter(entries, Query{Search: q.Search, Status: StatusAll})
	byStatus := Filter(entries, Query{Status: q.Status})
	byDate := Filter(entries, Query{Status: StatusAll, Date: q.Date})

	expected := []model.Booking{}
	for _, e := range bySearch {
		inStatus, inDate := false, false
		for _, s := range byStatus {
			if s.Id == e.Id && s.Date.Equal(e.Date) {
				inStatus = true
			}
		}
		for _, d := range byDate {
			if d.Id == e.Id && d.Date.Equal(e.Date) {
				inDate = true
			}
		}
		if inStatus && inDate {
			expected = append(expected, e)
		}
	}

	assert.Equal(t, expected, combined)
	assert.Len(t, combined, 1)
	assert.Equal(t, "1", combined[0].Id)
}

func TestPaginate(t *testing.T) {
	entries := smithFixture()[:7]

	page1 := Paginate(entries, 5, 1)
	assert.Len(t, page1.Items, 5)
	assert.Equal(t, 2, page1.TotalPages)
	assert.Equal(t, 7, page1.Total)

	page2 := Paginate(entries, 5, 2)
	assert.Len(t, page2.Items, 2)

	// Concatenating the pages in order reconstructs the filtered list.
	assert.Equal(t, entries, append(append([]model.Booking{}, page1.Items...), page2.Items...))
}

func TestPaginateBounds(t *testing.T) {
	empty := Paginate(nil, 5, 1)
	assert.Equal(t, 1, empty.TotalPages)
	assert.Empty(t, empty.Items)

	clampedHigh := Paginate(smithFixture(), 5, 99)
	assert.Equal(t, 3, clampedHigh.Page)
	assert.Len(t, clampedHigh.Items, 2)

	clampedLow := Paginate(smithFixture(), 5, 0)
	assert.Equal(t, 1, clampedLow.Page)

	for _, page := range []PageResult{empty, clampedHigh, clampedLow} {
		assert.LessOrEqual(t, len(page.Items), page.PageSize)
	}
}

func TestFilterEvents(t *testing.T) {
	events := []model.Event{
		{EventId: "e1", EventName: "Tech Conference", EventType: "CONFERENCE", BookingDates: []model.BookingDate{{Date: "2025-05-01"}}},
		{EventId: "e2", EventName: "Garden Party", EventDescription: "a technical showcase", EventType: "PARTY", BookingDates: []model.BookingDate{{Date: "2025-05-02"}}},
		{EventId: "e3", EventName: "Workshop", EventType: "WORKSHOP"},
	}

	bySearch := FilterEvents(events, "tech", CategoryAll, nil)
	assert.Len(t, bySearch, 2)

	byCategory := FilterEvents(events, "", "PARTY", nil)
	assert.Len(t, byCategory, 1)
	assert.Equal(t, "e2", byCategory[0].EventId)

	selected := day(2025, time.May, 1)
	byDate := FilterEvents(events, "", CategoryAll, &selected)
	assert.Len(t, byDate, 1)
	assert.Equal(t, "e1", byDate[0].EventId)

	// Events without dates never match a date filter.
	all := FilterEvents(events, "", CategoryAll, nil)
	assert.Len(t, all, 3)
}
