package booking

import (
	"testing"
	"time"

	"venue-webapp/model"

	"github.com/stretchr/testify/assert"
)

func TestExpandMultiDateBooking(t *testing.T) {
	raw := []model.RawBooking{
		{
			BookingId: "B1",
			BookingDates: []model.BookingDate{
				{Date: "2025-03-01"},
				{Date: "2025-03-15"},
			},
			BookingStatus:  model.StatusPending,
			AmountToBePaid: 500,
			CreatedBy:      "Alice Johnson",
			BookingReason:  "Wedding",
		},
	}

	entries := Expand(raw, VenueContext{VenueId: "v1", VenueName: "Main Hall"})

	assert.Len(t, entries, 2)
	assert.Equal(t, entries[0].Id, entries[1].Id)
	assert.Equal(t, entries[0].Status, entries[1].Status)
	assert.Equal(t, entries[0].Amount, entries[1].Amount)
	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.Local), entries[0].Date)
	assert.Equal(t, time.Date(2025, 3, 15, 0, 0, 0, 0, time.Local), entries[1].Date)
	assert.Equal(t, "Pending", DisplayStatus(entries[0].Status))
	assert.Equal(t, 500.0, entries[0].Amount)
	assert.Equal(t, "Main Hall", entries[0].VenueName)
}

func TestExpandDefaultsAndOrder(t *testing.T) {
	raw := []model.RawBooking{
		{
			BookingId:     "B2",
			BookingDates:  []model.BookingDate{{Date: "2025-04-03"}, {Date: "2025-04-01"}, {Date: "2025-04-02"}},
			BookingStatus: model.StatusApprovedPaid,
		},
	}

	entries := Expand(raw, VenueContext{})

	// No entry is dropped or reordered; blanks get placeholder values.
	assert.Len(t, entries, 3)
	assert.Equal(t, 3, entries[0].Date.Day())
	assert.Equal(t, 1, entries[1].Date.Day())
	assert.Equal(t, 2, entries[2].Date.Day())
	for _, e := range entries {
		assert.Equal(t, "Unknown Client", e.ClientName)
		assert.Equal(t, "Event", e.EventType)
		assert.Equal(t, 0.0, e.Amount)
	}
}

func TestExpandEmptyInput(t *testing.T) {
	assert.Empty(t, Expand(nil, VenueContext{}))
	assert.Empty(t, Expand([]model.RawBooking{}, VenueContext{}))
}

func TestDisplayStatusIsTotal(t *testing.T) {
	tests := []struct {
		status string
		label  string
	}{
		{model.StatusApprovedPaid, "Paid"},
		{model.StatusApprovedNotPaid, "Unpaid"},
		{model.StatusPending, "Pending"},
		{model.StatusCancelled, "Cancelled"},
		{model.StatusRejected, "Rejected"},
		{"SOMETHING_NEW", "SOMETHING_NEW"},
		{"", ""},
	}

	for _, test := range tests {
		assert.Equalf(t, test.label, DisplayStatus(test.status), "status %q", test.status)
	}
}

func TestSummarize(t *testing.T) {
	entries := []model.Booking{
		{Status: model.StatusApprovedPaid, Amount: 100},
		{Status: model.StatusApprovedNotPaid, Amount: 250},
		{Status: model.StatusPending, Amount: 50},
		{Status: model.StatusCancelled, Amount: 75},
		{Status: "UNKNOWN", Amount: 25},
	}

	s := Summarize(entries)

	assert.Equal(t, 5, s.Total)
	assert.Equal(t, 2, s.Confirmed)
	assert.Equal(t, 1, s.Pending)
	assert.Equal(t, 500.0, s.Revenue)
}

func TestParseDate(t *testing.T) {
	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.Local), ParseDate("2025-03-01"))
	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.Local), ParseDate("2025-03-01T10:30:00Z"))
	assert.True(t, ParseDate("not-a-date").IsZero())
}
