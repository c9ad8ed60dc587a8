package booking

import (
	"strings"
	"time"

	"venue-webapp/model"
)

const (
	defaultClientName = "Unknown Client"
	defaultEventType  = "Event"
)

// VenueContext carries the fields that are constant for a given fetch into
// every expanded entry.
type VenueContext struct {
	VenueId   string
	VenueName string
}

// ParseDate reads a backend date string. Dates come as YYYY-MM-DD or as a
// full timestamp; only the calendar date matters, so the result is local
// midnight. An unparseable string yields the zero time, never an error.
func ParseDate(s string) time.Time {
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
		}
	}
	return time.Time{}
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// Expand projects each raw booking into one display entry per booking date.
// A record with N dates becomes exactly N entries sharing id, status and
// amount. Nothing is dropped or deduplicated here; same-date collisions are
// the grid builder's concern.
func Expand(raw []model.RawBooking, venue VenueContext) []model.Booking {
	entries := make([]model.Booking, 0, len(raw))

	for _, rb := range raw {
		clientName := strings.TrimSpace(rb.CreatedBy)
		if clientName == "" {
			clientName = defaultClientName
		}
		eventType := strings.TrimSpace(rb.BookingReason)
		if eventType == "" {
			eventType = defaultEventType
		}

		for _, bd := range rb.BookingDates {
			entries = append(entries, model.Booking{
				Id:              rb.BookingId,
				Date:            ParseDate(bd.Date),
				ClientName:      clientName,
				EventType:       eventType,
				Amount:          rb.AmountToBePaid,
				Status:          rb.BookingStatus,
				TimeSlot:        "All Day",
				SpecialRequests: rb.OtherReason,
				VenueId:         venue.VenueId,
				VenueName:       venue.VenueName,
			})
		}
	}

	return entries
}

// DisplayStatus maps a raw status code to its user-facing label. The mapping
// is total: unknown codes pass through unchanged.
func DisplayStatus(status string) string {
	switch status {
	case model.StatusApprovedPaid:
		return "Paid"
	case model.StatusApprovedNotPaid:
		return "Unpaid"
	case model.StatusPending:
		return "Pending"
	case model.StatusCancelled:
		return "Cancelled"
	case model.StatusRejected:
		return "Rejected"
	default:
		return status
	}
}

func isConfirmed(status string) bool {
	return status == model.StatusApprovedPaid || status == model.StatusApprovedNotPaid
}

type Summary struct {
	Total     int     `json:"total"`
	Confirmed int     `json:"confirmed"`
	Pending   int     `json:"pending"`
	Revenue   float64 `json:"revenue"`
}

// Summarize recomputes the dashboard counters from scratch. Unknown statuses
// count toward the total and revenue only.
func Summarize(entries []model.Booking) Summary {
	s := Summary{Total: len(entries)}
	for _, e := range entries {
		if isConfirmed(e.Status) {
			s.Confirmed++
		}
		if e.Status == model.StatusPending {
			s.Pending++
		}
		s.Revenue += e.Amount
	}
	return s
}
