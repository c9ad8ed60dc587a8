package booking

import (
	"fmt"
	"time"

	"venue-webapp/model"
)

// CollidePolicy decides which entry a day cell keeps when several bookings
// share the same calendar date.
type CollidePolicy int

const (
	CollideFirst CollidePolicy = iota
	CollideLast
)

// CellState is the visual classification of a day cell, in precedence order.
type CellState string

const (
	CellPadding   CellState = "padding"
	CellPast      CellState = "past"
	CellToday     CellState = "today"
	CellConfirmed CellState = "confirmed"
	CellPending   CellState = "pending"
	CellCancelled CellState = "cancelled"
	CellBooked    CellState = "booked"
	CellAvailable CellState = "available"
)

// DayCell is one square of the month grid. A nil Date marks a padding cell
// before the first of the month. Collisions counts how many entries matched
// the date, so a caller can surface double-bookings instead of losing them.
type DayCell struct {
	Date       *time.Time     `json:"date"`
	Day        int            `json:"day,omitempty"`
	Booking    *model.Booking `json:"booking,omitempty"`
	Collisions int            `json:"collisions,omitempty"`
	IsToday    bool           `json:"isToday"`
	IsPast     bool           `json:"isPast"`
	IsBooked   bool           `json:"isBooked"`
	State      CellState      `json:"state"`
}

type Month struct {
	Year  int       `json:"year"`
	Month int       `json:"month"`
	Title string    `json:"title"`
	Cells []DayCell `json:"cells"`
}

// BuildMonth builds the 7-column grid for the month offset months after
// base's month. The grid starts with one padding cell per weekday before the
// 1st (Sunday=0) and then one cell per day at local midnight. base is never
// mutated; any integer offset is valid, time.Date normalizes it.
func BuildMonth(base time.Time, offset int, now time.Time, entries []model.Booking, policy CollidePolicy) Month {
	first := time.Date(base.Year(), base.Month()+time.Month(offset), 1, 0, 0, 0, 0, base.Location())
	year, month := first.Year(), first.Month()
	daysInMonth := time.Date(year, month+1, 0, 0, 0, 0, 0, base.Location()).Day()
	startDayOfWeek := int(first.Weekday())
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	cells := make([]DayCell, 0, startDayOfWeek+daysInMonth)
	for i := 0; i < startDayOfWeek; i++ {
		cells = append(cells, DayCell{State: CellPadding})
	}

	for d := 1; d <= daysInMonth; d++ {
		date := time.Date(year, month, d, 0, 0, 0, 0, base.Location())

		var match *model.Booking
		collisions := 0
		for i := range entries {
			if sameDay(entries[i].Date, date) {
				collisions++
				if match == nil || policy == CollideLast {
					match = &entries[i]
				}
			}
		}

		cell := DayCell{
			Date:       &date,
			Day:        d,
			Booking:    match,
			Collisions: collisions,
			IsToday:    date.Equal(today),
			IsPast:     date.Before(today),
			IsBooked:   match != nil,
		}
		cell.State = classify(cell)
		cells = append(cells, cell)
	}

	return Month{
		Year:  year,
		Month: int(month),
		Title: fmt.Sprintf("%v %v", month, year),
		Cells: cells,
	}
}

// classify picks the cell state top-down, first match wins.
func classify(cell DayCell) CellState {
	switch {
	case cell.Date == nil:
		return CellPadding
	case cell.IsPast:
		return CellPast
	case cell.IsToday:
		return CellToday
	case cell.Booking != nil && isConfirmed(cell.Booking.Status):
		return CellConfirmed
	case cell.Booking != nil && cell.Booking.Status == model.StatusPending:
		return CellPending
	case cell.Booking != nil && (cell.Booking.Status == model.StatusCancelled || cell.Booking.Status == model.StatusRejected):
		return CellCancelled
	case cell.IsBooked:
		return CellBooked
	default:
		return CellAvailable
	}
}
