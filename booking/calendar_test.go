package booking

import (
	"testing"
	"time"

	"venue-webapp/model"

	"github.com/stretchr/testify/assert"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestBuildMonthShape(t *testing.T) {
	// March 2025 starts on a Saturday: 6 padding cells plus 31 days.
	now := day(2025, time.March, 10)
	month := BuildMonth(day(2025, time.March, 15), 0, now, nil, CollideFirst)

	assert.Equal(t, 2025, month.Year)
	assert.Equal(t, 3, month.Month)
	assert.Len(t, month.Cells, 37)
	for i := 0; i < 6; i++ {
		assert.Nil(t, month.Cells[i].Date)
		assert.Equal(t, CellPadding, month.Cells[i].State)
	}
	assert.Equal(t, 1, month.Cells[6].Day)
	assert.Equal(t, 31, month.Cells[36].Day)
}

func TestBuildMonthDayClassification(t *testing.T) {
	now := day(2025, time.March, 10)
	entries := []model.Booking{
		{Id: "past", Date: day(2025, time.March, 1), Status: model.StatusApprovedPaid},
		{Id: "pending", Date: day(2025, time.March, 15), Status: model.StatusPending},
		{Id: "paid", Date: day(2025, time.March, 20), Status: model.StatusApprovedPaid},
		{Id: "unpaid", Date: day(2025, time.March, 21), Status: model.StatusApprovedNotPaid},
		{Id: "rejected", Date: day(2025, time.March, 22), Status: model.StatusRejected},
		{Id: "odd", Date: day(2025, time.March, 25), Status: "SOMETHING_NEW"},
	}

	month := BuildMonth(day(2025, time.March, 1), 0, now, entries, CollideFirst)
	cellFor := func(d int) DayCell { return month.Cells[5+d] }

	// Past wins over booked.
	assert.Equal(t, CellPast, cellFor(1).State)
	assert.True(t, cellFor(1).IsBooked)

	assert.Equal(t, CellToday, cellFor(10).State)
	assert.Equal(t, CellPending, cellFor(15).State)
	assert.Equal(t, CellConfirmed, cellFor(20).State)
	assert.Equal(t, CellConfirmed, cellFor(21).State)
	assert.Equal(t, CellCancelled, cellFor(22).State)
	assert.Equal(t, CellBooked, cellFor(25).State)
	assert.Equal(t, CellAvailable, cellFor(18).State)

	for _, cell := range month.Cells {
		assert.False(t, cell.IsPast && cell.IsToday, "a day cannot be both past and today")
	}
}

func TestBuildMonthCollisions(t *testing.T) {
	now := day(2025, time.March, 10)
	entries := []model.Booking{
		{Id: "first", Date: day(2025, time.March, 18), Status: model.StatusPending},
		{Id: "second", Date: day(2025, time.March, 18), Status: model.StatusApprovedPaid},
	}

	first := BuildMonth(day(2025, time.March, 1), 0, now, entries, CollideFirst)
	assert.Equal(t, "first", first.Cells[5+18].Booking.Id)
	assert.Equal(t, 2, first.Cells[5+18].Collisions)

	last := BuildMonth(day(2025, time.March, 1), 0, now, entries, CollideLast)
	assert.Equal(t, "second", last.Cells[5+18].Booking.Id)
}

func TestBuildMonthOffset(t *testing.T) {
	now := day(2025, time.March, 10)
	base := day(2025, time.January, 31)

	next := BuildMonth(base, 1, now, nil, CollideFirst)
	assert.Equal(t, 2, next.Month)
	assert.Equal(t, 2025, next.Year)
	// February 2025 starts on a Saturday and has 28 days.
	assert.Len(t, next.Cells, 34)

	// Crossing the year boundary normalizes.
	december := BuildMonth(day(2025, time.January, 15), -1, now, nil, CollideFirst)
	assert.Equal(t, 12, december.Month)
	assert.Equal(t, 2024, december.Year)

	// The caller's base date is untouched.
	assert.Equal(t, day(2025, time.January, 31), base)
}

func TestBuildMonthPastIsStrict(t *testing.T) {
	now := day(2025, time.March, 10)
	month := BuildMonth(day(2025, time.March, 1), 0, now, nil, CollideFirst)

	for _, cell := range month.Cells {
		if cell.Date == nil {
			continue
		}
		assert.Equal(t, cell.Date.Before(now), cell.IsPast)
		assert.Equal(t, cell.Date.Equal(now), cell.IsToday)
	}
}
