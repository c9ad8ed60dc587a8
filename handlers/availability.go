package handlers

import (
	"log"
	"strconv"
	"time"

	"venue-webapp/booking"
	"venue-webapp/config"
	"venue-webapp/errors"
	"venue-webapp/model"

	"github.com/gofiber/fiber/v2"
)

type bookingRow struct {
	model.Booking
	DisplayStatus string `json:"displayStatus"`
}

// GetVenueAvailability renders the availability dashboard for one venue:
// summary counters, two consecutive month grids and the filtered, paginated
// bookings table. A failed or malformed backend reply degrades to an empty
// dashboard instead of an error page.
func GetVenueAvailability(c *fiber.Ctx) error {
	venueId := c.Params("venueId")

	client, err := clientFor(c)
	if err != nil {
		return errors.RaisePermissionsError(c, err.Error())
	}

	venueName := "Unknown Venue"
	var raw []model.RawBooking

	resp, err := client.GetBookingsByVenueId(c.Context(), venueId)
	if err != nil {
		log.Printf("bookings fetch for venue %v failed: %v", venueId, err)
	} else if resp.Success {
		raw = resp.Bookings
		if resp.VenueSummary != nil && resp.VenueSummary.VenueName != "" {
			venueName = resp.VenueSummary.VenueName
		}
	}

	entries := booking.Expand(raw, booking.VenueContext{VenueId: venueId, VenueName: venueName})
	summary := booking.Summarize(entries)

	base := time.Now()
	if m := c.Query("month"); m != "" {
		if parsed, perr := time.ParseInLocation("2006-01", m, time.Local); perr == nil {
			base = parsed
		}
	}

	now := time.Now()
	months := []booking.Month{
		booking.BuildMonth(base, 0, now, entries, booking.CollideFirst),
		booking.BuildMonth(base, 1, now, entries, booking.CollideFirst),
	}

	query := booking.Query{
		Search: c.Query("search"),
		Status: c.Query("status", booking.StatusAll),
	}
	if d := c.Query("date"); d != "" {
		if selected := booking.ParseDate(d); !selected.IsZero() {
			query.Date = &selected
		}
	}

	// A non-numeric page parses to 0, which Paginate clamps to 1.
	page, _ := strconv.Atoi(c.Query("page", "1"))

	filtered := booking.Filter(entries, query)
	result := booking.Paginate(filtered, config.ItemsPerPage, page)

	rows := make([]bookingRow, 0, len(result.Items))
	for _, item := range result.Items {
		rows = append(rows, bookingRow{Booking: item, DisplayStatus: booking.DisplayStatus(item.Status)})
	}

	return c.JSON(fiber.Map{
		"status":    "success",
		"venueName": venueName,
		"summary":   summary,
		"calendar":  months,
		"bookings": fiber.Map{
			"items":      rows,
			"page":       result.Page,
			"pageSize":   result.PageSize,
			"total":      result.Total,
			"totalPages": result.TotalPages,
		},
	})
}
