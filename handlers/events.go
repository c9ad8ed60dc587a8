package handlers

import (
	"time"

	"venue-webapp/booking"
	"venue-webapp/errors"
	"venue-webapp/model"

	"github.com/gofiber/fiber/v2"
)

// GetEvents lists published events filtered by search text, category and
// date.
func GetEvents(c *fiber.Ctx) error {
	resp, err := api.GetPublishedEvents(c.Context())
	if err != nil {
		return errors.RaiseUpstreamError(c, "Failed to load events.")
	}

	var events []model.Event
	if resp.Success {
		events = resp.Data
	}

	var date *time.Time
	if d := c.Query("date"); d != "" {
		if selected := booking.ParseDate(d); !selected.IsZero() {
			date = &selected
		}
	}

	filtered := booking.FilterEvents(events, c.Query("search"), c.Query("category", booking.CategoryAll), date)

	return c.JSON(fiber.Map{"status": "success", "message": "", "data": filtered})
}

func GetEvent(c *fiber.Ctx) error {
	resp, err := api.GetPublishedEventById(c.Context(), c.Params("eventId"))
	if err != nil {
		return errors.RaiseUpstreamError(c, err.Error())
	}
	if !resp.Success || resp.Data == nil {
		return errors.RaiseNotFoundError(c, "event not found")
	}

	return c.JSON(fiber.Map{"status": "success", "message": "", "data": resp.Data})
}

func GetVenues(c *fiber.Ctx) error {
	resp, err := api.GetAllVenues(c.Context())
	if err != nil {
		return errors.RaiseUpstreamError(c, "Failed to load venues.")
	}

	var venues []model.Venue
	if resp.Success {
		venues = resp.Data
	}

	return c.JSON(fiber.Map{"status": "success", "message": "", "data": venues})
}

func GetVenue(c *fiber.Ctx) error {
	resp, err := api.GetVenueById(c.Context(), c.Params("venueId"))
	if err != nil {
		return errors.RaiseUpstreamError(c, err.Error())
	}
	if !resp.Success || resp.Data == nil {
		return errors.RaiseNotFoundError(c, "venue not found")
	}

	return c.JSON(fiber.Map{"status": "success", "message": "", "data": resp.Data})
}
