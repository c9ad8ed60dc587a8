package apiclient

import (
	"context"
	"net/http"

	"venue-webapp/model"
)

func (c *Client) GetAllBookings(ctx context.Context) (*model.BookingsResponse, error) {
	out := new(model.BookingsResponse)
	err := c.do(ctx, "getAllBookings", http.MethodGet, "/venue-bookings", nil, out)
	return out, err
}

func (c *Client) GetBookingById(ctx context.Context, bookingId string) (*model.BookingResponse, error) {
	out := new(model.BookingResponse)
	err := c.do(ctx, "getBookingById", http.MethodGet, "/venue-bookings/"+bookingId, nil, out)
	return out, err
}

func (c *Client) GetBookingsByManager(ctx context.Context, managerId string) (*model.BookingsResponse, error) {
	out := new(model.BookingsResponse)
	err := c.do(ctx, "getBookingsByManager", http.MethodGet, "/venue-bookings/manager/"+managerId, nil, out)
	return out, err
}

func (c *Client) GetBookingsByOrganizationId(ctx context.Context, orgId string) (*model.BookingsResponse, error) {
	out := new(model.BookingsResponse)
	err := c.do(ctx, "getBookingsByOrganizationId", http.MethodGet, "/venue-bookings/organization/"+orgId, nil, out)
	return out, err
}

// GetBookingsByVenueId returns bookings for one venue plus its venueSummary.
// This is the feed behind the availability dashboard.
func (c *Client) GetBookingsByVenueId(ctx context.Context, venueId string) (*model.BookingsResponse, error) {
	out := new(model.BookingsResponse)
	err := c.do(ctx, "getBookingsByVenueId", http.MethodGet, "/venue-bookings/venue/"+venueId+"/bookings", nil, out)
	return out, err
}

func (c *Client) GetBookingsByEventId(ctx context.Context, eventId string) (*model.BookingsResponse, error) {
	out := new(model.BookingsResponse)
	err := c.do(ctx, "getBookingsByEventId", http.MethodGet, "/venue-bookings/event/"+eventId, nil, out)
	return out, err
}

func (c *Client) GetPendingEventBookings(ctx context.Context) (*model.BookingsResponse, error) {
	out := new(model.BookingsResponse)
	err := c.do(ctx, "getPendingEventBookings", http.MethodGet, "/event-bookings/status/pending", nil, out)
	return out, err
}

func (c *Client) CreateBooking(ctx context.Context, req model.CreateBookingRequest) (*model.BookingResponse, error) {
	out := new(model.BookingResponse)
	err := c.do(ctx, "createBooking", http.MethodPost, "/venue-bookings", req, out)
	return out, err
}

func (c *Client) PayEventBooking(ctx context.Context, bookingId string, amount float64) (*model.StatusResponse, error) {
	out := new(model.StatusResponse)
	body := map[string]float64{"amount": amount}
	err := c.do(ctx, "payEventBooking", http.MethodPost, "/venue-bookings/"+bookingId+"/payments", body, out)
	return out, err
}
