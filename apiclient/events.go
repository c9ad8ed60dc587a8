package apiclient

import (
	"context"
	"net/http"

	"venue-webapp/model"
)

// CreateEvent submits the event-creation form. The body is multipart because
// it may carry the event photo and guest photos.
func (c *Client) CreateEvent(ctx context.Context, form *Form) (*model.EventResponse, error) {
	out := new(model.EventResponse)
	err := c.do(ctx, "createEvent", http.MethodPost, "/event", form, out)
	return out, err
}

func (c *Client) GetAllEvents(ctx context.Context) (*model.EventsResponse, error) {
	out := new(model.EventsResponse)
	err := c.do(ctx, "getAllEvents", http.MethodGet, "/event", nil, out)
	return out, err
}

func (c *Client) GetPublishedEvents(ctx context.Context) (*model.EventsResponse, error) {
	out := new(model.EventsResponse)
	err := c.do(ctx, "getPublishedEvents", http.MethodGet, "/event/all", nil, out)
	return out, err
}

func (c *Client) GetEventById(ctx context.Context, eventId string) (*model.EventResponse, error) {
	out := new(model.EventResponse)
	err := c.do(ctx, "getEventById", http.MethodGet, "/event/"+eventId, nil, out)
	return out, err
}

func (c *Client) GetPublishedEventById(ctx context.Context, eventId string) (*model.EventResponse, error) {
	out := new(model.EventResponse)
	err := c.do(ctx, "getPublishedEventById", http.MethodGet, "/event/public/"+eventId, nil, out)
	return out, err
}

func (c *Client) GetAllEventsByUserId(ctx context.Context, userId string) (*model.EventsResponse, error) {
	out := new(model.EventsResponse)
	err := c.do(ctx, "getAllEventsByUserId", http.MethodGet, "/event/user/"+userId, nil, out)
	return out, err
}

func (c *Client) UpdateEventById(ctx context.Context, eventId string, event model.Event) (*model.EventResponse, error) {
	out := new(model.EventResponse)
	err := c.do(ctx, "updateEventById", http.MethodPut, "/event/"+eventId, event, out)
	return out, err
}

func (c *Client) ApproveEventBooking(ctx context.Context, eventId string, req model.EventActionRequest) (*model.StatusResponse, error) {
	out := new(model.StatusResponse)
	err := c.do(ctx, "approveEventBooking", http.MethodPut, "/event/approve/"+eventId, req, out)
	return out, err
}

func (c *Client) CancelEventBooking(ctx context.Context, eventId string, req model.EventActionRequest) (*model.StatusResponse, error) {
	out := new(model.StatusResponse)
	err := c.do(ctx, "cancelEventBooking", http.MethodPut, "/event/cancel/"+eventId, req, out)
	return out, err
}

func (c *Client) RequestEventPublication(ctx context.Context, eventId string, req model.EventActionRequest) (*model.StatusResponse, error) {
	out := new(model.StatusResponse)
	err := c.do(ctx, "requestEventPublication", http.MethodPatch, "/event/"+eventId+"/request-publish", req, out)
	return out, err
}

func (c *Client) ApproveEventAdmin(ctx context.Context, eventId string) (*model.StatusResponse, error) {
	out := new(model.StatusResponse)
	err := c.do(ctx, "approveEventAdmin", http.MethodPatch, "/event/"+eventId+"/approve", nil, out)
	return out, err
}

func (c *Client) QueryEventAdmin(ctx context.Context, eventId string, req model.EventActionRequest) (*model.StatusResponse, error) {
	out := new(model.StatusResponse)
	err := c.do(ctx, "queryEventAdmin", http.MethodPatch, "/event/"+eventId+"/query", req, out)
	return out, err
}

func (c *Client) RejectEventAdmin(ctx context.Context, eventId string, req model.EventActionRequest) (*model.StatusResponse, error) {
	out := new(model.StatusResponse)
	err := c.do(ctx, "rejectEventAdmin", http.MethodPatch, "/event/"+eventId+"/reject", req, out)
	return out, err
}
