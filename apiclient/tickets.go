package apiclient

import (
	"context"
	"net/http"

	"venue-webapp/model"
)

func (c *Client) CreateEventTicketType(ctx context.Context, eventId string, req model.CreateTicketTypeRequest) (*model.TicketTypeResponse, error) {
	out := new(model.TicketTypeResponse)
	err := c.do(ctx, "createEventTicketType", http.MethodPost, "/events/"+eventId+"/ticket-types", req, out)
	return out, err
}

func (c *Client) GetAllEventTicketTypes(ctx context.Context, eventId string) (*model.TicketTypesResponse, error) {
	out := new(model.TicketTypesResponse)
	err := c.do(ctx, "getAllEventTicketTypes", http.MethodGet, "/events/"+eventId+"/ticket-types", nil, out)
	return out, err
}

func (c *Client) GetActiveEventTicketTypes(ctx context.Context, eventId string) (*model.TicketTypesResponse, error) {
	out := new(model.TicketTypesResponse)
	err := c.do(ctx, "getActiveEventTicketTypes", http.MethodGet, "/events/"+eventId+"/ticket-types/active", nil, out)
	return out, err
}

func (c *Client) PurchaseEventTicket(ctx context.Context, req model.PurchaseTicketRequest) (*model.StatusResponse, error) {
	out := new(model.StatusResponse)
	err := c.do(ctx, "purchaseEventTicket", http.MethodPost, "/event/tickets/purchase", req, out)
	return out, err
}

func (c *Client) CheckAndScanTicket(ctx context.Context, req model.ScanTicketRequest) (*model.StatusResponse, error) {
	out := new(model.StatusResponse)
	err := c.do(ctx, "checkAndScanTicket", http.MethodPost, "/event/tickets/check-in", req, out)
	return out, err
}
