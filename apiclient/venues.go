package apiclient

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"

	"venue-webapp/model"
)

func (c *Client) CreateVenue(ctx context.Context, req model.CreateVenueRequest) (*model.VenueResponse, error) {
	out := new(model.VenueResponse)
	err := c.do(ctx, "createVenue", http.MethodPost, "/venue/add", req, out)
	return out, err
}

func (c *Client) GetAllVenues(ctx context.Context) (*model.VenuesResponse, error) {
	out := new(model.VenuesResponse)
	err := c.do(ctx, "getAllVenues", http.MethodGet, "/venue/public-venues/list", nil, out)
	return out, err
}

func (c *Client) GetAllVenuesAdmin(ctx context.Context) (*model.VenuesResponse, error) {
	out := new(model.VenuesResponse)
	err := c.do(ctx, "getAllVenuesAdmin", http.MethodGet, "/venue/all", nil, out)
	return out, err
}

func (c *Client) GetVenueById(ctx context.Context, venueId string) (*model.VenueResponse, error) {
	out := new(model.VenueResponse)
	err := c.do(ctx, "getVenueById", http.MethodGet, "/venue/"+venueId, nil, out)
	return out, err
}

func (c *Client) GetVenuesByManagerId(ctx context.Context, managerId string) (*model.VenuesResponse, error) {
	out := new(model.VenuesResponse)
	err := c.do(ctx, "getVenuesByManagerId", http.MethodGet, "/venue/managers/"+managerId+"/venues", nil, out)
	return out, err
}

// GetAvailableVenues lists venues free on all of the given dates
// (YYYY-MM-DD).
func (c *Client) GetAvailableVenues(ctx context.Context, dates []string) (*model.VenuesResponse, error) {
	out := new(model.VenuesResponse)
	query := url.Values{"dates": {strings.Join(dates, ",")}}
	err := c.do(ctx, "getAvailableVenues", http.MethodGet, "/venue/available-venues?"+query.Encode(), nil, out)
	return out, err
}

func (c *Client) UpdateVenueMainPhoto(ctx context.Context, venueId, filename string, photo io.Reader) (*model.VenueResponse, error) {
	form := NewForm()
	form.AddFile("mainPhoto", filename, photo)

	out := new(model.VenueResponse)
	err := c.do(ctx, "updateVenueMainPhoto", http.MethodPut, "/venue/"+venueId+"/main-photo", form, out)
	return out, err
}

func (c *Client) AddVenueGalleryImage(ctx context.Context, venueId, filename string, photo io.Reader) (*model.VenueResponse, error) {
	form := NewForm()
	form.AddFile("photo", filename, photo)

	out := new(model.VenueResponse)
	err := c.do(ctx, "addVenueGalleryImage", http.MethodPost, "/venue/"+venueId+"/photo-gallery", form, out)
	return out, err
}

func (c *Client) RemoveVenueGalleryImage(ctx context.Context, venueId, photoUrl string) (*model.StatusResponse, error) {
	out := new(model.StatusResponse)
	body := map[string]string{"photoUrl": photoUrl}
	err := c.do(ctx, "removeVenueGalleryImage", http.MethodDelete, "/venue/"+venueId+"/photo-gallery", body, out)
	return out, err
}

func (c *Client) UpdateVenueDetailsById(ctx context.Context, venueId string, venue model.Venue) (*model.VenueResponse, error) {
	out := new(model.VenueResponse)
	err := c.do(ctx, "updateVenueDetailsById", http.MethodPatch, "/venue/"+venueId, venue, out)
	return out, err
}

func (c *Client) UpdateVenueManager(ctx context.Context, venueId, managerId string) (*model.VenueResponse, error) {
	out := new(model.VenueResponse)
	body := map[string]string{"managerId": managerId}
	err := c.do(ctx, "updateVenueManager", http.MethodPut, "/venue/updateVenueManager/"+venueId, body, out)
	return out, err
}

func (c *Client) DeleteVenue(ctx context.Context, venueId string) (*model.StatusResponse, error) {
	out := new(model.StatusResponse)
	err := c.do(ctx, "deleteVenue", http.MethodDelete, "/venue/remove/"+venueId, nil, out)
	return out, err
}

func (c *Client) ApproveVenueAdmin(ctx context.Context, venueId string) (*model.StatusResponse, error) {
	out := new(model.StatusResponse)
	err := c.do(ctx, "approveVenueAdmin", http.MethodPatch, "/venue/"+venueId+"/approve", nil, out)
	return out, err
}

func (c *Client) RejectVenueAdmin(ctx context.Context, venueId, reason string) (*model.StatusResponse, error) {
	out := new(model.StatusResponse)
	body := model.EventActionRequest{Reason: reason}
	err := c.do(ctx, "rejectVenueAdmin", http.MethodPatch, "/venue/"+venueId+"/reject", body, out)
	return out, err
}
