package apiclient

import (
	"context"
	"net/http"

	"venue-webapp/model"
)

func (c *Client) AddOrganizations(ctx context.Context, orgs []model.Organization) (*model.StatusResponse, error) {
	out := new(model.StatusResponse)
	err := c.do(ctx, "addOrganizations", http.MethodPost, "/organizations/bulk", orgs, out)
	return out, err
}

func (c *Client) GetAllOrganizations(ctx context.Context) (*model.OrganizationsResponse, error) {
	out := new(model.OrganizationsResponse)
	err := c.do(ctx, "getAllOrganizations", http.MethodGet, "/organizations/all", nil, out)
	return out, err
}

func (c *Client) GetOrganizationById(ctx context.Context, orgId string) (*model.OrganizationResponse, error) {
	out := new(model.OrganizationResponse)
	err := c.do(ctx, "getOrganizationById", http.MethodGet, "/organizations/"+orgId, nil, out)
	return out, err
}

func (c *Client) UpdateOrganizationById(ctx context.Context, orgId string, org model.Organization) (*model.OrganizationResponse, error) {
	out := new(model.OrganizationResponse)
	err := c.do(ctx, "updateOrganizationById", http.MethodPut, "/organizations/"+orgId, org, out)
	return out, err
}

func (c *Client) DeleteOrganization(ctx context.Context, orgId string) (*model.StatusResponse, error) {
	out := new(model.StatusResponse)
	err := c.do(ctx, "deleteOrganization", http.MethodDelete, "/organizations/"+orgId, nil, out)
	return out, err
}

func (c *Client) QueryOrganization(ctx context.Context, orgId, reason string) (*model.StatusResponse, error) {
	out := new(model.StatusResponse)
	body := model.EventActionRequest{Reason: reason}
	err := c.do(ctx, "queryOrganization", http.MethodPatch, "/organizations/"+orgId+"/query", body, out)
	return out, err
}

func (c *Client) GetVenuesByOrganizationId(ctx context.Context, orgId string) (*model.VenuesResponse, error) {
	out := new(model.VenuesResponse)
	err := c.do(ctx, "getVenuesByOrganizationId", http.MethodGet, "/organizations/"+orgId+"/venues", nil, out)
	return out, err
}

func (c *Client) AddUsersToOrganization(ctx context.Context, orgId string, req model.AddOrganizationUsersRequest) (*model.StatusResponse, error) {
	out := new(model.StatusResponse)
	err := c.do(ctx, "addUsersToOrganization", http.MethodPost, "/organizations/"+orgId+"/users", req, out)
	return out, err
}

func (c *Client) AddVenuesToOrganization(ctx context.Context, orgId string, req model.OrganizationVenuesRequest) (*model.StatusResponse, error) {
	out := new(model.StatusResponse)
	err := c.do(ctx, "addVenuesToOrganization", http.MethodPost, "/organizations/"+orgId+"/venues", req, out)
	return out, err
}

func (c *Client) GetOrganizationsByUserId(ctx context.Context, userId string) (*model.OrganizationsResponse, error) {
	out := new(model.OrganizationsResponse)
	err := c.do(ctx, "getOrganizationsByUserId", http.MethodGet, "/organizations/user/"+userId, nil, out)
	return out, err
}
