package apiclient

import (
	"context"
	"net/http"

	"venue-webapp/model"
)

func (c *Client) GetAllResources(ctx context.Context) (*model.ResourcesResponse, error) {
	out := new(model.ResourcesResponse)
	err := c.do(ctx, "getAllResources", http.MethodGet, "/resources/find-all", nil, out)
	return out, err
}

func (c *Client) AddResource(ctx context.Context, resource model.Resource) (*model.ResourceResponse, error) {
	out := new(model.ResourceResponse)
	err := c.do(ctx, "addResource", http.MethodPost, "/resources/create-resource", resource, out)
	return out, err
}

func (c *Client) GetResourceById(ctx context.Context, resourceId string) (*model.ResourceResponse, error) {
	out := new(model.ResourceResponse)
	err := c.do(ctx, "getResourceById", http.MethodGet, "/resources/find-one/"+resourceId, nil, out)
	return out, err
}

func (c *Client) UpdateResourceById(ctx context.Context, resourceId string, resource model.Resource) (*model.ResourceResponse, error) {
	out := new(model.ResourceResponse)
	err := c.do(ctx, "updateResourceById", http.MethodPut, "/resources/update-resource/"+resourceId, resource, out)
	return out, err
}

func (c *Client) DeleteResource(ctx context.Context, resourceId string) (*model.StatusResponse, error) {
	out := new(model.StatusResponse)
	err := c.do(ctx, "deleteResource", http.MethodDelete, "/resources/delete-resource/"+resourceId, nil, out)
	return out, err
}
