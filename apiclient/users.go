package apiclient

import (
	"context"
	"net/http"

	"venue-webapp/model"
)

func (c *Client) RegisterUser(ctx context.Context, req model.RegisterRequest) (*model.AuthResponse, error) {
	out := new(model.AuthResponse)
	err := c.do(ctx, "registerUser", http.MethodPost, "/users/auth/register", req, out)
	return out, err
}

func (c *Client) LoginUser(ctx context.Context, req model.LoginRequest) (*model.AuthResponse, error) {
	out := new(model.AuthResponse)
	err := c.do(ctx, "loginUser", http.MethodPost, "/users/auth/login", req, out)
	return out, err
}

func (c *Client) ResetDefaultPassword(ctx context.Context, req model.ResetPasswordRequest) (*model.AuthResponse, error) {
	out := new(model.AuthResponse)
	err := c.do(ctx, "resetDefaultPassword", http.MethodPost, "/users/auth/reset", req, out)
	return out, err
}

func (c *Client) ForgotPassword(ctx context.Context, req model.ForgotPasswordRequest) (*model.StatusResponse, error) {
	out := new(model.StatusResponse)
	err := c.do(ctx, "forgotPassword", http.MethodPost, "/users/auth/forgot", req, out)
	return out, err
}

func (c *Client) GetAllUsers(ctx context.Context) (*model.UsersResponse, error) {
	out := new(model.UsersResponse)
	err := c.do(ctx, "getAllUsers", http.MethodGet, "/users", nil, out)
	return out, err
}

func (c *Client) GetUserById(ctx context.Context, userId string) (*model.UserResponse, error) {
	out := new(model.UserResponse)
	err := c.do(ctx, "getUserById", http.MethodGet, "/users/"+userId, nil, out)
	return out, err
}

func (c *Client) UpdateUserById(ctx context.Context, userId string, user model.User) (*model.UserResponse, error) {
	out := new(model.UserResponse)
	err := c.do(ctx, "updateUserById", http.MethodPut, "/users/"+userId, user, out)
	return out, err
}

func (c *Client) DeleteUser(ctx context.Context, userId string) (*model.StatusResponse, error) {
	out := new(model.StatusResponse)
	err := c.do(ctx, "deleteUser", http.MethodDelete, "/users/"+userId, nil, out)
	return out, err
}
