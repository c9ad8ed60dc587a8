package handlers

import (
	"fmt"

	"venue-webapp/apiclient"
	"venue-webapp/config"
	"venue-webapp/session"
	"venue-webapp/wizard"

	"github.com/gofiber/fiber/v2"
	jwtv4 "github.com/golang-jwt/jwt/v4"
)

var (
	cfg      config.Config
	api      *apiclient.Client
	sessions *session.Store
	drafts   *wizard.Store
)

// Setup wires the handlers to their collaborators. Called once from main and
// from the route tests.
func Setup(c config.Config, client *apiclient.Client) {
	cfg = c
	api = client
	sessions = session.NewStore()
	drafts = wizard.NewStore()
}

// sessionFrom resolves the backend session referenced by the request's local
// JWT.
func sessionFrom(c *fiber.Ctx) (*session.Session, error) {
	token, ok := c.Locals("identity").(*jwtv4.Token)
	if !ok {
		return nil, fmt.Errorf("no identity on request")
	}
	claims, ok := token.Claims.(jwtv4.MapClaims)
	if !ok {
		return nil, fmt.Errorf("unexpected claims type")
	}
	sid, _ := claims["sid"].(string)

	return sessions.Get(sid)
}

// clientFor returns the API client bound to the caller's session.
func clientFor(c *fiber.Ctx) (*apiclient.Client, error) {
	sess, err := sessionFrom(c)
	if err != nil {
		return nil, err
	}
	return api.WithSession(sess), nil
}
