package handlers

import (
	"fmt"
	"log"
	"time"

	"venue-webapp/model"
	"venue-webapp/session"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt"
)

// Login authenticates against the backend, keeps the backend token in a
// server-side session and answers with a locally signed JWT referencing it.
func Login(c *fiber.Ctx) error {
	var creds = new(model.LoginRequest)

	if err := c.BodyParser(&creds); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status":  "error",
			"message": "Error on login request when parse credentials",
			"data":    fmt.Sprint(err)})
	}

	resp, err := api.LoginUser(c.Context(), *creds)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"status":  "error",
			"message": "Error on login request when calling backend",
			"data":    fmt.Sprint(err)})
	}
	if !resp.Success || resp.Token == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"status":  "error",
			"message": "Invalid credentials",
			"data":    nil})
	}

	sess, parseErr := session.FromToken(resp.Token)
	if parseErr != nil {
		// Opaque token: keep it without an expiry claim.
		sess = &session.Session{Token: resp.Token}
	}
	if resp.User != nil && sess.Username == "" {
		sess.Username = resp.User.Email
	}
	sid := sessions.Put(sess)

	token := jwt.New(jwt.SigningMethodHS256)

	claims := token.Claims.(jwt.MapClaims)
	claims["sid"] = sid
	claims["username"] = sess.Username
	claims["role"] = sess.Role
	claims["exp"] = time.Now().Add(time.Hour * time.Duration(cfg.SessionExpiry)).Unix()

	t, err := token.SignedString([]byte(cfg.SignSecret))
	if err != nil {
		log.Print(err)
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	return c.JSON(fiber.Map{"status": "success", "message": "Success login", "data": t})
}

func Register(c *fiber.Ctx) error {
	var form = new(model.RegisterRequest)

	if err := c.BodyParser(&form); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status":  "error",
			"message": "incorrect input for registration parameters",
			"data":    fmt.Sprint(err)})
	}

	resp, err := api.RegisterUser(c.Context(), *form)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"status":  "error",
			"message": "Error on register request when calling backend",
			"data":    fmt.Sprint(err)})
	}

	return c.JSON(fiber.Map{"status": "success", "message": resp.Message, "data": resp.User})
}

func ForgotPassword(c *fiber.Ctx) error {
	var form = new(model.ForgotPasswordRequest)

	if err := c.BodyParser(&form); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status":  "error",
			"message": "incorrect input for password reset",
			"data":    fmt.Sprint(err)})
	}

	resp, err := api.ForgotPassword(c.Context(), *form)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"status":  "error",
			"message": "Error on forgot-password request when calling backend",
			"data":    fmt.Sprint(err)})
	}

	return c.JSON(fiber.Map{"status": "success", "message": resp.Message, "data": nil})
}
