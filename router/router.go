package router

import (
	"venue-webapp/handlers"
	"venue-webapp/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App) {
	api := app.Group("/", logger.New())

	//Auth
	auth := api.Group("/auth")
	auth.Post("/register", handlers.Register)
	auth.Post("/login", handlers.Login)
	auth.Post("/forgot", handlers.ForgotPassword)

	//Public browsing
	api.Get("/events", handlers.GetEvents)
	api.Get("/venues", handlers.GetVenues)
	api.Get("/venues/:venueId", handlers.GetVenue)

	//Event wizard (session-bound drafts)
	wiz := api.Group("/events/wizard", middleware.Authorize())
	wiz.Post("/", handlers.StartWizard)
	wiz.Get("/:draftId", handlers.GetWizardDraft)
	wiz.Post("/:draftId/next", handlers.WizardNext)
	wiz.Post("/:draftId/back", handlers.WizardBack)
	wiz.Post("/:draftId/submit", handlers.SubmitWizard)

	api.Get("/events/:eventId", handlers.GetEvent)

	//Availability dashboard
	availability := api.Group("/venues/:venueId/availability", middleware.Authorize())
	availability.Get("/", handlers.GetVenueAvailability)
}
