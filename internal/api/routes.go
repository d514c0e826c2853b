package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register-org", handler.RegisterOrg)
	auth.Post("/login", handler.Login)
	auth.Post("/logout", handler.AuthRequired, handler.Logout)
	auth.Get("/me", handler.AuthRequired, handler.Me)
	auth.Post("/change-password", handler.AuthRequired, handler.ChangePassword)

	api.Get("/leave-types", handler.AuthRequired, handler.ListLeaveTypes)
	api.Get("/pay-periods", handler.AuthRequired, handler.ListPayPeriods)
	api.Get("/announcements", handler.AuthRequired, handler.ListAnnouncements)

	requests := api.Group("/requests", handler.AuthRequired)
	requests.Post("", handler.SubmitRequest)
	requests.Get("", handler.ListOwnRequests)

	api.Post("/notifications/send", handler.AuthRequired, handler.SendNotification)

	admin := api.Group("/admin", handler.AuthRequired, handler.AdminOnly)
	admin.Get("/requests", handler.ListOrgRequests)
	admin.Post("/requests/:id/approve", handler.ApproveRequest)
	admin.Post("/requests/:id/deny", handler.DenyRequest)
	admin.Get("/recipients", handler.ListRecipients)
	admin.Post("/recipients", handler.CreateRecipient)
	admin.Patch("/recipients/:id", handler.ToggleRecipient)
	admin.Get("/profiles", handler.ListOrgProfiles)
	admin.Patch("/profiles/:id", handler.UpdateProfileRole)
	admin.Post("/announcements", handler.CreateAnnouncement)
	admin.Patch("/announcements/:id", handler.UpdateAnnouncement)
	admin.Delete("/announcements/:id", handler.DeleteAnnouncement)
	admin.Post("/link-sheet", handler.LinkSheet)
	admin.Post("/test-sheet", handler.TestSheet)
	admin.Post("/create-sheet", handler.CreateSheet)
}
