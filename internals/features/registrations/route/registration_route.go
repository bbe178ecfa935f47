package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	registrationController "magangku_backend/internals/features/registrations/controller"
	middlewares "magangku_backend/internals/middlewares"
)

// PublicRegistrationRoutes — pendaftaran & bukti bayar, tanpa login
func PublicRegistrationRoutes(api fiber.Router, db *gorm.DB) {
	rc := registrationController.NewRegistrationController(db)

	api.Post("/registrations", middlewares.RegisterRateLimiter(), rc.CreateRegistration)
	api.Post("/registrations/:id/payment-proof", rc.UploadPaymentProof)
}

// AdminRegistrationRoutes — review pendaftaran oleh admin
func AdminRegistrationRoutes(api fiber.Router, db *gorm.DB) {
	rc := registrationController.NewRegistrationController(db)

	registrations := api.Group("/registrations")
	registrations.Get("/", rc.GetRegistrations)
	registrations.Post("/:id/approve", rc.ApproveRegistration)
	registrations.Post("/:id/reject", rc.RejectRegistration)
}
