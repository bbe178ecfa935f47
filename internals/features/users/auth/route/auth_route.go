package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "magangku_backend/internals/features/users/auth/controller"
	middlewares "magangku_backend/internals/middlewares"
	authMiddleware "magangku_backend/internals/middlewares/auth"
)

// AuthRoutes — endpoint auth publik + logout (butuh token)
func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ac := authController.NewAuthController(db)

	auth := app.Group("/api/auth")
	auth.Post("/register", middlewares.RegisterRateLimiter(), ac.Register)
	auth.Post("/login", middlewares.LoginRateLimiter(), ac.Login)
	auth.Post("/login-google", middlewares.LoginRateLimiter(), ac.GoogleLogin)
	auth.Post("/refresh-token", ac.RefreshToken)
	auth.Post("/logout", authMiddleware.AuthMiddleware(db), ac.Logout)
}
