package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userController "magangku_backend/internals/features/users/user/controller"
)

// UserUserRoutes — endpoint profil untuk semua role login
func UserUserRoutes(api fiber.Router, db *gorm.DB) {
	uc := userController.NewUserController(db)

	users := api.Group("/users")
	users.Get("/me", uc.GetMe)
	users.Put("/me", uc.UpdateMe)
}

// AdminUserRoutes — manajemen user oleh admin
func AdminUserRoutes(api fiber.Router, db *gorm.DB) {
	uc := userController.NewUserController(db)

	users := api.Group("/users")
	users.Get("/", uc.GetUsers)
	users.Get("/search", uc.SearchUsers)
	users.Post("/", uc.CreateUser)
	users.Put("/:id", uc.UpdateUser)
	users.Delete("/:id", uc.DeleteUser)
}
