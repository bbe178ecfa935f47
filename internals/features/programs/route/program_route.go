package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	programController "magangku_backend/internals/features/programs/controller"
)

// PublicProgramRoutes — daftar program terbuka, tanpa login
func PublicProgramRoutes(api fiber.Router, db *gorm.DB) {
	pc := programController.NewProgramController(db)
	api.Get("/programs", pc.GetOpenPrograms)
}

// AdminProgramRoutes — CRUD program oleh admin
func AdminProgramRoutes(api fiber.Router, db *gorm.DB) {
	pc := programController.NewProgramController(db)

	programs := api.Group("/programs")
	programs.Get("/", pc.GetPrograms)
	programs.Get("/:id", pc.GetProgram)
	programs.Post("/", pc.CreateProgram)
	programs.Put("/:id", pc.UpdateProgram)
	programs.Delete("/:id", pc.DeleteProgram)
}
