package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	workProgramController "magangku_backend/internals/features/workprograms/controller"
)

// UserWorkProgramRoutes — program kerja tim (guard ketua di controller)
func UserWorkProgramRoutes(api fiber.Router, db *gorm.DB) {
	wc := workProgramController.NewWorkProgramController(db)

	workPrograms := api.Group("/work-programs")
	workPrograms.Get("/", wc.GetWorkPrograms)
	workPrograms.Post("/", wc.CreateWorkProgram)
	workPrograms.Put("/:id", wc.UpdateWorkProgram)
	workPrograms.Delete("/:id", wc.DeleteWorkProgram)
}
