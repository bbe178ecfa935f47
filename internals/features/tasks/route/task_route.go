package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	taskController "magangku_backend/internals/features/tasks/controller"
)

// UserTaskRoutes — tugas mingguan tim (guard ketua/assignee di controller)
func UserTaskRoutes(api fiber.Router, db *gorm.DB) {
	tc := taskController.NewTaskController(db)

	tasks := api.Group("/tasks")
	tasks.Get("/", tc.GetWeeklyTasks)
	tasks.Post("/", tc.CreateTask)
	tasks.Put("/:id", tc.UpdateTask)
	tasks.Post("/:id/complete", tc.CompleteTask)
	tasks.Delete("/:id", tc.DeleteTask)
}
