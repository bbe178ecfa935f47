package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	activityController "magangku_backend/internals/features/activities/controller"
)

// UserActivityRoutes — log kegiatan harian (guard penulis di controller)
func UserActivityRoutes(api fiber.Router, db *gorm.DB) {
	ac := activityController.NewActivityController(db)

	activities := api.Group("/activities")
	activities.Get("/", ac.GetTeamActivities)
	activities.Post("/", ac.CreateActivity)
	activities.Post("/photos", ac.UploadActivityPhoto)
	activities.Put("/:id", ac.UpdateActivity)
	activities.Delete("/:id", ac.DeleteActivity)
}
