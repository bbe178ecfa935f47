package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	reportController "magangku_backend/internals/features/reports/controller"
)

// UserReportRoutes — laporan mingguan tim (upsert + submit oleh anggota)
func UserReportRoutes(api fiber.Router, db *gorm.DB) {
	rc := reportController.NewReportController(db)

	reports := api.Group("/reports")
	reports.Get("/", rc.GetReports)
	reports.Post("/", rc.UpsertReport)
	reports.Get("/:id", rc.GetReport)
	reports.Post("/:id/submit", rc.SubmitReport)
}

// SupervisorReportRoutes — review laporan oleh supervisor tim
func SupervisorReportRoutes(api fiber.Router, db *gorm.DB) {
	rc := reportController.NewReportController(db)

	reports := api.Group("/reports")
	reports.Post("/:id/comments", rc.AddComment)
	reports.Post("/:id/approve", rc.ApproveReport)
}
