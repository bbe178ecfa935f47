package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attendanceController "magangku_backend/internals/features/attendance/controller"
)

// UserAttendanceRoutes — check-in + rekap untuk semua role login
// (akses rekap per-tim tetap dicek di controller).
func UserAttendanceRoutes(api fiber.Router, db *gorm.DB) {
	ac := attendanceController.NewAttendanceController(db)

	attendance := api.Group("/attendance")
	attendance.Post("/check-in", ac.CheckIn)
	attendance.Get("/history", ac.GetMyHistory)
	attendance.Get("/summary", ac.GetWeeklySummary)
	attendance.Get("/export", ac.ExportWeeklyCSV)
}
