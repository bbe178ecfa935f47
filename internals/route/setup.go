package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"magangku_backend/internals/constants"
	activityRoute "magangku_backend/internals/features/activities/route"
	attendanceRoute "magangku_backend/internals/features/attendance/route"
	programRoute "magangku_backend/internals/features/programs/route"
	registrationRoute "magangku_backend/internals/features/registrations/route"
	reportRoute "magangku_backend/internals/features/reports/route"
	taskRoute "magangku_backend/internals/features/tasks/route"
	teamRoute "magangku_backend/internals/features/teams/route"
	authRoute "magangku_backend/internals/features/users/auth/route"
	userRoute "magangku_backend/internals/features/users/user/route"
	workProgramRoute "magangku_backend/internals/features/workprograms/route"
	authMiddleware "magangku_backend/internals/middlewares/auth"
)

// SetupRoutes mendaftarkan semua route aplikasi dalam empat grup:
//
//	/api   - publik (tanpa login)
//	/api/u - semua user login
//	/api/s - supervisor dan admin
//	/api/a - admin saja
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// Health check untuk load balancer / uptime monitor
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	authRoute.AuthRoutes(app, db)

	// =========================
	// 🌐 Public
	// =========================
	public := app.Group("/api")
	programRoute.PublicProgramRoutes(public, db)
	registrationRoute.PublicRegistrationRoutes(public, db)

	// =========================
	// 🔐 Login (semua role)
	// =========================
	user := app.Group("/api/u", authMiddleware.AuthMiddleware(db))
	userRoute.UserUserRoutes(user, db)
	teamRoute.UserTeamRoutes(user, db)
	attendanceRoute.UserAttendanceRoutes(user, db)
	taskRoute.UserTaskRoutes(user, db)
	reportRoute.UserReportRoutes(user, db)
	workProgramRoute.UserWorkProgramRoutes(user, db)
	activityRoute.UserActivityRoutes(user, db)

	// =========================
	// 🧑‍🏫 Supervisor + Admin
	// =========================
	supervisor := app.Group("/api/s",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles(constants.RoleErrorSupervisor("supervisi tim"), constants.SupervisorAndAbove...),
	)
	teamRoute.SupervisorTeamRoutes(supervisor, db)
	reportRoute.SupervisorReportRoutes(supervisor, db)

	// =========================
	// 🛡️ Admin
	// =========================
	admin := app.Group("/api/a",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles(constants.RoleErrorAdmin("administrasi"), constants.AdminOnly...),
	)
	userRoute.AdminUserRoutes(admin, db)
	programRoute.AdminProgramRoutes(admin, db)
	registrationRoute.AdminRegistrationRoutes(admin, db)
	teamRoute.AdminTeamRoutes(admin, db)
}
