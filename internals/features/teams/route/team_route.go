package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	teamController "magangku_backend/internals/features/teams/controller"
)

// UserTeamRoutes — info tim untuk mahasiswa/supervisor login
func UserTeamRoutes(api fiber.Router, db *gorm.DB) {
	tc := teamController.NewTeamController(db)

	teams := api.Group("/teams")
	teams.Get("/my-team", tc.GetMyTeam)
	teams.Get("/:id", tc.GetTeam)
}

// SupervisorTeamRoutes — daftar tim bimbingan
func SupervisorTeamRoutes(api fiber.Router, db *gorm.DB) {
	tc := teamController.NewTeamController(db)
	api.Get("/teams", tc.GetSupervisedTeams)
}

// AdminTeamRoutes — CRUD tim + roster oleh admin
func AdminTeamRoutes(api fiber.Router, db *gorm.DB) {
	tc := teamController.NewTeamController(db)

	teams := api.Group("/teams")
	teams.Get("/", tc.GetTeams)
	teams.Post("/", tc.CreateTeam)
	teams.Put("/:id", tc.UpdateTeam)
	teams.Delete("/:id", tc.DeleteTeam)
	teams.Post("/:id/members", tc.AddMember)
	teams.Delete("/:id/members/:userId", tc.RemoveMember)
}
