package controller

import (
	"errors"
	"fmt"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"magangku_backend/internals/constants"
	"magangku_backend/internals/features/teams/dto"
	"magangku_backend/internals/features/teams/model"
	teamService "magangku_backend/internals/features/teams/service"
	userDto "magangku_backend/internals/features/users/user/dto"
	userModel "magangku_backend/internals/features/users/user/model"
	helper "magangku_backend/internals/helpers"
)

type TeamController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewTeamController(db *gorm.DB) *TeamController {
	return &TeamController{DB: db, Validate: validator.New()}
}

// POST /api/a/teams — buat tim lengkap dengan roster (8-10 mahasiswa)
func (tc *TeamController) CreateTeam(c *fiber.Ctx) error {
	var req dto.CreateTeamRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid input format")
	}
	req.Normalize()
	if err := tc.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	if len(req.MemberIDs) < model.TeamRosterMin || len(req.MemberIDs) > model.TeamRosterMax {
		return helper.Error(c, fiber.StatusBadRequest,
			fmt.Sprintf("Anggota tim harus %d-%d mahasiswa", model.TeamRosterMin, model.TeamRosterMax))
	}

	// ketua wajib bagian dari roster
	leaderInRoster := false
	for _, id := range req.MemberIDs {
		if id == req.LeaderID {
			leaderInRoster = true
			break
		}
	}
	if !leaderInRoster {
		return helper.Error(c, fiber.StatusBadRequest, "Ketua tim harus termasuk anggota tim")
	}

	// supervisor harus user dengan role supervisor
	var supervisor userModel.UserModel
	if err := tc.DB.First(&supervisor, "id = ?", req.SupervisorID).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Supervisor tidak ditemukan")
	}
	if supervisor.Role != constants.RoleSupervisor {
		return helper.Error(c, fiber.StatusBadRequest, "User yang dipilih bukan supervisor")
	}

	team := req.ToModel()
	err := tc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(team).Error; err != nil {
			return err
		}
		for _, raw := range req.MemberIDs {
			memberID, err := uuid.Parse(raw)
			if err != nil {
				return err
			}
			member := model.TeamMemberModel{
				TeamMemberTeamID: team.TeamID,
				TeamMemberUserID: memberID,
			}
			if err := tx.Create(&member).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Println("[ERROR] CreateTeam gagal:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat tim")
	}

	log.Printf("[SUCCESS] Tim dibuat: %s (%d anggota)\n", team.TeamID, len(req.MemberIDs))
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Tim berhasil dibuat", team)
}

// GET /api/a/teams?program_id=...
func (tc *TeamController) GetTeams(c *fiber.Ctx) error {
	p := helper.ParsePaginationWith(c, "created_at", "desc", helper.AdminOpts)

	q := tc.DB.Model(&model.TeamModel{})
	if programID := c.Query("program_id"); programID != "" {
		q = q.Where("team_program_id = ?", programID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil daftar tim")
	}

	var teams []model.TeamModel
	if err := q.
		Order(p.SortBy + " " + p.SortOrder).
		Limit(p.PerPage).Offset(p.Offset()).
		Find(&teams).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil daftar tim")
	}

	return helper.Success(c, "Daftar tim", fiber.Map{
		"pagination": helper.PaginationMeta(p, total),
		"teams":      teams,
	})
}

// GET /api/u/teams/:id — detail tim + roster (fan-out resolve user)
func (tc *TeamController) GetTeam(c *fiber.Ctx) error {
	teamID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "team_id bukan UUID valid")
	}

	team, err := teamService.FindTeam(tc.DB, teamID)
	if err != nil {
		if errors.Is(err, teamService.ErrTeamNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Tim tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	members, err := tc.resolveRoster(teamID)
	if err != nil {
		log.Println("[ERROR] Resolve roster gagal:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil anggota tim")
	}

	return helper.Success(c, "Detail tim", dto.TeamWithMembers{Team: *team, Members: members})
}

// GET /api/u/teams/my-team — tim milik mahasiswa yang login
func (tc *TeamController) GetMyTeam(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}

	teamID, err := teamService.TeamIDForMember(tc.DB, userID)
	if err != nil {
		if errors.Is(err, teamService.ErrTeamNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Anda belum tergabung di tim manapun")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	team, err := teamService.FindTeam(tc.DB, teamID)
	if err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Tim tidak ditemukan")
	}
	members, err := tc.resolveRoster(teamID)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil anggota tim")
	}

	return helper.Success(c, "Tim Anda", dto.TeamWithMembers{Team: *team, Members: members})
}

// GET /api/s/teams — tim yang dibimbing supervisor yang login
func (tc *TeamController) GetSupervisedTeams(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}

	var teams []model.TeamModel
	if err := tc.DB.
		Where("team_supervisor_id = ?", userID).
		Order("created_at DESC").
		Find(&teams).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil daftar tim")
	}

	return helper.Success(c, "Tim bimbingan Anda", fiber.Map{
		"total": len(teams),
		"teams": teams,
	})
}

// PUT /api/a/teams/:id
func (tc *TeamController) UpdateTeam(c *fiber.Ctx) error {
	var req dto.UpdateTeamRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid input format")
	}
	if err := tc.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var team model.TeamModel
	if err := tc.DB.First(&team, "team_id = ?", c.Params("id")).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Tim tidak ditemukan")
	}

	if req.TeamName != nil {
		team.TeamName = *req.TeamName
	}
	if req.FieldLocation != nil {
		team.TeamFieldLocation = *req.FieldLocation
	}
	if req.SupervisorID != nil {
		supervisorID, _ := uuid.Parse(*req.SupervisorID)
		var supervisor userModel.UserModel
		if err := tc.DB.First(&supervisor, "id = ?", supervisorID).Error; err != nil {
			return helper.Error(c, fiber.StatusNotFound, "Supervisor tidak ditemukan")
		}
		if supervisor.Role != constants.RoleSupervisor {
			return helper.Error(c, fiber.StatusBadRequest, "User yang dipilih bukan supervisor")
		}
		team.TeamSupervisorID = supervisorID
	}
	if req.LeaderID != nil {
		leaderID, _ := uuid.Parse(*req.LeaderID)
		onRoster, err := teamService.IsTeamMember(tc.DB, team.TeamID, leaderID)
		if err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Internal Server Error")
		}
		if !onRoster {
			return helper.Error(c, fiber.StatusBadRequest, "Ketua tim harus termasuk anggota tim")
		}
		team.TeamLeaderID = leaderID
	}
	if req.IsActive != nil {
		team.TeamIsActive = *req.IsActive
	}

	if err := tc.DB.Save(&team).Error; err != nil {
		log.Println("[ERROR] UpdateTeam gagal:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal update tim")
	}
	return helper.Success(c, "Tim berhasil diupdate", team)
}

// POST /api/a/teams/:id/members — tambah anggota (cek batas atas roster)
func (tc *TeamController) AddMember(c *fiber.Ctx) error {
	var req dto.AddMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid input format")
	}
	if err := tc.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	teamID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "team_id bukan UUID valid")
	}
	userID, _ := uuid.Parse(req.UserID)

	if _, err := teamService.FindTeam(tc.DB, teamID); err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Tim tidak ditemukan")
	}

	var count int64
	if err := tc.DB.Model(&model.TeamMemberModel{}).
		Where("team_member_team_id = ?", teamID).
		Count(&count).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	if count >= int64(model.TeamRosterMax) {
		return helper.Error(c, fiber.StatusBadRequest,
			fmt.Sprintf("Roster sudah penuh (maksimal %d anggota)", model.TeamRosterMax))
	}

	already, err := teamService.IsTeamMember(tc.DB, teamID, userID)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	if already {
		return helper.Error(c, fiber.StatusConflict, "User sudah menjadi anggota tim")
	}

	member := model.TeamMemberModel{
		TeamMemberTeamID: teamID,
		TeamMemberUserID: userID,
	}
	if err := tc.DB.Create(&member).Error; err != nil {
		log.Println("[ERROR] AddMember gagal:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menambah anggota")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Anggota berhasil ditambahkan", member)
}

// DELETE /api/a/teams/:id/members/:userId — keluarkan anggota (jaga batas bawah)
func (tc *TeamController) RemoveMember(c *fiber.Ctx) error {
	teamID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "team_id bukan UUID valid")
	}
	userID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "user_id bukan UUID valid")
	}

	team, err := teamService.FindTeam(tc.DB, teamID)
	if err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Tim tidak ditemukan")
	}
	if team.TeamLeaderID == userID {
		return helper.Error(c, fiber.StatusBadRequest, "Ketua tim tidak bisa dikeluarkan, ganti ketua dulu")
	}

	var count int64
	if err := tc.DB.Model(&model.TeamMemberModel{}).
		Where("team_member_team_id = ?", teamID).
		Count(&count).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	if count <= int64(model.TeamRosterMin) {
		return helper.Error(c, fiber.StatusBadRequest,
			fmt.Sprintf("Roster tidak boleh kurang dari %d anggota", model.TeamRosterMin))
	}

	if err := tc.DB.
		Where("team_member_team_id = ? AND team_member_user_id = ?", teamID, userID).
		Delete(&model.TeamMemberModel{}).Error; err != nil {
		log.Println("[ERROR] RemoveMember gagal:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengeluarkan anggota")
	}

	return helper.Success(c, "Anggota berhasil dikeluarkan", fiber.Map{
		"team_id": teamID,
		"user_id": userID,
	})
}

// DELETE /api/a/teams/:id — soft delete tim
func (tc *TeamController) DeleteTeam(c *fiber.Ctx) error {
	if err := tc.DB.Delete(&model.TeamModel{}, "team_id = ?", c.Params("id")).Error; err != nil {
		log.Println("[ERROR] DeleteTeam gagal:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus tim")
	}
	return helper.Success(c, "Tim berhasil dihapus", fiber.Map{"team_id": c.Params("id")})
}

func (tc *TeamController) resolveRoster(teamID uuid.UUID) ([]userDto.UserLite, error) {
	ids, err := teamService.RosterUserIDs(tc.DB, teamID)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []userDto.UserLite{}, nil
	}

	var users []userModel.UserModel
	if err := tc.DB.Where("id IN ?", ids).Find(&users).Error; err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID]*userModel.UserModel, len(users))
	for i := range users {
		byID[users[i].ID] = &users[i]
	}

	// jaga urutan roster (tanggal gabung), bukan urutan hasil query
	out := make([]userDto.UserLite, 0, len(ids))
	for _, id := range ids {
		if u, ok := byID[id]; ok {
			out = append(out, userDto.ToUserLite(u))
		}
	}
	return out, nil
}
