package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"magangku_backend/internals/features/workprograms/dto"
	"magangku_backend/internals/features/workprograms/model"
	teamService "magangku_backend/internals/features/teams/service"
	helper "magangku_backend/internals/helpers"
)

type WorkProgramController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewWorkProgramController(db *gorm.DB) *WorkProgramController {
	return &WorkProgramController{DB: db, Validate: validator.New()}
}

// POST /api/u/work-programs
// Hanya ketua tim yang boleh membuat program kerja.
func (wc *WorkProgramController) CreateWorkProgram(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}

	var req dto.CreateWorkProgramRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid input format")
	}
	req.Normalize()
	if err := wc.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	if fiberErr := validateWeekSpan(c, req.StartWeek, req.EndWeek); fiberErr != nil {
		return fiberErr
	}

	if fiberErr := wc.requireTeamLeader(c, req.TeamID, userID); fiberErr != nil {
		return fiberErr
	}

	workProgram := req.ToModel(userID)
	if err := wc.DB.Create(workProgram).Error; err != nil {
		log.Printf("[ERROR] Gagal membuat program kerja: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat program kerja")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Program kerja berhasil dibuat", workProgram)
}

// GET /api/u/work-programs?team_id=
func (wc *WorkProgramController) GetWorkPrograms(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}

	teamID, err := uuid.Parse(c.Query("team_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "team_id tidak valid")
	}
	if fiberErr := wc.requireTeamAccess(c, teamID, userID); fiberErr != nil {
		return fiberErr
	}

	var programs []model.WorkProgramModel
	if err := wc.DB.
		Where("work_program_team_id = ?", teamID).
		Order("work_program_start_week ASC, created_at ASC").
		Find(&programs).Error; err != nil {
		log.Printf("[ERROR] Gagal mengambil program kerja: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil program kerja")
	}
	return helper.Success(c, "Daftar program kerja berhasil diambil", programs)
}

// PUT /api/u/work-programs/:id
func (wc *WorkProgramController) UpdateWorkProgram(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}
	workProgram, fiberErr := wc.findWorkProgram(c)
	if fiberErr != nil {
		return fiberErr
	}
	if fiberErr := wc.requireTeamLeader(c, workProgram.WorkProgramTeamID, userID); fiberErr != nil {
		return fiberErr
	}

	var req dto.UpdateWorkProgramRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid input format")
	}
	req.Normalize()
	if err := wc.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	req.ApplyToModel(workProgram)
	if fiberErr := validateWeekSpan(c, workProgram.WorkProgramStartWeek, workProgram.WorkProgramEndWeek); fiberErr != nil {
		return fiberErr
	}

	if err := wc.DB.Save(workProgram).Error; err != nil {
		log.Printf("[ERROR] Gagal update program kerja: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal update program kerja")
	}
	return helper.Success(c, "Program kerja berhasil diperbarui", workProgram)
}

// DELETE /api/u/work-programs/:id
func (wc *WorkProgramController) DeleteWorkProgram(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}
	workProgram, fiberErr := wc.findWorkProgram(c)
	if fiberErr != nil {
		return fiberErr
	}
	if fiberErr := wc.requireTeamLeader(c, workProgram.WorkProgramTeamID, userID); fiberErr != nil {
		return fiberErr
	}

	if err := wc.DB.Delete(workProgram).Error; err != nil {
		log.Printf("[ERROR] Gagal menghapus program kerja: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus program kerja")
	}
	return helper.Success(c, "Program kerja berhasil dihapus", nil)
}

// ---------------------------------------------------------
// Helper internal
// ---------------------------------------------------------

func (wc *WorkProgramController) findWorkProgram(c *fiber.Ctx) (*model.WorkProgramModel, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, helper.Error(c, fiber.StatusBadRequest, "ID program kerja tidak valid")
	}
	var workProgram model.WorkProgramModel
	if err := wc.DB.First(&workProgram, "work_program_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.Error(c, fiber.StatusNotFound, "Program kerja tidak ditemukan")
		}
		log.Printf("[ERROR] Gagal membaca program kerja: %v", err)
		return nil, helper.Error(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	return &workProgram, nil
}

func (wc *WorkProgramController) requireTeamLeader(c *fiber.Ctx, teamID, userID uuid.UUID) error {
	isLeader, err := teamService.IsTeamLeader(wc.DB, teamID, userID)
	if err != nil {
		if errors.Is(err, teamService.ErrTeamNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Tim tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	if !isLeader {
		return helper.Error(c, fiber.StatusForbidden, "Hanya ketua tim yang boleh mengelola program kerja")
	}
	return nil
}

func (wc *WorkProgramController) requireTeamAccess(c *fiber.Ctx, teamID, userID uuid.UUID) error {
	isSupervisor, err := teamService.IsTeamSupervisor(wc.DB, teamID, userID)
	if err != nil {
		if errors.Is(err, teamService.ErrTeamNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Tim tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	if isSupervisor {
		return nil
	}
	isMember, err := teamService.IsTeamMember(wc.DB, teamID, userID)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	if !isMember {
		return helper.Error(c, fiber.StatusForbidden, "Anda tidak punya akses ke program kerja tim ini")
	}
	return nil
}

func validateWeekSpan(c *fiber.Ctx, startWeek, endWeek string) error {
	if _, err := helper.ResolveWeekRange(startWeek); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Format start_week tidak valid (YYYY-Www)")
	}
	if _, err := helper.ResolveWeekRange(endWeek); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Format end_week tidak valid (YYYY-Www)")
	}
	if endWeek < startWeek {
		return helper.Error(c, fiber.StatusBadRequest, "end_week tidak boleh sebelum start_week")
	}
	return nil
}
