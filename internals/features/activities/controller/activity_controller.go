package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"magangku_backend/internals/features/activities/dto"
	"magangku_backend/internals/features/activities/model"
	teamService "magangku_backend/internals/features/teams/service"
	helper "magangku_backend/internals/helpers"
)

type ActivityController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewActivityController(db *gorm.DB) *ActivityController {
	return &ActivityController{DB: db, Validate: validator.New()}
}

// POST /api/u/activities
func (ac *ActivityController) CreateActivity(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}

	var req dto.CreateActivityRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid input format")
	}
	req.Normalize()
	if err := ac.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	isMember, err := teamService.IsTeamMember(ac.DB, req.TeamID, userID)
	if err != nil {
		if errors.Is(err, teamService.ErrTeamNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Tim tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	if !isMember {
		return helper.Error(c, fiber.StatusForbidden, "Anda bukan anggota tim ini")
	}

	activity := req.ToModel(userID)
	if err := ac.DB.Create(activity).Error; err != nil {
		log.Printf("[ERROR] Gagal membuat log kegiatan: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat log kegiatan")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Log kegiatan berhasil dibuat", activity)
}

// GET /api/u/activities?team_id= (feed tim, terbaru dulu, paginated)
func (ac *ActivityController) GetTeamActivities(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}

	teamID, err := uuid.Parse(c.Query("team_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "team_id tidak valid")
	}
	if fiberErr := ac.requireTeamAccess(c, teamID, userID); fiberErr != nil {
		return fiberErr
	}

	p := helper.ParsePagination(c, "activity_date", "desc")

	query := ac.DB.Model(&model.ActivityModel{}).Where("activity_team_id = ?", teamID)
	if date := c.Query("date"); date != "" {
		query = query.Where("activity_date = ?", date)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		log.Printf("[ERROR] Gagal menghitung log kegiatan: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil log kegiatan")
	}

	var activities []model.ActivityModel
	if err := query.
		Order("activity_date DESC, created_at DESC").
		Limit(p.PerPage).Offset(p.Offset()).
		Find(&activities).Error; err != nil {
		log.Printf("[ERROR] Gagal mengambil log kegiatan: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil log kegiatan")
	}

	return helper.Success(c, "Feed kegiatan berhasil diambil", fiber.Map{
		"activities": activities,
		"pagination": helper.PaginationMeta(p, total),
	})
}

// PUT /api/u/activities/:id — hanya penulisnya
func (ac *ActivityController) UpdateActivity(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}
	activity, fiberErr := ac.findActivity(c)
	if fiberErr != nil {
		return fiberErr
	}
	if activity.ActivityUserID != userID {
		return helper.Error(c, fiber.StatusForbidden, "Hanya penulis yang boleh mengubah log ini")
	}

	var req dto.UpdateActivityRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid input format")
	}
	req.Normalize()
	if err := ac.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	req.ApplyToModel(activity)

	if err := ac.DB.Save(activity).Error; err != nil {
		log.Printf("[ERROR] Gagal update log kegiatan: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal update log kegiatan")
	}
	return helper.Success(c, "Log kegiatan berhasil diperbarui", activity)
}

// DELETE /api/u/activities/:id — hanya penulisnya
func (ac *ActivityController) DeleteActivity(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}
	activity, fiberErr := ac.findActivity(c)
	if fiberErr != nil {
		return fiberErr
	}
	if activity.ActivityUserID != userID {
		return helper.Error(c, fiber.StatusForbidden, "Hanya penulis yang boleh menghapus log ini")
	}

	if err := ac.DB.Delete(activity).Error; err != nil {
		log.Printf("[ERROR] Gagal menghapus log kegiatan: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus log kegiatan")
	}
	return helper.Success(c, "Log kegiatan berhasil dihapus", nil)
}

// POST /api/u/activities/photos — upload foto kegiatan, balikin URL publik
func (ac *ActivityController) UploadActivityPhoto(c *fiber.Ctx) error {
	if _, err := helper.GetUserIDFromToken(c); err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}
	fileHeader, err := c.FormFile("photo")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "File photo wajib dikirim")
	}
	url, err := helper.UploadImageToSupabase("activity-photos", fileHeader)
	if err != nil {
		log.Printf("[ERROR] Gagal upload foto kegiatan: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal upload foto")
	}
	return helper.Success(c, "Foto berhasil diupload", fiber.Map{"url": url})
}

func (ac *ActivityController) findActivity(c *fiber.Ctx) (*model.ActivityModel, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, helper.Error(c, fiber.StatusBadRequest, "ID log kegiatan tidak valid")
	}
	var activity model.ActivityModel
	if err := ac.DB.First(&activity, "activity_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.Error(c, fiber.StatusNotFound, "Log kegiatan tidak ditemukan")
		}
		log.Printf("[ERROR] Gagal membaca log kegiatan: %v", err)
		return nil, helper.Error(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	return &activity, nil
}

func (ac *ActivityController) requireTeamAccess(c *fiber.Ctx, teamID, userID uuid.UUID) error {
	isSupervisor, err := teamService.IsTeamSupervisor(ac.DB, teamID, userID)
	if err != nil {
		if errors.Is(err, teamService.ErrTeamNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Tim tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	if isSupervisor {
		return nil
	}
	isMember, err := teamService.IsTeamMember(ac.DB, teamID, userID)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	if !isMember {
		return helper.Error(c, fiber.StatusForbidden, "Anda tidak punya akses ke feed tim ini")
	}
	return nil
}
