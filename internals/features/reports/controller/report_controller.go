package controller

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"magangku_backend/internals/constants"
	"magangku_backend/internals/features/reports/dto"
	"magangku_backend/internals/features/reports/model"
	"magangku_backend/internals/features/reports/service"
	teamService "magangku_backend/internals/features/teams/service"
	helper "magangku_backend/internals/helpers"
)

type ReportController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{DB: db, Validate: validator.New()}
}

// POST /api/u/reports
// Upsert by (team, week): laporan pertama untuk kombinasi itu dibuat,
// request berikutnya mem-patch laporan yang sama.
func (rc *ReportController) UpsertReport(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}

	var req dto.UpsertReportRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid input format")
	}
	req.Normalize()
	if err := rc.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	if _, err := helper.ResolveWeekRange(req.Week); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Format minggu tidak valid (YYYY-Www)")
	}

	isMember, err := teamService.IsTeamMember(rc.DB, req.TeamID, userID)
	if err != nil {
		if errors.Is(err, teamService.ErrTeamNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Tim tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	if !isMember {
		return helper.Error(c, fiber.StatusForbidden, "Anda bukan anggota tim ini")
	}

	now := time.Now()
	patch := service.UpsertPatch{
		TaskIDs:     req.TaskIDs,
		Progress:    req.Progress,
		Photos:      req.Photos,
		Description: req.Description,
		Status:      req.Status,
	}

	var report model.WeeklyReportModel
	err = rc.DB.Where("weekly_report_team_id = ? AND weekly_report_week = ?", req.TeamID, req.Week).
		First(&report).Error

	switch {
	case err == nil:
		// Laporan sudah berstatus final, tidak boleh ditimpa diam-diam
		if report.WeeklyReportStatus == model.ReportStatusApproved {
			return helper.Error(c, fiber.StatusConflict, "Laporan sudah di-approve dan tidak bisa diubah")
		}
		service.ApplyUpsert(&report, patch, now)
		if err := rc.DB.Save(&report).Error; err != nil {
			log.Printf("[ERROR] Gagal update laporan mingguan: %v", err)
			return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan laporan")
		}
		return helper.Success(c, "Laporan mingguan berhasil diperbarui", report)

	case errors.Is(err, gorm.ErrRecordNotFound):
		report = *service.NewWeeklyReport(req.TeamID, req.Week, patch, now)
		if err := rc.DB.Create(&report).Error; err != nil {
			log.Printf("[ERROR] Gagal membuat laporan mingguan: %v", err)
			return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan laporan")
		}
		return helper.SuccessWithCode(c, fiber.StatusCreated, "Laporan mingguan berhasil dibuat", report)

	default:
		log.Printf("[ERROR] Gagal membaca laporan mingguan: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
}

// POST /api/u/reports/:id/submit
func (rc *ReportController) SubmitReport(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}
	report, fiberErr := rc.findReport(c)
	if fiberErr != nil {
		return fiberErr
	}

	isMember, err := teamService.IsTeamMember(rc.DB, report.WeeklyReportTeamID, userID)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	if !isMember {
		return helper.Error(c, fiber.StatusForbidden, "Anda bukan anggota tim ini")
	}

	if !service.CanSubmit(report.WeeklyReportStatus) {
		return helper.Error(c, fiber.StatusConflict, "Laporan tidak bisa disubmit dari status "+report.WeeklyReportStatus)
	}

	now := time.Now()
	report.WeeklyReportStatus = model.ReportStatusSubmitted
	report.WeeklyReportSubmittedAt = service.NextSubmittedAt(report.WeeklyReportSubmittedAt, model.ReportStatusSubmitted, now)
	if err := rc.DB.Save(report).Error; err != nil {
		log.Printf("[ERROR] Gagal submit laporan: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal submit laporan")
	}
	return helper.Success(c, "Laporan berhasil disubmit", report)
}

// POST /api/s/reports/:id/comments
// Komentar supervisor bersifat append-only dan SELALU memaksa status
// kembali ke revision_requested, apapun status sebelumnya.
func (rc *ReportController) AddComment(c *fiber.Ctx) error {
	supervisorID, fiberErr := rc.callerID(c)
	if fiberErr != nil {
		return fiberErr
	}
	report, fiberErr := rc.findReport(c)
	if fiberErr != nil {
		return fiberErr
	}
	if fiberErr := rc.ownsReportTeam(c, report, supervisorID); fiberErr != nil {
		return fiberErr
	}

	var req dto.AddCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid input format")
	}
	req.Normalize()
	if err := rc.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	if err := service.ApplySupervisorComment(report, model.ReportComment{
		Text:         req.Text,
		SupervisorID: supervisorID,
		CreatedAt:    time.Now(),
	}); err != nil {
		log.Printf("[ERROR] Gagal append komentar: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menambah komentar")
	}
	if err := rc.DB.Save(report).Error; err != nil {
		log.Printf("[ERROR] Gagal menyimpan komentar: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menambah komentar")
	}
	return helper.Success(c, "Komentar berhasil ditambahkan", report)
}

// POST /api/s/reports/:id/approve
// Hanya supervisor tim yang bersangkutan yang boleh approve.
func (rc *ReportController) ApproveReport(c *fiber.Ctx) error {
	supervisorID, fiberErr := rc.callerID(c)
	if fiberErr != nil {
		return fiberErr
	}
	report, fiberErr := rc.findReport(c)
	if fiberErr != nil {
		return fiberErr
	}
	if fiberErr := rc.ownsReportTeam(c, report, supervisorID); fiberErr != nil {
		return fiberErr
	}

	var req dto.ApproveReportRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Invalid input format")
		}
		if err := rc.Validate.Struct(&req); err != nil {
			return helper.ValidationError(c, err)
		}
	}

	if !service.CanApprove(report.WeeklyReportStatus) {
		return helper.Error(c, fiber.StatusConflict, "Laporan hanya bisa di-approve dari status submitted atau revision_requested")
	}

	if req.Comment != nil && *req.Comment != "" {
		updated, err := service.AppendComment(report.WeeklyReportComments, model.ReportComment{
			Text:         *req.Comment,
			SupervisorID: supervisorID,
			CreatedAt:    time.Now(),
		})
		if err != nil {
			log.Printf("[ERROR] Gagal append komentar approve: %v", err)
			return helper.Error(c, fiber.StatusInternalServerError, "Gagal approve laporan")
		}
		report.WeeklyReportComments = updated
	}

	report.WeeklyReportStatus = model.ReportStatusApproved
	if err := rc.DB.Save(report).Error; err != nil {
		log.Printf("[ERROR] Gagal approve laporan: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal approve laporan")
	}
	return helper.Success(c, "Laporan berhasil di-approve", report)
}

// GET /api/u/reports?team_id=&week=
func (rc *ReportController) GetReports(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}

	teamIDStr := c.Query("team_id")
	if teamIDStr == "" {
		return helper.Error(c, fiber.StatusBadRequest, "Parameter team_id wajib diisi")
	}
	teamID, err := uuid.Parse(teamIDStr)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "team_id tidak valid")
	}

	if fiberErr := rc.requireTeamAccess(c, teamID, userID); fiberErr != nil {
		return fiberErr
	}

	query := rc.DB.Where("weekly_report_team_id = ?", teamID)
	if week := c.Query("week"); week != "" {
		if _, err := helper.ResolveWeekRange(week); err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Format minggu tidak valid (YYYY-Www)")
		}
		query = query.Where("weekly_report_week = ?", week)
	}

	var reports []model.WeeklyReportModel
	if err := query.Order("weekly_report_week DESC").Find(&reports).Error; err != nil {
		log.Printf("[ERROR] Gagal mengambil laporan: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil laporan")
	}
	return helper.Success(c, "Daftar laporan berhasil diambil", reports)
}

// GET /api/u/reports/:id
func (rc *ReportController) GetReport(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}
	report, fiberErr := rc.findReport(c)
	if fiberErr != nil {
		return fiberErr
	}
	if fiberErr := rc.requireTeamAccess(c, report.WeeklyReportTeamID, userID); fiberErr != nil {
		return fiberErr
	}
	return helper.Success(c, "Laporan berhasil diambil", report)
}

// ---------------------------------------------------------
// Helper internal
// ---------------------------------------------------------

func (rc *ReportController) findReport(c *fiber.Ctx) (*model.WeeklyReportModel, error) {
	reportID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, helper.Error(c, fiber.StatusBadRequest, "ID laporan tidak valid")
	}
	var report model.WeeklyReportModel
	if err := rc.DB.First(&report, "weekly_report_id = ?", reportID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.Error(c, fiber.StatusNotFound, "Laporan tidak ditemukan")
		}
		log.Printf("[ERROR] Gagal membaca laporan: %v", err)
		return nil, helper.Error(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	return &report, nil
}

func (rc *ReportController) callerID(c *fiber.Ctx) (uuid.UUID, error) {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return uuid.Nil, helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}
	return userID, nil
}

// ownsReportTeam memastikan caller adalah supervisor dari tim pemilik
// laporan. Admin selalu lolos.
func (rc *ReportController) ownsReportTeam(c *fiber.Ctx, report *model.WeeklyReportModel, userID uuid.UUID) error {
	if helper.GetRoleFromToken(c) == constants.RoleAdmin {
		return nil
	}
	isSupervisor, err := teamService.IsTeamSupervisor(rc.DB, report.WeeklyReportTeamID, userID)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	if !isSupervisor {
		return helper.Error(c, fiber.StatusForbidden, "Anda bukan supervisor dari tim ini")
	}
	return nil
}

// requireTeamAccess membatasi read ke anggota tim, supervisor tim, atau admin.
func (rc *ReportController) requireTeamAccess(c *fiber.Ctx, teamID, userID uuid.UUID) error {
	if helper.GetRoleFromToken(c) == constants.RoleAdmin {
		return nil
	}
	isSupervisor, err := teamService.IsTeamSupervisor(rc.DB, teamID, userID)
	if err != nil {
		if errors.Is(err, teamService.ErrTeamNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Tim tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	if isSupervisor {
		return nil
	}
	isMember, err := teamService.IsTeamMember(rc.DB, teamID, userID)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	if !isMember {
		return helper.Error(c, fiber.StatusForbidden, "Anda tidak punya akses ke laporan tim ini")
	}
	return nil
}
