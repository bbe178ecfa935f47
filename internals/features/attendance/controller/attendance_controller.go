package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"magangku_backend/internals/constants"
	"magangku_backend/internals/features/attendance/dto"
	"magangku_backend/internals/features/attendance/model"
	"magangku_backend/internals/features/attendance/service"
	teamService "magangku_backend/internals/features/teams/service"
	userModel "magangku_backend/internals/features/users/user/model"
	helper "magangku_backend/internals/helpers"
)

type AttendanceController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{DB: db, Validate: validator.New()}
}

// POST /api/u/attendance/check-in
// Upsert by (user, tanggal): check-in kedua di hari yang sama me-refresh
// timestamp/status/excuse/gps/foto pada record yang sudah ada.
func (ac *AttendanceController) CheckIn(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}

	var req dto.CheckInRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid input format")
	}
	req.Normalize()
	if err := ac.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	teamID, _ := uuid.Parse(req.TeamID)
	isMember, err := teamService.IsTeamMember(ac.DB, teamID, userID)
	if err != nil {
		if errors.Is(err, teamService.ErrTeamNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Tim tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	if !isMember {
		return helper.Error(c, fiber.StatusForbidden, "Anda bukan anggota tim ini")
	}

	// foto opsional via multipart
	photoURL := req.PhotoURL
	if fileHeader, ferr := c.FormFile("photo"); ferr == nil && fileHeader != nil {
		url, uerr := helper.UploadImageToSupabase("attendance", fileHeader)
		if uerr != nil {
			log.Println("[ERROR] Upload foto absensi gagal:", uerr)
			return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengunggah foto")
		}
		photoURL = &url
	}

	now := time.Now()

	var existing model.AttendanceModel
	err = ac.DB.
		Where("attendance_user_id = ? AND attendance_date = ?", userID, req.Date).
		First(&existing).Error
	if err == nil {
		// sudah ada: refresh record yang sama, jangan duplikat
		record, _ := service.ApplyCheckIn(&existing, teamID, userID, req, photoURL, now)
		if err := ac.DB.Save(record).Error; err != nil {
			log.Println("[ERROR] Update check-in gagal:", err)
			return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan absensi")
		}
		return helper.Success(c, "Check-in diperbarui", record)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.Error(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	record, _ := service.ApplyCheckIn(nil, teamID, userID, req, photoURL, now)
	if err := ac.DB.Create(record).Error; err != nil {
		log.Println("[ERROR] Create check-in gagal:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan absensi")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Check-in berhasil", record)
}

// GET /api/u/attendance/history — riwayat absensi mahasiswa login
func (ac *AttendanceController) GetMyHistory(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}

	var records []model.AttendanceModel
	if err := ac.DB.
		Where("attendance_user_id = ?", userID).
		Order("attendance_date DESC").
		Limit(60).
		Find(&records).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil riwayat")
	}

	return helper.Success(c, "Riwayat absensi", fiber.Map{
		"total":   len(records),
		"records": records,
	})
}

// GET /api/u/attendance/summary?team_id=...&week=2024-W05
func (ac *AttendanceController) GetWeeklySummary(c *fiber.Ctx) error {
	summary, status, err := ac.buildSummary(c)
	if err != nil {
		return helper.Error(c, status, err.Error())
	}
	return helper.Success(c, "Rekap absensi mingguan", summary)
}

// GET /api/u/attendance/export?team_id=...&week=2024-W05 — CSV
func (ac *AttendanceController) ExportWeeklyCSV(c *fiber.Ctx) error {
	summary, status, err := ac.buildSummary(c)
	if err != nil {
		return helper.Error(c, status, err.Error())
	}

	teamID := summary.TeamID
	rosterIDs, err := teamService.RosterUserIDs(ac.DB, teamID)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil roster")
	}
	names, err := ac.resolveNames(rosterIDs)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal resolve nama anggota")
	}
	roster := make([]service.RosterRow, 0, len(rosterIDs))
	for _, id := range rosterIDs {
		roster = append(roster, service.RosterRow{UserID: id, Name: names[id]})
	}

	csv := service.BuildWeeklyCSV(*summary, roster)

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition,
		`attachment; filename="attendance-`+summary.Week+`.csv"`)
	return c.SendString(csv)
}

/* ==========================
   Internal
========================== */

// buildSummary validasi akses (anggota / supervisor tim / admin) lalu
// jalankan agregasi mingguan.
func (ac *AttendanceController) buildSummary(c *fiber.Ctx) (*dto.WeeklyAttendanceSummary, int, error) {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return nil, fiber.StatusUnauthorized, err
	}

	teamID, err := uuid.Parse(c.Query("team_id"))
	if err != nil {
		return nil, fiber.StatusBadRequest, errors.New("team_id bukan UUID valid")
	}

	// tanpa parameter week, rekap default ke minggu berjalan
	label := strings.TrimSpace(c.Query("week"))
	if label == "" {
		label = helper.WeekLabelFor(time.Now())
	}
	rng, err := helper.ResolveWeekRange(label)
	if err != nil {
		return nil, fiber.StatusBadRequest, err
	}

	team, err := teamService.FindTeam(ac.DB, teamID)
	if err != nil {
		if errors.Is(err, teamService.ErrTeamNotFound) {
			return nil, fiber.StatusNotFound, errors.New("tim tidak ditemukan")
		}
		return nil, fiber.StatusInternalServerError, errors.New("internal server error")
	}

	role := helper.GetRoleFromToken(c)
	if role != constants.RoleAdmin && team.TeamSupervisorID != userID {
		isMember, merr := teamService.IsTeamMember(ac.DB, teamID, userID)
		if merr != nil {
			return nil, fiber.StatusInternalServerError, errors.New("internal server error")
		}
		if !isMember {
			return nil, fiber.StatusForbidden, errors.New("anda tidak punya akses ke rekap tim ini")
		}
	}

	var records []model.AttendanceModel
	if err := ac.DB.
		Where("attendance_team_id = ? AND attendance_date BETWEEN ? AND ?",
			teamID, rng.StartDate, rng.EndDate).
		Order("attendance_date ASC, attendance_timestamp ASC").
		Find(&records).Error; err != nil {
		return nil, fiber.StatusInternalServerError, errors.New("gagal mengambil data absensi")
	}

	userIDs := make([]uuid.UUID, 0, len(records))
	seen := make(map[uuid.UUID]bool)
	for _, rec := range records {
		if !seen[rec.AttendanceUserID] {
			seen[rec.AttendanceUserID] = true
			userIDs = append(userIDs, rec.AttendanceUserID)
		}
	}
	names, err := ac.resolveNames(userIDs)
	if err != nil {
		return nil, fiber.StatusInternalServerError, errors.New("gagal resolve nama mahasiswa")
	}

	summary := service.BuildWeeklySummary(teamID, rng, records, names)
	return &summary, fiber.StatusOK, nil
}

func (ac *AttendanceController) resolveNames(ids []uuid.UUID) (map[uuid.UUID]string, error) {
	names := make(map[uuid.UUID]string, len(ids))
	if len(ids) == 0 {
		return names, nil
	}
	var users []userModel.UserModel
	if err := ac.DB.Select("id", "full_name", "user_name").
		Where("id IN ?", ids).Find(&users).Error; err != nil {
		return nil, err
	}
	for _, u := range users {
		name := strings.TrimSpace(u.FullName)
		if name == "" {
			name = u.UserName
		}
		names[u.ID] = name
	}
	return names, nil
}
