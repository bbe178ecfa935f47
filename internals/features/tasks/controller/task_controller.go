package controller

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"magangku_backend/internals/features/tasks/dto"
	"magangku_backend/internals/features/tasks/model"
	teamService "magangku_backend/internals/features/teams/service"
	helper "magangku_backend/internals/helpers"
)

type TaskController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewTaskController(db *gorm.DB) *TaskController {
	return &TaskController{DB: db, Validate: validator.New()}
}

// canManageTeamTasks — ketua tim atau supervisor tim boleh kelola tugas.
func (tc *TaskController) canManageTeamTasks(teamID, userID uuid.UUID) (bool, error) {
	isLeader, err := teamService.IsTeamLeader(tc.DB, teamID, userID)
	if err != nil {
		return false, err
	}
	if isLeader {
		return true, nil
	}
	return teamService.IsTeamSupervisor(tc.DB, teamID, userID)
}

// POST /api/u/tasks — ketua tim / supervisor membuat tugas mingguan
func (tc *TaskController) CreateTask(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}

	var req dto.CreateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid input format")
	}
	req.Normalize()
	if err := tc.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	if _, err := helper.ResolveWeekRange(req.Week); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	teamID, _ := uuid.Parse(req.TeamID)
	canManage, err := tc.canManageTeamTasks(teamID, userID)
	if err != nil {
		if errors.Is(err, teamService.ErrTeamNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Tim tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	if !canManage {
		return helper.Error(c, fiber.StatusForbidden, "Hanya ketua tim atau supervisor yang boleh membuat tugas")
	}

	assigneeID, _ := uuid.Parse(req.AssigneeID)
	onRoster, err := teamService.IsTeamMember(tc.DB, teamID, assigneeID)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	if !onRoster {
		return helper.Error(c, fiber.StatusBadRequest, "Assignee bukan anggota tim")
	}

	task := req.ToModel()
	if err := tc.DB.Create(task).Error; err != nil {
		log.Println("[ERROR] CreateTask gagal:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat tugas")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Tugas berhasil dibuat", task)
}

// GET /api/u/tasks?team_id=...&week=2024-W05
func (tc *TaskController) GetWeeklyTasks(c *fiber.Ctx) error {
	teamID, err := uuid.Parse(c.Query("team_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "team_id bukan UUID valid")
	}
	// tanpa parameter week, daftar tugas default ke minggu berjalan
	week := c.Query("week")
	if week == "" {
		week = helper.WeekLabelFor(time.Now())
	}
	if _, err := helper.ResolveWeekRange(week); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	var tasks []model.TaskModel
	if err := tc.DB.
		Where("task_team_id = ? AND task_week = ?", teamID, week).
		Order("created_at ASC").
		Find(&tasks).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil tugas")
	}

	return helper.Success(c, "Daftar tugas mingguan", fiber.Map{
		"total": len(tasks),
		"tasks": tasks,
	})
}

// PUT /api/u/tasks/:id — ketua tim edit judul/deskripsi/assignee
func (tc *TaskController) UpdateTask(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}

	var req dto.UpdateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid input format")
	}
	if err := tc.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var task model.TaskModel
	if err := tc.DB.First(&task, "task_id = ?", c.Params("id")).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Tugas tidak ditemukan")
	}

	canManage, err := tc.canManageTeamTasks(task.TaskTeamID, userID)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	if !canManage {
		return helper.Error(c, fiber.StatusForbidden, "Hanya ketua tim atau supervisor yang boleh mengubah tugas")
	}

	if req.Title != nil {
		task.TaskTitle = *req.Title
	}
	if req.Description != nil {
		task.TaskDescription = req.Description
	}
	if req.AssigneeID != nil {
		assigneeID, _ := uuid.Parse(*req.AssigneeID)
		onRoster, err := teamService.IsTeamMember(tc.DB, task.TaskTeamID, assigneeID)
		if err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Internal Server Error")
		}
		if !onRoster {
			return helper.Error(c, fiber.StatusBadRequest, "Assignee bukan anggota tim")
		}
		task.TaskAssigneeID = assigneeID
	}

	if err := tc.DB.Save(&task).Error; err != nil {
		log.Println("[ERROR] UpdateTask gagal:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal update tugas")
	}
	return helper.Success(c, "Tugas berhasil diupdate", task)
}

// POST /api/u/tasks/:id/complete — flip satu arah oleh assignee/ketua
func (tc *TaskController) CompleteTask(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}

	var task model.TaskModel
	if err := tc.DB.First(&task, "task_id = ?", c.Params("id")).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Tugas tidak ditemukan")
	}

	if task.TaskAssigneeID != userID {
		isLeader, err := teamService.IsTeamLeader(tc.DB, task.TaskTeamID, userID)
		if err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Internal Server Error")
		}
		if !isLeader {
			return helper.Error(c, fiber.StatusForbidden, "Hanya assignee atau ketua tim yang boleh menyelesaikan tugas")
		}
	}

	if task.TaskIsDone {
		return helper.Success(c, "Tugas sudah selesai", task)
	}

	if err := tc.DB.Model(&task).Update("task_is_done", true).Error; err != nil {
		log.Println("[ERROR] CompleteTask gagal:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyelesaikan tugas")
	}
	task.TaskIsDone = true
	return helper.Success(c, "Tugas ditandai selesai", task)
}

// DELETE /api/u/tasks/:id — ketua tim / supervisor hapus tugas
func (tc *TaskController) DeleteTask(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}

	var task model.TaskModel
	if err := tc.DB.First(&task, "task_id = ?", c.Params("id")).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Tugas tidak ditemukan")
	}

	canManage, err := tc.canManageTeamTasks(task.TaskTeamID, userID)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	if !canManage {
		return helper.Error(c, fiber.StatusForbidden, "Hanya ketua tim atau supervisor yang boleh menghapus tugas")
	}

	if err := tc.DB.Delete(&task).Error; err != nil {
		log.Println("[ERROR] DeleteTask gagal:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus tugas")
	}
	return helper.Success(c, "Tugas berhasil dihapus", fiber.Map{"task_id": task.TaskID})
}
