package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"magangku_backend/internals/features/programs/dto"
	"magangku_backend/internals/features/programs/model"
	helper "magangku_backend/internals/helpers"
)

type ProgramController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewProgramController(db *gorm.DB) *ProgramController {
	return &ProgramController{DB: db, Validate: validator.New()}
}

// GET /api/programs — daftar program yang buka pendaftaran (publik)
func (pc *ProgramController) GetOpenPrograms(c *fiber.Ctx) error {
	var programs []model.ProgramModel
	if err := pc.DB.
		Where("program_is_open = ?", true).
		Order("program_start_date ASC").
		Find(&programs).Error; err != nil {
		log.Println("[ERROR] GetOpenPrograms gagal:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil daftar program")
	}
	return helper.Success(c, "Daftar program terbuka", fiber.Map{
		"total":    len(programs),
		"programs": programs,
	})
}

// GET /api/a/programs
func (pc *ProgramController) GetPrograms(c *fiber.Ctx) error {
	p := helper.ParsePaginationWith(c, "created_at", "desc", helper.AdminOpts)

	var total int64
	if err := pc.DB.Model(&model.ProgramModel{}).Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil daftar program")
	}

	var programs []model.ProgramModel
	if err := pc.DB.
		Order(p.SortBy + " " + p.SortOrder).
		Limit(p.PerPage).Offset(p.Offset()).
		Find(&programs).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil daftar program")
	}

	return helper.Success(c, "Daftar program", fiber.Map{
		"pagination": helper.PaginationMeta(p, total),
		"programs":   programs,
	})
}

// GET /api/a/programs/:id
func (pc *ProgramController) GetProgram(c *fiber.Ctx) error {
	var program model.ProgramModel
	if err := pc.DB.First(&program, "program_id = ?", c.Params("id")).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Program tidak ditemukan")
	}
	return helper.Success(c, "Detail program", program)
}

// POST /api/a/programs
func (pc *ProgramController) CreateProgram(c *fiber.Ctx) error {
	var req dto.CreateProgramRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid input format")
	}
	req.Normalize()
	if err := pc.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	program := req.ToModel()
	if err := pc.DB.Create(program).Error; err != nil {
		log.Println("[ERROR] CreateProgram gagal:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat program")
	}

	log.Printf("[SUCCESS] Program dibuat: %s\n", program.ProgramID)
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Program berhasil dibuat", program)
}

// PUT /api/a/programs/:id
func (pc *ProgramController) UpdateProgram(c *fiber.Ctx) error {
	var req dto.UpdateProgramRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid input format")
	}
	if err := pc.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var program model.ProgramModel
	if err := pc.DB.First(&program, "program_id = ?", c.Params("id")).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Program tidak ditemukan")
	}

	req.ApplyToModel(&program)
	if err := pc.DB.Save(&program).Error; err != nil {
		log.Println("[ERROR] UpdateProgram gagal:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal update program")
	}
	return helper.Success(c, "Program berhasil diupdate", program)
}

// DELETE /api/a/programs/:id — soft delete
func (pc *ProgramController) DeleteProgram(c *fiber.Ctx) error {
	if err := pc.DB.Delete(&model.ProgramModel{}, "program_id = ?", c.Params("id")).Error; err != nil {
		log.Println("[ERROR] DeleteProgram gagal:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus program")
	}
	return helper.Success(c, "Program berhasil dihapus", fiber.Map{"program_id": c.Params("id")})
}
