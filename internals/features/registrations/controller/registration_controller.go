package controller

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"magangku_backend/internals/constants"
	programModel "magangku_backend/internals/features/programs/model"
	"magangku_backend/internals/features/registrations/dto"
	"magangku_backend/internals/features/registrations/model"
	"magangku_backend/internals/features/registrations/service"
	userModel "magangku_backend/internals/features/users/user/model"
	helper "magangku_backend/internals/helpers"
)

type RegistrationController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewRegistrationController(db *gorm.DB) *RegistrationController {
	return &RegistrationController{DB: db, Validate: validator.New()}
}

// POST /api/registrations — pendaftaran publik + Snap token biaya program
func (rc *RegistrationController) CreateRegistration(c *fiber.Ctx) error {
	var req dto.CreateRegistrationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid input format")
	}
	req.Normalize()
	if err := rc.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var program programModel.ProgramModel
	if err := rc.DB.First(&program, "program_id = ?", req.ProgramID).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Program tidak ditemukan")
	}
	if !program.ProgramIsOpen {
		return helper.Error(c, fiber.StatusBadRequest, "Pendaftaran program sudah ditutup")
	}

	// satu email satu pendaftaran per program (upsert-guard + unique index backstop)
	var existing model.RegistrationModel
	err := rc.DB.Where("registration_program_id = ? AND registration_email = ?",
		program.ProgramID, req.Email).First(&existing).Error
	if err == nil {
		return helper.Error(c, fiber.StatusConflict, "Email sudah terdaftar di program ini")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.Error(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	orderID := fmt.Sprintf("REG-%d-%s", time.Now().Unix(), strings.Split(req.Email, "@")[0])
	registration := req.ToModel(orderID)

	if program.ProgramFee > 0 {
		token, err := service.GenerateSnapToken(*registration, program.ProgramFee)
		if err != nil {
			log.Println("[ERROR] Snap token gagal:", err)
			return helper.Error(c, fiber.StatusBadGateway, "Gagal membuat transaksi pembayaran")
		}
		registration.RegistrationSnapToken = &token
	}

	if err := rc.DB.Create(registration).Error; err != nil {
		log.Println("[ERROR] CreateRegistration gagal:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan pendaftaran")
	}

	log.Printf("[SUCCESS] Pendaftaran dibuat: %s (order %s)\n", registration.RegistrationID, orderID)
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Pendaftaran berhasil dikirim", registration)
}

// POST /api/registrations/:id/payment-proof — upload bukti bayar (multipart)
func (rc *RegistrationController) UploadPaymentProof(c *fiber.Ctx) error {
	var registration model.RegistrationModel
	if err := rc.DB.First(&registration, "registration_id = ?", c.Params("id")).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Pendaftaran tidak ditemukan")
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "File bukti bayar wajib dikirim (field: file)")
	}

	url, err := helper.UploadImageToSupabase("payment-proofs", fileHeader)
	if err != nil {
		log.Println("[ERROR] Upload bukti bayar gagal:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengunggah bukti bayar")
	}

	if err := rc.DB.Model(&registration).
		Update("registration_proof_url", url).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan bukti bayar")
	}

	return helper.Success(c, "Bukti bayar berhasil diunggah", fiber.Map{
		"registration_id": registration.RegistrationID,
		"proof_url":       url,
	})
}

// GET /api/a/registrations?program_id=...&status=...
func (rc *RegistrationController) GetRegistrations(c *fiber.Ctx) error {
	p := helper.ParsePaginationWith(c, "created_at", "desc", helper.AdminOpts)

	q := rc.DB.Model(&model.RegistrationModel{})
	if programID := c.Query("program_id"); programID != "" {
		q = q.Where("registration_program_id = ?", programID)
	}
	if status := c.Query("status"); status != "" {
		q = q.Where("registration_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil pendaftaran")
	}

	var registrations []model.RegistrationModel
	if err := q.
		Order(p.SortBy + " " + p.SortOrder).
		Limit(p.PerPage).Offset(p.Offset()).
		Find(&registrations).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil pendaftaran")
	}

	return helper.Success(c, "Daftar pendaftaran", fiber.Map{
		"pagination":    helper.PaginationMeta(p, total),
		"registrations": registrations,
	})
}

// POST /api/a/registrations/:id/approve
// Approve membuat (atau menautkan) record users berdasarkan email pendaftar.
func (rc *RegistrationController) ApproveRegistration(c *fiber.Ctx) error {
	adminID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}

	var registration model.RegistrationModel
	if err := rc.DB.First(&registration, "registration_id = ?", c.Params("id")).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Pendaftaran tidak ditemukan")
	}
	if registration.RegistrationStatus == model.RegistrationStatusApproved {
		return helper.Error(c, fiber.StatusConflict, "Pendaftaran sudah disetujui")
	}

	err = rc.DB.Transaction(func(tx *gorm.DB) error {
		// buat atau tautkan user berdasarkan email
		var user userModel.UserModel
		err := tx.Where("email = ?", registration.RegistrationEmail).First(&user).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// password awal = order id, wajib diganti user
			hashed, hashErr := bcrypt.GenerateFromPassword(
				[]byte(registration.RegistrationOrderID), bcrypt.DefaultCost)
			if hashErr != nil {
				return hashErr
			}
			user = userModel.UserModel{
				UserName: strings.Split(registration.RegistrationEmail, "@")[0],
				FullName: registration.RegistrationFullName,
				Email:    registration.RegistrationEmail,
				Password: string(hashed),
				Role:     constants.RoleStudent,
				IsActive: true,
			}
			if err := tx.Create(&user).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}

		registration.RegistrationStatus = model.RegistrationStatusApproved
		registration.RegistrationApprover = &adminID
		return tx.Save(&registration).Error
	})
	if err != nil {
		log.Println("[ERROR] ApproveRegistration gagal:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyetujui pendaftaran")
	}

	return helper.Success(c, "Pendaftaran disetujui", registration)
}

// POST /api/a/registrations/:id/reject
func (rc *RegistrationController) RejectRegistration(c *fiber.Ctx) error {
	adminID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}

	var req dto.RejectRegistrationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid input format")
	}
	if err := rc.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var registration model.RegistrationModel
	if err := rc.DB.First(&registration, "registration_id = ?", c.Params("id")).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Pendaftaran tidak ditemukan")
	}

	registration.RegistrationStatus = model.RegistrationStatusRejected
	registration.RegistrationNotes = &req.Notes
	registration.RegistrationApprover = &adminID
	if err := rc.DB.Save(&registration).Error; err != nil {
		log.Println("[ERROR] RejectRegistration gagal:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menolak pendaftaran")
	}

	return helper.Success(c, "Pendaftaran ditolak", registration)
}
