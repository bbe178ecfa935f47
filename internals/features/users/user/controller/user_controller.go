package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"magangku_backend/internals/features/users/user/dto"
	"magangku_backend/internals/features/users/user/model"
	helper "magangku_backend/internals/helpers"
)

type UserController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db, Validate: validator.New()}
}

// helper: sanitasi field sensitif sebelum kirim ke client
func sanitizeUser(u *model.UserModel) {
	u.Password = ""
}

// GET /api/a/users
func (uc *UserController) GetUsers(c *fiber.Ctx) error {
	p := helper.ParsePaginationWith(c, "created_at", "desc", helper.AdminOpts)

	var total int64
	if err := uc.DB.Model(&model.UserModel{}).Count(&total).Error; err != nil {
		log.Println("[ERROR] Failed to count users:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to retrieve users")
	}

	var users []model.UserModel
	if err := uc.DB.
		Order(p.SortBy + " " + p.SortOrder).
		Limit(p.PerPage).Offset(p.Offset()).
		Find(&users).Error; err != nil {
		log.Println("[ERROR] Failed to fetch users:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to retrieve users")
	}

	for i := range users {
		sanitizeUser(&users[i])
	}

	return helper.Success(c, "Users fetched successfully", fiber.Map{
		"pagination": helper.PaginationMeta(p, total),
		"users":      users,
	})
}

// GET /api/a/users/search?q=namaOrEmail
func (uc *UserController) SearchUsers(c *fiber.Ctx) error {
	query := c.Query("q")
	if query == "" {
		return helper.Error(c, fiber.StatusBadRequest, "Query tidak boleh kosong")
	}

	var users []model.UserModel
	if err := uc.DB.
		Where("user_name ILIKE ? OR email ILIKE ? OR full_name ILIKE ?", "%"+query+"%", "%"+query+"%", "%"+query+"%").
		Find(&users).Error; err != nil {
		log.Println("[ERROR] SearchUsers gagal:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mencari pengguna")
	}

	for i := range users {
		sanitizeUser(&users[i])
	}

	return helper.Success(c, "Hasil pencarian user", fiber.Map{
		"total": len(users),
		"users": users,
	})
}

// GET /api/u/users/me — profile user dari JWT
func (uc *UserController) GetMe(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}

	var user model.UserModel
	if err := uc.DB.First(&user, "id = ?", userID).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "User not found")
	}

	sanitizeUser(&user)
	return helper.Success(c, "User profile fetched successfully", user)
}

// PUT /api/u/users/me — update profil sendiri (nama saja, bukan role)
func (uc *UserController) UpdateMe(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}

	var req struct {
		UserName *string `json:"user_name,omitempty" validate:"omitempty,min=3,max=50"`
		FullName *string `json:"full_name,omitempty" validate:"omitempty,min=3,max=100"`
	}
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid input format")
	}
	if err := uc.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var user model.UserModel
	if err := uc.DB.First(&user, "id = ?", userID).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "User not found")
	}
	if req.UserName != nil {
		user.UserName = *req.UserName
	}
	if req.FullName != nil {
		user.FullName = *req.FullName
	}
	if err := uc.DB.Save(&user).Error; err != nil {
		log.Println("[ERROR] UpdateMe gagal:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal update profil")
	}

	sanitizeUser(&user)
	return helper.Success(c, "Profil berhasil diupdate", user)
}

// POST /api/a/users — create user (supervisor / mahasiswa manual)
func (uc *UserController) CreateUser(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		log.Println("[ERROR] Invalid input format:", err)
		return helper.Error(c, fiber.StatusBadRequest, "Invalid input format")
	}
	req.Normalize()
	if err := uc.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal hash password")
	}
	user := req.ToModel()
	user.Password = string(hashed)

	if err := uc.DB.Create(user).Error; err != nil {
		log.Println("[ERROR] Failed to create user:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create user")
	}

	sanitizeUser(user)
	log.Printf("[SUCCESS] Created user ID: %v\n", user.ID)
	return helper.SuccessWithCode(c, fiber.StatusCreated, "User created successfully", user)
}

// PUT /api/a/users/:id — update user by admin
func (uc *UserController) UpdateUser(c *fiber.Ctx) error {
	id := c.Params("id")

	var req dto.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid input format")
	}
	req.Normalize()
	if err := uc.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var user model.UserModel
	if err := uc.DB.First(&user, "id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "User not found")
	}

	req.ApplyToModel(&user)
	if err := uc.DB.Save(&user).Error; err != nil {
		log.Println("[ERROR] UpdateUser gagal:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update user")
	}

	sanitizeUser(&user)
	return helper.Success(c, "User updated successfully", user)
}

// DELETE /api/a/users/:id — soft delete
func (uc *UserController) DeleteUser(c *fiber.Ctx) error {
	id := c.Params("id")

	if err := uc.DB.Delete(&model.UserModel{}, "id = ?", id).Error; err != nil {
		log.Println("[ERROR] DeleteUser gagal:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete user")
	}
	return helper.Success(c, "User deleted successfully", fiber.Map{"id": id})
}
