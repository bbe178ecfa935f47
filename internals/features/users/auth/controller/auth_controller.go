package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"magangku_backend/internals/configs"
	"magangku_backend/internals/constants"
	authModel "magangku_backend/internals/features/users/auth/model"
	userModel "magangku_backend/internals/features/users/user/model"
	helper "magangku_backend/internals/helpers"
)

const (
	accessTTLDefault  = 24 * time.Hour
	refreshTTLDefault = 7 * 24 * time.Hour
)

type AuthController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db, Validate: validator.New()}
}

/* ==========================
   Register / Login
========================== */

type RegisterRequest struct {
	UserName string `json:"user_name" validate:"required,min=3,max=50"`
	FullName string `json:"full_name" validate:"required,min=3,max=100"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=8"`
}

// POST /api/auth/register — selalu role student
func (ac *AuthController) Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid input format")
	}
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	req.UserName = strings.TrimSpace(req.UserName)
	req.FullName = strings.TrimSpace(req.FullName)
	if err := ac.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var existing userModel.UserModel
	if err := ac.DB.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		return helper.Error(c, fiber.StatusConflict, "Email sudah terdaftar")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.Error(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal hash password")
	}

	user := userModel.UserModel{
		UserName: req.UserName,
		FullName: req.FullName,
		Email:    req.Email,
		Password: string(hashed),
		Role:     constants.RoleStudent,
		IsActive: true,
	}
	if err := ac.DB.Create(&user).Error; err != nil {
		log.Println("[ERROR] Register gagal:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat akun")
	}

	user.Password = ""
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Registrasi berhasil", user)
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// POST /api/auth/login
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid input format")
	}
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	if err := ac.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var user userModel.UserModel
	if err := ac.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Email atau password salah")
	}
	if !user.IsActive {
		return helper.Error(c, fiber.StatusForbidden, "Akun Anda telah dinonaktifkan")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Email atau password salah")
	}

	return ac.issueTokens(c, &user)
}

/* ==========================
   Google Login
========================== */

type GoogleLoginRequest struct {
	IDToken string `json:"id_token" validate:"required"`
}

// POST /api/auth/login-google — verifikasi ID token, upsert user by email
func (ac *AuthController) GoogleLogin(c *fiber.Ctx) error {
	var req GoogleLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid input format")
	}
	if err := ac.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	clientID := configs.GoogleClientID
	if clientID == "" {
		return helper.Error(c, fiber.StatusInternalServerError, "Login Google belum dikonfigurasi")
	}

	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(req.IDToken, []string{clientID}); err != nil {
		log.Println("[ERROR] Verifikasi ID token gagal:", err)
		return helper.Error(c, fiber.StatusUnauthorized, "ID token Google tidak valid")
	}

	claimSet, err := googleAuthIDTokenVerifier.Decode(req.IDToken)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Gagal decode ID token")
	}

	email := strings.TrimSpace(strings.ToLower(claimSet.Email))
	if email == "" {
		return helper.Error(c, fiber.StatusUnauthorized, "ID token tanpa email")
	}

	var user userModel.UserModel
	err = ac.DB.Where("email = ?", email).First(&user).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		// akun baru via Google: role student, tanpa password lokal
		user = userModel.UserModel{
			UserName: strings.Split(email, "@")[0],
			FullName: claimSet.Name,
			Email:    email,
			GoogleID: &claimSet.Sub,
			Role:     constants.RoleStudent,
			IsActive: true,
		}
		if err := ac.DB.Create(&user).Error; err != nil {
			log.Println("[ERROR] Create user Google gagal:", err)
			return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat akun")
		}
	case err != nil:
		return helper.Error(c, fiber.StatusInternalServerError, "Internal Server Error")
	default:
		if user.GoogleID == nil {
			user.GoogleID = &claimSet.Sub
			if err := ac.DB.Model(&user).Update("google_id", claimSet.Sub).Error; err != nil {
				// login tetap jalan, backfill bisa diulang di login berikutnya
				log.Printf("[WARN] Gagal menyimpan google_id untuk %s: %v", user.Email, err)
			}
		}
	}

	if !user.IsActive {
		return helper.Error(c, fiber.StatusForbidden, "Akun Anda telah dinonaktifkan")
	}

	return ac.issueTokens(c, &user)
}

/* ==========================
   Refresh / Logout
========================== */

// POST /api/auth/refresh-token — rotate access token via refresh cookie
func (ac *AuthController) RefreshToken(c *fiber.Ctx) error {
	refreshCookie := strings.TrimSpace(c.Cookies("refresh_token"))
	if refreshCookie == "" {
		return helper.Error(c, fiber.StatusUnauthorized, "Refresh token tidak ada")
	}

	refreshSecret := configs.JWTRefreshSecret
	if refreshSecret == "" {
		return helper.Error(c, fiber.StatusInternalServerError, "JWT_REFRESH_SECRET belum diset")
	}

	tok, err := jwt.Parse(refreshCookie, func(t *jwt.Token) (interface{}, error) {
		return []byte(refreshSecret), nil
	})
	if err != nil || !tok.Valid {
		return helper.Error(c, fiber.StatusUnauthorized, "Refresh token invalid")
	}
	claims, _ := tok.Claims.(jwt.MapClaims)
	sub, _ := claims["sub"].(string)
	userID, err := uuid.Parse(sub)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Refresh token invalid")
	}

	var user userModel.UserModel
	if err := ac.DB.First(&user, "id = ?", userID).Error; err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "User not found")
	}
	if !user.IsActive {
		return helper.Error(c, fiber.StatusForbidden, "Akun dinonaktifkan")
	}

	return ac.issueTokens(c, &user)
}

// POST /api/auth/logout — blacklist access token yang sedang dipakai
func (ac *AuthController) Logout(c *fiber.Ctx) error {
	raw := helper.GetRawAccessToken(c)
	if raw == "" {
		return helper.Error(c, fiber.StatusBadRequest, "Token tidak ditemukan")
	}

	entry := authModel.TokenBlacklist{
		Token:     raw,
		ExpiredAt: time.Now().Add(accessTTLDefault),
	}
	if err := ac.DB.Create(&entry).Error; err != nil {
		log.Println("[ERROR] Blacklist token gagal:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal logout")
	}

	c.ClearCookie("access_token", "refresh_token")
	return helper.Success(c, "Logout berhasil", nil)
}

/* ==========================
   Internal
========================== */

func (ac *AuthController) issueTokens(c *fiber.Ctx, user *userModel.UserModel) error {
	access, err := helper.GenerateJWT(configs.JWTSecret, user.ID, user.UserName, user.Role, accessTTLDefault)
	if err != nil {
		log.Println("[ERROR] Generate access token gagal:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat token")
	}

	now := time.Now().UTC()
	refreshClaims := jwt.MapClaims{
		"sub": user.ID.String(),
		"iat": now.Unix(),
		"exp": now.Add(refreshTTLDefault).Unix(),
	}
	refresh, err := jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims).
		SignedString([]byte(configs.JWTRefreshSecret))
	if err != nil {
		log.Println("[ERROR] Generate refresh token gagal:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat token")
	}

	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    refresh,
		HTTPOnly: true,
		Secure:   true,
		SameSite: "None",
		Expires:  now.Add(refreshTTLDefault),
	})

	user.Password = ""
	return helper.Success(c, "Login berhasil", fiber.Map{
		"access_token": access,
		"user":         user,
	})
}
