package auth

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	userModel "magangku_backend/internals/features/users/user/model"
)

/* ======== Extractors ======== */

func extractBearerToken(c *fiber.Ctx) (string, error) {
	// 1) Ambil dari Authorization header atau fallback cookie
	auth := strings.TrimSpace(c.Get("Authorization"))
	if auth == "" {
		if cookieTok := c.Cookies("access_token"); cookieTok != "" {
			auth = "Bearer " + cookieTok
		}
	}
	if auth == "" {
		return "", fmt.Errorf("unauthorized - No token provided")
	}

	// 2) Robust split: toleransi spasi ganda & case-insensitive
	fields := strings.Fields(auth)
	if len(fields) < 2 || !strings.EqualFold(fields[0], "Bearer") {
		return "", fmt.Errorf("unauthorized - Invalid token format")
	}
	tok := strings.TrimSpace(fields[1])
	tok = strings.Trim(tok, "\"'")

	if tok == "" {
		return "", fmt.Errorf("unauthorized - Empty token")
	}
	return tok, nil
}

func validateTokenExpiry(claims jwt.MapClaims, skew time.Duration) error {
	expVal, ok := claims["exp"]
	if !ok {
		return fmt.Errorf("token has no exp")
	}

	var expUnix int64
	switch t := expVal.(type) {
	case float64:
		expUnix = int64(t)
	case int64:
		expUnix = t
	case string:
		n, err := parseInt64(strings.TrimSpace(t))
		if err != nil {
			return fmt.Errorf("invalid exp format")
		}
		expUnix = n
	default:
		n, err := parseInt64(fmt.Sprintf("%v", t))
		if err != nil {
			return fmt.Errorf("invalid exp type")
		}
		expUnix = n
	}

	if time.Now().Add(-skew).Unix() >= expUnix {
		return fmt.Errorf("token expired")
	}
	return nil
}

func extractUserID(claims jwt.MapClaims) (uuid.UUID, error) {
	for _, key := range []string{"user_id", "sub", "id"} {
		if raw, ok := claims[key]; ok {
			if s, ok := raw.(string); ok {
				if id, err := uuid.Parse(strings.TrimSpace(s)); err == nil {
					return id, nil
				}
			}
		}
	}
	return uuid.Nil, fmt.Errorf("user_id claim tidak ditemukan / bukan UUID")
}

func ensureUserActive(db *gorm.DB, userID uuid.UUID) error {
	var u userModel.UserModel
	if err := db.Select("id", "is_active").First(&u, "id = ?", userID).Error; err != nil {
		return err
	}
	if !u.IsActive {
		return fmt.Errorf("user nonaktif")
	}
	return nil
}

func storeBasicClaimsToLocals(c *fiber.Ctx, claims jwt.MapClaims) {
	if role, ok := claims["role"].(string); ok {
		c.Locals("userRole", role)
	}
	if name, ok := claims["user_name"].(string); ok {
		c.Locals("userName", name)
	}
}

func parseInt64(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}
