package helper

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// GetRawAccessToken mengembalikan access token dari:
// 1) cookie "access_token"
// 2) Authorization header "Bearer <token>"
func GetRawAccessToken(c *fiber.Ctx) string {
	if v := strings.TrimSpace(c.Cookies("access_token")); v != "" {
		return v
	}
	const p = "Bearer "
	auth := c.Get("Authorization")
	if len(auth) > len(p) && strings.HasPrefix(auth, p) {
		return strings.TrimSpace(auth[len(p):])
	}
	return ""
}

// GenerateJWT bikin access token dengan claims standar portal
// (sub/user_id, role, user_name).
func GenerateJWT(secret string, userID uuid.UUID, userName, role string, ttl time.Duration) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub":       userID.String(),
		"user_id":   userID.String(),
		"user_name": userName,
		"role":      role,
		"iat":       now.Unix(),
		"exp":       now.Add(ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// GetUserIDFromToken ambil user_id yang sudah disimpan middleware di Locals.
func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	raw := c.Locals("user_id")
	s, ok := raw.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return uuid.Nil, fmt.Errorf("unauthorized - user_id tidak ada di context")
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, fmt.Errorf("unauthorized - user_id bukan UUID valid")
	}
	return id, nil
}

// GetRoleFromToken ambil role dari Locals (diset middleware auth).
func GetRoleFromToken(c *fiber.Ctx) string {
	if v, ok := c.Locals("userRole").(string); ok {
		return v
	}
	return ""
}
