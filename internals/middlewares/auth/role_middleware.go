package auth

import (
	"github.com/gofiber/fiber/v2"

	helper "magangku_backend/internals/helpers"
)

// RoleMiddlewareWithCustomError batasi akses ke role yang diizinkan.
// Role dibaca dari Locals("userRole") yang diisi AuthMiddleware, jadi
// keputusan otorisasi tidak pernah bergantung pada input client.
func RoleMiddlewareWithCustomError(allowedRoles []string, forbiddenMessage string) fiber.Handler {
	if forbiddenMessage == "" {
		forbiddenMessage = "Forbidden: role Anda tidak boleh mengakses resource ini"
	}
	allowed := make(map[string]bool, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = true
	}

	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("userRole").(string)
		if !ok || role == "" {
			return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized: informasi role tidak ditemukan")
		}
		if !allowed[role] {
			return helper.Error(c, fiber.StatusForbidden, forbiddenMessage)
		}
		return c.Next()
	}
}

// OnlyRoles shortcut untuk pemasangan di route group.
func OnlyRoles(customMessage string, roles ...string) fiber.Handler {
	return RoleMiddlewareWithCustomError(roles, customMessage)
}
