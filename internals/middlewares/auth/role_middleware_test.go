package auth

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"magangku_backend/internals/constants"
)

// requestAs simulasi request dengan role tertentu di Locals (seperti yang
// diisi AuthMiddleware); role kosong berarti tanpa Locals sama sekali.
func requestAs(t *testing.T, role string, guard fiber.Handler) int {
	t.Helper()
	app := fiber.New()
	if role != "" {
		app.Use(func(c *fiber.Ctx) error {
			c.Locals("userRole", role)
			return c.Next()
		})
	}
	app.Get("/guarded", guard, func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	resp, err := app.Test(httptest.NewRequest("GET", "/guarded", nil))
	require.NoError(t, err)
	return resp.StatusCode
}

func TestOnlyRolesAllowsListedRole(t *testing.T) {
	guard := OnlyRoles("", constants.SupervisorAndAbove...)
	assert.Equal(t, fiber.StatusOK, requestAs(t, constants.RoleSupervisor, guard))
	assert.Equal(t, fiber.StatusOK, requestAs(t, constants.RoleAdmin, guard))
}

func TestOnlyRolesRejectsOtherRole(t *testing.T) {
	guard := OnlyRoles("khusus pembimbing", constants.SupervisorAndAbove...)
	assert.Equal(t, fiber.StatusForbidden, requestAs(t, constants.RoleStudent, guard))
}

func TestOnlyRolesWithoutClaims(t *testing.T) {
	guard := OnlyRoles("", constants.AdminOnly...)
	assert.Equal(t, fiber.StatusUnauthorized, requestAs(t, "", guard))
}
