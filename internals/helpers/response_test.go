package helper

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// call jalanin satu handler lewat request Fiber dan decode amplop JSON-nya.
func call(t *testing.T, handler fiber.Handler) (int, map[string]interface{}) {
	t.Helper()
	app := fiber.New()
	app.Get("/", handler)
	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &body))
	return resp.StatusCode, body
}

func TestSuccessEnvelope(t *testing.T) {
	status, body := call(t, func(c *fiber.Ctx) error {
		return Success(c, "Data berhasil diambil", fiber.Map{"total": 3})
	})
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, float64(200), body["code"])
	assert.Equal(t, "success", body["status"])
	assert.Equal(t, "Data berhasil diambil", body["message"])
	require.Contains(t, body, "data")
}

func TestSuccessWithCodeCreated(t *testing.T) {
	status, body := call(t, func(c *fiber.Ctx) error {
		return SuccessWithCode(c, fiber.StatusCreated, "Dibuat", nil)
	})
	assert.Equal(t, fiber.StatusCreated, status)
	assert.Equal(t, float64(201), body["code"])
}

func TestErrorEnvelope(t *testing.T) {
	status, body := call(t, func(c *fiber.Ctx) error {
		return Error(c, fiber.StatusNotFound, "Tidak ditemukan")
	})
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, "error", body["status"])
	assert.Equal(t, "Tidak ditemukan", body["message"])
	assert.NotContains(t, body, "data")
}

func TestValidationErrorFlattensFields(t *testing.T) {
	type payload struct {
		Email string `validate:"required,email"`
		Week  string `validate:"required"`
	}
	err := validator.New().Struct(payload{Email: "bukan-email"})
	require.Error(t, err)

	status, body := call(t, func(c *fiber.Ctx) error {
		return ValidationError(c, err)
	})
	assert.Equal(t, fiber.StatusBadRequest, status)
	fields, ok := body["errors"].(map[string]interface{})
	require.True(t, ok, "errors harus map field ke tag")
	assert.Equal(t, "email", fields["Email"])
	assert.Equal(t, "required", fields["Week"])
}

func TestValidationErrorNonValidatorError(t *testing.T) {
	status, body := call(t, func(c *fiber.Ctx) error {
		return ValidationError(c, assert.AnError)
	})
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Invalid input", body["message"])
}
