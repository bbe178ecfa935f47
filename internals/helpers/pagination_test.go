package helper

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// parseWith jalanin ParsePaginationWith lewat satu request Fiber beneran
// supaya parsing query string-nya ikut teruji.
func parseWith(t *testing.T, target string, opt PaginationOptions) PaginationParams {
	t.Helper()
	var got PaginationParams
	app := fiber.New()
	app.Get("/items", func(c *fiber.Ctx) error {
		got = ParsePaginationWith(c, "created_at", "desc", opt)
		return c.SendStatus(fiber.StatusOK)
	})
	resp, err := app.Test(httptest.NewRequest("GET", target, nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	return got
}

func TestParsePaginationDefaults(t *testing.T) {
	p := parseWith(t, "/items", DefaultOpts)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, DefaultOpts.DefaultPerPage, p.PerPage)
	assert.Equal(t, "created_at", p.SortBy)
	assert.Equal(t, "desc", p.SortOrder)
	assert.Equal(t, 0, p.Offset())
}

func TestParsePaginationClampsAndFallsBack(t *testing.T) {
	t.Run("per_page di atas max di-clamp", func(t *testing.T) {
		p := parseWith(t, "/items?per_page=9999", DefaultOpts)
		assert.Equal(t, DefaultOpts.MaxPerPage, p.PerPage)
	})

	t.Run("page negatif kembali ke 1", func(t *testing.T) {
		p := parseWith(t, "/items?page=-3", DefaultOpts)
		assert.Equal(t, 1, p.Page)
	})

	t.Run("per_page bukan angka pakai default", func(t *testing.T) {
		p := parseWith(t, "/items?per_page=abc", DefaultOpts)
		assert.Equal(t, DefaultOpts.DefaultPerPage, p.PerPage)
	})

	t.Run("limit dipakai kalau per_page kosong", func(t *testing.T) {
		p := parseWith(t, "/items?limit=10", DefaultOpts)
		assert.Equal(t, 10, p.PerPage)
	})

	t.Run("order tidak dikenal kembali ke default", func(t *testing.T) {
		p := parseWith(t, "/items?order=sideways", DefaultOpts)
		assert.Equal(t, "desc", p.SortOrder)
	})

	t.Run("order asc diterima", func(t *testing.T) {
		p := parseWith(t, "/items?order=ASC", DefaultOpts)
		assert.Equal(t, "asc", p.SortOrder)
	})
}

func TestParsePaginationOffset(t *testing.T) {
	p := parseWith(t, "/items?page=3&per_page=20", DefaultOpts)
	assert.Equal(t, 40, p.Offset())
}

func TestPaginationMeta(t *testing.T) {
	p := PaginationParams{Page: 2, PerPage: 25}
	meta := PaginationMeta(p, 51)
	assert.Equal(t, 2, meta["page"])
	assert.Equal(t, 25, meta["per_page"])
	assert.Equal(t, int64(51), meta["total"])
	assert.Equal(t, 3, meta["total_pages"])

	// list kosong tetap minimal 1 halaman
	meta = PaginationMeta(PaginationParams{Page: 1, PerPage: 25}, 0)
	assert.Equal(t, 1, meta["total_pages"])
}
