package helper

import (
	"math"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

const DefaultPage = 1

type PaginationOptions struct {
	DefaultPerPage int
	MaxPerPage     int
}

// ===== Preset =====
var (
	DefaultOpts = PaginationOptions{DefaultPerPage: 25, MaxPerPage: 200}
	AdminOpts   = PaginationOptions{DefaultPerPage: 50, MaxPerPage: 500}
)

type PaginationParams struct {
	Page      int
	PerPage   int
	SortBy    string
	SortOrder string // asc|desc
}

func (p PaginationParams) Offset() int {
	return (p.Page - 1) * p.PerPage
}

// ParsePagination baca page/per_page/sort dari query string Fiber
func ParsePagination(c *fiber.Ctx, defaultSortBy, defaultSortOrder string) PaginationParams {
	return ParsePaginationWith(c, defaultSortBy, defaultSortOrder, DefaultOpts)
}

func ParsePaginationWith(c *fiber.Ctx, defaultSortBy, defaultSortOrder string, opt PaginationOptions) PaginationParams {
	page := atoiDefault(c.Query("page"), DefaultPage)
	if page < 1 {
		page = DefaultPage
	}

	perRaw := strings.TrimSpace(firstNonEmpty(c.Query("per_page"), c.Query("limit")))
	per := opt.DefaultPerPage
	if n, err := strconv.Atoi(perRaw); err == nil && n > 0 {
		per = n
	}
	if per > opt.MaxPerPage {
		per = opt.MaxPerPage
	}
	if per < 1 {
		per = opt.DefaultPerPage
	}

	sortBy := strings.TrimSpace(c.Query("sort_by"))
	if sortBy == "" {
		sortBy = defaultSortBy
	}
	order := strings.ToLower(strings.TrimSpace(firstNonEmpty(c.Query("order"), c.Query("sort"))))
	if order != "asc" && order != "desc" {
		order = strings.ToLower(defaultSortOrder)
		if order != "asc" && order != "desc" {
			order = "desc"
		}
	}

	return PaginationParams{
		Page:      page,
		PerPage:   per,
		SortBy:    sortBy,
		SortOrder: order,
	}
}

// PaginationMeta untuk dibungkus di response list
func PaginationMeta(p PaginationParams, total int64) fiber.Map {
	totalPages := int(math.Ceil(float64(total) / float64(p.PerPage)))
	if totalPages < 1 {
		totalPages = 1
	}
	return fiber.Map{
		"page":        p.Page,
		"per_page":    p.PerPage,
		"total":       total,
		"total_pages": totalPages,
	}
}

func atoiDefault(s string, def int) int {
	if n, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
		return n
	}
	return def
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
