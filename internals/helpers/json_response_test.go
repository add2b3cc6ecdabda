package helper

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestBuildPaginationFromPage(t *testing.T) {
	p := BuildPaginationFromPage(45, 2, 20)
	assert.Equal(t, 2, p.Page)
	assert.Equal(t, 20, p.PerPage)
	assert.Equal(t, int64(45), p.Total)
	assert.Equal(t, 3, p.TotalPages)
	assert.True(t, p.HasNext)
	assert.True(t, p.HasPrev)

	// halaman terakhir
	p = BuildPaginationFromPage(45, 3, 20)
	assert.False(t, p.HasNext)
	assert.True(t, p.HasPrev)

	// data kosong
	p = BuildPaginationFromPage(0, 1, 20)
	assert.Equal(t, 0, p.TotalPages)
	assert.False(t, p.HasNext)
	assert.False(t, p.HasPrev)
}

func TestStatusToErrorCode(t *testing.T) {
	cases := map[int]string{
		fiber.StatusBadRequest:          "BAD_REQUEST",
		fiber.StatusUnauthorized:        "UNAUTHORIZED",
		fiber.StatusForbidden:           "FORBIDDEN",
		fiber.StatusNotFound:            "NOT_FOUND",
		fiber.StatusConflict:            "CONFLICT",
		fiber.StatusUnprocessableEntity: "VALIDATION_ERROR",
		fiber.StatusInternalServerError: "INTERNAL_ERROR",
		fiber.StatusBadGateway:          "INTERNAL_ERROR",
		fiber.StatusTeapot:              "ERROR",
	}
	for status, want := range cases {
		assert.Equal(t, want, statusToErrorCode(status), "status %d", status)
	}
}
