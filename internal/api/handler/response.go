package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nexospark/website-api/internal/core/ports"
)

// respond renders the success envelope: {"status":"success","data":{...}}.
// data is keyed by entity name, e.g. {"blog": ...} or {"blogs": [...]}.
func respond(c echo.Context, code int, data map[string]any) error {
	return c.JSON(code, map[string]any{
		"status": "success",
		"data":   data,
	})
}

// respondPage renders a paginated list envelope with results, total,
// totalPages and currentPage alongside the data.
func respondPage[T any](c echo.Context, key string, page *ports.Page[T]) error {
	items := page.Items
	if items == nil {
		items = []T{}
	}
	return c.JSON(http.StatusOK, map[string]any{
		"status":      "success",
		"results":     len(items),
		"total":       page.Total,
		"totalPages":  page.TotalPages,
		"currentPage": page.CurrentPage,
		"data":        map[string]any{key: items},
	})
}

// respondItems renders an unpaginated list envelope (back-office views).
func respondItems[T any](c echo.Context, key string, items []T) error {
	if items == nil {
		items = []T{}
	}
	return c.JSON(http.StatusOK, map[string]any{
		"status":  "success",
		"results": len(items),
		"data":    map[string]any{key: items},
	})
}
