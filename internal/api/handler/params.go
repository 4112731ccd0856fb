package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

// queryInt parses an integer query parameter, returning 0 when absent or
// malformed; services clamp to their own defaults.
func queryInt(c echo.Context, name string) int {
	n, err := strconv.Atoi(c.QueryParam(name))
	if err != nil {
		return 0
	}
	return n
}
