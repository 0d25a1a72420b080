package controllers

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
)

// parseID reads a positive integer path parameter. ok is false for anything
// else, which callers treat as a missing entity.
func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// parsePage reads the optional page parameter, defaulting to 1.
func parsePage(c *gin.Context) (int, bool) {
	raw := c.Param("page")
	if raw == "" {
		return 1, true
	}
	page, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return page, true
}

// langURL prefixes path with the request language.
func langURL(c *gin.Context, format string, args ...interface{}) string {
	return "/" + c.GetString("lang") + fmt.Sprintf(format, args...)
}
