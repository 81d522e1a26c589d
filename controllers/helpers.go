package controllers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

func userIDFromCtx(c *gin.Context) (uint, bool) {
	v, ok := c.Get("userID")
	if !ok {
		return 0, false
	}
	switch id := v.(type) {
	case uint:
		return id, true
	case int:
		return uint(id), true
	case int64:
		return uint(id), true
	default:
		return 0, false
	}
}

// validDay reports whether s is a well-formed calendar day ("2006-01-02").
func validDay(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

func idParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}
