package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestUpsertSkinCareLog_RejectsBadDate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	tests := []struct {
		name string
		body string
	}{
		{"missing date", `{"detan":true}`},
		{"garbage date", `{"date":"yesterday","detan":true}`},
		{"impossible date", `{"date":"2024-13-99","detan":true}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodPost, "/api/skincare", strings.NewReader(tt.body))
			c.Request.Header.Set("Content-Type", "application/json")
			c.Set("userID", uint(1))

			UpsertSkinCareLog(c)

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestGetSkinCareLog_RejectsBadDateParam(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/skincare/notaday", nil)
	c.Params = gin.Params{{Key: "date", Value: "notaday"}}
	c.Set("userID", uint(1))

	GetSkinCareLog(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
