package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/anilkaliya/LifeOs/utils"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func authTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(sessions.Sessions("test_session", cookie.NewStore([]byte("test-secret"))))
	r.Use(AuthMiddleware())
	r.GET("/protected", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userID": c.MustGet("userID")})
	})
	return r
}

func TestAuthMiddleware_RejectsMissingCredentials(t *testing.T) {
	r := authTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_AcceptsBearerToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-jwt-secret")
	token, err := utils.GenerateJWT(42, "user@example.com")
	require.NoError(t, err)

	r := authTestRouter()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "42")
}

func TestAuthMiddleware_RejectsGarbageToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-jwt-secret")

	r := authTestRouter()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_RejectsTokenSignedWithWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret-a")
	token, err := utils.GenerateJWT(7, "user@example.com")
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "secret-b")
	r := authTestRouter()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
