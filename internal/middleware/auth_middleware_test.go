package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"

	"github.com/nitinco/nexsphere/internal/middleware"
)

var testSecret = []byte("test-jwt-secret")

func signToken(t *testing.T, secret []byte, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	assert.NoError(t, err)
	return token
}

func setupProtectedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", middleware.AuthMiddleware(testSecret), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id": c.GetString("user_id"),
			"role":    c.GetString("role"),
		})
	})
	return r
}

func TestAuthMiddleware(t *testing.T) {
	router := setupProtectedRouter()

	get := func(authHeader string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		if authHeader != "" {
			req.Header.Set("Authorization", authHeader)
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	t.Run("valid token passes and exposes identity", func(t *testing.T) {
		token := signToken(t, testSecret, jwt.MapClaims{
			"user_id": "u-1",
			"email":   "hr@nexsphere.in",
			"role":    "hr",
			"exp":     time.Now().Add(time.Hour).Unix(),
		})

		w := get("Bearer " + token)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"user_id":"u-1"`)
		assert.Contains(t, w.Body.String(), `"role":"hr"`)
	})

	t.Run("missing header rejected", func(t *testing.T) {
		w := get("")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("header without bearer prefix rejected", func(t *testing.T) {
		w := get("Basic abc123")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("token signed with another secret rejected", func(t *testing.T) {
		token := signToken(t, []byte("other-secret"), jwt.MapClaims{
			"user_id": "u-1",
			"exp":     time.Now().Add(time.Hour).Unix(),
		})

		w := get("Bearer " + token)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("expired token rejected with expiry message", func(t *testing.T) {
		token := signToken(t, testSecret, jwt.MapClaims{
			"user_id": "u-1",
			"exp":     time.Now().Add(-time.Hour).Unix(),
		})

		w := get("Bearer " + token)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "expired")
	})

	t.Run("token without user id rejected", func(t *testing.T) {
		token := signToken(t, testSecret, jwt.MapClaims{
			"email": "hr@nexsphere.in",
			"exp":   time.Now().Add(time.Hour).Unix(),
		})

		w := get("Bearer " + token)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
