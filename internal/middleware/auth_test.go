package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SpinCityEvents/gig-manager/internal/config"
	"github.com/SpinCityEvents/gig-manager/internal/models"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func validClaims(role string) jwt.MapClaims {
	return jwt.MapClaims{
		"sub":  uuid.NewString(),
		"role": role,
		"jti":  uuid.NewString(),
		"exp":  time.Now().Add(time.Hour).Unix(),
		"iat":  time.Now().Unix(),
	}
}

func authRouter(extra ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{JWTSecret: testSecret}

	r := gin.New()
	group := r.Group("/", AuthMiddleware(cfg, nil))
	group.Use(extra...)
	group.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"role": c.MustGet(ContextUserRole),
		})
	})
	return r
}

func TestAuthMiddlewareRejects(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"not bearer", "Basic abc123"},
		{"garbage token", "Bearer not.a.jwt"},
		{"wrong secret", "Bearer " + signToken(t, "other-secret", validClaims("owner"))},
		{"expired", "Bearer " + signToken(t, testSecret, jwt.MapClaims{
			"sub": uuid.NewString(), "role": "owner",
			"exp": time.Now().Add(-time.Hour).Unix(),
		})},
		{"missing role", "Bearer " + signToken(t, testSecret, jwt.MapClaims{
			"sub": uuid.NewString(),
			"exp": time.Now().Add(time.Hour).Unix(),
		})},
		{"bad subject", "Bearer " + signToken(t, testSecret, jwt.MapClaims{
			"sub": "not-a-uuid", "role": "owner",
			"exp": time.Now().Add(time.Hour).Unix(),
		})},
	}

	r := authRouter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestAuthMiddlewareAccepts(t *testing.T) {
	r := authRouter()

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, validClaims("manager")))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"role":"manager"`)
}

func TestRequireBackOffice(t *testing.T) {
	r := authRouter(RequireBackOffice())

	tests := []struct {
		role string
		want int
	}{
		{"owner", http.StatusOK},
		{"manager", http.StatusOK},
		{"personnel", http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.role, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, validClaims(tt.role)))

			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestRequireOwner(t *testing.T) {
	r := authRouter(RequireOwner())

	for role, want := range map[string]int{
		string(models.RoleOwner):     http.StatusOK,
		string(models.RoleManager):   http.StatusForbidden,
		string(models.RolePersonnel): http.StatusForbidden,
	} {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, validClaims(role)))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, want, w.Code, "role %s", role)
	}
}
