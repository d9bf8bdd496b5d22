package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"driveline/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func adminTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/admin/ping", AdminAuthMiddleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"pong": true})
	})
	return r
}

func getWithAuth(r *gin.Engine, header string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestAdminAuthMiddleware(t *testing.T) {
	original := config.AppConfig.AdminToken
	defer func() { config.AppConfig.AdminToken = original }()
	config.AppConfig.AdminToken = "secret-token"

	r := adminTestRouter()

	tests := []struct {
		name   string
		header string
		status int
	}{
		{name: "valid token", header: "Bearer secret-token", status: http.StatusOK},
		{name: "wrong token", header: "Bearer nope", status: http.StatusUnauthorized},
		{name: "missing header", header: "", status: http.StatusUnauthorized},
		{name: "not a bearer scheme", header: "Basic secret-token", status: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := getWithAuth(r, tt.header)
			assert.Equal(t, tt.status, w.Code)
		})
	}
}

func TestAdminAuthMiddlewareDisabledWithoutToken(t *testing.T) {
	original := config.AppConfig.AdminToken
	defer func() { config.AppConfig.AdminToken = original }()
	config.AppConfig.AdminToken = ""

	r := adminTestRouter()
	w := getWithAuth(r, "Bearer anything")
	assert.Equal(t, http.StatusForbidden, w.Code)
}
