package v1

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/postboard-simple/config"
	"github.com/postboard-simple/database"
	"github.com/postboard-simple/dto"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var testConfig = &config.Config{
	JWTSecret: "test-secret",
	UploadDir: "testdata/uploads",
}

// setupTest returns a router wired against a fresh in-memory database.
// Each test gets its own named database so tests stay independent.
func setupTest(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	router := gin.New()
	RegisterRoutes(router.Group("/api"), db, testConfig)
	return router, db
}

// doJSON performs a JSON request against the router, optionally with a
// Bearer token, and returns the recorded response
func doJSON(t *testing.T, router *gin.Engine, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Buffer
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewBuffer(payload)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// registerUser registers a user through the API and returns its token and
// public projection
func registerUser(t *testing.T, router *gin.Engine, name, email, password string) dto.AuthResponse {
	t.Helper()

	w := doJSON(t, router, http.MethodPost, "/api/auth/register", gin.H{
		"name":     name,
		"email":    email,
		"password": password,
	}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp dto.AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp
}

// seedAdmin provisions an admin account directly through the seeding path
// and logs it in through the API
func seedAdmin(t *testing.T, router *gin.Engine, db *gorm.DB) dto.AuthResponse {
	t.Helper()

	cfg := &config.Config{
		AdminName:     "Root",
		AdminEmail:    "root@example.com",
		AdminPassword: "rootpass",
	}
	require.NoError(t, database.SeedAdmin(db, cfg))

	w := doJSON(t, router, http.MethodPost, "/api/auth/login", gin.H{
		"email":    cfg.AdminEmail,
		"password": cfg.AdminPassword,
	}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp dto.AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}
