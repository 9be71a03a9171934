package v1

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/postboard-simple/dto"
	"github.com/postboard-simple/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	router, _ := setupTest(t)

	resp := registerUser(t, router, "Ann", "ann@x.com", "secret1")
	assert.Equal(t, "Ann", resp.User.Name)
	assert.Equal(t, models.RoleUser, resp.User.Role)
	assert.False(t, resp.User.IsBlocked)

	// Wrong password and unknown email produce the same message
	w := doJSON(t, router, http.MethodPost, "/api/auth/login", gin.H{
		"email": "ann@x.com", "password": "wrong",
	}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid credentials")

	w = doJSON(t, router, http.MethodPost, "/api/auth/login", gin.H{
		"email": "nobody@x.com", "password": "secret1",
	}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid credentials")

	// Correct credentials log in
	w = doJSON(t, router, http.MethodPost, "/api/auth/login", gin.H{
		"email": "ann@x.com", "password": "secret1",
	}, "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRegisterValidation(t *testing.T) {
	router, _ := setupTest(t)

	w := doJSON(t, router, http.MethodPost, "/api/auth/register", gin.H{
		"name": "", "email": "not-an-email", "password": "123",
	}, "")
	require.Equal(t, http.StatusBadRequest, w.Code)

	var body struct {
		Message string           `json:"message"`
		Errors  []dto.FieldError `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Validation failed", body.Message)

	fields := make(map[string]string)
	for _, fe := range body.Errors {
		fields[fe.Field] = fe.Message
	}
	assert.Contains(t, fields, "name")
	assert.Equal(t, "Valid email is required", fields["email"])
	assert.Contains(t, fields["password"], "at least 6")
}

func TestRegisterDuplicateEmail(t *testing.T) {
	router, db := setupTest(t)

	registerUser(t, router, "Ann", "ann@x.com", "secret1")

	w := doJSON(t, router, http.MethodPost, "/api/auth/register", gin.H{
		"name": "Imposter", "email": "ann@x.com", "password": "secret2",
	}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "User already exists")

	// No duplicate record was created
	var count int64
	db.Model(&models.User{}).Where("email = ?", "ann@x.com").Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestBlockedUserCannotLogin(t *testing.T) {
	router, db := setupTest(t)

	resp := registerUser(t, router, "Ann", "ann@x.com", "secret1")
	require.NoError(t, db.Model(&models.User{}).Where("id = ?", resp.User.ID).
		Update("is_blocked", true).Error)

	// The block wins even with the correct password
	w := doJSON(t, router, http.MethodPost, "/api/auth/login", gin.H{
		"email": "ann@x.com", "password": "secret1",
	}, "")
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "blocked")
}

func TestBlockedUserKeepsExistingToken(t *testing.T) {
	router, db := setupTest(t)

	resp := registerUser(t, router, "Ann", "ann@x.com", "secret1")
	require.NoError(t, db.Model(&models.User{}).Where("id = ?", resp.User.ID).
		Update("is_blocked", true).Error)

	// Tokens are stateless: one issued before the block still authenticates
	w := doJSON(t, router, http.MethodGet, "/api/auth/me", nil, resp.Token)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetCurrentUser(t *testing.T) {
	router, _ := setupTest(t)

	resp := registerUser(t, router, "Ann", "ann@x.com", "secret1")

	w := doJSON(t, router, http.MethodGet, "/api/auth/me", nil, resp.Token)
	require.Equal(t, http.StatusOK, w.Code)

	var user models.User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &user))
	assert.Equal(t, "ann@x.com", user.Email)
	assert.NotContains(t, w.Body.String(), "password")

	// No token / garbage token
	w = doJSON(t, router, http.MethodGet, "/api/auth/me", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "No token supplied")

	w = doJSON(t, router, http.MethodGet, "/api/auth/me", nil, "not.a.token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid or expired token")
}

// settingsForm builds a multipart settings request with the given fields
func settingsForm(t *testing.T, router *gin.Engine, token string, fields map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for key, value := range fields {
		require.NoError(t, mw.WriteField(key, value))
	}
	require.NoError(t, mw.Close())

	req, err := http.NewRequest(http.MethodPut, "/api/auth/settings", &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestUpdateSettingsPartial(t *testing.T) {
	router, _ := setupTest(t)

	resp := registerUser(t, router, "Ann", "ann@x.com", "secret1")

	// Only the theme changes; name, email and password stay intact
	w := settingsForm(t, router, resp.Token, map[string]string{"theme": "dark"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var body struct {
		Message string               `json:"message"`
		User    dto.SettingsResponse `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Settings updated successfully", body.Message)
	assert.Equal(t, models.ThemeDark, body.User.Theme)
	assert.Equal(t, "Ann", body.User.Name)
	assert.Equal(t, "ann@x.com", body.User.Email)

	// The old password still authenticates
	w2 := doJSON(t, router, http.MethodPost, "/api/auth/login", gin.H{
		"email": "ann@x.com", "password": "secret1",
	}, "")
	assert.Equal(t, http.StatusOK, w2.Code)
}

func TestUpdateSettingsPasswordRotation(t *testing.T) {
	router, _ := setupTest(t)

	resp := registerUser(t, router, "Ann", "ann@x.com", "secret1")

	w := settingsForm(t, router, resp.Token, map[string]string{"password": "newsecret"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// Old password no longer authenticates, the new one does
	w2 := doJSON(t, router, http.MethodPost, "/api/auth/login", gin.H{
		"email": "ann@x.com", "password": "secret1",
	}, "")
	assert.Equal(t, http.StatusBadRequest, w2.Code)

	w2 = doJSON(t, router, http.MethodPost, "/api/auth/login", gin.H{
		"email": "ann@x.com", "password": "newsecret",
	}, "")
	assert.Equal(t, http.StatusOK, w2.Code)
}
