package routes_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/linskybing/bootcamp-go/internal/domain/user"
	"github.com/linskybing/bootcamp-go/internal/testutils"
	"github.com/linskybing/bootcamp-go/pkg/response"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const prefix = "/api/v1"

func doJSON(t *testing.T, env *testutils.Env, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, prefix+path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	env.Router.ServeHTTP(w, req)
	return w
}

func loginToken(t *testing.T, env *testutils.Env, username, password string) (int, string) {
	t.Helper()
	form := url.Values{"username": {username}, "password": {password}}
	req := httptest.NewRequest(http.MethodPost, prefix+"/auth/token", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	env.Router.ServeHTTP(w, req)

	var tok response.TokenResponse
	_ = json.Unmarshal(w.Body.Bytes(), &tok)
	return w.Code, tok.AccessToken
}

func adminToken(t *testing.T, env *testutils.Env) string {
	code, token := loginToken(t, env, testutils.AdminUsername, testutils.AdminPassword)
	require.Equal(t, http.StatusOK, code)
	require.NotEmpty(t, token)
	return token
}

var contactBody = map[string]any{"full_name": "Bob", "email": "bob@example.com", "message": "hi"}

func TestLogin(t *testing.T) {
	env := testutils.SetupRouter(t)

	code, _ := loginToken(t, env, testutils.AdminUsername, "nope")
	assert.Equal(t, http.StatusUnauthorized, code)

	code, _ = loginToken(t, env, "", "")
	assert.Equal(t, http.StatusBadRequest, code)

	inactive := false
	_, err := env.Services.User.Create(user.CreateUserInput{
		Username: "gone", Email: "gone@example.com", FullName: "Gone", Password: "password123", IsActive: &inactive,
	})
	require.NoError(t, err)
	code, _ = loginToken(t, env, "gone", "password123")
	assert.Equal(t, http.StatusBadRequest, code)

	adminToken(t, env)
}

func TestAdminRoutes_RequireAdministrator(t *testing.T) {
	env := testutils.SetupRouter(t)

	w := doJSON(t, env, http.MethodGet, "/applications", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	_, err := env.Services.User.Create(user.CreateUserInput{
		Username: "staff", Email: "staff@example.com", FullName: "Staff", Password: "password123",
	})
	require.NoError(t, err)
	code, staffToken := loginToken(t, env, "staff", "password123")
	require.Equal(t, http.StatusOK, code)

	w = doJSON(t, env, http.MethodGet, "/applications", staffToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, env, http.MethodGet, "/users/me", staffToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, env, http.MethodGet, "/applications", adminToken(t, env), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestLogout_RevokesToken(t *testing.T) {
	env := testutils.SetupRouter(t)
	token := adminToken(t, env)

	w := doJSON(t, env, http.MethodPost, "/auth/logout", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, env, http.MethodGet, "/users/me", token, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateContact_ValidationFields(t *testing.T) {
	env := testutils.SetupRouter(t)

	w := doJSON(t, env, http.MethodPost, "/contacts", "", map[string]any{"email": "nope"})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var body response.ValidationErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	fields := map[string]bool{}
	for _, f := range body.Fields {
		fields[f.Field] = true
	}
	assert.True(t, fields["full_name"])
	assert.True(t, fields["email"])
	assert.True(t, fields["message"])

	w = doJSON(t, env, http.MethodPost, "/contacts", "", contactBody)
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestContactStatus_LegacyBodyAndFilters(t *testing.T) {
	env := testutils.SetupRouter(t)
	token := adminToken(t, env)

	w := doJSON(t, env, http.MethodPost, "/contacts", "", contactBody)
	require.Equal(t, http.StatusCreated, w.Code)
	var created map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	id := created["id"].(string)

	w = doJSON(t, env, http.MethodGet, "/contacts?status=archived", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, env, http.MethodPut, "/contacts/"+id, token, map[string]any{"is_read": false})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, env, http.MethodPut, "/contacts/"+id, token, map[string]any{"is_read": true})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"is_read":true`)

	w = doJSON(t, env, http.MethodGet, "/contacts?is_read=true", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var read []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &read))
	assert.Len(t, read, 1)
}

func TestUsers_AdminManagement(t *testing.T) {
	env := testutils.SetupRouter(t)
	token := adminToken(t, env)

	w := doJSON(t, env, http.MethodPost, "/users", token, map[string]any{
		"username": "ed", "email": "ed@example.com", "full_name": "Ed", "password": "short",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, env, http.MethodPost, "/users", token, map[string]any{
		"username": "ed", "email": "ed@example.com", "full_name": "Ed", "password": "password123",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.NotContains(t, w.Body.String(), "password")
	var created user.User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doJSON(t, env, http.MethodPost, "/users", token, map[string]any{
		"username": "ed", "email": "other@example.com", "full_name": "Ed", "password": "password123",
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doJSON(t, env, http.MethodPut, "/users/"+created.ID, token, map[string]any{"is_admin": true})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"is_admin":true`)

	w = doJSON(t, env, http.MethodGet, "/users/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var me user.User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &me))

	w = doJSON(t, env, http.MethodDelete, "/users/"+me.ID, token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, env, http.MethodDelete, "/users/"+created.ID, token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w = doJSON(t, env, http.MethodGet, "/users/"+created.ID, token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTestimonials_AdminListAndPublicWall(t *testing.T) {
	env := testutils.SetupRouter(t)
	token := adminToken(t, env)

	w := doJSON(t, env, http.MethodPost, "/testimonials", "", map[string]any{
		"name": "Lin", "role": "alumni", "content": "great", "rating": 9,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, env, http.MethodPost, "/testimonials", "", map[string]any{
		"name": "Lin", "role": "alumni", "content": "great", "rating": 5,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, env, http.MethodGet, "/testimonials/admin?status=pending", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var pending []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &pending))
	assert.Len(t, pending, 1)

	w = doJSON(t, env, http.MethodGet, "/testimonials", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestCreateTestimonial_DropsClientMediaURLs(t *testing.T) {
	env := testutils.SetupRouter(t)
	token := adminToken(t, env)

	w := doJSON(t, env, http.MethodPost, "/testimonials", "", map[string]any{
		"name": "Lin", "role": "alumni", "content": "great", "rating": 5,
		"media_urls": []string{"javascript:alert(1)", "https://evil.example/track.gif"},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		ID        string   `json:"id"`
		MediaURLs []string `json:"media_urls"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Empty(t, created.MediaURLs)

	stored, err := env.Repos.Testimonial.FindByID(created.ID)
	require.NoError(t, err)
	assert.Empty(t, stored.MediaURLs)

	w = doJSON(t, env, http.MethodPatch, "/testimonials/"+created.ID, token, map[string]any{"status": "approved"})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, env, http.MethodGet, "/testimonials", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "evil.example")
	assert.NotContains(t, w.Body.String(), "javascript:")
}

func TestSwaggerServed(t *testing.T) {
	env := testutils.SetupRouter(t)
	req := httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil)
	w := httptest.NewRecorder()
	env.Router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/applications")
}
