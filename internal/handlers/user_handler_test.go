package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (api *testAPI) registerWithRole(t *testing.T, email, role string) map[string]interface{} {
	t.Helper()
	w := api.do(t, http.MethodPost, "/auth/register", gin.H{
		"name":     "Test User",
		"email":    email,
		"role":     role,
		"password": "password123",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestListUsersRequiresAdmin(t *testing.T) {
	api := newTestAPI(t)
	viewer := api.registerWithRole(t, "viewer@x.com", "viewer")
	admin := api.registerWithRole(t, "admin@x.com", "admin")

	w := api.do(t, http.MethodGet, "/users", nil, viewer["access_token"].(string))
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = api.do(t, http.MethodGet, "/users", nil, admin["access_token"].(string))
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data []struct {
			Email string `json:"email"`
		} `json:"data"`
		Pagination struct {
			Total int `json:"total"`
		} `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Pagination.Total)
	assert.Len(t, resp.Data, 2)
}

func TestSetUserStatus(t *testing.T) {
	api := newTestAPI(t)
	viewer := api.registerWithRole(t, "viewer@x.com", "viewer")
	admin := api.registerWithRole(t, "admin@x.com", "admin")
	viewerID := uint(viewer["id"].(float64))

	path := fmt.Sprintf("/users/%d/status", viewerID)

	// Non-admin cannot change status.
	w := api.do(t, http.MethodPut, path, gin.H{"is_active": false}, viewer["access_token"].(string))
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = api.do(t, http.MethodPut, path, gin.H{"is_active": false}, admin["access_token"].(string))
	require.Equal(t, http.StatusOK, w.Code)

	// The deactivated account can no longer log in.
	w = api.do(t, http.MethodPost, "/auth/login", gin.H{
		"email":    "viewer@x.com",
		"password": "password123",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Unknown user id.
	w = api.do(t, http.MethodPut, "/users/9999/status", gin.H{"is_active": true}, admin["access_token"].(string))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
