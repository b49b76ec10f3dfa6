package integration

import (
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"

	"wingman-ai-be/internal/dto"
	"wingman-ai-be/internal/model"
	"wingman-ai-be/internal/pkg/serverutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestAdminUserManagement(t *testing.T) {
	db, srv := setupApp(t)
	app := srv.GetApp()

	admin, adminPass := seedActiveUser(t, db, "admin")
	defer db.Unscoped().Delete(&model.User{}, admin.Id)

	adminToken := loginFor(t, app, admin.Email, adminPass)

	target, targetPass := seedActiveUser(t, db, "user")
	defer db.Unscoped().Delete(&model.User{}, target.Id)

	t.Run("Non Admin Is Denied", func(t *testing.T) {
		userToken := loginFor(t, app, target.Email, targetPass)
		req := httptest.NewRequest("GET", "/api/admin/users", nil)
		req.Header.Set("Authorization", "Bearer "+userToken)
		resp, _ := app.Test(req, -1)
		assert.Equal(t, 403, resp.StatusCode)
	})

	t.Run("List Users", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/admin/users?search="+target.Email, nil)
		req.Header.Set("Authorization", "Bearer "+adminToken)
		resp, _ := app.Test(req, -1)
		assert.Equal(t, 200, resp.StatusCode)

		var res serverutils.BaseResponse[dto.AdminUserListResponse]
		json.NewDecoder(resp.Body).Decode(&res)
		if assert.Len(t, res.Data.Users, 1) {
			assert.Equal(t, target.Email, res.Data.Users[0].Email)
		}
	})

	t.Run("Block And Unblock User", func(t *testing.T) {
		body, _ := json.Marshal(dto.UpdateUserStatusRequest{Status: "blocked", Reason: "tos violation"})
		req := httptest.NewRequest("PATCH", "/api/admin/users/"+target.Id.String()+"/status", strings.NewReader(string(body)))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+adminToken)
		resp, _ := app.Test(req, -1)
		assert.Equal(t, 200, resp.StatusCode)

		// A blocked account can no longer sign in.
		loginBody, _ := json.Marshal(dto.LoginRequest{Email: target.Email, Password: targetPass})
		req = httptest.NewRequest("POST", "/api/auth/login", strings.NewReader(string(loginBody)))
		req.Header.Set("Content-Type", "application/json")
		resp, _ = app.Test(req, -1)
		assert.Equal(t, 401, resp.StatusCode)

		body, _ = json.Marshal(dto.UpdateUserStatusRequest{Status: "active"})
		req = httptest.NewRequest("PATCH", "/api/admin/users/"+target.Id.String()+"/status", strings.NewReader(string(body)))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+adminToken)
		resp, _ = app.Test(req, -1)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("Cannot Block An Admin", func(t *testing.T) {
		body, _ := json.Marshal(dto.UpdateUserStatusRequest{Status: "blocked"})
		req := httptest.NewRequest("PATCH", "/api/admin/users/"+admin.Id.String()+"/status", strings.NewReader(string(body)))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+adminToken)
		resp, _ := app.Test(req, -1)
		assert.Equal(t, 400, resp.StatusCode)
	})

	t.Run("Create And Delete User", func(t *testing.T) {
		email := fmt.Sprintf("created-%s@example.com", uuid.New().String()[:8])
		body, _ := json.Marshal(dto.AdminCreateUserRequest{
			Email:    email,
			Password: "supersecret1",
			FullName: "Created By Admin",
			Role:     "user",
		})
		req := httptest.NewRequest("POST", "/api/admin/users", strings.NewReader(string(body)))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+adminToken)
		resp, _ := app.Test(req, -1)
		assert.Equal(t, 200, resp.StatusCode)

		var createRes serverutils.BaseResponse[dto.UserProfileResponse]
		json.NewDecoder(resp.Body).Decode(&createRes)
		assert.Equal(t, "active", createRes.Data.Status)
		assert.True(t, createRes.Data.EmailVerified, "admin-created accounts skip verification")
		defer db.Unscoped().Delete(&model.User{}, createRes.Data.Id)

		// Admin-created accounts can sign in immediately.
		loginFor(t, app, email, "supersecret1")

		req = httptest.NewRequest("DELETE", "/api/admin/users/"+createRes.Data.Id.String(), nil)
		req.Header.Set("Authorization", "Bearer "+adminToken)
		resp, _ = app.Test(req, -1)
		assert.Equal(t, 200, resp.StatusCode)

		var count int64
		db.Model(&model.User{}).Where("id = ?", createRes.Data.Id).Count(&count)
		assert.Equal(t, int64(0), count)
	})

	t.Run("Stats", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/admin/stats", nil)
		req.Header.Set("Authorization", "Bearer "+adminToken)
		resp, _ := app.Test(req, -1)
		assert.Equal(t, 200, resp.StatusCode)

		var res serverutils.BaseResponse[dto.AdminStatsResponse]
		json.NewDecoder(resp.Body).Decode(&res)
		assert.GreaterOrEqual(t, res.Data.TotalUsers, int64(2))
	})
}
