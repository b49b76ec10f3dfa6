package integration

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"wingman-ai-be/internal/bootstrap"
	"wingman-ai-be/internal/config"
	"wingman-ai-be/internal/dto"
	"wingman-ai-be/internal/model"
	"wingman-ai-be/internal/pkg/serverutils"
	"wingman-ai-be/internal/server"
	"wingman-ai-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func setupApp(t *testing.T) (*gorm.DB, *server.Server) {
	t.Helper()

	if err := godotenv.Load("../../.env"); err != nil {
		log.Println("No .env file found, using system env")
		os.Setenv("JWT_SECRET", "default_secret")
	}

	if os.Getenv("DB_CONNECTION_STRING") == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}
	cfg := config.Load()

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	container := bootstrap.NewContainer(db, cfg)
	return db, server.New(cfg, container)
}

func TestRegisterVerifyLoginFlow(t *testing.T) {
	db, srv := setupApp(t)
	app := srv.GetApp()

	email := fmt.Sprintf("flow-%s@example.com", uuid.New().String()[:8])
	password := "supersecret1"

	defer func() {
		var user model.User
		if db.Unscoped().Where("email = ?", email).First(&user).Error == nil {
			db.Where("user_id = ?", user.Id).Delete(&model.EmailVerificationToken{})
			db.Unscoped().Delete(&model.User{}, user.Id)
		}
	}()

	// 1. Register
	regBody, _ := json.Marshal(dto.RegisterRequest{
		Email:      email,
		Password:   password,
		FullName:   "Flow Tester",
		Profession: "engineer",
	})
	req := httptest.NewRequest("POST", "/api/auth/register", strings.NewReader(string(regBody)))
	req.Header.Set("Content-Type", "application/json")
	resp, _ := app.Test(req, -1)
	assert.Equal(t, 200, resp.StatusCode)

	var user model.User
	err := db.Where("email = ?", email).First(&user).Error
	assert.NoError(t, err)
	assert.Equal(t, "pending", user.Status)
	assert.False(t, user.EmailVerified)

	// 2. Login before verification must fail
	loginBody, _ := json.Marshal(dto.LoginRequest{Email: email, Password: password})
	req = httptest.NewRequest("POST", "/api/auth/login", strings.NewReader(string(loginBody)))
	req.Header.Set("Content-Type", "application/json")
	resp, _ = app.Test(req, -1)
	assert.Equal(t, 401, resp.StatusCode)

	// 3. Verify using the token the registration stored
	var verification model.EmailVerificationToken
	err = db.Where("user_id = ?", user.Id).First(&verification).Error
	assert.NoError(t, err)

	verifyBody, _ := json.Marshal(dto.VerifyEmailRequest{Token: verification.Token})
	req = httptest.NewRequest("POST", "/api/auth/verify-email", strings.NewReader(string(verifyBody)))
	req.Header.Set("Content-Type", "application/json")
	resp, _ = app.Test(req, -1)
	assert.Equal(t, 200, resp.StatusCode)

	// 4. Login now succeeds
	req = httptest.NewRequest("POST", "/api/auth/login", strings.NewReader(string(loginBody)))
	req.Header.Set("Content-Type", "application/json")
	resp, _ = app.Test(req, -1)
	assert.Equal(t, 200, resp.StatusCode)

	var loginRes serverutils.BaseResponse[dto.LoginResponse]
	json.NewDecoder(resp.Body).Decode(&loginRes)
	assert.True(t, loginRes.Success)
	assert.NotEmpty(t, loginRes.Data.Token)
	assert.Equal(t, email, loginRes.Data.User.Email)

	// 5. Token grants access to the profile
	req = httptest.NewRequest("GET", "/api/user/profile", nil)
	req.Header.Set("Authorization", "Bearer "+loginRes.Data.Token)
	resp, _ = app.Test(req, -1)
	assert.Equal(t, 200, resp.StatusCode)

	var profileRes serverutils.BaseResponse[dto.UserProfileResponse]
	json.NewDecoder(resp.Body).Decode(&profileRes)
	assert.Equal(t, "Flow Tester", profileRes.Data.FullName)

	// 6. Wrong password is rejected
	badBody, _ := json.Marshal(dto.LoginRequest{Email: email, Password: "wrong-password"})
	req = httptest.NewRequest("POST", "/api/auth/login", strings.NewReader(string(badBody)))
	req.Header.Set("Content-Type", "application/json")
	resp, _ = app.Test(req, -1)
	assert.Equal(t, 401, resp.StatusCode)
}
