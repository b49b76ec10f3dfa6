package integration

import (
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"wingman-ai-be/internal/dto"
	"wingman-ai-be/internal/model"
	"wingman-ai-be/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func seedActiveUser(t *testing.T, db *gorm.DB, role string) (*model.User, string) {
	t.Helper()

	password := "supersecret1"
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	hashStr := string(hash)

	user := &model.User{
		Id:            uuid.New(),
		Email:         fmt.Sprintf("%s-%s@example.com", role, uuid.New().String()[:8]),
		PasswordHash:  &hashStr,
		FullName:      "Seeded " + role,
		Role:          role,
		Status:        "active",
		EmailVerified: true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("Failed to seed user: %v", err)
	}
	return user, password
}

func loginFor(t *testing.T, app *fiber.App, email, password string) string {
	t.Helper()

	body, _ := json.Marshal(dto.LoginRequest{Email: email, Password: password})
	req := httptest.NewRequest("POST", "/api/auth/login", strings.NewReader(string(body)))
	req.Header.Set("Content-Type", "application/json")
	resp, _ := app.Test(req, -1)

	var res serverutils.BaseResponse[dto.LoginResponse]
	json.NewDecoder(resp.Body).Decode(&res)
	if res.Data.Token == "" {
		t.Fatalf("Login failed for %s: %s", email, res.Message)
	}
	return res.Data.Token
}

func TestChatHistoryFlow(t *testing.T) {
	db, srv := setupApp(t)
	app := srv.GetApp()

	user, password := seedActiveUser(t, db, "user")
	defer db.Unscoped().Delete(&model.User{}, user.Id)
	defer db.Where("user_id = ?", user.Id).Delete(&model.ChatRecord{})

	token := loginFor(t, app, user.Email, password)

	// Seed three turns directly; oldest first.
	turns := []struct{ in, out string }{
		{"what is the weather?", "Sunny all week."},
		{"dinner ideas", "Try a carbonara."},
		{"thanks!", "Anytime."},
	}
	for i, turn := range turns {
		record := &model.ChatRecord{
			Id:         uuid.New(),
			UserId:     user.Id,
			UserInput:  turn.in,
			AiResponse: turn.out,
			CreatedAt:  time.Now().Add(time.Duration(i) * time.Millisecond),
		}
		if err := db.Create(record).Error; err != nil {
			t.Fatalf("Failed to seed chat record: %v", err)
		}
	}

	getHistory := func(query string) dto.GetHistoryResponse {
		url := "/api/chat/history"
		if query != "" {
			url += "?q=" + query
		}
		req := httptest.NewRequest("GET", url, nil)
		req.Header.Set("Authorization", "Bearer "+token)
		resp, _ := app.Test(req, -1)
		assert.Equal(t, 200, resp.StatusCode)

		var res serverutils.BaseResponse[dto.GetHistoryResponse]
		json.NewDecoder(resp.Body).Decode(&res)
		return res.Data
	}

	post := func(path string) {
		req := httptest.NewRequest("POST", path, nil)
		req.Header.Set("Authorization", "Bearer "+token)
		resp, _ := app.Test(req, -1)
		assert.Equal(t, 200, resp.StatusCode)
	}

	t.Run("Full History", func(t *testing.T) {
		history := getHistory("")
		assert.Len(t, history.Records, 3)
		assert.Equal(t, 3, history.Total)
		assert.Equal(t, "what is the weather?", history.Records[0].UserInput)
	})

	t.Run("Search Is Case Insensitive", func(t *testing.T) {
		history := getHistory("WEATHER")
		assert.Len(t, history.Records, 1)
		assert.Equal(t, 3, history.Total, "search narrows the display, not the log")

		// Matches the AI side of a turn too.
		history = getHistory("carbonara")
		assert.Len(t, history.Records, 1)
		assert.Equal(t, "dinner ideas", history.Records[0].UserInput)
	})

	t.Run("Blank Send Is Skipped", func(t *testing.T) {
		body, _ := json.Marshal(dto.SendChatRequest{Message: "   "})
		req := httptest.NewRequest("POST", "/api/chat/send", strings.NewReader(string(body)))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+token)
		resp, _ := app.Test(req, -1)
		assert.Equal(t, 200, resp.StatusCode)

		var res serverutils.BaseResponse[dto.SendChatResponse]
		json.NewDecoder(resp.Body).Decode(&res)
		assert.True(t, res.Data.Skipped)

		history := getHistory("")
		assert.Equal(t, 3, history.Total, "skipped turn must not be persisted")
	})

	t.Run("New Chat Then Show Previous", func(t *testing.T) {
		post("/api/chat/new")
		history := getHistory("")
		assert.Empty(t, history.Records)
		assert.Equal(t, 3, history.Total)
		assert.Equal(t, 3, history.VisibleFrom)

		post("/api/chat/show-previous")
		history = getHistory("")
		assert.Len(t, history.Records, 3)
		assert.Equal(t, 0, history.VisibleFrom)
	})

	t.Run("Clear History", func(t *testing.T) {
		req := httptest.NewRequest("DELETE", "/api/chat/history", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		resp, _ := app.Test(req, -1)
		assert.Equal(t, 200, resp.StatusCode)

		history := getHistory("")
		assert.Empty(t, history.Records)
		assert.Equal(t, 0, history.Total)
	})
}
