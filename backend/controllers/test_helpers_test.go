package controllers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"marketplace/backend/config"
	"marketplace/backend/models"
	"marketplace/backend/routes"
	"marketplace/backend/utils"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const testPassword = "password123"

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB, *config.Config) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("could not open test database: %v", err)
	}
	if err := utils.Migrate(db); err != nil {
		t.Fatalf("could not migrate test database: %v", err)
	}

	cfg := &config.Config{
		JWTSecret: "testsecret",
		UploadDir: t.TempDir(),
	}

	app := fiber.New()
	routes.SetupRoutes(app, db, cfg)

	return app, db, cfg
}

func createUser(t *testing.T, db *gorm.DB, name, email string, educator, admin bool) models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("could not hash password: %v", err)
	}

	user := models.User{
		Name:       name,
		Email:      email,
		Password:   string(hash),
		IsEducator: educator,
		IsAdmin:    admin,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("could not create user: %v", err)
	}
	return user
}

func tokenFor(t *testing.T, cfg *config.Config, userID uint) string {
	t.Helper()

	token, err := utils.GenerateJWTToken(userID, cfg)
	if err != nil {
		t.Fatalf("could not generate token: %v", err)
	}
	return token
}

func doRequest(t *testing.T, app *fiber.App, method, path string, body interface{}, token string) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("could not marshal request body: %v", err)
		}
		reader = bytes.NewBuffer(jsonData)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	return resp
}

func decodeInto(t *testing.T, resp *http.Response, target interface{}) {
	t.Helper()

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		t.Fatalf("could not decode response body: %v", err)
	}
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()

	var result map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("could not decode response body: %v", err)
	}
	return result
}
