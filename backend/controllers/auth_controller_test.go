package controllers_test

import (
	"testing"

	"marketplace/backend/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestRegister(t *testing.T) {
	app, _, _ := newTestApp(t)

	resp := doRequest(t, app, "POST", "/api/users", map[string]string{
		"name":     "New User",
		"email":    "newuser@example.com",
		"password": "password123",
	}, "")
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	result := decodeBody(t, resp)
	assert.NotEmpty(t, result["token"])
	assert.Equal(t, "New User", result["name"])
	assert.Equal(t, "newuser@example.com", result["email"])
	assert.Equal(t, false, result["isEducator"])
	assert.Equal(t, false, result["isAdmin"])
	assert.NotContains(t, result, "password")
	assert.NotContains(t, result, "Password")
}

func TestRegisterDuplicateEmail(t *testing.T) {
	app, db, _ := newTestApp(t)

	body := map[string]string{
		"name":     "First",
		"email":    "x@y.com",
		"password": "password123",
	}
	resp := doRequest(t, app, "POST", "/api/users", body, "")
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	body["name"] = "Second"
	resp = doRequest(t, app, "POST", "/api/users", body, "")
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	result := decodeBody(t, resp)
	assert.Equal(t, "User already exists", result["message"])

	// The second account was never created
	var count int64
	db.Model(&models.User{}).Where("email = ?", "x@y.com").Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestRegisterMissingFields(t *testing.T) {
	app, _, _ := newTestApp(t)

	resp := doRequest(t, app, "POST", "/api/users", map[string]string{
		"email": "incomplete@example.com",
	}, "")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestLogin(t *testing.T) {
	app, db, _ := newTestApp(t)
	createUser(t, db, "Login User", "login@example.com", false, false)

	resp := doRequest(t, app, "POST", "/api/users/login", map[string]string{
		"email":    "login@example.com",
		"password": testPassword,
	}, "")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	result := decodeBody(t, resp)
	assert.NotEmpty(t, result["token"])
	assert.Equal(t, "Login User", result["name"])
}

func TestLoginFailureReasonsAreDistinct(t *testing.T) {
	app, db, _ := newTestApp(t)
	createUser(t, db, "Login User", "login@example.com", false, false)

	resp := doRequest(t, app, "POST", "/api/users/login", map[string]string{
		"email":    "nobody@example.com",
		"password": testPassword,
	}, "")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Invalid email", decodeBody(t, resp)["message"])

	resp = doRequest(t, app, "POST", "/api/users/login", map[string]string{
		"email":    "login@example.com",
		"password": "wrong-secret",
	}, "")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Invalid password", decodeBody(t, resp)["message"])
}
