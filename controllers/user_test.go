package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-shopcart/models"
	"go-shopcart/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserFixture() (*UserController, *memoryUserStore, *utils.TokenService) {
	users := newMemoryUserStore()
	carts := newMemoryCartStore()
	tokens := utils.NewTokenService([]byte("test-secret"))
	return NewUserController(users, carts, tokens, nil), users, tokens
}

func postJSON(handler http.HandlerFunc, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	json.NewEncoder(&buf).Encode(body)
	req := httptest.NewRequest("POST", path, &buf)
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

type authResponse struct {
	Token string            `json:"token"`
	User  models.PublicUser `json:"user"`
}

func TestSignupThenLogin(t *testing.T) {
	uc, _, tokens := newUserFixture()

	rec := postJSON(uc.Signup, "/auth/signup", map[string]string{
		"name": "Alice", "email": "a@x.com", "password": "secret1",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var signup authResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &signup))
	require.NotEmpty(t, signup.Token)
	assert.Equal(t, models.RoleCustomer, signup.User.Role)

	rec = postJSON(uc.Login, "/auth/login", map[string]string{
		"email": "a@x.com", "password": "secret1",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var login authResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &login))

	// Both tokens must resolve to the same subject
	signupClaims, err := tokens.Verify(signup.Token)
	require.NoError(t, err)
	loginClaims, err := tokens.Verify(login.Token)
	require.NoError(t, err)
	assert.Equal(t, signupClaims.UserID, loginClaims.UserID)
}

func TestLoginWrongPassword(t *testing.T) {
	uc, _, _ := newUserFixture()

	postJSON(uc.Signup, "/auth/signup", map[string]string{
		"name": "Alice", "email": "a@x.com", "password": "secret1",
	})

	rec := postJSON(uc.Login, "/auth/login", map[string]string{
		"email": "a@x.com", "password": "wrong-password",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid credentials")
}

func TestLoginUnknownEmail(t *testing.T) {
	uc, _, _ := newUserFixture()

	rec := postJSON(uc.Login, "/auth/login", map[string]string{
		"email": "nobody@x.com", "password": "secret1",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid credentials")
}

func TestSignupDuplicateEmail(t *testing.T) {
	uc, _, _ := newUserFixture()

	rec := postJSON(uc.Signup, "/auth/signup", map[string]string{
		"name": "Alice", "email": "a@x.com", "password": "secret1",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = postJSON(uc.Signup, "/auth/signup", map[string]string{
		"name": "Alice Again", "email": "a@x.com", "password": "secret2",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Email already used")
}

func TestSignupValidation(t *testing.T) {
	uc, _, _ := newUserFixture()

	rec := postJSON(uc.Signup, "/auth/signup", map[string]string{
		"name": "Alice", "email": "not-an-email", "password": "short",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body struct {
		Errors []utils.FieldError `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body.Errors, 2)
}

func TestSignupStoresHashedPassword(t *testing.T) {
	uc, users, _ := newUserFixture()

	rec := postJSON(uc.Signup, "/auth/signup", map[string]string{
		"name": "Alice", "email": "a@x.com", "password": "secret1",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	for _, user := range users.users {
		assert.NotEmpty(t, user.Password)
		assert.NotEqual(t, "secret1", user.Password)
	}
}

func TestSignupWithExplicitRole(t *testing.T) {
	uc, _, _ := newUserFixture()

	rec := postJSON(uc.Signup, "/auth/signup", map[string]string{
		"name": "Bob", "email": "b@x.com", "password": "secret1", "role": "seller",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var signup authResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &signup))
	assert.Equal(t, models.RoleSeller, signup.User.Role)
}

func TestSignupRejectsUnknownRole(t *testing.T) {
	uc, _, _ := newUserFixture()

	rec := postJSON(uc.Signup, "/auth/signup", map[string]string{
		"name": "Eve", "email": "e@x.com", "password": "secret1", "role": "superuser",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
