package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"go-shopcart/middleware"
	"go-shopcart/models"
	"go-shopcart/stores"
	"go-shopcart/utils"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

// UserController handles signup, login and profile requests
type UserController struct {
	Users  stores.UserStore
	Carts  stores.CartStore
	Tokens *utils.TokenService
	Email  *utils.EmailService
}

// NewUserController creates a new UserController. Email may be nil
// when outbound mail is not configured.
func NewUserController(users stores.UserStore, carts stores.CartStore, tokens *utils.TokenService, email *utils.EmailService) *UserController {
	return &UserController{Users: users, Carts: carts, Tokens: tokens, Email: email}
}

type signupRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Phone    string `json:"phone" validate:"omitempty,len=10,numeric"`
	Address  string `json:"address" validate:"omitempty"`
	Role     string `json:"role" validate:"omitempty,oneof=customer seller admin"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type updateProfileRequest struct {
	Name     string `json:"name" validate:"omitempty"`
	Password string `json:"password" validate:"omitempty,min=6"`
	Phone    string `json:"phone" validate:"omitempty,len=10,numeric"`
	Address  string `json:"address" validate:"omitempty"`
	Role     string `json:"role" validate:"omitempty,oneof=customer seller"`
}

// Signup registers a new user and returns a token for immediate login
func (uc *UserController) Signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if fieldErrors := utils.ValidateStruct(req); fieldErrors != nil {
		utils.WriteFieldErrors(w, fieldErrors)
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Error().Err(err).Msg("hashing password")
		utils.WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	role := req.Role
	if role == "" {
		role = models.RoleCustomer
	}

	user, err := uc.Users.Create(r.Context(), models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashedPassword),
		Phone:    req.Phone,
		Address:  req.Address,
		Role:     role,
	})
	if err != nil {
		if errors.Is(err, stores.ErrDuplicateEmail) {
			utils.WriteFieldErrors(w, []utils.FieldError{{Field: "email", Message: "Email already used"}})
			return
		}
		log.Error().Err(err).Msg("creating user")
		utils.WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	token, err := uc.Tokens.Generate(user)
	if err != nil {
		log.Error().Err(err).Msg("generating token")
		utils.WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if uc.Email != nil {
		if err := uc.Email.SendWelcomeEmail(user.Email, user.Name); err != nil {
			log.Warn().Err(err).Str("email", user.Email).Msg("sending welcome email")
		}
	}

	utils.WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "User created successfully",
		"token":   token,
		"user":    user.Public(),
	})
}

// Login authenticates a user and returns a fresh token
func (uc *UserController) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if fieldErrors := utils.ValidateStruct(req); fieldErrors != nil {
		utils.WriteFieldErrors(w, fieldErrors)
		return
	}

	user, err := uc.Users.FindByEmail(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, stores.ErrUserNotFound) {
			utils.WriteError(w, http.StatusBadRequest, "Invalid credentials")
			return
		}
		log.Error().Err(err).Msg("finding user")
		utils.WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid credentials")
		return
	}

	token, err := uc.Tokens.Generate(user)
	if err != nil {
		log.Error().Err(err).Msg("generating token")
		utils.WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"token": token,
		"user":  user.Public(),
	})
}

// Signout acknowledges sign-out. Tokens are stateless; the client
// discards its copy.
func (uc *UserController) Signout(w http.ResponseWriter, r *http.Request) {
	utils.WriteMessage(w, http.StatusOK, "Successfully signed out")
}

// GetProfile returns the authenticated user's record
func (uc *UserController) GetProfile(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFrom(r.Context())
	if !ok {
		utils.WriteError(w, http.StatusUnauthorized, "Authentication required")
		return
	}
	utils.WriteJSON(w, http.StatusOK, user)
}

// UpdateProfile applies the provided profile fields to the
// authenticated user
func (uc *UserController) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	current, ok := middleware.UserFrom(r.Context())
	if !ok {
		utils.WriteError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req updateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if fieldErrors := utils.ValidateStruct(req); fieldErrors != nil {
		utils.WriteFieldErrors(w, fieldErrors)
		return
	}

	// Re-fetch so the stored password hash is preserved on replace
	user, err := uc.Users.FindByID(r.Context(), current.ID)
	if err != nil {
		utils.WriteError(w, http.StatusNotFound, "User not found")
		return
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Password != "" {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Error().Err(err).Msg("hashing password")
			utils.WriteError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		user.Password = string(hashedPassword)
	}
	if req.Phone != "" {
		user.Phone = req.Phone
	}
	if req.Address != "" {
		user.Address = req.Address
	}
	if req.Role != "" {
		user.Role = req.Role
	}

	if err := uc.Users.Update(r.Context(), user); err != nil {
		log.Error().Err(err).Msg("updating user")
		utils.WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	user.Password = ""
	utils.WriteJSON(w, http.StatusOK, user)
}

// DeleteAccount removes the authenticated user and their cart
func (uc *UserController) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFrom(r.Context())
	if !ok {
		utils.WriteError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	if err := uc.Users.Delete(r.Context(), user.ID); err != nil {
		if errors.Is(err, stores.ErrUserNotFound) {
			utils.WriteError(w, http.StatusNotFound, "User not found")
			return
		}
		log.Error().Err(err).Msg("deleting user")
		utils.WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if err := uc.Carts.Delete(r.Context(), user.ID); err != nil {
		log.Warn().Err(err).Str("user", user.ID.Hex()).Msg("deleting cart for removed account")
	}

	utils.WriteMessage(w, http.StatusOK, "Account deleted")
}
