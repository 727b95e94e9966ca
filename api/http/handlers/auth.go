package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/campushub/clubevents/api/http/presenter"
	"github.com/campushub/clubevents/pkg/directory"
)

type AuthHandler struct {
	users directory.UseCase
}

func NewAuthHandler(users directory.UseCase) *AuthHandler {
	return &AuthHandler{users: users}
}

type signupRequest struct {
	Name        string `json:"name"`
	Gender      string `json:"gender"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Password    string `json:"password"`
}

// Signup handles account creation.
// @Summary Create account
// @Tags    auth
// @Accept  json
// @Produce json
// @Param   input body signupRequest true "signup payload"
// @Success 201 {object} presenter.MessageResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 409 {object} presenter.ErrorResponse
// @Router  /signup [post]
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var req signupRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return presenter.Error(c, http.StatusBadRequest, "name, email and password are required")
	}

	_, err := h.users.Create(c.Context(), directory.NewUserInput{
		Name:        req.Name,
		Gender:      req.Gender,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Password:    req.Password,
	})
	if err != nil {
		if errors.Is(err, directory.ErrDuplicateEmail) {
			return presenter.Error(c, http.StatusConflict, "user with this email already exists")
		}
		return presenter.Internal(c, "error during user registration", err)
	}

	return presenter.Message(c, http.StatusCreated, "user created successfully")
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login verifies credentials and returns the public profile. Both credential
// failures answer 401; the messages stay distinguishable.
// @Summary Login
// @Tags    auth
// @Accept  json
// @Produce json
// @Param   input body loginRequest true "login payload"
// @Success 200 {object} map[string]any
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 401 {object} presenter.ErrorResponse
// @Router  /login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return presenter.Error(c, http.StatusBadRequest, "email and password are required")
	}

	profile, err := h.users.Authenticate(c.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, directory.ErrUnknownEmail):
			return presenter.Error(c, http.StatusUnauthorized, "invalid credentials (email not found)")
		case errors.Is(err, directory.ErrWrongPassword):
			return presenter.Error(c, http.StatusUnauthorized, "invalid credentials (wrong password)")
		default:
			return presenter.Internal(c, "error during login", err)
		}
	}

	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"message": "login successful",
		"user":    profile,
	})
}
