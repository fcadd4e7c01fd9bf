package handlers

import (
	"errors"
	"log"

	"lavka/internal/middleware"
	"lavka/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles HTTP requests for signup, login and logout.
type AuthHandler struct {
	authService *services.AuthService
	validate    *validator.Validate
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		validate:    validator.New(),
	}
}

// RegisterRoutes registers the auth routes. Logout requires a bearer
// token, so it runs behind the supplied auth middleware.
func (h *AuthHandler) RegisterRoutes(router fiber.Router, authRequired fiber.Handler) {
	router.Post("/signup", h.HandleSignup)
	router.Post("/login", h.HandleLogin)
	router.Get("/logout", authRequired, h.HandleLogout)
}

// SignupRequest represents the request body for signup.
type SignupRequest struct {
	Fio      string `json:"fio" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// HandleSignup registers a new user and returns a bearer token.
func (h *AuthHandler) HandleSignup(c *fiber.Ctx) error {
	var req SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return fieldErrorResponse(c, map[string]string{"body": "malformed request body"})
	}
	if err := h.validate.Struct(req); err != nil {
		return validationResponse(c, err)
	}

	token, err := h.authService.Signup(req.Fio, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			return fieldErrorResponse(c, map[string]string{"email": "already registered"})
		}
		log.Printf("signup failed for %s: %v", req.Email, err)
		return errorResponse(c, fiber.StatusInternalServerError, "could not register user")
	}

	return dataResponse(c, fiber.StatusCreated, fiber.Map{"user_token": token})
}

// LoginRequest represents the request body for login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// HandleLogin verifies credentials and returns the active bearer token.
func (h *AuthHandler) HandleLogin(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fieldErrorResponse(c, map[string]string{"body": "malformed request body"})
	}
	if err := h.validate.Struct(req); err != nil {
		return validationResponse(c, err)
	}

	token, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return errorResponse(c, fiber.StatusUnauthorized, "Authentication failed")
		}
		log.Printf("login failed for %s: %v", req.Email, err)
		return errorResponse(c, fiber.StatusInternalServerError, "could not log in")
	}

	return dataResponse(c, fiber.StatusOK, fiber.Map{"user_token": token})
}

// HandleLogout revokes the caller's bearer token.
func (h *AuthHandler) HandleLogout(c *fiber.Ctx) error {
	user := middleware.UserFromCtx(c)
	if err := h.authService.Logout(user.ID); err != nil {
		log.Printf("logout failed for user %s: %v", user.ID, err)
		return errorResponse(c, fiber.StatusInternalServerError, "could not log out")
	}
	return dataResponse(c, fiber.StatusOK, fiber.Map{"messages": "logout"})
}
