package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/skycast-io/skycast/api/http/presenter"
	"github.com/skycast-io/skycast/pkg/auth"
	"github.com/skycast-io/skycast/pkg/security/jwt"
	"github.com/skycast-io/skycast/pkg/security/revocation"
)

const tokenCookie = "jwt"

type AuthHandler struct {
	useCase  auth.AuthUseCase
	tokens   *jwt.Generator
	denylist revocation.Denylist
}

func NewAuthHandler(useCase auth.AuthUseCase, tokens *jwt.Generator, denylist revocation.Denylist) *AuthHandler {
	return &AuthHandler{useCase: useCase, tokens: tokens, denylist: denylist}
}

type registerRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	City     string `json:"city"`
}

// Register handles user registration.
// @Summary Register user
// @Tags    auth
// @Accept  json
// @Produce json
// @Param   input body registerRequest true "registration payload"
// @Success 201 {object} map[string]any
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusNotFound, "⚠️ Fill required all user details for registration")
	}
	if strings.TrimSpace(req.Username) == "" || req.Password == "" || strings.TrimSpace(req.City) == "" {
		return presenter.Error(c, http.StatusNotFound, "⚠️ Fill required all user details for registration")
	}

	result, err := h.useCase.Register(c.Context(), req.Username, req.Password, req.City)
	if err != nil {
		switch err {
		case auth.ErrValidation:
			return presenter.Error(c, http.StatusNotFound, "⚠️ Fill required all user details for registration")
		case auth.ErrUserAlreadyExists:
			return presenter.Error(c, http.StatusBadRequest, "User already exists")
		default:
			return presenter.Error(c, http.StatusInternalServerError, "⚙️ Due to internal server error user not registered!")
		}
	}

	h.setTokenCookie(c, result.Token)
	return presenter.JSON(c, http.StatusCreated, fiber.Map{
		"message": "✅ User successfully registered!",
		"data":    result.User,
		"JWToken": result.Token,
	})
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login handles user login.
// @Summary Login
// @Tags    auth
// @Accept  json
// @Produce json
// @Param   input body loginRequest true "login payload"
// @Success 200 {object} map[string]any
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusNotFound, "⚠️ Fill required all user details for login")
	}
	if strings.TrimSpace(req.Username) == "" || req.Password == "" {
		return presenter.Error(c, http.StatusNotFound, "⚠️ Fill required all user details for login")
	}

	result, err := h.useCase.Login(c.Context(), req.Username, req.Password)
	if err != nil {
		switch err {
		case auth.ErrNotFound:
			return presenter.Error(c, http.StatusNotFound, "👤 User not found!")
		case auth.ErrCredentialMismatch:
			return presenter.Error(c, http.StatusNotFound, "⚠️ Please check password")
		default:
			return presenter.Error(c, http.StatusInternalServerError, "⚙️ Internal server error")
		}
	}

	h.setTokenCookie(c, result.Token)
	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"message": "✅ User logged in successfully",
		"data":    result.User,
		"JWtoken": result.Token,
	})
}

// Logout clears the token cookie. When a denylist is configured the
// presented token's id is revoked for its remaining lifetime, otherwise the
// token simply stays valid server-side until exp.
// @Summary Logout
// @Tags    auth
// @Produce json
// @Success 200 {object} map[string]string
// @Router  /logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if tokenStr := h.bearerToken(c); tokenStr != "" {
		if claims, err := h.tokens.Parse(tokenStr); err == nil && claims.ExpiresAt != nil {
			remaining := time.Until(claims.ExpiresAt.Time)
			// Best effort: a failed revoke must not block logout.
			_ = h.denylist.Revoke(c.Context(), claims.ID, remaining)
		}
	}

	c.Cookie(&fiber.Cookie{
		Name:     tokenCookie,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteStrictMode,
	})
	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"message": "✅ User logged out successfully",
	})
}

// Identity returns the claims attached by the auth middleware.
// @Summary Current identity
// @Tags    auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]any
// @Failure 401 {object} map[string]string
// @Router  / [get]
func (h *AuthHandler) Identity(c *fiber.Ctx) error {
	claims, ok := c.Locals(jwt.ClaimsKey).(*jwt.Claims)
	if !ok {
		return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid Token"})
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{"data": claims})
}

// bearerToken extracts the raw token from the cookie or, failing that, the
// Authorization header.
func (h *AuthHandler) bearerToken(c *fiber.Ctx) string {
	if v := c.Cookies(tokenCookie); v != "" {
		return v
	}
	authHeader := c.Get("Authorization")
	if _, tokenStr, found := strings.Cut(authHeader, " "); found {
		return strings.TrimSpace(tokenStr)
	}
	return strings.TrimSpace(authHeader)
}

func (h *AuthHandler) setTokenCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     tokenCookie,
		Value:    token,
		Expires:  time.Now().Add(h.tokens.TTL()),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteStrictMode,
	})
}
