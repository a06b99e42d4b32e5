package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/meinhoongagan/pharmacy-portal/middleware"
	"github.com/meinhoongagan/pharmacy-portal/models"
	"github.com/meinhoongagan/pharmacy-portal/utils"
)

type sessionResponse struct {
	Token        string          `json:"token"`
	RefreshToken string          `json:"refreshToken"`
	ExpiresAt    string          `json:"expiresAt"`
	Session      *models.Session `json:"session"`
}

// Login godoc
// @Summary Sign in as a pharmacy, hospital, branch or doctor
// @Tags auth
// @Accept json
// @Produce json
// @Param kind path string true "Account kind"
// @Success 200 {object} sessionResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Router /auth/login/{kind} [post]
func (h *Handler) Login(c *fiber.Ctx) error {
	kind, err := models.ParseAccountKind(c.Params("kind"))
	if err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, "Unknown account type", err)
	}

	type LoginInput struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	input := new(LoginInput)
	if err := c.BodyParser(input); err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, "Cannot parse JSON", err)
	}
	if input.Email == "" || input.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Missing required fields",
		})
	}

	sess, tokens, err := h.Sessions.Login(c.UserContext(), kind, input.Email, input.Password)
	if err != nil {
		return h.fail(c, err, "Login failed")
	}

	return c.JSON(sessionResponse{
		Token:        tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		ExpiresAt:    tokens.ExpiresAt.UTC().Format(timeFormat),
		Session:      sess,
	})
}

// RefreshToken exchanges a refresh token for a new token pair.
func (h *Handler) RefreshToken(c *fiber.Ctx) error {
	type RefreshRequest struct {
		RefreshToken string `json:"refreshToken"`
	}
	req := new(RefreshRequest)
	if err := c.BodyParser(req); err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, "Cannot parse JSON", err)
	}

	sess, tokens, err := h.Sessions.Refresh(c.UserContext(), req.RefreshToken)
	if err != nil {
		return h.fail(c, err, "Invalid refresh token")
	}

	return c.JSON(sessionResponse{
		Token:        tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		ExpiresAt:    tokens.ExpiresAt.UTC().Format(timeFormat),
		Session:      sess,
	})
}

// Logout ends the current session and drops its cached data.
func (h *Handler) Logout(c *fiber.Ctx) error {
	sess := middleware.CurrentSession(c)
	if err := h.Sessions.Logout(c.UserContext(), sess.ID); err != nil {
		return h.fail(c, err, "Failed to log out")
	}
	h.Profiles.Forget(c.UserContext(), sess)

	return c.JSON(fiber.Map{
		"message": "Successfully logged out",
	})
}

// Me returns the current session.
func (h *Handler) Me(c *fiber.Ctx) error {
	return c.JSON(middleware.CurrentSession(c))
}
