package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"sanjab/internal/services/auth"
	"sanjab/internal/utils"
)

type AuthHandler struct {
	authService auth.Service
}

func NewAuthHandler(authService auth.Service) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// RequestOTP sends a one-time login code to the merchant's phone.
func (h *AuthHandler) RequestOTP(c *fiber.Ctx) error {
	var input struct {
		PhoneNumber string `json:"phoneNumber"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request format")
	}
	if input.PhoneNumber == "" {
		return utils.BadRequest(c, "phoneNumber is required")
	}

	expiresAt, err := h.authService.RequestOTP(c.Context(), input.PhoneNumber)
	if err != nil {
		return utils.InternalError(c, "Failed to issue code")
	}

	return utils.Success(c, fiber.Map{
		"expireDate": expiresAt,
	})
}

// VerifyOTP exchanges a one-time code for a token pair.
func (h *AuthHandler) VerifyOTP(c *fiber.Ctx) error {
	var input struct {
		PhoneNumber string `json:"phoneNumber"`
		Code        string `json:"code"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request format")
	}
	if input.PhoneNumber == "" || input.Code == "" {
		return utils.BadRequest(c, "phoneNumber and code are required")
	}

	merchant, accessToken, refreshToken, err := h.authService.VerifyOTP(c.Context(), input.PhoneNumber, input.Code)
	if err != nil {
		if errors.Is(err, auth.ErrOTPNotFound) || errors.Is(err, auth.ErrOTPMismatch) {
			return utils.Unauthorized(c, "invalid code")
		}
		return utils.InternalError(c, "Failed to verify code")
	}

	return utils.Success(c, fiber.Map{
		"token":        accessToken,
		"refreshToken": refreshToken,
		"merchant":     merchant,
	})
}

// Refresh issues a new token pair from a refresh token.
func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	var input struct {
		RefreshToken string `json:"refreshToken"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request format")
	}

	accessToken, refreshToken, err := h.authService.RefreshTokens(input.RefreshToken)
	if err != nil {
		return utils.Unauthorized(c, "invalid refresh token")
	}

	return utils.Success(c, fiber.Map{
		"token":        accessToken,
		"refreshToken": refreshToken,
	})
}

// Logout invalidates all outstanding tokens for the merchant.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	claims, err := extractMerchantClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	if err := h.authService.Logout(claims.MerchantID); err != nil {
		return utils.InternalError(c, "Failed to log out")
	}
	return utils.Success(c, fiber.Map{"message": "logged out"})
}
