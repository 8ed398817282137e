package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/JeongHyeonYang123/RealAssetPJT/internal/auth/dto"
	"github.com/JeongHyeonYang123/RealAssetPJT/internal/auth/service"
	autherror "github.com/JeongHyeonYang123/RealAssetPJT/internal/errors"
	"github.com/JeongHyeonYang123/RealAssetPJT/internal/metrics"
	"github.com/JeongHyeonYang123/RealAssetPJT/pkg/constant"
)

type AuthHandler struct {
	userService *service.UserService
	metrics     *metrics.Collector
}

func NewAuthHandler(userService *service.UserService, m *metrics.Collector) *AuthHandler {
	return &AuthHandler{userService: userService, metrics: m}
}

// Login issues a token pair. A malformed body fails exactly like wrong
// credentials, before any store access.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input dto.LoginInput
	if err := c.BodyParser(&input); err != nil {
		h.metrics.RecordLogin(metrics.OutcomeFailure)
		return autherror.ErrInvalidCredentials
	}

	resp, err := h.userService.Login(c.UserContext(), input)
	if err != nil {
		h.metrics.RecordLogin(metrics.OutcomeFailure)
		return err
	}

	h.metrics.RecordLogin(metrics.OutcomeSuccess)

	return c.Status(fiber.StatusOK).JSON(resp)
}

func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	presented := c.Get(constant.RefreshTokenHeader)
	if presented == "" {
		return fiber.NewError(fiber.StatusBadRequest, "refresh token is required")
	}

	pair, err := h.userService.Refresh(c.UserContext(), presented)
	if err != nil {
		if errors.Is(err, autherror.ErrTokenMismatch) {
			h.metrics.RecordRotation(metrics.OutcomeMismatch)
		} else {
			h.metrics.RecordRotation(metrics.OutcomeInvalid)
		}
		return err
	}

	h.metrics.RecordRotation(metrics.OutcomeSuccess)

	return c.Status(fiber.StatusOK).JSON(dto.TokenResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	})
}

// Logout clears the session slot and returns an empty pair, so clients can
// unconditionally overwrite their stored tokens.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	presented := c.Get(constant.RefreshTokenHeader)
	if presented == "" {
		return fiber.NewError(fiber.StatusBadRequest, "refresh token is required")
	}

	if err := h.userService.Logout(c.UserContext(), presented); err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(dto.TokenResponse{})
}
