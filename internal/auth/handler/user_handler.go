package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/JeongHyeonYang123/RealAssetPJT/internal/auth/dto"
	"github.com/JeongHyeonYang123/RealAssetPJT/internal/auth/service"
	autherror "github.com/JeongHyeonYang123/RealAssetPJT/internal/errors"
	"github.com/JeongHyeonYang123/RealAssetPJT/internal/middleware"
)

type UserHandler struct {
	userService *service.UserService
}

func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) Register(c *fiber.Ctx) error {
	var input dto.RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid input")
	}

	if input.Email == "" || len(input.Password) < 8 || input.Name == "" {
		return fiber.NewError(fiber.StatusBadRequest, "invalid input")
	}

	user, err := h.userService.Register(c.UserContext(), input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"mno":   user.Mno,
		"email": user.Email,
	})
}

func (h *UserHandler) Me(c *fiber.Ctx) error {
	user := middleware.Identity(c)
	if user == nil {
		return autherror.ErrUnauthenticated
	}

	return c.Status(fiber.StatusOK).JSON(dto.NewUserOutput(user))
}

func (h *UserHandler) ListUsers(c *fiber.Ctx) error {
	users, err := h.userService.ListUsers(c.UserContext())
	if err != nil {
		return err
	}

	out := make([]dto.UserOutput, 0, len(users))
	for i := range users {
		out = append(out, dto.NewUserOutput(&users[i]))
	}

	return c.Status(fiber.StatusOK).JSON(out)
}

func (h *UserHandler) UpdateUserRole(c *fiber.Ctx) error {
	mno, err := c.ParamsInt("mno")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid user id")
	}

	var input dto.UpdateRoleInput
	if err := c.BodyParser(&input); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid input")
	}

	if err := h.userService.UpdateUserRole(c.UserContext(), mno, input.Role); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusOK)
}
