package handler

import (
	"tvh-attendance-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	svc *usecase.AuthService
}

func NewAuthHandler(svc *usecase.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

type loginRequest struct {
	StaffID  string `json:"staffId"`
	Password string `json:"password"`
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}

	token, staff, err := h.svc.Login(req.StaffID, req.Password)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"token": token,
		"staff": fiber.Map{
			"id":         staff.ID,
			"staffId":    staff.StaffID,
			"name":       staff.Name,
			"department": staff.Department,
		},
	})
}
