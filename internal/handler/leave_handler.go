package handler

import (
	"strconv"

	"tvh-attendance-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type LeaveHandler struct {
	svc *usecase.LeaveService
}

func NewLeaveHandler(svc *usecase.LeaveService) *LeaveHandler {
	return &LeaveHandler{svc: svc}
}

type applyLeaveRequest struct {
	StaffID   string `json:"staffId"`
	LeaveType string `json:"leaveType"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Reason    string `json:"reason"`
}

func (h *LeaveHandler) Apply(c *fiber.Ctx) error {
	var req applyLeaveRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}

	leave, err := h.svc.Apply(usecase.ApplyLeaveInput{
		StaffID:   req.StaffID,
		LeaveType: req.LeaveType,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Reason:    req.Reason,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Leave request submitted successfully",
		"data":    leave,
	})
}

func (h *LeaveHandler) List(c *fiber.Ctx) error {
	leaves, err := h.svc.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(leaves)
}

type decideLeaveRequest struct {
	Status string `json:"status"` // "Approved" or "Rejected"
}

func (h *LeaveHandler) Decide(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid leave id"})
	}

	var req decideLeaveRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}

	leave, err := h.svc.Decide(uint(id), req.Status)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Leave " + leave.Status + " successfully",
		"data":    leave,
	})
}

func (h *LeaveHandler) Delete(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid leave id"})
	}
	if err := h.svc.Delete(uint(id)); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Leave request removed"})
}
