package handler

import (
	"bytes"
	"encoding/csv"

	"tvh-attendance-backend/internal/repository"
	"tvh-attendance-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type AttendanceHandler struct {
	svc  *usecase.AttendanceService
	repo repository.AttendanceRepository
}

func NewAttendanceHandler(svc *usecase.AttendanceService, repo repository.AttendanceRepository) *AttendanceHandler {
	return &AttendanceHandler{svc: svc, repo: repo}
}

type markAttendanceRequest struct {
	StaffID  string `json:"staffId"`
	Name     string `json:"name"`
	Photo    string `json:"photo"`
	Type     string `json:"type"` // "In"/"Out" from the UI toggle, optional
	Location *struct {
		Latitude  *float64 `json:"latitude"`
		Longitude *float64 `json:"longitude"`
		Accuracy  float64  `json:"accuracy"`
	} `json:"location"`
	Device *struct {
		UserAgent string `json:"userAgent"`
		Hash      string `json:"hash"`
	} `json:"device"`
}

func (h *AttendanceHandler) Mark(c *fiber.Ctx) error {
	var req markAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}

	input := usecase.SubmitAttendanceInput{
		StaffID: req.StaffID,
		Name:    req.Name,
		Photo:   req.Photo,
		Type:    req.Type,
	}
	if req.Location != nil {
		input.Location = &usecase.SubmitLocation{
			Latitude:  req.Location.Latitude,
			Longitude: req.Location.Longitude,
			Accuracy:  req.Location.Accuracy,
		}
	}
	if req.Device != nil {
		input.Device = &usecase.SubmitDevice{
			UserAgent: req.Device.UserAgent,
			Hash:      req.Device.Hash,
		}
	}

	att, message, err := h.svc.Submit(input)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": message,
		"data":    att,
	})
}

func (h *AttendanceHandler) List(c *fiber.Ctx) error {
	logs, err := h.repo.GetAll()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(logs)
}

// Export streams the full log as CSV. Date and time columns are the stored
// reporting-timezone renderings.
func (h *AttendanceHandler) Export(c *fiber.Ctx) error {
	logs, err := h.repo.GetAll()
	if err != nil {
		return respondError(c, err)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Write([]string{"staffId", "staffName", "date", "time", "status", "type"})
	for _, entry := range logs {
		w.Write([]string{entry.StaffID, entry.StaffName, entry.Date, entry.Time, entry.Status, entry.Type})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return respondError(c, err)
	}

	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="attendance-report.csv"`)
	return c.Send(buf.Bytes())
}

func (h *AttendanceHandler) TodayStats(c *fiber.Ctx) error {
	stats, err := h.svc.TodayStats()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Dashboard stats",
		"data":    stats,
	})
}
