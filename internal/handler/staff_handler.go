package handler

import (
	"encoding/base64"
	"fmt"
	"net/url"
	"strconv"

	"tvh-attendance-backend/config"
	"tvh-attendance-backend/internal/model"
	"tvh-attendance-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	qrcode "github.com/skip2/go-qrcode"
	"golang.org/x/crypto/bcrypt"
)

type StaffHandler struct {
	repo repository.StaffRepository
}

func NewStaffHandler(repo repository.StaffRepository) *StaffHandler {
	return &StaffHandler{repo: repo}
}

type staffRequest struct {
	StaffID          string `json:"staffId"`
	Name             string `json:"name"`
	Designation      string `json:"designation"`
	Department       string `json:"department"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	JoiningDate      string `json:"joiningDate"`
	Shift            string `json:"shift"`
	Gender           string `json:"gender"`
	Address          string `json:"address"`
	EmergencyContact string `json:"emergencyContact"`
	BloodGroup       string `json:"bloodGroup"`
	DateOfBirth      string `json:"dateOfBirth"`
	Status           string `json:"status"`
	Salary           string `json:"salary"`
	Password         string `json:"password"` // plain text; hashed before storage
	RegenerateQR     bool   `json:"regenerateQR"`
}

// clientURL is where the punch page lives; the QR encodes a prefilled link
// into it.
func clientURL() string {
	return config.GetEnv("CLIENT_URL", "http://localhost:5173")
}

func punchQR(staffID, name string) (string, error) {
	data := fmt.Sprintf("%s/?staffId=%s&name=%s", clientURL(), url.QueryEscape(staffID), url.QueryEscape(name))
	png, err := qrcode.Encode(data, qrcode.Medium, 256)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}

// Add upserts a staff record keyed by staffId and regenerates its punch QR.
func (h *StaffHandler) Add(c *fiber.Ctx) error {
	var req staffRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}

	if req.StaffID == "" || req.Name == "" || req.Designation == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Missing required fields: Staff ID, Name, and Designation are mandatory.",
		})
	}

	qr, err := punchQR(req.StaffID, req.Name)
	if err != nil {
		return respondError(c, err)
	}

	existing, err := h.repo.FindByStaffID(req.StaffID)
	isNew := repository.IsNotFound(err)
	if err != nil && !isNew {
		return respondError(c, err)
	}

	staff := existing
	if isNew {
		staff = &model.Staff{}
	}
	applyStaffFields(staff, &req)
	staff.QRCode = qr

	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return respondError(c, err)
		}
		staff.Password = string(hash)
	}

	if isNew {
		if err := h.repo.Create(staff); err != nil {
			return respondError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(staff)
	}
	if err := h.repo.Update(staff); err != nil {
		return respondError(c, err)
	}
	return c.JSON(staff)
}

func (h *StaffHandler) Update(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid staff id"})
	}

	var req staffRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}

	staff, err := h.repo.FindByID(uint(id))
	if err != nil {
		if repository.IsNotFound(err) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Staff not found"})
		}
		return respondError(c, err)
	}

	// Guard: the new staffId must not belong to anyone else.
	if req.StaffID != "" && req.StaffID != staff.StaffID {
		taken, err := h.repo.StaffIDTaken(req.StaffID, staff.ID)
		if err != nil {
			return respondError(c, err)
		}
		if taken {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "This Staff ID is already assigned to someone else",
			})
		}
	}

	needsQR := req.RegenerateQR ||
		(req.Name != "" && req.Name != staff.Name) ||
		(req.StaffID != "" && req.StaffID != staff.StaffID)

	applyStaffFields(staff, &req)

	if needsQR {
		qr, err := punchQR(staff.StaffID, staff.Name)
		if err != nil {
			return respondError(c, err)
		}
		staff.QRCode = qr
	}

	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return respondError(c, err)
		}
		staff.Password = string(hash)
	}

	if err := h.repo.Update(staff); err != nil {
		return respondError(c, err)
	}
	return c.JSON(staff)
}

func (h *StaffHandler) GetAll(c *fiber.Ctx) error {
	list, err := h.repo.GetAll()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

func (h *StaffHandler) GetByStaffID(c *fiber.Ctx) error {
	staff, err := h.repo.FindByStaffID(c.Params("staffId"))
	if err != nil {
		if repository.IsNotFound(err) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Staff not found"})
		}
		return respondError(c, err)
	}
	return c.JSON(staff)
}

func (h *StaffHandler) Delete(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid staff id"})
	}
	if err := h.repo.Delete(uint(id)); err != nil {
		if repository.IsNotFound(err) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Staff not found"})
		}
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Staff removed"})
}

// SystemQR returns a QR pointing at the punch page itself, for printing at
// the office entrance.
func (h *StaffHandler) SystemQR(c *fiber.Ctx) error {
	data := clientURL() + "/"
	png, err := qrcode.Encode(data, qrcode.Medium, 256)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"qrCode": "data:image/png;base64," + base64.StdEncoding.EncodeToString(png),
		"url":    data,
	})
}

func applyStaffFields(staff *model.Staff, req *staffRequest) {
	if req.StaffID != "" {
		staff.StaffID = req.StaffID
	}
	if req.Name != "" {
		staff.Name = req.Name
	}
	if req.Designation != "" {
		staff.Designation = req.Designation
	}
	if req.Department != "" {
		staff.Department = req.Department
	}
	if req.Email != "" {
		staff.Email = req.Email
	}
	if req.Phone != "" {
		staff.Phone = req.Phone
	}
	if req.JoiningDate != "" {
		staff.JoiningDate = req.JoiningDate
	}
	if req.Shift != "" {
		staff.Shift = req.Shift
	}
	if req.Gender != "" {
		staff.Gender = req.Gender
	}
	if req.Address != "" {
		staff.Address = req.Address
	}
	if req.EmergencyContact != "" {
		staff.EmergencyContact = req.EmergencyContact
	}
	if req.BloodGroup != "" {
		staff.BloodGroup = req.BloodGroup
	}
	if req.DateOfBirth != "" {
		staff.DateOfBirth = req.DateOfBirth
	}
	if req.Status != "" {
		staff.Status = req.Status
	}
	if req.Salary != "" {
		staff.Salary = req.Salary
	}
}
