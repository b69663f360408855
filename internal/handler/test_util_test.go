package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"tvh-attendance-backend/internal/model"
	"tvh-attendance-backend/internal/repository"
	"tvh-attendance-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type memAttendanceRepo struct {
	events []model.Attendance
}

func (m *memAttendanceRepo) Create(att *model.Attendance) error {
	att.ID = uint(len(m.events) + 1)
	m.events = append(m.events, *att)
	return nil
}

func (m *memAttendanceRepo) LastOfDay(staffID string, date string) (*model.Attendance, error) {
	var last *model.Attendance
	for i := range m.events {
		e := &m.events[i]
		if e.StaffID == staffID && e.Date == date {
			if last == nil || e.Timestamp.After(last.Timestamp) {
				last = e
			}
		}
	}
	return last, nil
}

func (m *memAttendanceRepo) GetAll() ([]model.Attendance, error) {
	out := make([]model.Attendance, len(m.events))
	copy(out, m.events)
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out, nil
}

func (m *memAttendanceRepo) CountByStatus(date string, status string) (int64, error) {
	var count int64
	for _, e := range m.events {
		if e.Date == date && e.Status == status {
			count++
		}
	}
	return count, nil
}

func (m *memAttendanceRepo) InTransaction(fn func(tx repository.AttendanceRepository) error) error {
	return fn(m)
}

type memStaffRepo struct {
	staff []model.Staff
}

func (m *memStaffRepo) Create(s *model.Staff) error {
	s.ID = uint(len(m.staff) + 1)
	m.staff = append(m.staff, *s)
	return nil
}

func (m *memStaffRepo) Update(s *model.Staff) error {
	for i := range m.staff {
		if m.staff[i].ID == s.ID {
			m.staff[i] = *s
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (m *memStaffRepo) FindByID(id uint) (*model.Staff, error) {
	for i := range m.staff {
		if m.staff[i].ID == id {
			found := m.staff[i]
			return &found, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *memStaffRepo) FindByStaffID(staffID string) (*model.Staff, error) {
	for i := range m.staff {
		if m.staff[i].StaffID == staffID {
			found := m.staff[i]
			return &found, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *memStaffRepo) StaffIDTaken(staffID string, excludeID uint) (bool, error) {
	for i := range m.staff {
		if m.staff[i].StaffID == staffID && m.staff[i].ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (m *memStaffRepo) GetAll() ([]model.Staff, error) { return m.staff, nil }

func (m *memStaffRepo) Delete(id uint) error {
	for i := range m.staff {
		if m.staff[i].ID == id {
			m.staff = append(m.staff[:i], m.staff[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (m *memStaffRepo) CountByStatus(status string) (int64, error) {
	var count int64
	for _, s := range m.staff {
		if s.Status == status {
			count++
		}
	}
	return count, nil
}

type memLeaveRepo struct {
	leaves []model.Leave
}

func (m *memLeaveRepo) Create(l *model.Leave) error {
	l.ID = uint(len(m.leaves) + 1)
	m.leaves = append(m.leaves, *l)
	return nil
}

func (m *memLeaveRepo) FindByID(id uint) (*model.Leave, error) {
	for i := range m.leaves {
		if m.leaves[i].ID == id {
			found := m.leaves[i]
			return &found, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *memLeaveRepo) Update(l *model.Leave) error {
	for i := range m.leaves {
		if m.leaves[i].ID == l.ID {
			m.leaves[i] = *l
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (m *memLeaveRepo) GetAll() ([]model.Leave, error) { return m.leaves, nil }

func (m *memLeaveRepo) Delete(id uint) error {
	for i := range m.leaves {
		if m.leaves[i].ID == id {
			m.leaves = append(m.leaves[:i], m.leaves[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

type noopNotifier struct{}

func (noopNotifier) EnqueueAttendance(*model.Attendance) {}
func (noopNotifier) EnqueueLeaveDecision(*model.Leave)   {}

type noopFeed struct{}

func (noopFeed) Broadcast(string, interface{}) {}

type memPhotoStore struct{}

func (memPhotoStore) Save(staffID string, data string) (string, error) {
	return "uploads/attendance/" + staffID + ".jpg", nil
}

func newAttendanceApp(policy usecase.PolicyConfig) (*fiber.App, *memAttendanceRepo) {
	repo := &memAttendanceRepo{}
	staffRepo := &memStaffRepo{staff: []model.Staff{
		{Model: gorm.Model{ID: 1}, StaffID: "TVH-101", Name: "MR HEERA LAL", Status: model.StaffActive},
	}}
	svc := usecase.NewAttendanceService(repo, staffRepo, memPhotoStore{}, noopNotifier{}, noopFeed{}, policy)
	hdl := NewAttendanceHandler(svc, repo)

	app := fiber.New()
	api := app.Group("/api/attendance")
	api.Post("/", hdl.Mark)
	api.Get("/", hdl.List)
	api.Get("/export", hdl.Export)
	api.Get("/today", hdl.TodayStats)
	return app, repo
}

func jsonRequest(t *testing.T, method, path string, body interface{}) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode request body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return req
}
