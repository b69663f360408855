package usecase

import (
	"sort"

	"tvh-attendance-backend/internal/model"
	"tvh-attendance-backend/internal/repository"

	"gorm.io/gorm"
)

type fakeAttendanceRepo struct {
	events []model.Attendance
}

func (f *fakeAttendanceRepo) Create(att *model.Attendance) error {
	att.ID = uint(len(f.events) + 1)
	f.events = append(f.events, *att)
	return nil
}

func (f *fakeAttendanceRepo) LastOfDay(staffID string, date string) (*model.Attendance, error) {
	var last *model.Attendance
	for i := range f.events {
		e := &f.events[i]
		if e.StaffID == staffID && e.Date == date {
			if last == nil || e.Timestamp.After(last.Timestamp) {
				last = e
			}
		}
	}
	return last, nil
}

func (f *fakeAttendanceRepo) GetAll() ([]model.Attendance, error) {
	out := make([]model.Attendance, len(f.events))
	copy(out, f.events)
	sort.Slice(out, func(i, j int) bool { return out[i].Timestamp.After(out[j].Timestamp) })
	return out, nil
}

func (f *fakeAttendanceRepo) CountByStatus(date string, status string) (int64, error) {
	var count int64
	for _, e := range f.events {
		if e.Date == date && e.Status == status {
			count++
		}
	}
	return count, nil
}

func (f *fakeAttendanceRepo) InTransaction(fn func(tx repository.AttendanceRepository) error) error {
	return fn(f)
}

type fakeStaffRepo struct {
	staff map[string]*model.Staff
}

func newFakeStaffRepo(members ...*model.Staff) *fakeStaffRepo {
	f := &fakeStaffRepo{staff: make(map[string]*model.Staff)}
	for i, m := range members {
		if m.ID == 0 {
			m.ID = uint(i + 1)
		}
		f.staff[m.StaffID] = m
	}
	return f
}

func (f *fakeStaffRepo) Create(staff *model.Staff) error {
	staff.ID = uint(len(f.staff) + 1)
	f.staff[staff.StaffID] = staff
	return nil
}

func (f *fakeStaffRepo) Update(staff *model.Staff) error {
	f.staff[staff.StaffID] = staff
	return nil
}

func (f *fakeStaffRepo) FindByID(id uint) (*model.Staff, error) {
	for _, m := range f.staff {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeStaffRepo) FindByStaffID(staffID string) (*model.Staff, error) {
	if m, ok := f.staff[staffID]; ok {
		return m, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeStaffRepo) StaffIDTaken(staffID string, excludeID uint) (bool, error) {
	m, ok := f.staff[staffID]
	return ok && m.ID != excludeID, nil
}

func (f *fakeStaffRepo) GetAll() ([]model.Staff, error) {
	var out []model.Staff
	for _, m := range f.staff {
		out = append(out, *m)
	}
	return out, nil
}

func (f *fakeStaffRepo) Delete(id uint) error {
	for key, m := range f.staff {
		if m.ID == id {
			delete(f.staff, key)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeStaffRepo) CountByStatus(status string) (int64, error) {
	var count int64
	for _, m := range f.staff {
		if m.Status == status {
			count++
		}
	}
	return count, nil
}

type fakeLeaveRepo struct {
	leaves []model.Leave
}

func (f *fakeLeaveRepo) Create(leave *model.Leave) error {
	leave.ID = uint(len(f.leaves) + 1)
	f.leaves = append(f.leaves, *leave)
	return nil
}

func (f *fakeLeaveRepo) FindByID(id uint) (*model.Leave, error) {
	for i := range f.leaves {
		if f.leaves[i].ID == id {
			found := f.leaves[i]
			return &found, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeLeaveRepo) Update(leave *model.Leave) error {
	for i := range f.leaves {
		if f.leaves[i].ID == leave.ID {
			f.leaves[i] = *leave
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeLeaveRepo) GetAll() ([]model.Leave, error) {
	out := make([]model.Leave, len(f.leaves))
	copy(out, f.leaves)
	sort.Slice(out, func(i, j int) bool { return out[i].Timestamp.After(out[j].Timestamp) })
	return out, nil
}

func (f *fakeLeaveRepo) Delete(id uint) error {
	for i := range f.leaves {
		if f.leaves[i].ID == id {
			f.leaves = append(f.leaves[:i], f.leaves[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

type fakeNotifier struct {
	attendance []*model.Attendance
	decisions  []*model.Leave
}

func (f *fakeNotifier) EnqueueAttendance(att *model.Attendance) { f.attendance = append(f.attendance, att) }
func (f *fakeNotifier) EnqueueLeaveDecision(l *model.Leave)     { f.decisions = append(f.decisions, l) }

type fakeFeed struct {
	events []string
}

func (f *fakeFeed) Broadcast(event string, payload interface{}) { f.events = append(f.events, event) }

type fakePhotoStore struct {
	saves int
}

func (f *fakePhotoStore) Save(staffID string, data string) (string, error) {
	f.saves++
	return "uploads/attendance/" + staffID + "_test.jpg", nil
}
