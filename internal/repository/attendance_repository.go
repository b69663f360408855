package repository

import (
	"errors"

	"tvh-attendance-backend/internal/model"

	"gorm.io/gorm"
)

type AttendanceRepository interface {
	Create(att *model.Attendance) error
	// LastOfDay returns the most recent punch for the staff member on the
	// given reporting-timezone day, or nil when none exists.
	LastOfDay(staffID string, date string) (*model.Attendance, error)
	GetAll() ([]model.Attendance, error)
	CountByStatus(date string, status string) (int64, error)
	// InTransaction runs fn against a transaction-scoped repository, so the
	// punch lookup and the insert commit or roll back together.
	InTransaction(fn func(tx AttendanceRepository) error) error
}

type attendanceRepository struct {
	db *gorm.DB
}

func NewAttendanceRepository(db *gorm.DB) AttendanceRepository {
	return &attendanceRepository{db}
}

func (r *attendanceRepository) Create(att *model.Attendance) error {
	return r.db.Create(att).Error
}

func (r *attendanceRepository) LastOfDay(staffID string, date string) (*model.Attendance, error) {
	var att model.Attendance
	err := r.db.Where("staff_id = ? AND date = ?", staffID, date).
		Order("timestamp desc").
		First(&att).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &att, nil
}

func (r *attendanceRepository) GetAll() ([]model.Attendance, error) {
	var logs []model.Attendance
	err := r.db.Order("timestamp desc").Find(&logs).Error
	return logs, err
}

func (r *attendanceRepository) CountByStatus(date string, status string) (int64, error) {
	var count int64
	err := r.db.Model(&model.Attendance{}).
		Where("date = ? AND status = ?", date, status).
		Count(&count).Error
	return count, err
}

func (r *attendanceRepository) InTransaction(fn func(tx AttendanceRepository) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(&attendanceRepository{tx})
	})
}
