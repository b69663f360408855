package repository

import (
	"errors"

	"tvh-attendance-backend/internal/model"

	"gorm.io/gorm"
)

type StaffRepository interface {
	Create(staff *model.Staff) error
	Update(staff *model.Staff) error
	FindByID(id uint) (*model.Staff, error)
	// FindByStaffID looks up by the business key ("TVH-101"), not the row ID.
	FindByStaffID(staffID string) (*model.Staff, error)
	// StaffIDTaken reports whether another row already uses this staffId.
	StaffIDTaken(staffID string, excludeID uint) (bool, error)
	GetAll() ([]model.Staff, error)
	Delete(id uint) error
	CountByStatus(status string) (int64, error)
}

type staffRepository struct {
	db *gorm.DB
}

func NewStaffRepository(db *gorm.DB) StaffRepository {
	return &staffRepository{db}
}

func (r *staffRepository) Create(staff *model.Staff) error {
	return r.db.Create(staff).Error
}

func (r *staffRepository) Update(staff *model.Staff) error {
	return r.db.Save(staff).Error
}

func (r *staffRepository) FindByID(id uint) (*model.Staff, error) {
	var staff model.Staff
	err := r.db.First(&staff, id).Error
	if err != nil {
		return nil, err
	}
	return &staff, nil
}

func (r *staffRepository) FindByStaffID(staffID string) (*model.Staff, error) {
	var staff model.Staff
	err := r.db.Where("staff_id = ?", staffID).First(&staff).Error
	if err != nil {
		return nil, err
	}
	return &staff, nil
}

func (r *staffRepository) StaffIDTaken(staffID string, excludeID uint) (bool, error) {
	var count int64
	err := r.db.Model(&model.Staff{}).
		Where("staff_id = ? AND id <> ?", staffID, excludeID).
		Count(&count).Error
	return count > 0, err
}

func (r *staffRepository) GetAll() ([]model.Staff, error) {
	var list []model.Staff
	err := r.db.Order("created_at desc").Find(&list).Error
	return list, err
}

func (r *staffRepository) Delete(id uint) error {
	result := r.db.Delete(&model.Staff{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *staffRepository) CountByStatus(status string) (int64, error) {
	var count int64
	err := r.db.Model(&model.Staff{}).Where("status = ?", status).Count(&count).Error
	return count, err
}

// IsNotFound reports whether err is the storage layer's missing-record error.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
