package repository

import (
	"tvh-attendance-backend/internal/model"

	"gorm.io/gorm"
)

type LeaveRepository interface {
	Create(leave *model.Leave) error
	FindByID(id uint) (*model.Leave, error)
	Update(leave *model.Leave) error
	// GetAll returns every request newest first, with the applicant's phone
	// number joined in for the admin review screen.
	GetAll() ([]model.Leave, error)
	Delete(id uint) error
}

type leaveRepository struct {
	db *gorm.DB
}

func NewLeaveRepository(db *gorm.DB) LeaveRepository {
	return &leaveRepository{db}
}

func (r *leaveRepository) Create(leave *model.Leave) error {
	return r.db.Create(leave).Error
}

func (r *leaveRepository) FindByID(id uint) (*model.Leave, error) {
	var leave model.Leave
	err := r.db.First(&leave, id).Error
	if err != nil {
		return nil, err
	}
	return &leave, nil
}

func (r *leaveRepository) Update(leave *model.Leave) error {
	return r.db.Save(leave).Error
}

func (r *leaveRepository) GetAll() ([]model.Leave, error) {
	var list []model.Leave
	err := r.db.Model(&model.Leave{}).
		Select("leaves.*, staffs.phone AS phone").
		Joins("LEFT JOIN staffs ON staffs.staff_id = leaves.staff_id").
		Order("leaves.timestamp desc").
		Find(&list).Error
	return list, err
}

func (r *leaveRepository) Delete(id uint) error {
	result := r.db.Delete(&model.Leave{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
