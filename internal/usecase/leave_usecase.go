package usecase

import (
	"time"

	"tvh-attendance-backend/internal/model"
	"tvh-attendance-backend/internal/repository"
)

type ApplyLeaveInput struct {
	StaffID   string
	LeaveType string
	StartDate string
	EndDate   string
	Reason    string
}

type LeaveService struct {
	repo      repository.LeaveRepository
	staffRepo repository.StaffRepository
	notifier  Notifier
	feed      Broadcaster

	now func() time.Time
}

func NewLeaveService(
	repo repository.LeaveRepository,
	staffRepo repository.StaffRepository,
	notifier Notifier,
	feed Broadcaster,
) *LeaveService {
	return &LeaveService{
		repo:      repo,
		staffRepo: staffRepo,
		notifier:  notifier,
		feed:      feed,
		now:       time.Now,
	}
}

// Apply files a new request in Pending state. The applicant's name is
// snapshotted from the staff record so later renames don't rewrite history.
func (s *LeaveService) Apply(in ApplyLeaveInput) (*model.Leave, error) {
	if in.StaffID == "" || in.LeaveType == "" || in.StartDate == "" || in.EndDate == "" || in.Reason == "" {
		return nil, ErrMissingFields
	}

	staff, err := s.staffRepo.FindByStaffID(in.StaffID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrStaffNotFound
		}
		return nil, err
	}

	leave := &model.Leave{
		StaffID:   in.StaffID,
		StaffName: staff.Name,
		LeaveType: in.LeaveType,
		StartDate: in.StartDate,
		EndDate:   in.EndDate,
		Reason:    in.Reason,
		Status:    model.LeavePending,
		Timestamp: s.now(),
	}
	if err := s.repo.Create(leave); err != nil {
		return nil, err
	}

	s.feed.Broadcast("newLeaveRequest", leave)
	return leave, nil
}

// Decide moves a Pending request to Approved or Rejected. The transition is
// terminal: a decided request cannot be decided again.
func (s *LeaveService) Decide(id uint, status string) (*model.Leave, error) {
	if status != model.LeaveApproved && status != model.LeaveRejected {
		return nil, ErrInvalidLeaveStatus
	}

	leave, err := s.repo.FindByID(id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrLeaveNotFound
		}
		return nil, err
	}
	if leave.Status != model.LeavePending {
		return nil, ErrLeaveDecided
	}

	leave.Status = status
	if err := s.repo.Update(leave); err != nil {
		return nil, err
	}

	s.feed.Broadcast("leaveDecision", leave)
	s.notifier.EnqueueLeaveDecision(leave)
	return leave, nil
}

func (s *LeaveService) List() ([]model.Leave, error) {
	return s.repo.GetAll()
}

func (s *LeaveService) Delete(id uint) error {
	err := s.repo.Delete(id)
	if repository.IsNotFound(err) {
		return ErrLeaveNotFound
	}
	return err
}
