package attendance

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/frahmantamala/attendance-management/internal/core/events"
	"github.com/google/uuid"
)

// Repository defines the data access methods for attendance records.
type Repository interface {
	GetByUserAndDate(userID, date string) (*Attendance, error)
	GetByUser(userID string) ([]*Attendance, error)
	GetAll() ([]*WithUser, error)
	GetByDate(date string) ([]*WithUser, error)
	GetByDateRange(from, to, userID string) ([]*WithUser, error)
	Create(record *Attendance) error
	Update(record *Attendance) error
}

// Service handles the check-in/check-out state transitions. Per user and day
// the state machine is NoRecord → CheckedIn → CheckedOut; repeat transitions
// are errors, not no-ops.
type Service struct {
	repo          Repository
	bus           *events.EventBus
	logger        *slog.Logger
	workStartHour int
	halfDayHours  int
	now           func() time.Time
}

// NewService creates a new attendance service
func NewService(repo Repository, bus *events.EventBus, logger *slog.Logger, workStartHour, halfDayHours int) *Service {
	if workStartHour <= 0 {
		workStartHour = DefaultWorkStartHour
	}
	if halfDayHours <= 0 {
		halfDayHours = DefaultHalfDayHours
	}
	return &Service{
		repo:          repo,
		bus:           bus,
		logger:        logger,
		workStartHour: workStartHour,
		halfDayHours:  halfDayHours,
		now:           time.Now,
	}
}

// WithClock overrides the service clock. Tests use this to pin "now".
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// CheckIn records the start of the user's work day. An existing record
// without a check-in (a seeded placeholder) is updated in place.
func (s *Service) CheckIn(userID string) (*Attendance, error) {
	now := s.now()
	today := DateKey(now)

	existing, err := s.repo.GetByUserAndDate(userID, today)
	if err != nil && !errors.Is(err, ErrNotFound) {
		s.logger.Error("check-in: failed to load today's record", "error", err, "user_id", userID)
		return nil, err
	}

	if existing != nil && existing.CheckedIn() {
		return nil, ErrAlreadyCheckedIn
	}

	status := Classify(now, s.workStartHour)

	record := existing
	if record != nil {
		record.CheckInTime = &now
		record.Status = status
		if err := s.repo.Update(record); err != nil {
			s.logger.Error("check-in: failed to update placeholder record", "error", err, "user_id", userID)
			return nil, err
		}
	} else {
		record = &Attendance{
			ID:          uuid.NewString(),
			UserID:      userID,
			Date:        today,
			CheckInTime: &now,
			Status:      status,
			TotalHours:  0,
			CreatedAt:   now,
		}
		if err := s.repo.Create(record); err != nil {
			// Two racing check-ins can both observe "no record"; the
			// store's unique (user_id, date) index is the backstop and
			// the loser reads as a duplicate check-in.
			if errors.Is(err, ErrDuplicateRecord) {
				return nil, ErrAlreadyCheckedIn
			}
			s.logger.Error("check-in: failed to create record", "error", err, "user_id", userID)
			return nil, err
		}
	}

	s.logger.Info("checked in",
		"user_id", userID,
		"date", today,
		"status", status)

	s.publish(events.NewCheckedInEvent(record.ID, userID, today, status, now))

	return record, nil
}

// CheckOut closes the user's work day, computing rounded worked hours and
// downgrading short days to half-day.
func (s *Service) CheckOut(userID string) (*Attendance, error) {
	now := s.now()
	today := DateKey(now)

	record, err := s.repo.GetByUserAndDate(userID, today)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotCheckedIn
		}
		s.logger.Error("check-out: failed to load today's record", "error", err, "user_id", userID)
		return nil, err
	}

	if !record.CheckedIn() {
		return nil, ErrNotCheckedIn
	}
	if record.CheckedOut() {
		return nil, ErrAlreadyCheckedOut
	}

	hoursWorked := HoursWorked(*record.CheckInTime, now)

	// A short day overrides whatever the check-in classified, late included.
	if hoursWorked < s.halfDayHours {
		record.Status = StatusHalfDay
	}

	record.CheckOutTime = &now
	record.TotalHours = hoursWorked

	if err := s.repo.Update(record); err != nil {
		s.logger.Error("check-out: failed to update record", "error", err, "user_id", userID)
		return nil, err
	}

	s.logger.Info("checked out",
		"user_id", userID,
		"date", today,
		"status", record.Status,
		"total_hours", hoursWorked)

	s.publish(events.NewCheckedOutEvent(record.ID, userID, today, record.Status, hoursWorked, now))

	return record, nil
}

// Today returns the user's record for the current day, or nil when none exists.
func (s *Service) Today(userID string) (*Attendance, error) {
	record, err := s.repo.GetByUserAndDate(userID, DateKey(s.now()))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return record, nil
}

// History returns all of a user's records, most recent date first.
func (s *Service) History(userID string) ([]*Attendance, error) {
	records, err := s.repo.GetByUser(userID)
	if err != nil {
		s.logger.Error("failed to load attendance history", "error", err, "user_id", userID)
		return nil, err
	}
	return records, nil
}

// All returns every record joined with its owner, most recent date first.
func (s *Service) All() ([]*WithUser, error) {
	records, err := s.repo.GetAll()
	if err != nil {
		s.logger.Error("failed to load all attendance", "error", err)
		return nil, err
	}
	return records, nil
}

// TodayStatus returns today's records joined with their owners.
func (s *Service) TodayStatus() ([]*WithUser, error) {
	records, err := s.repo.GetByDate(DateKey(s.now()))
	if err != nil {
		s.logger.Error("failed to load today's attendance", "error", err)
		return nil, err
	}
	return records, nil
}

func (s *Service) publish(event events.Event) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(context.Background(), event); err != nil {
		s.logger.Error("failed to publish attendance event", "error", err, "event_type", event.EventType())
	}
}
