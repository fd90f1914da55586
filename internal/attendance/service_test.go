package attendance_test

import (
	"errors"
	"log/slog"
	"os"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frahmantamala/attendance-management/internal/attendance"
)

// Mock repository for testing
type mockAttendanceRepository struct {
	records     map[string]*attendance.Attendance // userID+date -> record
	createError error
	getError    error
	updateError error
}

func newMockAttendanceRepository() *mockAttendanceRepository {
	return &mockAttendanceRepository{
		records: make(map[string]*attendance.Attendance),
	}
}

func recordKey(userID, date string) string {
	return userID + "|" + date
}

func (m *mockAttendanceRepository) GetByUserAndDate(userID, date string) (*attendance.Attendance, error) {
	if m.getError != nil {
		return nil, m.getError
	}
	record, exists := m.records[recordKey(userID, date)]
	if !exists {
		return nil, attendance.ErrNotFound
	}
	return record, nil
}

func (m *mockAttendanceRepository) GetByUser(userID string) ([]*attendance.Attendance, error) {
	if m.getError != nil {
		return nil, m.getError
	}
	result := make([]*attendance.Attendance, 0)
	for _, r := range m.records {
		if r.UserID == userID {
			result = append(result, r)
		}
	}
	return result, nil
}

func (m *mockAttendanceRepository) GetAll() ([]*attendance.WithUser, error) {
	return nil, m.getError
}

func (m *mockAttendanceRepository) GetByDate(date string) ([]*attendance.WithUser, error) {
	return nil, m.getError
}

func (m *mockAttendanceRepository) GetByDateRange(from, to, userID string) ([]*attendance.WithUser, error) {
	return nil, m.getError
}

func (m *mockAttendanceRepository) Create(record *attendance.Attendance) error {
	if m.createError != nil {
		return m.createError
	}
	key := recordKey(record.UserID, record.Date)
	if _, exists := m.records[key]; exists {
		return attendance.ErrDuplicateRecord
	}
	m.records[key] = record
	return nil
}

func (m *mockAttendanceRepository) Update(record *attendance.Attendance) error {
	if m.updateError != nil {
		return m.updateError
	}
	m.records[recordKey(record.UserID, record.Date)] = record
	return nil
}

var _ = Describe("AttendanceService", func() {
	var (
		service  *attendance.Service
		mockRepo *mockAttendanceRepository
		logger   *slog.Logger
		now      time.Time
	)

	clock := func() time.Time { return now }

	BeforeEach(func() {
		mockRepo = newMockAttendanceRepository()
		logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = attendance.NewService(mockRepo, nil, logger, 9, 4).WithClock(clock)
		now = time.Date(2026, time.March, 9, 8, 30, 0, 0, time.UTC)
	})

	Describe("CheckIn", func() {
		Context("when there is no record for today", func() {
			It("creates a present record before the work start hour", func() {
				record, err := service.CheckIn("user-1")

				Expect(err).ToNot(HaveOccurred())
				Expect(record.Status).To(Equal(attendance.StatusPresent))
				Expect(record.Date).To(Equal("2026-03-09"))
				Expect(record.CheckInTime).ToNot(BeNil())
				Expect(record.CheckOutTime).To(BeNil())
				Expect(record.TotalHours).To(BeZero())
			})

			It("creates a late record from the work start hour on", func() {
				now = time.Date(2026, time.March, 9, 9, 15, 0, 0, time.UTC)

				record, err := service.CheckIn("user-1")

				Expect(err).ToNot(HaveOccurred())
				Expect(record.Status).To(Equal(attendance.StatusLate))
			})
		})

		Context("when already checked in today", func() {
			It("returns ErrAlreadyCheckedIn", func() {
				_, err := service.CheckIn("user-1")
				Expect(err).ToNot(HaveOccurred())

				_, err = service.CheckIn("user-1")
				Expect(err).To(MatchError(attendance.ErrAlreadyCheckedIn))
			})
		})

		Context("when a seeded placeholder record exists without a check-in", func() {
			It("updates the record in place instead of creating a second one", func() {
				placeholder := &attendance.Attendance{
					ID:     "seeded",
					UserID: "user-1",
					Date:   "2026-03-09",
					Status: attendance.StatusAbsent,
				}
				mockRepo.records[recordKey("user-1", "2026-03-09")] = placeholder

				record, err := service.CheckIn("user-1")

				Expect(err).ToNot(HaveOccurred())
				Expect(record.ID).To(Equal("seeded"))
				Expect(record.CheckInTime).ToNot(BeNil())
				Expect(record.Status).To(Equal(attendance.StatusPresent))
			})
		})

		Context("when two check-ins race past the existence check", func() {
			It("maps the duplicate insert to ErrAlreadyCheckedIn", func() {
				mockRepo.createError = attendance.ErrDuplicateRecord

				_, err := service.CheckIn("user-1")

				Expect(err).To(MatchError(attendance.ErrAlreadyCheckedIn))
			})
		})

		Context("when the repository fails", func() {
			It("propagates the error", func() {
				mockRepo.getError = errors.New("connection refused")

				_, err := service.CheckIn("user-1")

				Expect(err).To(MatchError("connection refused"))
			})
		})
	})

	Describe("CheckOut", func() {
		Context("after a normal full day", func() {
			It("keeps the present status and records rounded hours", func() {
				_, err := service.CheckIn("user-1")
				Expect(err).ToNot(HaveOccurred())

				now = time.Date(2026, time.March, 9, 17, 30, 0, 0, time.UTC)
				record, err := service.CheckOut("user-1")

				Expect(err).ToNot(HaveOccurred())
				Expect(record.Status).To(Equal(attendance.StatusPresent))
				Expect(record.TotalHours).To(Equal(9))
				Expect(record.CheckOutTime).ToNot(BeNil())
			})
		})

		Context("after a short day", func() {
			It("downgrades a late check-in to half-day", func() {
				now = time.Date(2026, time.March, 9, 9, 15, 0, 0, time.UTC)
				record, err := service.CheckIn("user-1")
				Expect(err).ToNot(HaveOccurred())
				Expect(record.Status).To(Equal(attendance.StatusLate))

				now = time.Date(2026, time.March, 9, 11, 0, 0, 0, time.UTC)
				record, err = service.CheckOut("user-1")

				Expect(err).ToNot(HaveOccurred())
				Expect(record.Status).To(Equal(attendance.StatusHalfDay))
				Expect(record.TotalHours).To(Equal(2))
			})
		})

		Context("without a prior check-in", func() {
			It("returns ErrNotCheckedIn when no record exists", func() {
				_, err := service.CheckOut("user-1")

				Expect(err).To(MatchError(attendance.ErrNotCheckedIn))
			})

			It("returns ErrNotCheckedIn for a placeholder without check-in time", func() {
				mockRepo.records[recordKey("user-1", "2026-03-09")] = &attendance.Attendance{
					ID:     "seeded",
					UserID: "user-1",
					Date:   "2026-03-09",
					Status: attendance.StatusAbsent,
				}

				_, err := service.CheckOut("user-1")

				Expect(err).To(MatchError(attendance.ErrNotCheckedIn))
			})
		})

		Context("when already checked out", func() {
			It("returns ErrAlreadyCheckedOut", func() {
				_, err := service.CheckIn("user-1")
				Expect(err).ToNot(HaveOccurred())

				now = time.Date(2026, time.March, 9, 17, 0, 0, 0, time.UTC)
				_, err = service.CheckOut("user-1")
				Expect(err).ToNot(HaveOccurred())

				_, err = service.CheckOut("user-1")
				Expect(err).To(MatchError(attendance.ErrAlreadyCheckedOut))
			})
		})
	})

	Describe("Today", func() {
		It("returns nil without error when nothing happened yet", func() {
			record, err := service.Today("user-1")

			Expect(err).ToNot(HaveOccurred())
			Expect(record).To(BeNil())
		})

		It("returns today's record after a check-in", func() {
			_, err := service.CheckIn("user-1")
			Expect(err).ToNot(HaveOccurred())

			record, err := service.Today("user-1")

			Expect(err).ToNot(HaveOccurred())
			Expect(record).ToNot(BeNil())
			Expect(record.Date).To(Equal("2026-03-09"))
		})
	})
})
