package report_test

import (
	"bytes"
	"encoding/csv"
	"log/slog"
	"os"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frahmantamala/attendance-management/internal/attendance"
	"github.com/frahmantamala/attendance-management/internal/report"
	"github.com/frahmantamala/attendance-management/internal/user"
)

// Mock attendance store for testing
type mockReportRepository struct {
	byUser        map[string][]*attendance.Attendance
	byUserAndDate map[string]*attendance.Attendance
	byDate        map[string][]*attendance.WithUser
	rangeRecords  []*attendance.WithUser
	lastRangeFrom string
	lastRangeTo   string
	lastRangeUser string
	getError      error
}

func newMockReportRepository() *mockReportRepository {
	return &mockReportRepository{
		byUser:        make(map[string][]*attendance.Attendance),
		byUserAndDate: make(map[string]*attendance.Attendance),
		byDate:        make(map[string][]*attendance.WithUser),
	}
}

func (m *mockReportRepository) GetAttendanceByUser(userID string) ([]*attendance.Attendance, error) {
	if m.getError != nil {
		return nil, m.getError
	}
	return m.byUser[userID], nil
}

func (m *mockReportRepository) GetAttendanceByUserAndDate(userID, date string) (*attendance.Attendance, error) {
	if m.getError != nil {
		return nil, m.getError
	}
	record, exists := m.byUserAndDate[userID+"|"+date]
	if !exists {
		return nil, attendance.ErrNotFound
	}
	return record, nil
}

func (m *mockReportRepository) GetAttendanceByDate(date string) ([]*attendance.WithUser, error) {
	if m.getError != nil {
		return nil, m.getError
	}
	return m.byDate[date], nil
}

func (m *mockReportRepository) GetAttendanceByDateRange(from, to, userID string) ([]*attendance.WithUser, error) {
	if m.getError != nil {
		return nil, m.getError
	}
	m.lastRangeFrom = from
	m.lastRangeTo = to
	m.lastRangeUser = userID
	return m.rangeRecords, nil
}

// Mock roster for testing
type mockUserDirectory struct {
	employees []*user.User
	getError  error
}

func (m *mockUserDirectory) GetEmployees() ([]*user.User, error) {
	if m.getError != nil {
		return nil, m.getError
	}
	return m.employees, nil
}

var _ = Describe("ReportService", func() {
	var (
		service   *report.Service
		mockRepo  *mockReportRepository
		mockUsers *mockUserDirectory
		logger    *slog.Logger
		now       time.Time
	)

	clock := func() time.Time { return now }

	BeforeEach(func() {
		mockRepo = newMockReportRepository()
		mockUsers = &mockUserDirectory{}
		logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = report.NewService(mockRepo, mockUsers, logger).WithClock(clock)
		// Monday, 2026-03-09
		now = time.Date(2026, time.March, 9, 12, 0, 0, 0, time.UTC)
	})

	Describe("MonthlySummary", func() {
		It("reduces only the current month's records", func() {
			mockRepo.byUser["u1"] = []*attendance.Attendance{
				record("u1", "2026-02-27", attendance.StatusPresent, 8),
				record("u1", "2026-03-02", attendance.StatusPresent, 9),
				record("u1", "2026-03-03", attendance.StatusLate, 8),
			}

			stats, err := service.MonthlySummary("u1")

			Expect(err).ToNot(HaveOccurred())
			Expect(stats.TotalPresent).To(Equal(1))
			Expect(stats.TotalLate).To(Equal(1))
			Expect(stats.TotalHours).To(Equal(17))
		})
	})

	Describe("EmployeeDashboard", func() {
		It("returns a nil today status when nothing happened yet", func() {
			dashboard, err := service.EmployeeDashboard("u1")

			Expect(err).ToNot(HaveOccurred())
			Expect(dashboard.TodayStatus).To(BeNil())
			Expect(dashboard.RecentAttendance).To(BeEmpty())
		})

		It("caps recent attendance at seven records", func() {
			records := make([]*attendance.Attendance, 0, 10)
			for day := 10; day > 0; day-- {
				date := time.Date(2026, time.March, day, 0, 0, 0, 0, time.UTC).Format(attendance.DateLayout)
				records = append(records, record("u1", date, attendance.StatusPresent, 8))
			}
			mockRepo.byUser["u1"] = records
			mockRepo.byUserAndDate["u1|2026-03-09"] = records[1]

			dashboard, err := service.EmployeeDashboard("u1")

			Expect(err).ToNot(HaveOccurred())
			Expect(dashboard.TodayStatus).ToNot(BeNil())
			Expect(dashboard.RecentAttendance).To(HaveLen(7))
			Expect(dashboard.MonthlyStats.TotalPresent).To(Equal(10))
		})
	})

	Describe("ManagerDashboard", func() {
		BeforeEach(func() {
			mockUsers.employees = []*user.User{
				employee("u1", "Engineering"),
				employee("u2", "Engineering"),
				employee("u3", "Finance"),
				employee("u4", "Finance"),
				employee("u5", "Operations"),
			}
			mockRepo.byDate["2026-03-09"] = []*attendance.WithUser{
				withUser("u1", "2026-03-09", attendance.StatusPresent),
				withUser("u2", "2026-03-09", attendance.StatusLate),
				withUser("u3", "2026-03-09", attendance.StatusHalfDay),
			}
			mockRepo.rangeRecords = mockRepo.byDate["2026-03-09"]
		})

		It("computes headline counts from today's records and the roster", func() {
			dashboard, err := service.ManagerDashboard()

			Expect(err).ToNot(HaveOccurred())
			Expect(dashboard.TotalEmployees).To(Equal(5))
			Expect(dashboard.TodayPresent).To(Equal(2)) // present + late
			Expect(dashboard.TodayLate).To(Equal(1))
			Expect(dashboard.TodayAbsent).To(Equal(2))
			Expect(dashboard.AbsentToday).To(HaveLen(2))
		})

		It("requests the week surrounding today for the trend", func() {
			dashboard, err := service.ManagerDashboard()

			Expect(err).ToNot(HaveOccurred())
			Expect(mockRepo.lastRangeFrom).To(Equal("2026-03-08")) // Sunday
			Expect(mockRepo.lastRangeTo).To(Equal("2026-03-14"))   // Saturday
			Expect(dashboard.WeeklyTrend).To(HaveLen(7))
			Expect(dashboard.WeeklyTrend[1].Present).To(Equal(1))
			Expect(dashboard.WeeklyTrend[1].Late).To(Equal(1))
		})

		It("breaks presence down per department", func() {
			dashboard, err := service.ManagerDashboard()

			Expect(err).ToNot(HaveOccurred())
			Expect(dashboard.DepartmentStats).To(HaveLen(3))
			Expect(dashboard.DepartmentStats[0].Department).To(Equal("Engineering"))
			Expect(dashboard.DepartmentStats[0].Present).To(Equal(2))
			Expect(dashboard.DepartmentStats[0].Absent).To(BeZero())
			Expect(dashboard.DepartmentStats[2].Department).To(Equal("Operations"))
			Expect(dashboard.DepartmentStats[2].Absent).To(Equal(1))
		})
	})

	Describe("Export", func() {
		It("defaults the bounds to the current month", func() {
			_, from, to, err := service.Export("", "", "")

			Expect(err).ToNot(HaveOccurred())
			Expect(from).To(Equal("2026-03-01"))
			Expect(to).To(Equal("2026-03-31"))
			Expect(mockRepo.lastRangeUser).To(BeEmpty())
		})

		It("passes explicit bounds and the employee filter through", func() {
			_, from, to, err := service.Export("2026-01-01", "2026-01-31", "u2")

			Expect(err).ToNot(HaveOccurred())
			Expect(from).To(Equal("2026-01-01"))
			Expect(to).To(Equal("2026-01-31"))
			Expect(mockRepo.lastRangeUser).To(Equal("u2"))
		})
	})
})

var _ = Describe("WriteCSV", func() {
	It("writes the header and one row per record with 12-hour times", func() {
		checkIn := time.Date(2026, time.March, 9, 8, 30, 0, 0, time.UTC)
		checkOut := time.Date(2026, time.March, 9, 17, 30, 0, 0, time.UTC)
		records := []*attendance.WithUser{
			{
				Attendance: attendance.Attendance{
					UserID:       "u1",
					Date:         "2026-03-09",
					CheckInTime:  &checkIn,
					CheckOutTime: &checkOut,
					Status:       attendance.StatusPresent,
					TotalHours:   9,
				},
				User: &attendance.UserInfo{
					Name:       "Andi Wijaya",
					EmployeeID: "EMP1001",
					Department: "Engineering",
				},
			},
		}

		var buf bytes.Buffer
		Expect(report.WriteCSV(&buf, records)).To(Succeed())

		rows, err := csv.NewReader(&buf).ReadAll()
		Expect(err).ToNot(HaveOccurred())
		Expect(rows).To(HaveLen(2))
		Expect(rows[0]).To(Equal([]string{
			"Employee Name", "Employee ID", "Department", "Date",
			"Check In", "Check Out", "Hours", "Status",
		}))
		Expect(rows[1]).To(Equal([]string{
			"Andi Wijaya", "EMP1001", "Engineering", "2026-03-09",
			"08:30 AM", "05:30 PM", "9", "present",
		}))
	})

	It("renders missing check times as empty fields", func() {
		records := []*attendance.WithUser{
			{
				Attendance: attendance.Attendance{
					UserID: "u1",
					Date:   "2026-03-09",
					Status: attendance.StatusAbsent,
				},
				User: &attendance.UserInfo{Name: "Budi Santoso", EmployeeID: "EMP1002", Department: "Finance"},
			},
		}

		var buf bytes.Buffer
		Expect(report.WriteCSV(&buf, records)).To(Succeed())

		rows, err := csv.NewReader(&buf).ReadAll()
		Expect(err).ToNot(HaveOccurred())
		Expect(rows[1][4]).To(BeEmpty())
		Expect(rows[1][5]).To(BeEmpty())
		Expect(rows[1][6]).To(Equal("0"))
	})
})
