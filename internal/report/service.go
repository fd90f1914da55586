package report

import (
	"log/slog"
	"time"

	"github.com/frahmantamala/attendance-management/internal/attendance"
	"github.com/frahmantamala/attendance-management/internal/user"
)

// Repository is the slice of attendance storage the reporting side reads.
type Repository interface {
	GetAttendanceByUser(userID string) ([]*attendance.Attendance, error)
	GetAttendanceByUserAndDate(userID, date string) (*attendance.Attendance, error)
	GetAttendanceByDate(date string) ([]*attendance.WithUser, error)
	GetAttendanceByDateRange(from, to, userID string) ([]*attendance.WithUser, error)
}

// UserDirectory resolves the employee roster for roster-diff views.
type UserDirectory interface {
	GetEmployees() ([]*user.User, error)
}

// EmployeeDashboard is the signed-in user's view: today's record (nil when
// nothing happened yet), current-month stats, and the last few records.
type EmployeeDashboard struct {
	TodayStatus      *attendance.Attendance   `json:"todayStatus"`
	MonthlyStats     DashboardStats           `json:"monthlyStats"`
	RecentAttendance []*attendance.Attendance `json:"recentAttendance"`
}

// ManagerDashboard is the company-wide view for today plus the weekly trend.
type ManagerDashboard struct {
	TotalEmployees  int              `json:"totalEmployees"`
	TodayPresent    int              `json:"todayPresent"`
	TodayAbsent     int              `json:"todayAbsent"`
	TodayLate       int              `json:"todayLate"`
	WeeklyTrend     []DayTrend       `json:"weeklyTrend"`
	DepartmentStats []DepartmentStat `json:"departmentStats"`
	AbsentToday     []*user.User     `json:"absentToday"`
}

const recentAttendanceLimit = 7

// Service assembles dashboards and exports from the attendance store and
// the user roster.
type Service struct {
	repo   Repository
	users  UserDirectory
	logger *slog.Logger
	now    func() time.Time
}

// NewService creates a new report service
func NewService(repo Repository, users UserDirectory, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		users:  users,
		logger: logger,
		now:    time.Now,
	}
}

// WithClock overrides the service clock. Tests use this to pin "now".
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// MonthlySummary reduces the user's current-month records to DashboardStats.
func (s *Service) MonthlySummary(userID string) (DashboardStats, error) {
	records, err := s.repo.GetAttendanceByUser(userID)
	if err != nil {
		s.logger.Error("monthly summary: failed to load records", "error", err, "user_id", userID)
		return DashboardStats{}, err
	}

	from, to := monthBounds(s.now())
	return Summarize(FilterRange(records, from, to)), nil
}

// EmployeeDashboard builds the signed-in user's dashboard.
func (s *Service) EmployeeDashboard(userID string) (*EmployeeDashboard, error) {
	today := attendance.DateKey(s.now())

	todayRecord, err := s.repo.GetAttendanceByUserAndDate(userID, today)
	if err != nil && err != attendance.ErrNotFound {
		s.logger.Error("employee dashboard: failed to load today's record", "error", err, "user_id", userID)
		return nil, err
	}

	records, err := s.repo.GetAttendanceByUser(userID)
	if err != nil {
		s.logger.Error("employee dashboard: failed to load history", "error", err, "user_id", userID)
		return nil, err
	}

	from, to := monthBounds(s.now())

	recent := records
	if len(recent) > recentAttendanceLimit {
		recent = recent[:recentAttendanceLimit]
	}

	return &EmployeeDashboard{
		TodayStatus:      todayRecord,
		MonthlyStats:     Summarize(FilterRange(records, from, to)),
		RecentAttendance: recent,
	}, nil
}

// ManagerDashboard builds the company-wide view: today's headline counts,
// the Sun-Sat weekly trend, per-department presence, and the roster-diff
// absentee list.
func (s *Service) ManagerDashboard() (*ManagerDashboard, error) {
	employees, err := s.users.GetEmployees()
	if err != nil {
		s.logger.Error("manager dashboard: failed to load roster", "error", err)
		return nil, err
	}

	now := s.now()
	today := attendance.DateKey(now)

	todays, err := s.repo.GetAttendanceByDate(today)
	if err != nil {
		s.logger.Error("manager dashboard: failed to load today's records", "error", err)
		return nil, err
	}

	var present, late int
	for _, r := range todays {
		switch r.Status {
		case attendance.StatusPresent:
			present++
		case attendance.StatusLate:
			present++
			late++
		}
	}

	weekStart, weekEnd := weekBounds(now)
	weekly, err := s.repo.GetAttendanceByDateRange(weekStart, weekEnd, "")
	if err != nil {
		s.logger.Error("manager dashboard: failed to load weekly records", "error", err)
		return nil, err
	}

	absent := AbsentEmployees(employees, todays)

	return &ManagerDashboard{
		TotalEmployees:  len(employees),
		TodayPresent:    present,
		TodayAbsent:     len(absent),
		TodayLate:       late,
		WeeklyTrend:     WeeklyTrend(weekly, weekStart),
		DepartmentStats: DepartmentBreakdown(employees, todays),
		AbsentToday:     absent,
	}, nil
}

// Export loads the records for the CSV download. Empty bounds default to the
// current month; userID narrows to one employee when set.
func (s *Service) Export(from, to, userID string) ([]*attendance.WithUser, string, string, error) {
	monthFrom, monthTo := monthBounds(s.now())
	if from == "" {
		from = monthFrom
	}
	if to == "" {
		to = monthTo
	}

	records, err := s.repo.GetAttendanceByDateRange(from, to, userID)
	if err != nil {
		s.logger.Error("export: failed to load records", "error", err, "from", from, "to", to)
		return nil, "", "", err
	}
	return records, from, to, nil
}

func parseDate(date string) time.Time {
	t, err := time.Parse(attendance.DateLayout, date)
	if err != nil {
		return time.Time{}
	}
	return t
}

// monthBounds returns the first and last day of t's month as date keys.
func monthBounds(t time.Time) (string, string) {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	last := first.AddDate(0, 1, -1)
	return attendance.DateKey(first), attendance.DateKey(last)
}

// weekBounds returns the Sunday and Saturday of t's week as date keys.
func weekBounds(t time.Time) (string, string) {
	sunday := t.AddDate(0, 0, -int(t.Weekday()))
	saturday := sunday.AddDate(0, 0, 6)
	return attendance.DateKey(sunday), attendance.DateKey(saturday)
}
