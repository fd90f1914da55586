package report

import (
	"github.com/frahmantamala/attendance-management/internal/attendance"
	"github.com/frahmantamala/attendance-management/internal/user"
)

// DashboardStats is a pure reduction over a set of attendance records:
// one counter per status plus the sum of recorded hours. Absence is only
// counted when a record explicitly carries the absent status; days with no
// record at all contribute nothing here (roster gaps are AbsentEmployees'
// job).
type DashboardStats struct {
	TotalPresent int `json:"totalPresent"`
	TotalAbsent  int `json:"totalAbsent"`
	TotalLate    int `json:"totalLate"`
	TotalHalfDay int `json:"totalHalfDay"`
	TotalHours   int `json:"totalHours"`
}

// DayTrend is one day of the manager's weekly view.
type DayTrend struct {
	Day     string `json:"day"`
	Present int    `json:"present"`
	Absent  int    `json:"absent"`
	Late    int    `json:"late"`
}

// DepartmentStat is today's presence picture for one department.
// Present counts present and late records; absent is the gap between
// department headcount and department records.
type DepartmentStat struct {
	Department string `json:"department"`
	Present    int    `json:"present"`
	Absent     int    `json:"absent"`
}

// Summarize reduces records into status counts and a total-hours sum.
func Summarize(records []*attendance.Attendance) DashboardStats {
	var stats DashboardStats
	for _, r := range records {
		switch r.Status {
		case attendance.StatusPresent:
			stats.TotalPresent++
		case attendance.StatusAbsent:
			stats.TotalAbsent++
		case attendance.StatusLate:
			stats.TotalLate++
		case attendance.StatusHalfDay:
			stats.TotalHalfDay++
		}
		stats.TotalHours += r.TotalHours
	}
	return stats
}

// FilterRange keeps records whose date falls inside [from, to]. Dates are
// "YYYY-MM-DD" strings, so lexicographic comparison is chronological.
func FilterRange(records []*attendance.Attendance, from, to string) []*attendance.Attendance {
	filtered := make([]*attendance.Attendance, 0, len(records))
	for _, r := range records {
		if r.Date >= from && r.Date <= to {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// AbsentEmployees diffs the employee roster against today's records: anyone
// with no record today is absent, whatever their historical statuses say.
func AbsentEmployees(employees []*user.User, todays []*attendance.WithUser) []*user.User {
	recorded := make(map[string]struct{}, len(todays))
	for _, r := range todays {
		recorded[r.UserID] = struct{}{}
	}

	absent := make([]*user.User, 0)
	for _, emp := range employees {
		if _, ok := recorded[emp.ID]; !ok {
			absent = append(absent, emp)
		}
	}
	return absent
}

var weekDays = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// WeeklyTrend buckets one week of records into per-day status counts,
// Sunday through Saturday. weekStart must be the Sunday of the week.
func WeeklyTrend(records []*attendance.WithUser, weekStart string) []DayTrend {
	byDate := make(map[string][]*attendance.WithUser)
	for _, r := range records {
		byDate[r.Date] = append(byDate[r.Date], r)
	}

	start := parseDate(weekStart)
	trend := make([]DayTrend, 0, len(weekDays))
	for i, day := range weekDays {
		dayStr := attendance.DateKey(start.AddDate(0, 0, i))
		entry := DayTrend{Day: day}
		for _, r := range byDate[dayStr] {
			switch r.Status {
			case attendance.StatusPresent:
				entry.Present++
			case attendance.StatusAbsent:
				entry.Absent++
			case attendance.StatusLate:
				entry.Late++
			}
		}
		trend = append(trend, entry)
	}
	return trend
}

// DepartmentBreakdown computes today's per-department presence from the
// roster and today's records. Departments come from the roster, so an empty
// department still shows up with a full absent count.
func DepartmentBreakdown(employees []*user.User, todays []*attendance.WithUser) []DepartmentStat {
	byUser := make(map[string]*attendance.WithUser, len(todays))
	for _, r := range todays {
		byUser[r.UserID] = r
	}

	deptOrder := make([]string, 0)
	deptSize := make(map[string]int)
	deptPresent := make(map[string]int)
	deptRecorded := make(map[string]int)
	for _, emp := range employees {
		if _, seen := deptSize[emp.Department]; !seen {
			deptOrder = append(deptOrder, emp.Department)
		}
		deptSize[emp.Department]++

		record, ok := byUser[emp.ID]
		if !ok {
			continue
		}
		deptRecorded[emp.Department]++
		if record.Status == attendance.StatusPresent || record.Status == attendance.StatusLate {
			deptPresent[emp.Department]++
		}
	}

	stats := make([]DepartmentStat, 0, len(deptOrder))
	for _, dept := range deptOrder {
		stats = append(stats, DepartmentStat{
			Department: dept,
			Present:    deptPresent[dept],
			Absent:     deptSize[dept] - deptRecorded[dept],
		})
	}
	return stats
}
