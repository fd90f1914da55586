package report_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frahmantamala/attendance-management/internal/attendance"
	"github.com/frahmantamala/attendance-management/internal/report"
	"github.com/frahmantamala/attendance-management/internal/user"
)

func TestReport(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Report Module Suite")
}

func record(userID, date, status string, hours int) *attendance.Attendance {
	return &attendance.Attendance{
		ID:         userID + "-" + date,
		UserID:     userID,
		Date:       date,
		Status:     status,
		TotalHours: hours,
	}
}

func withUser(userID, date, status string) *attendance.WithUser {
	return &attendance.WithUser{
		Attendance: *record(userID, date, status, 0),
	}
}

func employee(id, department string) *user.User {
	return &user.User{
		ID:         id,
		Name:       "Employee " + id,
		Role:       user.RoleEmployee,
		Department: department,
	}
}

var _ = Describe("Summarize", func() {
	It("counts each status and sums hours", func() {
		stats := report.Summarize([]*attendance.Attendance{
			record("u1", "2026-03-02", attendance.StatusPresent, 9),
			record("u1", "2026-03-03", attendance.StatusPresent, 8),
			record("u1", "2026-03-04", attendance.StatusLate, 8),
			record("u1", "2026-03-05", attendance.StatusHalfDay, 3),
			record("u1", "2026-03-06", attendance.StatusAbsent, 0),
		})

		Expect(stats.TotalPresent).To(Equal(2))
		Expect(stats.TotalLate).To(Equal(1))
		Expect(stats.TotalHalfDay).To(Equal(1))
		Expect(stats.TotalAbsent).To(Equal(1))
		Expect(stats.TotalHours).To(Equal(28))
	})

	It("never synthesizes absence for missing days", func() {
		stats := report.Summarize([]*attendance.Attendance{
			record("u1", "2026-03-02", attendance.StatusPresent, 9),
		})

		Expect(stats.TotalAbsent).To(BeZero())
	})

	It("returns zeroes for an empty input", func() {
		Expect(report.Summarize(nil)).To(Equal(report.DashboardStats{}))
	})
})

var _ = Describe("FilterRange", func() {
	records := []*attendance.Attendance{
		record("u1", "2026-02-28", attendance.StatusPresent, 8),
		record("u1", "2026-03-01", attendance.StatusPresent, 8),
		record("u1", "2026-03-15", attendance.StatusLate, 8),
		record("u1", "2026-03-31", attendance.StatusPresent, 8),
		record("u1", "2026-04-01", attendance.StatusPresent, 8),
	}

	It("keeps records on the bounds, inclusive", func() {
		filtered := report.FilterRange(records, "2026-03-01", "2026-03-31")

		Expect(filtered).To(HaveLen(3))
		Expect(filtered[0].Date).To(Equal("2026-03-01"))
		Expect(filtered[2].Date).To(Equal("2026-03-31"))
	})

	It("returns empty for a range with no records", func() {
		Expect(report.FilterRange(records, "2025-01-01", "2025-12-31")).To(BeEmpty())
	})
})

var _ = Describe("AbsentEmployees", func() {
	It("returns exactly the employees with no record today", func() {
		employees := []*user.User{
			employee("u1", "Engineering"),
			employee("u2", "Engineering"),
			employee("u3", "Finance"),
			employee("u4", "Finance"),
			employee("u5", "Operations"),
		}
		todays := []*attendance.WithUser{
			withUser("u1", "2026-03-09", attendance.StatusPresent),
			withUser("u3", "2026-03-09", attendance.StatusLate),
			withUser("u5", "2026-03-09", attendance.StatusHalfDay),
		}

		absent := report.AbsentEmployees(employees, todays)

		Expect(absent).To(HaveLen(2))
		Expect(absent[0].ID).To(Equal("u2"))
		Expect(absent[1].ID).To(Equal("u4"))
	})

	It("treats historical statuses as irrelevant", func() {
		employees := []*user.User{employee("u1", "Engineering")}
		// even an explicit absent record counts as "recorded today"
		todays := []*attendance.WithUser{withUser("u1", "2026-03-09", attendance.StatusAbsent)}

		Expect(report.AbsentEmployees(employees, todays)).To(BeEmpty())
	})
})

var _ = Describe("WeeklyTrend", func() {
	It("buckets records into Sun through Sat", func() {
		// 2026-03-08 is a Sunday
		records := []*attendance.WithUser{
			withUser("u1", "2026-03-09", attendance.StatusPresent),
			withUser("u2", "2026-03-09", attendance.StatusLate),
			withUser("u1", "2026-03-11", attendance.StatusPresent),
			withUser("u2", "2026-03-14", attendance.StatusAbsent),
		}

		trend := report.WeeklyTrend(records, "2026-03-08")

		Expect(trend).To(HaveLen(7))
		Expect(trend[0].Day).To(Equal("Sun"))
		Expect(trend[6].Day).To(Equal("Sat"))

		Expect(trend[1].Present).To(Equal(1)) // Monday
		Expect(trend[1].Late).To(Equal(1))
		Expect(trend[3].Present).To(Equal(1)) // Wednesday
		Expect(trend[6].Absent).To(Equal(1)) // Saturday
		Expect(trend[2].Present).To(BeZero())
	})
})

var _ = Describe("DepartmentBreakdown", func() {
	It("counts present and late as present, gaps as absent", func() {
		employees := []*user.User{
			employee("u1", "Engineering"),
			employee("u2", "Engineering"),
			employee("u3", "Engineering"),
			employee("u4", "Finance"),
		}
		todays := []*attendance.WithUser{
			withUser("u1", "2026-03-09", attendance.StatusPresent),
			withUser("u2", "2026-03-09", attendance.StatusLate),
		}

		stats := report.DepartmentBreakdown(employees, todays)

		Expect(stats).To(HaveLen(2))
		Expect(stats[0].Department).To(Equal("Engineering"))
		Expect(stats[0].Present).To(Equal(2))
		Expect(stats[0].Absent).To(Equal(1))
		Expect(stats[1].Department).To(Equal("Finance"))
		Expect(stats[1].Present).To(BeZero())
		Expect(stats[1].Absent).To(Equal(1))
	})

	It("does not count a half-day record as present", func() {
		employees := []*user.User{employee("u1", "Engineering")}
		todays := []*attendance.WithUser{
			withUser("u1", "2026-03-09", attendance.StatusHalfDay),
		}

		stats := report.DepartmentBreakdown(employees, todays)

		Expect(stats[0].Present).To(BeZero())
		// recorded, so not an absence either
		Expect(stats[0].Absent).To(BeZero())
	})
})
