package attendance

import (
	"errors"
	"math"
	"time"

	attendanceDatamodel "github.com/frahmantamala/attendance-management/internal/core/datamodel/attendance"
)

// Attendance is one user's record for one calendar day. A record is created
// on first check-in and mutated exactly twice: at check-in and at check-out.
type Attendance struct {
	ID           string     `json:"id"`
	UserID       string     `json:"user_id"`
	Date         string     `json:"date"`
	CheckInTime  *time.Time `json:"check_in_time"`
	CheckOutTime *time.Time `json:"check_out_time"`
	Status       string     `json:"status"`
	TotalHours   int        `json:"total_hours"`
	CreatedAt    time.Time  `json:"created_at"`
}

const (
	StatusPresent = "present"
	StatusAbsent  = "absent"
	StatusLate    = "late"
	StatusHalfDay = "half-day"
)

const (
	// DefaultWorkStartHour is the hour of day from which a check-in counts
	// as late. The comparison is on the hour only: 08:59 is present,
	// 09:00 and 09:59 are both late.
	DefaultWorkStartHour = 9

	// DefaultHalfDayHours is the worked-hours threshold below which a day
	// is downgraded to half-day at check-out, whatever the check-in said.
	DefaultHalfDayHours = 4

	// DateLayout keys records by calendar day. Fixed-width and zero-padded,
	// so date ranges compare lexicographically.
	DateLayout = "2006-01-02"
)

var (
	ErrAlreadyCheckedIn  = errors.New("already checked in today")
	ErrAlreadyCheckedOut = errors.New("already checked out today")
	ErrNotCheckedIn      = errors.New("not checked in yet")
	ErrNotFound          = errors.New("attendance record not found")
	ErrDuplicateRecord   = errors.New("attendance record already exists for this date")
)

// Classify buckets a check-in instant as present or late by its local
// hour of day. Minutes are deliberately ignored.
func Classify(checkIn time.Time, workStartHour int) string {
	if checkIn.Hour() >= workStartHour {
		return StatusLate
	}
	return StatusPresent
}

// HoursWorked rounds the worked duration to the nearest whole hour.
func HoursWorked(checkIn, checkOut time.Time) int {
	return int(math.Round(checkOut.Sub(checkIn).Hours()))
}

// DateKey formats an instant as that day's record key.
func DateKey(t time.Time) string {
	return t.Format(DateLayout)
}

func (a *Attendance) CheckedIn() bool {
	return a.CheckInTime != nil
}

func (a *Attendance) CheckedOut() bool {
	return a.CheckOutTime != nil
}

func ToDataModel(a *Attendance) *attendanceDatamodel.Attendance {
	return &attendanceDatamodel.Attendance{
		ID:           a.ID,
		UserID:       a.UserID,
		Date:         a.Date,
		CheckInTime:  a.CheckInTime,
		CheckOutTime: a.CheckOutTime,
		Status:       a.Status,
		TotalHours:   a.TotalHours,
		CreatedAt:    a.CreatedAt,
	}
}

func FromDataModel(a *attendanceDatamodel.Attendance) *Attendance {
	return &Attendance{
		ID:           a.ID,
		UserID:       a.UserID,
		Date:         a.Date,
		CheckInTime:  a.CheckInTime,
		CheckOutTime: a.CheckOutTime,
		Status:       a.Status,
		TotalHours:   a.TotalHours,
		CreatedAt:    a.CreatedAt,
	}
}

func FromDataModelSlice(records []*attendanceDatamodel.Attendance) []*Attendance {
	result := make([]*Attendance, len(records))
	for i, a := range records {
		result[i] = FromDataModel(a)
	}
	return result
}
