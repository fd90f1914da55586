package events

import (
	"time"

	"github.com/google/uuid"
)

const (
	EventTypeCheckedIn  = "attendance.checked_in"
	EventTypeCheckedOut = "attendance.checked_out"
)

type CheckedInEvent struct {
	BaseEvent
	AttendanceID string    `json:"attendance_id"`
	UserID       string    `json:"user_id"`
	Date         string    `json:"date"`
	Status       string    `json:"status"`
	CheckInTime  time.Time `json:"check_in_time"`
}

func NewCheckedInEvent(attendanceID, userID, date, status string, checkInTime time.Time) *CheckedInEvent {
	return &CheckedInEvent{
		BaseEvent: BaseEvent{
			ID:        uuid.New().String(),
			Type:      EventTypeCheckedIn,
			Timestamp: time.Now(),
			Data: map[string]interface{}{
				"attendance_id": attendanceID,
				"user_id":       userID,
				"date":          date,
				"status":        status,
				"check_in_time": checkInTime,
			},
		},
		AttendanceID: attendanceID,
		UserID:       userID,
		Date:         date,
		Status:       status,
		CheckInTime:  checkInTime,
	}
}

type CheckedOutEvent struct {
	BaseEvent
	AttendanceID string    `json:"attendance_id"`
	UserID       string    `json:"user_id"`
	Date         string    `json:"date"`
	Status       string    `json:"status"`
	TotalHours   int       `json:"total_hours"`
	CheckOutTime time.Time `json:"check_out_time"`
}

func NewCheckedOutEvent(attendanceID, userID, date, status string, totalHours int, checkOutTime time.Time) *CheckedOutEvent {
	return &CheckedOutEvent{
		BaseEvent: BaseEvent{
			ID:        uuid.New().String(),
			Type:      EventTypeCheckedOut,
			Timestamp: time.Now(),
			Data: map[string]interface{}{
				"attendance_id":  attendanceID,
				"user_id":        userID,
				"date":           date,
				"status":         status,
				"total_hours":    totalHours,
				"check_out_time": checkOutTime,
			},
		},
		AttendanceID: attendanceID,
		UserID:       userID,
		Date:         date,
		Status:       status,
		TotalHours:   totalHours,
		CheckOutTime: checkOutTime,
	}
}
