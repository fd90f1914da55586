package attendance

import (
	"time"

	userDatamodel "github.com/frahmantamala/attendance-management/internal/core/datamodel/user"
)

// Attendance is the persistence shape of a day record. Date is stored as a
// zero-padded "YYYY-MM-DD" string so range queries can compare
// lexicographically. At most one record exists per (user_id, date).
type Attendance struct {
	ID           string     `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID       string     `json:"user_id" gorm:"column:user_id;type:varchar(36);not null;uniqueIndex:idx_attendance_user_date"`
	Date         string     `json:"date" gorm:"type:varchar(10);not null;uniqueIndex:idx_attendance_user_date"`
	CheckInTime  *time.Time `json:"check_in_time" gorm:"column:check_in_time"`
	CheckOutTime *time.Time `json:"check_out_time" gorm:"column:check_out_time"`
	Status       string     `json:"status" gorm:"not null;default:present"`
	TotalHours   int        `json:"total_hours" gorm:"column:total_hours;default:0"`
	CreatedAt    time.Time  `json:"created_at" gorm:"column:created_at;default:now()"`

	User *userDatamodel.User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

func (Attendance) TableName() string {
	return "attendance"
}
