package attendance

// UserInfo is the owning-user view attached to joined attendance records.
// Password material never crosses this boundary.
type UserInfo struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	EmployeeID string `json:"employee_id"`
	Department string `json:"department"`
	Role       string `json:"role"`
}

// WithUser is an attendance record joined with its owner, used by manager
// views and the CSV export.
type WithUser struct {
	Attendance
	User *UserInfo `json:"user,omitempty"`
}
