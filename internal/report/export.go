package report

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/frahmantamala/attendance-management/internal/attendance"
)

// timeOfDayLayout renders check times the way the report consumers expect,
// 12-hour with an AM/PM suffix.
const timeOfDayLayout = "03:04 PM"

var csvHeader = []string{
	"Employee Name", "Employee ID", "Department", "Date",
	"Check In", "Check Out", "Hours", "Status",
}

// WriteCSV streams the export rows to w. Missing check times render as
// empty fields, not placeholders.
func WriteCSV(w io.Writer, records []*attendance.WithUser) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return err
	}

	for _, r := range records {
		var name, employeeID, department string
		if r.User != nil {
			name = r.User.Name
			employeeID = r.User.EmployeeID
			department = r.User.Department
		}

		var checkIn, checkOut string
		if r.CheckInTime != nil {
			checkIn = r.CheckInTime.Format(timeOfDayLayout)
		}
		if r.CheckOutTime != nil {
			checkOut = r.CheckOutTime.Format(timeOfDayLayout)
		}

		row := []string{
			name, employeeID, department, r.Date,
			checkIn, checkOut, strconv.Itoa(r.TotalHours), r.Status,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
