package postgres

import (
	"errors"

	"github.com/frahmantamala/attendance-management/internal/attendance"
	attendanceDatamodel "github.com/frahmantamala/attendance-management/internal/core/datamodel/attendance"
	"gorm.io/gorm"
)

// AttendanceRepository implements the attendance.Repository interface using GORM
type AttendanceRepository struct {
	db *gorm.DB
}

// NewAttendanceRepository creates a new attendance repository
func NewAttendanceRepository(db *gorm.DB) *AttendanceRepository {
	return &AttendanceRepository{db: db}
}

func (r *AttendanceRepository) GetByUserAndDate(userID, date string) (*attendance.Attendance, error) {
	var record attendanceDatamodel.Attendance
	err := r.db.Where("user_id = ? AND date = ?", userID, date).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, attendance.ErrNotFound
		}
		return nil, err
	}
	return attendance.FromDataModel(&record), nil
}

func (r *AttendanceRepository) GetByUser(userID string) ([]*attendance.Attendance, error) {
	var records []*attendanceDatamodel.Attendance
	err := r.db.Where("user_id = ?", userID).
		Order("date DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return attendance.FromDataModelSlice(records), nil
}

func (r *AttendanceRepository) GetAll() ([]*attendance.WithUser, error) {
	var records []*attendanceDatamodel.Attendance
	err := r.db.Preload("User").
		Order("date DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return joinUsers(records), nil
}

func (r *AttendanceRepository) GetByDate(date string) ([]*attendance.WithUser, error) {
	var records []*attendanceDatamodel.Attendance
	err := r.db.Preload("User").
		Where("date = ?", date).
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return joinUsers(records), nil
}

func (r *AttendanceRepository) GetByDateRange(from, to, userID string) ([]*attendance.WithUser, error) {
	query := r.db.Preload("User").Where("date >= ? AND date <= ?", from, to)
	if userID != "" {
		query = query.Where("user_id = ?", userID)
	}

	var records []*attendanceDatamodel.Attendance
	if err := query.Order("date DESC").Find(&records).Error; err != nil {
		return nil, err
	}
	return joinUsers(records), nil
}

func (r *AttendanceRepository) Create(record *attendance.Attendance) error {
	err := r.db.Create(attendance.ToDataModel(record)).Error
	if err != nil && errors.Is(err, gorm.ErrDuplicatedKey) {
		return attendance.ErrDuplicateRecord
	}
	return err
}

func (r *AttendanceRepository) Update(record *attendance.Attendance) error {
	return r.db.Save(attendance.ToDataModel(record)).Error
}

// GetAttendanceByUser satisfies the report repository contract.
func (r *AttendanceRepository) GetAttendanceByUser(userID string) ([]*attendance.Attendance, error) {
	return r.GetByUser(userID)
}

func (r *AttendanceRepository) GetAttendanceByUserAndDate(userID, date string) (*attendance.Attendance, error) {
	return r.GetByUserAndDate(userID, date)
}

func (r *AttendanceRepository) GetAttendanceByDate(date string) ([]*attendance.WithUser, error) {
	return r.GetByDate(date)
}

func (r *AttendanceRepository) GetAttendanceByDateRange(from, to, userID string) ([]*attendance.WithUser, error) {
	return r.GetByDateRange(from, to, userID)
}

func joinUsers(records []*attendanceDatamodel.Attendance) []*attendance.WithUser {
	result := make([]*attendance.WithUser, len(records))
	for i, rec := range records {
		joined := &attendance.WithUser{Attendance: *attendance.FromDataModel(rec)}
		if rec.User != nil {
			joined.User = &attendance.UserInfo{
				ID:         rec.User.ID,
				Name:       rec.User.Name,
				EmployeeID: rec.User.EmployeeID,
				Department: rec.User.Department,
				Role:       rec.User.Role,
			}
		}
		result[i] = joined
	}
	return result
}
