package postgres

import (
	"errors"

	userDatamodel "github.com/frahmantamala/attendance-management/internal/core/datamodel/user"
	"github.com/frahmantamala/attendance-management/internal/user"
	"gorm.io/gorm"
)

// UserRepository implements the user.Repository interface using GORM
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetByID(userID string) (*user.User, error) {
	var record userDatamodel.User
	err := r.db.Where("id = ?", userID).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, user.ErrNotFound
		}
		return nil, err
	}
	return user.FromDataModel(&record), nil
}

func (r *UserRepository) GetByEmail(email string) (*user.User, error) {
	var record userDatamodel.User
	err := r.db.Where("email = ?", email).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, user.ErrNotFound
		}
		return nil, err
	}
	return user.FromDataModel(&record), nil
}

func (r *UserRepository) GetByEmployeeID(employeeID string) (*user.User, error) {
	var record userDatamodel.User
	err := r.db.Where("employee_id = ?", employeeID).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, user.ErrNotFound
		}
		return nil, err
	}
	return user.FromDataModel(&record), nil
}

func (r *UserRepository) GetAll() ([]*user.User, error) {
	var records []*userDatamodel.User
	err := r.db.Order("name ASC").Find(&records).Error
	if err != nil {
		return nil, err
	}
	return user.FromDataModelSlice(records), nil
}

func (r *UserRepository) GetEmployees() ([]*user.User, error) {
	var records []*userDatamodel.User
	err := r.db.Where("role = ?", user.RoleEmployee).
		Order("name ASC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return user.FromDataModelSlice(records), nil
}

func (r *UserRepository) Create(u *user.User) error {
	record := user.ToDataModel(u)
	if err := r.db.Create(record).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return user.ErrEmailTaken
		}
		return err
	}
	return nil
}
