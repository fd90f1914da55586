package user

import (
	"errors"
	"time"

	userDatamodel "github.com/frahmantamala/attendance-management/internal/core/datamodel/user"
)

type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Never expose password hash
	Role         string    `json:"role"`
	EmployeeID   string    `json:"employee_id"`
	Department   string    `json:"department"`
	CreatedAt    time.Time `json:"created_at"`
}

const (
	RoleEmployee = "employee"
	RoleManager  = "manager"
)

func (u *User) IsManager() bool {
	return u.Role == RoleManager
}

var (
	ErrNotFound   = errors.New("user not found")
	ErrEmailTaken = errors.New("email already registered")
)

func ToDataModel(u *User) *userDatamodel.User {
	return &userDatamodel.User{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Role:         u.Role,
		EmployeeID:   u.EmployeeID,
		Department:   u.Department,
		CreatedAt:    u.CreatedAt,
	}
}

func FromDataModel(u *userDatamodel.User) *User {
	return &User{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Role:         u.Role,
		EmployeeID:   u.EmployeeID,
		Department:   u.Department,
		CreatedAt:    u.CreatedAt,
	}
}

func FromDataModelSlice(users []*userDatamodel.User) []*User {
	result := make([]*User, len(users))
	for i, u := range users {
		result[i] = FromDataModel(u)
	}
	return result
}
