package user

import (
	internal "github.com/frahmantamala/attendance-management/internal"
	"github.com/frahmantamala/attendance-management/internal/core/common/validation"
)

// RegisterDTO represents the request payload for registration. EmployeeID is
// optional; a unique EMP<4-digit> id is generated when absent.
type RegisterDTO struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	Role       string `json:"role,omitempty"`
	EmployeeID string `json:"employee_id,omitempty"`
	Department string `json:"department"`
}

// Validate applies the registration rules. The first failing message is what
// the handler surfaces with the 400.
func (dto RegisterDTO) Validate() *internal.AppError {
	if err := validation.ValidateRegistration(dto.Name, dto.Email, dto.Password, dto.Department); err != nil {
		return err
	}
	if dto.Role != "" && dto.Role != RoleEmployee && dto.Role != RoleManager {
		return internal.NewValidationFieldError("role", "role must be employee or manager", internal.ErrCodeValidationFailed)
	}
	return nil
}

// RegisterResponse wraps the created user, matching the login response shape.
type RegisterResponse struct {
	User *User `json:"user"`
}
