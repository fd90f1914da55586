package user

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/frahmantamala/attendance-management/internal/auth"
	"github.com/google/uuid"
)

// Repository defines the data access methods for users.
type Repository interface {
	GetByID(userID string) (*User, error)
	GetByEmail(email string) (*User, error)
	GetByEmployeeID(employeeID string) (*User, error)
	GetAll() ([]*User, error)
	GetEmployees() ([]*User, error)
	Create(u *User) error
}

// Service handles registration and roster lookups.
type Service struct {
	repo       Repository
	logger     *slog.Logger
	bcryptCost int
}

// NewService creates a new user service
func NewService(repo Repository, logger *slog.Logger, bcryptCost int) *Service {
	return &Service{
		repo:       repo,
		logger:     logger,
		bcryptCost: bcryptCost,
	}
}

// Register creates an account. Email must be unique; a missing employee id
// is generated and retried until unique.
func (s *Service) Register(dto RegisterDTO) (*User, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("registration validation failed", "error", err, "email", dto.Email)
		return nil, err
	}

	if existing, err := s.repo.GetByEmail(dto.Email); err == nil && existing != nil {
		return nil, ErrEmailTaken
	} else if err != nil && !errors.Is(err, ErrNotFound) {
		s.logger.Error("failed to check existing email", "error", err)
		return nil, err
	}

	hash, err := auth.HashPassword(dto.Password, s.bcryptCost)
	if err != nil {
		s.logger.Error("failed to hash password", "error", err)
		return nil, err
	}

	employeeID := dto.EmployeeID
	if employeeID == "" {
		employeeID, err = s.generateEmployeeID()
		if err != nil {
			return nil, err
		}
	}

	role := dto.Role
	if role == "" {
		role = RoleEmployee
	}

	u := &User{
		ID:           uuid.NewString(),
		Name:         dto.Name,
		Email:        dto.Email,
		PasswordHash: hash,
		Role:         role,
		EmployeeID:   employeeID,
		Department:   dto.Department,
		CreatedAt:    time.Now(),
	}

	if err := s.repo.Create(u); err != nil {
		s.logger.Error("failed to create user", "error", err, "email", dto.Email)
		return nil, err
	}

	s.logger.Info("user registered",
		"user_id", u.ID,
		"employee_id", u.EmployeeID,
		"role", u.Role,
		"department", u.Department)

	return u, nil
}

// GetByID retrieves a user by id.
func (s *Service) GetByID(userID string) (*User, error) {
	u, err := s.repo.GetByID(userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}
	return u, nil
}

// Employees returns the roster of employee-role users.
func (s *Service) Employees() ([]*User, error) {
	employees, err := s.repo.GetEmployees()
	if err != nil {
		s.logger.Error("failed to load employees", "error", err)
		return nil, err
	}
	return employees, nil
}

// AllUsers returns every account, managers included.
func (s *Service) AllUsers() ([]*User, error) {
	users, err := s.repo.GetAll()
	if err != nil {
		s.logger.Error("failed to load users", "error", err)
		return nil, err
	}
	return users, nil
}

// generateEmployeeID draws EMP<1000-9999> ids until one is free.
func (s *Service) generateEmployeeID() (string, error) {
	for {
		candidate := fmt.Sprintf("EMP%d", rand.Intn(9000)+1000)
		_, err := s.repo.GetByEmployeeID(candidate)
		if errors.Is(err, ErrNotFound) {
			return candidate, nil
		}
		if err != nil {
			s.logger.Error("failed to check employee id uniqueness", "error", err)
			return "", err
		}
	}
}
