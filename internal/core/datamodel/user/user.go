package user

import "time"

// User is the persistence shape of an account. IDs are UUID strings so the
// same value can key both relational and document stores.
type User struct {
	ID           string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name         string    `json:"name" gorm:"not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"column:password_hash;not null"`
	Role         string    `json:"role" gorm:"not null;default:employee"`
	EmployeeID   string    `json:"employee_id" gorm:"column:employee_id;uniqueIndex;not null"`
	Department   string    `json:"department" gorm:"not null"`
	CreatedAt    time.Time `json:"created_at" gorm:"column:created_at;default:now()"`
}

func (User) TableName() string {
	return "users"
}
