package models

import (
	"golang.org/x/crypto/bcrypt"
)

// User represents a user in the system
type User struct {
	BaseModel
	Username string `gorm:"uniqueIndex;size:80;not null" json:"username"`
	Email    string `gorm:"uniqueIndex;size:120;not null" json:"email"`
	Password string `gorm:"size:255;not null" json:"-"` // Never send password in JSON
	Role     Role   `gorm:"size:50;default:'patient'" json:"role"`

	// Relations (not always preloaded)
	RefreshTokens []RefreshToken `gorm:"foreignKey:UserID" json:"-"`
	Appointments  []Appointment  `gorm:"foreignKey:PatientID" json:"-"`
}

// UserSanitized is the wire shape of a user. The password hash is never
// part of it and created_at is rendered as an ISO-8601 string.
type UserSanitized struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Role      Role   `json:"role"`
	CreatedAt string `json:"created_at"`
}

// SetPassword hashes a password and sets it on the user
func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashedPassword)
	return nil
}

// CheckPassword compares a password with the user's hashed password
func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	return err == nil
}

// Sanitize creates a UserSanitized struct from a User model, excluding sensitive data.
func (u *User) Sanitize() UserSanitized {
	return UserSanitized{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: FormatDateTime(u.CreatedAt),
	}
}
