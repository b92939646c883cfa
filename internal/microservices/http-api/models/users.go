package models

import "time"

// User account types
const (
	UserTypeClient = "client"
	UserTypeMaster = "master"
)

type User struct {
	ID         int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Username   string    `gorm:"uniqueIndex;not null" json:"username"`
	Email      string    `gorm:"uniqueIndex;not null" json:"email"`
	Password   string    `gorm:"column:password_hash;not null" json:"-"` // Not show in JSON
	FirstName  string    `gorm:"not null" json:"firstName"`
	LastName   string    `gorm:"not null" json:"lastName"`
	MiddleName string    `json:"middleName,omitempty"`
	Phone      string    `json:"phone,omitempty"`
	UserType   string    `gorm:"not null;default:'client'" json:"userType"` // 'client' or 'master'
	Category   string    `json:"category,omitempty"`
	City       string    `json:"city,omitempty"`
	BirthDate  string    `json:"birthDate,omitempty"`
	Gender     string    `json:"gender,omitempty"`
	About      string    `json:"about,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

func (User) TableName() string {
	return "users"
}

// FullName joins first and last name for display purposes
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
