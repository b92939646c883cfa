package models

import "time"

// Booking statuses
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCompleted = "completed"
	BookingStatusCancelled = "cancelled"
)

// ValidBookingStatus reports whether s is an accepted booking status
func ValidBookingStatus(s string) bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCompleted, BookingStatusCancelled:
		return true
	}
	return false
}

type Booking struct {
	ID             int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	ClientID       int64     `gorm:"not null;index" json:"clientId"`
	MasterID       int64     `gorm:"not null;index" json:"masterId"`
	ServiceID      int64     `gorm:"not null" json:"serviceId"`
	ClientName     string    `gorm:"not null" json:"clientName"`
	ClientPhone    string    `gorm:"not null" json:"clientPhone"`
	Address        string    `gorm:"not null" json:"address"`
	ScheduledDate  string    `gorm:"not null" json:"scheduledDate"`
	ScheduledTime  string    `gorm:"not null" json:"scheduledTime"`
	Description    string    `gorm:"not null" json:"description"`
	Status         string    `gorm:"default:'pending'" json:"status"`
	EstimatedPrice float64   `gorm:"type:decimal(10,2)" json:"estimatedPrice,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`

	// Associations
	Master  *Master  `gorm:"foreignKey:MasterID" json:"master,omitempty"`
	Service *Service `gorm:"foreignKey:ServiceID" json:"service,omitempty"`
	Client  *User    `gorm:"foreignKey:ClientID" json:"client,omitempty"`
}

func (Booking) TableName() string {
	return "bookings"
}
