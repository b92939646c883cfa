package models

import "time"

type Review struct {
	ID         int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	MasterID   int64     `gorm:"not null;index" json:"masterId"`
	ClientID   int64     `gorm:"not null" json:"clientId"`
	BookingID  int64     `gorm:"not null" json:"bookingId"`
	Rating     int       `gorm:"not null" json:"rating"`
	Comment    string    `gorm:"not null" json:"comment"`
	ClientName string    `gorm:"not null" json:"clientName"`
	CreatedAt  time.Time `json:"createdAt"`
}

func (Review) TableName() string {
	return "reviews"
}
