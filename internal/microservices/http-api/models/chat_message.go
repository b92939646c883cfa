package models

import "time"

// ChatMessage is one persisted chat message inside a booking conversation.
// Immutable once created: the realtime gateway inserts, nothing updates.
// SentAt serializes as RFC 3339 on the wire.
type ChatMessage struct {
	ID         int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	BookingID  int64     `gorm:"not null;index:idx_messages_booking_id" json:"bookingId"`
	SenderID   int64     `gorm:"not null;index" json:"senderId"`
	ReceiverID int64     `gorm:"not null" json:"receiverId"`
	Text       string    `gorm:"not null" json:"text"`
	SentAt     time.Time `gorm:"not null" json:"sentAt"`

	// SenderName is filled in by the history read path only, for rendering
	SenderName string `gorm:"-" json:"senderName,omitempty"`
}

func (ChatMessage) TableName() string {
	return "messages"
}
