package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"servicehub/internal/microservices/http-api/models"
	"servicehub/internal/microservices/http-api/repository"
)

var ErrNotParticipant = errors.New("not a participant of this booking")

// ChatService is the durable side of the chat subsystem: it persists
// messages for the realtime gateway and serves the ordered history read.
type ChatService interface {
	// SaveMessage durably stores a message and returns its canonical stored
	// form with the assigned id.
	SaveMessage(ctx context.Context, message *models.ChatMessage) (*models.ChatMessage, error)
	// HistoryByBooking returns all messages of a booking ascending by sentAt,
	// annotated with sender display names. The caller must be one of the two
	// booking participants.
	HistoryByBooking(ctx context.Context, bookingID, userID int64) ([]models.ChatMessage, error)
}

type chatService struct {
	messageRepo repository.MessageRepository
	bookingRepo repository.BookingRepository
	userRepo    repository.UserRepository
}

func NewChatService(
	messageRepo repository.MessageRepository,
	bookingRepo repository.BookingRepository,
	userRepo repository.UserRepository,
) ChatService {
	return &chatService{
		messageRepo: messageRepo,
		bookingRepo: bookingRepo,
		userRepo:    userRepo,
	}
}

func (s *chatService) SaveMessage(ctx context.Context, message *models.ChatMessage) (*models.ChatMessage, error) {
	if err := s.messageRepo.Create(ctx, message); err != nil {
		return nil, err
	}
	return message, nil
}

func (s *chatService) HistoryByBooking(ctx context.Context, bookingID, userID int64) ([]models.ChatMessage, error) {
	booking, err := s.bookingRepo.FindByID(bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	if !isParticipant(booking, userID) {
		return nil, ErrNotParticipant
	}

	messages, err := s.messageRepo.ListByBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if err := s.annotateSenderNames(messages); err != nil {
		return nil, err
	}
	return messages, nil
}

// isParticipant reports whether userID is the booking's client or its master
func isParticipant(booking *models.Booking, userID int64) bool {
	if booking.ClientID == userID {
		return true
	}
	return booking.Master != nil && booking.Master.UserID == userID
}

func (s *chatService) annotateSenderNames(messages []models.ChatMessage) error {
	if len(messages) == 0 {
		return nil
	}

	seen := make(map[int64]bool)
	ids := make([]int64, 0, 2)
	for _, m := range messages {
		if !seen[m.SenderID] {
			seen[m.SenderID] = true
			ids = append(ids, m.SenderID)
		}
	}

	users, err := s.userRepo.FindByIDs(ids)
	if err != nil {
		return err
	}

	names := make(map[int64]string, len(users))
	for i := range users {
		names[users[i].ID] = users[i].FullName()
	}

	for i := range messages {
		messages[i].SenderName = names[messages[i].SenderID]
	}
	return nil
}
