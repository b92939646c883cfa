package service

import (
	"errors"

	"gorm.io/gorm"

	"servicehub/internal/microservices/http-api/dto"
	"servicehub/internal/microservices/http-api/models"
	"servicehub/internal/microservices/http-api/repository"
)

var (
	ErrBookingNotFound = errors.New("booking not found")
	ErrInvalidStatus   = errors.New("invalid booking status")
)

type BookingService interface {
	CreateBooking(clientID int64, req dto.CreateBookingRequest) (*models.Booking, error)
	GetBookingsByMaster(masterID int64) ([]models.Booking, error)
	GetBookingsByClient(clientID int64) ([]models.Booking, error)
	UpdateStatus(bookingID int64, status string) error
}

type bookingService struct {
	bookingRepo repository.BookingRepository
	masterRepo  repository.MasterRepository
	serviceRepo repository.ServiceRepository
}

func NewBookingService(
	bookingRepo repository.BookingRepository,
	masterRepo repository.MasterRepository,
	serviceRepo repository.ServiceRepository,
) BookingService {
	return &bookingService{
		bookingRepo: bookingRepo,
		masterRepo:  masterRepo,
		serviceRepo: serviceRepo,
	}
}

// CreateBooking creates a pending booking for the authenticated client.
func (s *bookingService) CreateBooking(clientID int64, req dto.CreateBookingRequest) (*models.Booking, error) {
	// The master and service must exist before the booking is taken
	if _, err := s.masterRepo.FindByID(req.MasterID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("master not found")
		}
		return nil, err
	}
	if _, err := s.serviceRepo.FindByID(req.ServiceID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("service not found")
		}
		return nil, err
	}

	booking := &models.Booking{
		ClientID:       clientID,
		MasterID:       req.MasterID,
		ServiceID:      req.ServiceID,
		ClientName:     req.ClientName,
		ClientPhone:    req.ClientPhone,
		Address:        req.Address,
		ScheduledDate:  req.ScheduledDate,
		ScheduledTime:  req.ScheduledTime,
		Description:    req.Description,
		Status:         models.BookingStatusPending,
		EstimatedPrice: req.EstimatedPrice,
	}

	if err := s.bookingRepo.Create(booking); err != nil {
		return nil, err
	}
	return booking, nil
}

func (s *bookingService) GetBookingsByMaster(masterID int64) ([]models.Booking, error) {
	return s.bookingRepo.FindByMaster(masterID)
}

func (s *bookingService) GetBookingsByClient(clientID int64) ([]models.Booking, error) {
	return s.bookingRepo.FindByClient(clientID)
}

func (s *bookingService) UpdateStatus(bookingID int64, status string) error {
	if !models.ValidBookingStatus(status) {
		return ErrInvalidStatus
	}
	if _, err := s.bookingRepo.FindByID(bookingID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBookingNotFound
		}
		return err
	}
	return s.bookingRepo.UpdateStatus(bookingID, status)
}
