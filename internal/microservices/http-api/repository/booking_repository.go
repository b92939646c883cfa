package repository

import (
	"servicehub/internal/microservices/http-api/models"

	"gorm.io/gorm"
)

// BookingRepository defines the interface for booking data operations.
type BookingRepository interface {
	Create(booking *models.Booking) error
	FindByID(id int64) (*models.Booking, error)
	FindByMaster(masterID int64) ([]models.Booking, error)
	FindByClient(clientID int64) ([]models.Booking, error)
	UpdateStatus(id int64, status string) error
}

type bookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) Create(booking *models.Booking) error {
	return r.db.Create(booking).Error
}

func (r *bookingRepository) FindByID(id int64) (*models.Booking, error) {
	var booking models.Booking
	if err := r.db.Preload("Master").Preload("Master.User").First(&booking, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) FindByMaster(masterID int64) ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.db.
		Preload("Master").Preload("Master.User").Preload("Master.Services").
		Preload("Service").Preload("Client").
		Where("master_id = ?", masterID).
		Order("created_at DESC").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *bookingRepository) FindByClient(clientID int64) ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.db.
		Preload("Master").Preload("Master.User").Preload("Master.Services").
		Preload("Service").Preload("Client").
		Where("client_id = ?", clientID).
		Order("created_at DESC").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *bookingRepository) UpdateStatus(id int64, status string) error {
	return r.db.Model(&models.Booking{}).
		Where("id = ?", id).
		Update("status", status).Error
}
