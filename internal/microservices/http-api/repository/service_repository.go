package repository

import (
	"servicehub/internal/microservices/http-api/models"

	"gorm.io/gorm"
)

// ServiceRepository defines the interface for master service offerings.
type ServiceRepository interface {
	Create(service *models.Service) error
	FindByID(id int64) (*models.Service, error)
	FindByMaster(masterID int64) ([]models.Service, error)
}

type serviceRepository struct {
	db *gorm.DB
}

func NewServiceRepository(db *gorm.DB) ServiceRepository {
	return &serviceRepository{db: db}
}

func (r *serviceRepository) Create(service *models.Service) error {
	return r.db.Create(service).Error
}

func (r *serviceRepository) FindByID(id int64) (*models.Service, error) {
	var service models.Service
	if err := r.db.First(&service, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &service, nil
}

func (r *serviceRepository) FindByMaster(masterID int64) ([]models.Service, error) {
	var services []models.Service
	if err := r.db.Where("master_id = ?", masterID).Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}
