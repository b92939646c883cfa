package models

type ServiceCategory struct {
	ID          int64   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string  `gorm:"not null" json:"name"`
	Description string  `gorm:"not null" json:"description"`
	Icon        string  `gorm:"not null" json:"icon"`
	Color       string  `gorm:"not null" json:"color"`
	BasePrice   float64 `gorm:"type:decimal(10,2);not null" json:"basePrice"`
}

func (ServiceCategory) TableName() string {
	return "service_categories"
}

type Service struct {
	ID          int64   `gorm:"primaryKey;autoIncrement" json:"id"`
	MasterID    int64   `gorm:"not null;index" json:"masterId"`
	CategoryID  int64   `gorm:"not null;index" json:"categoryId"`
	Name        string  `gorm:"not null" json:"name"`
	Description string  `gorm:"not null" json:"description"`
	Price       float64 `gorm:"type:decimal(10,2);not null" json:"price"`
}

func (Service) TableName() string {
	return "services"
}
