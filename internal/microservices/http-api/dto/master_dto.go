package dto

import "servicehub/internal/microservices/http-api/models"

// MasterResponse: master profile with its user, services, and primary category
type MasterResponse struct {
	models.Master
	Category *models.ServiceCategory `json:"category,omitempty"`
}

// SearchQuery: parameters accepted by the master search endpoint
type SearchQuery struct {
	Query    string `form:"query"`
	City     string `form:"city"`
	Category int64  `form:"category"`
}
