package dto

// CreateBookingRequest: payload for creating a booking
type CreateBookingRequest struct {
	MasterID       int64   `json:"masterId" binding:"required"`
	ServiceID      int64   `json:"serviceId" binding:"required"`
	ClientName     string  `json:"clientName" binding:"required"`
	ClientPhone    string  `json:"clientPhone" binding:"required"`
	Address        string  `json:"address" binding:"required"`
	ScheduledDate  string  `json:"scheduledDate" binding:"required"`
	ScheduledTime  string  `json:"scheduledTime" binding:"required"`
	Description    string  `json:"description" binding:"required"`
	EstimatedPrice float64 `json:"estimatedPrice"`
}

// UpdateBookingStatusRequest: payload for the booking status transition
type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
