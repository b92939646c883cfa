package dto

// CreateReviewRequest: payload for creating a review on a completed booking
type CreateReviewRequest struct {
	MasterID  int64  `json:"masterId" binding:"required"`
	BookingID int64  `json:"bookingId" binding:"required"`
	Rating    int    `json:"rating" binding:"required,min=1,max=5"`
	Comment   string `json:"comment" binding:"required"`
}
