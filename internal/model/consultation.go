package model

const ConsultationStatusPending = "pending"

// ConsultationRequest is a booking for a consultation on a calendar date
type ConsultationRequest struct {
	Base
	Name   string `db:"name" json:"name"`
	Email  string `db:"email" json:"email"`
	Date   string `db:"date" json:"date"`
	Status string `db:"status" json:"status"`
}

// ConsultationInput is the normalized consultation form
type ConsultationInput struct {
	Name  string `form:"name" validate:"required"`
	Email string `form:"email" validate:"required,email"`
	Date  string `form:"date" validate:"required,isodate"`
}

// ConsultationDetails echoes the stored booking
type ConsultationDetails struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Date   string `json:"date"`
	Status string `json:"status"`
}

// ConsultationResponse is the body returned by POST /api/consultation
type ConsultationResponse struct {
	Status  string              `json:"status"`
	Message string              `json:"message"`
	Details ConsultationDetails `json:"details"`
}
