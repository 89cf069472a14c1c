package dtos

// APIResponse is the standard success/error envelope for the CRUD surface.
type APIResponse struct {
	Status       string `json:"status"`
	Message      string `json:"message,omitempty"`
	ResponseTime string `json:"response_time"`
	Data         any    `json:"data,omitempty"`
}

type CreateReservationResp struct {
	Success bool  `json:"success"`
	ID      int64 `json:"id"`
}

type UpdateReservationResp struct {
	Success bool `json:"success"`
}

// ExtractedBooking is the transient result of parsing a message.
// Field values are the model's raw strings, validated downstream.
type ExtractedBooking struct {
	TailNumber string `json:"tail_number"`
	StartDate  string `json:"start_date"`
	StartTime  string `json:"start_time"`
	EndDate    string `json:"end_date"`
	EndTime    string `json:"end_time"`
}
