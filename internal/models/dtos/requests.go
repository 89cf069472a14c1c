package dtos

// CreateReservationReq is the POST /reservations body.
// Time fields stay strings until validated; the store expects RFC 3339.
type CreateReservationReq struct {
	ResourceID     int64  `json:"resource_id"`
	UserID         string `json:"user_id"`
	StartTime      string `json:"start_time"`
	EndTime        string `json:"end_time"`
	RequiresReview bool   `json:"requires_review"`
	Notes          string `json:"notes"`
}

// UpdateReservationReq is the PUT /reservations/{id} body.
type UpdateReservationReq struct {
	ResourceID int64  `json:"resource_id"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
	Notes      string `json:"notes"`
}

// InboundMessage is the canonical pair produced by the normalizer,
// regardless of which payload shape the provider sent.
type InboundMessage struct {
	SenderAddress string
	MessageText   string
}
