package entities

import "time"

// Reservation is the joined row served by the CRUD surface.
type Reservation struct {
	ID             int64     `db:"id" json:"id"`
	StartTime      time.Time `db:"start_time" json:"start_time"`
	EndTime        time.Time `db:"end_time" json:"end_time"`
	RequiresReview bool      `db:"requires_review" json:"requires_review"`
	Notes          string    `db:"notes" json:"notes"`
	UserName       string    `db:"user_name" json:"user_name"`
	ResourceCode   string    `db:"resource_code" json:"resource_code"`
	ResourceColor  string    `db:"resource_color" json:"resource_color"`
}
