package gorm

import "time"

type Reservation struct {
	ID             int64     `gorm:"column:id;primaryKey;autoIncrement"`
	AirplaneID     int64     `gorm:"column:airplane_id;not null;index"`
	UserID         string    `gorm:"column:user_id;not null"`
	StartTime      time.Time `gorm:"column:start_time;not null"`
	EndTime        time.Time `gorm:"column:end_time;not null"`
	RequiresReview bool      `gorm:"column:requires_review;default:false"`
	Notes          string    `gorm:"column:notes;size:500;default:''"`

	// Relationships
	Airplane Airplane `gorm:"foreignKey:AirplaneID"`
}

// TableName specifies the table name for GORM
func (Reservation) TableName() string {
	return "reservations"
}
