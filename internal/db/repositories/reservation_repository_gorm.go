package repositories

import (
	"context"
	"fmt"
	"time"

	gormModels "aero-club/tower/internal/models/gorm"

	"gorm.io/gorm"
)

type ReservationRepositoryGORM struct {
	db *gorm.DB
}

// NewReservationRepositoryGORM creates a new GORM-based reservation repository
func NewReservationRepositoryGORM(db *gorm.DB) *ReservationRepositoryGORM {
	return &ReservationRepositoryGORM{db: db}
}

// Upsert writes one reservation idempotently: a row already holding the same
// airplane, user and start instant is updated in place, otherwise a new row
// is inserted. Returns the reservation id.
func (r *ReservationRepositoryGORM) Upsert(ctx context.Context, res *gormModels.Reservation) (int64, error) {
	var existing gormModels.Reservation

	err := r.db.WithContext(ctx).
		Where("airplane_id = ? AND user_id = ? AND start_time = ?",
			res.AirplaneID, res.UserID, res.StartTime).
		First(&existing).Error

	if err == nil {
		existing.EndTime = res.EndTime
		existing.RequiresReview = res.RequiresReview
		existing.Notes = res.Notes
		if err := r.db.WithContext(ctx).Save(&existing).Error; err != nil {
			return 0, fmt.Errorf("failed to update reservation: %w", err)
		}
		return existing.ID, nil
	}

	if err != gorm.ErrRecordNotFound {
		return 0, fmt.Errorf("failed to look up reservation: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(res).Error; err != nil {
		return 0, fmt.Errorf("failed to insert reservation: %w", err)
	}
	return res.ID, nil
}

// FindInWindow returns reservations for an airplane overlapping [from, to).
// The SMS pipeline uses it to warn about double bookings before the upsert.
func (r *ReservationRepositoryGORM) FindInWindow(ctx context.Context, airplaneID int64, from, to time.Time) ([]gormModels.Reservation, error) {
	var reservations []gormModels.Reservation
	err := r.db.WithContext(ctx).
		Where("airplane_id = ? AND start_time < ? AND end_time > ?", airplaneID, to, from).
		Order("start_time ASC").
		Find(&reservations).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch reservations: %w", err)
	}
	return reservations, nil
}
