package repositories

import (
	"context"
	"time"

	"aero-club/tower/internal/constants"
	"aero-club/tower/internal/models/entities"

	"github.com/jmoiron/sqlx"
)

type ReservationRepository struct {
	db *sqlx.DB
}

func NewReservationRepository(db *sqlx.DB) *ReservationRepository {
	return &ReservationRepository{db}
}

// List returns reservations joined with airplane and user display fields.
// futureOnly restricts to rows whose start instant has not passed yet.
func (r *ReservationRepository) List(ctx context.Context, futureOnly bool) ([]entities.Reservation, error) {
	query := constants.ListReservations
	if futureOnly {
		query = constants.ListFutureReservations
	}

	reservations := []entities.Reservation{}
	if err := r.db.SelectContext(ctx, &reservations, query); err != nil {
		return nil, err
	}
	return reservations, nil
}

func (r *ReservationRepository) GetByID(ctx context.Context, id int64) (*entities.Reservation, error) {
	var res entities.Reservation
	err := r.db.QueryRowxContext(ctx, constants.GetReservationByID, id).StructScan(&res)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *ReservationRepository) Insert(ctx context.Context, airplaneID int64, userID string,
	start, end time.Time, requiresReview bool, notes string) (int64, error) {

	var id int64
	err := r.db.QueryRowxContext(ctx, constants.InsertReservation,
		airplaneID, userID, start, end, requiresReview, notes,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *ReservationRepository) Update(ctx context.Context, id int64, airplaneID int64,
	start, end time.Time, notes string) error {

	_, err := r.db.ExecContext(ctx, constants.UpdateReservation, start, end, airplaneID, notes, id)
	return err
}

func (r *ReservationRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, constants.DeleteReservation, id)
	return err
}
