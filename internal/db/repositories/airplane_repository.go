package repositories

import (
	"context"

	"aero-club/tower/internal/constants"
	"aero-club/tower/internal/models/entities"

	"github.com/jmoiron/sqlx"
)

type AirplaneRepository struct {
	db *sqlx.DB
}

func NewAirplaneRepository(db *sqlx.DB) *AirplaneRepository {
	return &AirplaneRepository{db}
}

func (r *AirplaneRepository) List(ctx context.Context) ([]entities.Airplane, error) {
	airplanes := []entities.Airplane{}
	if err := r.db.SelectContext(ctx, &airplanes, constants.ListAirplanes); err != nil {
		return nil, err
	}
	return airplanes, nil
}
