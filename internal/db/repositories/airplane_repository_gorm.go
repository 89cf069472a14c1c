package repositories

import (
	"context"
	"fmt"

	gormModels "aero-club/tower/internal/models/gorm"

	"gorm.io/gorm"
)

type AirplaneRepositoryGORM struct {
	db *gorm.DB
}

// NewAirplaneRepositoryGORM creates a new GORM-based airplane repository
func NewAirplaneRepositoryGORM(db *gorm.DB) *AirplaneRepositoryGORM {
	return &AirplaneRepositoryGORM{db: db}
}

// GetByTailNumber retrieves an airplane by its exact tail number.
// The match is case-sensitive; returns (nil, nil) when no row exists.
func (r *AirplaneRepositoryGORM) GetByTailNumber(ctx context.Context, tailNumber string) (*gormModels.Airplane, error) {
	var airplane gormModels.Airplane

	err := r.db.WithContext(ctx).
		Where("tail_number = ?", tailNumber).
		First(&airplane).Error

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch airplane: %w", err)
	}

	return &airplane, nil
}
