package services

import (
	"context"
	"time"

	"aero-club/tower/internal/common"
	"aero-club/tower/internal/constants"
	"aero-club/tower/internal/db/repositories"
	"aero-club/tower/internal/models/entities"
)

const fleetCacheKey = string(constants.CachePrefixFleet) + "ALL"
const fleetCacheTTL = 10 * time.Minute

// FleetService serves the airplane lookup table through the in-memory
// cache. The fleet changes rarely; a background worker keeps the cache warm.
type FleetService struct {
	cache *common.CacheService
	repo  *repositories.AirplaneRepository
}

func NewFleetService(cache *common.CacheService, repo *repositories.AirplaneRepository) *FleetService {
	return &FleetService{cache: cache, repo: repo}
}

// ListAirplanes returns the fleet, from cache when warm.
func (s *FleetService) ListAirplanes(ctx context.Context) ([]entities.Airplane, error) {
	val, err := s.cache.GetOrSet(fleetCacheKey, fleetCacheTTL, func() (any, error) {
		return s.repo.List(ctx)
	})
	if err != nil {
		return nil, err
	}

	if airplanes, ok := val.([]entities.Airplane); ok {
		return airplanes, nil
	}
	return s.repo.List(ctx)
}

// Refresh reloads the fleet into the cache, bypassing any cached value.
func (s *FleetService) Refresh(ctx context.Context) error {
	airplanes, err := s.repo.List(ctx)
	if err != nil {
		return err
	}
	s.cache.Set(fleetCacheKey, airplanes, fleetCacheTTL)
	return nil
}
