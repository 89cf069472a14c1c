package api

import (
	"aero-club/tower/internal/common"
	"aero-club/tower/internal/db"
	"aero-club/tower/internal/db/repositories"
	"aero-club/tower/internal/metrics"
	"aero-club/tower/internal/providers"
	"aero-club/tower/internal/services"

	"github.com/redis/go-redis/v9"
)

type Repositories struct {
	Reservations     *repositories.ReservationRepository
	Airplanes        *repositories.AirplaneRepository
	ReservationsGorm *repositories.ReservationRepositoryGORM
	AirplanesGorm    *repositories.AirplaneRepositoryGORM
}

type Services struct {
	Cache      *common.CacheService
	Fleet      *services.FleetService
	InboundSMS *services.InboundSMSService
}

type Dependencies struct {
	Repo     *Repositories
	Services *Services
	Metrics  *metrics.MetricsRegistry
	Redis    *redis.Client
}

func InitDependencies(metricsReg *metrics.MetricsRegistry) (*Dependencies, error) {

	repos := &Repositories{
		Reservations:     repositories.NewReservationRepository(db.DB),
		Airplanes:        repositories.NewAirplaneRepository(db.DB),
		ReservationsGorm: repositories.NewReservationRepositoryGORM(db.PgDB),
		AirplanesGorm:    repositories.NewAirplaneRepositoryGORM(db.PgDB),
	}

	cacheSvc := common.NewCacheService(600, 1200)
	fleetSvc := services.NewFleetService(cacheSvc, repos.Airplanes)

	smsSvc := services.NewInboundSMSService(
		providers.NewOpenAIProvider(),
		repos.AirplanesGorm,
		repos.ReservationsGorm,
		common.NewSystemClock(),
		services.ClubLocation(),
		metricsReg,
	)

	svcs := &Services{
		Cache:      cacheSvc,
		Fleet:      fleetSvc,
		InboundSMS: smsSvc,
	}

	return &Dependencies{
		Repo:     repos,
		Services: svcs,
		Metrics:  metricsReg,
		Redis:    common.NewRedisClient(),
	}, nil
}
