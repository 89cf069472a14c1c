package workers

import (
	"context"
	"time"

	"aero-club/tower/internal/logging"
	"aero-club/tower/internal/services"
)

// StartFleetCacheFiller keeps the airplane cache warm so /resources never
// has to hit the store on the UI's polling interval.
func StartFleetCacheFiller(ctx context.Context, fleet *services.FleetService) {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	refillFleetCache(ctx, fleet)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			refillFleetCache(ctx, fleet)
		}
	}
}

func refillFleetCache(ctx context.Context, fleet *services.FleetService) {
	if err := fleet.Refresh(ctx); err != nil {
		logging.Warn("Fleet cache refresh failed", "error", err.Error())
	}
}
