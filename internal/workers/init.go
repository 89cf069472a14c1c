package workers

import (
	"context"

	"aero-club/tower/internal/services"
)

// InitWorkers launches the background workers.
func InitWorkers(ctx context.Context, fleet *services.FleetService) {
	go StartFleetCacheFiller(ctx, fleet)
}
