package waypoints

import (
	"context"

	"github.com/akarpovs/waygate/internal/server/models"
)

type Repository interface {
	GetByID(ctx context.Context, id int64) (*models.Waypoint, error)
	List(ctx context.Context) ([]*models.Waypoint, error)
	Create(ctx context.Context, w *models.Waypoint) (*models.Waypoint, error)
}
