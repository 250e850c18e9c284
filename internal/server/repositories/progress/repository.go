package progress

import (
	"context"

	"github.com/akarpovs/waygate/internal/server/models"
)

type Repository interface {
	Merge(ctx context.Context, studentID string, waypointID int64, delta models.ProgressDelta) (*models.ProgressRecord, error)
	Get(ctx context.Context, studentID string, waypointID int64) (*models.ProgressRecord, error)
}
