// Package waypoints is the client-side waypoint repository: it resolves
// waypoint metadata through the Waygate API and downloads content bodies
// from the presigned URLs the server mints.
package waypoints

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/akarpovs/waygate/internal/client/models"
)

type api interface {
	GetWaypoint(ctx context.Context, id int64) (*models.Waypoint, error)
	ListWaypoints(ctx context.Context) ([]*models.Waypoint, error)
}

type Repository struct {
	client api
	http   *http.Client
}

func NewRepository(client api) *Repository {
	return &Repository{client: client, http: &http.Client{}}
}

// Resolve returns the waypoint with the given id, including a fresh
// presigned content URL. Unknown ids surface as common.ErrNotFound,
// which callers treat as recoverable.
func (r *Repository) Resolve(ctx context.Context, id int64) (*models.Waypoint, error) {
	return r.client.GetWaypoint(ctx, id)
}

// List returns all waypoints in order_index order. Listings carry no
// content URLs.
func (r *Repository) List(ctx context.Context) ([]*models.Waypoint, error) {
	return r.client.ListWaypoints(ctx)
}

// FetchContent downloads a waypoint body from its presigned URL.
func (r *Repository) FetchContent(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := r.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("content download failed: %s", resp.Status)
	}

	return io.ReadAll(resp.Body)
}
