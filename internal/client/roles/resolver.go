// Package roles resolves the role attached to an identity. The answer is
// fetched fresh from the server on every call and never cached beyond a
// single authorization decision, so a role change takes effect on the
// next request.
package roles

import (
	"context"
	"fmt"

	"github.com/akarpovs/waygate/internal/client/identity"
	"github.com/akarpovs/waygate/internal/client/models"
)

type api interface {
	GetProfile(ctx context.Context) (*models.Profile, error)
}

type Resolver struct {
	client api
}

func NewResolver(client api) *Resolver {
	return &Resolver{client: client}
}

// Resolve fetches the profile for the given identity. A profile belonging
// to a different subject than the one asked about is treated as
// unresolvable.
func (r *Resolver) Resolve(ctx context.Context, id identity.Identity) (*models.Profile, error) {
	profile, err := r.client.GetProfile(ctx)
	if err != nil {
		return nil, err
	}
	if profile.ID != id.UserID {
		return nil, fmt.Errorf("profile subject mismatch: have %s, want %s", profile.ID, id.UserID)
	}
	return profile, nil
}
