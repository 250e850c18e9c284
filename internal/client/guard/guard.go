// Package guard makes the single yes/no call that gates every entry
// point: is there a session, and does it carry the required role. The
// guard is read-only; it has no side effects on the session.
package guard

import (
	"context"

	"github.com/akarpovs/waygate/internal/client/identity"
	"github.com/akarpovs/waygate/internal/client/models"
	"github.com/akarpovs/waygate/internal/common"
)

// Reason explains a denial. ReasonOk accompanies every allowed decision.
type Reason string

const (
	ReasonOk        Reason = "ok"
	ReasonNoSession Reason = "no_session"
	ReasonWrongRole Reason = "wrong_role"
)

// AuthDecision is the outcome of one authorization check. UserID is set
// only when the decision is allowed.
type AuthDecision struct {
	Allowed bool
	Reason  Reason
	UserID  string
}

type identityProvider interface {
	CurrentIdentity(ctx context.Context) (*identity.Identity, error)
	SignOut(ctx context.Context)
}

type roleResolver interface {
	Resolve(ctx context.Context, id identity.Identity) (*models.Profile, error)
}

type Guard struct {
	identity identityProvider
	roles    roleResolver
}

func NewGuard(ip identityProvider, rr roleResolver) *Guard {
	return &Guard{identity: ip, roles: rr}
}

// Authorize decides whether the current session may enter a surface that
// requires the given role. Pass common.RoleUnknown when any signed-in
// user is acceptable.
//
// Every failure to establish the facts fails closed: no identity or an
// unreachable provider reads as "no session"; an unfetchable or
// mismatched role reads as "wrong role".
func (g *Guard) Authorize(ctx context.Context, required common.Role) AuthDecision {
	id, err := g.identity.CurrentIdentity(ctx)
	if err != nil || id == nil {
		return AuthDecision{Allowed: false, Reason: ReasonNoSession}
	}

	if required == common.RoleUnknown {
		return AuthDecision{Allowed: true, Reason: ReasonOk, UserID: id.UserID}
	}

	profile, err := g.roles.Resolve(ctx, *id)
	if err != nil || profile.Role != required {
		return AuthDecision{Allowed: false, Reason: ReasonWrongRole}
	}

	return AuthDecision{Allowed: true, Reason: ReasonOk, UserID: id.UserID}
}

// SignOut terminates the current session. The provider swallows partial
// failures, so from here sign-out always succeeds.
func (g *Guard) SignOut(ctx context.Context) {
	g.identity.SignOut(ctx)
}
