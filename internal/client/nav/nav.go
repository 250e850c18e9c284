// Package nav is the navigation orchestrator: the single place where
// authorization outcomes, waypoint resolution, and progress dispatch are
// combined into screen decisions. Denials and recoverable misses become
// redirects; only progress-write failures surface as errors.
package nav

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/akarpovs/waygate/internal/client/guard"
	"github.com/akarpovs/waygate/internal/client/models"
	"github.com/akarpovs/waygate/internal/common"
	"github.com/akarpovs/waygate/internal/logging"
	"github.com/sethvargo/go-retry"
)

// Screen is a navigable surface of the client.
type Screen string

const (
	ScreenLogin               Screen = "login"
	ScreenIntro               Screen = "intro"
	ScreenWaypointList        Screen = "waypoint_list"
	ScreenActiveGame          Screen = "active_game"
	ScreenAdminBulkManagement Screen = "admin_bulk_management"
	ScreenExit                Screen = "exit"
)

// DispositionKind tells the shell whether to render the decided screen
// or to treat the decision as a redirect away from the requested one.
type DispositionKind string

const (
	KindRender   DispositionKind = "render"
	KindRedirect DispositionKind = "redirect"
)

// Disposition is the outcome of a navigation request. It is always
// returned, never thrown; Waypoint and Waypoints carry the payload for
// screens that have one.
type Disposition struct {
	Kind      DispositionKind
	Screen    Screen
	Waypoint  *models.Waypoint
	Waypoints []*models.Waypoint
}

func render(s Screen) Disposition {
	return Disposition{Kind: KindRender, Screen: s}
}

func redirect(s Screen) Disposition {
	return Disposition{Kind: KindRedirect, Screen: s}
}

type authGuard interface {
	Authorize(ctx context.Context, required common.Role) guard.AuthDecision
	SignOut(ctx context.Context)
}

type waypointRepository interface {
	Resolve(ctx context.Context, id int64) (*models.Waypoint, error)
	List(ctx context.Context) ([]*models.Waypoint, error)
}

type progressEngine interface {
	Update(ctx context.Context, studentID string, waypointID int64, d models.Delta) error
}

// Orchestrator is stateless across requests: every decision starts from
// a fresh authorization check.
type Orchestrator struct {
	guard     authGuard
	waypoints waypointRepository
	progress  progressEngine
	logger    logging.Logger

	// progress-write retry policy
	retryAttempts uint64
	retryBackoff  time.Duration
}

func NewOrchestrator(g authGuard, w waypointRepository, p progressEngine, logger logging.Logger) *Orchestrator {
	return &Orchestrator{
		guard:         g,
		waypoints:     w,
		progress:      p,
		logger:        logger,
		retryAttempts: 2,
		retryBackoff:  200 * time.Millisecond,
	}
}

// OpenIntro admits students to the intro screen.
func (o *Orchestrator) OpenIntro(ctx context.Context) Disposition {
	if d := o.guard.Authorize(ctx, common.RoleStudent); !d.Allowed {
		return o.deny(ctx, ScreenIntro, d)
	}
	return render(ScreenIntro)
}

// OpenWaypointList admits students to the ordered waypoint list.
func (o *Orchestrator) OpenWaypointList(ctx context.Context) Disposition {
	d := o.guard.Authorize(ctx, common.RoleStudent)
	if !d.Allowed {
		return o.deny(ctx, ScreenWaypointList, d)
	}

	items, err := o.waypoints.List(ctx)
	if err != nil {
		o.logger.Warn(ctx, "waypoint list unavailable", "error", err)
		return redirect(ScreenLogin)
	}

	disp := render(ScreenWaypointList)
	disp.Waypoints = items
	return disp
}

// OpenGame admits a student to the game screen for one waypoint. The
// repository is only consulted after authorization passes; an unknown
// waypoint is recoverable and lands on the list screen.
func (o *Orchestrator) OpenGame(ctx context.Context, waypointID int64) Disposition {
	d := o.guard.Authorize(ctx, common.RoleStudent)
	if !d.Allowed {
		return o.deny(ctx, ScreenActiveGame, d)
	}

	w, err := o.waypoints.Resolve(ctx, waypointID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return redirect(ScreenWaypointList)
		}
		o.logger.Warn(ctx, "waypoint resolution failed", "waypoint_id", waypointID, "error", err)
		return redirect(ScreenLogin)
	}

	disp := render(ScreenActiveGame)
	disp.Waypoint = w
	return disp
}

// OpenAdmin admits admins to the bulk management screen. The reason for
// a denial is not disclosed to the caller.
func (o *Orchestrator) OpenAdmin(ctx context.Context) Disposition {
	if d := o.guard.Authorize(ctx, common.RoleAdmin); !d.Allowed {
		return o.deny(ctx, ScreenAdminBulkManagement, d)
	}
	return render(ScreenAdminBulkManagement)
}

// ReportProgress dispatches a progress delta for the signed-in student.
// The engine itself never retries; the bounded retry policy for an
// unreachable store lives here. When the store stays unreachable the
// error surfaces to the caller instead of turning into a redirect.
func (o *Orchestrator) ReportProgress(ctx context.Context, waypointID int64, delta models.Delta) error {
	d := o.guard.Authorize(ctx, common.RoleStudent)
	if !d.Allowed {
		if d.Reason == guard.ReasonWrongRole {
			return common.ErrWrongRole
		}
		return common.ErrNoSession
	}

	backoff := retry.WithMaxRetries(o.retryAttempts, retry.NewConstant(o.retryBackoff))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		if err := o.progress.Update(ctx, d.UserID, waypointID, delta); err != nil {
			if errors.Is(err, common.ErrPersistenceUnavailable) {
				return retry.RetryableError(err)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("progress report failed: %w", err)
	}
	return nil
}

// SignOut terminates the session and always lands on the login screen.
func (o *Orchestrator) SignOut(ctx context.Context) Disposition {
	o.guard.SignOut(ctx)
	return redirect(ScreenLogin)
}

func (o *Orchestrator) deny(ctx context.Context, requested Screen, d guard.AuthDecision) Disposition {
	o.logger.Debug(ctx, "entry denied", "screen", string(requested), "reason", string(d.Reason))
	return redirect(ScreenLogin)
}
