package services

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/akarpovs/waygate/internal/dbx"
	"github.com/akarpovs/waygate/internal/server/models"
	progressrepo "github.com/akarpovs/waygate/internal/server/repositories/progress"
	refreshtokensrepo "github.com/akarpovs/waygate/internal/server/repositories/refreshtokens"
	usersrepo "github.com/akarpovs/waygate/internal/server/repositories/users"
	waypointsrepo "github.com/akarpovs/waygate/internal/server/repositories/waypoints"
)

type errBoom struct{}

func (errBoom) Error() string { return "boom" }

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return db, mock
}

type fakeUsersRepo struct {
	createFn    func(u *models.User) (*models.User, error)
	createCalls int

	byUsername    *models.User
	byUsernameErr error

	byID    *models.User
	byIDErr error
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	f.createCalls++
	if f.createFn != nil {
		return f.createFn(u)
	}
	u.ID = "u-1"
	return u, nil
}

func (f *fakeUsersRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	if f.byUsernameErr != nil {
		return nil, f.byUsernameErr
	}
	return f.byUsername, nil
}

func (f *fakeUsersRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	if f.byIDErr != nil {
		return nil, f.byIDErr
	}
	return f.byID, nil
}

type fakeRefreshRepo struct {
	createErr error

	findOut *models.RefreshToken
	findErr error

	delErr   error
	delCalls int
}

func (f *fakeRefreshRepo) Create(ctx context.Context, userID string, token string, validity time.Duration) error {
	return f.createErr
}

func (f *fakeRefreshRepo) Find(ctx context.Context, token string) (*models.RefreshToken, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.findOut, nil
}

func (f *fakeRefreshRepo) Delete(ctx context.Context, token string) error {
	f.delCalls++
	return f.delErr
}

func (f *fakeRefreshRepo) DeleteExpired(ctx context.Context) error { return nil }

type fakeWaypointsRepo struct {
	getOut *models.Waypoint
	getErr error

	listOut []*models.Waypoint
	listErr error

	createFn func(w *models.Waypoint) (*models.Waypoint, error)
}

func (f *fakeWaypointsRepo) GetByID(ctx context.Context, id int64) (*models.Waypoint, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

func (f *fakeWaypointsRepo) List(ctx context.Context) ([]*models.Waypoint, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.listOut, nil
}

func (f *fakeWaypointsRepo) Create(ctx context.Context, w *models.Waypoint) (*models.Waypoint, error) {
	if f.createFn != nil {
		return f.createFn(w)
	}
	return w, nil
}

type fakeProgressRepo struct {
	mergeOut   *models.ProgressRecord
	mergeErr   error
	lastDelta  models.ProgressDelta
	mergeCalls int

	getOut *models.ProgressRecord
	getErr error
}

func (f *fakeProgressRepo) Merge(ctx context.Context, studentID string, waypointID int64, delta models.ProgressDelta) (*models.ProgressRecord, error) {
	f.mergeCalls++
	f.lastDelta = delta
	if f.mergeErr != nil {
		return nil, f.mergeErr
	}
	return f.mergeOut, nil
}

func (f *fakeProgressRepo) Get(ctx context.Context, studentID string, waypointID int64) (*models.ProgressRecord, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

type fakeRepoManager struct {
	u *fakeUsersRepo
	r *fakeRefreshRepo
	w *fakeWaypointsRepo
	p *fakeProgressRepo
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }

func (m *fakeRepoManager) Users(db dbx.DBTX) usersrepo.Repository                 { return m.u }
func (m *fakeRepoManager) RefreshTokens(db dbx.DBTX) refreshtokensrepo.Repository { return m.r }
func (m *fakeRepoManager) Waypoints(db dbx.DBTX) waypointsrepo.Repository         { return m.w }
func (m *fakeRepoManager) Progress(db dbx.DBTX) progressrepo.Repository           { return m.p }

func ptrBool(b bool) *bool      { return &b }
func ptrF64(f float64) *float64 { return &f }
func ptrI64(i int64) *int64     { return &i }
