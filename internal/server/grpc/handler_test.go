package grpc

import (
	"context"
	"errors"
	"testing"

	"github.com/akarpovs/waygate/internal/common"
	"github.com/akarpovs/waygate/internal/logging"
	pb "github.com/akarpovs/waygate/internal/proto"
	"github.com/akarpovs/waygate/internal/server/models"
	"github.com/akarpovs/waygate/internal/server/services"
	"github.com/golang/protobuf/ptypes/wrappers"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ---- test logger ----

type nopLogger struct{}

func (n nopLogger) Debug(context.Context, string, ...any) {}
func (n nopLogger) Info(context.Context, string, ...any)  {}
func (n nopLogger) Warn(context.Context, string, ...any)  {}
func (n nopLogger) Error(context.Context, string, ...any) {}
func (n nopLogger) With(...any) logging.Logger            { return n }

// ---- fakes ----

type fakeUser struct {
	loginResp *services.TokenPair
	loginErr  error

	refreshResp *services.TokenPair
	refreshErr  error

	logoutErr error

	profileResp  *models.User
	profileErr   error
	profileCalls int

	created    int64
	createErrs []string
	createErr  error
	lastInputs []services.AccountInput
}

func (f *fakeUser) Login(ctx context.Context, username string, password []byte) (*services.TokenPair, error) {
	return f.loginResp, f.loginErr
}
func (f *fakeUser) RefreshToken(ctx context.Context, refresh string) (*services.TokenPair, error) {
	return f.refreshResp, f.refreshErr
}
func (f *fakeUser) Logout(ctx context.Context, refresh string) error { return f.logoutErr }
func (f *fakeUser) GetProfile(ctx context.Context, userID string) (*models.User, error) {
	f.profileCalls++
	if f.profileErr != nil {
		return nil, f.profileErr
	}
	return f.profileResp, nil
}
func (f *fakeUser) CreateAccounts(ctx context.Context, accounts []services.AccountInput) (int64, []string, error) {
	f.lastInputs = accounts
	return f.created, f.createErrs, f.createErr
}

type fakeWaypoint struct {
	getOut *models.Waypoint
	getURL string
	getErr error

	listOut []*models.Waypoint
	listErr error

	createOut *models.Waypoint
	createErr error
}

func (f *fakeWaypoint) Get(ctx context.Context, id int64) (*models.Waypoint, string, error) {
	if f.getErr != nil {
		return nil, "", f.getErr
	}
	return f.getOut, f.getURL, nil
}
func (f *fakeWaypoint) List(ctx context.Context) ([]*models.Waypoint, error) {
	return f.listOut, f.listErr
}
func (f *fakeWaypoint) Create(ctx context.Context, orderIndex int64, title string, content []byte) (*models.Waypoint, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.createOut, nil
}

type fakeProgress struct {
	updateOut *models.ProgressRecord
	updateErr error
	lastDelta models.ProgressDelta

	getOut *models.ProgressRecord
	getErr error
}

func (f *fakeProgress) Update(ctx context.Context, studentID string, waypointID int64, delta models.ProgressDelta) (*models.ProgressRecord, error) {
	f.lastDelta = delta
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return f.updateOut, nil
}
func (f *fakeProgress) Get(ctx context.Context, studentID string, waypointID int64) (*models.ProgressRecord, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

// ---- helpers ----

func newServer(u userSvc, w waypointSvc, p progressSvc) *GRPCServer {
	return &GRPCServer{
		address:   "127.0.0.1:0",
		users:     u,
		waypoints: w,
		progress:  p,
		logger:    nopLogger{},
		jwtSecret: []byte("k"),
	}
}

func ctxWithUser(id string) context.Context {
	return context.WithValue(context.Background(), UserIDKey, id)
}

// ---- tests ----

func TestPing_OK(t *testing.T) {
	s := newServer(&fakeUser{}, &fakeWaypoint{}, &fakeProgress{})
	resp, err := s.Ping(context.Background(), &pb.PingRequest{})
	if err != nil {
		t.Fatalf("Ping error: %v", err)
	}
	if resp.GetStatus() != "OK" {
		t.Fatalf("unexpected status: %q", resp.GetStatus())
	}
}

func TestLogin_OK(t *testing.T) {
	u := &fakeUser{loginResp: &services.TokenPair{AccessToken: "A", RefreshToken: "R"}}
	s := newServer(u, &fakeWaypoint{}, &fakeProgress{})
	resp, err := s.Login(context.Background(), &pb.LoginRequest{Username: "u", Password: "pw"})
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}
	if resp.GetAccessToken() != "A" || resp.GetRefreshToken() != "R" {
		t.Fatalf("unexpected tokens: %+v", resp)
	}
}

func TestLogin_UnauthorizedAndInternal(t *testing.T) {
	s := newServer(&fakeUser{loginErr: common.ErrUnauthorized}, &fakeWaypoint{}, &fakeProgress{})
	_, err := s.Login(context.Background(), &pb.LoginRequest{Username: "u", Password: "x"})
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("want Unauthenticated, got %v", status.Code(err))
	}

	s2 := newServer(&fakeUser{loginErr: errors.New("boom")}, &fakeWaypoint{}, &fakeProgress{})
	_, err = s2.Login(context.Background(), &pb.LoginRequest{Username: "u", Password: "x"})
	if status.Code(err) != codes.Internal {
		t.Fatalf("want Internal, got %v", status.Code(err))
	}
}

func TestRefreshToken_OK(t *testing.T) {
	u := &fakeUser{refreshResp: &services.TokenPair{AccessToken: "a", RefreshToken: "r"}}
	s := newServer(u, &fakeWaypoint{}, &fakeProgress{})
	resp, err := s.RefreshToken(context.Background(), &pb.RefreshTokenRequest{RefreshToken: "r0"})
	if err != nil {
		t.Fatalf("RefreshToken error: %v", err)
	}
	if resp.GetAccessToken() != "a" || resp.GetRefreshToken() != "r" {
		t.Fatalf("unexpected tokens: %+v", resp)
	}
}

func TestRefreshToken_ExpiredAndInternal(t *testing.T) {
	s := newServer(&fakeUser{refreshErr: common.ErrRefreshTokenExpired}, &fakeWaypoint{}, &fakeProgress{})
	_, err := s.RefreshToken(context.Background(), &pb.RefreshTokenRequest{RefreshToken: "r0"})
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("want Unauthenticated, got %v", status.Code(err))
	}
	if status.Convert(err).Message() != "refresh token expired" {
		t.Fatalf("unexpected message: %q", status.Convert(err).Message())
	}

	s2 := newServer(&fakeUser{refreshErr: errors.New("oops")}, &fakeWaypoint{}, &fakeProgress{})
	_, err = s2.RefreshToken(context.Background(), &pb.RefreshTokenRequest{RefreshToken: "r0"})
	if status.Code(err) != codes.Internal {
		t.Fatalf("want Internal, got %v", status.Code(err))
	}
}

func TestLogout_OK_and_Error(t *testing.T) {
	s := newServer(&fakeUser{}, &fakeWaypoint{}, &fakeProgress{})
	if _, err := s.Logout(context.Background(), &pb.LogoutRequest{RefreshToken: "r"}); err != nil {
		t.Fatalf("Logout error: %v", err)
	}

	s2 := newServer(&fakeUser{logoutErr: errors.New("boom")}, &fakeWaypoint{}, &fakeProgress{})
	_, err := s2.Logout(context.Background(), &pb.LogoutRequest{RefreshToken: "r"})
	if status.Code(err) != codes.Internal {
		t.Fatalf("want Internal, got %v", status.Code(err))
	}
}

func TestGetProfile_OK(t *testing.T) {
	u := &fakeUser{profileResp: &models.User{ID: "u1", Role: common.RoleAdmin}}
	s := newServer(u, &fakeWaypoint{}, &fakeProgress{})
	resp, err := s.GetProfile(ctxWithUser("u1"), &pb.GetProfileRequest{})
	if err != nil {
		t.Fatalf("GetProfile error: %v", err)
	}
	if resp.GetUserId() != "u1" || resp.GetRole() != "admin" {
		t.Fatalf("unexpected profile: %+v", resp)
	}
}

func TestGetProfile_MissingContextAndDeletedAccount(t *testing.T) {
	s := newServer(&fakeUser{}, &fakeWaypoint{}, &fakeProgress{})
	_, err := s.GetProfile(context.Background(), &pb.GetProfileRequest{})
	if status.Code(err) != codes.Internal {
		t.Fatalf("want Internal, got %v", status.Code(err))
	}

	s2 := newServer(&fakeUser{profileErr: common.ErrNotFound}, &fakeWaypoint{}, &fakeProgress{})
	_, err = s2.GetProfile(ctxWithUser("gone"), &pb.GetProfileRequest{})
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("want Unauthenticated, got %v", status.Code(err))
	}
}

func TestGetWaypoint_OK(t *testing.T) {
	w := &fakeWaypoint{
		getOut: &models.Waypoint{ID: 5, OrderIndex: 50, Title: "The Bridge"},
		getURL: "https://signed.example/waypoints/abc",
	}
	s := newServer(&fakeUser{}, w, &fakeProgress{})
	resp, err := s.GetWaypoint(ctxWithUser("u1"), &pb.GetWaypointRequest{WaypointId: 5})
	if err != nil {
		t.Fatalf("GetWaypoint error: %v", err)
	}
	got := resp.GetWaypoint()
	if got.GetId() != 5 || got.GetTitle() != "The Bridge" || got.GetContentUrl() != "https://signed.example/waypoints/abc" {
		t.Fatalf("unexpected waypoint: %+v", got)
	}
}

func TestGetWaypoint_NotFound(t *testing.T) {
	s := newServer(&fakeUser{}, &fakeWaypoint{getErr: common.ErrNotFound}, &fakeProgress{})
	_, err := s.GetWaypoint(ctxWithUser("u1"), &pb.GetWaypointRequest{WaypointId: 404})
	if status.Code(err) != codes.NotFound {
		t.Fatalf("want NotFound, got %v", status.Code(err))
	}
}

func TestListWaypoints_OK(t *testing.T) {
	w := &fakeWaypoint{listOut: []*models.Waypoint{
		{ID: 1, OrderIndex: 10, Title: "First Steps"},
		{ID: 2, OrderIndex: 20, Title: "The Crossroads"},
	}}
	s := newServer(&fakeUser{}, w, &fakeProgress{})
	resp, err := s.ListWaypoints(ctxWithUser("u1"), &pb.ListWaypointsRequest{})
	if err != nil {
		t.Fatalf("ListWaypoints error: %v", err)
	}
	if len(resp.GetWaypoints()) != 2 || resp.GetWaypoints()[1].GetTitle() != "The Crossroads" {
		t.Fatalf("unexpected list: %+v", resp.GetWaypoints())
	}
	if resp.GetWaypoints()[0].GetContentUrl() != "" {
		t.Fatalf("list must not carry content urls")
	}
}

func TestUpdateProgress_OK_MapsDelta(t *testing.T) {
	p := &fakeProgress{
		updateOut: &models.ProgressRecord{StudentID: "u1", WaypointID: 3, Completed: true, Attempts: 2},
	}
	s := newServer(&fakeUser{}, &fakeWaypoint{}, p)

	req := &pb.UpdateProgressRequest{
		WaypointId: 3,
		Completed:  &wrappers.BoolValue{Value: true},
		Score:      &wrappers.DoubleValue{Value: 88.5},
		Attempts:   &wrappers.Int64Value{Value: 2},
	}
	resp, err := s.UpdateProgress(ctxWithUser("u1"), req)
	if err != nil {
		t.Fatalf("UpdateProgress error: %v", err)
	}
	if !resp.GetRecord().GetCompleted() || resp.GetRecord().GetAttempts() != 2 {
		t.Fatalf("unexpected record: %+v", resp.GetRecord())
	}

	d := p.lastDelta
	if d.Completed == nil || !*d.Completed || d.Score == nil || *d.Score != 88.5 {
		t.Fatalf("delta not mapped: %+v", d)
	}
	if d.Mistakes != nil {
		t.Fatalf("absent field must stay nil: %+v", d)
	}
	if d.Attempts == nil || *d.Attempts != 2 {
		t.Fatalf("attempts not mapped: %+v", d)
	}
}

func TestUpdateProgress_ErrorMapping(t *testing.T) {
	cases := []struct {
		err  error
		code codes.Code
	}{
		{common.ErrInvalidScore, codes.InvalidArgument},
		{common.ErrValidation, codes.InvalidArgument},
		{common.ErrNotFound, codes.NotFound},
		{common.ErrPersistenceUnavailable, codes.Unavailable},
		{errors.New("boom"), codes.Internal},
	}
	for _, tc := range cases {
		s := newServer(&fakeUser{}, &fakeWaypoint{}, &fakeProgress{updateErr: tc.err})
		_, err := s.UpdateProgress(ctxWithUser("u1"), &pb.UpdateProgressRequest{WaypointId: 1})
		if status.Code(err) != tc.code {
			t.Fatalf("%v: want %v, got %v", tc.err, tc.code, status.Code(err))
		}
	}
}

func TestUpdateProgress_ContextMissingUserID(t *testing.T) {
	s := newServer(&fakeUser{}, &fakeWaypoint{}, &fakeProgress{})
	_, err := s.UpdateProgress(context.Background(), &pb.UpdateProgressRequest{WaypointId: 1})
	if status.Code(err) != codes.Internal {
		t.Fatalf("want Internal, got %v", status.Code(err))
	}
}

func TestGetProgress_OK(t *testing.T) {
	score := 97.5
	p := &fakeProgress{getOut: &models.ProgressRecord{StudentID: "u1", WaypointID: 9, Completed: true, Score: &score, Attempts: 3}}
	s := newServer(&fakeUser{}, &fakeWaypoint{}, p)
	resp, err := s.GetProgress(ctxWithUser("u1"), &pb.GetProgressRequest{WaypointId: 9})
	if err != nil {
		t.Fatalf("GetProgress error: %v", err)
	}
	rec := resp.GetRecord()
	if !rec.GetCompleted() || rec.GetScore().GetValue() != 97.5 || rec.GetAttempts() != 3 {
		t.Fatalf("unexpected record: %+v", rec)
	}
}

func TestGetProgress_Unavailable(t *testing.T) {
	s := newServer(&fakeUser{}, &fakeWaypoint{}, &fakeProgress{getErr: common.ErrPersistenceUnavailable})
	_, err := s.GetProgress(ctxWithUser("u1"), &pb.GetProgressRequest{WaypointId: 9})
	if status.Code(err) != codes.Unavailable {
		t.Fatalf("want Unavailable, got %v", status.Code(err))
	}
}

func TestCreateAccounts_OK(t *testing.T) {
	u := &fakeUser{created: 2, createErrs: []string{"taken: already exists"}}
	s := newServer(u, &fakeWaypoint{}, &fakeProgress{})
	resp, err := s.CreateAccounts(ctxWithUser("admin"), &pb.CreateAccountsRequest{
		Accounts: []*pb.Account{
			{Username: "s1", Password: "pw", Role: "student"},
			{Username: "taken", Password: "pw", Role: "student"},
			{Username: "s2", Password: "pw", Role: "student"},
		},
	})
	if err != nil {
		t.Fatalf("CreateAccounts error: %v", err)
	}
	if resp.GetCreated() != 2 || len(resp.GetErrors()) != 1 {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if len(u.lastInputs) != 3 || u.lastInputs[1].Username != "taken" {
		t.Fatalf("inputs not mapped: %+v", u.lastInputs)
	}
}

func TestCreateWaypoint_OK_and_Duplicate(t *testing.T) {
	w := &fakeWaypoint{createOut: &models.Waypoint{ID: 9, OrderIndex: 30, Title: "The Summit"}}
	s := newServer(&fakeUser{}, w, &fakeProgress{})
	resp, err := s.CreateWaypoint(ctxWithUser("admin"), &pb.CreateWaypointRequest{
		OrderIndex: 30, Title: "The Summit", Content: []byte("# content"),
	})
	if err != nil {
		t.Fatalf("CreateWaypoint error: %v", err)
	}
	if resp.GetWaypoint().GetId() != 9 {
		t.Fatalf("unexpected waypoint: %+v", resp.GetWaypoint())
	}

	s2 := newServer(&fakeUser{}, &fakeWaypoint{createErr: common.ErrAlreadyExists}, &fakeProgress{})
	_, err = s2.CreateWaypoint(ctxWithUser("admin"), &pb.CreateWaypointRequest{OrderIndex: 30, Title: "x"})
	if status.Code(err) != codes.AlreadyExists {
		t.Fatalf("want AlreadyExists, got %v", status.Code(err))
	}
}
