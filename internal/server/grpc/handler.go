package grpc

import (
	"context"
	"errors"

	"github.com/akarpovs/waygate/internal/common"
	pb "github.com/akarpovs/waygate/internal/proto"
	"github.com/akarpovs/waygate/internal/server/models"
	"github.com/akarpovs/waygate/internal/server/services"
	"github.com/golang/protobuf/ptypes/wrappers"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// userIDFromContext returns the user id placed by the interceptor.
func userIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(UserIDKey).(string)
	return id, ok
}

// mapError converts service sentinels to gRPC status codes. Anything
// unrecognized is an internal error and the original text stays server-side.
func mapError(err error) error {
	switch {
	case errors.Is(err, common.ErrUnauthorized):
		return status.Error(codes.Unauthenticated, "unauthorized")
	case errors.Is(err, common.ErrRefreshTokenExpired):
		return status.Error(codes.Unauthenticated, "refresh token expired")
	case errors.Is(err, common.ErrWrongRole):
		return status.Error(codes.PermissionDenied, "wrong role")
	case errors.Is(err, common.ErrNotFound):
		return status.Error(codes.NotFound, "not found")
	case errors.Is(err, common.ErrAlreadyExists):
		return status.Error(codes.AlreadyExists, "already exists")
	case errors.Is(err, common.ErrInvalidScore), errors.Is(err, common.ErrValidation):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, common.ErrPersistenceUnavailable):
		return status.Error(codes.Unavailable, "persistence unavailable")
	default:
		return status.Error(codes.Internal, "internal error")
	}
}

func waypointToPb(w *models.Waypoint, contentURL string) *pb.Waypoint {
	return &pb.Waypoint{
		Id:         w.ID,
		OrderIndex: w.OrderIndex,
		Title:      w.Title,
		ContentUrl: contentURL,
	}
}

func progressToPb(r *models.ProgressRecord) *pb.ProgressRecord {
	rec := &pb.ProgressRecord{
		StudentId:  r.StudentID,
		WaypointId: r.WaypointID,
		Completed:  r.Completed,
		Mistakes:   r.Mistakes,
		Attempts:   r.Attempts,
	}
	if r.Score != nil {
		rec.Score = &wrappers.DoubleValue{Value: *r.Score}
	}
	return rec
}

func deltaFromPb(req *pb.UpdateProgressRequest) models.ProgressDelta {
	var delta models.ProgressDelta
	if req.Completed != nil {
		v := req.Completed.Value
		delta.Completed = &v
	}
	if req.Score != nil {
		v := req.Score.Value
		delta.Score = &v
	}
	if req.Mistakes != nil {
		v := req.Mistakes.Value
		delta.Mistakes = &v
	}
	if req.Attempts != nil {
		v := req.Attempts.Value
		delta.Attempts = &v
	}
	return delta
}

func (s *GRPCServer) Login(ctx context.Context, req *pb.LoginRequest) (*pb.LoginResponse, error) {

	tokens, err := s.users.Login(ctx, req.Username, []byte(req.Password))
	if err != nil {
		s.logger.Info(ctx, "Login rejected", "username", req.Username)
		return nil, mapError(err)
	}

	s.logger.Info(ctx, "Login", "username", req.Username)
	return &pb.LoginResponse{AccessToken: tokens.AccessToken, RefreshToken: tokens.RefreshToken}, nil
}

func (s *GRPCServer) RefreshToken(ctx context.Context, req *pb.RefreshTokenRequest) (*pb.RefreshTokenResponse, error) {

	tokens, err := s.users.RefreshToken(ctx, req.RefreshToken)
	if err != nil {
		return nil, mapError(err)
	}

	return &pb.RefreshTokenResponse{AccessToken: tokens.AccessToken, RefreshToken: tokens.RefreshToken}, nil
}

func (s *GRPCServer) Logout(ctx context.Context, req *pb.LogoutRequest) (*pb.LogoutResponse, error) {

	if err := s.users.Logout(ctx, req.RefreshToken); err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, mapError(err)
	}

	return &pb.LogoutResponse{}, nil
}

func (s *GRPCServer) GetProfile(ctx context.Context, req *pb.GetProfileRequest) (*pb.GetProfileResponse, error) {

	userID, ok := userIDFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Internal, "no user id in context")
	}

	user, err := s.users.GetProfile(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			// valid token for a deleted account
			return nil, status.Error(codes.Unauthenticated, "unauthorized")
		}
		return nil, mapError(err)
	}

	return &pb.GetProfileResponse{UserId: user.ID, Role: user.Role.String()}, nil
}

func (s *GRPCServer) GetWaypoint(ctx context.Context, req *pb.GetWaypointRequest) (*pb.GetWaypointResponse, error) {

	w, url, err := s.waypoints.Get(ctx, req.WaypointId)
	if err != nil {
		return nil, mapError(err)
	}

	return &pb.GetWaypointResponse{Waypoint: waypointToPb(w, url)}, nil
}

func (s *GRPCServer) ListWaypoints(ctx context.Context, req *pb.ListWaypointsRequest) (*pb.ListWaypointsResponse, error) {

	list, err := s.waypoints.List(ctx)
	if err != nil {
		return nil, mapError(err)
	}

	resp := &pb.ListWaypointsResponse{}
	for _, w := range list {
		resp.Waypoints = append(resp.Waypoints, waypointToPb(w, ""))
	}
	return resp, nil
}

func (s *GRPCServer) UpdateProgress(ctx context.Context, req *pb.UpdateProgressRequest) (*pb.UpdateProgressResponse, error) {

	userID, ok := userIDFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Internal, "no user id in context")
	}

	rec, err := s.progress.Update(ctx, userID, req.WaypointId, deltaFromPb(req))
	if err != nil {
		return nil, mapError(err)
	}

	return &pb.UpdateProgressResponse{Record: progressToPb(rec)}, nil
}

func (s *GRPCServer) GetProgress(ctx context.Context, req *pb.GetProgressRequest) (*pb.GetProgressResponse, error) {

	userID, ok := userIDFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Internal, "no user id in context")
	}

	rec, err := s.progress.Get(ctx, userID, req.WaypointId)
	if err != nil {
		return nil, mapError(err)
	}

	return &pb.GetProgressResponse{Record: progressToPb(rec)}, nil
}

func (s *GRPCServer) CreateAccounts(ctx context.Context, req *pb.CreateAccountsRequest) (*pb.CreateAccountsResponse, error) {

	accounts := make([]services.AccountInput, 0, len(req.Accounts))
	for _, a := range req.Accounts {
		accounts = append(accounts, services.AccountInput{
			Username: a.Username,
			Password: a.Password,
			Role:     a.Role,
		})
	}

	created, errs, err := s.users.CreateAccounts(ctx, accounts)
	if err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, mapError(err)
	}

	s.logger.Info(ctx, "Accounts created", "count", created)
	return &pb.CreateAccountsResponse{Created: created, Errors: errs}, nil
}

func (s *GRPCServer) CreateWaypoint(ctx context.Context, req *pb.CreateWaypointRequest) (*pb.CreateWaypointResponse, error) {

	w, err := s.waypoints.Create(ctx, req.OrderIndex, req.Title, req.Content)
	if err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, mapError(err)
	}

	s.logger.Info(ctx, "Waypoint created", "id", w.ID, "title", w.Title)
	return &pb.CreateWaypointResponse{Waypoint: waypointToPb(w, "")}, nil
}

func (s *GRPCServer) Ping(ctx context.Context, req *pb.PingRequest) (*pb.PingResponse, error) {

	return &pb.PingResponse{Status: "OK"}, nil
}
