package client

import (
	"context"
	"fmt"

	"github.com/akarpovs/waygate/internal/client/models"
	"github.com/akarpovs/waygate/internal/common"
	pb "github.com/akarpovs/waygate/internal/proto"
	"github.com/golang/protobuf/ptypes/wrappers"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type GRPCClient struct {
	endpointURL  string
	conn         *grpc.ClientConn
	client       pb.WaygateServiceClient
	accessToken  string
	refreshToken string

	// onTokensRefreshed is invoked after the interceptor replaces the token
	// pair mid-call, so the owner can persist the new pair.
	onTokensRefreshed func(accessToken, refreshToken string)
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Delete(common.AccessTokenHeaderName)
	md.Set(common.AccessTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {

	ctx = withAccessToken(ctx, s.accessToken)

	err := invoker(ctx, method, req, reply, cc, opts...)

	if err != nil {

		st, ok := status.FromError(err)
		if !ok {
			return err
		}

		if st.Code() != codes.Unauthenticated {
			return err
		}
		if st.Message() != common.ErrTokenExpired.Error() {
			return err
		}

		if s.refreshToken == "" {
			return err
		}

		refreshTokenResponse, err := s.client.RefreshToken(ctx, &pb.RefreshTokenRequest{RefreshToken: s.refreshToken})
		if err != nil {
			return err
		}

		s.accessToken = refreshTokenResponse.AccessToken
		s.refreshToken = refreshTokenResponse.RefreshToken

		if s.onTokensRefreshed != nil {
			s.onTokensRefreshed(s.accessToken, s.refreshToken)
		}

		// TOKENS REFRESHED, creating context with new Access Token
		ctx = withAccessToken(ctx, s.accessToken)
		return invoker(ctx, method, req, reply, cc, opts...)

	}

	return err
}

func NewWaygateClientService(endpointURL string) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL}
	err := c.InitGRPCClient()
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient() error {

	conn, err := grpc.NewClient(s.endpointURL, grpc.WithTransportCredentials(insecure.NewCredentials()), grpc.WithUnaryInterceptor(s.accessTokenInterceptor))
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewWaygateServiceClient(conn)
	return nil
}

// SetTokens seeds the token pair, e.g. when restoring a cached session.
func (s *GRPCClient) SetTokens(accessToken, refreshToken string) {
	s.accessToken = accessToken
	s.refreshToken = refreshToken
}

// Tokens returns the current token pair.
func (s *GRPCClient) Tokens() (string, string) {
	return s.accessToken, s.refreshToken
}

// OnTokensRefreshed registers a callback fired whenever the interceptor
// rotates the token pair behind the caller's back.
func (s *GRPCClient) OnTokensRefreshed(fn func(accessToken, refreshToken string)) {
	s.onTokensRefreshed = fn
}

func (s *GRPCClient) Login(ctx context.Context, userName string, password []byte) error {

	req := &pb.LoginRequest{Username: userName, Password: string(password)}

	resp, err := s.client.Login(ctx, req)

	if err != nil {
		return s.mapError(err)
	}

	s.accessToken = resp.AccessToken
	s.refreshToken = resp.RefreshToken

	return nil

}

func (s *GRPCClient) Logout(ctx context.Context) error {

	req := &pb.LogoutRequest{RefreshToken: s.refreshToken}

	_, err := s.client.Logout(ctx, req)

	s.accessToken = ""
	s.refreshToken = ""

	if err != nil {
		return s.mapError(err)
	}

	return nil

}

func (s *GRPCClient) GetProfile(ctx context.Context) (*models.Profile, error) {

	resp, err := s.client.GetProfile(ctx, &pb.GetProfileRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}

	return &models.Profile{ID: resp.UserId, Role: common.ParseRole(resp.Role)}, nil
}

func (s *GRPCClient) GetWaypoint(ctx context.Context, id int64) (*models.Waypoint, error) {

	resp, err := s.client.GetWaypoint(ctx, &pb.GetWaypointRequest{WaypointId: id})
	if err != nil {
		return nil, s.mapError(err)
	}

	return waypointFromPb(resp.Waypoint), nil
}

func (s *GRPCClient) ListWaypoints(ctx context.Context) ([]*models.Waypoint, error) {

	resp, err := s.client.ListWaypoints(ctx, &pb.ListWaypointsRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}

	items := make([]*models.Waypoint, 0, len(resp.Waypoints))
	for _, w := range resp.Waypoints {
		items = append(items, waypointFromPb(w))
	}
	return items, nil
}

func (s *GRPCClient) UpdateProgress(ctx context.Context, waypointID int64, d models.Delta) (*models.ProgressRecord, error) {

	req := &pb.UpdateProgressRequest{WaypointId: waypointID}
	if d.Completed != nil {
		req.Completed = &wrappers.BoolValue{Value: *d.Completed}
	}
	if d.Score != nil {
		req.Score = &wrappers.DoubleValue{Value: *d.Score}
	}
	if d.Mistakes != nil {
		req.Mistakes = &wrappers.Int64Value{Value: *d.Mistakes}
	}
	if d.Attempts != nil {
		req.Attempts = &wrappers.Int64Value{Value: *d.Attempts}
	}

	resp, err := s.client.UpdateProgress(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}

	return progressFromPb(resp.Record), nil
}

func (s *GRPCClient) GetProgress(ctx context.Context, waypointID int64) (*models.ProgressRecord, error) {

	resp, err := s.client.GetProgress(ctx, &pb.GetProgressRequest{WaypointId: waypointID})
	if err != nil {
		return nil, s.mapError(err)
	}

	return progressFromPb(resp.Record), nil
}

func (s *GRPCClient) CreateAccounts(ctx context.Context, accounts []models.Account) (int64, []string, error) {

	req := &pb.CreateAccountsRequest{}
	for _, a := range accounts {
		req.Accounts = append(req.Accounts, &pb.Account{Username: a.Username, Password: a.Password, Role: a.Role})
	}

	resp, err := s.client.CreateAccounts(ctx, req)
	if err != nil {
		return 0, nil, s.mapError(err)
	}

	return resp.Created, resp.Errors, nil
}

func (s *GRPCClient) CreateWaypoint(ctx context.Context, orderIndex int64, title string, content []byte) (*models.Waypoint, error) {

	req := &pb.CreateWaypointRequest{OrderIndex: orderIndex, Title: title, Content: content}

	resp, err := s.client.CreateWaypoint(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}

	return waypointFromPb(resp.Waypoint), nil
}

func (s *GRPCClient) Ping(ctx context.Context) error {

	req := &pb.PingRequest{}

	resp, err := s.client.Ping(ctx, req)
	if err != nil {
		return s.mapError(err)
	}

	if resp.Status != "OK" {
		return common.ErrUpstreamUnavailable
	}

	return nil

}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

func waypointFromPb(w *pb.Waypoint) *models.Waypoint {
	if w == nil {
		return nil
	}
	return &models.Waypoint{ID: w.Id, OrderIndex: w.OrderIndex, Title: w.Title, ContentURL: w.ContentUrl}
}

func progressFromPb(r *pb.ProgressRecord) *models.ProgressRecord {
	if r == nil {
		return nil
	}
	rec := &models.ProgressRecord{
		StudentID:  r.StudentId,
		WaypointID: r.WaypointId,
		Completed:  r.Completed,
		Mistakes:   r.Mistakes,
		Attempts:   r.Attempts,
	}
	if r.Score != nil {
		v := r.Score.Value
		rec.Score = &v
	}
	return rec
}

// mapError folds gRPC status codes into the shared error taxonomy so the
// layers above never see transport details.
func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unauthenticated:
		return common.ErrUnauthorized
	case codes.PermissionDenied:
		return common.ErrWrongRole
	case codes.NotFound:
		return common.ErrNotFound
	case codes.AlreadyExists:
		return common.ErrAlreadyExists
	case codes.InvalidArgument:
		return fmt.Errorf("%w: %s", common.ErrValidation, st.Message())
	case codes.Unavailable, codes.DeadlineExceeded:
		return common.ErrUpstreamUnavailable
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
