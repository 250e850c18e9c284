// Package grpc implements the Waygate gRPC endpoint: the transport server,
// the session/role interceptor, and the per-method handlers.
package grpc

import (
	"context"
	"net"

	"github.com/akarpovs/waygate/internal/logging"
	pb "github.com/akarpovs/waygate/internal/proto"
	"github.com/akarpovs/waygate/internal/server/models"
	"github.com/akarpovs/waygate/internal/server/services"
	"google.golang.org/grpc"
)

// Narrow service views consumed by the handlers; the concrete types live in
// the services package.
type userSvc interface {
	Login(ctx context.Context, username string, password []byte) (*services.TokenPair, error)
	RefreshToken(ctx context.Context, refreshToken string) (*services.TokenPair, error)
	Logout(ctx context.Context, refreshToken string) error
	GetProfile(ctx context.Context, userID string) (*models.User, error)
	CreateAccounts(ctx context.Context, accounts []services.AccountInput) (int64, []string, error)
}

type waypointSvc interface {
	Get(ctx context.Context, id int64) (*models.Waypoint, string, error)
	List(ctx context.Context) ([]*models.Waypoint, error)
	Create(ctx context.Context, orderIndex int64, title string, content []byte) (*models.Waypoint, error)
}

type progressSvc interface {
	Update(ctx context.Context, studentID string, waypointID int64, delta models.ProgressDelta) (*models.ProgressRecord, error)
	Get(ctx context.Context, studentID string, waypointID int64) (*models.ProgressRecord, error)
}

type GRPCServer struct {
	pb.UnimplementedWaygateServiceServer
	address   string
	users     userSvc
	waypoints waypointSvc
	progress  progressSvc
	logger    logging.Logger
	jwtSecret []byte
}

func NewGRPCServer(a string, l logging.Logger, us userSvc, ws waypointSvc, ps progressSvc, secretKey string) (*GRPCServer, error) {
	return &GRPCServer{
		address:   a,
		logger:    l.With("module", "grpc_server"),
		users:     us,
		waypoints: ws,
		progress:  ps,
		jwtSecret: []byte(secretKey),
	}, nil
}

func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	// creates gRPC-server
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.accessTokenInterceptor))

	// registers service
	pb.RegisterWaygateServiceServer(srv, s)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", s.address)

	// starts accepting incoming connections
	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
