package grpc

import (
	"context"
	"errors"

	"github.com/akarpovs/waygate/internal/common"
	"github.com/akarpovs/waygate/internal/server/auth"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type ctxKey string

// UserIDKey carries the authenticated user id through the request context.
const UserIDKey ctxKey = "userID"

// methodRoles maps protected methods to the role required to call them.
// Methods absent from both tables (Login, RefreshToken, Logout, Ping) are
// public.
var methodRoles = map[string]common.Role{
	"/waygate.WaygateService/GetWaypoint":    common.RoleStudent,
	"/waygate.WaygateService/ListWaypoints":  common.RoleStudent,
	"/waygate.WaygateService/UpdateProgress": common.RoleStudent,
	"/waygate.WaygateService/GetProgress":    common.RoleStudent,
	"/waygate.WaygateService/CreateAccounts": common.RoleAdmin,
	"/waygate.WaygateService/CreateWaypoint": common.RoleAdmin,
}

// authOnlyMethods need a valid token but accept any role. GetProfile is how
// a client learns its role in the first place, so it cannot be role-gated.
var authOnlyMethods = map[string]bool{
	"/waygate.WaygateService/GetProfile": true,
}

// accessTokenInterceptor authenticates protected methods and enforces the
// role table. The required role is checked against the stored profile on
// every request, never against anything embedded in the token, so demoting
// or promoting a user applies to their very next call.
func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {

	requiredRole, roleGated := methodRoles[info.FullMethod]
	if !roleGated && !authOnlyMethods[info.FullMethod] {
		return handler(ctx, req)
	}

	var accessToken string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		values := md.Get(common.AccessTokenHeaderName)
		if len(values) > 0 {
			accessToken = values[0]
		}
	}
	if len(accessToken) == 0 {
		return nil, status.Error(codes.Unauthenticated, "missing token")
	}

	userID, err := auth.GetUserIDFromToken(accessToken, s.jwtSecret)
	if err != nil {
		if errors.Is(err, common.ErrTokenExpired) {
			return nil, status.Error(codes.Unauthenticated, "token expired")
		}
		return nil, status.Error(codes.Unauthenticated, "invalid token")
	}

	if roleGated {
		// Any failure to establish the role denies access.
		profile, err := s.users.GetProfile(ctx, userID)
		if err != nil {
			return nil, status.Error(codes.PermissionDenied, "wrong role")
		}
		if profile.Role != requiredRole {
			return nil, status.Error(codes.PermissionDenied, "wrong role")
		}
	}

	ctx = context.WithValue(ctx, UserIDKey, userID)

	return handler(ctx, req)
}
