package grpc

import (
	"context"

	"github.com/dmitrijs2005/gophdocs/internal/api"
	"github.com/dmitrijs2005/gophdocs/internal/common"
)

func (s *GRPCServer) Ping(ctx context.Context, req *api.Empty) (*api.PingResponse, error) {
	return &api.PingResponse{Status: "OK"}, nil
}

func (s *GRPCServer) SignUp(ctx context.Context, req *api.SignUpRequest) (*api.Session, error) {
	defer common.WipeByteArray(req.Password)

	s.logger.Info(ctx, "Registration request")

	sess, err := s.users.SignUp(ctx, req.Email, req.Password, req.DisplayName)
	if err != nil {
		return nil, s.toStatus(ctx, "sign up", err)
	}

	s.logger.Info(ctx, "Registered", "user_id", sess.User.ID)
	return toAPISession(sess), nil
}

func (s *GRPCServer) SignIn(ctx context.Context, req *api.SignInRequest) (*api.Session, error) {
	defer common.WipeByteArray(req.Password)

	sess, err := s.users.SignIn(ctx, req.Email, req.Password)
	if err != nil {
		return nil, s.toStatus(ctx, "sign in", err)
	}
	return toAPISession(sess), nil
}

func (s *GRPCServer) RefreshSession(ctx context.Context, req *api.RefreshSessionRequest) (*api.Session, error) {
	sess, err := s.users.RefreshSession(ctx, req.RefreshToken)
	if err != nil {
		return nil, s.toStatus(ctx, "refresh session", err)
	}
	return toAPISession(sess), nil
}

func (s *GRPCServer) SignOut(ctx context.Context, req *api.Empty) (*api.Empty, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.users.SignOut(ctx, userID); err != nil {
		return nil, s.toStatus(ctx, "sign out", err)
	}
	return &api.Empty{}, nil
}

func (s *GRPCServer) GetCurrentUser(ctx context.Context, req *api.Empty) (*api.User, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	u, err := s.users.GetUser(ctx, userID)
	if err != nil {
		return nil, s.toStatus(ctx, "get user", err)
	}
	out := toAPIUser(u)
	return &out, nil
}

func (s *GRPCServer) UpdateUser(ctx context.Context, req *api.UpdateUserRequest) (*api.User, error) {
	defer common.WipeByteArray(req.Password)

	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	u, err := s.users.UpdateUser(ctx, userID, req.Email, req.Password)
	if err != nil {
		return nil, s.toStatus(ctx, "update user", err)
	}
	out := toAPIUser(u)
	return &out, nil
}
