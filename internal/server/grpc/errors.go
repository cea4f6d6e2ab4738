package grpc

import (
	"context"
	"errors"
	"strings"

	"github.com/dmitrijs2005/gophdocs/internal/common"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// toStatus maps a service error to a gRPC status. Unknown errors are logged
// and reported as Internal without details.
func (s *GRPCServer) toStatus(ctx context.Context, op string, err error) error {
	switch {
	case errors.Is(err, common.ErrorNotFound):
		return status.Error(codes.NotFound, common.ErrorNotFound.Error())
	case errors.Is(err, common.ErrorAlreadyExists):
		return status.Error(codes.AlreadyExists, common.ErrorAlreadyExists.Error())
	case errors.Is(err, common.ErrorValidation):
		return status.Error(codes.InvalidArgument, validationMessage(err))
	case errors.Is(err, common.ErrorUnauthorized), errors.Is(err, common.ErrorInvalidLoginPassword):
		return status.Error(codes.Unauthenticated, common.ErrorInvalidLoginPassword.Error())
	case errors.Is(err, common.ErrRefreshTokenExpired):
		return status.Error(codes.Unauthenticated, common.ErrRefreshTokenExpired.Error())
	case errors.Is(err, common.ErrInvalidToken):
		return status.Error(codes.Unauthenticated, common.ErrInvalidToken.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	}

	s.logger.Error(ctx, op+" failed", "error", err.Error())
	return status.Error(codes.Internal, common.ErrorInternal.Error())
}

// validationMessage strips the wrapping prefix, so "file_url: validation
// error: object key \"/x\"" becomes "file_url: object key \"/x\"".
func validationMessage(err error) string {
	return strings.Replace(err.Error(), common.ErrorValidation.Error()+": ", "", 1)
}
