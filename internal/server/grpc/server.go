// Package grpc exposes the gophdocs services over gRPC.
package grpc

import (
	"context"
	"net"
	"time"

	"github.com/dmitrijs2005/gophdocs/internal/api"
	"github.com/dmitrijs2005/gophdocs/internal/logging"
	"github.com/dmitrijs2005/gophdocs/internal/server/models"
	"github.com/dmitrijs2005/gophdocs/internal/server/services"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
)

type UserService interface {
	SignUp(ctx context.Context, email string, password []byte, displayName string) (*services.Session, error)
	SignIn(ctx context.Context, email string, password []byte) (*services.Session, error)
	RefreshSession(ctx context.Context, refreshToken string) (*services.Session, error)
	SignOut(ctx context.Context, userID string) error
	GetUser(ctx context.Context, userID string) (*models.User, error)
	UpdateUser(ctx context.Context, userID string, email *string, password []byte) (*models.User, error)
}

type DocumentService interface {
	List(ctx context.Context) ([]models.Document, error)
	Search(ctx context.Context, query string) ([]models.Document, error)
	Get(ctx context.Context, id string) (*models.Document, error)
	Create(ctx context.Context, userID string, f models.DocumentFields) (*models.Document, error)
	Update(ctx context.Context, userID, id, ownerID string, f models.DocumentFields) (*models.Document, error)
	Delete(ctx context.Context, userID, id, ownerID string) error
	CountByOwner(ctx context.Context, ownerID string) (int64, error)
}

type ObjectService interface {
	UploadURL(ctx context.Context, path, contentType string, overwrite bool) (*models.UploadTask, error)
	Delete(ctx context.Context, path string) error
	PublicURL(path string) (string, error)
}

type GRPCServer struct {
	address   string
	users     UserService
	documents DocumentService
	objects   ObjectService
	logger    logging.Logger
	jwtSecret []byte
}

func NewGRPCServer(a string, l logging.Logger, us UserService, ds DocumentService, obs ObjectService, secretKey string) *GRPCServer {
	return &GRPCServer{
		address:   a,
		logger:    l.With("module", "grpc_server"),
		users:     us,
		documents: ds,
		objects:   obs,
		jwtSecret: []byte(secretKey),
	}
}

// Run listens on the configured address and serves until ctx is done.
func (s *GRPCServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen)
}

// Serve accepts connections on lis until ctx is done, then stops gracefully.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.loggingInterceptor, s.accessTokenInterceptor))
	api.RegisterDocumentServiceServer(srv, s)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	if err := srv.Serve(lis); err != nil {
		return err
	}
	return nil
}

func (s *GRPCServer) loggingInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()
	resp, err := handler(ctx, req)
	s.logger.Info(ctx, "rpc", "method", info.FullMethod, "code", status.Code(err).String(), "duration", time.Since(start))
	return resp, err
}
