package client

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/gophdocs/internal/api"
	"github.com/dmitrijs2005/gophdocs/internal/client/models"
	"github.com/dmitrijs2005/gophdocs/internal/client/session"
	"github.com/dmitrijs2005/gophdocs/internal/common"
	"github.com/dmitrijs2005/gophdocs/internal/netx"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

var uploadToPresignedURL = netx.UploadToPresignedURL

// GRPCClient implements Client. The session it authenticates with lives in
// the holder; sign-in, sign-up, refresh and sign-out update it.
type GRPCClient struct {
	endpointURL string
	timeout     time.Duration
	holder      *session.Holder
	conn        *grpc.ClientConn
	client      *api.DocumentServiceClient

	refreshMu sync.Mutex
}

var _ Client = (*GRPCClient)(nil)

// NewGRPCClient connects lazily to endpointURL. Every call is bounded by
// timeout when it is positive. Extra dial options are appended to the
// defaults.
func NewGRPCClient(endpointURL string, holder *session.Holder, timeout time.Duration, opts ...grpc.DialOption) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL, holder: holder, timeout: timeout}

	dialOpts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(c.accessTokenInterceptor),
	}, opts...)

	conn, err := grpc.NewClient(endpointURL, dialOpts...)
	if err != nil {
		return nil, err
	}
	c.conn = conn
	c.client = api.NewDocumentServiceClient(conn)
	return c, nil
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Delete(common.AccessTokenHeaderName)
	if token != "" {
		md.Set(common.AccessTokenHeaderName, token)
	}

	return metadata.NewOutgoingContext(ctx, md)
}

func (c *GRPCClient) currentAccessToken() string {
	if s := c.holder.Get(); s != nil {
		return s.AccessToken
	}
	return ""
}

func isTokenExpired(err error) bool {
	st, ok := status.FromError(err)
	return ok && st.Code() == codes.Unauthenticated && st.Message() == common.ErrTokenExpired.Error()
}

func (c *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply any,
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	err := invoker(withAccessToken(ctx, c.currentAccessToken()), method, req, reply, cc, opts...)
	if err == nil || method == api.MethodRefreshSession || !isTokenExpired(err) {
		return err
	}

	s := c.holder.Get()
	if s == nil || s.RefreshToken == "" {
		return err
	}

	fresh, rerr := c.RefreshSession(ctx, s.RefreshToken)
	if rerr != nil {
		// a rejected refresh token ends the session
		if errors.Is(rerr, ErrUnauthorized) {
			c.holder.Set(nil)
		}
		return err
	}

	return invoker(withAccessToken(ctx, fresh.AccessToken), method, req, reply, cc, opts...)
}

func (c *GRPCClient) Close() error {
	return c.conn.Close()
}

func (c *GRPCClient) Ping(ctx context.Context) error {
	resp, err := c.client.Ping(ctx, &api.Empty{})
	if err != nil {
		return mapError(err)
	}

	if resp.Status != "OK" {
		return ErrUnavailable
	}

	return nil
}

func (c *GRPCClient) SignUp(ctx context.Context, email string, password []byte, displayName string) (*models.Session, error) {
	resp, err := c.client.SignUp(ctx, &api.SignUpRequest{Email: email, Password: password, DisplayName: displayName})
	if err != nil {
		return nil, mapError(err)
	}

	s := sessionFromAPI(resp)
	c.holder.Set(s)
	return s, nil
}

func (c *GRPCClient) SignIn(ctx context.Context, email string, password []byte) (*models.Session, error) {
	resp, err := c.client.SignIn(ctx, &api.SignInRequest{Email: email, Password: password})
	if err != nil {
		return nil, mapError(err)
	}

	s := sessionFromAPI(resp)
	c.holder.Set(s)
	return s, nil
}

// SignOut revokes the session on the server and clears it locally. The
// local session is cleared even when the server call fails.
func (c *GRPCClient) SignOut(ctx context.Context) error {
	_, err := c.client.SignOut(ctx, &api.Empty{})
	c.holder.Set(nil)
	if err != nil {
		return mapError(err)
	}
	return nil
}

// RefreshSession exchanges refreshToken for a new session and publishes it.
// Concurrent callers are serialized; a caller whose token has already been
// rotated gets the current session back without a second round trip.
func (c *GRPCClient) RefreshSession(ctx context.Context, refreshToken string) (*models.Session, error) {
	c.refreshMu.Lock()
	defer c.refreshMu.Unlock()

	if cur := c.holder.Get(); cur != nil && cur.RefreshToken != refreshToken {
		return cur, nil
	}

	resp, err := c.client.RefreshSession(ctx, &api.RefreshSessionRequest{RefreshToken: refreshToken})
	if err != nil {
		return nil, mapError(err)
	}

	s := sessionFromAPI(resp)
	c.holder.Set(s)
	return s, nil
}

func (c *GRPCClient) GetCurrentUser(ctx context.Context) (*models.User, error) {
	resp, err := c.client.GetCurrentUser(ctx, &api.Empty{})
	if err != nil {
		return nil, mapError(err)
	}
	u := userFromAPI(*resp)
	return &u, nil
}

func (c *GRPCClient) UpdateUser(ctx context.Context, email *string, password []byte) (*models.User, error) {
	resp, err := c.client.UpdateUser(ctx, &api.UpdateUserRequest{Email: email, Password: password})
	if err != nil {
		return nil, mapError(err)
	}
	u := userFromAPI(*resp)

	if s := c.holder.Get(); s != nil {
		updated := *s
		updated.User = u
		c.holder.Set(&updated)
	}
	return &u, nil
}

func (c *GRPCClient) ListDocuments(ctx context.Context) ([]models.Document, error) {
	resp, err := c.client.ListDocuments(ctx, &api.Empty{})
	if err != nil {
		return nil, mapError(err)
	}
	return documentsFromAPI(resp.Documents), nil
}

func (c *GRPCClient) GetDocumentByID(ctx context.Context, id string) (*models.Document, error) {
	resp, err := c.client.GetDocument(ctx, &api.GetDocumentRequest{ID: id})
	if err != nil {
		return nil, mapError(err)
	}
	d := documentFromAPI(*resp)
	return &d, nil
}

func (c *GRPCClient) SearchDocuments(ctx context.Context, query string) ([]models.Document, error) {
	resp, err := c.client.SearchDocuments(ctx, &api.SearchDocumentsRequest{Query: query})
	if err != nil {
		return nil, mapError(err)
	}
	return documentsFromAPI(resp.Documents), nil
}

func (c *GRPCClient) InsertDocument(ctx context.Context, fields models.DocumentFields) (*models.Document, error) {
	resp, err := c.client.InsertDocument(ctx, &api.InsertDocumentRequest{Fields: fieldsToAPI(fields)})
	if err != nil {
		return nil, mapError(err)
	}
	d := documentFromAPI(*resp)
	return &d, nil
}

func (c *GRPCClient) UpdateDocument(ctx context.Context, id string, fields models.DocumentFields, ownerID string) (*models.Document, error) {
	req := &api.UpdateDocumentRequest{ID: id, OwnerID: ownerID, Fields: fieldsToAPI(fields)}
	resp, err := c.client.UpdateDocument(ctx, req)
	if err != nil {
		return nil, mapError(err)
	}
	d := documentFromAPI(*resp)
	return &d, nil
}

func (c *GRPCClient) DeleteDocument(ctx context.Context, id string, ownerID string) error {
	if _, err := c.client.DeleteDocument(ctx, &api.DeleteDocumentRequest{ID: id, OwnerID: ownerID}); err != nil {
		return mapError(err)
	}
	return nil
}

func (c *GRPCClient) CountDocumentsForOwner(ctx context.Context, ownerID string) (int64, error) {
	resp, err := c.client.CountDocuments(ctx, &api.CountDocumentsRequest{OwnerID: ownerID})
	if err != nil {
		return 0, mapError(err)
	}
	return resp.Count, nil
}

// UploadObject asks the server for a presigned URL and PUTs data to it.
func (c *GRPCClient) UploadObject(ctx context.Context, data []byte, path, mimeType string, overwrite bool) (string, error) {
	req := &api.UploadObjectRequest{Path: path, ContentType: mimeType, Overwrite: overwrite}
	resp, err := c.client.UploadObject(ctx, req)
	if err != nil {
		return "", mapError(err)
	}

	if err := uploadToPresignedURL(ctx, resp.URL, data, mimeType); err != nil {
		return "", fmt.Errorf("upload %s: %w", resp.Path, err)
	}
	return resp.Path, nil
}

func (c *GRPCClient) DeleteObject(ctx context.Context, path string) error {
	if _, err := c.client.DeleteObject(ctx, &api.ObjectRequest{Path: path}); err != nil {
		return mapError(err)
	}
	return nil
}

func (c *GRPCClient) GetPublicURL(ctx context.Context, path string) (string, error) {
	resp, err := c.client.GetPublicURL(ctx, &api.ObjectRequest{Path: path})
	if err != nil {
		return "", mapError(err)
	}
	return resp.URL, nil
}

func mapError(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return err
	}
	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied:
		return fmt.Errorf("%w: %s", ErrUnauthorized, st.Message())
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	case codes.NotFound:
		return ErrNotFound
	case codes.AlreadyExists:
		return ErrAlreadyExists
	case codes.InvalidArgument:
		return fmt.Errorf("%w: %s", ErrInvalidArgument, st.Message())
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
