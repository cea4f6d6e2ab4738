package api

import (
	"context"

	"google.golang.org/grpc"
)

// DocumentServiceClient is the typed client stub for DocumentService. Every
// call is sent with the JSON content-subtype.
type DocumentServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewDocumentServiceClient(cc grpc.ClientConnInterface) *DocumentServiceClient {
	return &DocumentServiceClient{cc: cc}
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *DocumentServiceClient) Ping(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*PingResponse, error) {
	return invoke[PingResponse](ctx, c.cc, MethodPing, in, opts)
}

func (c *DocumentServiceClient) SignUp(ctx context.Context, in *SignUpRequest, opts ...grpc.CallOption) (*Session, error) {
	return invoke[Session](ctx, c.cc, MethodSignUp, in, opts)
}

func (c *DocumentServiceClient) SignIn(ctx context.Context, in *SignInRequest, opts ...grpc.CallOption) (*Session, error) {
	return invoke[Session](ctx, c.cc, MethodSignIn, in, opts)
}

func (c *DocumentServiceClient) RefreshSession(ctx context.Context, in *RefreshSessionRequest, opts ...grpc.CallOption) (*Session, error) {
	return invoke[Session](ctx, c.cc, MethodRefreshSession, in, opts)
}

func (c *DocumentServiceClient) SignOut(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*Empty, error) {
	return invoke[Empty](ctx, c.cc, MethodSignOut, in, opts)
}

func (c *DocumentServiceClient) GetCurrentUser(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*User, error) {
	return invoke[User](ctx, c.cc, MethodGetCurrentUser, in, opts)
}

func (c *DocumentServiceClient) UpdateUser(ctx context.Context, in *UpdateUserRequest, opts ...grpc.CallOption) (*User, error) {
	return invoke[User](ctx, c.cc, MethodUpdateUser, in, opts)
}

func (c *DocumentServiceClient) ListDocuments(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*DocumentList, error) {
	return invoke[DocumentList](ctx, c.cc, MethodListDocuments, in, opts)
}

func (c *DocumentServiceClient) GetDocument(ctx context.Context, in *GetDocumentRequest, opts ...grpc.CallOption) (*Document, error) {
	return invoke[Document](ctx, c.cc, MethodGetDocument, in, opts)
}

func (c *DocumentServiceClient) SearchDocuments(ctx context.Context, in *SearchDocumentsRequest, opts ...grpc.CallOption) (*DocumentList, error) {
	return invoke[DocumentList](ctx, c.cc, MethodSearchDocuments, in, opts)
}

func (c *DocumentServiceClient) InsertDocument(ctx context.Context, in *InsertDocumentRequest, opts ...grpc.CallOption) (*Document, error) {
	return invoke[Document](ctx, c.cc, MethodInsertDocument, in, opts)
}

func (c *DocumentServiceClient) UpdateDocument(ctx context.Context, in *UpdateDocumentRequest, opts ...grpc.CallOption) (*Document, error) {
	return invoke[Document](ctx, c.cc, MethodUpdateDocument, in, opts)
}

func (c *DocumentServiceClient) DeleteDocument(ctx context.Context, in *DeleteDocumentRequest, opts ...grpc.CallOption) (*Empty, error) {
	return invoke[Empty](ctx, c.cc, MethodDeleteDocument, in, opts)
}

func (c *DocumentServiceClient) CountDocuments(ctx context.Context, in *CountDocumentsRequest, opts ...grpc.CallOption) (*CountDocumentsResponse, error) {
	return invoke[CountDocumentsResponse](ctx, c.cc, MethodCountDocuments, in, opts)
}

func (c *DocumentServiceClient) UploadObject(ctx context.Context, in *UploadObjectRequest, opts ...grpc.CallOption) (*UploadObjectResponse, error) {
	return invoke[UploadObjectResponse](ctx, c.cc, MethodUploadObject, in, opts)
}

func (c *DocumentServiceClient) DeleteObject(ctx context.Context, in *ObjectRequest, opts ...grpc.CallOption) (*Empty, error) {
	return invoke[Empty](ctx, c.cc, MethodDeleteObject, in, opts)
}

func (c *DocumentServiceClient) GetPublicURL(ctx context.Context, in *ObjectRequest, opts ...grpc.CallOption) (*PublicURLResponse, error) {
	return invoke[PublicURLResponse](ctx, c.cc, MethodGetPublicURL, in, opts)
}
