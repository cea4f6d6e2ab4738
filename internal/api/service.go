package api

import (
	"context"

	"google.golang.org/grpc"
)

const ServiceName = "gophdocs.v1.DocumentService"

// Full method names, as seen by interceptors.
const (
	MethodPing            = "/" + ServiceName + "/Ping"
	MethodSignUp          = "/" + ServiceName + "/SignUp"
	MethodSignIn          = "/" + ServiceName + "/SignIn"
	MethodRefreshSession  = "/" + ServiceName + "/RefreshSession"
	MethodSignOut         = "/" + ServiceName + "/SignOut"
	MethodGetCurrentUser  = "/" + ServiceName + "/GetCurrentUser"
	MethodUpdateUser      = "/" + ServiceName + "/UpdateUser"
	MethodListDocuments   = "/" + ServiceName + "/ListDocuments"
	MethodGetDocument     = "/" + ServiceName + "/GetDocument"
	MethodSearchDocuments = "/" + ServiceName + "/SearchDocuments"
	MethodInsertDocument  = "/" + ServiceName + "/InsertDocument"
	MethodUpdateDocument  = "/" + ServiceName + "/UpdateDocument"
	MethodDeleteDocument  = "/" + ServiceName + "/DeleteDocument"
	MethodCountDocuments  = "/" + ServiceName + "/CountDocuments"
	MethodUploadObject    = "/" + ServiceName + "/UploadObject"
	MethodDeleteObject    = "/" + ServiceName + "/DeleteObject"
	MethodGetPublicURL    = "/" + ServiceName + "/GetPublicURL"
)

// DocumentServiceServer is implemented by the gophdocs server.
type DocumentServiceServer interface {
	Ping(context.Context, *Empty) (*PingResponse, error)
	SignUp(context.Context, *SignUpRequest) (*Session, error)
	SignIn(context.Context, *SignInRequest) (*Session, error)
	RefreshSession(context.Context, *RefreshSessionRequest) (*Session, error)
	SignOut(context.Context, *Empty) (*Empty, error)
	GetCurrentUser(context.Context, *Empty) (*User, error)
	UpdateUser(context.Context, *UpdateUserRequest) (*User, error)
	ListDocuments(context.Context, *Empty) (*DocumentList, error)
	GetDocument(context.Context, *GetDocumentRequest) (*Document, error)
	SearchDocuments(context.Context, *SearchDocumentsRequest) (*DocumentList, error)
	InsertDocument(context.Context, *InsertDocumentRequest) (*Document, error)
	UpdateDocument(context.Context, *UpdateDocumentRequest) (*Document, error)
	DeleteDocument(context.Context, *DeleteDocumentRequest) (*Empty, error)
	CountDocuments(context.Context, *CountDocumentsRequest) (*CountDocumentsResponse, error)
	UploadObject(context.Context, *UploadObjectRequest) (*UploadObjectResponse, error)
	DeleteObject(context.Context, *ObjectRequest) (*Empty, error)
	GetPublicURL(context.Context, *ObjectRequest) (*PublicURLResponse, error)
}

func unary[Req, Resp any](name string, call func(DocumentServiceServer, context.Context, *Req) (*Resp, error)) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(DocumentServiceServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{
				Server:     srv,
				FullMethod: "/" + ServiceName + "/" + name,
			}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv.(DocumentServiceServer), ctx, req.(*Req))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

// ServiceDesc is registered with a grpc.Server in place of generated code.
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*DocumentServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unary("Ping", DocumentServiceServer.Ping),
		unary("SignUp", DocumentServiceServer.SignUp),
		unary("SignIn", DocumentServiceServer.SignIn),
		unary("RefreshSession", DocumentServiceServer.RefreshSession),
		unary("SignOut", DocumentServiceServer.SignOut),
		unary("GetCurrentUser", DocumentServiceServer.GetCurrentUser),
		unary("UpdateUser", DocumentServiceServer.UpdateUser),
		unary("ListDocuments", DocumentServiceServer.ListDocuments),
		unary("GetDocument", DocumentServiceServer.GetDocument),
		unary("SearchDocuments", DocumentServiceServer.SearchDocuments),
		unary("InsertDocument", DocumentServiceServer.InsertDocument),
		unary("UpdateDocument", DocumentServiceServer.UpdateDocument),
		unary("DeleteDocument", DocumentServiceServer.DeleteDocument),
		unary("CountDocuments", DocumentServiceServer.CountDocuments),
		unary("UploadObject", DocumentServiceServer.UploadObject),
		unary("DeleteObject", DocumentServiceServer.DeleteObject),
		unary("GetPublicURL", DocumentServiceServer.GetPublicURL),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "gophdocs/v1/document_service",
}

func RegisterDocumentServiceServer(s grpc.ServiceRegistrar, srv DocumentServiceServer) {
	s.RegisterService(&ServiceDesc, srv)
}
