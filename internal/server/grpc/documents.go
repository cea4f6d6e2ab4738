package grpc

import (
	"context"

	"github.com/dmitrijs2005/gophdocs/internal/api"
)

func (s *GRPCServer) ListDocuments(ctx context.Context, req *api.Empty) (*api.DocumentList, error) {
	docs, err := s.documents.List(ctx)
	if err != nil {
		return nil, s.toStatus(ctx, "list documents", err)
	}
	return toAPIDocumentList(docs), nil
}

func (s *GRPCServer) SearchDocuments(ctx context.Context, req *api.SearchDocumentsRequest) (*api.DocumentList, error) {
	docs, err := s.documents.Search(ctx, req.Query)
	if err != nil {
		return nil, s.toStatus(ctx, "search documents", err)
	}
	return toAPIDocumentList(docs), nil
}

func (s *GRPCServer) GetDocument(ctx context.Context, req *api.GetDocumentRequest) (*api.Document, error) {
	d, err := s.documents.Get(ctx, req.ID)
	if err != nil {
		return nil, s.toStatus(ctx, "get document", err)
	}
	return toAPIDocument(d), nil
}

func (s *GRPCServer) InsertDocument(ctx context.Context, req *api.InsertDocumentRequest) (*api.Document, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	d, err := s.documents.Create(ctx, userID, fromAPIFields(req.Fields))
	if err != nil {
		return nil, s.toStatus(ctx, "insert document", err)
	}
	s.logger.Info(ctx, "Document created", "id", d.ID, "user_id", userID)
	return toAPIDocument(d), nil
}

func (s *GRPCServer) UpdateDocument(ctx context.Context, req *api.UpdateDocumentRequest) (*api.Document, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	d, err := s.documents.Update(ctx, userID, req.ID, req.OwnerID, fromAPIFields(req.Fields))
	if err != nil {
		return nil, s.toStatus(ctx, "update document", err)
	}
	return toAPIDocument(d), nil
}

func (s *GRPCServer) DeleteDocument(ctx context.Context, req *api.DeleteDocumentRequest) (*api.Empty, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.documents.Delete(ctx, userID, req.ID, req.OwnerID); err != nil {
		return nil, s.toStatus(ctx, "delete document", err)
	}
	s.logger.Info(ctx, "Document deleted", "id", req.ID, "user_id", userID)
	return &api.Empty{}, nil
}

func (s *GRPCServer) CountDocuments(ctx context.Context, req *api.CountDocumentsRequest) (*api.CountDocumentsResponse, error) {
	n, err := s.documents.CountByOwner(ctx, req.OwnerID)
	if err != nil {
		return nil, s.toStatus(ctx, "count documents", err)
	}
	return &api.CountDocumentsResponse{Count: n}, nil
}

func (s *GRPCServer) UploadObject(ctx context.Context, req *api.UploadObjectRequest) (*api.UploadObjectResponse, error) {
	task, err := s.objects.UploadURL(ctx, req.Path, req.ContentType, req.Overwrite)
	if err != nil {
		return nil, s.toStatus(ctx, "upload object", err)
	}
	return &api.UploadObjectResponse{Path: task.Path, URL: task.URL, ExpiresAt: task.ExpiresAt}, nil
}

func (s *GRPCServer) DeleteObject(ctx context.Context, req *api.ObjectRequest) (*api.Empty, error) {
	if err := s.objects.Delete(ctx, req.Path); err != nil {
		return nil, s.toStatus(ctx, "delete object", err)
	}
	return &api.Empty{}, nil
}

func (s *GRPCServer) GetPublicURL(ctx context.Context, req *api.ObjectRequest) (*api.PublicURLResponse, error) {
	u, err := s.objects.PublicURL(req.Path)
	if err != nil {
		return nil, s.toStatus(ctx, "public url", err)
	}
	return &api.PublicURLResponse{URL: u}, nil
}
