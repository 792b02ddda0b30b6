package mock

import (
	"context"

	"github.com/fwojciec/justext"
)

var _ justext.CleanedDocumentService = (*CleanedDocumentService)(nil)

// CleanedDocumentService is a mock implementation of justext.CleanedDocumentService.
type CleanedDocumentService struct {
	CreateCleanedDocumentFn         func(ctx context.Context, doc *justext.CleanedDocument) error
	FindCleanedDocumentByIDFn       func(ctx context.Context, id string) (*justext.CleanedDocument, error)
	FindCleanedDocumentsFn          func(ctx context.Context, filter justext.CleanedDocumentFilter) ([]*justext.CleanedDocument, error)
	DeleteCleanedDocumentsByQueryFn func(ctx context.Context, queryID string) error
}

func (s *CleanedDocumentService) CreateCleanedDocument(ctx context.Context, doc *justext.CleanedDocument) error {
	return s.CreateCleanedDocumentFn(ctx, doc)
}

func (s *CleanedDocumentService) FindCleanedDocumentByID(ctx context.Context, id string) (*justext.CleanedDocument, error) {
	return s.FindCleanedDocumentByIDFn(ctx, id)
}

func (s *CleanedDocumentService) FindCleanedDocuments(ctx context.Context, filter justext.CleanedDocumentFilter) ([]*justext.CleanedDocument, error) {
	return s.FindCleanedDocumentsFn(ctx, filter)
}

func (s *CleanedDocumentService) DeleteCleanedDocumentsByQuery(ctx context.Context, queryID string) error {
	return s.DeleteCleanedDocumentsByQueryFn(ctx, queryID)
}
