package justext

import (
	"context"
	"time"
)

// CleanedDocument records the outcome of cleaning one ranked result.
type CleanedDocument struct {
	ID          string    `json:"id"`
	QueryID     string    `json:"queryId"`
	ClueWebID   string    `json:"clueWebId"`
	Rank        int       `json:"rank"`
	Engine      string    `json:"engine"`
	Content     string    `json:"content"`
	ContentHash string    `json:"contentHash"`
	Length      int       `json:"length"`
	Blocks      int       `json:"blocks"`
	Retained    int       `json:"retained"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Validate returns an error if the document contains invalid fields.
func (d *CleanedDocument) Validate() error {
	if d.QueryID == "" {
		return Errorf(EINVALID, "cleaned document query ID required")
	}
	if d.ClueWebID == "" {
		return Errorf(EINVALID, "cleaned document ClueWeb ID required")
	}
	return nil
}

// CleanedDocumentService represents a service for managing cleaned documents.
type CleanedDocumentService interface {
	// CreateCleanedDocument records a cleaned document.
	CreateCleanedDocument(ctx context.Context, doc *CleanedDocument) error

	// FindCleanedDocumentByID retrieves a cleaned document by ID.
	// Returns ENOTFOUND if the document does not exist.
	FindCleanedDocumentByID(ctx context.Context, id string) (*CleanedDocument, error)

	// FindCleanedDocuments retrieves cleaned documents matching the filter.
	FindCleanedDocuments(ctx context.Context, filter CleanedDocumentFilter) ([]*CleanedDocument, error)

	// DeleteCleanedDocumentsByQuery removes all cleaned documents of a query.
	DeleteCleanedDocumentsByQuery(ctx context.Context, queryID string) error
}

// CleanedDocumentFilter represents a filter for FindCleanedDocuments.
type CleanedDocumentFilter struct {
	ID        *string `json:"id"`
	QueryID   *string `json:"queryId"`
	ClueWebID *string `json:"clueWebId"`
	Engine    *string `json:"engine"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
