package sqlite

import (
	"context"
	"database/sql"
	"encoding/hex"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/justext"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ justext.CleanedDocumentService = (*CleanedDocumentService)(nil)

// CleanedDocumentService implements justext.CleanedDocumentService using SQLite.
type CleanedDocumentService struct {
	db *DB
}

// NewCleanedDocumentService creates a new CleanedDocumentService.
func NewCleanedDocumentService(db *DB) *CleanedDocumentService {
	return &CleanedDocumentService{db: db}
}

// hashContent computes xxHash of content and returns hex string.
func hashContent(content string) string {
	h := xxhash.Sum64String(content)
	b := make([]byte, 8)
	b[0] = byte(h >> 56)
	b[1] = byte(h >> 48)
	b[2] = byte(h >> 40)
	b[3] = byte(h >> 32)
	b[4] = byte(h >> 24)
	b[5] = byte(h >> 16)
	b[6] = byte(h >> 8)
	b[7] = byte(h)
	return hex.EncodeToString(b)
}

const cleanedDocumentColumns = "id, query_id, clueweb_id, rank, engine, content, content_hash, length, blocks, retained, created_at"

// CreateCleanedDocument records a cleaned document.
// The content hash is computed when the caller did not supply one.
func (s *CleanedDocumentService) CreateCleanedDocument(ctx context.Context, doc *justext.CleanedDocument) error {
	if err := doc.Validate(); err != nil {
		return err
	}

	doc.ID = uuid.New().String()
	doc.CreatedAt = time.Now().UTC().Truncate(time.Second)
	if doc.ContentHash == "" {
		doc.ContentHash = hashContent(doc.Content)
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO cleaned_documents (`+cleanedDocumentColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, doc.ID, doc.QueryID, doc.ClueWebID, doc.Rank, doc.Engine, doc.Content, doc.ContentHash,
		doc.Length, doc.Blocks, doc.Retained, formatTimestamp(doc.CreatedAt))

	return err
}

// FindCleanedDocumentByID retrieves a cleaned document by ID.
func (s *CleanedDocumentService) FindCleanedDocumentByID(ctx context.Context, id string) (*justext.CleanedDocument, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+cleanedDocumentColumns+" FROM cleaned_documents WHERE id = ?", id)

	doc, err := scanCleanedDocument(row)
	if err == sql.ErrNoRows {
		return nil, justext.Errorf(justext.ENOTFOUND, "cleaned document not found")
	}
	return doc, err
}

// FindCleanedDocuments retrieves cleaned documents matching the filter,
// ordered by query and rank.
func (s *CleanedDocumentService) FindCleanedDocuments(ctx context.Context, filter justext.CleanedDocumentFilter) ([]*justext.CleanedDocument, error) {
	where, args := cleanedDocumentWhere(filter)

	var query strings.Builder
	query.WriteString("SELECT " + cleanedDocumentColumns + " FROM cleaned_documents" + where)
	query.WriteString(" ORDER BY query_id ASC, rank ASC, created_at ASC")

	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []*justext.CleanedDocument
	for rows.Next() {
		doc, err := scanCleanedDocument(rows)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}

	return docs, rows.Err()
}

// DeleteCleanedDocumentsByQuery removes all cleaned documents of a query.
func (s *CleanedDocumentService) DeleteCleanedDocumentsByQuery(ctx context.Context, queryID string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM cleaned_documents WHERE query_id = ?", queryID)
	return err
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanCleanedDocument(row scanner) (*justext.CleanedDocument, error) {
	var doc justext.CleanedDocument
	var createdAt string

	if err := row.Scan(&doc.ID, &doc.QueryID, &doc.ClueWebID, &doc.Rank, &doc.Engine, &doc.Content,
		&doc.ContentHash, &doc.Length, &doc.Blocks, &doc.Retained, &createdAt); err != nil {
		return nil, err
	}

	var err error
	doc.CreatedAt, err = parseTimestamp(createdAt, "created_at")
	if err != nil {
		return nil, err
	}

	return &doc, nil
}
