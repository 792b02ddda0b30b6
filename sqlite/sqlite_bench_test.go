package sqlite_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/justext"
	"github.com/fwojciec/justext/sqlite"
	"github.com/stretchr/testify/require"
)

// BenchmarkCreateCleanedDocument measures index writes for one cleaned query
// of 100 ranked results against a file-based database.
func BenchmarkCreateCleanedDocument(b *testing.B) {
	const docsPerQuery = 100

	dbPath := filepath.Join(b.TempDir(), "bench.db")
	db := sqlite.NewDB(dbPath)
	require.NoError(b, db.Open())
	defer func() {
		db.Close()
		os.Remove(dbPath + "-wal")
		os.Remove(dbPath + "-shm")
	}()

	ctx := context.Background()
	svc := sqlite.NewCleanedDocumentService(db)

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		for j := 0; j < docsPerQuery; j++ {
			doc := &justext.CleanedDocument{
				QueryID:   fmt.Sprintf("%d", i),
				ClueWebID: fmt.Sprintf("clueweb12-%04d", j),
				Rank:      j + 1,
				Engine:    "justext",
				Content:   fmt.Sprintf("<p>Cleaned content of document %d. Lorem ipsum dolor sit amet.</p>\n", j),
			}
			if err := svc.CreateCleanedDocument(ctx, doc); err != nil {
				b.Fatal(err)
			}
		}
	}
}
