// Package fs provides file-based storage for containers and extracted documents.
package fs

import (
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/fwojciec/justext"
)

// SourceToPath converts a document source to a relative output path with
// the given extension. URLs map to their path; files map to their base name.
// Example: https://example.com/news/story.html → news/story.txt
func SourceToPath(source, ext string) (string, error) {
	p := filepath.Base(source)
	if u, err := url.Parse(source); err == nil && u.Scheme != "" && u.Host != "" {
		p = u.Path
		if p == "" || strings.HasSuffix(p, "/") {
			p += "index"
		}
	}

	p = path.Clean("/" + filepath.ToSlash(p))
	p = strings.TrimPrefix(p, "/")
	if p == "" || p == "." {
		return "", justext.Errorf(justext.EINVALID, "cannot derive output path from %q", source)
	}

	return strings.TrimSuffix(p, path.Ext(p)) + ext, nil
}

// FormatDocument formats extracted content with YAML frontmatter.
func FormatDocument(source string, result *justext.ExtractResult, content string) string {
	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("source: ")
	b.WriteString(source)
	b.WriteString("\ntitle: ")
	b.WriteString(result.Title)
	b.WriteString("\nextracted: ")
	b.WriteString(time.Now().Format("2006-01-02"))
	b.WriteString("\n---\n\n")
	b.WriteString(content)
	return b.String()
}

// Writer writes extracted documents as files under a directory.
type Writer struct {
	baseDir     string
	ext         string
	frontmatter bool
}

// NewWriter creates a new Writer that writes files with extension ext to
// baseDir. With frontmatter set, files start with a YAML header.
func NewWriter(baseDir, ext string, frontmatter bool) *Writer {
	return &Writer{baseDir: baseDir, ext: ext, frontmatter: frontmatter}
}

// Write stores content extracted from source and returns the file path.
func (w *Writer) Write(source string, result *justext.ExtractResult, content string) (string, error) {
	relPath, err := SourceToPath(source, w.ext)
	if err != nil {
		return "", err
	}

	fullPath := filepath.Join(w.baseDir, filepath.FromSlash(relPath))

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return "", err
	}

	if w.frontmatter {
		content = FormatDocument(source, result, content)
	}
	return fullPath, os.WriteFile(fullPath, []byte(content), 0644)
}
