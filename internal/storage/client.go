// Package storage is the file-access collaborator: it copies imported
// files into the app's library directory and reads their text content.
// Formats without inline text support degrade to a fixed placeholder
// instead of erroring.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/shelfward/shelfward/internal/entities"
)

// PlaceholderText is shown for formats whose content cannot be extracted
// on device. It becomes the book's single page.
const PlaceholderText = "Preview is not available for this format. The file has been added to your library."

// Client manages the app's durable library directory.
type Client struct {
	libraryDir string
}

// NewClient creates a storage client rooted at libraryDir, creating the
// directory if needed.
func NewClient(libraryDir string) (*Client, error) {
	if err := os.MkdirAll(libraryDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create library directory: %w", err)
	}
	return &Client{libraryDir: libraryDir}, nil
}

// ImportFile copies a source file into the library directory under a
// collision-free name and returns the durable path.
func (c *Client) ImportFile(srcPath string) (string, error) {
	src, err := os.Open(srcPath)
	if err != nil {
		return "", fmt.Errorf("file unreadable: %w", err)
	}
	defer src.Close()

	ext := filepath.Ext(srcPath)
	destPath := filepath.Join(c.libraryDir, uuid.NewString()+ext)

	dest, err := os.Create(destPath)
	if err != nil {
		return "", fmt.Errorf("failed to create library file: %w", err)
	}
	defer dest.Close()

	if _, err := io.Copy(dest, src); err != nil {
		os.Remove(destPath)
		return "", fmt.Errorf("failed to copy into library: %w", err)
	}
	return destPath, nil
}

// ExtractText returns the raw text of a library file. Non-text formats
// degrade to PlaceholderText rather than erroring; only a genuinely
// unreadable text file fails.
func (c *Client) ExtractText(path string, fileType entities.FileType) (string, error) {
	if fileType != entities.FileTypeTXT {
		return PlaceholderText, nil
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("file unreadable: %w", err)
	}
	return string(content), nil
}

// FileTypeFromPath maps a file extension to the book file type. Unknown
// extensions are treated as plain text.
func FileTypeFromPath(path string) entities.FileType {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return entities.FileTypePDF
	case ".epub":
		return entities.FileTypeEPUB
	case ".doc", ".docx":
		return entities.FileTypeDOC
	default:
		return entities.FileTypeTXT
	}
}
