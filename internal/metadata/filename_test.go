package metadata

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractAuthor(t *testing.T) {
	tests := []struct {
		filename string
		expected string
	}{
		{"Tony Robbins - Awaken the Giant Within.txt", "Tony Robbins"},
		{"Atomic Habits by James Clear.txt", "James Clear"},
		{"Atomic Habits BY James Clear.epub", "James Clear"},
		{"plain-title.txt", ""},
		{"Meditations.pdf", ""},
		{"/library/books/Tony Robbins - Awaken the Giant Within.txt", "Tony Robbins"},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractAuthor(tt.filename))
		})
	}
}

func TestSplitFilename(t *testing.T) {
	tests := []struct {
		filename string
		title    string
		author   string
	}{
		{"Tony Robbins - Awaken the Giant Within.txt", "Awaken the Giant Within", "Tony Robbins"},
		{"Atomic Habits by James Clear.txt", "Atomic Habits", "James Clear"},
		{"Meditations.txt", "Meditations", ""},
		// Hyphen pattern takes priority over the "by" pattern.
		{"James Clear - Atomic Habits by James Clear.txt", "Atomic Habits by James Clear", "James Clear"},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			title, author := SplitFilename(tt.filename)
			assert.Equal(t, tt.title, title)
			assert.Equal(t, tt.author, author)
		})
	}
}
