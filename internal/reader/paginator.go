// Package reader splits book text into fixed-size pages and tracks
// reading progress, including the completion handoff when the last page
// is reached.
package reader

import (
	"fmt"
	"strings"
)

// WordsPerPage is the fixed page size. A page is a contiguous slice of
// this many whitespace-separated words; the last page may be shorter.
const WordsPerPage = 400

// Pages splits content into 400-word pages. Empty or whitespace-only
// content yields a single empty page so every book has at least one page
// to display.
func Pages(content string) []string {
	words := strings.Fields(content)
	if len(words) == 0 {
		return []string{""}
	}

	pages := make([]string, 0, (len(words)+WordsPerPage-1)/WordsPerPage)
	for start := 0; start < len(words); start += WordsPerPage {
		end := start + WordsPerPage
		if end > len(words) {
			end = len(words)
		}
		pages = append(pages, strings.Join(words[start:end], " "))
	}
	return pages
}

// PageCount returns ceil(word count / WordsPerPage), with a minimum of 1.
func PageCount(content string) int {
	words := len(strings.Fields(content))
	if words == 0 {
		return 1
	}
	return (words + WordsPerPage - 1) / WordsPerPage
}

// PageAt returns the 0-based page at index.
func PageAt(pages []string, index int) (string, error) {
	if index < 0 || index >= len(pages) {
		return "", fmt.Errorf("page %d out of range (0-%d)", index, len(pages)-1)
	}
	return pages[index], nil
}
