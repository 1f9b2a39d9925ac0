package metadata

import (
	"path/filepath"
	"regexp"
	"strings"
)

var byPattern = regexp.MustCompile(`(?i)^(.+)\s+by\s+(.+)$`)

// ExtractAuthor pulls an author candidate out of a filename. Patterns are
// tried in fixed priority order: "Author - Title" wins over "Title by
// Author". Returns the empty string when neither matches.
func ExtractAuthor(filename string) string {
	_, author := SplitFilename(filename)
	return author
}

// SplitFilename derives a (title, author) pair from a filename. The
// extension is stripped first. "Author - Title" is tried before
// "Title by Author" (case-insensitive " by "); with no match the whole
// base name becomes the title and the author stays empty.
func SplitFilename(filename string) (title, author string) {
	base := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	base = strings.TrimSpace(base)

	if before, after, found := strings.Cut(base, " - "); found {
		author = strings.TrimSpace(before)
		title = strings.TrimSpace(after)
		if author != "" && title != "" {
			return title, author
		}
	}

	if matches := byPattern.FindStringSubmatch(base); matches != nil {
		title = strings.TrimSpace(matches[1])
		author = strings.TrimSpace(matches[2])
		if author != "" && title != "" {
			return title, author
		}
	}

	return base, ""
}
