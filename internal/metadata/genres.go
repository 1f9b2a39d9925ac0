// Package metadata derives book metadata that is not stored in the file
// itself: genre tags inferred from title and content keywords, and the
// author extracted from common filename patterns.
package metadata

import "strings"

// FallbackGenre is assigned when no keyword rule matches.
const FallbackGenre = "general"

type genreRule struct {
	genre    string
	keywords []string
}

// genreRules maps keywords to genres. Rules are evaluated independently,
// so a book can pick up several genres; the output follows this declared
// order for determinism.
var genreRules = []genreRule{
	{"finance", []string{"money", "invest", "financ", "wealth", "rich", "economics", "stock", "budget"}},
	{"self-help", []string{"habit", "mindset", "motivat", "discipline", "productiv", "self", "improve", "success"}},
	{"business", []string{"business", "startup", "entrepreneur", "leadership", "management", "marketing"}},
	{"fiction", []string{"novel", "story", "tale", "adventure", "mystery", "fantasy", "romance"}},
	{"technical", []string{"programming", "software", "engineering", "computer", "code", "data", "algorithm"}},
	{"history", []string{"history", "war", "ancient", "empire", "civilization", "biography"}},
	{"science", []string{"science", "physics", "biology", "universe", "evolution", "brain", "psychology"}},
}

// InferGenres matches the lowercased title and content excerpt against the
// keyword table and returns the matching genres in table order. When
// nothing matches it returns exactly [FallbackGenre].
func InferGenres(title, excerpt string) []string {
	haystack := strings.ToLower(title) + " " + strings.ToLower(excerpt)

	var genres []string
	for _, rule := range genreRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(haystack, keyword) {
				genres = append(genres, rule.genre)
				break
			}
		}
	}

	if len(genres) == 0 {
		return []string{FallbackGenre}
	}
	return genres
}

// KnownGenres returns the catalog of inferable genres in declaration
// order, without the fallback.
func KnownGenres() []string {
	genres := make([]string, 0, len(genreRules))
	for _, rule := range genreRules {
		genres = append(genres, rule.genre)
	}
	return genres
}
