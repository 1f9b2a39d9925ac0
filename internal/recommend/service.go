package recommend

import (
	"fmt"
	"log"
	"sort"

	"github.com/shelfward/shelfward/internal/entities"
	"github.com/shelfward/shelfward/internal/subscription"
)

const (
	topGenres   = 3
	backfillMin = 6
	maxResults  = 8
)

// BookStore is the slice of the books repository this service needs.
type BookStore interface {
	ListBooks() ([]entities.Book, error)
	CreateBook(book *entities.Book) (string, error)
}

// Entitlements answers whether archive catalog entries may be claimed.
type Entitlements interface {
	CanClaimArchiveBook() (bool, error)
}

// Service produces recommendations for the explore surface.
type Service struct {
	store        BookStore
	entitlements Entitlements
}

// NewService creates a recommendation service over the given store.
func NewService(store BookStore, entitlements Entitlements) *Service {
	return &Service{store: store, entitlements: entitlements}
}

// ForLibrary ranks the catalog against the user's current library.
func (s *Service) ForLibrary() ([]Recommendation, error) {
	books, err := s.store.ListBooks()
	if err != nil {
		return nil, err
	}
	return Rank(books), nil
}

// TrackBookInteraction records that the user acted on a recommendation.
// Currently an observability stub with no persisted effect.
func (s *Service) TrackBookInteraction(bookID, action string) {
	log.Printf("book interaction: book=%s action=%s", bookID, action)
}

// Claim adds an archive-available catalog entry to the library at no cost.
// Entries without archive availability can only be bought through their
// affiliate link; claiming one returns an error carrying that link.
func (s *Service) Claim(title, author string) (*entities.Book, error) {
	rec := findEntry(title, author)
	if rec == nil {
		return nil, fmt.Errorf("no such catalog entry: %s", title)
	}
	if !rec.ArchiveAvailable {
		return nil, fmt.Errorf("%q is only available for purchase at %s", rec.Title, rec.Link)
	}

	allowed, err := s.entitlements.CanClaimArchiveBook()
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, fmt.Errorf("archive books: %w", subscription.ErrSubscriptionRequired)
	}

	book := entities.Book{
		Title:      rec.Title,
		Author:     rec.Author,
		CoverImage: rec.CoverURL,
		GenreTags:  entities.StringList{rec.Genre},
		Source:     entities.BookSourceAnnasArchive,
	}
	if _, err := s.store.CreateBook(&book); err != nil {
		return nil, fmt.Errorf("failed to claim book: %w", err)
	}
	return &book, nil
}

func findEntry(title, author string) *Recommendation {
	for _, g := range catalog {
		for i := range g.entries {
			if g.entries[i].Title == title && g.entries[i].Author == author {
				return &g.entries[i]
			}
		}
	}
	return nil
}

// Rank picks catalog entries for a library: the top 3 genres by tag
// frequency contribute their entries first (ties broken by catalog
// declaration order), then remaining entries backfill to at least 6, and
// the result is capped at 8.
func Rank(books []entities.Book) []Recommendation {
	counts := make(map[string]int)
	for _, book := range books {
		for _, genre := range book.GenreTags {
			counts[genre]++
		}
	}

	// Genres in declaration order so the sort's stability breaks ties
	// deterministically.
	genres := CatalogGenres()
	sort.SliceStable(genres, func(i, j int) bool {
		return counts[genres[i]] > counts[genres[j]]
	})
	if len(genres) > topGenres {
		genres = genres[:topGenres]
	}

	seen := make(map[string]bool)
	var picks []Recommendation
	add := func(rec Recommendation) {
		key := rec.Title + "|" + rec.Author
		if seen[key] {
			return
		}
		seen[key] = true
		picks = append(picks, rec)
	}

	for _, genre := range genres {
		for _, entry := range entriesFor(genre) {
			add(entry)
		}
	}

	// Backfill from the rest of the catalog, declaration order, until the
	// minimum is reached or the catalog runs out.
	if len(picks) < backfillMin {
		for _, g := range catalog {
			for _, entry := range g.entries {
				if len(picks) >= backfillMin {
					break
				}
				add(entry)
			}
		}
	}

	if len(picks) > maxResults {
		picks = picks[:maxResults]
	}
	return picks
}

func entriesFor(genre string) []Recommendation {
	for _, g := range catalog {
		if g.genre == genre {
			return g.entries
		}
	}
	return nil
}
