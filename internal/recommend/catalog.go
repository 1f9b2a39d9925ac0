// Package recommend ranks a fixed catalog of suggested books by the
// genres the user's own library leans toward.
package recommend

// Recommendation is one fixed catalog entry for the explore surface.
// ArchiveAvailable entries can be added to the library at no cost under a
// sufficient subscription; otherwise they resolve to the affiliate link.
type Recommendation struct {
	Title            string  `json:"title"`
	Author           string  `json:"author"`
	Genre            string  `json:"genre"`
	Rating           float64 `json:"rating"`
	CoverURL         string  `json:"cover_url"`
	Price            float64 `json:"price"`
	Link             string  `json:"link"`
	Description      string  `json:"description"`
	ArchiveAvailable bool    `json:"archive_available"`
}

type genreEntries struct {
	genre   string
	entries []Recommendation
}

// catalog is static data: genres in declaration order, entries in display
// order within each genre. Declaration order doubles as the tie-breaker
// when ranking genres by library frequency.
var catalog = []genreEntries{
	{
		genre: "finance",
		entries: []Recommendation{
			{
				Title: "The Intelligent Investor", Author: "Benjamin Graham", Genre: "finance",
				Rating: 4.7, Price: 14.99, Link: "https://example.com/intelligent-investor",
				CoverURL:    "https://covers.example.com/intelligent-investor.jpg",
				Description: "The definitive book on value investing.", ArchiveAvailable: true,
			},
			{
				Title: "Rich Dad Poor Dad", Author: "Robert Kiyosaki", Genre: "finance",
				Rating: 4.5, Price: 9.99, Link: "https://example.com/rich-dad-poor-dad",
				CoverURL:    "https://covers.example.com/rich-dad-poor-dad.jpg",
				Description: "What the rich teach their kids about money.", ArchiveAvailable: true,
			},
			{
				Title: "The Psychology of Money", Author: "Morgan Housel", Genre: "finance",
				Rating: 4.6, Price: 12.99, Link: "https://example.com/psychology-of-money",
				CoverURL:    "https://covers.example.com/psychology-of-money.jpg",
				Description: "Timeless lessons on wealth, greed, and happiness.",
			},
		},
	},
	{
		genre: "self-help",
		entries: []Recommendation{
			{
				Title: "Atomic Habits", Author: "James Clear", Genre: "self-help",
				Rating: 4.8, Price: 11.99, Link: "https://example.com/atomic-habits",
				CoverURL:    "https://covers.example.com/atomic-habits.jpg",
				Description: "Tiny changes, remarkable results.", ArchiveAvailable: true,
			},
			{
				Title: "Deep Work", Author: "Cal Newport", Genre: "self-help",
				Rating: 4.4, Price: 10.99, Link: "https://example.com/deep-work",
				CoverURL:    "https://covers.example.com/deep-work.jpg",
				Description: "Rules for focused success in a distracted world.",
			},
		},
	},
	{
		genre: "business",
		entries: []Recommendation{
			{
				Title: "Zero to One", Author: "Peter Thiel", Genre: "business",
				Rating: 4.3, Price: 13.99, Link: "https://example.com/zero-to-one",
				CoverURL:    "https://covers.example.com/zero-to-one.jpg",
				Description: "Notes on startups, or how to build the future.", ArchiveAvailable: true,
			},
			{
				Title: "The Lean Startup", Author: "Eric Ries", Genre: "business",
				Rating: 4.2, Price: 12.49, Link: "https://example.com/lean-startup",
				CoverURL:    "https://covers.example.com/lean-startup.jpg",
				Description: "How constant innovation creates radically successful businesses.",
			},
		},
	},
	{
		genre: "fiction",
		entries: []Recommendation{
			{
				Title: "The Alchemist", Author: "Paulo Coelho", Genre: "fiction",
				Rating: 4.6, Price: 8.99, Link: "https://example.com/alchemist",
				CoverURL:    "https://covers.example.com/alchemist.jpg",
				Description: "A fable about following your dream.", ArchiveAvailable: true,
			},
			{
				Title: "Project Hail Mary", Author: "Andy Weir", Genre: "fiction",
				Rating: 4.7, Price: 15.99, Link: "https://example.com/hail-mary",
				CoverURL:    "https://covers.example.com/hail-mary.jpg",
				Description: "A lone astronaut must save the earth from disaster.",
			},
		},
	},
	{
		genre: "technical",
		entries: []Recommendation{
			{
				Title: "The Pragmatic Programmer", Author: "David Thomas, Andrew Hunt", Genre: "technical",
				Rating: 4.5, Price: 29.99, Link: "https://example.com/pragmatic-programmer",
				CoverURL:    "https://covers.example.com/pragmatic-programmer.jpg",
				Description: "Your journey to mastery.",
			},
			{
				Title: "Designing Data-Intensive Applications", Author: "Martin Kleppmann", Genre: "technical",
				Rating: 4.8, Price: 34.99, Link: "https://example.com/ddia",
				CoverURL:    "https://covers.example.com/ddia.jpg",
				Description: "The big ideas behind reliable, scalable systems.",
			},
		},
	},
	{
		genre: "history",
		entries: []Recommendation{
			{
				Title: "Sapiens", Author: "Yuval Noah Harari", Genre: "history",
				Rating: 4.6, Price: 13.49, Link: "https://example.com/sapiens",
				CoverURL:    "https://covers.example.com/sapiens.jpg",
				Description: "A brief history of humankind.", ArchiveAvailable: true,
			},
		},
	},
	{
		genre: "science",
		entries: []Recommendation{
			{
				Title: "Thinking, Fast and Slow", Author: "Daniel Kahneman", Genre: "science",
				Rating: 4.4, Price: 12.99, Link: "https://example.com/thinking-fast-slow",
				CoverURL:    "https://covers.example.com/thinking-fast-slow.jpg",
				Description: "The two systems that drive the way we think.", ArchiveAvailable: true,
			},
		},
	},
}

// CatalogGenres returns the catalog's genres in declaration order.
func CatalogGenres() []string {
	genres := make([]string, 0, len(catalog))
	for _, g := range catalog {
		genres = append(genres, g.genre)
	}
	return genres
}
