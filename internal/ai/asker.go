// Package ai is the thin client for the external question-answering
// service. Entitlement gating happens in the calling service, never here:
// by the time Ask runs, access has already been granted.
package ai

import "context"

// MaxContextChars bounds how much book text is sent with a question. The
// excerpt is truncated to this prefix before the request is built.
const MaxContextChars = 2000

// Asker answers a reader's question about an excerpt of the current book.
type Asker interface {
	Ask(ctx context.Context, question, contextText, title string, page *int) (string, error)
}

// TruncateContext clips an excerpt to the bounded prefix sent to the
// service.
func TruncateContext(text string) string {
	if len(text) <= MaxContextChars {
		return text
	}
	return text[:MaxContextChars]
}
