package services

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shelfward/shelfward/internal/database"
	"github.com/shelfward/shelfward/internal/database/books"
	"github.com/shelfward/shelfward/internal/database/chat"
	"github.com/shelfward/shelfward/internal/database/subscriptions"
	"github.com/shelfward/shelfward/internal/storage"
	"github.com/shelfward/shelfward/internal/subscription"
)

// recordingAsker captures what would be sent to the AI collaborator.
type recordingAsker struct {
	calls       int
	lastContext string
	answer      string
	err         error
}

func (a *recordingAsker) Ask(ctx context.Context, question, contextText, title string, page *int) (string, error) {
	a.calls++
	a.lastContext = contextText
	if a.err != nil {
		return "", a.err
	}
	return a.answer, nil
}

type assistantFixture struct {
	svc      *AssistantService
	asker    *recordingAsker
	chatRepo *chat.Repository
	subRepo  *subscriptions.Repository
	bookID   string
}

func setupAssistant(t *testing.T, hasAI bool, bookContent string) (*assistantFixture, func()) {
	t.Helper()
	dbPath := "./test_assistant_" + t.Name() + ".db"

	db, err := database.NewDatabase(dbPath)
	require.NoError(t, err)

	bookRepo := books.NewRepository(db.DB)
	chatRepo := chat.NewRepository(db.DB)
	subRepo := subscriptions.NewRepository(db.DB)
	files, err := storage.NewClient(t.TempDir())
	require.NoError(t, err)

	if hasAI {
		flag := true
		_, err = subRepo.UpdateSubscription(subscriptions.Update{HasAI: &flag})
		require.NoError(t, err)
	}

	srcPath := writeSourceFile(t, "Sapiens by Yuval Noah Harari.txt", bookContent)
	library := NewLibraryService(bookRepo, files)
	result, err := library.ImportBook(srcPath, "", nil)
	require.NoError(t, err)

	asker := &recordingAsker{answer: "An answer about the book."}
	svc := NewAssistantService(bookRepo, chatRepo, files, asker, subscription.NewService(subRepo))

	fixture := &assistantFixture{
		svc:      svc,
		asker:    asker,
		chatRepo: chatRepo,
		subRepo:  subRepo,
		bookID:   result.BookID,
	}
	cleanup := func() {
		db.Close()
		os.Remove(dbPath)
	}
	return fixture, cleanup
}

func TestAssistantService_Ask_RecordsExchange(t *testing.T) {
	f, cleanup := setupAssistant(t, true, "history of humankind in a few words")
	defer cleanup()

	page := 0
	message, err := f.svc.Ask(context.Background(), f.bookID, "What is this about?", &page)
	require.NoError(t, err)

	assert.Equal(t, "What is this about?", message.Question)
	assert.Equal(t, "An answer about the book.", message.Answer)
	require.NotNil(t, message.Page)
	assert.Equal(t, 0, *message.Page)

	history, err := f.chatRepo.ListChatForBook(f.bookID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "An answer about the book.", history[0].Answer)
}

func TestAssistantService_Ask_GatedWithoutEntitlement(t *testing.T) {
	f, cleanup := setupAssistant(t, false, "some content")
	defer cleanup()

	_, err := f.svc.Ask(context.Background(), f.bookID, "question", nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, subscription.ErrSubscriptionRequired)
	// The collaborator must never have been invoked.
	assert.Zero(t, f.asker.calls)

	history, err := f.chatRepo.ListChatForBook(f.bookID)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestAssistantService_Ask_UsesPageAsContext(t *testing.T) {
	words := make([]string, 500)
	for i := range words {
		words[i] = "w"
	}
	words[400] = "secondpagemarker"
	f, cleanup := setupAssistant(t, true, strings.Join(words, " "))
	defer cleanup()

	page := 1
	_, err := f.svc.Ask(context.Background(), f.bookID, "q", &page)
	require.NoError(t, err)

	assert.Contains(t, f.asker.lastContext, "secondpagemarker")
	assert.Len(t, strings.Fields(f.asker.lastContext), 100)
}

func TestAssistantService_Ask_CollaboratorFailure(t *testing.T) {
	f, cleanup := setupAssistant(t, true, "some content")
	defer cleanup()

	f.asker.err = errors.New("network down")

	_, err := f.svc.Ask(context.Background(), f.bookID, "q", nil)
	require.Error(t, err)

	// A failed exchange is not recorded.
	history, err := f.chatRepo.ListChatForBook(f.bookID)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestAssistantService_Ask_MissingBook(t *testing.T) {
	f, cleanup := setupAssistant(t, true, "some content")
	defer cleanup()

	_, err := f.svc.Ask(context.Background(), "missing", "q", nil)
	assert.Error(t, err)
}

func TestAssistantService_Ask_NoAskerConfigured(t *testing.T) {
	f, cleanup := setupAssistant(t, true, "some content")
	defer cleanup()

	svc := NewAssistantService(nil, nil, nil, nil, subscription.NewService(f.subRepo))
	_, err := svc.Ask(context.Background(), f.bookID, "q", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not configured")
}
