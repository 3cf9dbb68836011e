package telegram

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"notes-to-tasks/internal/model"
	"notes-to-tasks/internal/suggestion"
	"notes-to-tasks/pkg/log"
	pkgTelegram "notes-to-tasks/pkg/telegram"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type mockBot struct {
	mu       sync.Mutex
	sent     []string
	sentCh   chan string
	file     *pkgTelegram.File
	fileErr  error
	image    []byte
	fileIDs  []string
	maxBytes int64
}

func newMockBot() *mockBot {
	return &mockBot{sentCh: make(chan string, 10)}
}

func (m *mockBot) SendMessage(chatID int64, text string) error {
	m.mu.Lock()
	m.sent = append(m.sent, text)
	m.mu.Unlock()
	m.sentCh <- text
	return nil
}

func (m *mockBot) SendMessageWithMode(chatID int64, text string, parseMode string) error {
	return m.SendMessage(chatID, text)
}

func (m *mockBot) GetFile(ctx context.Context, fileID string) (*pkgTelegram.File, error) {
	m.fileIDs = append(m.fileIDs, fileID)
	return m.file, m.fileErr
}

func (m *mockBot) DownloadFile(ctx context.Context, filePath string, maxBytes int64) ([]byte, error) {
	m.maxBytes = maxBytes
	return m.image, nil
}

func (m *mockBot) last() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.sent) == 0 {
		return ""
	}
	return m.sent[len(m.sent)-1]
}

type mockUseCase struct {
	out        suggestion.SuggestOutput
	err        error
	text       string
	image      suggestion.SuggestImageInput
	scope      model.Scope
	imageCalls int
}

func (m *mockUseCase) SuggestFromText(ctx context.Context, sc model.Scope, input suggestion.SuggestTextInput) (suggestion.SuggestOutput, error) {
	m.scope, m.text = sc, input.Text
	return m.out, m.err
}

func (m *mockUseCase) SuggestFromImage(ctx context.Context, sc model.Scope, input suggestion.SuggestImageInput) (suggestion.SuggestOutput, error) {
	m.imageCalls++
	m.scope, m.image = sc, input
	return m.out, m.err
}

func (m *mockUseCase) SubmitFeedback(ctx context.Context, sc model.Scope, input suggestion.FeedbackInput) (suggestion.FeedbackOutput, error) {
	return suggestion.FeedbackOutput{}, nil
}

func newTestHandler(uc suggestion.UseCase, bot pkgTelegram.IBot) *handler {
	return &handler{l: log.NewNop(), uc: uc, bot: bot, processTimeout: time.Second}
}

func textMessage(text string) *pkgTelegram.Message {
	return &pkgTelegram.Message{
		MessageID: 1,
		From:      &pkgTelegram.User{ID: 7, Username: "alice"},
		Chat:      &pkgTelegram.Chat{ID: 99, Type: "private"},
		Text:      text,
	}
}

func TestHandleWebhook_AcksAndProcessesInBackground(t *testing.T) {
	due := time.Date(2024, 5, 2, 15, 30, 0, 0, time.UTC)
	uc := &mockUseCase{out: suggestion.SuggestOutput{
		Suggestions: []model.TaskSuggestion{{Title: "Call Dr. Smith", Priority: model.PriorityHigh, DueDate: &due, Tags: []string{"health"}}},
		Strategy:    suggestion.StrategyAI,
	}}
	bot := newMockBot()

	r := gin.New()
	r.POST("/webhook/telegram", newTestHandler(uc, bot).HandleWebhook)

	body := `{"update_id":1,"message":{"message_id":1,"from":{"id":7,"first_name":"A","username":"alice"},"chat":{"id":99,"type":"private"},"date":0,"text":"Call Dr. Smith urgently tomorrow #health"}}`
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/webhook/telegram", strings.NewReader(body)))
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "accepted") {
		t.Fatalf("unexpected ack %d %s", w.Code, w.Body.String())
	}

	var reply string
	for i := 0; i < 2; i++ {
		select {
		case reply = <-bot.sentCh:
		case <-time.After(2 * time.Second):
			t.Fatal("timed out waiting for the bot reply")
		}
	}
	if !strings.Contains(reply, "1. Call Dr. Smith [high]") || !strings.Contains(reply, "#health") || !strings.Contains(reply, "Thu, 02 May 2024 15:30") {
		t.Errorf("unexpected reply:\n%s", reply)
	}
	if uc.scope.UserID != "telegram_7" || uc.scope.Username != "alice" {
		t.Errorf("scope = %+v", uc.scope)
	}
}

func TestHandleWebhook_IgnoresNonMessages(t *testing.T) {
	r := gin.New()
	r.POST("/webhook/telegram", newTestHandler(&mockUseCase{}, newMockBot()).HandleWebhook)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/webhook/telegram", strings.NewReader(`{"update_id":2}`)))
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "ignored") {
		t.Errorf("unexpected response %d %s", w.Code, w.Body.String())
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/webhook/telegram", strings.NewReader(`{`)))
	if w.Code != http.StatusBadRequest {
		t.Errorf("malformed update: status %d, want 400", w.Code)
	}
}

func TestProcessMessage_Commands(t *testing.T) {
	for cmd, want := range map[string]string{"/start": messageStart, "/help": messageHelp} {
		bot := newMockBot()
		uc := &mockUseCase{}
		if err := newTestHandler(uc, bot).processMessage(context.Background(), textMessage(cmd)); err != nil {
			t.Fatalf("%s: %v", cmd, err)
		}
		if bot.last() != want {
			t.Errorf("%s: reply = %q", cmd, bot.last())
		}
		if uc.text != "" {
			t.Errorf("%s should not reach the use case", cmd)
		}
	}
}

func TestProcessMessage_NoTasksAndErrors(t *testing.T) {
	bot := newMockBot()
	h := newTestHandler(&mockUseCase{out: suggestion.SuggestOutput{Fallback: true}}, bot)
	if err := h.processMessage(context.Background(), textMessage("lovely weather")); err != nil {
		t.Fatal(err)
	}
	if bot.last() != messageNoTasks {
		t.Errorf("reply = %q", bot.last())
	}

	h = newTestHandler(&mockUseCase{err: errors.New("boom")}, newMockBot())
	if err := h.processMessage(context.Background(), textMessage("buy milk")); err == nil {
		t.Error("expected the use case error to surface")
	}

	bot = newMockBot()
	h = newTestHandler(&mockUseCase{}, bot)
	if err := h.processMessage(context.Background(), textMessage("  ")); err != nil {
		t.Fatal(err)
	}
	if bot.last() != messageUnsupported {
		t.Errorf("reply = %q", bot.last())
	}
}

func TestProcessMessage_Photo(t *testing.T) {
	bot := newMockBot()
	bot.file = &pkgTelegram.File{FileID: "big", FilePath: "photos/big.jpg"}
	bot.image = []byte("jpeg bytes")

	uc := &mockUseCase{out: suggestion.SuggestOutput{
		Suggestions:   []model.TaskSuggestion{{Title: "Buy milk", Priority: model.PriorityLow, Tags: []string{"errands"}}},
		Strategy:      suggestion.StrategyHeuristic,
		Fallback:      true,
		ExtractedText: "- buy milk",
	}}

	msg := textMessage("")
	msg.Photo = []pkgTelegram.PhotoSize{
		{FileID: "small", Width: 90, Height: 60},
		{FileID: "big", Width: 1280, Height: 960},
		{FileID: "medium", Width: 320, Height: 240},
	}

	if err := newTestHandler(uc, bot).processMessage(context.Background(), msg); err != nil {
		t.Fatal(err)
	}
	if len(bot.fileIDs) != 1 || bot.fileIDs[0] != "big" {
		t.Errorf("expected the largest photo, got %v", bot.fileIDs)
	}
	if bot.maxBytes != maxPhotoBytes {
		t.Errorf("download limit = %d", bot.maxBytes)
	}
	if uc.imageCalls != 1 || string(uc.image.Image) != "jpeg bytes" {
		t.Errorf("image not passed to the use case: %+v", uc.image)
	}
	if reply := bot.last(); !strings.Contains(reply, "Buy milk [low]") || !strings.Contains(reply, "keyword matching") {
		t.Errorf("unexpected reply:\n%s", reply)
	}
}

func TestProcessMessage_DocumentMustBeImage(t *testing.T) {
	bot := newMockBot()
	uc := &mockUseCase{}
	msg := textMessage("")
	msg.Document = &pkgTelegram.Document{FileID: "doc", MimeType: "application/pdf"}

	err := newTestHandler(uc, bot).processMessage(context.Background(), msg)
	if !errors.Is(err, errNotAnImage) {
		t.Errorf("expected errNotAnImage, got %v", err)
	}
	if uc.imageCalls != 0 {
		t.Error("use case should not be called")
	}
}
