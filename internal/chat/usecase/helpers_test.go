package usecase_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"ai-chatbot-backend/internal/chat/repository/inmem"
	"ai-chatbot-backend/pkg/openai"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// newTestClient points a real OpenAI client at a fake completion server.
func newTestClient(t *testing.T, handler http.HandlerFunc) *openai.Client {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	client, err := openai.New(openai.Config{APIKey: "test-key", BaseURL: ts.URL})
	if err != nil {
		t.Fatalf("openai.New: %v", err)
	}
	return client
}

// streamFragments builds a handler that streams the given fragments and a
// terminal [DONE] marker.
func streamFragments(fragments ...string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		for _, f := range fragments {
			writeDelta(w, f)
		}
		fmt.Fprint(w, "data: [DONE]\n\n")
	}
}

// echoLastUser builds a handler that streams the last request message back in
// two fragments. Useful for asserting which context reached the service.
func echoLastUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req openai.Request
		json.NewDecoder(r.Body).Decode(&req)

		content := ""
		if len(req.Messages) > 0 {
			content = req.Messages[len(req.Messages)-1].Content
		}

		w.Header().Set("Content-Type", "text/event-stream")
		writeDelta(w, "echo:")
		writeDelta(w, content)
		fmt.Fprint(w, "data: [DONE]\n\n")
	}
}

func writeDelta(w http.ResponseWriter, content string) {
	fmt.Fprintf(w, "data: {\"choices\":[{\"delta\":{\"content\":%q}}]}\n\n", content)
	if f, ok := w.(http.Flusher); ok {
		f.Flush()
	}
}

func newTestStore(cfg inmem.Config) *inmem.Store {
	return inmem.New(cfg, &mockLogger{})
}
