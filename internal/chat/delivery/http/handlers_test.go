package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"ai-chatbot-backend/internal/chat"
	"ai-chatbot-backend/internal/model"
)

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

// mockUseCase lets each test script the usecase behavior per method.
type mockUseCase struct {
	streamFn     func(ctx context.Context, input chat.StreamInput, sink chat.FragmentSink) (chat.StreamOutput, error)
	clearFn      func(ctx context.Context, sessionID string) error
	setMemoryFn  func(ctx context.Context, input chat.SetMemoryInput) error
	exportJSONFn func(ctx context.Context, sessionID string) ([]byte, error)
	exportTextFn func(ctx context.Context, sessionID string) (string, error)
}

func (m *mockUseCase) Stream(ctx context.Context, input chat.StreamInput, sink chat.FragmentSink) (chat.StreamOutput, error) {
	return m.streamFn(ctx, input, sink)
}

func (m *mockUseCase) Clear(ctx context.Context, sessionID string) error {
	return m.clearFn(ctx, sessionID)
}

func (m *mockUseCase) SetMemory(ctx context.Context, input chat.SetMemoryInput) error {
	return m.setMemoryFn(ctx, input)
}

func (m *mockUseCase) ExportJSON(ctx context.Context, sessionID string) ([]byte, error) {
	return m.exportJSONFn(ctx, sessionID)
}

func (m *mockUseCase) ExportText(ctx context.Context, sessionID string) (string, error) {
	return m.exportTextFn(ctx, sessionID)
}

func (m *mockUseCase) Export(ctx context.Context, sessionID string) ([]model.Message, error) {
	return nil, nil
}

func (m *mockUseCase) SaveTranscript(ctx context.Context, input chat.SaveInput) (chat.SaveOutput, error) {
	return chat.SaveOutput{}, nil
}

func (m *mockUseCase) SaveTranscriptJSON(ctx context.Context, input chat.SaveInput) (chat.SaveOutput, error) {
	return chat.SaveOutput{}, nil
}

func (m *mockUseCase) LoadTranscript(ctx context.Context, input chat.LoadInput) error {
	return nil
}

func newTestRouter(uc chat.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := New(&mockLogger{}, uc)
	RegisterRoutes(r.Group("/api/v1/chat"), h)
	return r
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestChat(t *testing.T) {
	t.Run("Streams Delta Frames Then DONE", func(t *testing.T) {
		uc := &mockUseCase{
			streamFn: func(ctx context.Context, input chat.StreamInput, sink chat.FragmentSink) (chat.StreamOutput, error) {
				if input.SessionID != "abc" || input.Message != "hello" {
					t.Errorf("unexpected input: %+v", input)
				}
				for _, delta := range []string{"Hel", "lo!"} {
					if err := sink(delta); err != nil {
						return chat.StreamOutput{State: chat.TurnAborted}, err
					}
				}
				return chat.StreamOutput{Reply: "Hello!", State: chat.TurnCommitted}, nil
			},
		}
		w := doRequest(newTestRouter(uc), "POST", "/api/v1/chat", `{"session_id":"abc","message":"hello"}`)

		if w.Code != 200 {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		if ct := w.Header().Get("Content-Type"); ct != "text/event-stream" {
			t.Errorf("unexpected Content-Type %q", ct)
		}
		want := "data:{\"delta\":\"Hel\"}\n\ndata:{\"delta\":\"lo!\"}\n\ndata:[DONE]\n\n"
		if w.Body.String() != want {
			t.Errorf("got body %q, want %q", w.Body.String(), want)
		}
	})

	t.Run("Zero Fragment Reply Still Sends DONE", func(t *testing.T) {
		uc := &mockUseCase{
			streamFn: func(ctx context.Context, input chat.StreamInput, sink chat.FragmentSink) (chat.StreamOutput, error) {
				return chat.StreamOutput{State: chat.TurnCommitted}, nil
			},
		}
		w := doRequest(newTestRouter(uc), "POST", "/api/v1/chat", `{"session_id":"abc","message":"hi"}`)

		if w.Code != 200 {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w.Body.String() != "data:[DONE]\n\n" {
			t.Errorf("got body %q", w.Body.String())
		}
	})

	t.Run("Empty Message Is Plain 400", func(t *testing.T) {
		uc := &mockUseCase{
			streamFn: func(ctx context.Context, input chat.StreamInput, sink chat.FragmentSink) (chat.StreamOutput, error) {
				return chat.StreamOutput{State: chat.TurnAborted}, chat.ErrEmptyMessage
			},
		}
		w := doRequest(newTestRouter(uc), "POST", "/api/v1/chat", `{"session_id":"abc","message":"  "}`)

		if w.Code != 400 {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
			t.Errorf("expected a JSON error body, got Content-Type %q", ct)
		}
	})

	t.Run("Missing Session ID Is 400", func(t *testing.T) {
		uc := &mockUseCase{
			streamFn: func(ctx context.Context, input chat.StreamInput, sink chat.FragmentSink) (chat.StreamOutput, error) {
				t.Error("usecase must not run on a bind failure")
				return chat.StreamOutput{}, nil
			},
		}
		w := doRequest(newTestRouter(uc), "POST", "/api/v1/chat", `{"message":"hi"}`)

		if w.Code != 400 {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("Mid-Stream Abort Emits Error Frame Without DONE", func(t *testing.T) {
		uc := &mockUseCase{
			streamFn: func(ctx context.Context, input chat.StreamInput, sink chat.FragmentSink) (chat.StreamOutput, error) {
				if err := sink("partial"); err != nil {
					return chat.StreamOutput{State: chat.TurnAborted}, err
				}
				return chat.StreamOutput{State: chat.TurnAborted}, context.DeadlineExceeded
			},
		}
		w := doRequest(newTestRouter(uc), "POST", "/api/v1/chat", `{"session_id":"abc","message":"hi"}`)

		body := w.Body.String()
		if !strings.Contains(body, `{"delta":"partial"}`) {
			t.Errorf("missing streamed fragment in %q", body)
		}
		if !strings.Contains(body, `{"error":"stream aborted"}`) {
			t.Errorf("missing abort frame in %q", body)
		}
		if strings.Contains(body, "[DONE]") {
			t.Errorf("aborted stream must not carry the terminal marker: %q", body)
		}
	})

	t.Run("Upstream Failure Before First Fragment Is 500", func(t *testing.T) {
		uc := &mockUseCase{
			streamFn: func(ctx context.Context, input chat.StreamInput, sink chat.FragmentSink) (chat.StreamOutput, error) {
				return chat.StreamOutput{State: chat.TurnAborted}, context.DeadlineExceeded
			},
		}
		w := doRequest(newTestRouter(uc), "POST", "/api/v1/chat", `{"session_id":"abc","message":"hi"}`)

		if w.Code != 500 {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestClear(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		var cleared string
		uc := &mockUseCase{
			clearFn: func(ctx context.Context, sessionID string) error {
				cleared = sessionID
				return nil
			},
		}
		w := doRequest(newTestRouter(uc), "POST", "/api/v1/chat/clear", `{"session_id":"abc"}`)

		if w.Code != 200 {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		if cleared != "abc" {
			t.Errorf("cleared session %q, want abc", cleared)
		}
	})

	t.Run("Missing Session ID", func(t *testing.T) {
		uc := &mockUseCase{
			clearFn: func(ctx context.Context, sessionID string) error {
				t.Error("usecase must not run on a bind failure")
				return nil
			},
		}
		w := doRequest(newTestRouter(uc), "POST", "/api/v1/chat/clear", `{}`)
		if w.Code != 400 {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestSetMemory(t *testing.T) {
	t.Run("Success Returns Turn And Message Limits", func(t *testing.T) {
		uc := &mockUseCase{
			setMemoryFn: func(ctx context.Context, input chat.SetMemoryInput) error {
				if input.Turns != 5 || input.SessionID != "" {
					t.Errorf("unexpected input: %+v", input)
				}
				return nil
			},
		}
		w := doRequest(newTestRouter(uc), "POST", "/api/v1/chat/memory", `{"turns":5}`)

		if w.Code != 200 {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		body := w.Body.String()
		if !strings.Contains(body, `"turns":5`) || !strings.Contains(body, `"max_messages":11`) {
			t.Errorf("unexpected body %s", body)
		}
	})

	t.Run("Invalid Turns", func(t *testing.T) {
		uc := &mockUseCase{
			setMemoryFn: func(ctx context.Context, input chat.SetMemoryInput) error {
				return chat.ErrInvalidTurns
			},
		}
		w := doRequest(newTestRouter(uc), "POST", "/api/v1/chat/memory", `{"turns":0}`)
		if w.Code != 400 {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestExportJSON(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		uc := &mockUseCase{
			exportJSONFn: func(ctx context.Context, sessionID string) ([]byte, error) {
				if sessionID != "abc" {
					t.Errorf("unexpected session %q", sessionID)
				}
				return []byte(`[{"role":"system","content":"hi"}]`), nil
			},
		}
		w := doRequest(newTestRouter(uc), "GET", "/api/v1/chat/export?session_id=abc", "")

		if w.Code != 200 {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
			t.Errorf("unexpected Content-Type %q", ct)
		}
		if w.Body.String() != `[{"role":"system","content":"hi"}]` {
			t.Errorf("unexpected body %s", w.Body.String())
		}
	})

	t.Run("Missing Session ID", func(t *testing.T) {
		uc := &mockUseCase{}
		w := doRequest(newTestRouter(uc), "GET", "/api/v1/chat/export", "")
		if w.Code != 400 {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestExportText(t *testing.T) {
	uc := &mockUseCase{
		exportTextFn: func(ctx context.Context, sessionID string) (string, error) {
			return "SYSTEM: hi\n\nUSER: hello", nil
		},
	}
	w := doRequest(newTestRouter(uc), "GET", "/api/v1/chat/export/txt?session_id=abc", "")

	if w.Code != 200 {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if cd := w.Header().Get("Content-Disposition"); cd != `attachment; filename="chat_export.txt"` {
		t.Errorf("unexpected Content-Disposition %q", cd)
	}
	if !strings.HasPrefix(w.Header().Get("Content-Type"), "text/plain") {
		t.Errorf("unexpected Content-Type %q", w.Header().Get("Content-Type"))
	}
	if w.Body.String() != "SYSTEM: hi\n\nUSER: hello" {
		t.Errorf("unexpected body %q", w.Body.String())
	}
}
