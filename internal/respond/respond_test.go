package respond

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

func TestErrorBodyShape(t *testing.T) {
	rec := httptest.NewRecorder()
	Error(rec, 400, "Invalid request format.")

	if rec.Code != 400 {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected application/json, got %q", ct)
	}
	if body := strings.TrimSpace(rec.Body.String()); body != `{"message":"Invalid request format."}` {
		t.Errorf("unexpected body: %s", body)
	}
}

func TestEncodeFailureUsesInjectedLogger(t *testing.T) {
	logger, hook := test.NewNullLogger()
	SetLogger(logger)
	defer SetLogger(logrus.StandardLogger())

	rec := httptest.NewRecorder()
	JSON(rec, 200, make(chan int)) // channels are not encodable

	if len(hook.Entries) != 1 {
		t.Fatalf("expected one log entry, got %d", len(hook.Entries))
	}
	if hook.LastEntry().Level != logrus.ErrorLevel {
		t.Errorf("expected error level, got %v", hook.LastEntry().Level)
	}
}
