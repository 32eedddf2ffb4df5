package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func captureLogger(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := log.Logger
	t.Cleanup(func() { log.Logger = prev })
	log.Logger = zerolog.New(&buf) // plain JSON lines
	return &buf
}

func TestRequestID_GenerateAndPropagate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID())
	r.GET("/rid", func(c *gin.Context) {
		if v, ok := c.Get(requestIDKey); !ok || v == "" {
			t.Fatalf("requestID not set in context")
		}
		c.String(http.StatusOK, "ok")
	})

	// No header -> generated
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/rid", nil)
	r.ServeHTTP(w, req)
	gen := w.Header().Get(requestIDHeader)
	if gen == "" {
		t.Fatalf("expected generated %s header", requestIDHeader)
	}

	// Lowercase header -> propagated
	w2 := httptest.NewRecorder()
	req2 := httptest.NewRequest(http.MethodGet, "/rid", nil)
	req2.Header.Set(strings.ToLower(requestIDHeader), "abc-123")
	r.ServeHTTP(w2, req2)
	if got := w2.Header().Get(requestIDHeader); got != "abc-123" {
		t.Fatalf("expected propagated request id, got %q", got)
	}
}

func TestRecovery_PanicsToJSON500AndLogs(t *testing.T) {
	gin.SetMode(gin.TestMode)
	buf := captureLogger(t)

	r := gin.New()
	r.Use(RequestID())
	r.Use(RedactingLogger(RedactOptions{}))
	r.Use(Recovery())

	r.GET("/panic", func(c *gin.Context) {
		panic("kaboom")
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/panic", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 from Recovery, got %d", w.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json body: %v", err)
	}
	if body["code"] != "internal_error" || body["message"] != "internal server error" {
		t.Fatalf("unexpected body: %v", body)
	}
	if body["status"] != "error" || body["statusCode"] != float64(500) || body["isOperational"] != false {
		t.Fatalf("expected error envelope fields, got: %v", body)
	}
	if body["request_id"] != w.Header().Get(requestIDHeader) {
		t.Fatalf("request_id mismatch: %v", body["request_id"])
	}
	out := buf.String()
	if !strings.Contains(out, "panic recovered") {
		t.Fatalf("expected panic log, got:\n%s", out)
	}
	if !strings.Contains(out, `"level":"error"`) {
		t.Fatalf("expected error-level access log, got:\n%s", out)
	}
}

func TestLoggerFrom_Fallback(t *testing.T) {
	gin.SetMode(gin.TestMode)

	buf := captureLogger(t)
	r := gin.New()
	r.Use(RequestID())
	r.GET("/use", func(c *gin.Context) {
		lg := LoggerFrom(c) // fallback logger (no request fields)
		lg.Info().Msg("custom")
		c.Status(http.StatusOK)
	})
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/use", nil))
	if !strings.Contains(buf.String(), `"message":"custom"`) {
		t.Fatalf("expected custom log in fallback")
	}
	if strings.Contains(buf.String(), `"request_id"`) {
		t.Fatalf("fallback logger unexpectedly had request_id")
	}

	// A foreign value under the logger key is ignored.
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set(loggerKey, "not a logger")
	if LoggerFrom(c) == nil {
		t.Fatalf("expected non-nil fallback logger")
	}
}

func TestHelpers_asString_and_truncate(t *testing.T) {
	if asString("x") != "x" || asString(123) != "" {
		t.Fatalf("asString failed")
	}
	if truncate("hello", 10) != "hello" {
		t.Fatalf("truncate no-op failed")
	}
	got := truncate("abcdefgh", 5)
	if got != "abcde…" {
		t.Fatalf("truncate result = %q; want %q", got, "abcde…")
	}
	if truncate("abc", 0) != "abc" {
		t.Fatalf("truncate disable failed")
	}
}

func TestRequestID_UppercaseHeaderPropagates(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID())
	r.GET("/rid", func(c *gin.Context) {
		v, _ := c.Get(requestIDKey)
		if v != "Z-REQ-123" {
			t.Fatalf("context requestID = %v; want Z-REQ-123", v)
		}
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/rid", nil)
	req.Header.Set(requestIDHeader, "Z-REQ-123")
	r.ServeHTTP(w, req)

	if got := w.Header().Get(requestIDHeader); got != "Z-REQ-123" {
		t.Fatalf("response %s header = %q; want %q", requestIDHeader, got, "Z-REQ-123")
	}
}

func TestRecovery_PanicAfterWrite_NoJSON(t *testing.T) {
	gin.SetMode(gin.TestMode)
	buf := captureLogger(t)

	r := gin.New()
	r.Use(RequestID())
	r.Use(Recovery())

	// Write a response first, then panic -> Recovery uses AbortWithStatus(500)
	// without writing the JSON body.
	r.GET("/panic-after-write", func(c *gin.Context) {
		c.String(http.StatusOK, "partial-body")
		panic("late kaboom")
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/panic-after-write", nil)
	r.ServeHTTP(w, req)

	if strings.Contains(w.Body.String(), "internal server error") || strings.Contains(strings.ToLower(w.Header().Get("Content-Type")), "application/json") {
		t.Fatalf("expected no JSON error body when panic after write; got CT=%q body=%q",
			w.Header().Get("Content-Type"), w.Body.String())
	}
	if !strings.Contains(buf.String(), "panic recovered") {
		t.Fatalf("expected panic log, got:\n%s", buf.String())
	}
}
