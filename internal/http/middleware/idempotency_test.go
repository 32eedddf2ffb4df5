package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func TestHelpers_GetIdempotencyKey_IsReplay(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	if k, ok := GetIdempotencyKey(c); k != "" || ok {
		t.Fatalf("expected empty key when not set")
	}
	if IsReplay(c) {
		t.Fatalf("expected IsReplay=false by default")
	}

	// Non-string key reads as absent
	c.Set(ctxKeyIdemKey, 123)
	if k, ok := GetIdempotencyKey(c); k != "" || ok {
		t.Fatalf("expected GetIdempotencyKey to be absent for non-string value")
	}
	c.Set(ctxKeyIdemReplay, true)
	if !IsReplay(c) {
		t.Fatalf("expected IsReplay=true")
	}
	// Non-bool value shouldn’t panic, should be false
	c.Set(ctxKeyIdemReplay, "yes")
	if IsReplay(c) {
		t.Fatalf("expected IsReplay=false for non-bool")
	}
}

func TestIdempotencyValidator_NoHeader_NoLookupCalled(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	lookupCalled := false
	lookup := func(_ context.Context, _ string, _ time.Time) (bool, error) {
		lookupCalled = true
		return false, nil
	}
	r.Use(IdempotencyValidator(IdempotencyOptions{}, lookup))
	r.POST("/feedbacks", func(c *gin.Context) {
		if _, ok := GetIdempotencyKey(c); ok {
			t.Fatalf("key should not be present when header missing")
		}
		c.Status(http.StatusNoContent)
	})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/feedbacks", nil))

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
	if lookupCalled {
		t.Fatalf("lookup should not be called when header missing")
	}
}

func TestIdempotencyValidator_InvalidKey_ForwardedToErrorHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(ErrorHandler(false))
	r.Use(IdempotencyValidator(IdempotencyOptions{MaxLen: 5}, nil))
	handlerRan := false
	r.POST("/x", func(c *gin.Context) { handlerRan = true; c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/x", nil)
	req.Header.Set(HeaderIdempotencyKey, "abcdef") // 6 > 5
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if handlerRan {
		t.Fatalf("handler must not run after an invalid key")
	}
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if body["code"] != "bad_request" || body["message"] != "invalid Idempotency-Key" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestIdempotencyValidator_InvalidKey_Pattern(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(ErrorHandler(false))
	r.Use(IdempotencyValidator(IdempotencyOptions{Pattern: regexp.MustCompile(`^[0-9]+$`)}, nil))
	r.POST("/y", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/y", nil)
	req.Header.Set(HeaderIdempotencyKey, "abc123")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestIdempotencyValidator_Valid_NoLookup(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(IdempotencyValidator(IdempotencyOptions{}, nil))
	r.POST("/z", func(c *gin.Context) {
		key, ok := GetIdempotencyKey(c)
		if !ok || key != "abc-123" {
			t.Fatalf("expected stashed key abc-123, got %q ok=%v", key, ok)
		}
		if IsReplay(c) {
			t.Fatalf("expected no replay when lookup=nil")
		}
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/z", nil)
	req.Header.Set(HeaderIdempotencyKey, "abc-123")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestIdempotencyValidator_WithLookup(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name       string
		exists     bool
		err        error
		wantReplay bool
	}{
		{"miss", false, nil, false},
		{"hit", true, nil, true},
		{"lookup error", false, errors.New("db down"), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			buf := captureLogger(t)
			r := gin.New()
			lookup := func(_ context.Context, key string, now time.Time) (bool, error) {
				if key != "k-9" || now.IsZero() {
					t.Fatalf("lookup args not populated: key=%q now=%v", key, now)
				}
				return tc.exists, tc.err
			}
			r.Use(IdempotencyValidator(IdempotencyOptions{}, lookup))
			r.POST("/feedbacks", func(c *gin.Context) {
				if IsReplay(c) != tc.wantReplay {
					t.Fatalf("replay=%v; want %v", IsReplay(c), tc.wantReplay)
				}
				c.Status(http.StatusOK)
			})

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/feedbacks", nil)
			req.Header.Set(HeaderIdempotencyKey, "k-9")
			r.ServeHTTP(w, req)
			if w.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d", w.Code)
			}
			if tc.err != nil && !strings.Contains(buf.String(), "idempotency lookup failed") {
				t.Fatalf("expected lookup failure logged, got: %s", buf.String())
			}
		})
	}
}
