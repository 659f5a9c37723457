package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/dishdash/dish-service/internal/core/service"
	"github.com/dishdash/dish-service/internal/pkg/config"
)

// TestRouter_AuthGateRunsBeforeRateLimiter drives the assembled router to
// pin the middleware order on the rating route: unauthenticated requests
// must be rejected by the auth gate without ever reaching the limiter, so
// they cannot consume rate-limit budget.
func TestRouter_AuthGateRunsBeforeRateLimiter(t *testing.T) {
	cfg := &config.Config{
		JWTSecret:  "router-test-secret",
		TokenTTL:   time.Hour,
		BcryptCost: 4,
		RateLimit:  config.RateLimitConfig{Requests: 2, Window: 15 * time.Minute},
	}

	// The client connects lazily; no operation in this test reaches storage.
	client, err := mongo.Connect(context.Background(), options.Client().ApplyURI("mongodb://localhost:27017"))
	if err != nil {
		t.Fatalf("mongo client: %v", err)
	}
	db := client.Database("router_test")

	e := NewRouter(cfg, db, nil, zerolog.Nop())

	do := func(token, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/dish/rate", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec
	}

	// More tokenless requests than the limiter capacity. Each must be a 401
	// from the auth gate; a 429 here would mean the limiter ran first.
	for i := 0; i < cfg.RateLimit.Requests+1; i++ {
		rec := do("", `{"did":3,"rating":4.5}`)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("tokenless request %d: expected 401, got %d", i+1, rec.Code)
		}
		if rec.Header().Get("X-RateLimit-Remaining") != "" {
			t.Fatalf("tokenless request %d reached the rate limiter", i+1)
		}
	}

	// An authenticated request still sees a full window. Its empty payload
	// fails validation after the limiter ran, so storage is never touched.
	token, err := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL).Issue(7)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	rec := do(token, `{}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for empty payload, got %d", rec.Code)
	}
	if got := rec.Header().Get("X-RateLimit-Remaining"); got != "1" {
		t.Fatalf("tokenless requests consumed budget: remaining=%q", got)
	}
}
