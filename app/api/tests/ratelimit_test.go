package tests

import (
	"context"
	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/ribgsilva/notes/app/api/handlers"
	"github.com/ribgsilva/notes/app/api/handlers/v1/healthcheck"
	"github.com/ribgsilva/notes/app/api/handlers/v1/notes"
	"github.com/ribgsilva/notes/business/v1/note"
	pnote "github.com/ribgsilva/notes/persistence/v1/note"
	"github.com/ribgsilva/notes/platform/ratelimit"
	"go.uber.org/zap"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

// limitedAPI serves the api with a limit of 3 requests per minute for each client
func limitedAPI(t *testing.T, trustedProxies []string) (*gin.Engine, *miniredis.Miniredis) {
	gin.SetMode(gin.TestMode)
	log := zap.NewNop().Sugar()
	s := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: s.Addr()})
	t.Cleanup(func() {
		_ = rdb.Close()
	})

	hc := handlers.Config{
		Notes:          notes.Handlers{Log: log, Notes: note.NewCore(pnote.NewMemory())},
		Health:         healthcheck.Handlers{Log: log, Ping: func(ctx context.Context) error { return nil }, Timeout: time.Second},
		Limiter:        ratelimit.NewRedis(rdb, 3, time.Minute, time.Second),
		TrustedProxies: trustedProxies,
	}
	engine := gin.New()
	if err := handlers.Use(engine, hc); err != nil {
		t.Fatalf("handlers.Use: Error: %s\n", err)
	}
	handlers.MapDefaults(engine, hc)
	handlers.MapApi(engine, hc)
	return engine, s
}

func listFrom(engine *gin.Engine, remote, forwardedFor string) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodGet, "/api/notes", nil)
	r.RemoteAddr = remote
	if forwardedFor != "" {
		r.Header.Set("X-Forwarded-For", forwardedFor)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, r)
	return w
}

func TestRateLimit(t *testing.T) {
	engine, s := limitedAPI(t, nil)

	for i := 0; i < 3; i++ {
		if w := listFrom(engine, "10.0.0.1:1234", ""); w.Code != http.StatusOK {
			t.Fatalf("Test rateLimit: request %d should receive a status code of 200 : %v", i, w.Code)
		}
	}

	w := listFrom(engine, "10.0.0.1:1234", "")
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("Test rateLimit: Should receive a status code of 429 for the response : %v", w.Code)
	}
	if w.Header().Get("Retry-After") == "" {
		t.Fatalf("Test rateLimit: Should receive a Retry-After header: %v", w.Header())
	}

	// other clients have their own window
	if w := listFrom(engine, "10.0.0.2:1234", ""); w.Code != http.StatusOK {
		t.Fatalf("Test rateLimit: another client should receive a status code of 200 : %v", w.Code)
	}

	// the healthcheck is never limited
	r := httptest.NewRequest(http.MethodGet, "/v1/healthcheck", nil)
	r.RemoteAddr = "10.0.0.1:1234"
	hw := httptest.NewRecorder()
	engine.ServeHTTP(hw, r)
	if hw.Code != http.StatusOK {
		t.Fatalf("Test rateLimit: healthcheck should receive a status code of 200 : %v", hw.Code)
	}

	s.FastForward(time.Minute)
	if w := listFrom(engine, "10.0.0.1:1234", ""); w.Code != http.StatusOK {
		t.Fatalf("Test rateLimit: Should be admitted again after the window : %v", w.Code)
	}
}

func TestRateLimitIgnoresUntrustedForwardedFor(t *testing.T) {
	engine, _ := limitedAPI(t, nil)

	forwarded := []string{"1.1.1.1", "2.2.2.2", "3.3.3.3", "4.4.4.4", "5.5.5.5"}
	for i, ip := range forwarded {
		w := listFrom(engine, "10.0.0.1:1234", ip)
		if i < 3 && w.Code != http.StatusOK {
			t.Fatalf("Test rateLimit: request %d should receive a status code of 200 : %v", i, w.Code)
		}
		if i >= 3 && w.Code != http.StatusTooManyRequests {
			t.Fatalf("Test rateLimit: request %d with X-Forwarded-For %s should receive a status code of 429 : %v", i, ip, w.Code)
		}
	}
}

func TestRateLimitTrustedProxyForwardsClients(t *testing.T) {
	engine, _ := limitedAPI(t, []string{"10.0.0.9"})

	// every browser behind the proxy has its own window
	for _, ip := range []string{"1.1.1.1", "2.2.2.2"} {
		for i := 0; i < 3; i++ {
			if w := listFrom(engine, "10.0.0.9:4321", ip); w.Code != http.StatusOK {
				t.Fatalf("Test rateLimit: request %d for %s should receive a status code of 200 : %v", i, ip, w.Code)
			}
		}
	}

	if w := listFrom(engine, "10.0.0.9:4321", "1.1.1.1"); w.Code != http.StatusTooManyRequests {
		t.Fatalf("Test rateLimit: Should receive a status code of 429 once 1.1.1.1 used its window : %v", w.Code)
	}

	// the proxy itself is still limited on its own address
	if w := listFrom(engine, "10.0.0.9:4321", ""); w.Code != http.StatusOK {
		t.Fatalf("Test rateLimit: the proxy address should have its own window : %v", w.Code)
	}
}
