package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"resto-be/internal/auth"
	"resto-be/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestCors(t *testing.T) {
	handler := CORS("http://localhost:3000")(okHandler())

	t.Run("OPTIONS request", func(t *testing.T) {
		req := httptest.NewRequest("OPTIONS", "/trpc/getMenuItems", nil)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "POST")
		assert.Contains(t, w.Header().Get("Access-Control-Allow-Headers"), "Content-Type")
		assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("Normal request", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/trpc/getMenuItems", nil)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Wildcard", func(t *testing.T) {
		w := httptest.NewRecorder()
		CORS("")(okHandler()).ServeHTTP(w, httptest.NewRequest("GET", "/", nil))

		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Credentials"))
	})
}

func TestAuth(t *testing.T) {
	t.Run("Missing Token", func(t *testing.T) {
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, ok := utils.GetUserIDFromContext(r.Context())
			assert.False(t, ok, "Context should not contain user ID")
			w.WriteHeader(http.StatusOK)
		})

		w := httptest.NewRecorder()
		Auth(testSecret)(next).ServeHTTP(w, httptest.NewRequest("GET", "/trpc/getOrders", nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Invalid Token", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/trpc/getOrders", nil)
		req.Header.Set("Authorization", "Bearer invalid-token")
		w := httptest.NewRecorder()

		Auth(testSecret)(http.NotFoundHandler()).ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Valid Token", func(t *testing.T) {
		token, err := auth.GenerateJWT(testSecret, "frontdesk", auth.RoleStaff, time.Hour)
		require.NoError(t, err)

		req := httptest.NewRequest("GET", "/trpc/getOrders", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()

		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := utils.GetUserIDFromContext(r.Context())
			assert.True(t, ok)
			assert.Equal(t, "frontdesk", userID)
			assert.Equal(t, auth.RoleStaff, utils.GetUserRoleFromContext(r.Context()))
			w.WriteHeader(http.StatusOK)
		})

		Auth(testSecret)(next).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Expired Token", func(t *testing.T) {
		token, err := auth.GenerateJWT(testSecret, "frontdesk", auth.RoleStaff, -time.Hour)
		require.NoError(t, err)

		req := httptest.NewRequest("GET", "/trpc/getOrders", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()

		Auth(testSecret)(http.NotFoundHandler()).ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Malformed Header", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/trpc/getOrders", nil)
		req.Header.Set("Authorization", "Basic user:pass")
		w := httptest.NewRecorder()

		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, ok := utils.GetUserIDFromContext(r.Context())
			assert.False(t, ok)
			w.WriteHeader(http.StatusOK)
		})

		Auth(testSecret)(next).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Disabled", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/trpc/getOrders", nil)
		req.Header.Set("Authorization", "Bearer whatever")
		w := httptest.NewRecorder()

		Auth("")(okHandler()).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestRateLimiter(t *testing.T) {
	t.Run("Strict tier for writes", func(t *testing.T) {
		rl := NewRateLimiter("")
		handler := rl.Middleware(okHandler())

		codes := []int{}
		for i := 0; i < burstStrict+1; i++ {
			req := httptest.NewRequest("POST", "/trpc/createOrder", strings.NewReader("{}"))
			req.RemoteAddr = "10.0.0.1:5555"
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)
			codes = append(codes, w.Code)
		}

		assert.Equal(t, http.StatusOK, codes[0])
		assert.Equal(t, http.StatusTooManyRequests, codes[len(codes)-1])
	})

	t.Run("Separate buckets per tier and caller", func(t *testing.T) {
		rl := NewRateLimiter("")
		handler := rl.Middleware(okHandler())

		for _, req := range []*http.Request{
			httptest.NewRequest("POST", "/trpc/createOrder", nil),
			httptest.NewRequest("GET", "/trpc/getMenuItems", nil),
		} {
			req.RemoteAddr = "10.0.0.2:1"
			handler.ServeHTTP(httptest.NewRecorder(), req)
		}

		req := httptest.NewRequest("GET", "/trpc/getMenuItems", nil)
		req.Header.Set("X-Device-ID", "kiosk-1")
		handler.ServeHTTP(httptest.NewRecorder(), req)

		assert.Equal(t, 3, rl.size())
	})

	t.Run("Internal tier marks context", func(t *testing.T) {
		rl := NewRateLimiter("svc-key")

		var internal bool
		handler := rl.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			internal = utils.IsInternalRequest(r.Context())
		}))

		req := httptest.NewRequest("POST", "/trpc/createMenuItem", nil)
		req.Header.Set("X-Service-Auth", "svc-key")
		handler.ServeHTTP(httptest.NewRecorder(), req)
		assert.True(t, internal)

		limit, burst, tier := rl.resolveRateTier(req)
		assert.Equal(t, limitInternal, limit)
		assert.Equal(t, burstInternal, burst)
		assert.Equal(t, "internal", tier)

		req.Header.Set("X-Service-Auth", "wrong")
		_, _, tier = rl.resolveRateTier(req)
		assert.Equal(t, "strict", tier)
	})

	t.Run("Idle visitors are swept on access", func(t *testing.T) {
		rl := NewRateLimiter("")
		now := time.Now()
		rl.now = func() time.Time { return now }

		rl.getVisitor("ip:a:general", limitGeneral, burstGeneral)
		rl.getVisitor("ip:b:general", limitGeneral, burstGeneral)
		assert.Equal(t, 2, rl.size())

		now = now.Add(visitorIdleTTL + sweepInterval)
		rl.getVisitor("ip:c:general", limitGeneral, burstGeneral)
		assert.Equal(t, 1, rl.size())
	})
}

func TestChain(t *testing.T) {
	order := []string{}
	mw := func(name string) Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	Chain(okHandler(), mw("a"), mw("b"), mw("c")).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/", nil))

	assert.Equal(t, []string{"a", "b", "c"}, order)
}
