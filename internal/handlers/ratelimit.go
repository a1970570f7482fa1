package handlers

import (
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// submitRateLimiter throttles form submissions per client IP. A browser
// disables the submit button during a round trip, so anything beyond a
// small burst is automation.
type submitRateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	rate     rate.Limit
	burst    int
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func newSubmitRateLimiter(r rate.Limit, burst int) *submitRateLimiter {
	rl := &submitRateLimiter{
		visitors: make(map[string]*visitor),
		rate:     r,
		burst:    burst,
	}
	go rl.cleanupVisitors()
	return rl
}

func (rl *submitRateLimiter) cleanupVisitors() {
	for {
		time.Sleep(time.Minute)
		rl.mu.Lock()
		for ip, v := range rl.visitors {
			if time.Since(v.lastSeen) > 3*time.Minute {
				delete(rl.visitors, ip)
			}
		}
		rl.mu.Unlock()
	}
}

func (rl *submitRateLimiter) allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	v, ok := rl.visitors[ip]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(rl.rate, rl.burst)}
		rl.visitors[ip] = v
	}
	v.lastSeen = time.Now()
	return v.limiter.Allow()
}

var contactLimiter = newSubmitRateLimiter(rate.Every(10*time.Second), 5)

// ContactRateLimit rejects rapid-fire submissions from one client.
func (h *Handlers) ContactRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !contactLimiter.allow(clientIP(r)) {
			h.loggerFromContext(r.Context()).Warn("contact submission rate limited", "remote_ip", clientIP(r))
			h.writeJSON(w, r, http.StatusTooManyRequests, map[string]any{
				"success": false,
				"error":   "Too many submissions. Please try again later.",
			})
			return
		}
		next.ServeHTTP(w, r)
	})
}
