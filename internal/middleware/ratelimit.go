package middleware

import (
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/HavenEstates/HE-Backend/internal/respond"
	"golang.org/x/time/rate"
)

const (
	limiterIdleTTL  = 10 * time.Minute
	limiterSweepGap = time.Minute
)

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// limiterPool hands out one token bucket per IP and evicts idle entries
// lazily on access, so it owns no background goroutine.
type limiterPool struct {
	mu        sync.Mutex
	clients   map[string]*client
	lastSweep time.Time
	rps       rate.Limit
	burst     int
	now       func() time.Time
}

func newLimiterPool(rps rate.Limit, burst int) *limiterPool {
	return &limiterPool{
		clients:   make(map[string]*client),
		lastSweep: time.Now(),
		rps:       rps,
		burst:     burst,
		now:       time.Now,
	}
}

func (p *limiterPool) allow(ip string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	now := p.now()
	if now.Sub(p.lastSweep) >= limiterSweepGap {
		for addr, c := range p.clients {
			if now.Sub(c.lastSeen) > limiterIdleTTL {
				delete(p.clients, addr)
			}
		}
		p.lastSweep = now
	}

	c, ok := p.clients[ip]
	if !ok {
		c = &client{limiter: rate.NewLimiter(p.rps, p.burst)}
		p.clients[ip] = c
	}
	c.lastSeen = now
	return c.limiter.Allow()
}

// RateLimit applies a per-IP token bucket. Used on the credential endpoints
// to slow down password guessing; everything else stays unthrottled.
func RateLimit(rps rate.Limit, burst int) func(http.Handler) http.Handler {
	pool := newLimiterPool(rps, burst)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				ip = r.RemoteAddr
			}

			if !pool.allow(ip) {
				respond.Error(w, http.StatusTooManyRequests, "Too many requests. Try again later.")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
