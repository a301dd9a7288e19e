package middleware

import (
	"context"
	"net"
	"sync"
	"time"

	"golang.org/x/time/rate"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"
)

const (
	sweepInterval = time.Minute
	staleAfter    = 3 * time.Minute
)

type client struct {
	lim  *rate.Limiter
	seen time.Time
}

// RateLimiter keeps one token bucket per peer host for a fixed set of
// methods. Other methods pass through.
type RateLimiter struct {
	mu      sync.Mutex
	clients map[string]*client
	limited map[string]bool
	r       rate.Limit
	burst   int
	now     func() time.Time
}

func NewRateLimiter(rps float64, burst int, methods ...string) *RateLimiter {
	limited := make(map[string]bool, len(methods))
	for _, m := range methods {
		limited[m] = true
	}
	return &RateLimiter{
		clients: make(map[string]*client),
		limited: limited,
		r:       rate.Limit(rps),
		burst:   burst,
		now:     time.Now,
	}
}

// Run drops peers not seen for a few minutes, once a minute, until ctx is done.
func (rl *RateLimiter) Run(ctx context.Context) {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			rl.sweep()
		}
	}
}

func (rl *RateLimiter) sweep() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	for addr, c := range rl.clients {
		if now.Sub(c.seen) > staleAfter {
			delete(rl.clients, addr)
		}
	}
}

func (rl *RateLimiter) get(addr string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	if c, ok := rl.clients[addr]; ok {
		c.seen = now
		return c.lim
	}
	l := rate.NewLimiter(rl.r, rl.burst)
	rl.clients[addr] = &client{lim: l, seen: now}
	return l
}

// HandleGRPC rejects limited methods with ResourceExhausted once the peer's bucket is empty.
func (rl *RateLimiter) HandleGRPC(ctx context.Context, req any, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
	if !rl.limited[info.FullMethod] {
		return next(ctx, req)
	}

	if !rl.get(peerHost(ctx)).AllowN(rl.now(), 1) {
		return nil, status.Error(codes.ResourceExhausted, "too many requests")
	}

	return next(ctx, req)
}

// peerHost identifies the caller by host alone; the source port changes
// with every connection.
func peerHost(ctx context.Context) string {
	p, ok := peer.FromContext(ctx)
	if !ok || p.Addr == nil {
		return "unknown"
	}
	addr := p.Addr.String()
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		return addr
	}
	return host
}
