package dashboard

import (
	"sync"

	"golang.org/x/time/rate"
)

// ClientLimiterStore manages rate limiters for each client address
type ClientLimiterStore struct {
	limiters     map[string]*rate.Limiter
	mu           sync.Mutex
	defaultRate  rate.Limit
	defaultBurst int
}

func NewClientLimiterStore(defaultRate rate.Limit, defaultBurst int) *ClientLimiterStore {
	return &ClientLimiterStore{
		limiters:     make(map[string]*rate.Limiter),
		defaultRate:  defaultRate,
		defaultBurst: defaultBurst,
	}
}

// GetLimiter returns the rate limiter for a client, creating one if needed
func (s *ClientLimiterStore) GetLimiter(client string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	limiter, exists := s.limiters[client]
	if !exists {
		limiter = rate.NewLimiter(s.defaultRate, s.defaultBurst)
		s.limiters[client] = limiter
	}
	return limiter
}

// SetLimiter allows setting a custom rate limiter for a client
func (s *ClientLimiterStore) SetLimiter(client string, r rate.Limit, b int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.limiters[client] = rate.NewLimiter(r, b)
}
