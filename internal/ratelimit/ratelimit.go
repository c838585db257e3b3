// Package ratelimit enforces per-client sliding-window request limits.
package ratelimit

import (
	"sync"
	"time"
)

// Limiter tracks request timestamps per client key and enforces
// per-minute and per-hour caps.
type Limiter struct {
	requestsPerMinute int
	requestsPerHour   int
	enabled           bool

	mu      sync.Mutex
	clients map[string]*window
}

type window struct {
	minute []time.Time
	hour   []time.Time
	seen   time.Time
}

func NewLimiter(requestsPerMinute, requestsPerHour int, enabled bool) *Limiter {
	return &Limiter{
		requestsPerMinute: requestsPerMinute,
		requestsPerHour:   requestsPerHour,
		enabled:           enabled,
		clients:           make(map[string]*window),
	}
}

// Allow reports whether a request from the given client is within limits,
// recording it when so.
func (l *Limiter) Allow(client string) bool {
	if !l.enabled {
		return true
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	w, ok := l.clients[client]
	if !ok {
		w = &window{}
		l.clients[client] = w
	}

	w.minute = keepAfter(w.minute, now.Add(-time.Minute))
	w.hour = keepAfter(w.hour, now.Add(-time.Hour))

	if l.requestsPerMinute > 0 && len(w.minute) >= l.requestsPerMinute {
		return false
	}
	if l.requestsPerHour > 0 && len(w.hour) >= l.requestsPerHour {
		return false
	}

	w.minute = append(w.minute, now)
	w.hour = append(w.hour, now)
	w.seen = now

	// Drop clients idle for over an hour so the map does not grow unbounded.
	if len(l.clients) > 1024 {
		cutoff := now.Add(-time.Hour)
		for k, win := range l.clients {
			if win.seen.Before(cutoff) {
				delete(l.clients, k)
			}
		}
	}

	return true
}

func keepAfter(times []time.Time, cutoff time.Time) []time.Time {
	result := times[:0]
	for _, t := range times {
		if t.After(cutoff) {
			result = append(result, t)
		}
	}
	return result
}
