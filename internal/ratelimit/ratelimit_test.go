package ratelimit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLimiter_EnforcesPerMinuteCap(t *testing.T) {
	limiter := NewLimiter(3, 100, true)

	for i := 0; i < 3; i++ {
		assert.True(t, limiter.Allow("10.0.0.1"), "request %d should pass", i+1)
	}
	assert.False(t, limiter.Allow("10.0.0.1"))
}

func TestLimiter_EnforcesPerHourCap(t *testing.T) {
	limiter := NewLimiter(0, 2, true)

	assert.True(t, limiter.Allow("10.0.0.1"))
	assert.True(t, limiter.Allow("10.0.0.1"))
	assert.False(t, limiter.Allow("10.0.0.1"))
}

func TestLimiter_ClientsAreIndependent(t *testing.T) {
	limiter := NewLimiter(1, 100, true)

	assert.True(t, limiter.Allow("10.0.0.1"))
	assert.False(t, limiter.Allow("10.0.0.1"))
	assert.True(t, limiter.Allow("10.0.0.2"))
}

func TestLimiter_DisabledAllowsEverything(t *testing.T) {
	limiter := NewLimiter(1, 1, false)

	for i := 0; i < 50; i++ {
		assert.True(t, limiter.Allow("10.0.0.1"))
	}
}

func TestLimiter_ZeroCapsMeanUnlimited(t *testing.T) {
	limiter := NewLimiter(0, 0, true)

	for i := 0; i < 200; i++ {
		assert.True(t, limiter.Allow("10.0.0.1"))
	}
}
