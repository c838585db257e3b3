package storage

import (
	"context"
	"flag"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"

	"github.com/PrassV/Propo-Staging-sub002/internal/models"
)

var testRedisAddr string

func TestMain(m *testing.M) {
	flag.Parse()

	// Skip container setup if running in short mode
	if testing.Short() {
		os.Exit(m.Run())
	}

	ctx := context.Background()

	redisContainer, err := tcredis.Run(ctx, "redis:7-alpine")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start redis container: %v\n", err)
		os.Exit(1)
	}

	defer func() {
		if err := redisContainer.Terminate(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to terminate redis container: %v\n", err)
		}
	}()

	testRedisAddr, err = redisContainer.Endpoint(ctx, "")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to get redis endpoint: %v\n", err)
		os.Exit(1)
	}

	os.Exit(m.Run())
}

func setupURLCache(t *testing.T, ttl, margin time.Duration) (*URLCache, *goredis.Client) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	client := goredis.NewClient(&goredis.Options{Addr: testRedisAddr})
	t.Cleanup(func() {
		client.FlushDB(context.Background())
		client.Close()
	})

	signer := NewSigner(testSecret, ttl, margin)
	return NewURLCache(client, signer), client
}

func testDocument() *models.Document {
	return &models.Document{
		ID:        uuid.New(),
		Bucket:    "documents",
		ObjectKey: "lease.pdf",
	}
}

func TestURLCache_ReusesCachedToken(t *testing.T) {
	cache, client := setupURLCache(t, 15*time.Minute, 5*time.Minute)
	ctx := context.Background()
	doc := testDocument()

	first, err := cache.SignedToken(ctx, doc)
	require.NoError(t, err)

	second, err := cache.SignedToken(ctx, doc)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	cached, err := client.Get(ctx, urlCachePrefix+doc.ID.String()).Result()
	require.NoError(t, err)
	assert.Equal(t, first, cached)
}

func TestURLCache_ReissuesWhenExpiringSoon(t *testing.T) {
	cache, client := setupURLCache(t, 15*time.Minute, 5*time.Minute)
	ctx := context.Background()
	doc := testDocument()

	// Seed a token whose expiry falls inside the refresh margin.
	stale, _, err := NewSigner(testSecret, 2*time.Minute, 0).Issue(doc.ID, doc.Bucket, doc.ObjectKey)
	require.NoError(t, err)
	require.NoError(t, client.Set(ctx, urlCachePrefix+doc.ID.String(), stale, time.Minute).Err())

	token, err := cache.SignedToken(ctx, doc)
	require.NoError(t, err)
	assert.NotEqual(t, stale, token)

	signer := NewSigner(testSecret, 15*time.Minute, 5*time.Minute)
	claims, err := signer.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, doc.ID.String(), claims.Subject)
	assert.False(t, signer.ExpiresSoon(token, time.Now()))

	cached, err := client.Get(ctx, urlCachePrefix+doc.ID.String()).Result()
	require.NoError(t, err)
	assert.Equal(t, token, cached)
}

func TestURLCache_InvalidateDropsToken(t *testing.T) {
	cache, client := setupURLCache(t, 15*time.Minute, 5*time.Minute)
	ctx := context.Background()
	doc := testDocument()

	_, err := cache.SignedToken(ctx, doc)
	require.NoError(t, err)

	require.NoError(t, cache.Invalidate(ctx, doc.ID.String()))

	_, err = client.Get(ctx, urlCachePrefix+doc.ID.String()).Result()
	assert.ErrorIs(t, err, goredis.Nil)
}

func TestURLCache_IssuesWhenRedisUnavailable(t *testing.T) {
	// No container needed: the point is that a dead cache still yields a token.
	client := goredis.NewClient(&goredis.Options{Addr: "localhost:1"})
	defer client.Close()

	signer := NewSigner(testSecret, 15*time.Minute, 5*time.Minute)
	cache := NewURLCache(client, signer)
	doc := testDocument()

	token, err := cache.SignedToken(context.Background(), doc)
	require.NoError(t, err)

	claims, err := signer.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, doc.ID.String(), claims.Subject)
}
