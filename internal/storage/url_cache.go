package storage

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/PrassV/Propo-Staging-sub002/internal/models"
	"github.com/PrassV/Propo-Staging-sub002/internal/retry"
)

const urlCachePrefix = "signedurl:"

var cachePolicy = retry.Policy{
	MaxAttempts:    3,
	InitialBackoff: 50 * time.Millisecond,
	MaxBackoff:     500 * time.Millisecond,
}

// URLCache hands out signed download tokens, reusing a cached token until it
// nears expiry and re-issuing it otherwise.
type URLCache struct {
	rdb    *redis.Client
	signer *Signer
}

func NewURLCache(rdb *redis.Client, signer *Signer) *URLCache {
	return &URLCache{rdb: rdb, signer: signer}
}

// SignedToken returns a valid download token for the document. A cached token
// is reused unless it expires within the signer's refresh margin. Cache
// failures degrade to issuing a fresh token.
func (c *URLCache) SignedToken(ctx context.Context, doc *models.Document) (string, error) {
	key := urlCachePrefix + doc.ID.String()

	cached, err := retry.Do(ctx, cachePolicy, func() (string, error) {
		val, err := c.rdb.Get(ctx, key).Result()
		if err == redis.Nil {
			return "", retry.Permanent(redis.Nil)
		}
		return val, err
	})
	if err == nil && cached != "" && !c.signer.ExpiresSoon(cached, time.Now()) {
		return cached, nil
	}

	token, expiresAt, err := c.signer.Issue(doc.ID, doc.Bucket, doc.ObjectKey)
	if err != nil {
		return "", err
	}

	// Best effort: a failed cache write only costs a re-issue next time.
	_ = retry.DoVoid(ctx, cachePolicy, func() error {
		return c.rdb.Set(ctx, key, token, time.Until(expiresAt)).Err()
	})

	return token, nil
}

// Invalidate drops the cached token for a document, e.g. when it is deleted.
func (c *URLCache) Invalidate(ctx context.Context, documentID string) error {
	return c.rdb.Del(ctx, urlCachePrefix+documentID).Err()
}
