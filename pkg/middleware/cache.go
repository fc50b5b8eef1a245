package middleware

import (
	"bytes"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gilby125/trip-planner-api/pkg/cache"
	"github.com/gilby125/trip-planner-api/pkg/logger"
)

// CacheConfig configures ResponseCache for one route group.
type CacheConfig struct {
	TTL       time.Duration
	KeyPrefix string
}

// cachedResponse is the stored form of one response.
type cachedResponse struct {
	StatusCode int       `json:"status_code"`
	Body       []byte    `json:"body"`
	CachedAt   time.Time `json:"cached_at"`
}

// bodyCapture tees the response body so it can be stored after the handler
// runs.
type bodyCapture struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *bodyCapture) Write(data []byte) (int, error) {
	w.body.Write(data)
	return w.ResponseWriter.Write(data)
}

// ResponseCache caches successful JSON GET responses. It is applied only to
// the reference-data routes; everything else on the API is served fresh.
// Cache availability is best-effort: redis errors fall through to the
// handler.
func ResponseCache(cacheManager *cache.CacheManager, config CacheConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			c.Next()
			return
		}

		key := config.KeyPrefix + ":" + c.Request.URL.Path
		if q := c.Request.URL.RawQuery; q != "" {
			key += "?" + q
		}

		var cached cachedResponse
		err := cacheManager.GetJSON(c.Request.Context(), key, &cached)
		if err == nil {
			c.Header("X-Cache", "HIT")
			c.Data(cached.StatusCode, "application/json", cached.Body)
			c.Abort()
			return
		}
		if !errors.Is(err, cache.ErrCacheMiss) {
			logger.WithField("cache_key", key).Error(err, "Cache read failed")
		}

		// The miss header must go on before the handler writes the body.
		c.Header("X-Cache", "MISS")

		capture := &bodyCapture{ResponseWriter: c.Writer, body: &bytes.Buffer{}}
		c.Writer = capture

		c.Next()

		if c.Writer.Status() < 200 || c.Writer.Status() >= 300 {
			return
		}

		entry := cachedResponse{
			StatusCode: c.Writer.Status(),
			Body:       capture.body.Bytes(),
			CachedAt:   time.Now(),
		}
		if err := cacheManager.SetJSON(c.Request.Context(), key, entry, config.TTL); err != nil {
			logger.WithField("cache_key", key).Error(err, "Cache write failed")
		}
	}
}
