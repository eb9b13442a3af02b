package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/corpit/licensedesk/internal/shared/logger"
	"github.com/corpit/licensedesk/internal/shared/utils"
)

// RateLimiter caps requests per client IP with a fixed-window counter in
// Redis, shared by every instance. Used on the unauthenticated auth routes.
type RateLimiter struct {
	client redis.Cmdable
	limit  int
	window time.Duration
	prefix string
	logger logger.Interface
	now    func() time.Time
}

func NewRateLimiter(client redis.Cmdable, prefix string, limit int, window time.Duration, logger logger.Interface) *RateLimiter {
	return &RateLimiter{
		client: client,
		limit:  limit,
		window: window,
		prefix: prefix,
		logger: logger,
		now:    time.Now,
	}
}

// Limit fails open when Redis is unreachable.
func (rl *RateLimiter) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if rl.limit <= 0 {
			c.Next()
			return
		}

		bucket := rl.now().Unix() / int64(rl.window.Seconds())
		key := fmt.Sprintf("ratelimit:%s:%s:%d", rl.prefix, c.ClientIP(), bucket)
		ctx := c.Request.Context()

		pipe := rl.client.TxPipeline()
		incr := pipe.Incr(ctx, key)
		pipe.Expire(ctx, key, rl.window+time.Second)
		if _, err := pipe.Exec(ctx); err != nil {
			rl.logger.Warnw("rate limiter unavailable, allowing request", "key", key, "error", err)
			c.Next()
			return
		}

		if incr.Val() > int64(rl.limit) {
			retryAfter := rl.window - time.Duration(rl.now().Unix()%int64(rl.window.Seconds()))*time.Second
			c.Header("Retry-After", strconv.Itoa(int(retryAfter.Seconds())))
			utils.ErrorResponse(c, http.StatusTooManyRequests, "rate limit exceeded, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
