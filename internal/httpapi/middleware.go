package httpapi

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	headerRequestID = "X-Request-ID"

	keyRequestID = "requestID"
	keyLogger    = "logger"
)

func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(headerRequestID)
		if len(requestID) == 0 {
			requestID = uuid.NewString()
		}

		c.Set(keyRequestID, requestID)
		c.Header(headerRequestID, requestID)

		c.Next()
	}
}

func requestLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestLogger := logger.With(
			zap.String("request_id", c.GetString(keyRequestID)),
		)
		c.Set(keyLogger, requestLogger)

		c.Next()

		requestLogger.Info(
			"request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}

func getLogger(c *gin.Context) *zap.Logger {
	if l, exists := c.Get(keyLogger); exists {
		if logger, ok := l.(*zap.Logger); ok {
			return logger
		}
	}

	return zap.NewNop()
}

const limiterIdleTimeout = 10 * time.Minute

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// rateLimiterStore holds one limiter per client IP. Limiters idle for
// longer than idleTimeout are dropped, swept at most once per idleTimeout.
type rateLimiterStore struct {
	limiters    map[string]*clientLimiter
	limit       rate.Limit
	burst       int
	idleTimeout time.Duration
	lastSweep   time.Time
	now         func() time.Time

	mu sync.Mutex
}

func newRateLimiterStore(requestsPerMinute int) *rateLimiterStore {
	return &rateLimiterStore{
		limiters:    make(map[string]*clientLimiter),
		limit:       rate.Every(time.Minute / time.Duration(requestsPerMinute)),
		burst:       requestsPerMinute,
		idleTimeout: limiterIdleTimeout,
		lastSweep:   time.Now(),
		now:         time.Now,
	}
}

func (s *rateLimiterStore) getLimiter(ip string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()

	if now.Sub(s.lastSweep) >= s.idleTimeout {
		s.sweep(now)
	}

	client, exists := s.limiters[ip]
	if !exists {
		client = &clientLimiter{
			limiter: rate.NewLimiter(s.limit, s.burst),
		}
		s.limiters[ip] = client
	}

	client.lastSeen = now

	return client.limiter
}

// sweep expects s.mu held.
func (s *rateLimiterStore) sweep(now time.Time) {
	for ip, client := range s.limiters {
		if now.Sub(client.lastSeen) >= s.idleTimeout {
			delete(s.limiters, ip)
		}
	}

	s.lastSweep = now
}

func (s *rateLimiterStore) middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()

		if !s.getLimiter(ip).Allow() {
			getLogger(c).Warn("rate limit exceeded", zap.String("ip", ip))

			c.AbortWithStatusJSON(
				http.StatusTooManyRequests,
				gin.H{"error": "rate limit exceeded"},
			)

			return
		}

		c.Next()
	}
}
