// Package httpkit provides HTTP middleware infrastructure.
// This is part of the platform layer and contains no business logic.
package httpkit

import (
	"context"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"property_brochure_backend/platform/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

// HeaderRequestID carries the request correlation id.
const HeaderRequestID = "X-Request-ID"

// RequestID assigns a request id (or keeps the caller's) and stores it on
// the request context for logger.WithContext.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Header(HeaderRequestID, id)
		ctx := context.WithValue(c.Request.Context(), logger.RequestIDKey, id)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// RequestLogger logs HTTP requests with timing.
func RequestLogger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()
		clientIP := c.ClientIP()
		reqLog := log.WithContext(c.Request.Context())

		if status >= http.StatusInternalServerError && len(c.Errors) > 0 {
			reqLog.HTTPError(c.Request.Method, path, status, c.Errors.Last().Err, clientIP)
			return
		}
		reqLog.HTTPRequest(c.Request.Method, path, status, float64(latency.Milliseconds()), clientIP)
	}
}

// CORS returns the cross-origin middleware. A "*" entry (the default)
// opens every route to any origin without credentials. Requests under a
// skipPrefixes entry pass through untouched so their handlers can answer
// preflights themselves.
func CORS(origins []string, skipPrefixes ...string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", HeaderRequestID},
		ExposeHeaders: []string{"Content-Disposition", HeaderRequestID},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || containsWildcard(origins) {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	handler := cors.New(cfg)
	return func(c *gin.Context) {
		for _, prefix := range skipPrefixes {
			if strings.HasPrefix(c.Request.URL.Path, prefix) {
				c.Next()
				return
			}
		}
		handler(c)
	}
}

func containsWildcard(values []string) bool {
	for _, value := range values {
		if value == "*" {
			return true
		}
	}
	return false
}

const (
	limiterIdleTTL       = 10 * time.Minute
	limiterSweepInterval = time.Minute
)

type ipLimiter struct {
	limiter  *rate.Limiter
	lastSeen atomic.Int64
}

// IPRateLimiter manages per-IP rate limiters. Entries idle for longer than
// limiterIdleTTL are swept on a later request.
type IPRateLimiter struct {
	limiters  sync.Map
	rate      rate.Limit
	burst     int
	log       *logger.Logger
	now       func() time.Time
	lastSweep atomic.Int64
}

// NewIPRateLimiter creates a new IP-based rate limiter.
func NewIPRateLimiter(r rate.Limit, burst int, log *logger.Logger) *IPRateLimiter {
	l := &IPRateLimiter{
		rate:  r,
		burst: burst,
		log:   log,
		now:   time.Now,
	}
	l.lastSweep.Store(l.now().UnixNano())
	return l
}

func (i *IPRateLimiter) getLimiter(ip string) *rate.Limiter {
	now := i.now().UnixNano()
	i.sweep(now)

	entry, ok := i.limiters.Load(ip)
	if !ok {
		entry, _ = i.limiters.LoadOrStore(ip, &ipLimiter{limiter: rate.NewLimiter(i.rate, i.burst)})
	}
	l := entry.(*ipLimiter)
	l.lastSeen.Store(now)
	return l.limiter
}

func (i *IPRateLimiter) sweep(now int64) {
	last := i.lastSweep.Load()
	if now-last < int64(limiterSweepInterval) || !i.lastSweep.CompareAndSwap(last, now) {
		return
	}
	cutoff := now - int64(limiterIdleTTL)
	i.limiters.Range(func(key, value any) bool {
		if value.(*ipLimiter).lastSeen.Load() < cutoff {
			i.limiters.Delete(key)
		}
		return true
	})
}

// RateLimit returns a middleware that rate limits by IP.
// Preflight requests are never limited.
func (i *IPRateLimiter) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}

		ip := c.ClientIP()
		limiter := i.getLimiter(ip)

		if !limiter.Allow() {
			if i.log != nil {
				i.log.RateLimitExceeded(ip, c.Request.URL.Path)
			}
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "rate limit exceeded",
			})
			return
		}

		c.Next()
	}
}

// NewInquiryRateLimiter creates the limiter for the public inquiry form
// (10 submissions per minute per IP, burst of 5).
func NewInquiryRateLimiter(log *logger.Logger) *IPRateLimiter {
	return NewIPRateLimiter(rate.Limit(10.0/60.0), 5, log)
}
