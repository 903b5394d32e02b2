package middleware

import (
	"errors"
	"net/http"
	"petcare/shared"
	"petcare/shared/cache"
	"petcare/shared/constant"
	"petcare/transport/http/response"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
)

const (
	cacheKeyRateLimit = "limiter"
	// localLimiterCapacity bounds the in-process buckets; keys come from client headers.
	localLimiterCapacity = 10000
)

type clientBucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// localLimiter keeps a token bucket per client. It only serves while the cache is unreachable.
// A bucket idle for a whole window has refilled, so dropping it does not change any decision.
type localLimiter struct {
	mu        sync.Mutex
	buckets   map[string]*clientBucket
	limit     rate.Limit
	burst     int
	idle      time.Duration
	capacity  int
	lastSweep time.Time
	now       func() time.Time
}

func newLocalLimiter(maxReqs, windowSecs int) *localLimiter {
	if windowSecs <= 0 {
		windowSecs = 1
	}

	window := time.Duration(windowSecs) * time.Second

	return &localLimiter{
		buckets:  map[string]*clientBucket{},
		limit:    rate.Every(window / time.Duration(max(1, maxReqs))),
		burst:    max(1, maxReqs),
		idle:     window,
		capacity: localLimiterCapacity,
		now:      time.Now,
	}
}

func (l *localLimiter) allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()

	if now.Sub(l.lastSweep) >= l.idle {
		l.sweep(now)
	}

	bucket, ok := l.buckets[key]
	if !ok {
		if len(l.buckets) >= l.capacity {
			l.evictOldest()
		}

		bucket = &clientBucket{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.buckets[key] = bucket
	}

	bucket.lastSeen = now

	return bucket.limiter.AllowN(now, 1)
}

func (l *localLimiter) sweep(now time.Time) {
	for key, bucket := range l.buckets {
		if now.Sub(bucket.lastSeen) >= l.idle {
			delete(l.buckets, key)
		}
	}

	l.lastSweep = now
}

func (l *localLimiter) evictOldest() {
	var (
		oldestKey  string
		oldestSeen time.Time
	)

	for key, bucket := range l.buckets {
		if oldestKey == "" || bucket.lastSeen.Before(oldestSeen) {
			oldestKey, oldestSeen = key, bucket.lastSeen
		}
	}

	delete(l.buckets, oldestKey)
}

func (a *appMiddleware) RateLimit() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !a.config.App.RateLimiter.Enable {
				next.ServeHTTP(w, r)

				return
			}

			maxReqs := a.config.App.RateLimiter.MaxRequests
			windowSecs := a.config.App.RateLimiter.WindowSeconds

			a.once.Do(func() {
				a.fallback = newLocalLimiter(maxReqs, windowSecs)
			})

			userAgent := a.getUA(r)
			clientIP := a.getClientIP(r)
			cacheKey := shared.BuildCacheKey(cacheKeyRateLimit, clientIP, userAgent)

			var count int
			err := a.cache.Get(r.Context(), cacheKey, &count)

			switch {
			case err == nil:
				count++
			case errors.Is(err, cache.Nil):
				count = 1
			default:
				log.Warn().Err(err).Msg("rate limiter cache unavailable, using in-process limiter")

				if !a.fallback.allow(cacheKey) {
					response.WithRequestLimitExceeded(w)

					return
				}

				next.ServeHTTP(w, r)

				return
			}

			if count > maxReqs {
				response.WithRequestLimitExceeded(w)

				return
			}

			err = a.cache.Save(r.Context(), cacheKey, count, windowSecs)
			if err != nil {
				// If cache save fails, allow the request to continue
				next.ServeHTTP(w, r)

				return
			}

			w.Header().Set(constant.RequestHeaderRateLimit, strconv.Itoa(maxReqs))
			w.Header().Set(constant.RequestHeaderRateLimitRemaining, strconv.Itoa(max(0, maxReqs-count)))
			w.Header().Set(constant.RequestHeaderRateLimitWindow, strconv.Itoa(windowSecs))

			next.ServeHTTP(w, r)
		})
	}
}

func (a *appMiddleware) getUA(r *http.Request) string {
	ua := r.Header.Get(constant.RequestHeaderUserAgent)
	if ua == "" {
		ua = "unknown"
	}

	return ua
}

func (a *appMiddleware) getClientIP(r *http.Request) string {
	// X-Forwarded-For can contain multiple IPs, take the first one
	if xff := r.Header.Get(constant.RequestHeaderForwardedFor); xff != "" {
		if commaIdx := strings.Index(xff, ","); commaIdx > 0 {
			return strings.TrimSpace(xff[:commaIdx])
		}

		return strings.TrimSpace(xff)
	}

	if xri := r.Header.Get(constant.RequestHeaderRealIP); xri != "" {
		return strings.TrimSpace(xri)
	}

	return r.RemoteAddr
}
