package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
)

const cacheKeyPrefix = "trellis:response:"

// cachedResponse is the serialized form of a cached response.
type cachedResponse struct {
	StatusCode int         `json:"status_code"`
	Headers    http.Header `json:"headers"`
	Body       []byte      `json:"body"`
}

// cacheRecorder buffers a response so it can be stored after serving.
type cacheRecorder struct {
	http.ResponseWriter
	status int
	body   bytes.Buffer
}

func (r *cacheRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (r *cacheRecorder) Write(b []byte) (int, error) {
	if r.status == 0 {
		r.status = http.StatusOK
	}
	r.body.Write(b)
	return r.ResponseWriter.Write(b)
}

// Cache serves GET responses from Redis, keyed by request URI. Only 200
// responses are stored; Redis errors are treated as cache misses.
func Cache(client *redis.Client, ttl time.Duration) Middleware {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodGet {
				next.ServeHTTP(w, r)
				return
			}

			ctx := r.Context()
			key := cacheKeyPrefix + r.URL.RequestURI()

			// Anything other than a clean hit, redis.Nil included, falls
			// through to the handler.
			data, err := client.Get(ctx, key).Bytes()
			if err == nil {
				var cached cachedResponse
				if err := json.Unmarshal(data, &cached); err == nil {
					for name, values := range cached.Headers {
						for _, value := range values {
							w.Header().Add(name, value)
						}
					}
					w.Header().Set("X-Cache", "HIT")
					w.WriteHeader(cached.StatusCode)
					w.Write(cached.Body)
					return
				}
			}

			recorder := &cacheRecorder{ResponseWriter: w}
			w.Header().Set("X-Cache", "MISS")
			next.ServeHTTP(recorder, r)

			if recorder.status == http.StatusOK {
				payload, err := json.Marshal(cachedResponse{
					StatusCode: recorder.status,
					Headers:    cacheableHeaders(recorder.Header()),
					Body:       recorder.body.Bytes(),
				})
				if err == nil {
					client.Set(ctx, key, payload, ttl)
				}
			}
		})
	}
}

// cacheableHeaders strips per-request headers before storing.
func cacheableHeaders(h http.Header) http.Header {
	out := h.Clone()
	out.Del("X-Cache")
	out.Del(RequestIDHeader)
	out.Del("Set-Cookie")
	return out
}
