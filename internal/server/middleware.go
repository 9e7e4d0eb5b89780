package server

import (
	"sync"
	"time"

	"fjacquet/voice-ledger/internal/logging"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

// RequestIDHeader carries the request id in both directions.
const RequestIDHeader = "X-Request-ID"

const requestIDLocal = "request_id"

func requestIDMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestID := c.Get(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		c.Locals(requestIDLocal, requestID)
		c.Set(RequestIDHeader, requestID)
		return c.Next()
	}
}

func getRequestID(c *fiber.Ctx) string {
	requestID, ok := c.Locals(requestIDLocal).(string)
	if !ok || requestID == "" {
		return "unknown"
	}
	return requestID
}

func loggingMiddleware(logger logging.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		fields := []logging.Field{
			{Key: logging.FieldRequestID, Value: getRequestID(c)},
			{Key: "method", Value: c.Method()},
			{Key: "path", Value: c.Path()},
			{Key: logging.FieldStatus, Value: status},
			{Key: logging.FieldDuration, Value: time.Since(start).Milliseconds()},
			{Key: "ip", Value: c.IP()},
		}

		switch {
		case status >= 500:
			logger.Error("Server error", fields...)
		case status >= 400:
			logger.Warn("Client error", fields...)
		default:
			logger.Info("Request completed", fields...)
		}
		return err
	}
}

// rateLimiter keeps one token bucket per client IP.
type rateLimiter struct {
	bucket    map[string]*rate.Limiter
	rate      rate.Limit
	burstSize int
	mutex     sync.Mutex
}

func newRateLimiter(perMinute int) *rateLimiter {
	burst := perMinute / 6
	if burst < 1 {
		burst = 1
	}
	return &rateLimiter{
		bucket:    make(map[string]*rate.Limiter),
		rate:      rate.Every(time.Minute / time.Duration(perMinute)),
		burstSize: burst,
	}
}

func (r *rateLimiter) limiterFor(ip string) *rate.Limiter {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	limiter, ok := r.bucket[ip]
	if !ok {
		limiter = rate.NewLimiter(r.rate, r.burstSize)
		r.bucket[ip] = limiter
	}
	return limiter
}

func (r *rateLimiter) handler(logger logging.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ip := c.IP()
		if !r.limiterFor(ip).Allow() {
			logger.Warn("Too many requests",
				logging.Field{Key: "ip", Value: ip},
				logging.Field{Key: logging.FieldRequestID, Value: getRequestID(c)})
			return c.Status(fiber.StatusTooManyRequests).JSON(ErrorResponse{
				RequestID: getRequestID(c),
				Error:     "too many requests",
			})
		}
		return c.Next()
	}
}
