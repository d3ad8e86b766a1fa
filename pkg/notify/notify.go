// Package notify provides ready-made alert notification sinks for use
// as a cacherine alert callback: a standard-library logger sink, a
// Redis pub/sub sink for fanning alerts out to external consumers, and
// a combinator for delivering one alert to several sinks.
package notify

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// defaultPublishTimeout bounds a single Redis publish attempt.
const defaultPublishTimeout = 5 * time.Second

// Func is an alert notification callback, matching cacherine's
// NotifyFunc signature.
type Func func(message string)

// Combine fans a single alert out to every given callback in order.
func Combine(fns ...Func) Func {
	return func(message string) {
		for _, fn := range fns {
			fn(message)
		}
	}
}

// Logger returns a callback that writes alerts to the given standard
// library logger. A nil logger uses the default logger.
func Logger(logger *log.Logger) Func {
	return func(message string) {
		if logger != nil {
			logger.Printf("cache alert: %s", message)
			return
		}
		log.Printf("cache alert: %s", message)
	}
}

// RedisNotifier publishes alert messages to a Redis pub/sub channel so
// out-of-process consumers can subscribe to cache alerts. It is a
// delivery sink only; the cache itself never touches Redis.
type RedisNotifier struct {
	client  redis.UniversalClient
	channel string
	timeout time.Duration
	logger  *log.Logger
}

// NewRedisNotifier creates a notifier that publishes to the given channel
func NewRedisNotifier(client redis.UniversalClient, channel string) *RedisNotifier {
	return &RedisNotifier{
		client:  client,
		channel: channel,
		timeout: defaultPublishTimeout,
	}
}

// WithTimeout sets the per-publish timeout
func (n *RedisNotifier) WithTimeout(timeout time.Duration) *RedisNotifier {
	n.timeout = timeout
	return n
}

// WithLogger sets a logger for publish failures
func (n *RedisNotifier) WithLogger(logger *log.Logger) *RedisNotifier {
	n.logger = logger
	return n
}

// Notify publishes the alert message. Publish failures are logged, not
// returned: the alerting path has no error channel and a flaky broker
// must not disturb cache monitoring.
func (n *RedisNotifier) Notify(message string) {
	ctx, cancel := context.WithTimeout(context.Background(), n.timeout)
	defer cancel()

	if err := n.client.Publish(ctx, n.channel, message).Err(); err != nil {
		if n.logger != nil {
			n.logger.Printf("failed to publish cache alert: %v", err)
		} else {
			log.Printf("failed to publish cache alert: %v", err)
		}
	}
}

// Fn returns the notifier's callback in cacherine's NotifyFunc shape
func (n *RedisNotifier) Fn() Func {
	return n.Notify
}
