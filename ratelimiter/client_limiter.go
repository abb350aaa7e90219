package ratelimiter

import (
	"os"
	"sync"
	"time"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager/v3"
	"github.com/tedsuo/ifrit"
	"golang.org/x/time/rate"
)

const (
	DefaultBurst         = 20
	DefaultIdleTimeout   = 10 * time.Minute
	DefaultSweepInterval = 30 * time.Second
)

// Config allows MaxAmount requests per ValidDuration for each client once
// its initial burst is spent. A MaxAmount of 0 turns rate limiting off.
type Config struct {
	MaxAmount     int           `yaml:"max_amount" json:"max_amount"`
	ValidDuration time.Duration `yaml:"valid_duration" json:"valid_duration"`
}

func (c Config) IsEnabled() bool {
	return c.MaxAmount > 0
}

func (c Config) limit() rate.Limit {
	return rate.Limit(float64(c.MaxAmount) / c.ValidDuration.Seconds())
}

type Limiter interface {
	ExceedsLimit(key string) bool
}

type bucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// ClientLimiter keeps one token bucket per client key. Buckets of clients
// that stay quiet for longer than the idle timeout are dropped by Sweep.
type ClientLimiter struct {
	limit       rate.Limit
	burst       int
	idleTimeout time.Duration
	clock       clock.Clock
	logger      lager.Logger

	lock    sync.Mutex
	buckets map[string]*bucket
}

func NewClientLimiter(conf Config, burst int, idleTimeout time.Duration, clk clock.Clock, logger lager.Logger) *ClientLimiter {
	return &ClientLimiter{
		limit:       conf.limit(),
		burst:       burst,
		idleTimeout: idleTimeout,
		clock:       clk,
		logger:      logger.Session("client-limiter"),
		buckets:     make(map[string]*bucket),
	}
}

func DefaultClientLimiter(conf Config, clk clock.Clock, logger lager.Logger) *ClientLimiter {
	return NewClientLimiter(conf, DefaultBurst, DefaultIdleTimeout, clk, logger)
}

// ExceedsLimit takes one token from the bucket of key and reports whether
// there was none left.
func (l *ClientLimiter) ExceedsLimit(key string) bool {
	now := l.clock.Now()

	l.lock.Lock()
	defer l.lock.Unlock()

	b, found := l.buckets[key]
	if !found {
		b = &bucket{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.buckets[key] = b
	}
	b.lastSeen = now
	return !b.limiter.AllowN(now, 1)
}

// Sweep drops idle buckets and returns how many were dropped.
func (l *ClientLimiter) Sweep() int {
	now := l.clock.Now()

	l.lock.Lock()
	defer l.lock.Unlock()

	dropped := 0
	for key, b := range l.buckets {
		if now.Sub(b.lastSeen) > l.idleTimeout {
			delete(l.buckets, key)
			dropped++
		}
	}
	if dropped > 0 {
		l.logger.Debug("dropped-idle-buckets", lager.Data{"count": dropped})
	}
	return dropped
}

func (l *ClientLimiter) Len() int {
	l.lock.Lock()
	defer l.lock.Unlock()
	return len(l.buckets)
}

// Sweeper returns a runner that calls Sweep every interval until signalled.
func (l *ClientLimiter) Sweeper(interval time.Duration) ifrit.Runner {
	return ifrit.RunFunc(func(signals <-chan os.Signal, ready chan<- struct{}) error {
		ticker := l.clock.NewTicker(interval)
		defer ticker.Stop()
		close(ready)

		for {
			select {
			case <-signals:
				return nil
			case <-ticker.C():
				l.Sweep()
			}
		}
	})
}
