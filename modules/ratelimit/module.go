package ratelimit

import (
	"context"
	"fmt"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/types"
	"github.com/redis/go-redis/v9"
)

// KeyPrefix namespaces every rate limit key in Redis.
const KeyPrefix = "finalghecko:ratelimit:"

// Module owns the Redis client behind the API rate limit.
type Module struct {
	client  *redis.Client
	limiter *SlidingWindowLimiter
	config  Config
	logger  types.Logger
}

var (
	_ mono.Module                = (*Module)(nil)
	_ mono.HealthCheckableModule = (*Module)(nil)
)

// NewModule creates the module. The Redis connection is checked on Start.
func NewModule(opts *redis.Options, config Config, logger types.Logger) *Module {
	client := redis.NewClient(opts)
	return &Module{
		client:  client,
		limiter: NewSlidingWindowLimiter(client, config, KeyPrefix),
		config:  config,
		logger:  logger,
	}
}

// Name returns the module name.
func (m *Module) Name() string {
	return "rate-limiter"
}

// Start verifies that Redis is reachable.
func (m *Module) Start(ctx context.Context) error {
	if err := m.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}
	m.logger.Info("Rate limiter started",
		"addr", m.client.Options().Addr,
		"limit", m.config.RequestsPerWindow,
		"window", m.config.WindowSize.String())
	return nil
}

// Stop closes the Redis connection.
func (m *Module) Stop(_ context.Context) error {
	if err := m.client.Close(); err != nil {
		m.logger.Error("Error closing Redis connection", "error", err)
	}
	m.logger.Info("Rate limiter stopped")
	return nil
}

// Health pings Redis.
func (m *Module) Health(ctx context.Context) mono.HealthStatus {
	if err := m.client.Ping(ctx).Err(); err != nil {
		return mono.HealthStatus{Healthy: false, Message: "redis unreachable: " + err.Error()}
	}
	return mono.HealthStatus{Healthy: true, Message: "operational"}
}

// Middleware returns the fiber middleware keyed by the owner local.
func (m *Module) Middleware(ownerLocal string) *Middleware {
	return NewMiddleware(m.limiter, m.config.RequestsPerWindow, ownerLocal, m.logger)
}
