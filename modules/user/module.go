package user

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
	"github.com/go-monolith/mono/pkg/types"
	"gorm.io/gorm"

	"github.com/felixkapfer/finalghecko/events"
	"github.com/felixkapfer/finalghecko/modules/auth"
	"github.com/felixkapfer/finalghecko/modules/envelope"
)

// Service names registered by the user module.
const (
	ServiceRegister      = "register"
	ServiceLogin         = "login"
	ServiceRefreshToken  = "refresh-token"
	ServiceValidateToken = "validate-token"
	ServiceGetUser       = "get-user"
	ServiceUpdateUser    = "update-user"
	ServiceDeleteUser    = "delete-user"
	ServiceListUsers     = "list-users"
)

// Config holds the settings of the user module.
type Config struct {
	JWT        auth.Config
	BcryptCost int
	Rules      Rules
	BaseURL    string
}

// Module provides registration, login and account services.
type Module struct {
	db      *gorm.DB
	config  Config
	service *Service
	logger  types.Logger
}

// Compile-time interface checks.
var (
	_ mono.Module                = (*Module)(nil)
	_ mono.ServiceProviderModule = (*Module)(nil)
	_ mono.HealthCheckableModule = (*Module)(nil)
	_ mono.EventEmitterModule    = (*Module)(nil)
)

// NewModule creates the user module on the shared database handle.
func NewModule(db *gorm.DB, config Config, logger types.Logger) *Module {
	m := &Module{db: db, config: config, logger: logger}
	m.service = NewService(
		NewRepository(db),
		auth.NewPasswordHasher(config.BcryptCost),
		auth.NewTokens(config.JWT),
		config.Rules,
		config.BaseURL,
		logger,
	)
	return m
}

// Name returns the module name.
func (m *Module) Name() string {
	return "user"
}

// SetEventBus receives the event bus from the framework.
func (m *Module) SetEventBus(bus mono.EventBus) {
	m.service.bus = bus
}

// EmitEvents declares the events published by this module.
func (m *Module) EmitEvents() []mono.BaseEventDefinition {
	return []mono.BaseEventDefinition{
		events.UserRegisteredV1.ToBase(),
	}
}

// Start checks the module wiring.
func (m *Module) Start(_ context.Context) error {
	if m.db == nil {
		return fmt.Errorf("database handle not set")
	}
	if m.service.bus == nil {
		m.logger.Warn("Event bus not set, events will not be published")
	}
	m.logger.Info("User module started",
		"email_shape", m.config.Rules.EmailShape,
		"password_policy", m.config.Rules.PasswordPolicy.String())
	return nil
}

// Stop shuts down the module. The shared handle is closed by main.
func (m *Module) Stop(_ context.Context) error {
	m.logger.Info("User module stopped")
	return nil
}

// Health pings the database.
func (m *Module) Health(ctx context.Context) mono.HealthStatus {
	sqlDB, err := m.db.DB()
	if err != nil {
		return mono.HealthStatus{Healthy: false, Message: fmt.Sprintf("failed to get sql.DB: %v", err)}
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return mono.HealthStatus{Healthy: false, Message: fmt.Sprintf("database ping failed: %v", err)}
	}
	return mono.HealthStatus{Healthy: true, Message: "operational"}
}

// RegisterServices registers request-reply services in the service container.
func (m *Module) RegisterServices(container mono.ServiceContainer) error {
	if err := helper.RegisterTypedRequestReplyService(
		container, ServiceRegister, json.Unmarshal, json.Marshal, m.handleRegister,
	); err != nil {
		return fmt.Errorf("failed to register %s service: %w", ServiceRegister, err)
	}
	if err := helper.RegisterTypedRequestReplyService(
		container, ServiceLogin, json.Unmarshal, json.Marshal, m.handleLogin,
	); err != nil {
		return fmt.Errorf("failed to register %s service: %w", ServiceLogin, err)
	}
	if err := helper.RegisterTypedRequestReplyService(
		container, ServiceRefreshToken, json.Unmarshal, json.Marshal, m.handleRefresh,
	); err != nil {
		return fmt.Errorf("failed to register %s service: %w", ServiceRefreshToken, err)
	}
	if err := helper.RegisterTypedRequestReplyService(
		container, ServiceValidateToken, json.Unmarshal, json.Marshal, m.handleValidateToken,
	); err != nil {
		return fmt.Errorf("failed to register %s service: %w", ServiceValidateToken, err)
	}
	if err := helper.RegisterTypedRequestReplyService(
		container, ServiceGetUser, json.Unmarshal, json.Marshal, m.handleGet,
	); err != nil {
		return fmt.Errorf("failed to register %s service: %w", ServiceGetUser, err)
	}
	if err := helper.RegisterTypedRequestReplyService(
		container, ServiceUpdateUser, json.Unmarshal, json.Marshal, m.handleUpdate,
	); err != nil {
		return fmt.Errorf("failed to register %s service: %w", ServiceUpdateUser, err)
	}
	if err := helper.RegisterTypedRequestReplyService(
		container, ServiceDeleteUser, json.Unmarshal, json.Marshal, m.handleDelete,
	); err != nil {
		return fmt.Errorf("failed to register %s service: %w", ServiceDeleteUser, err)
	}
	if err := helper.RegisterTypedRequestReplyService(
		container, ServiceListUsers, json.Unmarshal, json.Marshal, m.handleList,
	); err != nil {
		return fmt.Errorf("failed to register %s service: %w", ServiceListUsers, err)
	}

	m.logger.Info("Registered user services",
		"services", []string{ServiceRegister, ServiceLogin, ServiceRefreshToken, ServiceValidateToken,
			ServiceGetUser, ServiceUpdateUser, ServiceDeleteUser, ServiceListUsers})
	return nil
}

// Handlers never return an error: failures travel inside the envelope.

func (m *Module) handleRegister(ctx context.Context, req RegisterRequest, _ *mono.Msg) (envelope.Response, error) {
	return m.service.Register(ctx, req), nil
}

func (m *Module) handleLogin(ctx context.Context, req LoginRequest, _ *mono.Msg) (envelope.Response, error) {
	return m.service.Login(ctx, req), nil
}

func (m *Module) handleRefresh(ctx context.Context, req RefreshRequest, _ *mono.Msg) (RefreshResponse, error) {
	return m.service.Refresh(ctx, req), nil
}

func (m *Module) handleValidateToken(ctx context.Context, req ValidateTokenRequest, _ *mono.Msg) (ValidateTokenResponse, error) {
	return m.service.ValidateToken(ctx, req), nil
}

func (m *Module) handleGet(ctx context.Context, req OwnerRequest, _ *mono.Msg) (envelope.Response, error) {
	return m.service.Get(ctx, req), nil
}

func (m *Module) handleUpdate(ctx context.Context, req UpdateRequest, _ *mono.Msg) (envelope.Response, error) {
	return m.service.Update(ctx, req), nil
}

func (m *Module) handleDelete(ctx context.Context, req OwnerRequest, _ *mono.Msg) (envelope.Response, error) {
	return m.service.Delete(ctx, req), nil
}

func (m *Module) handleList(ctx context.Context, req ListRequest, _ *mono.Msg) (envelope.Response, error) {
	return m.service.List(ctx, req), nil
}
