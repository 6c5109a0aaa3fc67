package project

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
	"github.com/go-monolith/mono/pkg/types"
	"gorm.io/gorm"

	"github.com/felixkapfer/finalghecko/events"
	"github.com/felixkapfer/finalghecko/modules/envelope"
)

// Service names registered by the project module.
const (
	ServiceCreate   = "create-project"
	ServiceGet      = "get-project"
	ServiceList     = "list-projects"
	ServiceListAll  = "list-all-projects"
	ServiceUpdate   = "update-project"
	ServiceDelete   = "delete-project"
	ServiceDuration = "project-duration"
)

// Module provides the project services.
type Module struct {
	db      *gorm.DB
	service *Service
	logger  types.Logger
}

// Compile-time interface checks.
var (
	_ mono.Module                = (*Module)(nil)
	_ mono.ServiceProviderModule = (*Module)(nil)
	_ mono.EventEmitterModule    = (*Module)(nil)
)

// NewModule creates the project module on the shared database handle.
func NewModule(db *gorm.DB, baseURL string, logger types.Logger) *Module {
	return &Module{
		db:      db,
		service: NewService(NewRepository(db), baseURL, logger),
		logger:  logger,
	}
}

// Name returns the module name.
func (m *Module) Name() string {
	return "project"
}

// SetEventBus receives the event bus from the framework.
func (m *Module) SetEventBus(bus mono.EventBus) {
	m.service.bus = bus
}

// EmitEvents declares the events published by this module.
func (m *Module) EmitEvents() []mono.BaseEventDefinition {
	return []mono.BaseEventDefinition{
		events.ProjectCreatedV1.ToBase(),
		events.ProjectDeletedV1.ToBase(),
	}
}

func (m *Module) Start(_ context.Context) error {
	if m.db == nil {
		return fmt.Errorf("database handle not set")
	}
	m.logger.Info("Project module started")
	return nil
}

func (m *Module) Stop(_ context.Context) error {
	m.logger.Info("Project module stopped")
	return nil
}

// RegisterServices registers request-reply services in the service container.
func (m *Module) RegisterServices(container mono.ServiceContainer) error {
	if err := helper.RegisterTypedRequestReplyService(
		container, ServiceCreate, json.Unmarshal, json.Marshal, m.handleCreate,
	); err != nil {
		return fmt.Errorf("failed to register %s service: %w", ServiceCreate, err)
	}
	if err := helper.RegisterTypedRequestReplyService(
		container, ServiceGet, json.Unmarshal, json.Marshal, m.handleGet,
	); err != nil {
		return fmt.Errorf("failed to register %s service: %w", ServiceGet, err)
	}
	if err := helper.RegisterTypedRequestReplyService(
		container, ServiceList, json.Unmarshal, json.Marshal, m.handleList,
	); err != nil {
		return fmt.Errorf("failed to register %s service: %w", ServiceList, err)
	}
	if err := helper.RegisterTypedRequestReplyService(
		container, ServiceListAll, json.Unmarshal, json.Marshal, m.handleListAll,
	); err != nil {
		return fmt.Errorf("failed to register %s service: %w", ServiceListAll, err)
	}
	if err := helper.RegisterTypedRequestReplyService(
		container, ServiceUpdate, json.Unmarshal, json.Marshal, m.handleUpdate,
	); err != nil {
		return fmt.Errorf("failed to register %s service: %w", ServiceUpdate, err)
	}
	if err := helper.RegisterTypedRequestReplyService(
		container, ServiceDelete, json.Unmarshal, json.Marshal, m.handleDelete,
	); err != nil {
		return fmt.Errorf("failed to register %s service: %w", ServiceDelete, err)
	}
	if err := helper.RegisterTypedRequestReplyService(
		container, ServiceDuration, json.Unmarshal, json.Marshal, m.handleDuration,
	); err != nil {
		return fmt.Errorf("failed to register %s service: %w", ServiceDuration, err)
	}

	m.logger.Info("Registered project services",
		"services", []string{ServiceCreate, ServiceGet, ServiceList, ServiceListAll, ServiceUpdate, ServiceDelete, ServiceDuration})
	return nil
}

func (m *Module) handleCreate(ctx context.Context, req CreateRequest, _ *mono.Msg) (envelope.Response, error) {
	return m.service.Create(ctx, req), nil
}

func (m *Module) handleGet(ctx context.Context, req GetRequest, _ *mono.Msg) (envelope.Response, error) {
	return m.service.Get(ctx, req), nil
}

func (m *Module) handleList(ctx context.Context, req ListRequest, _ *mono.Msg) (envelope.Response, error) {
	return m.service.List(ctx, req), nil
}

func (m *Module) handleListAll(ctx context.Context, req ListAllRequest, _ *mono.Msg) (envelope.Response, error) {
	return m.service.ListAll(ctx, req), nil
}

func (m *Module) handleUpdate(ctx context.Context, req UpdateRequest, _ *mono.Msg) (envelope.Response, error) {
	return m.service.Update(ctx, req), nil
}

func (m *Module) handleDelete(ctx context.Context, req GetRequest, _ *mono.Msg) (envelope.Response, error) {
	return m.service.Delete(ctx, req), nil
}

func (m *Module) handleDuration(ctx context.Context, req DurationRequest, _ *mono.Msg) (envelope.Response, error) {
	return m.service.Duration(ctx, req), nil
}
