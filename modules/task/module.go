package task

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

// Service names registered by the task module.
const (
	ServiceCreate        = "create-task"
	ServiceGet           = "get-task"
	ServiceList          = "list-tasks"
	ServiceListByProject = "list-project-tasks"
	ServiceListByStatus  = "list-tasks-by-status"
	ServiceListAll       = "list-all-tasks"
	ServiceUpdate        = "update-task"
	ServiceUpdateStatus  = "update-task-status"
	ServiceDelete        = "delete-task"
	ServiceCount         = "count-tasks"
	ServiceSummary       = "task-summary"
)

// Module provides the task services.
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

// NewModule creates the task module on the shared database handle.
func NewModule(db *gorm.DB, baseURL string, logger types.Logger) *Module {
	return &Module{
		db:      db,
		service: NewService(NewRepository(db), baseURL, logger),
		logger:  logger,
	}
}

// Name returns the module name.
func (m *Module) Name() string {
	return "task"
}

// SetEventBus receives the event bus from the framework.
func (m *Module) SetEventBus(bus mono.EventBus) {
	m.service.bus = bus
}

// EmitEvents declares the events published by this module.
func (m *Module) EmitEvents() []mono.BaseEventDefinition {
	return []mono.BaseEventDefinition{
		events.TaskCreatedV1.ToBase(),
		events.TaskStatusChangedV1.ToBase(),
		events.TaskDeletedV1.ToBase(),
	}
}

func (m *Module) Start(_ context.Context) error {
	if m.db == nil {
		return fmt.Errorf("database handle not set")
	}
	m.logger.Info("Task module started")
	return nil
}

func (m *Module) Stop(_ context.Context) error {
	m.logger.Info("Task module stopped")
	return nil
}

// register wraps a service method as a typed request-reply handler.
func register[Req any](container mono.ServiceContainer, name string, fn func(context.Context, Req) envelope.Response) error {
	handler := func(ctx context.Context, req Req, _ *mono.Msg) (envelope.Response, error) {
		return fn(ctx, req), nil
	}
	if err := helper.RegisterTypedRequestReplyService(container, name, json.Unmarshal, json.Marshal, handler); err != nil {
		return fmt.Errorf("failed to register %s service: %w", name, err)
	}
	return nil
}

// RegisterServices registers request-reply services in the service container.
func (m *Module) RegisterServices(container mono.ServiceContainer) error {
	s := m.service
	registrations := []func() error{
		func() error { return register(container, ServiceCreate, s.Create) },
		func() error { return register(container, ServiceGet, s.Get) },
		func() error { return register(container, ServiceList, s.List) },
		func() error { return register(container, ServiceListByProject, s.ListByProject) },
		func() error { return register(container, ServiceListByStatus, s.ListByStatus) },
		func() error { return register(container, ServiceListAll, s.ListAll) },
		func() error { return register(container, ServiceUpdate, s.Update) },
		func() error { return register(container, ServiceUpdateStatus, s.UpdateStatus) },
		func() error { return register(container, ServiceDelete, s.Delete) },
		func() error { return register(container, ServiceCount, s.CountByStatus) },
		func() error { return register(container, ServiceSummary, s.Summary) },
	}
	for _, reg := range registrations {
		if err := reg(); err != nil {
			return err
		}
	}

	m.logger.Info("Registered task services", "count", len(registrations))
	return nil
}
