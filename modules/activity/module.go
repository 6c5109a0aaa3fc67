// Package activity keeps a per-owner feed of the domain events published by
// the user, project and task modules.
package activity

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

// ServiceList is the request-reply service serving the feed.
const ServiceList = "list-activity"

// Module consumes domain events as a driven adapter.
type Module struct {
	repo    *Repository
	service *Service
	logger  types.Logger
}

var (
	_ mono.Module                = (*Module)(nil)
	_ mono.EventConsumerModule   = (*Module)(nil)
	_ mono.ServiceProviderModule = (*Module)(nil)
)

// NewModule creates the activity module on the shared database handle.
func NewModule(db *gorm.DB, logger types.Logger) *Module {
	repo := NewRepository(db)
	return &Module{repo: repo, service: NewService(repo, logger), logger: logger}
}

func (m *Module) Name() string {
	return "activity"
}

func (m *Module) RegisterEventConsumers(registry mono.EventRegistry) error {
	s := m.service
	if err := helper.RegisterTypedEventConsumer(registry, events.UserRegisteredV1, s.handleUserRegistered, m); err != nil {
		return fmt.Errorf("failed to register UserRegistered consumer: %w", err)
	}
	if err := helper.RegisterTypedEventConsumer(registry, events.ProjectCreatedV1, s.handleProjectCreated, m); err != nil {
		return fmt.Errorf("failed to register ProjectCreated consumer: %w", err)
	}
	if err := helper.RegisterTypedEventConsumer(registry, events.ProjectDeletedV1, s.handleProjectDeleted, m); err != nil {
		return fmt.Errorf("failed to register ProjectDeleted consumer: %w", err)
	}
	if err := helper.RegisterTypedEventConsumer(registry, events.TaskCreatedV1, s.handleTaskCreated, m); err != nil {
		return fmt.Errorf("failed to register TaskCreated consumer: %w", err)
	}
	if err := helper.RegisterTypedEventConsumer(registry, events.TaskStatusChangedV1, s.handleTaskStatusChanged, m); err != nil {
		return fmt.Errorf("failed to register TaskStatusChanged consumer: %w", err)
	}
	if err := helper.RegisterTypedEventConsumer(registry, events.TaskDeletedV1, s.handleTaskDeleted, m); err != nil {
		return fmt.Errorf("failed to register TaskDeleted consumer: %w", err)
	}

	m.logger.Info("Registered event consumers",
		"events", []string{"UserRegistered", "ProjectCreated", "ProjectDeleted", "TaskCreated", "TaskStatusChanged", "TaskDeleted"})
	return nil
}

// RegisterServices registers the feed service.
func (m *Module) RegisterServices(container mono.ServiceContainer) error {
	if err := helper.RegisterTypedRequestReplyService(
		container, ServiceList, json.Unmarshal, json.Marshal,
		func(ctx context.Context, req ListRequest, _ *mono.Msg) (envelope.Response, error) {
			return m.service.List(ctx, req), nil
		},
	); err != nil {
		return fmt.Errorf("failed to register %s service: %w", ServiceList, err)
	}
	return nil
}

// Start creates the activity table.
func (m *Module) Start(_ context.Context) error {
	if err := m.repo.Migrate(); err != nil {
		return err
	}
	m.logger.Info("Activity module started - listening for domain events")
	return nil
}

func (m *Module) Stop(_ context.Context) error {
	m.logger.Info("Activity module stopped")
	return nil
}
