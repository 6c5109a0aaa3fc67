package task

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"

	"github.com/felixkapfer/finalghecko/modules/envelope"
)

// TaskPort is the task API other modules depend on.
type TaskPort interface {
	Create(ctx context.Context, req CreateRequest) (envelope.Response, error)
	Get(ctx context.Context, req GetRequest) (envelope.Response, error)
	List(ctx context.Context, ownerID string) (envelope.Response, error)
	ListByProject(ctx context.Context, ownerID, projectID string) (envelope.Response, error)
	ListByStatus(ctx context.Context, req ListByStatusRequest) (envelope.Response, error)
	ListAll(ctx context.Context) (envelope.Response, error)
	Update(ctx context.Context, req UpdateRequest) (envelope.Response, error)
	UpdateStatus(ctx context.Context, req UpdateStatusRequest) (envelope.Response, error)
	Delete(ctx context.Context, req GetRequest) (envelope.Response, error)
	CountByStatus(ctx context.Context, req CountRequest) (envelope.Response, error)
	Summary(ctx context.Context, req SummaryRequest) (envelope.Response, error)
}

type taskAdapter struct {
	container mono.ServiceContainer
}

// NewTaskAdapter creates a TaskPort over the task module's container.
func NewTaskAdapter(container mono.ServiceContainer) TaskPort {
	if container == nil {
		panic("task adapter requires non-nil ServiceContainer")
	}
	return &taskAdapter{container: container}
}

func call[Req any](ctx context.Context, container mono.ServiceContainer, service string, req *Req) (envelope.Response, error) {
	var resp envelope.Response
	if err := helper.CallRequestReplyService(
		ctx,
		container,
		service,
		json.Marshal,
		json.Unmarshal,
		req,
		&resp,
	); err != nil {
		return envelope.Response{}, fmt.Errorf("%s service call failed: %w", service, err)
	}
	return resp, nil
}

func (a *taskAdapter) Create(ctx context.Context, req CreateRequest) (envelope.Response, error) {
	return call(ctx, a.container, ServiceCreate, &req)
}

func (a *taskAdapter) Get(ctx context.Context, req GetRequest) (envelope.Response, error) {
	return call(ctx, a.container, ServiceGet, &req)
}

func (a *taskAdapter) List(ctx context.Context, ownerID string) (envelope.Response, error) {
	return call(ctx, a.container, ServiceList, &ListRequest{OwnerID: ownerID})
}

func (a *taskAdapter) ListByProject(ctx context.Context, ownerID, projectID string) (envelope.Response, error) {
	return call(ctx, a.container, ServiceListByProject, &ListByProjectRequest{OwnerID: ownerID, ProjectID: projectID})
}

func (a *taskAdapter) ListByStatus(ctx context.Context, req ListByStatusRequest) (envelope.Response, error) {
	return call(ctx, a.container, ServiceListByStatus, &req)
}

func (a *taskAdapter) ListAll(ctx context.Context) (envelope.Response, error) {
	return call(ctx, a.container, ServiceListAll, &ListAllRequest{})
}

func (a *taskAdapter) Update(ctx context.Context, req UpdateRequest) (envelope.Response, error) {
	return call(ctx, a.container, ServiceUpdate, &req)
}

func (a *taskAdapter) UpdateStatus(ctx context.Context, req UpdateStatusRequest) (envelope.Response, error) {
	return call(ctx, a.container, ServiceUpdateStatus, &req)
}

func (a *taskAdapter) Delete(ctx context.Context, req GetRequest) (envelope.Response, error) {
	return call(ctx, a.container, ServiceDelete, &req)
}

func (a *taskAdapter) CountByStatus(ctx context.Context, req CountRequest) (envelope.Response, error) {
	return call(ctx, a.container, ServiceCount, &req)
}

func (a *taskAdapter) Summary(ctx context.Context, req SummaryRequest) (envelope.Response, error) {
	return call(ctx, a.container, ServiceSummary, &req)
}
