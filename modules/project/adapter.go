package project

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"

	"github.com/felixkapfer/finalghecko/modules/envelope"
)

// ProjectPort is the project API other modules depend on.
type ProjectPort interface {
	Create(ctx context.Context, req CreateRequest) (envelope.Response, error)
	Get(ctx context.Context, ownerID, projectID string) (envelope.Response, error)
	List(ctx context.Context, ownerID string) (envelope.Response, error)
	ListAll(ctx context.Context) (envelope.Response, error)
	Update(ctx context.Context, req UpdateRequest) (envelope.Response, error)
	Delete(ctx context.Context, ownerID, projectID string) (envelope.Response, error)
	Duration(ctx context.Context, req DurationRequest) (envelope.Response, error)
}

type projectAdapter struct {
	container mono.ServiceContainer
}

// NewProjectAdapter creates a ProjectPort over the project module's container.
func NewProjectAdapter(container mono.ServiceContainer) ProjectPort {
	if container == nil {
		panic("project adapter requires non-nil ServiceContainer")
	}
	return &projectAdapter{container: container}
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

func (a *projectAdapter) Create(ctx context.Context, req CreateRequest) (envelope.Response, error) {
	return call(ctx, a.container, ServiceCreate, &req)
}

func (a *projectAdapter) Get(ctx context.Context, ownerID, projectID string) (envelope.Response, error) {
	return call(ctx, a.container, ServiceGet, &GetRequest{OwnerID: ownerID, ProjectID: projectID})
}

func (a *projectAdapter) List(ctx context.Context, ownerID string) (envelope.Response, error) {
	return call(ctx, a.container, ServiceList, &ListRequest{OwnerID: ownerID})
}

func (a *projectAdapter) ListAll(ctx context.Context) (envelope.Response, error) {
	return call(ctx, a.container, ServiceListAll, &ListAllRequest{})
}

func (a *projectAdapter) Update(ctx context.Context, req UpdateRequest) (envelope.Response, error) {
	return call(ctx, a.container, ServiceUpdate, &req)
}

func (a *projectAdapter) Delete(ctx context.Context, ownerID, projectID string) (envelope.Response, error) {
	return call(ctx, a.container, ServiceDelete, &GetRequest{OwnerID: ownerID, ProjectID: projectID})
}

func (a *projectAdapter) Duration(ctx context.Context, req DurationRequest) (envelope.Response, error) {
	return call(ctx, a.container, ServiceDuration, &req)
}
