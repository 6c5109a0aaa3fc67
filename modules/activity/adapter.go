package activity

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"

	"github.com/felixkapfer/finalghecko/modules/envelope"
)

// ActivityPort reads the activity feed.
type ActivityPort interface {
	List(ctx context.Context, ownerID string) (envelope.Response, error)
}

type activityAdapter struct {
	container mono.ServiceContainer
}

// NewActivityAdapter creates an ActivityPort over the activity module's container.
func NewActivityAdapter(container mono.ServiceContainer) ActivityPort {
	if container == nil {
		panic("activity adapter requires non-nil ServiceContainer")
	}
	return &activityAdapter{container: container}
}

func (a *activityAdapter) List(ctx context.Context, ownerID string) (envelope.Response, error) {
	req := ListRequest{OwnerID: ownerID}
	var resp envelope.Response
	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		ServiceList,
		json.Marshal,
		json.Unmarshal,
		&req,
		&resp,
	); err != nil {
		return envelope.Response{}, fmt.Errorf("%s service call failed: %w", ServiceList, err)
	}
	return resp, nil
}
