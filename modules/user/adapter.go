package user

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"

	domain "github.com/felixkapfer/finalghecko/domain/user"
	"github.com/felixkapfer/finalghecko/modules/envelope"
)

// UserPort is the account API other modules depend on.
type UserPort interface {
	Register(ctx context.Context, req RegisterRequest) (envelope.Response, error)
	Login(ctx context.Context, req LoginRequest) (envelope.Response, error)
	Refresh(ctx context.Context, refreshToken string) (RefreshResponse, error)
	ValidateToken(ctx context.Context, token string) (*domain.Claims, error)
	Get(ctx context.Context, ownerID string) (envelope.Response, error)
	Update(ctx context.Context, req UpdateRequest) (envelope.Response, error)
	Delete(ctx context.Context, ownerID string) (envelope.Response, error)
	List(ctx context.Context) (envelope.Response, error)
}

// userAdapter implements UserPort over the service container.
type userAdapter struct {
	container mono.ServiceContainer
}

// NewUserAdapter creates a UserPort for the container received through
// SetDependencyServiceContainer.
func NewUserAdapter(container mono.ServiceContainer) UserPort {
	if container == nil {
		panic("user adapter requires non-nil ServiceContainer")
	}
	return &userAdapter{container: container}
}

func call[Req, Resp any](ctx context.Context, container mono.ServiceContainer, service string, req *Req, resp *Resp) error {
	if err := helper.CallRequestReplyService(
		ctx,
		container,
		service,
		json.Marshal,
		json.Unmarshal,
		req,
		resp,
	); err != nil {
		return fmt.Errorf("%s service call failed: %w", service, err)
	}
	return nil
}

func (a *userAdapter) Register(ctx context.Context, req RegisterRequest) (envelope.Response, error) {
	var resp envelope.Response
	err := call(ctx, a.container, ServiceRegister, &req, &resp)
	return resp, err
}

func (a *userAdapter) Login(ctx context.Context, req LoginRequest) (envelope.Response, error) {
	var resp envelope.Response
	err := call(ctx, a.container, ServiceLogin, &req, &resp)
	return resp, err
}

func (a *userAdapter) Refresh(ctx context.Context, refreshToken string) (RefreshResponse, error) {
	var resp RefreshResponse
	err := call(ctx, a.container, ServiceRefreshToken, &RefreshRequest{RefreshToken: refreshToken}, &resp)
	return resp, err
}

// ValidateToken returns the owner identity of a valid access token.
func (a *userAdapter) ValidateToken(ctx context.Context, token string) (*domain.Claims, error) {
	var resp ValidateTokenResponse
	if err := call(ctx, a.container, ServiceValidateToken, &ValidateTokenRequest{Token: token}, &resp); err != nil {
		return nil, err
	}
	if !resp.Valid {
		return nil, fmt.Errorf("token validation failed: %s", resp.Error)
	}
	return &domain.Claims{UserID: resp.UserID, Email: resp.Email}, nil
}

func (a *userAdapter) Get(ctx context.Context, ownerID string) (envelope.Response, error) {
	var resp envelope.Response
	err := call(ctx, a.container, ServiceGetUser, &OwnerRequest{OwnerID: ownerID}, &resp)
	return resp, err
}

func (a *userAdapter) Update(ctx context.Context, req UpdateRequest) (envelope.Response, error) {
	var resp envelope.Response
	err := call(ctx, a.container, ServiceUpdateUser, &req, &resp)
	return resp, err
}

func (a *userAdapter) Delete(ctx context.Context, ownerID string) (envelope.Response, error) {
	var resp envelope.Response
	err := call(ctx, a.container, ServiceDeleteUser, &OwnerRequest{OwnerID: ownerID}, &resp)
	return resp, err
}

func (a *userAdapter) List(ctx context.Context) (envelope.Response, error) {
	var resp envelope.Response
	err := call(ctx, a.container, ServiceListUsers, &ListRequest{}, &resp)
	return resp, err
}
