package project

import (
	"context"
	"time"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/types"
	"github.com/google/uuid"

	domain "github.com/felixkapfer/finalghecko/domain/project"
	"github.com/felixkapfer/finalghecko/events"
	"github.com/felixkapfer/finalghecko/modules/envelope"
	"github.com/felixkapfer/finalghecko/modules/validation"
)

// Service runs the project operations.
type Service struct {
	repo    *Repository
	checker validation.Checker
	baseURL string
	bus     mono.EventBus
	logger  types.Logger
	now     func() time.Time
}

// NewService creates the project service.
func NewService(repo *Repository, baseURL string, logger types.Logger) *Service {
	return &Service{
		repo:    repo,
		checker: validation.Predicates{},
		baseURL: baseURL,
		logger:  logger,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// mutation redirects to the dashboard on success.
func (s *Service) mutation() envelope.Policy {
	return envelope.Policy{
		Redirect:       true,
		RedirectTarget: s.baseURL + "/dashboard",
		FeedbackTarget: TargetFeedback,
		MessagesTarget: TargetWrapper,
	}
}

func read() envelope.Policy {
	return envelope.Policy{FeedbackTarget: TargetFeedback, MessagesTarget: TargetWrapper}
}

// Create validates the form and stores a new project for the owner.
func (s *Service) Create(ctx context.Context, req CreateRequest) envelope.Response {
	if records := validation.Validate(s.checker, createFields(req)...); len(records) > 0 {
		return envelope.Invalid(records)
	}
	start, _ := validation.ParseDate(req.StartDate)
	end, _ := validation.ParseDate(req.EndDate)

	p := &domain.Project{
		ID:          uuid.New().String(),
		OwnerID:     req.OwnerID,
		Title:       req.Title,
		Description: req.Description,
		StartDate:   start,
		EndDate:     end,
		CreatedAt:   s.now(),
	}
	res, err := s.repo.Create(ctx, p)
	if err != nil {
		return envelope.Failure(s.mutation(), err)
	}

	s.publish(func(bus mono.EventBus) error {
		return events.ProjectCreatedV1.Publish(bus, events.ProjectCreatedEvent{
			ProjectID: p.ID, OwnerID: p.OwnerID, Title: p.Title, CreatedAt: p.CreatedAt,
		}, nil)
	})
	return envelope.Success(s.mutation(), res.Data.View(), res.Count)
}

// Get returns one project of the owner.
func (s *Service) Get(ctx context.Context, req GetRequest) envelope.Response {
	if records := validation.Validate(s.checker, ownerField(req.OwnerID), projectIDField(req.ProjectID)); len(records) > 0 {
		return envelope.Invalid(records)
	}
	res, err := s.repo.Get(ctx, req.OwnerID, req.ProjectID)
	if err != nil {
		return envelope.Failure(read(), err)
	}
	return envelope.Success(read(), res.Data.View(), res.Count)
}

// List returns the owner's projects.
func (s *Service) List(ctx context.Context, req ListRequest) envelope.Response {
	if records := validation.Validate(s.checker, ownerField(req.OwnerID)); len(records) > 0 {
		return envelope.Invalid(records)
	}
	res, err := s.repo.ListByOwner(ctx, req.OwnerID)
	if err != nil {
		return envelope.Failure(read(), err)
	}
	return envelope.Success(read(), domain.Views(res.Data), res.Count)
}

// ListAll returns the projects of every owner.
func (s *Service) ListAll(ctx context.Context, _ ListAllRequest) envelope.Response {
	res, err := s.repo.ListAll(ctx)
	return envelope.From(read(), domain.Views(res.Data), res.Count, err)
}

// Update changes the fields present in the request.
func (s *Service) Update(ctx context.Context, req UpdateRequest) envelope.Response {
	if records := validation.Validate(s.checker, updateFields(req)...); len(records) > 0 {
		return envelope.Invalid(records)
	}

	patch := Patch{Title: req.Title, Description: req.Description}
	if req.StartDate != nil {
		d, _ := validation.ParseDate(*req.StartDate)
		patch.StartDate = &d
	}
	if req.EndDate != nil {
		d, _ := validation.ParseDate(*req.EndDate)
		patch.EndDate = &d
	}

	res, err := s.repo.Update(ctx, req.OwnerID, req.ProjectID, patch)
	if err != nil {
		return envelope.Failure(s.mutation(), err)
	}
	return envelope.Success(s.mutation(), res.Data.View(), res.Count)
}

// Delete removes the project with its tasks and returns the deleted project.
func (s *Service) Delete(ctx context.Context, req GetRequest) envelope.Response {
	if records := validation.Validate(s.checker, ownerField(req.OwnerID), projectIDField(req.ProjectID)); len(records) > 0 {
		return envelope.Invalid(records)
	}
	res, err := s.repo.Delete(ctx, req.OwnerID, req.ProjectID)
	if err != nil {
		return envelope.Failure(s.mutation(), err)
	}

	p := res.Data
	s.publish(func(bus mono.EventBus) error {
		return events.ProjectDeletedV1.Publish(bus, events.ProjectDeletedEvent{
			ProjectID: p.ID, OwnerID: p.OwnerID, Title: p.Title, DeletedAt: s.now(),
		}, nil)
	})
	return envelope.Success(s.mutation(), p.View(), res.Count)
}

// Duration measures the project dates selected by the mode.
func (s *Service) Duration(ctx context.Context, req DurationRequest) envelope.Response {
	if records := validation.Validate(s.checker, durationFields(req)...); len(records) > 0 {
		return envelope.Invalid(records)
	}
	res, err := s.repo.Get(ctx, req.OwnerID, req.ProjectID)
	if err != nil {
		return envelope.Failure(read(), err)
	}
	from, to, _ := Span(Mode(req.Mode), res.Data.StartDate, res.Data.EndDate, s.now())
	return envelope.Success(read(), Between(from, to), res.Count)
}

func (s *Service) publish(fn func(bus mono.EventBus) error) {
	if s.bus == nil {
		return
	}
	if err := fn(s.bus); err != nil {
		s.logger.Warn("Failed to publish project event", "error", err)
	}
}
