package task

import (
	"context"
	"time"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/types"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	domain "github.com/felixkapfer/finalghecko/domain/task"
	"github.com/felixkapfer/finalghecko/events"
	"github.com/felixkapfer/finalghecko/modules/apperror"
	"github.com/felixkapfer/finalghecko/modules/envelope"
	"github.com/felixkapfer/finalghecko/modules/validation"
)

// Service runs the task operations.
type Service struct {
	repo    *Repository
	checker validation.Checker
	baseURL string
	bus     mono.EventBus
	logger  types.Logger
	now     func() time.Time
}

// NewService creates the task service.
func NewService(repo *Repository, baseURL string, logger types.Logger) *Service {
	return &Service{
		repo:    repo,
		checker: validation.Predicates{},
		baseURL: baseURL,
		logger:  logger,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

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

// Create validates the form and stores a task in one of the owner's projects.
func (s *Service) Create(ctx context.Context, req CreateRequest) envelope.Response {
	if records := validation.Validate(s.checker, createFields(req)...); len(records) > 0 {
		return envelope.Invalid(records)
	}

	status := domain.DefaultStatus
	if req.Status != "" {
		status = domain.Status(req.Status)
	}
	end, _ := validation.ParseDate(req.EndDate)
	now := s.now()

	t := &domain.Task{
		ID:           uuid.New().String(),
		OwnerID:      req.OwnerID,
		ProjectID:    req.ProjectID,
		Title:        req.Title,
		Description:  req.Description,
		Status:       status,
		EndDate:      end,
		CreatedAt:    now,
		LastModified: now,
	}
	res, err := s.repo.Create(ctx, t)
	if err != nil {
		return envelope.Failure(s.mutation(), err)
	}

	s.publish(func(bus mono.EventBus) error {
		return events.TaskCreatedV1.Publish(bus, events.TaskCreatedEvent{
			TaskID:    t.ID,
			ProjectID: t.ProjectID,
			OwnerID:   t.OwnerID,
			Title:     t.Title,
			Status:    string(t.Status),
			CreatedAt: t.CreatedAt,
		}, nil)
	})
	return envelope.Success(s.mutation(), res.Data.View(), res.Count)
}

// Get returns one task.
func (s *Service) Get(ctx context.Context, req GetRequest) envelope.Response {
	if records := validation.Validate(s.checker, scopeFields(req.OwnerID, req.ProjectID, req.TaskID)...); len(records) > 0 {
		return envelope.Invalid(records)
	}
	res, err := s.repo.Get(ctx, req.OwnerID, req.ProjectID, req.TaskID)
	if err != nil {
		return envelope.Failure(read(), err)
	}
	return envelope.Success(read(), res.Data.View(), res.Count)
}

// List returns the owner's tasks across all projects.
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

// ListByProject returns the tasks of one project.
func (s *Service) ListByProject(ctx context.Context, req ListByProjectRequest) envelope.Response {
	if records := validation.Validate(s.checker, ownerField(req.OwnerID), projectIDField(req.ProjectID)); len(records) > 0 {
		return envelope.Invalid(records)
	}
	res, err := s.repo.ListByProject(ctx, req.OwnerID, req.ProjectID)
	if err != nil {
		return envelope.Failure(read(), err)
	}
	return envelope.Success(read(), domain.Views(res.Data), res.Count)
}

// ListByStatus returns the tasks of one project in one status.
func (s *Service) ListByStatus(ctx context.Context, req ListByStatusRequest) envelope.Response {
	fields := []validation.Field{ownerField(req.OwnerID), projectIDField(req.ProjectID), statusField(req.Status)}
	if records := validation.Validate(s.checker, fields...); len(records) > 0 {
		return envelope.Invalid(records)
	}
	res, err := s.repo.ListByStatus(ctx, req.OwnerID, req.ProjectID, domain.Status(req.Status))
	if err != nil {
		return envelope.Failure(read(), err)
	}
	return envelope.Success(read(), domain.Views(res.Data), res.Count)
}

// ListAll returns the tasks of every owner.
func (s *Service) ListAll(ctx context.Context, _ ListAllRequest) envelope.Response {
	res, err := s.repo.ListAll(ctx)
	return envelope.From(read(), domain.Views(res.Data), res.Count, err)
}

// Update changes the fields present in the request and stamps last-modified.
func (s *Service) Update(ctx context.Context, req UpdateRequest) envelope.Response {
	if records := validation.Validate(s.checker, updateFields(req)...); len(records) > 0 {
		return envelope.Invalid(records)
	}

	patch := Patch{Title: req.Title, Description: req.Description, Modified: s.now()}
	if req.EndDate != nil {
		d, _ := validation.ParseDate(*req.EndDate)
		patch.EndDate = &d
	}

	res, _, err := s.repo.Update(ctx, req.OwnerID, req.ProjectID, req.TaskID, patch)
	if err != nil {
		return envelope.Failure(s.mutation(), err)
	}
	return envelope.Success(s.mutation(), res.Data.View(), res.Count)
}

// UpdateStatus sets the task status. Any status may follow any other.
func (s *Service) UpdateStatus(ctx context.Context, req UpdateStatusRequest) envelope.Response {
	if records := validation.Validate(s.checker, updateStatusFields(req)...); len(records) > 0 {
		return envelope.Invalid(records)
	}

	status := domain.Status(req.Status)
	now := s.now()
	res, previous, err := s.repo.Update(ctx, req.OwnerID, req.ProjectID, req.TaskID, Patch{Status: &status, Modified: now})
	if err != nil {
		return envelope.Failure(s.mutation(), err)
	}

	if previous != status {
		t := res.Data
		s.publish(func(bus mono.EventBus) error {
			return events.TaskStatusChangedV1.Publish(bus, events.TaskStatusChangedEvent{
				TaskID:    t.ID,
				ProjectID: t.ProjectID,
				OwnerID:   t.OwnerID,
				From:      string(previous),
				To:        string(status),
				ChangedAt: now,
			}, nil)
		})
	}
	return envelope.Success(s.mutation(), res.Data.View(), res.Count)
}

// Delete removes one task and returns it.
func (s *Service) Delete(ctx context.Context, req GetRequest) envelope.Response {
	if records := validation.Validate(s.checker, scopeFields(req.OwnerID, req.ProjectID, req.TaskID)...); len(records) > 0 {
		return envelope.Invalid(records)
	}
	res, err := s.repo.Delete(ctx, req.OwnerID, req.ProjectID, req.TaskID)
	if err != nil {
		return envelope.Failure(s.mutation(), err)
	}

	t := res.Data
	s.publish(func(bus mono.EventBus) error {
		return events.TaskDeletedV1.Publish(bus, events.TaskDeletedEvent{
			TaskID:    t.ID,
			ProjectID: t.ProjectID,
			OwnerID:   t.OwnerID,
			Title:     t.Title,
			DeletedAt: s.now(),
		}, nil)
	})
	return envelope.Success(s.mutation(), t.View(), res.Count)
}

// CountByStatus counts the owner's tasks in one status. Zero tasks are
// reported as NoResultFound, like every other read.
func (s *Service) CountByStatus(ctx context.Context, req CountRequest) envelope.Response {
	if records := validation.Validate(s.checker, countFields(req)...); len(records) > 0 {
		return envelope.Invalid(records)
	}
	res, err := s.repo.CountByStatus(ctx, req.OwnerID, req.ProjectID, domain.Status(req.Status))
	if err != nil {
		return envelope.Failure(read(), err)
	}
	return envelope.Success(read(), res.Data, res.Count)
}

// Summary counts the owner's tasks for every status concurrently. A status
// without tasks counts as zero; the summary fails only when there are no
// tasks at all or a query fails.
func (s *Service) Summary(ctx context.Context, req SummaryRequest) envelope.Response {
	if records := validation.Validate(s.checker, ownerField(req.OwnerID)); len(records) > 0 {
		return envelope.Invalid(records)
	}

	statuses := domain.Statuses()
	counts := make([]int64, len(statuses))
	g, gctx := errgroup.WithContext(ctx)
	for i, status := range statuses {
		g.Go(func() error {
			res, err := s.repo.CountByStatus(gctx, req.OwnerID, req.ProjectID, status)
			if apperror.KindOf(err) == apperror.NoResultFound {
				return nil
			}
			if err != nil {
				return err
			}
			counts[i] = res.Data
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return envelope.Failure(read(), err)
	}

	sum := Summary{Todo: counts[0], InProgress: counts[1], Finished: counts[2]}
	sum.Total = sum.Todo + sum.InProgress + sum.Finished
	if sum.Total == 0 {
		return envelope.Failure(read(), apperror.NewDataError(apperror.NoResultFound, nil))
	}
	return envelope.Success(read(), sum, 1)
}

func (s *Service) publish(fn func(bus mono.EventBus) error) {
	if s.bus == nil {
		return
	}
	if err := fn(s.bus); err != nil {
		s.logger.Warn("Failed to publish task event", "error", err)
	}
}
