package activity

import (
	"context"
	"fmt"
	"time"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/types"
	"github.com/google/uuid"

	"github.com/felixkapfer/finalghecko/events"
	"github.com/felixkapfer/finalghecko/modules/envelope"
	"github.com/felixkapfer/finalghecko/modules/validation"
)

// Render targets of the activity feed.
const (
	TargetFeedback = "#Activity-Feedback"
	TargetWrapper  = "#Activity-Feedback-Error-Wrapper"
)

// ListRequest lists the owner's activity.
type ListRequest struct {
	OwnerID string `json:"owner-id"`
}

// Service turns domain events into activity entries and serves the feed.
type Service struct {
	repo    *Repository
	checker validation.Checker
	logger  types.Logger
}

// NewService creates the activity service.
func NewService(repo *Repository, logger types.Logger) *Service {
	return &Service{repo: repo, checker: validation.Predicates{}, logger: logger}
}

// List returns the owner's activity, newest first.
func (s *Service) List(ctx context.Context, req ListRequest) envelope.Response {
	policy := envelope.Policy{FeedbackTarget: TargetFeedback, MessagesTarget: TargetWrapper}
	owner := validation.Field{
		Target:       TargetFeedback,
		Value:        req.OwnerID,
		EmptyMessage: "Please validate that an user is logged in to identify user activity!",
	}
	if records := validation.Validate(s.checker, owner); len(records) > 0 {
		return envelope.Invalid(records)
	}
	res, err := s.repo.ListByOwner(ctx, req.OwnerID)
	return envelope.From(policy, Views(res.Data), res.Count, err)
}

func (s *Service) record(ctx context.Context, ownerID, kind, subjectID, message string, at time.Time) error {
	entry := &Entry{
		ID:         uuid.New().String(),
		OwnerID:    ownerID,
		Kind:       kind,
		SubjectID:  subjectID,
		Message:    message,
		OccurredAt: at.UTC(),
	}
	if err := s.repo.Append(ctx, entry); err != nil {
		s.logger.Error("Failed to record activity", "kind", kind, "owner", ownerID, "error", err)
		return fmt.Errorf("failed to record %s activity: %w", kind, err)
	}
	s.logger.Debug("Recorded activity", "kind", kind, "owner", ownerID, "subject", subjectID)
	return nil
}

func (s *Service) handleUserRegistered(ctx context.Context, ev events.UserRegisteredEvent, _ *mono.Msg) error {
	return s.record(ctx, ev.UserID, KindUserRegistered, ev.UserID,
		fmt.Sprintf("Account %s registered", ev.Email), ev.RegisteredAt)
}

func (s *Service) handleProjectCreated(ctx context.Context, ev events.ProjectCreatedEvent, _ *mono.Msg) error {
	return s.record(ctx, ev.OwnerID, KindProjectCreated, ev.ProjectID,
		fmt.Sprintf("Project '%s' created", ev.Title), ev.CreatedAt)
}

func (s *Service) handleProjectDeleted(ctx context.Context, ev events.ProjectDeletedEvent, _ *mono.Msg) error {
	return s.record(ctx, ev.OwnerID, KindProjectDeleted, ev.ProjectID,
		fmt.Sprintf("Project '%s' deleted", ev.Title), ev.DeletedAt)
}

func (s *Service) handleTaskCreated(ctx context.Context, ev events.TaskCreatedEvent, _ *mono.Msg) error {
	return s.record(ctx, ev.OwnerID, KindTaskCreated, ev.TaskID,
		fmt.Sprintf("Task '%s' created as %s", ev.Title, ev.Status), ev.CreatedAt)
}

func (s *Service) handleTaskStatusChanged(ctx context.Context, ev events.TaskStatusChangedEvent, _ *mono.Msg) error {
	return s.record(ctx, ev.OwnerID, KindTaskStatusChanged, ev.TaskID,
		fmt.Sprintf("Task moved from %s to %s", ev.From, ev.To), ev.ChangedAt)
}

func (s *Service) handleTaskDeleted(ctx context.Context, ev events.TaskDeletedEvent, _ *mono.Msg) error {
	return s.record(ctx, ev.OwnerID, KindTaskDeleted, ev.TaskID,
		fmt.Sprintf("Task '%s' deleted", ev.Title), ev.DeletedAt)
}
