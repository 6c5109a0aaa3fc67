package user

import (
	"context"
	"errors"
	"time"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/types"
	"github.com/google/uuid"

	domain "github.com/felixkapfer/finalghecko/domain/user"
	"github.com/felixkapfer/finalghecko/events"
	"github.com/felixkapfer/finalghecko/modules/apperror"
	"github.com/felixkapfer/finalghecko/modules/auth"
	"github.com/felixkapfer/finalghecko/modules/envelope"
	"github.com/felixkapfer/finalghecko/modules/validation"
)

// Service runs the account operations: validation, the repository call and
// the envelope.
type Service struct {
	repo    *Repository
	hasher  *auth.PasswordHasher
	tokens  *auth.Tokens
	checker validation.Checker
	rules   Rules
	baseURL string
	bus     mono.EventBus
	logger  types.Logger
	now     func() time.Time
}

// NewService creates the account service.
func NewService(repo *Repository, hasher *auth.PasswordHasher, tokens *auth.Tokens, rules Rules, baseURL string, logger types.Logger) *Service {
	return &Service{
		repo:    repo,
		hasher:  hasher,
		tokens:  tokens,
		checker: validation.Predicates{},
		rules:   rules,
		baseURL: baseURL,
		logger:  logger,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

func (s *Service) registerPolicy() envelope.Policy {
	return envelope.Policy{
		Redirect:       true,
		RedirectTarget: s.baseURL + "/auth/registered-successfully?status=true",
		FeedbackTarget: TargetRegisterFeedback,
		MessagesTarget: TargetRegisterWrapper,
	}
}

func (s *Service) loginPolicy() envelope.Policy {
	return envelope.Policy{
		Redirect:       true,
		RedirectTarget: s.baseURL + "/dashboard",
		FeedbackTarget: TargetLoginFeedback,
		MessagesTarget: TargetLoginWrapper,
	}
}

func accountPolicy() envelope.Policy {
	return envelope.Policy{FeedbackTarget: TargetAccountFeedback, MessagesTarget: TargetAccountWrapper}
}

// Register validates the sign-up form and creates the account.
func (s *Service) Register(ctx context.Context, req RegisterRequest) envelope.Response {
	if records := validation.Validate(s.checker, s.rules.register(req)...); len(records) > 0 {
		return envelope.Invalid(records)
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return envelope.Failure(s.registerPolicy(), apperror.NewUserError(apperror.GenericStoreError, err))
	}

	u := &domain.User{
		ID:           uuid.New().String(),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		ImageFile:    domain.DefaultImageFile,
		PasswordHash: hash,
		CreatedAt:    s.now(),
	}
	res, err := s.repo.Create(ctx, u)
	if err != nil {
		s.logger.Warn("Registration failed", "email", req.Email, "error", err)
		return envelope.Failure(s.registerPolicy(), err)
	}

	s.publishRegistered(res.Data)
	return envelope.Success(s.registerPolicy(), res.Data.View(), res.Count)
}

// Login checks the credentials and issues a token pair. An unknown address
// reports No-User-Found and a wrong password reports Invalid-Credentials.
func (s *Service) Login(ctx context.Context, req LoginRequest) envelope.Response {
	if records := validation.Validate(s.checker, s.rules.login(req)...); len(records) > 0 {
		return envelope.Invalid(records)
	}

	policy := s.loginPolicy()
	res, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		return envelope.Failure(policy, err)
	}
	if !s.hasher.Verify(req.Password, res.Data.PasswordHash) {
		return envelope.Failure(policy.WithMessagesTarget(TargetInvalidLogin), apperror.NewUserError(apperror.InvalidCredentials, nil))
	}

	pair, err := s.tokens.Pair(res.Data.ID, res.Data.Email)
	if err != nil {
		return envelope.Failure(policy, apperror.NewUserError(apperror.GenericStoreError, err))
	}
	return envelope.Success(policy, Session{User: res.Data.View(), Tokens: pair}, res.Count)
}

// Refresh exchanges a refresh token for a new pair, provided the account
// still exists.
func (s *Service) Refresh(ctx context.Context, req RefreshRequest) RefreshResponse {
	claims, err := s.tokens.Verify(auth.RefreshToken, req.RefreshToken)
	if err != nil {
		return RefreshResponse{Error: tokenError(err)}
	}
	res, err := s.repo.FindByID(ctx, claims.UserID)
	if err != nil {
		return RefreshResponse{Error: "account not found"}
	}
	pair, err := s.tokens.Pair(res.Data.ID, res.Data.Email)
	if err != nil {
		return RefreshResponse{Error: err.Error()}
	}
	return RefreshResponse{Valid: true, Tokens: &pair}
}

// ValidateToken reports the owner identity of an access token.
func (s *Service) ValidateToken(_ context.Context, req ValidateTokenRequest) ValidateTokenResponse {
	claims, err := s.tokens.Verify(auth.AccessToken, req.Token)
	if err != nil {
		return ValidateTokenResponse{Error: tokenError(err)}
	}
	owner := claims.Owner()
	return ValidateTokenResponse{Valid: true, UserID: owner.UserID, Email: owner.Email}
}

// Get returns the authenticated account.
func (s *Service) Get(ctx context.Context, req OwnerRequest) envelope.Response {
	if records := validation.Validate(s.checker, ownerField(req.OwnerID)); len(records) > 0 {
		return envelope.Invalid(records)
	}
	res, err := s.repo.FindByID(ctx, req.OwnerID)
	if err != nil {
		return envelope.Failure(accountPolicy(), err)
	}
	return envelope.Success(accountPolicy(), res.Data.View(), res.Count)
}

// Update changes the names of the authenticated account.
func (s *Service) Update(ctx context.Context, req UpdateRequest) envelope.Response {
	if records := validation.Validate(s.checker, s.rules.update(req)...); len(records) > 0 {
		return envelope.Invalid(records)
	}
	res, err := s.repo.Update(ctx, req.OwnerID, Patch{FirstName: req.FirstName, LastName: req.LastName})
	if err != nil {
		return envelope.Failure(accountPolicy(), err)
	}
	return envelope.Success(accountPolicy(), res.Data.View(), res.Count)
}

// Delete removes the authenticated account with all its projects and tasks.
func (s *Service) Delete(ctx context.Context, req OwnerRequest) envelope.Response {
	if records := validation.Validate(s.checker, ownerField(req.OwnerID)); len(records) > 0 {
		return envelope.Invalid(records)
	}
	res, err := s.repo.Delete(ctx, req.OwnerID)
	if err != nil {
		return envelope.Failure(accountPolicy(), err)
	}
	s.logger.Info("Account deleted", "user_id", req.OwnerID)
	return envelope.Success(accountPolicy(), res.Data.View(), res.Count)
}

// List returns every account.
func (s *Service) List(ctx context.Context, _ ListRequest) envelope.Response {
	res, err := s.repo.List(ctx)
	if err != nil {
		return envelope.Failure(accountPolicy(), err)
	}
	views := make([]domain.View, len(res.Data))
	for i := range res.Data {
		views[i] = res.Data[i].View()
	}
	return envelope.Success(accountPolicy(), views, res.Count)
}

func (s *Service) publishRegistered(u *domain.User) {
	if s.bus == nil {
		return
	}
	event := events.UserRegisteredEvent{UserID: u.ID, Email: u.Email, RegisteredAt: u.CreatedAt}
	if err := events.UserRegisteredV1.Publish(s.bus, event, nil); err != nil {
		s.logger.Warn("Failed to publish UserRegistered", "user_id", u.ID, "error", err)
	}
}

func tokenError(err error) string {
	if errors.Is(err, auth.ErrExpiredToken) {
		return "token expired"
	}
	return "invalid token"
}
