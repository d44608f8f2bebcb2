package application

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"eventplanner/internal/clock"
	"eventplanner/internal/domain"
	"eventplanner/internal/domain/entities"
	"eventplanner/internal/ports/input"
	"eventplanner/internal/ports/output"
)

var _ input.UserUseCase = (*UserService)(nil)

type UserService struct {
	userRepo    output.UserRepository
	sessionRepo output.SessionRepository
	policy      AuthorizationPolicy
	clock       clock.Clock
	sessionTTL  time.Duration
	validate    *validator.Validate
	bcryptCost  int
}

func NewUserService(
	userRepo output.UserRepository,
	sessionRepo output.SessionRepository,
	policy AuthorizationPolicy,
	clk clock.Clock,
	sessionTTL time.Duration,
) *UserService {
	return &UserService{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		policy:      policy,
		clock:       clk,
		sessionTTL:  sessionTTL,
		validate:    newValidator(),
		bcryptCost:  bcrypt.DefaultCost,
	}
}

func (s *UserService) Register(ctx context.Context, in input.RegisterInput) (*input.AuthResult, error) {
	in.Email = normalizeEmail(in.Email)
	in.Name = strings.TrimSpace(in.Name)
	if err := validateInput(s.validate, in); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	user := &entities.User{
		ID:           uuid.NewString(),
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         entities.RoleUser,
		Phone:        in.Phone,
		Address:      in.Address,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	token, err := s.openSession(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	return &input.AuthResult{User: user, Token: token}, nil
}

func (s *UserService) Login(ctx context.Context, in input.LoginInput) (*input.AuthResult, error) {
	in.Email = normalizeEmail(in.Email)
	if err := validateInput(s.validate, in); err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByEmail(ctx, in.Email)
	if errors.Is(err, domain.ErrUserNotFound) {
		return nil, domain.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.openSession(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	return &input.AuthResult{User: user, Token: token}, nil
}

func (s *UserService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return domain.ErrUnauthorized
	}
	return s.sessionRepo.Delete(ctx, token)
}

// Authenticate resolves a bearer token to the caller. The role is read from
// the user record on every call so that role changes apply immediately.
func (s *UserService) Authenticate(ctx context.Context, token string) (*entities.Principal, error) {
	if token == "" {
		return nil, domain.ErrUnauthorized
	}
	session, err := s.sessionRepo.FindByToken(ctx, token)
	if errors.Is(err, domain.ErrSessionNotFound) {
		return nil, domain.ErrUnauthorized
	}
	if err != nil {
		return nil, err
	}
	if !s.clock.Now().Before(session.ExpiresAt) {
		_ = s.sessionRepo.Delete(ctx, token)
		return nil, domain.ErrUnauthorized
	}

	user, err := s.userRepo.FindByID(ctx, session.UserID)
	if errors.Is(err, domain.ErrUserNotFound) {
		return nil, domain.ErrUnauthorized
	}
	if err != nil {
		return nil, err
	}
	return &entities.Principal{UserID: user.ID, Role: user.Role}, nil
}

func (s *UserService) Me(ctx context.Context, actor *entities.Principal) (*entities.User, error) {
	if actor == nil || actor.UserID == "" {
		return nil, domain.ErrUnauthorized
	}
	return s.userRepo.FindByID(ctx, actor.UserID)
}

func (s *UserService) CountUsers(ctx context.Context) (int, error) {
	return s.userRepo.Count(ctx)
}

func (s *UserService) ListUsers(ctx context.Context, actor *entities.Principal, filter entities.UserFilter) (*entities.UserPage, error) {
	if err := s.policy.CanAdminister(actor); err != nil {
		return nil, err
	}
	if filter.Role != "" && !filter.Role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", domain.ErrInvalidInput, filter.Role)
	}
	filter.Page, filter.Limit = normalizePage(filter.Page, filter.Limit)
	users, total, err := s.userRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return &entities.UserPage{
		Users: users,
		Page:  filter.Page,
		Limit: filter.Limit,
		Total: total,
		Pages: pageCount(total, filter.Limit),
	}, nil
}

func (s *UserService) UpdateUser(ctx context.Context, actor *entities.Principal, id string, in input.UpdateUserInput) (*entities.User, error) {
	if err := s.policy.CanAdminister(actor); err != nil {
		return nil, err
	}
	if in.Email != nil {
		email := normalizeEmail(*in.Email)
		in.Email = &email
	}
	if err := validateInput(s.validate, in); err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		user.Name = strings.TrimSpace(*in.Name)
	}
	if in.Email != nil {
		user.Email = *in.Email
	}
	if in.Role != nil {
		user.Role = entities.Role(*in.Role)
	}
	if in.Phone != nil {
		user.Phone = *in.Phone
	}
	if in.Address != nil {
		user.Address = *in.Address
	}
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteUser removes an account; its sessions and events go with it.
func (s *UserService) DeleteUser(ctx context.Context, actor *entities.Principal, id string) error {
	if err := s.policy.CanAdminister(actor); err != nil {
		return err
	}
	if actor.UserID == id {
		return domain.ErrCannotDeleteSelf
	}
	if _, err := s.userRepo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.userRepo.Delete(ctx, id)
}

// Promote grants the admin role to the account registered under email.
func (s *UserService) Promote(ctx context.Context, email string) (*entities.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return nil, err
	}
	if user.Role == entities.RoleAdmin {
		return user, nil
	}
	user.Role = entities.RoleAdmin
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) openSession(ctx context.Context, userID string) (string, error) {
	token, err := newSessionToken()
	if err != nil {
		return "", fmt.Errorf("generate session token: %w", err)
	}
	now := s.clock.Now()
	session := &entities.Session{
		Token:     token,
		UserID:    userID,
		ExpiresAt: now.Add(s.sessionTTL),
		CreatedAt: now,
	}
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return "", err
	}
	return token, nil
}

func newSessionToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
