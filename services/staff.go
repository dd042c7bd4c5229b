package services

import (
	"context"
	"errors"
	"strings"

	"kitchenpos/apperror"
	"kitchenpos/models"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// StaffService registers and authenticates point-of-sale staff.
type StaffService struct {
	staff StaffStore
	cost  int
}

func NewStaffService(staff StaffStore) *StaffService {
	return &StaffService{staff: staff, cost: bcrypt.DefaultCost}
}

// Register creates an account with a bcrypt-hashed password.
func (s *StaffService) Register(ctx context.Context, name, email, password string, role models.StaffRole) (*models.Staff, error) {
	if !role.Valid() {
		return nil, apperror.WithMetadata(apperror.CodeInvalidArgument, "role must be manager or server",
			map[string]string{"role": string(role)})
	}
	email = strings.ToLower(strings.TrimSpace(email))

	_, err := s.staff.FindByEmail(ctx, email)
	switch {
	case err == nil:
		return nil, apperror.New(apperror.CodeConflict, "email already registered")
	case !errors.Is(err, apperror.ErrNotFound):
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return nil, err
	}

	member, err := s.staff.Create(ctx, &models.Staff{
		Name:         strings.TrimSpace(name),
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
	})
	if err != nil {
		return nil, err
	}
	zap.L().Info("staff registered", zap.Uint("staff_id", member.ID), zap.String("role", string(member.Role)))
	return member, nil
}

// SignUp registers a server account for an anonymous caller. Asking for any
// other role is refused; managers are created by managers or at bootstrap.
func (s *StaffService) SignUp(ctx context.Context, name, email, password string, role models.StaffRole) (*models.Staff, error) {
	if role != "" && role != models.RoleServer {
		return nil, apperror.WithMetadata(apperror.CodePermissionDenied, "self registration is limited to server accounts",
			map[string]string{"role": string(role)})
	}
	return s.Register(ctx, name, email, password, models.RoleServer)
}

// EnsureManager creates the manager account for email unless an account with
// that email already exists. It reports whether an account was created.
func (s *StaffService) EnsureManager(ctx context.Context, name, email, password string) (bool, error) {
	_, err := s.staff.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, apperror.ErrNotFound) {
		return false, err
	}
	if _, err := s.Register(ctx, name, email, password, models.RoleManager); err != nil {
		return false, err
	}
	return true, nil
}

// Authenticate returns the account matching email and password. Unknown
// emails and wrong passwords fail identically.
func (s *StaffService) Authenticate(ctx context.Context, email, password string) (*models.Staff, error) {
	member, err := s.staff.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if errors.Is(err, apperror.ErrNotFound) {
		return nil, apperror.New(apperror.CodeUnauthenticated, "invalid email or password")
	}
	if err != nil {
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(member.PasswordHash), []byte(password)); err != nil {
		return nil, apperror.New(apperror.CodeUnauthenticated, "invalid email or password")
	}
	return member, nil
}
