package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"nocturna/internal/auth"
	apperrors "nocturna/internal/errors"
	"nocturna/internal/model"
	"nocturna/internal/repository"
)

const bcryptCost = 10

// ErrAdminAlreadyExists is returned when seeding an email that is taken.
var ErrAdminAlreadyExists = errors.New("admin already exists")

// Session is what a successful login hands back to the client.
type Session struct {
	Token     string           `json:"token"`
	ExpiresAt time.Time        `json:"expires_at"`
	Admin     *model.AdminUser `json:"admin"`
}

// AuthService handles admin authentication.
type AuthService interface {
	CreateAdmin(ctx context.Context, name, email, password string) (*model.AdminUser, error)
	Login(ctx context.Context, email, password string) (*Session, error)
	Logout(ctx context.Context, adminID uint) error
	ValidateSession(ctx context.Context, adminID uint, sessionID string) error
	Me(ctx context.Context, adminID uint) (*model.AdminUser, error)
}

type authService struct {
	adminRepo    repository.AdminRepository
	jwtService   *auth.JWTService
	sessionStore auth.SessionStoreInterface
	sessionTTL   time.Duration
	now          func() time.Time
	log          *logrus.Logger
}

// NewAuthService creates a new authentication service.
func NewAuthService(
	adminRepo repository.AdminRepository,
	jwtService *auth.JWTService,
	sessionStore auth.SessionStoreInterface,
	sessionTTL time.Duration,
	log *logrus.Logger,
) AuthService {
	return &authService{
		adminRepo:    adminRepo,
		jwtService:   jwtService,
		sessionStore: sessionStore,
		sessionTTL:   sessionTTL,
		now:          time.Now,
		log:          log,
	}
}

// CreateAdmin stores a new admin with a hashed password.
func (s *authService) CreateAdmin(ctx context.Context, name, email, password string) (*model.AdminUser, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	existing, err := s.adminRepo.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return nil, ErrAdminAlreadyExists
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check admin existence: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	admin := &model.AdminUser{
		Name:         name,
		Email:        email,
		PasswordHash: string(hashedPassword),
	}
	if err := s.adminRepo.Create(ctx, admin); err != nil {
		return nil, fmt.Errorf("create admin: %w", err)
	}
	return admin, nil
}

// Login verifies credentials and opens a fresh session. Any previous
// session of the same admin stops working.
func (s *authService) Login(ctx context.Context, email, password string) (*Session, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	admin, err := s.adminRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		s.log.WithField("admin_id", admin.ID).Warn("admin login rejected")
		return nil, apperrors.ErrInvalidCredentials
	}

	sessionID := auth.NewSessionID()
	expiresAt := s.now().Add(s.sessionTTL)

	token, err := s.jwtService.GenerateSessionToken(admin.ID, admin.Email, sessionID, expiresAt)
	if err != nil {
		return nil, fmt.Errorf("generate session token: %w", err)
	}
	if err := s.adminRepo.StartSession(ctx, admin.ID, sessionID, expiresAt); err != nil {
		return nil, fmt.Errorf("start session: %w", err)
	}
	_ = s.sessionStore.Remember(ctx, admin.ID, sessionID, expiresAt)

	loginAt := s.now()
	admin.SessionToken = sessionID
	admin.SessionExpiresAt = &expiresAt
	admin.LastLoginAt = &loginAt

	s.log.WithField("admin_id", admin.ID).Info("admin logged in")
	return &Session{Token: token, ExpiresAt: expiresAt, Admin: admin}, nil
}

// Logout ends the current session.
func (s *authService) Logout(ctx context.Context, adminID uint) error {
	if err := s.adminRepo.EndSession(ctx, adminID); err != nil {
		return fmt.Errorf("end session: %w", err)
	}
	_ = s.sessionStore.Forget(ctx, adminID)

	s.log.WithField("admin_id", adminID).Info("admin logged out")
	return nil
}

// ValidateSession checks sessionID is the admin's current, unexpired session.
func (s *authService) ValidateSession(ctx context.Context, adminID uint, sessionID string) error {
	if sessionID == "" {
		return apperrors.ErrSessionInvalid
	}
	if cached, ok := s.sessionStore.Lookup(ctx, adminID); ok {
		if cached == sessionID {
			return nil
		}
		return apperrors.ErrSessionInvalid
	}

	admin, err := s.adminRepo.FindByID(ctx, adminID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrSessionInvalid
		}
		return fmt.Errorf("find admin: %w", err)
	}
	if !admin.SessionValid(sessionID, s.now()) {
		return apperrors.ErrSessionInvalid
	}

	_ = s.sessionStore.Remember(ctx, adminID, sessionID, *admin.SessionExpiresAt)
	return nil
}

// Me returns the admin profile.
func (s *authService) Me(ctx context.Context, adminID uint) (*model.AdminUser, error) {
	admin, err := s.adminRepo.FindByID(ctx, adminID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSessionInvalid
		}
		return nil, fmt.Errorf("find admin: %w", err)
	}
	return admin, nil
}
