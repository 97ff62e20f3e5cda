package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"movie-db/internal/data/entity"
	"movie-db/internal/data/repository"
	"movie-db/internal/dto/request"
	"movie-db/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuthService interface {
	Signup(ctx context.Context, req *request.SignupRequest, userAgent, ip string) (*entity.User, *entity.Session, error)
	Login(ctx context.Context, req *request.LoginRequest, userAgent, ip string) (*entity.User, *entity.Session, error)
	// Logout revokes the session behind the token. Safe to call with an
	// unknown or already-revoked token.
	Logout(ctx context.Context, token string) error
}

type authService struct {
	repo   *repository.Repository
	config *utils.Config
	log    *zap.Logger
}

func NewAuthService(
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) AuthService {
	return &authService{
		repo:   repo,
		config: config,
		log:    log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Signup(ctx context.Context, req *request.SignupRequest, userAgent, ip string) (*entity.User, *entity.Session, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Signup validation failed", zap.Any("errors", errs))
		return nil, nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// 2. Pre-check the username. The unique index is the real guard; this
	// just gives the common case a friendly answer.
	existingUser, err := s.repo.User.FindByUsername(ctx, req.Username)
	if err != nil {
		s.log.Error("Failed to check username", zap.Error(err), zap.String("username", req.Username))
		return nil, nil, fmt.Errorf("failed to check username")
	}
	if existingUser != nil {
		return nil, nil, fmt.Errorf("username already taken")
	}

	// 3. Hash password
	hashedPassword, err := utils.HashPassword(req.Password1)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, nil, fmt.Errorf("failed to process password")
	}

	// 4. Create user
	now := time.Now()
	user := &entity.User{
		Base: entity.Base{
			CreatedAt: now,
			UpdatedAt: now,
		},
		Username:     req.Username,
		PasswordHash: hashedPassword,
		Role:         entity.RoleMember,
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		// Two signups racing for the same name: the database rejected
		// this one, report it like the pre-check would have.
		if errors.Is(err, repository.ErrDuplicateUsername) {
			s.log.Warn("Signup lost username race", zap.String("username", req.Username))
			return nil, nil, fmt.Errorf("username already taken")
		}
		s.log.Error("Failed to create user", zap.Error(err), zap.String("username", req.Username))
		return nil, nil, fmt.Errorf("failed to create account")
	}

	// 5. Log the new user in immediately
	session, err := s.createSession(ctx, user.ID, false, userAgent, ip)
	if err != nil {
		s.log.Error("Failed to create session after signup",
			zap.Error(err), zap.Int64("user_id", user.ID))
		return nil, nil, fmt.Errorf("failed to create session")
	}

	s.log.Info("User signed up",
		zap.Int64("user_id", user.ID),
		zap.String("username", user.Username))

	return user, session, nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest, userAgent, ip string) (*entity.User, *entity.Session, error) {
	// 1. Validate
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Login validation failed", zap.Any("errors", errs))
		return nil, nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// 2. Find user
	user, err := s.repo.User.FindByUsername(ctx, req.Username)
	if err != nil {
		s.log.Error("Failed to find user", zap.Error(err), zap.String("username", req.Username))
		return nil, nil, fmt.Errorf("failed to find user")
	}
	if user == nil {
		s.log.Warn("User not found for login", zap.String("username", req.Username))
		return nil, nil, fmt.Errorf("invalid credentials")
	}

	// 3. Check password
	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.log.Warn("Invalid password", zap.Int64("user_id", user.ID))
		return nil, nil, fmt.Errorf("invalid credentials")
	}

	// 4. Create session
	session, err := s.createSession(ctx, user.ID, req.RememberMe, userAgent, ip)
	if err != nil {
		s.log.Error("Failed to create session", zap.Error(err), zap.Int64("user_id", user.ID))
		return nil, nil, fmt.Errorf("failed to create session")
	}

	s.log.Info("User logged in",
		zap.Int64("user_id", user.ID),
		zap.String("username", user.Username),
		zap.Bool("remember_me", req.RememberMe))

	return user, session, nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	if _, err := uuid.Parse(token); err != nil {
		// Garbage cookie, nothing to revoke
		s.log.Debug("Logout with malformed token")
		return nil
	}

	if err := s.repo.Session.Revoke(ctx, token); err != nil {
		s.log.Error("Failed to revoke session", zap.Error(err))
		return fmt.Errorf("failed to logout")
	}

	s.log.Info("User logged out")
	return nil
}

func (s *authService) createSession(ctx context.Context, userID int64, remember bool, userAgent, ip string) (*entity.Session, error) {
	lifetime := time.Duration(s.config.Session.Hours) * time.Hour
	if remember {
		lifetime = time.Duration(s.config.Session.RememberDays) * 24 * time.Hour
	}

	session := &entity.Session{
		BaseSimple: entity.BaseSimple{
			CreatedAt: time.Now(),
		},
		UserID:    userID,
		Token:     uuid.New(),
		ExpiresAt: time.Now().Add(lifetime),
	}

	if userAgent != "" {
		session.UserAgent = &userAgent
	}
	if ip != "" {
		session.IPAddress = &ip
	}

	if err := s.repo.Session.Create(ctx, session); err != nil {
		return nil, err
	}

	return session, nil
}
