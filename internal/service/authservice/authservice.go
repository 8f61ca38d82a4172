package authservice

import (
	"context"
	"errors"
	"time"

	"github.com/tigerbridge/tigerbridge/internal/domain"
	"github.com/tigerbridge/tigerbridge/pkg/auth"
	"go.uber.org/zap"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("incorrect email or password")
	// ErrUserInactive means the credentials were right but the account
	// awaits activation by a superuser. Callers must keep it distinct
	// from ErrInvalidCredentials so clients can tell "wait for admin"
	// from "log in again".
	ErrUserInactive = errors.New("user account is inactive")
	ErrUserNotFound = errors.New("user not found")
)

type Repo interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id int) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	List(ctx context.Context, skip, limit int) ([]domain.User, error)
	SetActive(ctx context.Context, id int, active bool) (*domain.User, error)
}

type Service struct {
	userRepo    Repo
	hashService auth.HashServiceInterface
	jwtService  auth.JWTServiceInterface
	tokenTTL    time.Duration
}

func New(repo Repo, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface, tokenTTL time.Duration) *Service {
	return &Service{
		userRepo:    repo,
		hashService: hashService,
		jwtService:  jwtService,
		tokenTTL:    tokenTTL,
	}
}

// Register creates an inactive, non-superuser account. Activation is a
// separate administrative step.
func (s *Service) Register(ctx context.Context, email, password string) (*domain.User, error) {
	existingUser, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		zap.L().Error("can't find user: ", zap.Error(err))
		return nil, err
	}
	if existingUser != nil {
		zap.L().Info("user already exists", zap.String("email", email))
		return nil, ErrEmailTaken
	}
	hashedPassword, err := s.hashService.HashPassword(password)
	if err != nil {
		zap.L().Error("can't hash password: ", zap.Error(err))
		return nil, err
	}
	user := &domain.User{
		Email:        email,
		PasswordHash: hashedPassword,
	}
	newUser, err := s.userRepo.Create(ctx, user)
	if err != nil {
		zap.L().Error("can't create user: ", zap.Error(err))
		return nil, err
	}

	zap.L().Info("user successfully registered", zap.String("email", email))
	return newUser, nil
}

// Authenticate checks the credential pair first and the activation flag
// second, so an inactive account with the right password still gets the
// inactive error, not the credentials one.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil || user == nil {
		zap.L().Info("invalid credentials", zap.String("email", email))
		return nil, ErrInvalidCredentials
	}
	if ok := s.hashService.ComparePassword(user.PasswordHash, password); !ok {
		zap.L().Info("invalid credentials", zap.String("email", email))
		return nil, ErrInvalidCredentials
	}
	if !user.IsActive {
		zap.L().Info("inactive user attempted login", zap.String("email", email))
		return nil, ErrUserInactive
	}
	zap.L().Info("user successfully authenticated", zap.String("email", email))
	return user, nil
}

func (s *Service) GenerateToken(email string) (string, error) {
	expirationTime := time.Now().Add(s.tokenTTL)

	token, err := s.jwtService.GenerateJWT(email, expirationTime)
	if err != nil {
		zap.L().Error("can't generate token: ", zap.Error(err))
		return "", err
	}
	return token, nil
}

// FindByEmail backs the authorization middleware's subject lookup.
func (s *Service) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.userRepo.FindByEmail(ctx, email)
}

// EnsureSuperuser makes the configured administrator exist, active and
// with superuser capability. Safe to run on every startup: if the email
// is already registered nothing happens.
func (s *Service) EnsureSuperuser(ctx context.Context, email, password string) error {
	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	hashedPassword, err := s.hashService.HashPassword(password)
	if err != nil {
		return err
	}
	_, err = s.userRepo.Create(ctx, &domain.User{
		Email:        email,
		PasswordHash: hashedPassword,
		IsActive:     true,
		IsSuperuser:  true,
	})
	if err != nil {
		return err
	}
	zap.L().Info("created default superuser", zap.String("email", email))
	return nil
}

func (s *Service) ListUsers(ctx context.Context, skip, limit int) ([]domain.User, error) {
	return s.userRepo.List(ctx, skip, limit)
}

func (s *Service) SetUserActive(ctx context.Context, id int, active bool) (*domain.User, error) {
	user, err := s.userRepo.SetActive(ctx, id, active)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	zap.L().Info("user activation changed", zap.Int("userID", id), zap.Bool("active", active))
	return user, nil
}
