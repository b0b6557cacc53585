package service

import (
	"context"
	"errors"

	"go-fuelstation/internal/model"
	"go-fuelstation/internal/repository"
	"go-fuelstation/pkg/jwt"

	"go.uber.org/zap"
)

type SessionService interface {
	Authenticate(ctx context.Context, username, password string) (*model.Credential, bool, error)
	Register(ctx context.Context, username, password string, role model.Role) (*model.Credential, error)
	Login(ctx context.Context, username, password string) (*LoginResponse, error)
}

type LoginResponse struct {
	Token string           `json:"token"`
	User  model.Credential `json:"user"` // password cleared
}

type sessionService struct {
	credentialRepo repository.CredentialRepository
	tokens         *jwt.Issuer
	logger         *zap.Logger
}

func NewSessionService(credentialRepo repository.CredentialRepository, tokens *jwt.Issuer, logger *zap.Logger) SessionService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &sessionService{
		credentialRepo: credentialRepo,
		tokens:         tokens,
		logger:         logger,
	}
}

// Authenticate looks the username up and compares the stored password by
// plain equality. ok is false for an unknown user as well as a wrong
// password; err is only set when the lookup itself failed.
func (s *sessionService) Authenticate(ctx context.Context, username, password string) (*model.Credential, bool, error) {
	credential, err := s.credentialRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}

	if credential.Password != password {
		return nil, false, nil
	}
	return credential, true, nil
}

func (s *sessionService) Register(ctx context.Context, username, password string, role model.Role) (*model.Credential, error) {
	credential := &model.Credential{
		Username: username,
		Password: password,
		Role:     role,
	}
	if err := validateStruct(credential); err != nil {
		return nil, err
	}

	_, err := s.credentialRepo.FindByUsername(ctx, username)
	switch {
	case err == nil:
		return nil, ErrUsernameTaken
	case !errors.Is(err, repository.ErrNotFound):
		return nil, err
	}

	if err := s.credentialRepo.Create(ctx, credential); err != nil {
		// lost a race against a concurrent registration
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}

	s.logger.Info("credential registered", zap.String("username", username), zap.String("role", string(role)))
	return credential, nil
}

func (s *sessionService) Login(ctx context.Context, username, password string) (*LoginResponse, error) {
	credential, ok, err := s.Authenticate(ctx, username, password)
	if err != nil {
		return nil, err
	}
	if !ok {
		s.logger.Info("login rejected", zap.String("username", username))
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateToken(credential.ID, credential.Username, string(credential.Role))
	if err != nil {
		return nil, errors.New("failed to generate token")
	}

	return &LoginResponse{
		Token: token,
		User:  credential.Public(),
	}, nil
}
