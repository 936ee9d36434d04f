package usecase

import (
	"context"
	"errors"

	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/logger"
)

// SessionGuard выдает токен сессии для запросов к API и сбрасывает его,
// если API ответил 401.
type SessionGuard struct {
	repo   SessionRepository
	logger logger.Logger
}

func NewSessionGuard(repo SessionRepository, logger logger.Logger) *SessionGuard {
	return &SessionGuard{
		repo:   repo,
		logger: logger,
	}
}

// Token возвращает токен сессии или "" для анонимной сессии.
func (s *SessionGuard) Token(ctx context.Context, sessionID string) (string, error) {
	const op = "SessionGuard.Token"

	if sessionID == "" {
		return "", nil
	}

	token, err := s.repo.GetToken(ctx, sessionID)
	if err != nil {
		return "", e.Wrap(op, err)
	}

	return token, nil
}

// RequireToken как Token, но анонимная сессия дает ErrUnauthorized.
func (s *SessionGuard) RequireToken(ctx context.Context, sessionID string) (string, error) {
	const op = "SessionGuard.RequireToken"

	token, err := s.Token(ctx, sessionID)
	if err != nil {
		return "", e.Wrap(op, err)
	}
	if token == "" {
		return "", e.Wrap(op, e.ErrUnauthorized)
	}

	return token, nil
}

// Observe пропускает ошибку API дальше; при ErrUnauthorized удаляет токен сессии.
func (s *SessionGuard) Observe(ctx context.Context, sessionID string, err error) error {
	if err == nil || sessionID == "" || !errors.Is(err, e.ErrUnauthorized) {
		return err
	}

	if delErr := s.repo.DeleteToken(ctx, sessionID); delErr != nil {
		s.logger.Errorf(delErr, "failed to clear session token, session_id: %s", sessionID)
	} else {
		s.logger.Infof("Session token cleared after unauthorized response, session_id: %s", sessionID)
	}

	return err
}

// Clear удаляет токен сессии.
func (s *SessionGuard) Clear(ctx context.Context, sessionID string) error {
	const op = "SessionGuard.Clear"

	if err := s.repo.DeleteToken(ctx, sessionID); err != nil {
		return e.Wrap(op, err)
	}

	return nil
}

// Store сохраняет токен сессии.
func (s *SessionGuard) Store(ctx context.Context, sessionID, token string) error {
	const op = "SessionGuard.Store"

	if err := s.repo.SetToken(ctx, sessionID, token); err != nil {
		return e.Wrap(op, err)
	}

	return nil
}
