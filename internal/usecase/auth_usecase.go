package usecase

import (
	"context"
	"strings"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/logger"
)

// AuthUseCase: вход по номеру телефона и одноразовому коду.
type AuthUseCase struct {
	authAPI  AuthAPI
	sessions *SessionGuard
	logger   logger.Logger
}

func NewAuthUC(authAPI AuthAPI, sessions *SessionGuard, logger logger.Logger) *AuthUseCase {
	return &AuthUseCase{
		authAPI:  authAPI,
		sessions: sessions,
		logger:   logger,
	}
}

// RequestCode отправляет код на телефон. Возвращает true для нового пользователя.
func (a *AuthUseCase) RequestCode(ctx context.Context, req *RequestCodeReq) (bool, error) {
	const op = "AuthUseCase.RequestCode"

	req.Phone = strings.TrimSpace(req.Phone)
	req.Name = strings.TrimSpace(req.Name)
	if req.Phone == "" {
		return false, e.Wrap(op, e.ErrPhoneRequired)
	}

	isNew, err := a.authAPI.RequestCode(ctx, req)
	if err != nil {
		return false, e.Wrap(op, err)
	}

	return isNew, nil
}

// VerifyCode подтверждает код и сохраняет токен в сессии.
func (a *AuthUseCase) VerifyCode(ctx context.Context, sessionID, phone, code string) (*domain.User, error) {
	const op = "AuthUseCase.VerifyCode"

	phone = strings.TrimSpace(phone)
	code = strings.TrimSpace(code)
	if phone == "" {
		return nil, e.Wrap(op, e.ErrPhoneRequired)
	}
	if code == "" {
		return nil, e.Wrap(op, e.ErrCodeRequired)
	}

	res, err := a.authAPI.VerifyCode(ctx, phone, code)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if res.AccessToken == "" {
		return nil, e.Wrap(op, e.ErrMissingAccessToken)
	}

	if err := a.sessions.Store(ctx, sessionID, res.AccessToken); err != nil {
		return nil, e.Wrap(op, err)
	}

	user := res.User
	if user == nil {
		// API не вернул пользователя: пробуем профиль, вход засчитан в любом случае.
		profile, err := a.authAPI.Profile(ctx, res.AccessToken)
		if err != nil {
			a.logger.Warnf("Failed to load profile after sign in, session_id: %s, error: %v", sessionID, err)
			return nil, nil
		}
		user = profile
	}

	if user != nil {
		a.logger.Infof("User signed in, user_id: %s, session_id: %s", user.ID, sessionID)
	}

	return user, nil
}

// Profile возвращает текущего пользователя; при 401 токен удаляется.
func (a *AuthUseCase) Profile(ctx context.Context, sessionID string) (*domain.User, error) {
	const op = "AuthUseCase.Profile"

	token, err := a.sessions.RequireToken(ctx, sessionID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	user, err := a.authAPI.Profile(ctx, token)
	if err != nil {
		return nil, e.Wrap(op, a.sessions.Observe(ctx, sessionID, err))
	}

	return user, nil
}

func (a *AuthUseCase) Logout(ctx context.Context, sessionID string) error {
	const op = "AuthUseCase.Logout"

	if err := a.sessions.Clear(ctx, sessionID); err != nil {
		return e.Wrap(op, err)
	}

	return nil
}
