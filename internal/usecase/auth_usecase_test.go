package usecase_test

import (
	"context"
	"testing"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/internal/usecase"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthUseCase_VerifyCodeStoresToken(t *testing.T) {
	ctx := context.Background()
	env := newEnv(friday)
	env.api.authToken = "jwt"
	env.api.user = &domain.User{ID: "u-1", Name: "Ana", Role: domain.RoleUser}
	uc := usecase.NewAuthUC(env.api, env.guard, testLogger())

	user, err := uc.VerifyCode(ctx, "s1", " 70000000 ", "1234")
	require.NoError(t, err)
	assert.Equal(t, "u-1", user.ID)

	token, err := env.sessions.GetToken(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "jwt", token)

	profile, err := uc.Profile(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "Ana", profile.Name)
	assert.Contains(t, env.api.tokens, "jwt")

	require.NoError(t, uc.Logout(ctx, "s1"))
	_, err = uc.Profile(ctx, "s1")
	assert.ErrorIs(t, err, e.ErrUnauthorized)
}

func TestAuthUseCase_MissingTokenInResponse(t *testing.T) {
	env := newEnv(friday)
	uc := usecase.NewAuthUC(env.api, env.guard, testLogger())

	_, err := uc.VerifyCode(context.Background(), "s1", "70000000", "1234")
	assert.ErrorIs(t, err, e.ErrMissingAccessToken)
}

func TestAuthUseCase_InputValidation(t *testing.T) {
	ctx := context.Background()
	env := newEnv(friday)
	uc := usecase.NewAuthUC(env.api, env.guard, testLogger())

	_, err := uc.RequestCode(ctx, &usecase.RequestCodeReq{Phone: "  "})
	assert.ErrorIs(t, err, e.ErrPhoneRequired)

	_, err = uc.VerifyCode(ctx, "s1", "70000000", "")
	assert.ErrorIs(t, err, e.ErrCodeRequired)

	isNew, err := uc.RequestCode(ctx, &usecase.RequestCodeReq{Phone: "70000000", Name: "Ana"})
	require.NoError(t, err)
	assert.True(t, isNew)
}

func TestAuthUseCase_ProfileUnauthorizedClearsToken(t *testing.T) {
	ctx := context.Background()
	env := newEnv(friday)
	require.NoError(t, env.sessions.SetToken(ctx, "s1", "expired"))
	env.api.err = e.ErrUnauthorized
	uc := usecase.NewAuthUC(env.api, env.guard, testLogger())

	_, err := uc.Profile(ctx, "s1")
	require.ErrorIs(t, err, e.ErrUnauthorized)

	token, err := env.sessions.GetToken(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, token)
}

func TestAuthUseCase_ForbiddenKeepsToken(t *testing.T) {
	ctx := context.Background()
	env := newEnv(friday)
	require.NoError(t, env.sessions.SetToken(ctx, "s1", "tok"))
	env.api.err = e.ErrForbidden
	uc := usecase.NewAuthUC(env.api, env.guard, testLogger())

	_, err := uc.Profile(ctx, "s1")
	require.ErrorIs(t, err, e.ErrForbidden)

	token, err := env.sessions.GetToken(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "tok", token)
}

func TestAuthUseCase_VerifyCodeFallsBackToProfile(t *testing.T) {
	ctx := context.Background()
	env := newEnv(friday)
	env.api.authToken = "jwt"
	uc := usecase.NewAuthUC(&profileOnlyAPI{fakeAPI: env.api}, env.guard, testLogger())

	user, err := uc.VerifyCode(ctx, "s1", "70000000", "1234")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "from-profile", user.ID)
}

// profileOnlyAPI не возвращает пользователя при подтверждении кода.
type profileOnlyAPI struct {
	*fakeAPI
}

func (p *profileOnlyAPI) Profile(_ context.Context, token string) (*domain.User, error) {
	if token != "jwt" {
		return nil, e.ErrUnauthorized
	}
	return &domain.User{ID: "from-profile"}, nil
}
