package http

import (
	"net/http"

	"github.com/DRSN-tech/storefront/internal/usecase"
	"github.com/DRSN-tech/storefront/pkg/logger"
)

type AuthHandler struct {
	authUsecase usecase.AuthUC
	logger      logger.Logger
}

func NewAuthHandler(authUsecase usecase.AuthUC, logger logger.Logger) *AuthHandler {
	return &AuthHandler{authUsecase: authUsecase, logger: logger}
}

type RequestCodeBody struct {
	Phone string `json:"phone"`
	Name  string `json:"name"`
}

type RequestCodeDTO struct {
	Sent    bool `json:"sent"`
	NewUser bool `json:"newUser"`
}

type VerifyCodeBody struct {
	Phone string `json:"phone"`
	Code  string `json:"code"`
}

type SignInDTO struct {
	Authenticated bool     `json:"authenticated"`
	User          *UserDTO `json:"user"`
}

// requestCode
//
//	@Summary	Запросить код входа
//	@Tags		auth
//	@Accept		json
//	@Produce	json
//	@Param		body	body		RequestCodeBody	true	"Телефон и имя для нового пользователя"
//	@Success	200		{object}	RequestCodeDTO
//	@Failure	400		{object}	ErrorResponse
//	@Router		/auth/request-code [post]
func (a *AuthHandler) requestCode(w http.ResponseWriter, r *http.Request) {
	var body RequestCodeBody
	if err := decodeJSON(w, r, &body); err != nil {
		WriteError(w, err)
		return
	}

	isNew, err := a.authUsecase.RequestCode(r.Context(), &usecase.RequestCodeReq{Phone: body.Phone, Name: body.Name})
	if err != nil {
		a.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, RequestCodeDTO{Sent: true, NewUser: isNew})
}

// verifyCode
//
//	@Summary	Подтвердить код
//	@Description	Сохраняет токен доступа в сессии
//	@Tags		auth
//	@Accept		json
//	@Produce	json
//	@Param		body	body		VerifyCodeBody	true	"Телефон и код"
//	@Success	200		{object}	SignInDTO
//	@Failure	400		{object}	ErrorResponse
//	@Router		/auth/verify-code [post]
func (a *AuthHandler) verifyCode(w http.ResponseWriter, r *http.Request) {
	var body VerifyCodeBody
	if err := decodeJSON(w, r, &body); err != nil {
		WriteError(w, err)
		return
	}

	user, err := a.authUsecase.VerifyCode(r.Context(), SessionFromCtx(r.Context()), body.Phone, body.Code)
	if err != nil {
		a.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	res := SignInDTO{Authenticated: true}
	if user != nil {
		dto := toUserDTO(user)
		res.User = &dto
	}

	WriteSuccess(w, http.StatusOK, res)
}

func (a *AuthHandler) profile(w http.ResponseWriter, r *http.Request) {
	user, err := a.authUsecase.Profile(r.Context(), SessionFromCtx(r.Context()))
	if err != nil {
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toUserDTO(user))
}

func (a *AuthHandler) logout(w http.ResponseWriter, r *http.Request) {
	if err := a.authUsecase.Logout(r.Context(), SessionFromCtx(r.Context())); err != nil {
		a.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
