package handler

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/rodrigomedeirosbrazil/cms-api/internal/api/request"
	"github.com/rodrigomedeirosbrazil/cms-api/internal/api/response"
	"github.com/rodrigomedeirosbrazil/cms-api/internal/core"
)

type Auth struct {
	svc *core.AuthService
}

func NewAuth(svc *core.AuthService) *Auth {
	return &Auth{svc: svc}
}

func (h *Auth) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}
	if err := request.Decode(r, &req); err != nil {
		response.WriteError(w, http.StatusBadRequest, "Invalid request payload.")
		return
	}
	if msgs := request.Validate(&req); len(msgs) > 0 {
		response.WriteErrors(w, http.StatusBadRequest, msgs)
		return
	}

	token, user, err := h.svc.Login(r.Context(), req.Email, req.Password)
	if errors.Is(err, core.ErrInvalidCredentials) {
		response.WriteError(w, http.StatusUnauthorized, "Invalid credentials.")
		return
	}
	if err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("login")
		response.WriteError(w, http.StatusInternalServerError, "Internal error.")
		return
	}

	response.WriteData(w, http.StatusOK, struct {
		Token string      `json:"token"`
		User  userPayload `json:"user"`
	}{Token: token, User: toPayload(user)})
}
