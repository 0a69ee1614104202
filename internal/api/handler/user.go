package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/rodrigomedeirosbrazil/cms-api/internal/api/request"
	"github.com/rodrigomedeirosbrazil/cms-api/internal/api/response"
	"github.com/rodrigomedeirosbrazil/cms-api/internal/core"
	"github.com/rodrigomedeirosbrazil/cms-api/internal/model"
)

type User struct {
	svc *core.UserService
}

func NewUser(svc *core.UserService) *User {
	return &User{svc: svc}
}

// userPayload is the outbound shape of a user. The password hash is never
// part of it.
type userPayload struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func toPayload(u *model.User) userPayload {
	return userPayload{ID: u.ID, Name: u.Name, Email: u.Email}
}

func (h *User) Register(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name     string `json:"name"`
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password"`
	}
	if err := request.Decode(r, &req); err != nil {
		response.WriteError(w, http.StatusBadRequest, "Invalid request payload.")
		return
	}
	in := core.RegisterInput{Name: req.Name, Email: req.Email, Password: req.Password}

	// Format failures do not stop the account rules from running: the
	// response carries every failure at once.
	if msgs := request.Validate(&req); len(msgs) > 0 {
		verrs, err := h.svc.ValidateRegister(r.Context(), in)
		if err != nil {
			zerolog.Ctx(r.Context()).Error().Err(err).Msg("register user")
			response.WriteError(w, http.StatusInternalServerError, "Internal error.")
			return
		}
		response.WriteErrors(w, http.StatusBadRequest, append(msgs, verrs...))
		return
	}

	user, verrs, err := h.svc.Register(r.Context(), in)
	if err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("register user")
		response.WriteError(w, http.StatusInternalServerError, "Internal error.")
		return
	}
	if len(verrs) > 0 {
		response.WriteErrors(w, http.StatusBadRequest, verrs)
		return
	}

	response.WriteData(w, http.StatusOK, toPayload(user))
}

func (h *User) Update(w http.ResponseWriter, r *http.Request) {
	id, err := request.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		response.WriteError(w, http.StatusBadRequest, "Invalid user id.")
		return
	}

	var req struct {
		Name     string  `json:"name" validate:"required"`
		Email    string  `json:"email" validate:"required,email"`
		Password *string `json:"password"`
	}
	if err := request.Decode(r, &req); err != nil {
		response.WriteError(w, http.StatusBadRequest, "Invalid request payload.")
		return
	}
	in := core.UpdateInput{Name: req.Name, Email: req.Email, Password: req.Password}

	if msgs := request.Validate(&req); len(msgs) > 0 {
		verrs, err := h.svc.ValidateUpdate(r.Context(), id, in)
		if err != nil {
			zerolog.Ctx(r.Context()).Error().Err(err).Int64("user_id", id).Msg("update user")
			response.WriteError(w, http.StatusInternalServerError, "Internal error.")
			return
		}
		response.WriteErrors(w, http.StatusBadRequest, append(msgs, verrs...))
		return
	}

	user, verrs, err := h.svc.UpdateByID(r.Context(), id, in)
	if err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Int64("user_id", id).Msg("update user")
		response.WriteError(w, http.StatusInternalServerError, "Internal error.")
		return
	}
	if len(verrs) > 0 {
		response.WriteErrors(w, http.StatusBadRequest, verrs)
		return
	}

	response.WriteData(w, http.StatusOK, toPayload(user))
}

func (h *User) Get(w http.ResponseWriter, r *http.Request) {
	id, err := request.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		response.WriteError(w, http.StatusBadRequest, "Invalid user id.")
		return
	}

	user, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Int64("user_id", id).Msg("get user")
		response.WriteError(w, http.StatusInternalServerError, "Internal error.")
		return
	}
	if user == nil {
		response.WriteError(w, http.StatusNotFound, core.MsgUserNotFound)
		return
	}

	response.WriteData(w, http.StatusOK, toPayload(user))
}
