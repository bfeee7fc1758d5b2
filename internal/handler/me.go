package handler

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/talenthub-dev/job-board/backend/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

func (h *Handler) GetMe(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)
	h.writeJSON(w, r, http.StatusOK, newUserResponse(myInfo))
}

// UpdateMe applies a partial update to the authenticated account. The role
// field is read-only on this channel and is not part of the request shape.
func (h *Handler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)

	var req struct {
		FirstName *string `json:"first_name"`
		LastName  *string `json:"last_name"`
		Email     *string `json:"email" validate:"omitempty,email"`
		Password  *string `json:"password" validate:"omitempty,min=5"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if req.FirstName != nil {
		myInfo.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		myInfo.LastName = *req.LastName
	}
	if req.Email != nil {
		email := domain.NormalizeEmail(*req.Email)
		if email != myInfo.Email {
			isExists, err := h.store.CheckEmailIfExists(email)
			if err != nil {
				h.internalServerError(w, r, err)
				return
			}
			if isExists {
				h.badRequest(w, r, errors.New("user with this email already exists"))
				return
			}
			myInfo.Email = email
		}
	}
	if req.Password != nil {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			h.internalServerError(w, r, err)
			return
		}
		myInfo.PasswordHash = string(hashedPassword)
	}

	if err := h.store.UpdateUser(myInfo); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr) && pgErr.ConstraintName == "users_email_key":
			h.badRequest(w, r, errors.New("user with this email already exists"))
		case errors.Is(err, sql.ErrNoRows):
			h.conflict(w, r, "The account was modified concurrently, please retry.")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.writeJSON(w, r, http.StatusOK, newUserResponse(myInfo))
}

// DeleteMe removes the account; owned profiles and jobs go with it through
// the schema's cascade rules.
func (h *Handler) DeleteMe(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)

	if err := h.store.DeleteUser(myInfo.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
