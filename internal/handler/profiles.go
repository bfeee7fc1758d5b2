package handler

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/talenthub-dev/job-board/backend/internal/domain"
)

func (h *Handler) CreateCompanyProfile(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)

	var req struct {
		Name string `json:"name" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	profile := &domain.CompanyProfile{
		AccountID: myInfo.ID,
		Name:      req.Name,
	}

	if err := h.store.CreateCompanyProfile(profile); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.Is(err, domain.ErrInvalidProfileRole):
			h.badRequest(w, r, err)
		case errors.As(err, &pgErr) && pgErr.ConstraintName == "company_profiles_account_id_key":
			h.badRequest(w, r, errors.New("profile already exists for this account"))
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.writeJSON(w, r, http.StatusCreated, profile)
}

func (h *Handler) GetCompanyProfile(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)

	profile, err := h.store.GetCompanyProfileByAccount(myInfo.ID)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.notFound(w, r)
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.writeJSON(w, r, http.StatusOK, profile)
}

func (h *Handler) UpdateCompanyProfile(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)

	var req struct {
		Name string `json:"name" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	profile, err := h.store.GetCompanyProfileByAccount(myInfo.ID)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.notFound(w, r)
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	profile.Name = req.Name

	if err := h.store.UpdateCompanyProfile(profile); err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidProfileRole):
			h.badRequest(w, r, err)
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.writeJSON(w, r, http.StatusOK, profile)
}

func (h *Handler) CreateTalentProfile(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)

	var req struct {
		ProfileDescription string `json:"profile_description" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	profile := &domain.TalentProfile{
		AccountID:          myInfo.ID,
		ProfileDescription: req.ProfileDescription,
	}

	if err := h.store.CreateTalentProfile(profile); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.Is(err, domain.ErrInvalidProfileRole):
			h.badRequest(w, r, err)
		case errors.As(err, &pgErr) && pgErr.ConstraintName == "talent_profiles_account_id_key":
			h.badRequest(w, r, errors.New("profile already exists for this account"))
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.writeJSON(w, r, http.StatusCreated, profile)
}

func (h *Handler) GetTalentProfile(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)

	profile, err := h.store.GetTalentProfileByAccount(myInfo.ID)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.notFound(w, r)
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.writeJSON(w, r, http.StatusOK, profile)
}

func (h *Handler) UpdateTalentProfile(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)

	var req struct {
		ProfileDescription string `json:"profile_description" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	profile, err := h.store.GetTalentProfileByAccount(myInfo.ID)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.notFound(w, r)
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	profile.ProfileDescription = req.ProfileDescription

	if err := h.store.UpdateTalentProfile(profile); err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidProfileRole):
			h.badRequest(w, r, err)
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.writeJSON(w, r, http.StatusOK, profile)
}
