package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
)

func (h *Handler) logInternalServerError(r *http.Request, err error) {
	slog.Error("internal server error", "method", r.Method, "path", r.URL.Path, "error", err)
}

func (h *Handler) readJSON(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logInternalServerError(r, err)
	}
}

type detailResponse struct {
	Detail string `json:"detail"`
}

type fieldErrorsResponse struct {
	Errors map[string]string `json:"errors"`
}

// badRequest renders a validator error as a field->message map and any other
// error as a single detail message, both with status 400.
func (h *Handler) badRequest(w http.ResponseWriter, r *http.Request, err error) {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		h.writeJSON(w, r, http.StatusBadRequest, detailResponse{Detail: err.Error()})
		return
	}

	fields := make(map[string]string, len(validationErrors))
	for _, fe := range validationErrors {
		fields[fe.Field()] = fe.Translate(h.translator)
	}
	h.writeJSON(w, r, http.StatusBadRequest, fieldErrorsResponse{Errors: fields})
}

func (h *Handler) unauthorized(w http.ResponseWriter, r *http.Request, msg string) {
	h.writeJSON(w, r, http.StatusUnauthorized, detailResponse{Detail: msg})
}

func (h *Handler) forbidden(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, r, http.StatusForbidden, detailResponse{Detail: "You do not have permission to perform this action."})
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, r, http.StatusNotFound, detailResponse{Detail: "Not found."})
}

func (h *Handler) conflict(w http.ResponseWriter, r *http.Request, msg string) {
	h.writeJSON(w, r, http.StatusConflict, detailResponse{Detail: msg})
}

func (h *Handler) internalServerError(w http.ResponseWriter, r *http.Request, err error) {
	h.logInternalServerError(r, err)
	h.writeJSON(w, r, http.StatusInternalServerError, detailResponse{Detail: "internal server error"})
}
