package handler

import (
	"net/http"

	"github.com/talenthub-dev/job-board/backend/internal/domain"
)

func (h *Handler) ListLanguages(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, r, http.StatusOK, domain.LanguageChoices())
}

func (h *Handler) ListLanguageLevels(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, r, http.StatusOK, domain.LanguageLevelChoices())
}

func (h *Handler) ListTechnicalSkills(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, r, http.StatusOK, domain.TechnicalSkillChoices())
}

func (h *Handler) ListPersonalSkills(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, r, http.StatusOK, domain.PersonalSkillChoices())
}
