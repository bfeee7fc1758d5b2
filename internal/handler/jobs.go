package handler

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"

	"github.com/talenthub-dev/job-board/backend/internal/domain"
)

type languageSkillPayload struct {
	Language string `json:"language" validate:"required,language"`
	Level    string `json:"level" validate:"required,language_level"`
}

type technicalSkillPayload struct {
	Value string `json:"value" validate:"required,technical_skill"`
}

type personalSkillPayload struct {
	Value string `json:"value" validate:"required,personal_skill"`
}

func toLanguageSkills(payload []languageSkillPayload) []domain.LanguageSkill {
	skills := make([]domain.LanguageSkill, 0, len(payload))
	for _, p := range payload {
		skills = append(skills, domain.LanguageSkill{Language: p.Language, Level: p.Level})
	}
	return skills
}

func toTechnicalSkills(payload []technicalSkillPayload) []domain.TechnicalSkill {
	skills := make([]domain.TechnicalSkill, 0, len(payload))
	for _, p := range payload {
		skills = append(skills, domain.TechnicalSkill{Value: p.Value})
	}
	return skills
}

func toPersonalSkills(payload []personalSkillPayload) []domain.PersonalSkill {
	skills := make([]domain.PersonalSkill, 0, len(payload))
	for _, p := range payload {
		skills = append(skills, domain.PersonalSkill{Value: p.Value})
	}
	return skills
}

type jobListItem struct {
	ID          int64            `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Seniority   domain.Seniority `json:"seniority"`
}

func (h *Handler) ListJobs(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.store.GetAllJobs()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	items := make([]jobListItem, 0, len(jobs))
	for _, job := range jobs {
		items = append(items, jobListItem{
			ID:          job.ID,
			Title:       job.Title,
			Description: job.Description,
			Seniority:   job.Seniority,
		})
	}

	h.writeJSON(w, r, http.StatusOK, items)
}

func (h *Handler) CreateJob(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title           string                  `json:"title" validate:"required"`
		Description     string                  `json:"description" validate:"required"`
		MainTasks       string                  `json:"main_tasks" validate:"required"`
		MinSalary       *int                    `json:"min_salary" validate:"required"`
		MaxSalary       *int                    `json:"max_salary" validate:"required"`
		Seniority       string                  `json:"seniority" validate:"required,oneof=INTERN JUNIOR MID SENIOR LEAD"`
		EmploymentType  string                  `json:"employment_type" validate:"required,oneof=FULL_TIME PART_TIME CONTRACT FREELANCE INTERNSHIP"`
		Languages       []languageSkillPayload  `json:"languages" validate:"omitempty,dive"`
		TechnicalSkills []technicalSkillPayload `json:"technical_skills" validate:"omitempty,dive"`
		PersonalSkills  []personalSkillPayload  `json:"personal_skills" validate:"omitempty,dive"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	// the owner is always the authenticated identity, never payload data
	subString := r.Context().Value(SubCtxKey).(string)
	sub, err := strconv.ParseInt(subString, 10, 64)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	job := &domain.Job{
		CompanyID:       sub,
		Title:           req.Title,
		Description:     req.Description,
		MainTasks:       req.MainTasks,
		MinSalary:       *req.MinSalary,
		MaxSalary:       *req.MaxSalary,
		Seniority:       domain.Seniority(req.Seniority),
		EmploymentType:  domain.Employment(req.EmploymentType),
		Languages:       toLanguageSkills(req.Languages),
		TechnicalSkills: toTechnicalSkills(req.TechnicalSkills),
		PersonalSkills:  toPersonalSkills(req.PersonalSkills),
	}

	if err := h.store.CreateJob(job); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotCompany):
			h.badRequest(w, r, err)
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.writeJSON(w, r, http.StatusCreated, job)
}

func (h *Handler) GetJob(w http.ResponseWriter, r *http.Request) {
	job := r.Context().Value(JobCtx).(*domain.Job)
	h.writeJSON(w, r, http.StatusOK, job)
}

// jobUpdateRequest carries an update payload for PUT and PATCH. Association
// fields are pointers so that an explicit empty list (clear the relation) can
// be told apart from an absent field (leave it alone).
type jobUpdateRequest struct {
	Title           *string                  `json:"title"`
	Description     *string                  `json:"description"`
	MainTasks       *string                  `json:"main_tasks"`
	MinSalary       *int                     `json:"min_salary"`
	MaxSalary       *int                     `json:"max_salary"`
	Seniority       *string                  `json:"seniority" validate:"omitempty,oneof=INTERN JUNIOR MID SENIOR LEAD"`
	EmploymentType  *string                  `json:"employment_type" validate:"omitempty,oneof=FULL_TIME PART_TIME CONTRACT FREELANCE INTERNSHIP"`
	Languages       *[]languageSkillPayload  `json:"languages"`
	TechnicalSkills *[]technicalSkillPayload `json:"technical_skills"`
	PersonalSkills  *[]personalSkillPayload  `json:"personal_skills"`
}

func (h *Handler) validateJobUpdate(req *jobUpdateRequest) error {
	if err := h.validate.Struct(req); err != nil {
		return err
	}
	if req.Languages != nil {
		for _, p := range *req.Languages {
			if err := h.validate.Struct(p); err != nil {
				return err
			}
		}
	}
	if req.TechnicalSkills != nil {
		for _, p := range *req.TechnicalSkills {
			if err := h.validate.Struct(p); err != nil {
				return err
			}
		}
	}
	if req.PersonalSkills != nil {
		for _, p := range *req.PersonalSkills {
			if err := h.validate.Struct(p); err != nil {
				return err
			}
		}
	}
	return nil
}

// requireFullUpdate enforces PUT semantics: every scalar field must be in the
// payload.
func requireFullUpdate(req *jobUpdateRequest) error {
	if req.Title == nil || req.Description == nil || req.MainTasks == nil ||
		req.MinSalary == nil || req.MaxSalary == nil ||
		req.Seniority == nil || req.EmploymentType == nil {
		return errors.New("all job fields are required for a full update")
	}
	return nil
}

func (h *Handler) applyJobUpdate(w http.ResponseWriter, r *http.Request, req *jobUpdateRequest) {
	job := r.Context().Value(JobCtx).(*domain.Job)

	if req.Title != nil {
		job.Title = *req.Title
	}
	if req.Description != nil {
		job.Description = *req.Description
	}
	if req.MainTasks != nil {
		job.MainTasks = *req.MainTasks
	}
	if req.MinSalary != nil {
		job.MinSalary = *req.MinSalary
	}
	if req.MaxSalary != nil {
		job.MaxSalary = *req.MaxSalary
	}
	if req.Seniority != nil {
		job.Seniority = domain.Seniority(*req.Seniority)
	}
	if req.EmploymentType != nil {
		job.EmploymentType = domain.Employment(*req.EmploymentType)
	}

	assoc := &domain.JobAssociationsUpdate{}
	if req.Languages != nil {
		skills := toLanguageSkills(*req.Languages)
		assoc.Languages = &skills
	}
	if req.TechnicalSkills != nil {
		skills := toTechnicalSkills(*req.TechnicalSkills)
		assoc.TechnicalSkills = &skills
	}
	if req.PersonalSkills != nil {
		skills := toPersonalSkills(*req.PersonalSkills)
		assoc.PersonalSkills = &skills
	}

	if err := h.store.UpdateJob(job, assoc); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotCompany):
			h.badRequest(w, r, err)
		case errors.Is(err, sql.ErrNoRows):
			// the version guard missed: either the row moved on or it is gone
			if _, getErr := h.store.GetJobByID(job.ID); errors.Is(getErr, sql.ErrNoRows) {
				h.notFound(w, r)
				return
			}
			h.conflict(w, r, "The job was modified concurrently, please retry.")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.writeJSON(w, r, http.StatusOK, job)
}

func (h *Handler) UpdateJob(w http.ResponseWriter, r *http.Request) {
	var req jobUpdateRequest

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := requireFullUpdate(&req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validateJobUpdate(&req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	h.applyJobUpdate(w, r, &req)
}

func (h *Handler) PartialUpdateJob(w http.ResponseWriter, r *http.Request) {
	var req jobUpdateRequest

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validateJobUpdate(&req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	h.applyJobUpdate(w, r, &req)
}

func (h *Handler) DeleteJob(w http.ResponseWriter, r *http.Request) {
	job := r.Context().Value(JobCtx).(*domain.Job)

	if err := h.store.DeleteJob(job.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
