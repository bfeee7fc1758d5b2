package domain

import "errors"

// ErrNotCompany is returned when a job is written for an account that does
// not hold the company role.
var ErrNotCompany = errors.New("Only companies can have jobs.")

type Seniority string

const (
	SeniorityIntern Seniority = "INTERN"
	SeniorityJunior Seniority = "JUNIOR"
	SeniorityMid    Seniority = "MID"
	SenioritySenior Seniority = "SENIOR"
	SeniorityLead   Seniority = "LEAD"
)

type Employment string

const (
	EmploymentFullTime   Employment = "FULL_TIME"
	EmploymentPartTime   Employment = "PART_TIME"
	EmploymentContract   Employment = "CONTRACT"
	EmploymentFreelance  Employment = "FREELANCE"
	EmploymentInternship Employment = "INTERNSHIP"
)

type Job struct {
	ID              int64            `json:"id"`
	CompanyID       int64            `json:"-"`
	Title           string           `json:"title"`
	Description     string           `json:"description"`
	MainTasks       string           `json:"main_tasks"`
	MinSalary       int              `json:"min_salary"`
	MaxSalary       int              `json:"max_salary"`
	Seniority       Seniority        `json:"seniority"`
	EmploymentType  Employment       `json:"employment_type"`
	Languages       []LanguageSkill  `json:"languages"`
	TechnicalSkills []TechnicalSkill `json:"technical_skills"`
	PersonalSkills  []PersonalSkill  `json:"personal_skills"`
	Version         int32            `json:"-"`
}

// JobAssociationsUpdate is the write intent for a job's skill associations.
// A nil field leaves the relation untouched; a non-nil field (including an
// empty slice) replaces all existing links with the given entries.
type JobAssociationsUpdate struct {
	Languages       *[]LanguageSkill
	TechnicalSkills *[]TechnicalSkill
	PersonalSkills  *[]PersonalSkill
}
