package handler_test

import (
	"database/sql"
	"sort"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/talenthub-dev/job-board/backend/internal/domain"
)

// fakeStore is an in-memory handler.Store that mirrors the semantics of the
// Postgres repository: role invariants checked on every write, unique
// constraints surfaced as *pgconn.PgError, get-or-create skill rows shared
// between jobs, sql.ErrNoRows for missing rows.
type fakeStore struct {
	mu sync.Mutex

	nextUserID    int64
	nextProfileID int64
	nextJobID     int64
	nextSkillID   int64

	users           map[int64]*domain.User
	companyProfiles map[int64]*domain.CompanyProfile
	talentProfiles  map[int64]*domain.TalentProfile
	jobs            map[int64]*domain.Job
	languageSkills  []*domain.LanguageSkill
	technicalSkills []*domain.TechnicalSkill
	personalSkills  []*domain.PersonalSkill

	// afterGetJob runs once after the next GetJobByID, letting tests slip a
	// concurrent mutation between a load and the following write
	afterGetJob func()
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:           make(map[int64]*domain.User),
		companyProfiles: make(map[int64]*domain.CompanyProfile),
		talentProfiles:  make(map[int64]*domain.TalentProfile),
		jobs:            make(map[int64]*domain.Job),
	}
}

func uniqueViolation(constraint string) error {
	return &pgconn.PgError{Code: "23505", ConstraintName: constraint}
}

func copyUser(u *domain.User) *domain.User {
	c := *u
	return &c
}

// copyJob keeps association slices non-nil, like the SQL repository does.
func copyJob(j *domain.Job) *domain.Job {
	c := *j
	c.Languages = make([]domain.LanguageSkill, len(j.Languages))
	copy(c.Languages, j.Languages)
	c.TechnicalSkills = make([]domain.TechnicalSkill, len(j.TechnicalSkills))
	copy(c.TechnicalSkills, j.TechnicalSkills)
	c.PersonalSkills = make([]domain.PersonalSkill, len(j.PersonalSkills))
	copy(c.PersonalSkills, j.PersonalSkills)
	return &c
}

func (s *fakeStore) CreateUser(user *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.Email == user.Email {
			return uniqueViolation("users_email_key")
		}
	}

	s.nextUserID++
	user.ID = s.nextUserID
	user.DateJoined = time.Now()
	user.Version = 1
	s.users[user.ID] = copyUser(user)
	return nil
}

func (s *fakeStore) GetUserByID(id int64) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return copyUser(user), nil
}

func (s *fakeStore) GetUserByEmail(email string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, user := range s.users {
		if user.Email == email {
			return copyUser(user), nil
		}
	}
	return nil, sql.ErrNoRows
}

func (s *fakeStore) UpdateUser(user *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.users[user.ID]
	if !ok || existing.Version != user.Version {
		return sql.ErrNoRows
	}
	for id, other := range s.users {
		if id != user.ID && other.Email == user.Email {
			return uniqueViolation("users_email_key")
		}
	}
	user.Version++
	s.users[user.ID] = copyUser(user)
	return nil
}

func (s *fakeStore) DeleteUser(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.users, id)
	for pid, p := range s.companyProfiles {
		if p.AccountID == id {
			delete(s.companyProfiles, pid)
		}
	}
	for pid, p := range s.talentProfiles {
		if p.AccountID == id {
			delete(s.talentProfiles, pid)
		}
	}
	for jid, j := range s.jobs {
		if j.CompanyID == id {
			delete(s.jobs, jid)
		}
	}
	return nil
}

func (s *fakeStore) CheckEmailIfExists(email string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, user := range s.users {
		if user.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeStore) accountRole(accountID int64) (domain.Role, error) {
	user, ok := s.users[accountID]
	if !ok {
		return "", sql.ErrNoRows
	}
	return user.Role, nil
}

func (s *fakeStore) CreateCompanyProfile(profile *domain.CompanyProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	role, err := s.accountRole(profile.AccountID)
	if err != nil {
		return err
	}
	if role != domain.RoleCompany {
		return domain.ErrInvalidProfileRole
	}
	for _, existing := range s.companyProfiles {
		if existing.AccountID == profile.AccountID {
			return uniqueViolation("company_profiles_account_id_key")
		}
	}

	s.nextProfileID++
	profile.ID = s.nextProfileID
	c := *profile
	s.companyProfiles[profile.ID] = &c
	return nil
}

func (s *fakeStore) GetCompanyProfileByAccount(accountID int64) (*domain.CompanyProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, profile := range s.companyProfiles {
		if profile.AccountID == accountID {
			c := *profile
			return &c, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (s *fakeStore) UpdateCompanyProfile(profile *domain.CompanyProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	role, err := s.accountRole(profile.AccountID)
	if err != nil {
		return err
	}
	if role != domain.RoleCompany {
		return domain.ErrInvalidProfileRole
	}
	if _, ok := s.companyProfiles[profile.ID]; !ok {
		return sql.ErrNoRows
	}
	c := *profile
	s.companyProfiles[profile.ID] = &c
	return nil
}

func (s *fakeStore) CreateTalentProfile(profile *domain.TalentProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	role, err := s.accountRole(profile.AccountID)
	if err != nil {
		return err
	}
	if role != domain.RoleTalent {
		return domain.ErrInvalidProfileRole
	}
	for _, existing := range s.talentProfiles {
		if existing.AccountID == profile.AccountID {
			return uniqueViolation("talent_profiles_account_id_key")
		}
	}

	s.nextProfileID++
	profile.ID = s.nextProfileID
	c := *profile
	s.talentProfiles[profile.ID] = &c
	return nil
}

func (s *fakeStore) GetTalentProfileByAccount(accountID int64) (*domain.TalentProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, profile := range s.talentProfiles {
		if profile.AccountID == accountID {
			c := *profile
			return &c, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (s *fakeStore) UpdateTalentProfile(profile *domain.TalentProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	role, err := s.accountRole(profile.AccountID)
	if err != nil {
		return err
	}
	if role != domain.RoleTalent {
		return domain.ErrInvalidProfileRole
	}
	if _, ok := s.talentProfiles[profile.ID]; !ok {
		return sql.ErrNoRows
	}
	c := *profile
	s.talentProfiles[profile.ID] = &c
	return nil
}

func (s *fakeStore) getOrCreateLanguageSkill(language, level string) *domain.LanguageSkill {
	for _, skill := range s.languageSkills {
		if skill.Language == language && skill.Level == level {
			return skill
		}
	}
	s.nextSkillID++
	skill := &domain.LanguageSkill{ID: s.nextSkillID, Language: language, Level: level}
	s.languageSkills = append(s.languageSkills, skill)
	return skill
}

func (s *fakeStore) getOrCreateTechnicalSkill(value string) *domain.TechnicalSkill {
	for _, skill := range s.technicalSkills {
		if skill.Value == value {
			return skill
		}
	}
	s.nextSkillID++
	skill := &domain.TechnicalSkill{ID: s.nextSkillID, Value: value}
	s.technicalSkills = append(s.technicalSkills, skill)
	return skill
}

func (s *fakeStore) getOrCreatePersonalSkill(value string) *domain.PersonalSkill {
	for _, skill := range s.personalSkills {
		if skill.Value == value {
			return skill
		}
	}
	s.nextSkillID++
	skill := &domain.PersonalSkill{ID: s.nextSkillID, Value: value}
	s.personalSkills = append(s.personalSkills, skill)
	return skill
}

// resolve*Skills applies the set semantics of the link tables: duplicate
// entries in the input attach once.
func (s *fakeStore) resolveLanguageSkills(input []domain.LanguageSkill) []domain.LanguageSkill {
	out := make([]domain.LanguageSkill, 0, len(input))
	seen := make(map[int64]bool)
	for _, entry := range input {
		skill := s.getOrCreateLanguageSkill(entry.Language, entry.Level)
		if seen[skill.ID] {
			continue
		}
		seen[skill.ID] = true
		out = append(out, *skill)
	}
	return out
}

func (s *fakeStore) resolveTechnicalSkills(input []domain.TechnicalSkill) []domain.TechnicalSkill {
	out := make([]domain.TechnicalSkill, 0, len(input))
	seen := make(map[int64]bool)
	for _, entry := range input {
		skill := s.getOrCreateTechnicalSkill(entry.Value)
		if seen[skill.ID] {
			continue
		}
		seen[skill.ID] = true
		out = append(out, *skill)
	}
	return out
}

func (s *fakeStore) resolvePersonalSkills(input []domain.PersonalSkill) []domain.PersonalSkill {
	out := make([]domain.PersonalSkill, 0, len(input))
	seen := make(map[int64]bool)
	for _, entry := range input {
		skill := s.getOrCreatePersonalSkill(entry.Value)
		if seen[skill.ID] {
			continue
		}
		seen[skill.ID] = true
		out = append(out, *skill)
	}
	return out
}

func (s *fakeStore) CreateJob(job *domain.Job) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	role, err := s.accountRole(job.CompanyID)
	if err != nil {
		return err
	}
	if role != domain.RoleCompany {
		return domain.ErrNotCompany
	}

	s.nextJobID++
	job.ID = s.nextJobID
	job.Version = 1
	job.Languages = s.resolveLanguageSkills(job.Languages)
	job.TechnicalSkills = s.resolveTechnicalSkills(job.TechnicalSkills)
	job.PersonalSkills = s.resolvePersonalSkills(job.PersonalSkills)
	s.jobs[job.ID] = copyJob(job)
	return nil
}

func (s *fakeStore) GetJobByID(id int64) (*domain.Job, error) {
	s.mu.Lock()
	job, ok := s.jobs[id]
	var out *domain.Job
	if ok {
		out = copyJob(job)
	}
	hook := s.afterGetJob
	s.afterGetJob = nil
	s.mu.Unlock()

	if hook != nil {
		hook()
	}
	if !ok {
		return nil, sql.ErrNoRows
	}
	return out, nil
}

func (s *fakeStore) GetAllJobs() ([]*domain.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	jobs := make([]*domain.Job, 0, len(s.jobs))
	for _, job := range s.jobs {
		jobs = append(jobs, copyJob(job))
	}
	sort.Slice(jobs, func(i, j int) bool { return jobs[i].ID > jobs[j].ID })
	return jobs, nil
}

func (s *fakeStore) UpdateJob(job *domain.Job, assoc *domain.JobAssociationsUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	role, err := s.accountRole(job.CompanyID)
	if err != nil {
		return err
	}
	if role != domain.RoleCompany {
		return domain.ErrNotCompany
	}

	existing, ok := s.jobs[job.ID]
	if !ok || existing.Version != job.Version {
		return sql.ErrNoRows
	}

	kept := copyJob(existing)
	if assoc.Languages != nil {
		job.Languages = s.resolveLanguageSkills(*assoc.Languages)
	} else {
		job.Languages = kept.Languages
	}
	if assoc.TechnicalSkills != nil {
		job.TechnicalSkills = s.resolveTechnicalSkills(*assoc.TechnicalSkills)
	} else {
		job.TechnicalSkills = kept.TechnicalSkills
	}
	if assoc.PersonalSkills != nil {
		job.PersonalSkills = s.resolvePersonalSkills(*assoc.PersonalSkills)
	} else {
		job.PersonalSkills = kept.PersonalSkills
	}

	job.Version++
	s.jobs[job.ID] = copyJob(job)
	return nil
}

func (s *fakeStore) DeleteJob(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.jobs, id)
	return nil
}
