package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/talenthub-dev/job-board/backend/internal/domain"
)

func attachLanguages(ctx context.Context, tx *sql.Tx, jobID int64, skills []domain.LanguageSkill) error {
	for i := range skills {
		if err := getOrCreateLanguageSkill(ctx, tx, &skills[i]); err != nil {
			return err
		}
		// the relation is a set, attaching a duplicate entry is a no-op
		query := `
			INSERT INTO job_languages (job_id, language_skill_id)
			VALUES ($1, $2)
			ON CONFLICT DO NOTHING
		`
		if _, err := tx.ExecContext(ctx, query, jobID, skills[i].ID); err != nil {
			return err
		}
	}
	return nil
}

func attachTechnicalSkills(ctx context.Context, tx *sql.Tx, jobID int64, skills []domain.TechnicalSkill) error {
	for i := range skills {
		if err := getOrCreateTechnicalSkill(ctx, tx, &skills[i]); err != nil {
			return err
		}
		query := `
			INSERT INTO job_technical_skills (job_id, technical_skill_id)
			VALUES ($1, $2)
			ON CONFLICT DO NOTHING
		`
		if _, err := tx.ExecContext(ctx, query, jobID, skills[i].ID); err != nil {
			return err
		}
	}
	return nil
}

func attachPersonalSkills(ctx context.Context, tx *sql.Tx, jobID int64, skills []domain.PersonalSkill) error {
	for i := range skills {
		if err := getOrCreatePersonalSkill(ctx, tx, &skills[i]); err != nil {
			return err
		}
		query := `
			INSERT INTO job_personal_skills (job_id, personal_skill_id)
			VALUES ($1, $2)
			ON CONFLICT DO NOTHING
		`
		if _, err := tx.ExecContext(ctx, query, jobID, skills[i].ID); err != nil {
			return err
		}
	}
	return nil
}

// CreateJob persists a job together with its skill associations in one
// transaction. The company-role invariant is checked first; on any failure
// nothing is written.
func (r *Repository) CreateJob(job *domain.Job) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.TransactionTimeout)*time.Second)
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	role, err := accountRole(ctx, tx, job.CompanyID)
	if err != nil {
		return err
	}
	if role != domain.RoleCompany {
		return domain.ErrNotCompany
	}

	query := `
		INSERT INTO jobs (company_id, title, description, main_tasks, min_salary, max_salary, seniority, employment_type)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, version
	`
	args := []any{job.CompanyID, job.Title, job.Description, job.MainTasks, job.MinSalary, job.MaxSalary, job.Seniority, job.EmploymentType}
	if err := tx.QueryRowContext(ctx, query, args...).Scan(&job.ID, &job.Version); err != nil {
		return err
	}

	if err := attachLanguages(ctx, tx, job.ID, job.Languages); err != nil {
		return err
	}
	if err := attachTechnicalSkills(ctx, tx, job.ID, job.TechnicalSkills); err != nil {
		return err
	}
	if err := attachPersonalSkills(ctx, tx, job.ID, job.PersonalSkills); err != nil {
		return err
	}

	return tx.Commit()
}

// UpdateJob writes the job's scalar fields and, for every association field
// present in assoc, clears and reattaches the links — all in one transaction.
// A present-but-empty association therefore ends up cleared. The company
// reference is never updated through this path.
func (r *Repository) UpdateJob(job *domain.Job, assoc *domain.JobAssociationsUpdate) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.TransactionTimeout)*time.Second)
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	// the role invariant re-runs on every save, even pure scalar updates
	role, err := accountRole(ctx, tx, job.CompanyID)
	if err != nil {
		return err
	}
	if role != domain.RoleCompany {
		return domain.ErrNotCompany
	}

	query := `
		UPDATE jobs
		SET
			title = $1,
			description = $2,
			main_tasks = $3,
			min_salary = $4,
			max_salary = $5,
			seniority = $6,
			employment_type = $7,
			version = version + 1
		WHERE id = $8 AND version = $9
		RETURNING version
	`
	args := []any{job.Title, job.Description, job.MainTasks, job.MinSalary, job.MaxSalary, job.Seniority, job.EmploymentType, job.ID, job.Version}
	if err := tx.QueryRowContext(ctx, query, args...).Scan(&job.Version); err != nil {
		return err
	}

	if assoc.Languages != nil {
		if _, err := tx.ExecContext(ctx, `DELETE FROM job_languages WHERE job_id = $1`, job.ID); err != nil {
			return err
		}
		if err := attachLanguages(ctx, tx, job.ID, *assoc.Languages); err != nil {
			return err
		}
		job.Languages = *assoc.Languages
	}
	if assoc.TechnicalSkills != nil {
		if _, err := tx.ExecContext(ctx, `DELETE FROM job_technical_skills WHERE job_id = $1`, job.ID); err != nil {
			return err
		}
		if err := attachTechnicalSkills(ctx, tx, job.ID, *assoc.TechnicalSkills); err != nil {
			return err
		}
		job.TechnicalSkills = *assoc.TechnicalSkills
	}
	if assoc.PersonalSkills != nil {
		if _, err := tx.ExecContext(ctx, `DELETE FROM job_personal_skills WHERE job_id = $1`, job.ID); err != nil {
			return err
		}
		if err := attachPersonalSkills(ctx, tx, job.ID, *assoc.PersonalSkills); err != nil {
			return err
		}
		job.PersonalSkills = *assoc.PersonalSkills
	}

	return tx.Commit()
}

func (r *Repository) GetJobByID(id int64) (*domain.Job, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	job := &domain.Job{
		ID: id,
	}

	query := `
		SELECT company_id, title, description, main_tasks, min_salary, max_salary, seniority, employment_type, version
		FROM jobs WHERE id = $1
	`
	dst := []any{&job.CompanyID, &job.Title, &job.Description, &job.MainTasks, &job.MinSalary, &job.MaxSalary, &job.Seniority, &job.EmploymentType, &job.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	job.Languages = make([]domain.LanguageSkill, 0)
	query = `
		SELECT ls.id, ls.language, ls.level
		FROM language_skills ls
		JOIN job_languages jl ON ls.id = jl.language_skill_id
		WHERE jl.job_id = $1
		ORDER BY ls.id
	`
	rows, err := r.dbpool.QueryContext(ctx, query, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var skill domain.LanguageSkill
		if err := rows.Scan(&skill.ID, &skill.Language, &skill.Level); err != nil {
			return nil, err
		}
		job.Languages = append(job.Languages, skill)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	job.TechnicalSkills = make([]domain.TechnicalSkill, 0)
	query = `
		SELECT ts.id, ts.value
		FROM technical_skills ts
		JOIN job_technical_skills jts ON ts.id = jts.technical_skill_id
		WHERE jts.job_id = $1
		ORDER BY ts.id
	`
	rows, err = r.dbpool.QueryContext(ctx, query, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var skill domain.TechnicalSkill
		if err := rows.Scan(&skill.ID, &skill.Value); err != nil {
			return nil, err
		}
		job.TechnicalSkills = append(job.TechnicalSkills, skill)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	job.PersonalSkills = make([]domain.PersonalSkill, 0)
	query = `
		SELECT ps.id, ps.value
		FROM personal_skills ps
		JOIN job_personal_skills jps ON ps.id = jps.personal_skill_id
		WHERE jps.job_id = $1
		ORDER BY ps.id
	`
	rows, err = r.dbpool.QueryContext(ctx, query, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var skill domain.PersonalSkill
		if err := rows.Scan(&skill.ID, &skill.Value); err != nil {
			return nil, err
		}
		job.PersonalSkills = append(job.PersonalSkills, skill)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return job, nil
}

func (r *Repository) GetAllJobs() ([]*domain.Job, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT id, company_id, title, description, main_tasks, min_salary, max_salary, seniority, employment_type, version
		FROM jobs
		ORDER BY id DESC
	`

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	jobs := make([]*domain.Job, 0)
	for rows.Next() {
		job := &domain.Job{}
		dst := []any{&job.ID, &job.CompanyID, &job.Title, &job.Description, &job.MainTasks, &job.MinSalary, &job.MaxSalary, &job.Seniority, &job.EmploymentType, &job.Version}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return jobs, nil
}

func (r *Repository) DeleteJob(id int64) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		DELETE FROM jobs WHERE id = $1
	`

	_, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	return nil
}
