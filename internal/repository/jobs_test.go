package repository

import (
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/talenthub-dev/job-board/backend/internal/config"
	"github.com/talenthub-dev/job-board/backend/internal/domain"
)

func newMockRepository(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	cfg := &config.Config{}
	cfg.Database.QueryTimeout = 5
	cfg.Database.TransactionTimeout = 5

	return NewRepository(cfg, db), mock
}

func TestCreateJob(t *testing.T) {
	r, mock := newMockRepository(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT role FROM users`).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"role"}).AddRow("COMPANY"))
	mock.ExpectQuery(`INSERT INTO jobs`).
		WithArgs(int64(7), "Backend Engineer", "Own the API.", "Design endpoints.", 50000, 70000, "MID", "FULL_TIME").
		WillReturnRows(sqlmock.NewRows([]string{"id", "version"}).AddRow(int64(42), int64(1)))
	mock.ExpectExec(`INSERT INTO language_skills`).
		WithArgs("English", "Fluent").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT id FROM language_skills`).
		WithArgs("English", "Fluent").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(3)))
	mock.ExpectExec(`INSERT INTO job_languages`).
		WithArgs(int64(42), int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	job := &domain.Job{
		CompanyID:      7,
		Title:          "Backend Engineer",
		Description:    "Own the API.",
		MainTasks:      "Design endpoints.",
		MinSalary:      50000,
		MaxSalary:      70000,
		Seniority:      domain.SeniorityMid,
		EmploymentType: domain.EmploymentFullTime,
		Languages:      []domain.LanguageSkill{{Language: "English", Level: "Fluent"}},
	}
	require.NoError(t, r.CreateJob(job))

	assert.Equal(t, int64(42), job.ID)
	assert.Equal(t, int64(3), job.Languages[0].ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateJobRejectsNonCompany(t *testing.T) {
	r, mock := newMockRepository(t)

	// the role check fails before anything is written
	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT role FROM users`).
		WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows([]string{"role"}).AddRow("TALENT"))
	mock.ExpectRollback()

	job := &domain.Job{
		CompanyID:      9,
		Title:          "Backend Engineer",
		Description:    "Own the API.",
		MainTasks:      "Design endpoints.",
		Seniority:      domain.SeniorityMid,
		EmploymentType: domain.EmploymentFullTime,
	}
	err := r.CreateJob(job)
	assert.ErrorIs(t, err, domain.ErrNotCompany)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateJobVersionGuard(t *testing.T) {
	r, mock := newMockRepository(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT role FROM users`).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"role"}).AddRow("COMPANY"))
	// a stale version matches no row
	mock.ExpectQuery(`UPDATE jobs`).
		WithArgs("Backend Engineer", "Own the API.", "Design endpoints.", 50000, 70000, "MID", "FULL_TIME", int64(42), 1).
		WillReturnRows(sqlmock.NewRows([]string{"version"}))
	mock.ExpectRollback()

	job := &domain.Job{
		ID:             42,
		CompanyID:      7,
		Title:          "Backend Engineer",
		Description:    "Own the API.",
		MainTasks:      "Design endpoints.",
		MinSalary:      50000,
		MaxSalary:      70000,
		Seniority:      domain.SeniorityMid,
		EmploymentType: domain.EmploymentFullTime,
		Version:        1,
	}
	err := r.UpdateJob(job, &domain.JobAssociationsUpdate{})
	assert.ErrorIs(t, err, sql.ErrNoRows)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateJobClearsLanguages(t *testing.T) {
	r, mock := newMockRepository(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT role FROM users`).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"role"}).AddRow("COMPANY"))
	mock.ExpectQuery(`UPDATE jobs`).
		WillReturnRows(sqlmock.NewRows([]string{"version"}).AddRow(int64(2)))
	// present-but-empty association: links are deleted, nothing is reattached
	mock.ExpectExec(`DELETE FROM job_languages`).
		WithArgs(int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	job := &domain.Job{
		ID:             42,
		CompanyID:      7,
		Title:          "Backend Engineer",
		Description:    "Own the API.",
		MainTasks:      "Design endpoints.",
		MinSalary:      50000,
		MaxSalary:      70000,
		Seniority:      domain.SeniorityMid,
		EmploymentType: domain.EmploymentFullTime,
		Version:        1,
	}
	assoc := &domain.JobAssociationsUpdate{Languages: &[]domain.LanguageSkill{}}
	require.NoError(t, r.UpdateJob(job, assoc))

	assert.Equal(t, int32(2), job.Version)
	assert.Empty(t, job.Languages)
	require.NoError(t, mock.ExpectationsWereMet())
}
