package repository

import (
	"context"
	"database/sql"

	"github.com/talenthub-dev/job-board/backend/internal/domain"
)

// Skill rows are only written through the get-or-create helpers below, always
// inside the job write transaction. Calling a helper twice with the same key
// never creates a second row.

func getOrCreateLanguageSkill(ctx context.Context, tx *sql.Tx, skill *domain.LanguageSkill) error {
	query := `
		INSERT INTO language_skills (language, level)
		VALUES ($1, $2)
		ON CONFLICT (language, level) DO NOTHING
	`
	if _, err := tx.ExecContext(ctx, query, skill.Language, skill.Level); err != nil {
		return err
	}

	query = `SELECT id FROM language_skills WHERE language = $1 AND level = $2`
	return tx.QueryRowContext(ctx, query, skill.Language, skill.Level).Scan(&skill.ID)
}

func getOrCreateTechnicalSkill(ctx context.Context, tx *sql.Tx, skill *domain.TechnicalSkill) error {
	query := `
		INSERT INTO technical_skills (value)
		VALUES ($1)
		ON CONFLICT (value) DO NOTHING
	`
	if _, err := tx.ExecContext(ctx, query, skill.Value); err != nil {
		return err
	}

	query = `SELECT id FROM technical_skills WHERE value = $1`
	return tx.QueryRowContext(ctx, query, skill.Value).Scan(&skill.ID)
}

func getOrCreatePersonalSkill(ctx context.Context, tx *sql.Tx, skill *domain.PersonalSkill) error {
	query := `
		INSERT INTO personal_skills (value)
		VALUES ($1)
		ON CONFLICT (value) DO NOTHING
	`
	if _, err := tx.ExecContext(ctx, query, skill.Value); err != nil {
		return err
	}

	query = `SELECT id FROM personal_skills WHERE value = $1`
	return tx.QueryRowContext(ctx, query, skill.Value).Scan(&skill.ID)
}
