package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/talenthub-dev/job-board/backend/internal/domain"
)

// accountRole reads the role of the linked account inside the caller's
// transaction so the role invariant and the profile write commit together.
func accountRole(ctx context.Context, tx *sql.Tx, accountID int64) (domain.Role, error) {
	var role domain.Role
	if err := tx.QueryRowContext(ctx, `SELECT role FROM users WHERE id = $1`, accountID).Scan(&role); err != nil {
		return "", err
	}
	return role, nil
}

func (r *Repository) CreateCompanyProfile(profile *domain.CompanyProfile) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.TransactionTimeout)*time.Second)
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	role, err := accountRole(ctx, tx, profile.AccountID)
	if err != nil {
		return err
	}
	if role != domain.RoleCompany {
		return domain.ErrInvalidProfileRole
	}

	query := `
		INSERT INTO company_profiles (account_id, name)
		VALUES ($1, $2)
		RETURNING id
	`
	if err := tx.QueryRowContext(ctx, query, profile.AccountID, profile.Name).Scan(&profile.ID); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *Repository) GetCompanyProfileByAccount(accountID int64) (*domain.CompanyProfile, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	profile := &domain.CompanyProfile{
		AccountID: accountID,
	}

	query := `SELECT id, name FROM company_profiles WHERE account_id = $1`
	if err := r.dbpool.QueryRowContext(ctx, query, accountID).Scan(&profile.ID, &profile.Name); err != nil {
		return nil, err
	}

	return profile, nil
}

func (r *Repository) UpdateCompanyProfile(profile *domain.CompanyProfile) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.TransactionTimeout)*time.Second)
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	// the invariant re-runs on every save, not only on insert
	role, err := accountRole(ctx, tx, profile.AccountID)
	if err != nil {
		return err
	}
	if role != domain.RoleCompany {
		return domain.ErrInvalidProfileRole
	}

	query := `UPDATE company_profiles SET name = $1 WHERE id = $2`
	res, err := tx.ExecContext(ctx, query, profile.Name, profile.ID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}

	return tx.Commit()
}

func (r *Repository) CreateTalentProfile(profile *domain.TalentProfile) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.TransactionTimeout)*time.Second)
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	role, err := accountRole(ctx, tx, profile.AccountID)
	if err != nil {
		return err
	}
	if role != domain.RoleTalent {
		return domain.ErrInvalidProfileRole
	}

	query := `
		INSERT INTO talent_profiles (account_id, profile_description)
		VALUES ($1, $2)
		RETURNING id
	`
	if err := tx.QueryRowContext(ctx, query, profile.AccountID, profile.ProfileDescription).Scan(&profile.ID); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *Repository) GetTalentProfileByAccount(accountID int64) (*domain.TalentProfile, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	profile := &domain.TalentProfile{
		AccountID: accountID,
	}

	query := `SELECT id, profile_description FROM talent_profiles WHERE account_id = $1`
	if err := r.dbpool.QueryRowContext(ctx, query, accountID).Scan(&profile.ID, &profile.ProfileDescription); err != nil {
		return nil, err
	}

	return profile, nil
}

func (r *Repository) UpdateTalentProfile(profile *domain.TalentProfile) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.TransactionTimeout)*time.Second)
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	role, err := accountRole(ctx, tx, profile.AccountID)
	if err != nil {
		return err
	}
	if role != domain.RoleTalent {
		return domain.ErrInvalidProfileRole
	}

	query := `UPDATE talent_profiles SET profile_description = $1 WHERE id = $2`
	res, err := tx.ExecContext(ctx, query, profile.ProfileDescription, profile.ID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}

	return tx.Commit()
}
