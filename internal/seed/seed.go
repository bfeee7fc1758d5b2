package seed

import (
	"log/slog"
	"math/rand"

	"github.com/talenthub-dev/job-board/backend/internal/domain"
	"github.com/talenthub-dev/job-board/backend/internal/repository"
	"github.com/talenthub-dev/job-board/backend/internal/utils"
)

const (
	companyCount      = 5
	talentCount       = 10
	maxJobsPerCompany = 4
)

// SeedSampleData fills the database with sample companies, talents and jobs
// for local development. Every account shares the configured seed password.
func SeedSampleData(r *repository.Repository, password string) {
	for i := 0; i < companyCount; i++ {
		user, err := utils.GenerateRandomUser(password, domain.RoleCompany)
		if err != nil {
			slog.Error("unable to generate company user", "error", err)
			return
		}
		if err := r.CreateUser(user); err != nil {
			slog.Error("unable to insert company user", "email", user.Email, "error", err)
			return
		}

		profile := &domain.CompanyProfile{
			AccountID: user.ID,
			Name:      utils.GenerateRandomCompanyName(),
		}
		if err := r.CreateCompanyProfile(profile); err != nil {
			slog.Error("unable to insert company profile", "email", user.Email, "error", err)
			return
		}

		jobCount := rand.Intn(maxJobsPerCompany) + 1
		for j := 0; j < jobCount; j++ {
			job := utils.GenerateRandomJob(user.ID)
			if err := r.CreateJob(job); err != nil {
				slog.Error("unable to insert job", "company", profile.Name, "error", err)
				return
			}
		}

		slog.Info("seeded company", "email", user.Email, "name", profile.Name, "jobs", jobCount)
	}

	for i := 0; i < talentCount; i++ {
		user, err := utils.GenerateRandomUser(password, domain.RoleTalent)
		if err != nil {
			slog.Error("unable to generate talent user", "error", err)
			return
		}
		if err := r.CreateUser(user); err != nil {
			slog.Error("unable to insert talent user", "email", user.Email, "error", err)
			return
		}

		profile := &domain.TalentProfile{
			AccountID:          user.ID,
			ProfileDescription: "Engineer looking for the next opportunity.",
		}
		if err := r.CreateTalentProfile(profile); err != nil {
			slog.Error("unable to insert talent profile", "email", user.Email, "error", err)
			return
		}

		slog.Info("seeded talent", "email", user.Email)
	}
}
