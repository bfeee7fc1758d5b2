package utils

import (
	crand "crypto/rand"
	"fmt"
	"math/big"
	"math/rand"
	"strings"

	"github.com/talenthub-dev/job-board/backend/internal/domain"
)

// GenerateRandomOTP returns a six digit one-time code drawn from crypto/rand.
func GenerateRandomOTP() string {
	n, err := crand.Int(crand.Reader, big.NewInt(1000000))
	if err != nil {
		panic(err)
	}
	return fmt.Sprintf("%06d", n.Int64())
}

var firstNames = []string{
	"James", "Mary", "John", "Patricia", "Robert", "Jennifer", "Michael",
	"Linda", "David", "Elizabeth", "William", "Barbara", "Richard", "Susan",
	"Joseph", "Jessica", "Thomas", "Sarah", "Daniel", "Karen",
}

var lastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller",
	"Davis", "Rodriguez", "Martinez", "Hernandez", "Lopez", "Gonzalez",
	"Wilson", "Anderson", "Thomas", "Taylor", "Moore", "Jackson", "Martin",
}

var companyWords = []string{
	"Acme", "Nimbus", "Vertex", "Quantum", "Orbit", "Lumen", "Atlas",
	"Cobalt", "Zenith", "Harbor", "Summit", "Nova", "Prism", "Falcon",
}

var companySuffixes = []string{"Labs", "Systems", "Technologies", "Software", "Group", "Solutions"}

func GenerateRandomCompanyName() string {
	return companyWords[rand.Intn(len(companyWords))] + " " + companySuffixes[rand.Intn(len(companySuffixes))]
}

// GenerateRandomUser builds a user with the given role, an email derived from
// the generated name and a bcrypt hash of the shared seed password.
func GenerateRandomUser(password string, role domain.Role) (*domain.User, error) {
	firstName := firstNames[rand.Intn(len(firstNames))]
	lastName := lastNames[rand.Intn(len(lastNames))]
	email := fmt.Sprintf("%s.%s%d@example.com", strings.ToLower(firstName), strings.ToLower(lastName), rand.Intn(10000))

	return domain.NewUser(email, password, role, domain.NewUserParams{
		FirstName: firstName,
		LastName:  lastName,
	})
}

var jobTitles = []string{
	"Backend Engineer", "Frontend Developer", "Data Engineer",
	"Platform Engineer", "QA Engineer", "DevOps Engineer",
	"Product Engineer", "Site Reliability Engineer",
}

var seniorities = []domain.Seniority{
	domain.SeniorityIntern,
	domain.SeniorityJunior,
	domain.SeniorityMid,
	domain.SenioritySenior,
	domain.SeniorityLead,
}

var employmentTypes = []domain.Employment{
	domain.EmploymentFullTime,
	domain.EmploymentPartTime,
	domain.EmploymentContract,
	domain.EmploymentFreelance,
	domain.EmploymentInternship,
}

func randomSubsetChoices(choices []domain.Choice, max int) []string {
	n := rand.Intn(max) + 1
	picked := make([]string, 0, n)
	seen := make(map[string]bool)
	for len(picked) < n {
		c := choices[rand.Intn(len(choices))]
		if seen[c.Value] {
			continue
		}
		seen[c.Value] = true
		picked = append(picked, c.Value)
	}
	return picked
}

// GenerateRandomJob builds a job owned by the given company with a few random
// skill associations drawn from the shared choice lists.
func GenerateRandomJob(companyID int64) *domain.Job {
	minSalary := (rand.Intn(80) + 20) * 1000
	maxSalary := minSalary + (rand.Intn(50)+10)*1000

	job := &domain.Job{
		CompanyID:      companyID,
		Title:          jobTitles[rand.Intn(len(jobTitles))],
		Description:    "We are looking for a motivated engineer to join our team.",
		MainTasks:      "Design, build and operate the services behind our product.",
		MinSalary:      minSalary,
		MaxSalary:      maxSalary,
		Seniority:      seniorities[rand.Intn(len(seniorities))],
		EmploymentType: employmentTypes[rand.Intn(len(employmentTypes))],
	}

	levels := domain.LanguageLevelChoices()
	for _, language := range randomSubsetChoices(domain.LanguageChoices(), 3) {
		job.Languages = append(job.Languages, domain.LanguageSkill{
			Language: language,
			Level:    levels[rand.Intn(len(levels))].Value,
		})
	}
	for _, value := range randomSubsetChoices(domain.TechnicalSkillChoices(), 4) {
		job.TechnicalSkills = append(job.TechnicalSkills, domain.TechnicalSkill{Value: value})
	}
	for _, value := range randomSubsetChoices(domain.PersonalSkillChoices(), 3) {
		job.PersonalSkills = append(job.PersonalSkills, domain.PersonalSkill{Value: value})
	}

	return job
}
