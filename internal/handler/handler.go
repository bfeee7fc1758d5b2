package handler

import (
	"context"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/talenthub-dev/job-board/backend/internal/config"
	"github.com/talenthub-dev/job-board/backend/internal/domain"
)

// Store is the persistence surface the handlers depend on. It is implemented
// by *repository.Repository and by an in-memory fake in the tests.
type Store interface {
	CreateUser(user *domain.User) error
	GetUserByID(id int64) (*domain.User, error)
	GetUserByEmail(email string) (*domain.User, error)
	UpdateUser(user *domain.User) error
	DeleteUser(id int64) error
	CheckEmailIfExists(email string) (bool, error)

	CreateCompanyProfile(profile *domain.CompanyProfile) error
	GetCompanyProfileByAccount(accountID int64) (*domain.CompanyProfile, error)
	UpdateCompanyProfile(profile *domain.CompanyProfile) error
	CreateTalentProfile(profile *domain.TalentProfile) error
	GetTalentProfileByAccount(accountID int64) (*domain.TalentProfile, error)
	UpdateTalentProfile(profile *domain.TalentProfile) error

	CreateJob(job *domain.Job) error
	GetJobByID(id int64) (*domain.Job, error)
	GetAllJobs() ([]*domain.Job, error)
	UpdateJob(job *domain.Job, assoc *domain.JobAssociationsUpdate) error
	DeleteJob(id int64) error
}

// MailPublisher is satisfied by *amqp.Channel.
type MailPublisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

type Handler struct {
	validate    *validator.Validate
	config      *config.Config
	store       Store
	translator  ut.Translator
	mailChannel MailPublisher
	redisClient *redis.Client

	Mux *chi.Mux
}

func NewHandler(cfg *config.Config, store Store, mailCh MailPublisher, rdb *redis.Client) (*Handler, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	en := en.New()
	uni := ut.New(en, en)
	trans, _ := uni.GetTranslator("en")
	if err := en_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}
	if err := registerJSONTagNames(validate); err != nil {
		return nil, err
	}
	if err := registerChoiceValidations(validate, trans); err != nil {
		return nil, err
	}

	return &Handler{
		validate:    validate,
		config:      cfg,
		store:       store,
		translator:  trans,
		mailChannel: mailCh,
		redisClient: rdb,

		Mux: chi.NewRouter(),
	}, nil
}

func (h *Handler) RegisterRoutes() {
	h.Mux.Use(h.logger)
	h.Mux.Use(h.recoverer)

	h.Mux.Route("/user", func(r chi.Router) {
		r.Post("/create", h.CreateUser)
		r.Post("/token", h.CreateToken)
		r.Route("/password-reset", func(r chi.Router) {
			r.Post("/require", h.RequireResetPassword)
			r.Post("/confirm", h.ConfirmResetPassword)
		})

		// everything below requires a valid token
		r.Group(func(r chi.Router) {
			r.Use(h.auth)
			r.Use(h.currentUser)
			r.Route("/me", func(r chi.Router) {
				r.Get("/", h.GetMe)
				r.Patch("/", h.UpdateMe)
				r.Delete("/", h.DeleteMe)
				r.Route("/company-profile", func(r chi.Router) {
					r.Post("/", h.CreateCompanyProfile)
					r.Get("/", h.GetCompanyProfile)
					r.Patch("/", h.UpdateCompanyProfile)
				})
				r.Route("/talent-profile", func(r chi.Router) {
					r.Post("/", h.CreateTalentProfile)
					r.Get("/", h.GetTalentProfile)
					r.Patch("/", h.UpdateTalentProfile)
				})
			})
		})
	})

	h.Mux.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Route("/jobs", func(r chi.Router) {
			r.Get("/", h.ListJobs)
			r.Post("/", h.CreateJob)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.job)
				r.Get("/", h.GetJob)
				// mutations are reserved for the owning company
				r.Group(func(r chi.Router) {
					r.Use(h.requireJobOwner)
					r.Put("/", h.UpdateJob)
					r.Patch("/", h.PartialUpdateJob)
					r.Delete("/", h.DeleteJob)
				})
			})
		})
	})

	// static enumeration listings, no authentication required
	h.Mux.Get("/languages", h.ListLanguages)
	h.Mux.Get("/language-levels", h.ListLanguageLevels)
	h.Mux.Get("/technical-skills", h.ListTechnicalSkills)
	h.Mux.Get("/personal-skills", h.ListPersonalSkills)
}
