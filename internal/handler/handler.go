package handlers

import (
	"github.com/go-playground/validator/v10"

	"pensees/internal/config"
	"pensees/internal/repository"
	"pensees/internal/service"
)

type Handlers struct {
	AuthService     service.AuthService
	ContentService  service.ContentService
	ReactionService service.ReactionService
	VisualService   service.VisualService
	ContactService  service.ContactService
	AphorismRepo    repository.AphorismRepository
	ReflectionRepo  repository.ReflectionRepository
	TagRepo         repository.TagRepository
	CommentRepo     repository.CommentRepository
	Cfg             *config.Config
	Validate        *validator.Validate
}

func NewHandlers(repo *repository.Repository, service *service.Service, config *config.Config) *Handlers {
	return &Handlers{
		AuthService:     service.Auth,
		ContentService:  service.Content,
		ReactionService: service.Reaction,
		VisualService:   service.Visual,
		ContactService:  service.Contact,
		AphorismRepo:    repo.Aphorism,
		ReflectionRepo:  repo.Reflection,
		TagRepo:         repo.Tag,
		CommentRepo:     repo.Comment,
		Cfg:             config,
		Validate:        validator.New(),
	}
}
