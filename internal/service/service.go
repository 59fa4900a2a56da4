package service

import (
	"pensees/internal/config"
	"pensees/internal/imagegen"
	"pensees/internal/ledger"
	"pensees/internal/repository"
	"pensees/internal/storage"
)

type Service struct {
	Auth     AuthService
	Content  ContentService
	Reaction ReactionService
	Visual   VisualService
	Contact  ContactService
}

func NewService(repo *repository.Repository, cfg *config.Config, store storage.Storage, generator imagegen.Generator, l *ledger.Ledger) *Service {
	return &Service{
		Auth:     NewAuthService(repo.User, cfg),
		Content:  NewContentService(repo),
		Reaction: NewReactionService(repo, l),
		Visual:   NewVisualService(repo, generator, store),
		Contact:  NewContactService(cfg),
	}
}
