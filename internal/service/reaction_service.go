package service

import (
	"context"

	"pensees/internal/ledger"
	"pensees/internal/reaction"
	"pensees/internal/repository"
)

// ReactionState is what a toggle returns: the locally displayed count and
// whether the reaction is now active for this client.
type ReactionState struct {
	Count  int  `json:"count"`
	Active bool `json:"active"`
}

// ReactionService exposes the three optimistic counters. Each toggle
// answers immediately with the optimistic state; the counter mutation is
// dispatched in the background and never rolled back on failure.
type ReactionService interface {
	ToggleAphorismLike(ctx context.Context, aphorismID string) (*ReactionState, error)
	ToggleReflectionLike(ctx context.Context, reflectionID string) (*ReactionState, error)
	ToggleReflectionDislike(ctx context.Context, reflectionID string) (*ReactionState, error)
}

type reactionService struct {
	aphorismRepo   repository.AphorismRepository
	reflectionRepo repository.ReflectionRepository

	aphorismLikes      *reaction.Controller
	reflectionLikes    *reaction.Controller
	reflectionDislikes *reaction.Controller
}

func NewReactionService(repo *repository.Repository, l *ledger.Ledger) ReactionService {
	return &reactionService{
		aphorismRepo:   repo.Aphorism,
		reflectionRepo: repo.Reflection,
		aphorismLikes: reaction.NewController(l, ledger.KeyLikedAphorisms,
			aphorismLikeMutator{repo.Aphorism}),
		reflectionLikes: reaction.NewController(l, ledger.KeyLikedReflections,
			reflectionLikeMutator{repo.Reflection}),
		reflectionDislikes: reaction.NewController(l, ledger.KeyDislikedReflections,
			reflectionDislikeMutator{repo.Reflection}),
	}
}

func (s *reactionService) ToggleAphorismLike(ctx context.Context, aphorismID string) (*ReactionState, error) {
	aphorism, err := s.aphorismRepo.GetByID(ctx, aphorismID)
	if err != nil {
		return nil, err
	}

	// The dispatched mutation must survive the request ending.
	count, active, err := s.aphorismLikes.Toggle(context.WithoutCancel(ctx), aphorismID, aphorism.Likes)
	if err != nil {
		return nil, err
	}

	return &ReactionState{Count: count, Active: active}, nil
}

func (s *reactionService) ToggleReflectionLike(ctx context.Context, reflectionID string) (*ReactionState, error) {
	reflection, err := s.reflectionRepo.GetByID(ctx, reflectionID)
	if err != nil {
		return nil, err
	}

	count, active, err := s.reflectionLikes.Toggle(context.WithoutCancel(ctx), reflectionID, reflection.Likes)
	if err != nil {
		return nil, err
	}

	return &ReactionState{Count: count, Active: active}, nil
}

func (s *reactionService) ToggleReflectionDislike(ctx context.Context, reflectionID string) (*ReactionState, error) {
	reflection, err := s.reflectionRepo.GetByID(ctx, reflectionID)
	if err != nil {
		return nil, err
	}

	count, active, err := s.reflectionDislikes.Toggle(context.WithoutCancel(ctx), reflectionID, reflection.Dislikes)
	if err != nil {
		return nil, err
	}

	return &ReactionState{Count: count, Active: active}, nil
}

type aphorismLikeMutator struct {
	repo repository.AphorismRepository
}

func (m aphorismLikeMutator) Increment(ctx context.Context, id string, base int) error {
	return m.repo.IncrementLikes(ctx, id, base)
}

func (m aphorismLikeMutator) Decrement(ctx context.Context, id string, base int) error {
	return m.repo.DecrementLikes(ctx, id, base)
}

type reflectionLikeMutator struct {
	repo repository.ReflectionRepository
}

func (m reflectionLikeMutator) Increment(ctx context.Context, id string, base int) error {
	return m.repo.IncrementLikes(ctx, id, base)
}

func (m reflectionLikeMutator) Decrement(ctx context.Context, id string, base int) error {
	return m.repo.DecrementLikes(ctx, id, base)
}

type reflectionDislikeMutator struct {
	repo repository.ReflectionRepository
}

func (m reflectionDislikeMutator) Increment(ctx context.Context, id string, base int) error {
	return m.repo.IncrementDislikes(ctx, id, base)
}

func (m reflectionDislikeMutator) Decrement(ctx context.Context, id string, base int) error {
	return m.repo.DecrementDislikes(ctx, id, base)
}
