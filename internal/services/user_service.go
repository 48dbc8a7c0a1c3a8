package services

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"deepfake-hunters/internal/ledger"
	"deepfake-hunters/internal/models"
	"deepfake-hunters/internal/repository"
)

// UserService handles user-related business logic
type UserService struct {
	repo *repository.Repository
}

// NewUserService creates a new UserService
func NewUserService(repo *repository.Repository) *UserService {
	return &UserService{repo: repo}
}

// GetUserByID retrieves a user by ID
func (s *UserService) GetUserByID(ctx context.Context, userID uint) (*models.User, error) {
	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ledger.ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

// GetProfile retrieves a user with their ledger statistics
func (s *UserService) GetProfile(ctx context.Context, userID uint) (*models.UserProfile, error) {
	user, err := s.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	bountiesCreated, err := s.repo.CountBountiesByCreator(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to count bounties: %w", err)
	}

	betsPlaced, err := s.repo.CountBetsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to count bets: %w", err)
	}

	claimsWon, err := s.repo.CountPayoutClaimsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to count claims: %w", err)
	}

	return &models.UserProfile{
		User:            *user,
		BountiesCreated: bountiesCreated,
		BetsPlaced:      betsPlaced,
		ClaimsWon:       claimsWon,
	}, nil
}
