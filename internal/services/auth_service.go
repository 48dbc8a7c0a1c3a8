package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"deepfake-hunters/internal/config"
	"deepfake-hunters/internal/models"
	"deepfake-hunters/internal/repository"
	"deepfake-hunters/internal/utils"
)

// AuthService handles authentication business logic
type AuthService struct {
	repo   *repository.Repository
	ledger config.LedgerConfig
}

// NewAuthService creates a new AuthService
func NewAuthService(repo *repository.Repository, ledger config.LedgerConfig) *AuthService {
	return &AuthService{repo: repo, ledger: ledger}
}

// ProcessWalletLogin finds or creates a user by wallet address. New accounts
// receive the configured initial stake balance here, at creation time, so no
// later code path needs a lazy-init fallback.
func (s *AuthService) ProcessWalletLogin(ctx context.Context, walletAddress string) (*models.User, error) {
	user, err := s.repo.GetUserByWallet(ctx, walletAddress)
	if err == nil {
		log.Printf("User logged in: wallet=%s (ID: %d)", walletAddress, user.ID)
		return user, nil
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("database error: %w", err)
	}

	// New user — create account
	nickname, err := utils.GenerateNickname()
	if err != nil {
		return nil, fmt.Errorf("failed to generate nickname: %w", err)
	}

	newUser := &models.User{
		WalletAddress: walletAddress,
		Nickname:      nickname,
		AptBalance:    s.ledger.InitialBalance,
		PatBalance:    decimal.Zero,
	}

	if err := s.repo.CreateUser(ctx, newUser); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	log.Printf("New user created: wallet=%s (ID: %d, balance: %s APT)",
		walletAddress, newUser.ID, s.ledger.InitialBalance.String())

	return newUser, nil
}
