package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"deepfake-hunters/internal/config"
	"deepfake-hunters/internal/ledger"
	"deepfake-hunters/internal/models"
	"deepfake-hunters/internal/repository"
)

// defaultListLimit bounds the bounty feed
const defaultListLimit = 50

// BountyService manages the bounty lifecycle: creation, reads and the
// deadline/status rules around the pending state.
type BountyService struct {
	repo   *repository.Repository
	ledger config.LedgerConfig
}

func NewBountyService(repo *repository.Repository, ledgerCfg config.LedgerConfig) *BountyService {
	return &BountyService{
		repo:   repo,
		ledger: ledgerCfg,
	}
}

// CreateBounty posts a new bounty for the given content reference. The
// content URL is opaque to the ledger: stored verbatim, never dereferenced.
// Posting credits the creator's reward-point balance.
func (s *BountyService) CreateBounty(ctx context.Context, creatorID uint, contentURL string) (*models.Bounty, error) {
	if creatorID == 0 {
		return nil, ledger.ErrUnauthenticated
	}

	now := time.Now()
	bounty := &models.Bounty{
		ID:         uuid.New(),
		ContentURL: contentURL,
		CreatorID:  creatorID,
		Status:     models.BountyStatusPending,
		RealPool:   decimal.Zero,
		AIPool:     decimal.Zero,
		IsResolved: false,
		Deadline:   now.Add(s.ledger.BountyWindow),
		CreatedAt:  now,
	}

	if err := s.repo.CreateBounty(ctx, bounty); err != nil {
		return nil, fmt.Errorf("failed to create bounty: %w", err)
	}

	// Creation bonus in reward points
	if err := s.repo.CreditBalance(ctx, creatorID, models.TokenPAT, s.ledger.CreationBonus); err != nil {
		log.Printf("Warning: failed to credit creation bonus for user %d: %v", creatorID, err)
	}

	log.Printf("Bounty %s created by user %d (deadline %s)", bounty.ID, creatorID, bounty.Deadline.Format(time.RFC3339))

	return bounty, nil
}

// GetBounty retrieves a bounty by ID
func (s *BountyService) GetBounty(ctx context.Context, bountyID uuid.UUID) (*models.Bounty, error) {
	bounty, err := s.repo.GetBountyByID(ctx, bountyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ledger.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get bounty: %w", err)
	}
	return bounty, nil
}

// ListBounties returns the most recent bounties, newest first, capped at the
// default feed limit
func (s *BountyService) ListBounties(ctx context.Context, limit int) ([]*models.Bounty, error) {
	if limit <= 0 || limit > defaultListLimit {
		limit = defaultListLimit
	}
	return s.repo.ListBounties(ctx, limit)
}
