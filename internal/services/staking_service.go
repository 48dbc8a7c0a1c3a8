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

	"deepfake-hunters/internal/ledger"
	"deepfake-hunters/internal/models"
	"deepfake-hunters/internal/repository"
)

// StakingService validates and records bets against open bounties, keeping
// pool totals and user balances in step with the bet records.
type StakingService struct {
	repo   *repository.Repository
	locker *BountyLocker
}

func NewStakingService(repo *repository.Repository, locker *BountyLocker) *StakingService {
	return &StakingService{
		repo:   repo,
		locker: locker,
	}
}

// PlaceBet stakes amount on one side of a pending bounty. Preconditions are
// checked in order: identity, bounty existence, resolution state, deadline,
// amount, funds. Runs under the per-bounty lock so it cannot interleave with
// settlement of the same bounty.
func (s *StakingService) PlaceBet(ctx context.Context, bountyID uuid.UUID, userID uint, amount decimal.Decimal, isReal bool) (*models.Bet, error) {
	if userID == 0 {
		return nil, ledger.ErrUnauthenticated
	}

	lock := s.locker.Acquire(bountyID)
	lock.Lock()
	defer lock.Unlock()

	bounty, err := s.repo.GetBountyByID(ctx, bountyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ledger.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get bounty: %w", err)
	}

	if bounty.IsResolved {
		return nil, ledger.ErrAlreadyResolved
	}

	if time.Now().After(bounty.Deadline) {
		return nil, ledger.ErrBountyClosed
	}

	if !amount.IsPositive() {
		return nil, ledger.ErrInvalidAmount
	}

	if _, err := s.repo.GetUserByID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ledger.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	// Debit first: a failed debit leaves no trace, a failed insert below is
	// compensated by crediting back.
	debited, err := s.repo.DebitStakeBalance(ctx, userID, amount)
	if err != nil {
		return nil, fmt.Errorf("failed to debit balance: %w", err)
	}
	if !debited {
		return nil, ledger.ErrInsufficientFunds
	}

	bet := &models.Bet{
		ID:        uuid.New(),
		BountyID:  bountyID,
		UserID:    userID,
		Amount:    amount,
		IsReal:    isReal,
		CreatedAt: time.Now(),
	}

	if err := s.repo.CreateBet(ctx, bet); err != nil {
		if creditErr := s.repo.CreditBalance(ctx, userID, models.TokenAPT, amount); creditErr != nil {
			log.Printf("Warning: failed to refund user %d after bet insert failure: %v", userID, creditErr)
		}
		return nil, fmt.Errorf("failed to record bet: %w", err)
	}

	counted, err := s.repo.IncrementPool(ctx, bountyID, isReal, amount)
	if err != nil {
		return nil, fmt.Errorf("failed to update pool: %w", err)
	}
	if !counted {
		// The bounty was resolved by another process between our read and the
		// guarded pool update. Roll the bet back rather than leave it
		// half-counted.
		if delErr := s.repo.DeleteBet(ctx, bet.ID); delErr != nil {
			log.Printf("Warning: failed to remove uncounted bet %s: %v", bet.ID, delErr)
		}
		if creditErr := s.repo.CreditBalance(ctx, userID, models.TokenAPT, amount); creditErr != nil {
			log.Printf("Warning: failed to refund user %d after losing resolve race: %v", userID, creditErr)
		}
		return nil, ledger.ErrAlreadyResolved
	}

	side := "ai"
	if isReal {
		side = "real"
	}
	log.Printf("Bet %s: user %d staked %s APT on %s for bounty %s", bet.ID, userID, amount.String(), side, bountyID)

	return bet, nil
}
