package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
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

// payoutScale is the number of decimal places payouts are floored to.
// Flooring guarantees the distributed total never exceeds the pool.
const payoutScale = 8

// SettlementService resolves bounties against an oracle verdict and turns
// pools into claims via the pari-mutuel formula. It also retires bounties
// whose deadline passed without a verdict, refunding their stakes.
type SettlementService struct {
	repo   *repository.Repository
	locker *BountyLocker
	ledger config.LedgerConfig
}

func NewSettlementService(repo *repository.Repository, locker *BountyLocker, ledgerCfg config.LedgerConfig) *SettlementService {
	return &SettlementService{
		repo:   repo,
		locker: locker,
		ledger: ledgerCfg,
	}
}

// Resolve settles a bounty with the oracle's verdict. At most one invocation
// distributes claims: the resolution flag is flipped by compare-and-set
// before any claim is written, so a duplicate oracle callback fails with
// ErrAlreadyResolved and writes nothing.
func (s *SettlementService) Resolve(ctx context.Context, bountyID uuid.UUID, isReal bool) ([]*models.Claim, error) {
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

	resolved, err := s.repo.MarkResolved(ctx, bountyID, isReal, time.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to mark bounty resolved: %w", err)
	}
	if !resolved {
		return nil, ledger.ErrAlreadyResolved
	}

	// Re-read after the flag flip: pool updates are guarded on is_resolved,
	// so these totals are the frozen settlement snapshot.
	bounty, err = s.repo.GetBountyByID(ctx, bountyID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload bounty: %w", err)
	}

	totalPool := bounty.TotalPool()
	winningPool := bounty.AIPool
	if isReal {
		winningPool = bounty.RealPool
	}

	bets, err := s.repo.GetBetsByBounty(ctx, bountyID)
	if err != nil {
		return nil, fmt.Errorf("failed to load bets: %w", err)
	}

	var claims []*models.Claim
	distributed := decimal.Zero

	for _, bet := range bets {
		if bet.IsReal != isReal {
			continue // losing side gets no claim and no refund
		}

		// Pari-mutuel: a winner's share of the winning pool, applied to the
		// entire pool. The zero-pool branch is defensive only; the loop never
		// visits a winner unless the winning pool is non-empty.
		payout := bet.Amount
		if winningPool.IsPositive() {
			payout = bet.Amount.Div(winningPool).Mul(totalPool).RoundFloor(payoutScale)
		}

		claim := &models.Claim{
			ID:            uuid.New(),
			UserID:        bet.UserID,
			BountyID:      bountyID,
			Amount:        payout,
			Token:         models.TokenAPT,
			ClaimType:     models.ClaimTypePayout,
			Status:        models.ClaimStatusPending,
			SettlementRef: newSettlementRef(),
			CreatedAt:     time.Now(),
		}

		if err := s.repo.CreateClaim(ctx, claim); err != nil {
			return claims, fmt.Errorf("failed to create payout claim for user %d: %w", bet.UserID, err)
		}

		distributed = distributed.Add(payout)
		claims = append(claims, claim)
	}

	// Reconciliation: flooring must keep the distributed total inside the pool
	if distributed.GreaterThan(totalPool) {
		log.Printf("ERROR: bounty %s distributed %s exceeds pool %s", bountyID, distributed.String(), totalPool.String())
	}

	bonus := &models.Claim{
		ID:            uuid.New(),
		UserID:        bounty.CreatorID,
		BountyID:      bountyID,
		Amount:        s.ledger.SettlementBonus,
		Token:         models.TokenPAT,
		ClaimType:     models.ClaimTypeCreatorBonus,
		Status:        models.ClaimStatusPending,
		SettlementRef: newSettlementRef(),
		CreatedAt:     time.Now(),
	}

	if err := s.repo.CreateClaim(ctx, bonus); err != nil {
		return claims, fmt.Errorf("failed to create creator bonus claim: %w", err)
	}
	claims = append(claims, bonus)

	log.Printf("Bounty %s resolved (isReal=%v): %d winner claims, %s APT distributed of %s pool",
		bountyID, isReal, len(claims)-1, distributed.String(), totalPool.String())

	return claims, nil
}

// ExpireBounty retires a pending bounty whose deadline passed with no
// verdict, issuing a refund claim per bet. Shares the resolution
// compare-and-set with Resolve, so expiry and settlement are mutually
// exclusive and each bounty is finalized at most once.
func (s *SettlementService) ExpireBounty(ctx context.Context, bountyID uuid.UUID) error {
	lock := s.locker.Acquire(bountyID)
	lock.Lock()
	defer lock.Unlock()

	expired, err := s.repo.MarkExpired(ctx, bountyID, time.Now())
	if err != nil {
		return fmt.Errorf("failed to mark bounty expired: %w", err)
	}
	if !expired {
		return ledger.ErrAlreadyResolved
	}

	bets, err := s.repo.GetBetsByBounty(ctx, bountyID)
	if err != nil {
		return fmt.Errorf("failed to load bets: %w", err)
	}

	for _, bet := range bets {
		claim := &models.Claim{
			ID:            uuid.New(),
			UserID:        bet.UserID,
			BountyID:      bountyID,
			Amount:        bet.Amount,
			Token:         models.TokenAPT,
			ClaimType:     models.ClaimTypeRefund,
			Status:        models.ClaimStatusPending,
			SettlementRef: newSettlementRef(),
			CreatedAt:     time.Now(),
		}

		if err := s.repo.CreateClaim(ctx, claim); err != nil {
			return fmt.Errorf("failed to create refund claim for user %d: %w", bet.UserID, err)
		}
	}

	log.Printf("Bounty %s expired: %d stakes refunded", bountyID, len(bets))
	return nil
}

// ExpireStale finds and retires every pending bounty past its deadline
func (s *SettlementService) ExpireStale(ctx context.Context) error {
	stale, err := s.repo.ListExpiredPending(ctx, time.Now())
	if err != nil {
		return fmt.Errorf("failed to list stale bounties: %w", err)
	}

	for _, bounty := range stale {
		if err := s.ExpireBounty(ctx, bounty.ID); err != nil {
			if errors.Is(err, ledger.ErrAlreadyResolved) {
				continue // lost the race to a concurrent resolve, nothing to do
			}
			log.Printf("Error expiring bounty %s: %v", bounty.ID, err)
		}
	}

	return nil
}

// newSettlementRef generates the opaque proof string attached to a claim,
// standing in for the distributor signature an on-chain settlement would carry
func newSettlementRef() string {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return fmt.Sprintf("ref-%d", time.Now().UnixNano())
	}
	return hex.EncodeToString(buf)
}
