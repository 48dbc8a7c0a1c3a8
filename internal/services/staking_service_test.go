package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"deepfake-hunters/internal/ledger"
	"deepfake-hunters/internal/models"
	"deepfake-hunters/internal/repository"
)

func newStakingFixture(t *testing.T) (*repository.Repository, *BountyService, *StakingService, *SettlementService) {
	t.Helper()

	db := setupTestDB(t)
	repo := repository.NewRepository(db)
	locker := NewBountyLocker()
	cfg := testLedgerConfig()

	return repo,
		NewBountyService(repo, cfg),
		NewStakingService(repo, locker),
		NewSettlementService(repo, locker, cfg)
}

func TestPlaceBet(t *testing.T) {
	repo, bounties, staking, _ := newStakingFixture(t)
	ctx := context.Background()

	creator := createTestUser(t, repo, "wallet-creator", 1000)
	bettor := createTestUser(t, repo, "wallet-bettor", 500)

	bounty, err := bounties.CreateBounty(ctx, creator.ID, "ipfs://QmExample")
	if err != nil {
		t.Fatalf("CreateBounty failed: %v", err)
	}

	bet, err := staking.PlaceBet(ctx, bounty.ID, bettor.ID, decimal.NewFromInt(100), true)
	if err != nil {
		t.Fatalf("PlaceBet failed: %v", err)
	}

	if !bet.Amount.Equal(decimal.NewFromInt(100)) || !bet.IsReal {
		t.Errorf("bet recorded wrong: amount=%s isReal=%v", bet.Amount, bet.IsReal)
	}

	refreshed, err := repo.GetBountyByID(ctx, bounty.ID)
	if err != nil {
		t.Fatalf("failed to reload bounty: %v", err)
	}
	if !refreshed.RealPool.Equal(decimal.NewFromInt(100)) {
		t.Errorf("expected real pool 100, got %s", refreshed.RealPool)
	}
	if !refreshed.AIPool.IsZero() {
		t.Errorf("expected ai pool 0, got %s", refreshed.AIPool)
	}

	user, err := repo.GetUserByID(ctx, bettor.ID)
	if err != nil {
		t.Fatalf("failed to reload bettor: %v", err)
	}
	if !user.AptBalance.Equal(decimal.NewFromInt(400)) {
		t.Errorf("expected balance 400 after debit, got %s", user.AptBalance)
	}
}

func TestPlaceBetPreconditions(t *testing.T) {
	repo, bounties, staking, _ := newStakingFixture(t)
	ctx := context.Background()

	creator := createTestUser(t, repo, "wallet-creator", 1000)
	bettor := createTestUser(t, repo, "wallet-bettor", 50)

	bounty, err := bounties.CreateBounty(ctx, creator.ID, "ipfs://QmExample")
	if err != nil {
		t.Fatalf("CreateBounty failed: %v", err)
	}

	// No identity
	if _, err := staking.PlaceBet(ctx, bounty.ID, 0, decimal.NewFromInt(10), true); !errors.Is(err, ledger.ErrUnauthenticated) {
		t.Errorf("expected ErrUnauthenticated, got %v", err)
	}

	// Unknown bounty
	if _, err := staking.PlaceBet(ctx, uuid.New(), bettor.ID, decimal.NewFromInt(10), true); !errors.Is(err, ledger.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}

	// Zero amount
	if _, err := staking.PlaceBet(ctx, bounty.ID, bettor.ID, decimal.Zero, true); !errors.Is(err, ledger.ErrInvalidAmount) {
		t.Errorf("expected ErrInvalidAmount for zero stake, got %v", err)
	}

	// Negative amount
	if _, err := staking.PlaceBet(ctx, bounty.ID, bettor.ID, decimal.NewFromInt(-5), true); !errors.Is(err, ledger.ErrInvalidAmount) {
		t.Errorf("expected ErrInvalidAmount for negative stake, got %v", err)
	}

	// Stake above balance
	if _, err := staking.PlaceBet(ctx, bounty.ID, bettor.ID, decimal.NewFromInt(100), true); !errors.Is(err, ledger.ErrInsufficientFunds) {
		t.Errorf("expected ErrInsufficientFunds, got %v", err)
	}

	// Balance untouched by the failures above
	user, err := repo.GetUserByID(ctx, bettor.ID)
	if err != nil {
		t.Fatalf("failed to reload bettor: %v", err)
	}
	if !user.AptBalance.Equal(decimal.NewFromInt(50)) {
		t.Errorf("expected balance 50, got %s", user.AptBalance)
	}
}

func TestPlaceBetAfterResolveFails(t *testing.T) {
	repo, bounties, staking, settlement := newStakingFixture(t)
	ctx := context.Background()

	creator := createTestUser(t, repo, "wallet-creator", 1000)
	bettor := createTestUser(t, repo, "wallet-bettor", 500)

	bounty, err := bounties.CreateBounty(ctx, creator.ID, "ipfs://QmExample")
	if err != nil {
		t.Fatalf("CreateBounty failed: %v", err)
	}

	if _, err := staking.PlaceBet(ctx, bounty.ID, bettor.ID, decimal.NewFromInt(100), true); err != nil {
		t.Fatalf("PlaceBet failed: %v", err)
	}

	if _, err := settlement.Resolve(ctx, bounty.ID, true); err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	if _, err := staking.PlaceBet(ctx, bounty.ID, bettor.ID, decimal.NewFromInt(100), false); !errors.Is(err, ledger.ErrAlreadyResolved) {
		t.Fatalf("expected ErrAlreadyResolved, got %v", err)
	}

	// Pools frozen after resolution
	refreshed, err := repo.GetBountyByID(ctx, bounty.ID)
	if err != nil {
		t.Fatalf("failed to reload bounty: %v", err)
	}
	if !refreshed.RealPool.Equal(decimal.NewFromInt(100)) || !refreshed.AIPool.IsZero() {
		t.Errorf("pools moved after resolution: real=%s ai=%s", refreshed.RealPool, refreshed.AIPool)
	}
}

func TestPlaceBetPastDeadlineFails(t *testing.T) {
	repo, _, staking, _ := newStakingFixture(t)
	ctx := context.Background()

	bettor := createTestUser(t, repo, "wallet-bettor", 500)

	bounty := &models.Bounty{
		ID:         uuid.New(),
		ContentURL: "ipfs://QmStale",
		CreatorID:  1,
		Status:     models.BountyStatusPending,
		Deadline:   time.Now().Add(-time.Hour),
		CreatedAt:  time.Now().Add(-25 * time.Hour),
	}
	if err := repo.CreateBounty(ctx, bounty); err != nil {
		t.Fatalf("failed to seed bounty: %v", err)
	}

	if _, err := staking.PlaceBet(ctx, bounty.ID, bettor.ID, decimal.NewFromInt(10), true); !errors.Is(err, ledger.ErrBountyClosed) {
		t.Fatalf("expected ErrBountyClosed, got %v", err)
	}
}
