package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"deepfake-hunters/internal/ledger"
	"deepfake-hunters/internal/models"
	"deepfake-hunters/internal/repository"
)

func TestCreateBounty(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewRepository(db)
	service := NewBountyService(repo, testLedgerConfig())
	ctx := context.Background()

	creator := createTestUser(t, repo, "wallet-creator", 1000)

	before := time.Now()
	bounty, err := service.CreateBounty(ctx, creator.ID, "ipfs://QmExample")
	if err != nil {
		t.Fatalf("CreateBounty failed: %v", err)
	}

	if bounty.Status != models.BountyStatusPending {
		t.Errorf("expected status pending, got %s", bounty.Status)
	}
	if bounty.IsResolved {
		t.Error("new bounty must not be resolved")
	}
	if !bounty.RealPool.IsZero() || !bounty.AIPool.IsZero() {
		t.Errorf("expected zero pools, got real=%s ai=%s", bounty.RealPool, bounty.AIPool)
	}
	if bounty.ContentURL != "ipfs://QmExample" {
		t.Errorf("content URL not stored verbatim: %s", bounty.ContentURL)
	}

	wantDeadline := before.Add(24 * time.Hour)
	if bounty.Deadline.Before(wantDeadline.Add(-time.Minute)) || bounty.Deadline.After(wantDeadline.Add(time.Minute)) {
		t.Errorf("expected deadline ~24h out, got %s", bounty.Deadline)
	}

	// Creation bonus credited in reward points
	refreshed, err := repo.GetUserByID(ctx, creator.ID)
	if err != nil {
		t.Fatalf("failed to reload creator: %v", err)
	}
	if !refreshed.PatBalance.Equal(testLedgerConfig().CreationBonus) {
		t.Errorf("expected PAT balance %s, got %s", testLedgerConfig().CreationBonus, refreshed.PatBalance)
	}
}

func TestCreateBountyUnauthenticated(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewRepository(db)
	service := NewBountyService(repo, testLedgerConfig())

	_, err := service.CreateBounty(context.Background(), 0, "ipfs://QmExample")
	if !errors.Is(err, ledger.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}

func TestGetBountyNotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewRepository(db)
	service := NewBountyService(repo, testLedgerConfig())

	_, err := service.GetBounty(context.Background(), uuid.New())
	if !errors.Is(err, ledger.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListBountiesNewestFirst(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewRepository(db)
	service := NewBountyService(repo, testLedgerConfig())
	ctx := context.Background()

	base := time.Now().Add(-time.Hour)
	var ids []uuid.UUID
	for i := 0; i < 3; i++ {
		bounty := &models.Bounty{
			ID:         uuid.New(),
			ContentURL: "ipfs://content",
			CreatorID:  1,
			Status:     models.BountyStatusPending,
			Deadline:   base.Add(24 * time.Hour),
			CreatedAt:  base.Add(time.Duration(i) * time.Minute),
		}
		if err := repo.CreateBounty(ctx, bounty); err != nil {
			t.Fatalf("failed to seed bounty: %v", err)
		}
		ids = append(ids, bounty.ID)
	}

	bounties, err := service.ListBounties(ctx, 2)
	if err != nil {
		t.Fatalf("ListBounties failed: %v", err)
	}

	if len(bounties) != 2 {
		t.Fatalf("expected 2 bounties, got %d", len(bounties))
	}
	if bounties[0].ID != ids[2] || bounties[1].ID != ids[1] {
		t.Error("bounties not ordered newest first")
	}
}
