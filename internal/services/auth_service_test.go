package services

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"deepfake-hunters/internal/repository"
)

func TestProcessWalletLogin(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewRepository(db)
	service := NewAuthService(repo, testLedgerConfig())
	ctx := context.Background()

	user, err := service.ProcessWalletLogin(ctx, "0xwallet1")
	if err != nil {
		t.Fatalf("ProcessWalletLogin failed: %v", err)
	}

	// Initial balance applied at account creation, not at first bet
	if !user.AptBalance.Equal(decimal.NewFromInt(1000)) {
		t.Errorf("expected initial balance 1000, got %s", user.AptBalance)
	}
	if !user.PatBalance.IsZero() {
		t.Errorf("expected zero reward points, got %s", user.PatBalance)
	}
	if user.Nickname == "" {
		t.Error("expected a generated nickname")
	}

	// Second login must return the same account
	again, err := service.ProcessWalletLogin(ctx, "0xwallet1")
	if err != nil {
		t.Fatalf("second ProcessWalletLogin failed: %v", err)
	}
	if again.ID != user.ID {
		t.Errorf("login created a duplicate account: %d vs %d", again.ID, user.ID)
	}
}
