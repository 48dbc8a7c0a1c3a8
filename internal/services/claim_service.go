package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"deepfake-hunters/internal/ledger"
	"deepfake-hunters/internal/models"
	"deepfake-hunters/internal/repository"
)

// ClaimService exposes pending claims per user and finalizes them once an
// external transaction confirms.
type ClaimService struct {
	repo *repository.Repository
}

func NewClaimService(repo *repository.Repository) *ClaimService {
	return &ClaimService{repo: repo}
}

// ListClaims returns the caller's pending claims, newest first
func (s *ClaimService) ListClaims(ctx context.Context, userID uint) ([]*models.Claim, error) {
	if userID == 0 {
		return nil, ledger.ErrUnauthenticated
	}
	return s.repo.ListPendingClaimsByUser(ctx, userID)
}

// MarkClaimed finalizes a claim against an external transaction reference.
// The pending -> claimed transition is a compare-and-set, so a duplicate
// confirmation callback fails with ErrAlreadyClaimed and credits nothing.
func (s *ClaimService) MarkClaimed(ctx context.Context, claimID uuid.UUID, userID uint, txHash string) (*models.Claim, error) {
	if userID == 0 {
		return nil, ledger.ErrUnauthenticated
	}

	claim, err := s.repo.GetClaimByID(ctx, claimID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ledger.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get claim: %w", err)
	}

	// A claim is only visible to its owner
	if claim.UserID != userID {
		return nil, ledger.ErrNotFound
	}

	now := time.Now()
	claimed, err := s.repo.MarkClaimed(ctx, claimID, txHash, now)
	if err != nil {
		return nil, fmt.Errorf("failed to mark claim: %w", err)
	}
	if !claimed {
		return nil, ledger.ErrAlreadyClaimed
	}

	// Credit the tracked balance alongside the external transfer so the
	// internal ledger stays consistent with what the user was paid.
	if err := s.repo.CreditBalance(ctx, userID, claim.Token, claim.Amount); err != nil {
		log.Printf("Warning: failed to credit claimed amount for user %d, claim %s: %v", userID, claimID, err)
	}

	claim.Status = models.ClaimStatusClaimed
	claim.TxHash = &txHash
	claim.ClaimedAt = &now

	log.Printf("Claim %s finalized by user %d: %s %s (tx %s)", claimID, userID, claim.Amount.String(), claim.Token, txHash)

	return claim, nil
}
