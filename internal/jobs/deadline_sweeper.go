// Package jobs holds the background workers of the ledger service.
package jobs

import (
	"context"
	"log"
	"time"

	"deepfake-hunters/internal/services"
)

// DeadlineSweeper periodically expires pending bounties whose betting window
// elapsed without an oracle verdict, refunding every stake.
type DeadlineSweeper struct {
	settlement *services.SettlementService
	stop       chan struct{}
}

func NewDeadlineSweeper(settlement *services.SettlementService) *DeadlineSweeper {
	return &DeadlineSweeper{
		settlement: settlement,
		stop:       make(chan struct{}),
	}
}

// Start runs the sweep loop on the given interval until Stop is called
func (s *DeadlineSweeper) Start(interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		// Sweep once on startup to catch bounties that went stale while
		// the service was down.
		s.sweep()

		for {
			select {
			case <-ticker.C:
				s.sweep()
			case <-s.stop:
				return
			}
		}
	}()

	log.Printf("Deadline sweeper started (interval %s)", interval)
}

// Stop terminates the sweep loop
func (s *DeadlineSweeper) Stop() {
	close(s.stop)
}

func (s *DeadlineSweeper) sweep() {
	if err := s.settlement.ExpireStale(context.Background()); err != nil {
		log.Printf("Deadline sweep failed: %v", err)
	}
}
