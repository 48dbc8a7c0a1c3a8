package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"deepfake-hunters/internal/auth"
	"deepfake-hunters/internal/models"
	"deepfake-hunters/internal/services"
)

type BountyHandler struct {
	bountyService     *services.BountyService
	stakingService    *services.StakingService
	settlementService *services.SettlementService
	analysisService   *services.AnalysisService
}

func NewBountyHandler(
	bountyService *services.BountyService,
	stakingService *services.StakingService,
	settlementService *services.SettlementService,
	analysisService *services.AnalysisService,
) *BountyHandler {
	return &BountyHandler{
		bountyService:     bountyService,
		stakingService:    stakingService,
		settlementService: settlementService,
		analysisService:   analysisService,
	}
}

// CreateBounty posts a new bounty
// POST /api/bounties
func (h *BountyHandler) CreateBounty(c *gin.Context) {
	creatorID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req models.CreateBountyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	bounty, err := h.bountyService.CreateBounty(c.Request.Context(), creatorID, req.ContentURL)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, bounty)
}

// ListBounties returns the most recent bounties
// GET /api/bounties
func (h *BountyHandler) ListBounties(c *gin.Context) {
	limit := 0
	if limitStr := c.Query("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil {
			limit = l
		}
	}

	bounties, err := h.bountyService.ListBounties(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list bounties"})
		return
	}

	c.JSON(http.StatusOK, bounties)
}

// GetBounty retrieves a bounty by ID
// GET /api/bounties/:id
func (h *BountyHandler) GetBounty(c *gin.Context) {
	bountyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid bounty id"})
		return
	}

	bounty, err := h.bountyService.GetBounty(c.Request.Context(), bountyID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, bounty)
}

// PlaceBet stakes on one side of a bounty
// POST /api/bounties/:id/bets
func (h *BountyHandler) PlaceBet(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	bountyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid bounty id"})
		return
	}

	var req models.PlaceBetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	bet, err := h.stakingService.PlaceBet(c.Request.Context(), bountyID, userID, req.Amount, *req.IsReal)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, bet)
}

// ResolveBounty settles a bounty with the oracle verdict. Routed behind the
// oracle allow-list middleware.
// POST /api/bounties/:id/resolve
func (h *BountyHandler) ResolveBounty(c *gin.Context) {
	bountyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid bounty id"})
		return
	}

	var req models.ResolveBountyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	claims, err := h.settlementService.Resolve(c.Request.Context(), bountyID, *req.IsReal)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"bounty_id": bountyID,
		"claims":    claims,
	})
}

// AnalyzeBounty runs the advisory authenticity analysis for a bounty's content
// POST /api/bounties/:id/analyze
func (h *BountyHandler) AnalyzeBounty(c *gin.Context) {
	bountyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid bounty id"})
		return
	}

	bounty, err := h.bountyService.GetBounty(c.Request.Context(), bountyID)
	if err != nil {
		respondError(c, err)
		return
	}

	result := h.analysisService.Analyze(bounty.ContentURL)
	c.JSON(http.StatusOK, result)
}
