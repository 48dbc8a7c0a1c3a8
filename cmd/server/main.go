package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"deepfake-hunters/internal/auth"
	"deepfake-hunters/internal/config"
	"deepfake-hunters/internal/database"
	"deepfake-hunters/internal/handlers"
	"deepfake-hunters/internal/jobs"
	"deepfake-hunters/internal/repository"
	"deepfake-hunters/internal/services"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize JWT
	auth.InitJWT(cfg.App.JWTSecret)

	// Connect to database
	if err := database.Connect(cfg.GetDSN()); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.AutoMigrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize repository (ledger store)
	repo := repository.NewRepository(database.GetDB())

	// Per-bounty lock shared by staking and settlement
	locker := services.NewBountyLocker()

	// Initialize services
	authService := services.NewAuthService(repo, cfg.Ledger)
	userService := services.NewUserService(repo)
	bountyService := services.NewBountyService(repo, cfg.Ledger)
	stakingService := services.NewStakingService(repo, locker)
	settlementService := services.NewSettlementService(repo, locker, cfg.Ledger)
	claimService := services.NewClaimService(repo)
	analysisService := services.NewAnalysisService()

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, userService)
	userHandler := handlers.NewUserHandler(userService)
	bountyHandler := handlers.NewBountyHandler(bountyService, stakingService, settlementService, analysisService)
	claimHandler := handlers.NewClaimHandler(claimService)

	// Start deadline sweeper
	sweeper := jobs.NewDeadlineSweeper(settlementService)
	sweeper.Start(cfg.Ledger.SweepInterval)

	// Set up Gin router
	router := gin.Default()

	// CORS middleware
	allowedOrigins := []string{
		"http://localhost:3000", // Local development
		"http://localhost:5173", // Vite dev server
		"http://127.0.0.1:3000",
		"http://127.0.0.1:5173",
	}
	if frontendURL := os.Getenv("FRONTEND_URL"); frontendURL != "" {
		allowedOrigins = append(allowedOrigins, frontendURL)
	}

	router.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// Authentication routes (public)
	authRoutes := router.Group("/auth")
	{
		authRoutes.POST("/wallet", authHandler.WalletLogin)
	}

	// Authenticated /auth/me route
	authProtected := router.Group("/auth")
	authProtected.Use(auth.AuthMiddleware())
	{
		authProtected.GET("/me", authHandler.GetMe)
	}

	// Public bounty reads
	router.GET("/api/bounties", bountyHandler.ListBounties)
	router.GET("/api/bounties/:id", bountyHandler.GetBounty)

	// API routes (protected)
	api := router.Group("/api")
	api.Use(auth.AuthMiddleware())
	{
		// Bounty mutations
		api.POST("/bounties", bountyHandler.CreateBounty)
		api.POST("/bounties/:id/bets", bountyHandler.PlaceBet)
		api.POST("/bounties/:id/analyze", bountyHandler.AnalyzeBounty)

		// Oracle-only resolution
		oracle := api.Group("")
		oracle.Use(auth.OracleMiddleware(cfg.App.OracleWallets))
		{
			oracle.POST("/bounties/:id/resolve", bountyHandler.ResolveBounty)
		}

		// Claim endpoints
		api.GET("/claims", claimHandler.ListClaims)
		api.POST("/claims/:id/claim", claimHandler.MarkClaimed)

		// User endpoints
		api.GET("/user/profile", userHandler.GetProfile)
	}

	// Start server
	addr := ":" + cfg.Server.Port
	log.Printf("Starting server on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
