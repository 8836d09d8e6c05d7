// Package wire provides dependency injection for the cadet tracker.
// It creates singleton services with lazy initialization.
package wire

import (
	"log"
	"sync"

	"github.com/example/cadet-tracker/internal/adapters/sqlite"
	"github.com/example/cadet-tracker/internal/app"
	"github.com/example/cadet-tracker/internal/config"
	"github.com/example/cadet-tracker/internal/core/inspection"
	"github.com/example/cadet-tracker/internal/db"
	"github.com/example/cadet-tracker/internal/ports/primary"
)

var (
	cadetService       primary.CadetService
	rankService        primary.RankService
	requirementService primary.RequirementService
	promotionService   primary.PromotionService
	inspectionService  primary.InspectionService
	positionService    primary.PositionService
	reportService      primary.ReportService
	auditService       primary.AuditService
	loadedConfig       *config.Config
	once               sync.Once
)

// CadetService returns the singleton CadetService instance.
func CadetService() primary.CadetService {
	once.Do(initServices)
	return cadetService
}

// RankService returns the singleton RankService instance.
func RankService() primary.RankService {
	once.Do(initServices)
	return rankService
}

// RequirementService returns the singleton RequirementService instance.
func RequirementService() primary.RequirementService {
	once.Do(initServices)
	return requirementService
}

// PromotionService returns the singleton PromotionService instance.
func PromotionService() primary.PromotionService {
	once.Do(initServices)
	return promotionService
}

// InspectionService returns the singleton InspectionService instance.
func InspectionService() primary.InspectionService {
	once.Do(initServices)
	return inspectionService
}

// PositionService returns the singleton PositionService instance.
func PositionService() primary.PositionService {
	once.Do(initServices)
	return positionService
}

// ReportService returns the singleton ReportService instance.
func ReportService() primary.ReportService {
	once.Do(initServices)
	return reportService
}

// AuditService returns the singleton AuditService instance.
func AuditService() primary.AuditService {
	once.Do(initServices)
	return auditService
}

// Config returns the loaded configuration.
func Config() *config.Config {
	once.Do(initServices)
	return loadedConfig
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	// Load configuration; a missing config file yields defaults
	configDir, err := config.DefaultConfigDir()
	if err != nil {
		log.Fatalf("failed to resolve config directory: %v", err)
	}
	cfg, err := config.LoadConfig(configDir)
	if err != nil {
		// No config yet; run on defaults until `cadet init` writes one
		cfg = &config.Config{}
	}
	loadedConfig = cfg
	if cfg.DatabasePath != "" {
		db.SetDBPath(cfg.DatabasePath)
	}

	// Get database connection
	database, err := db.GetDB()
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	// Resolve schema capabilities once; repositories never re-probe
	caps, err := db.ResolveCapabilities(database)
	if err != nil {
		log.Fatalf("failed to resolve schema capabilities: %v", err)
	}

	catalog, err := config.ResolveChecklistCatalog(cfg)
	if err != nil {
		log.Fatalf("failed to load checklist catalog: %v", err)
	}
	engine := inspection.NewEngine(catalog)

	// Create repository adapters (secondary ports)
	cadetRepo := sqlite.NewCadetRepository(database)
	rankRepo := sqlite.NewRankRepository(database)
	requirementRepo := sqlite.NewRequirementRepository(database)
	completionRepo := sqlite.NewCompletionRepository(database)
	inspectionRepo := sqlite.NewInspectionRepository(database, caps.ItemBreakdown)
	positionRepo := sqlite.NewPositionRepository(database)
	reportRepo := sqlite.NewReportRepository(database)
	auditRepo := sqlite.NewAuditLogRepository(database)
	auditWriter := sqlite.NewAuditWriter(auditRepo)

	// Create services (primary ports implementation)
	cadetService = app.NewCadetService(cadetRepo, auditWriter)
	rankService = app.NewRankService(cadetRepo, rankRepo, auditWriter)
	requirementService = app.NewRequirementService(requirementRepo, rankRepo, auditWriter)
	promotionService = app.NewPromotionService(cadetRepo, rankRepo, requirementRepo, completionRepo, auditWriter)
	inspectionService = app.NewInspectionService(engine, cadetRepo, inspectionRepo, auditWriter)
	positionService = app.NewPositionService(cadetRepo, positionRepo, auditWriter)
	reportService = app.NewReportService(cadetRepo, reportRepo, auditWriter)
	auditService = app.NewAuditService(auditRepo)
}
