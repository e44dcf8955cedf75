package main

import (
	"os"

	"github.com/prajwalb/sameeksha/config"
	"github.com/prajwalb/sameeksha/database"
	"github.com/prajwalb/sameeksha/internal/logger"
	"github.com/prajwalb/sameeksha/internal/repository"
	"github.com/prajwalb/sameeksha/internal/service"
	"github.com/rs/zerolog/log"
)

// Offline maintenance job: collapse duplicate drafts across all users and
// report what was removed. Safe to run while the API is serving; the routine
// only ever deletes all-but-the-newest draft per user.
func main() {
	logger.Init()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}

	db, err := database.NewDatabase(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open database")
	}

	responseService := service.NewResponseService(repository.NewResponseRepository(db))

	report, err := responseService.CleanupAllDuplicateDrafts()
	if err != nil {
		log.Error().Err(err).Msg("Duplicate-draft cleanup failed")
		os.Exit(1)
	}

	log.Info().
		Int("cleaned_count", report.CleanedCount).
		Int("remaining_drafts", report.RemainingDrafts).
		Int("draft_users", report.DraftUsers).
		Msg("Duplicate-draft cleanup completed")
}
