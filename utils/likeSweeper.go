package utils

import (
	"log"

	"parqueaventura/database"
	"parqueaventura/models"

	"github.com/robfig/cron/v3"
)

// InitializeLikeSweeper schedules the daily cleanup of likes whose visit
// no longer exists.
func InitializeLikeSweeper() {
	log.Println("[LIKE-SWEEPER] Initializing like sweeper...")

	c := cron.New()

	// Run daily at 3 AM
	c.AddFunc("0 3 * * *", func() {
		log.Println("[LIKE-SWEEPER] Running daily orphaned-like sweep...")
		SweepOrphanedLikes()
	})

	c.Start()
	log.Println("[LIKE-SWEEPER] Like sweeper started - runs daily at 3 AM")
}

// SweepOrphanedLikes deletes likes that reference a missing visit. Visit
// deletion removes its likes inline; this sweep covers rows left behind by
// interrupted deletes or manual store edits.
func SweepOrphanedLikes() {
	db := database.Database.Db

	result := db.
		Where("visit_id NOT IN (?)", db.Model(&models.Visit{}).Select("id")).
		Delete(&models.Like{})
	if result.Error != nil {
		log.Printf("[LIKE-SWEEPER] Error sweeping orphaned likes: %v", result.Error)
		return
	}

	if result.RowsAffected > 0 {
		log.Printf("[LIKE-SWEEPER] Removed %d orphaned likes", result.RowsAffected)
	}
}
