package utils

import (
	"testing"

	"parqueaventura/config"
	"parqueaventura/database"
	"parqueaventura/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) {
	t.Helper()

	config.AppConfig = &config.Config{
		DBDriver: "sqlite",
		DBName:   "file::memory:?cache=shared",
	}
	database.ConnectDb()

	db := database.Database.Db
	db.Exec("DELETE FROM me_gusta")
	db.Exec("DELETE FROM visits")
	db.Exec("DELETE FROM users")
}

func TestSweepOrphanedLikes(t *testing.T) {
	setupTestDB(t)
	db := database.Database.Db

	user := models.User{FirstName: "Alice", LastName: "Smith", Email: "alice@example.com", Password: "digest"}
	require.NoError(t, db.Create(&user).Error)

	visita := models.Visit{Park: "Canyon", Rating: 5, VisitDate: "2026-08-01", Details: "Great", VisitorID: user.ID}
	require.NoError(t, db.Create(&visita).Error)

	valid := models.Like{VisitID: visita.ID, UserID: user.ID}
	require.NoError(t, db.Create(&valid).Error)

	orphan := models.Like{VisitID: visita.ID + 999, UserID: user.ID}
	require.NoError(t, db.Create(&orphan).Error)

	SweepOrphanedLikes()

	var count int64
	db.Model(&models.Like{}).Count(&count)
	assert.EqualValues(t, 1, count)

	var remaining models.Like
	require.NoError(t, db.First(&remaining).Error)
	assert.Equal(t, visita.ID, remaining.VisitID)
}
