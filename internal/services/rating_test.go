package services

import (
	"testing"

	"github.com/m0derNik/FromsApp-Backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestAverageWithNoRatingsIsZero(t *testing.T) {
	db := newTestDB(t)
	svc := NewRatingService(db)

	owner := createUser(t, db, "owner@example.com", models.RoleUser)
	template := createTemplate(t, db, owner.ID, "T", "", true)

	avg, err := svc.Average(template.ID)
	require.NoError(t, err)
	assert.Zero(t, avg)
}

func TestSubmitOverwritesExistingRating(t *testing.T) {
	db := newTestDB(t)
	svc := NewRatingService(db)

	owner := createUser(t, db, "owner@example.com", models.RoleUser)
	rater := createUser(t, db, "rater@example.com", models.RoleUser)
	template := createTemplate(t, db, owner.ID, "T", "", true)

	require.NoError(t, svc.Submit(template.ID, rater.ID, 3))
	require.NoError(t, svc.Submit(template.ID, rater.ID, 5))

	var ratings []models.Rating
	require.NoError(t, db.Where("template_id = ? AND user_id = ?", template.ID, rater.ID).Find(&ratings).Error)
	require.Len(t, ratings, 1)
	assert.Equal(t, 5, ratings[0].Value)

	avg, err := svc.Average(template.ID)
	require.NoError(t, err)
	assert.Equal(t, 5.0, avg)
}

func TestAverageOverMultipleRaters(t *testing.T) {
	db := newTestDB(t)
	svc := NewRatingService(db)

	owner := createUser(t, db, "owner@example.com", models.RoleUser)
	template := createTemplate(t, db, owner.ID, "T", "", true)

	a := createUser(t, db, "a@example.com", models.RoleUser)
	b := createUser(t, db, "b@example.com", models.RoleUser)
	c := createUser(t, db, "c@example.com", models.RoleUser)
	require.NoError(t, svc.Submit(template.ID, a.ID, 2))
	require.NoError(t, svc.Submit(template.ID, b.ID, 3))
	require.NoError(t, svc.Submit(template.ID, c.ID, 4))

	avg, err := svc.Average(template.ID)
	require.NoError(t, err)
	assert.InDelta(t, 3.0, avg, 1e-9)
}

func TestSubmitResolvesInsertRaceAsUpdate(t *testing.T) {
	db := newTestDB(t)
	svc := NewRatingService(db)

	owner := createUser(t, db, "owner@example.com", models.RoleUser)
	rater := createUser(t, db, "rater@example.com", models.RoleUser)
	template := createTemplate(t, db, owner.ID, "T", "", true)

	// Simulate losing the race: right after Submit's existence check
	// comes back empty, a competing submission lands its row, so the
	// insert collides on the (template_id, user_id) unique index and
	// must be converted to an update.
	seeded := false
	err := db.Callback().Query().After("gorm:query").Register("seed_competing_rating", func(tx *gorm.DB) {
		if seeded || tx.Statement.Table != "ratings" {
			return
		}
		seeded = true
		competing := models.Rating{TemplateID: template.ID, UserID: rater.ID, Value: 2}
		// Session copies tx.Error, which already holds ErrRecordNotFound
		// from the triggering First; clear it so the seed insert runs.
		seeder := tx.Session(&gorm.Session{NewDB: true})
		seeder.Error = nil
		require.NoError(t, seeder.Create(&competing).Error)
	})
	require.NoError(t, err)
	defer db.Callback().Query().Remove("seed_competing_rating")

	require.NoError(t, svc.Submit(template.ID, rater.ID, 5))
	assert.True(t, seeded)

	var ratings []models.Rating
	require.NoError(t, db.Where("template_id = ? AND user_id = ?", template.ID, rater.ID).Find(&ratings).Error)
	require.Len(t, ratings, 1)
	assert.Equal(t, 5, ratings[0].Value)
}

func TestSubmitValidatesRange(t *testing.T) {
	db := newTestDB(t)
	svc := NewRatingService(db)

	owner := createUser(t, db, "owner@example.com", models.RoleUser)
	template := createTemplate(t, db, owner.ID, "T", "", true)

	assert.ErrorIs(t, svc.Submit(template.ID, owner.ID, 0), ErrValidation)
	assert.ErrorIs(t, svc.Submit(template.ID, owner.ID, 6), ErrValidation)
	assert.Zero(t, countRows(t, db, &models.Rating{}))
}

func TestSubmitUnknownTemplateIsNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewRatingService(db)

	rater := createUser(t, db, "rater@example.com", models.RoleUser)
	assert.ErrorIs(t, svc.Submit(99, rater.ID, 4), ErrNotFound)
}
