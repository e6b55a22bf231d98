package services

import (
	"testing"

	"github.com/m0derNik/FromsApp-Backend/internal/database"
	"github.com/m0derNik/FromsApp-Backend/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.ConnectSQLite(":memory:")
	require.NoError(t, err)

	// A pooled second connection would see its own empty :memory: db.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Template{},
		&models.Question{},
		&models.Form{},
		&models.Answer{},
		&models.Rating{},
	))
	return db
}

func createUser(t *testing.T, db *gorm.DB, email, role string) *models.User {
	t.Helper()
	user := &models.User{
		Email:        email,
		Username:     email,
		PasswordHash: "x",
		Role:         role,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createTemplate(t *testing.T, db *gorm.DB, ownerID uint, title, description string, public bool) *models.Template {
	t.Helper()
	template := &models.Template{
		UserID:      ownerID,
		Title:       title,
		Description: description,
		IsPublic:    public,
	}
	require.NoError(t, db.Create(template).Error)
	return template
}

func createQuestion(t *testing.T, db *gorm.DB, templateID uint, text string) *models.Question {
	t.Helper()
	question := &models.Question{
		TemplateID: templateID,
		Text:       text,
		Type:       models.QuestionTypeText,
	}
	require.NoError(t, db.Create(question).Error)
	return question
}

func createForm(t *testing.T, db *gorm.DB, templateID, userID uint, answers int) *models.Form {
	t.Helper()
	form := &models.Form{TemplateID: templateID, UserID: userID}
	require.NoError(t, db.Create(form).Error)
	for i := 0; i < answers; i++ {
		answer := &models.Answer{FormID: form.ID, QuestionID: 1, Value: "v"}
		require.NoError(t, db.Create(answer).Error)
	}
	return form
}

func createRating(t *testing.T, db *gorm.DB, templateID, userID uint, value int) *models.Rating {
	t.Helper()
	rating := &models.Rating{TemplateID: templateID, UserID: userID, Value: value}
	require.NoError(t, db.Create(rating).Error)
	return rating
}

func countRows(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(model).Count(&n).Error)
	return n
}

func actorFor(user *models.User) *Actor {
	return &Actor{ID: user.ID, Role: user.Role}
}
