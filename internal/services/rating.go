package services

import (
	"errors"

	"github.com/m0derNik/FromsApp-Backend/internal/models"

	"gorm.io/gorm"
)

type RatingService struct {
	db *gorm.DB
}

func NewRatingService(db *gorm.DB) *RatingService {
	return &RatingService{db: db}
}

// Submit records the actor's rating for a template, overwriting any
// previous rating by the same user. The check-then-write runs in one
// transaction; if a concurrent submission wins the insert race, the
// unique (template_id, user_id) index turns ours into a duplicate-key
// error and we retry as an update instead of surfacing a conflict.
func (s *RatingService) Submit(templateID, userID uint, value int) error {
	if value < 1 || value > 5 {
		return ErrValidation
	}

	var count int64
	if err := s.db.Model(&models.Template{}).Where("id = ?", templateID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return ErrNotFound
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		var existing models.Rating
		err := tx.Where("template_id = ? AND user_id = ?", templateID, userID).
			First(&existing).Error
		if err == nil {
			return tx.Model(&existing).Update("value", value).Error
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		// The insert runs under a savepoint: on Postgres a failed
		// insert aborts the surrounding transaction, which would make
		// the retry below impossible.
		rating := models.Rating{TemplateID: templateID, UserID: userID, Value: value}
		insertErr := tx.Transaction(func(tx *gorm.DB) error {
			return tx.Create(&rating).Error
		})
		if errors.Is(insertErr, gorm.ErrDuplicatedKey) {
			return tx.Model(&models.Rating{}).
				Where("template_id = ? AND user_id = ?", templateID, userID).
				Update("value", value).Error
		}
		return insertErr
	})
}

// Average returns the arithmetic mean of all ratings for a template,
// or 0 when it has none.
func (s *RatingService) Average(templateID uint) (float64, error) {
	var avg float64
	err := s.db.Model(&models.Rating{}).
		Where("template_id = ?", templateID).
		Select("COALESCE(AVG(value), 0)").
		Scan(&avg).Error
	return avg, err
}
