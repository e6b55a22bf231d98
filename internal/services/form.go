package services

import (
	"errors"
	"fmt"

	"github.com/m0derNik/FromsApp-Backend/internal/models"

	"gorm.io/gorm"
)

type FormService struct {
	db      *gorm.DB
	cascade *CascadeService
}

func NewFormService(db *gorm.DB, cascade *CascadeService) *FormService {
	return &FormService{db: db, cascade: cascade}
}

type FormInput struct {
	TemplateID uint          `json:"template_id" binding:"required"`
	Answers    []AnswerInput `json:"answers" binding:"required,min=1"`
}

type AnswerInput struct {
	QuestionID uint   `json:"question_id" binding:"required"`
	Value      string `json:"value" binding:"max=500"`
}

// List returns a page of the caller's own submissions.
func (s *FormService) List(actor *Actor, page, pageSize int) (*models.PagedResponse[models.FormDto], error) {
	if actor == nil {
		return nil, ErrAuthRequired
	}
	page, pageSize = NormalizePage(page, pageSize)

	query := s.db.Model(&models.Form{}).Where("user_id = ?", actor.ID)
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	var forms []models.Form
	if err := query.Scopes(Paginate(page, pageSize)).Find(&forms).Error; err != nil {
		return nil, err
	}

	items := make([]models.FormDto, 0, len(forms))
	for i := range forms {
		dto, err := projectForm(s.db, &forms[i])
		if err != nil {
			return nil, err
		}
		items = append(items, *dto)
	}

	return &models.PagedResponse[models.FormDto]{
		Items:      items,
		TotalCount: total,
		Page:       page,
		PageSize:   pageSize,
	}, nil
}

func (s *FormService) Get(actor *Actor, id uint) (*models.FormDto, error) {
	var form models.Form
	if err := s.db.First(&form, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if err := Authorize(actor, ActionRead, FormResource(&form)); err != nil {
		return nil, err
	}
	return projectForm(s.db, &form)
}

// Create submits a form against an existing template, storing the form
// and its answers in one transaction.
func (s *FormService) Create(actor *Actor, input FormInput) (*models.FormDto, error) {
	if err := Authorize(actor, ActionCreate, Resource{Kind: "form"}); err != nil {
		return nil, err
	}
	if len(input.Answers) == 0 {
		return nil, ErrValidation
	}

	var count int64
	if err := s.db.Model(&models.Template{}).Where("id = ?", input.TemplateID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, ErrNotFound
	}

	form := models.Form{TemplateID: input.TemplateID, UserID: actor.ID}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&form).Error; err != nil {
			return err
		}
		for _, a := range input.Answers {
			answer := models.Answer{FormID: form.ID, QuestionID: a.QuestionID, Value: a.Value}
			if err := tx.Create(&answer).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransaction, err)
	}
	return projectForm(s.db, &form)
}

// Update replaces the form's answer set wholesale with the supplied
// one, atomically. The form itself keeps its template and submitter.
func (s *FormService) Update(actor *Actor, id uint, answers []AnswerInput) (*models.FormDto, error) {
	var form models.Form
	if err := s.db.First(&form, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if err := Authorize(actor, ActionUpdate, FormResource(&form)); err != nil {
		return nil, err
	}
	if len(answers) == 0 {
		return nil, ErrValidation
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("form_id = ?", id).Delete(&models.Answer{}).Error; err != nil {
			return err
		}
		for _, a := range answers {
			answer := models.Answer{FormID: id, QuestionID: a.QuestionID, Value: a.Value}
			if err := tx.Create(&answer).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransaction, err)
	}
	return projectForm(s.db, &form)
}

// Delete removes the form and its answers.
func (s *FormService) Delete(actor *Actor, id uint) error {
	var form models.Form
	if err := s.db.First(&form, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if err := Authorize(actor, ActionDelete, FormResource(&form)); err != nil {
		return err
	}
	return s.cascade.DeleteForm(id)
}

func projectForm(db *gorm.DB, form *models.Form) (*models.FormDto, error) {
	var answers []models.Answer
	if err := db.Where("form_id = ?", form.ID).Order("id ASC").Find(&answers).Error; err != nil {
		return nil, err
	}
	dtos := make([]models.AnswerDto, 0, len(answers))
	for _, a := range answers {
		dtos = append(dtos, models.AnswerDto{ID: a.ID, QuestionID: a.QuestionID, Value: a.Value})
	}
	return &models.FormDto{
		ID:         form.ID,
		TemplateID: form.TemplateID,
		UserID:     form.UserID,
		CreatedAt:  form.CreatedAt,
		Answers:    dtos,
	}, nil
}
