package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/m0derNik/FromsApp-Backend/internal/models"

	"gorm.io/gorm"
)

type TemplateService struct {
	db      *gorm.DB
	ratings *RatingService
	cascade *CascadeService
}

func NewTemplateService(db *gorm.DB, ratings *RatingService, cascade *CascadeService) *TemplateService {
	return &TemplateService{db: db, ratings: ratings, cascade: cascade}
}

type TemplateInput struct {
	Title       string          `json:"title" binding:"required,min=1,max=255"`
	Description string          `json:"description" binding:"max=500"`
	IsPublic    bool            `json:"is_public"`
	Questions   []QuestionInput `json:"questions" binding:"required,min=1"`
}

type QuestionInput struct {
	Text    string `json:"text" binding:"required,min=1,max=200"`
	Type    string `json:"type" binding:"required"`
	Options string `json:"options" binding:"max=500"`
}

func validateTemplateInput(input TemplateInput) error {
	if strings.TrimSpace(input.Title) == "" {
		return ErrValidation
	}
	if len(input.Questions) == 0 {
		return ErrValidation
	}
	for _, q := range input.Questions {
		if strings.TrimSpace(q.Text) == "" {
			return ErrValidation
		}
		if q.Type != models.QuestionTypeText && q.Type != models.QuestionTypeMultipleChoice {
			return ErrValidation
		}
	}
	return nil
}

// List returns a page of public templates. No actor is needed.
func (s *TemplateService) List(page, pageSize int) (*models.PagedResponse[models.TemplateDto], error) {
	return s.listPage(s.db.Model(&models.Template{}).Where("is_public = ?", true), page, pageSize)
}

// Search filters public templates whose title or description contains
// the query as a case-insensitive substring. A blank query degrades to
// the plain public listing.
func (s *TemplateService) Search(query string, page, pageSize int) (*models.PagedResponse[models.TemplateDto], error) {
	if strings.TrimSpace(query) == "" {
		return s.List(page, pageSize)
	}
	pattern := "%" + escapeLike(strings.ToLower(query)) + "%"
	q := s.db.Model(&models.Template{}).
		Where("is_public = ?", true).
		Where(`LOWER(title) LIKE ? ESCAPE '\' OR LOWER(description) LIKE ? ESCAPE '\'`, pattern, pattern)
	return s.listPage(q, page, pageSize)
}

// escapeLike neutralizes LIKE metacharacters so the query matches them
// literally. SQLite has no default escape character, hence the explicit
// ESCAPE clause above.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func (s *TemplateService) listPage(query *gorm.DB, page, pageSize int) (*models.PagedResponse[models.TemplateDto], error) {
	page, pageSize = NormalizePage(page, pageSize)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	var templates []models.Template
	if err := query.Scopes(Paginate(page, pageSize)).Find(&templates).Error; err != nil {
		return nil, err
	}

	items := make([]models.TemplateDto, 0, len(templates))
	for i := range templates {
		dto, err := s.project(&templates[i])
		if err != nil {
			return nil, err
		}
		items = append(items, *dto)
	}

	return &models.PagedResponse[models.TemplateDto]{
		Items:      items,
		TotalCount: total,
		Page:       page,
		PageSize:   pageSize,
	}, nil
}

// Get returns one template with its questions and average rating.
// Non-public templates are visible only to their owner or an Admin.
func (s *TemplateService) Get(actor *Actor, id uint) (*models.TemplateDto, error) {
	var template models.Template
	if err := s.db.First(&template, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if err := Authorize(actor, ActionRead, TemplateResource(&template)); err != nil {
		return nil, err
	}
	return s.project(&template)
}

func (s *TemplateService) Create(actor *Actor, input TemplateInput) (*models.TemplateDto, error) {
	if err := Authorize(actor, ActionCreate, Resource{Kind: "template"}); err != nil {
		return nil, err
	}
	if err := validateTemplateInput(input); err != nil {
		return nil, err
	}

	template := models.Template{
		UserID:      actor.ID,
		Title:       input.Title,
		Description: input.Description,
		IsPublic:    input.IsPublic,
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&template).Error; err != nil {
			return err
		}
		for _, q := range input.Questions {
			question := models.Question{
				TemplateID: template.ID,
				Text:       q.Text,
				Type:       q.Type,
				Options:    q.Options,
			}
			if err := tx.Create(&question).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransaction, err)
	}
	return s.project(&template)
}

// Update rewrites the template fields and replaces its question set
// wholesale with the caller-supplied one, atomically.
func (s *TemplateService) Update(actor *Actor, id uint, input TemplateInput) (*models.TemplateDto, error) {
	var template models.Template
	if err := s.db.First(&template, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if err := Authorize(actor, ActionUpdate, TemplateResource(&template)); err != nil {
		return nil, err
	}
	if err := validateTemplateInput(input); err != nil {
		return nil, err
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		template.Title = input.Title
		template.Description = input.Description
		template.IsPublic = input.IsPublic
		if err := tx.Save(&template).Error; err != nil {
			return err
		}
		if err := tx.Where("template_id = ?", id).Delete(&models.Question{}).Error; err != nil {
			return err
		}
		for _, q := range input.Questions {
			question := models.Question{
				TemplateID: id,
				Text:       q.Text,
				Type:       q.Type,
				Options:    q.Options,
			}
			if err := tx.Create(&question).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransaction, err)
	}
	return s.project(&template)
}

// Delete removes the template and its full dependent tree.
func (s *TemplateService) Delete(actor *Actor, id uint) error {
	var template models.Template
	if err := s.db.First(&template, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if err := Authorize(actor, ActionDelete, TemplateResource(&template)); err != nil {
		return err
	}
	return s.cascade.DeleteTemplate(id)
}

// ListForms returns every form submitted against a template. Only the
// template owner or an Admin may read other users' submissions.
func (s *TemplateService) ListForms(actor *Actor, id uint) ([]models.FormDto, error) {
	var template models.Template
	if err := s.db.First(&template, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if err := Authorize(actor, ActionRead, Resource{Kind: "form", OwnerID: template.UserID}); err != nil {
		return nil, err
	}

	var forms []models.Form
	if err := s.db.Where("template_id = ?", id).Order("id ASC").Find(&forms).Error; err != nil {
		return nil, err
	}

	dtos := make([]models.FormDto, 0, len(forms))
	for i := range forms {
		dto, err := projectForm(s.db, &forms[i])
		if err != nil {
			return nil, err
		}
		dtos = append(dtos, *dto)
	}
	return dtos, nil
}

func (s *TemplateService) project(template *models.Template) (*models.TemplateDto, error) {
	var questions []models.Question
	if err := s.db.Where("template_id = ?", template.ID).Order("id ASC").Find(&questions).Error; err != nil {
		return nil, err
	}
	avg, err := s.ratings.Average(template.ID)
	if err != nil {
		return nil, err
	}
	return &models.TemplateDto{
		ID:            template.ID,
		UserID:        template.UserID,
		Title:         template.Title,
		Description:   template.Description,
		IsPublic:      template.IsPublic,
		Questions:     questions,
		AverageRating: avg,
	}, nil
}
