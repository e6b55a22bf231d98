package services

import (
	"testing"

	"github.com/m0derNik/FromsApp-Backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newFormService(db *gorm.DB) *FormService {
	return NewFormService(db, NewCascadeService(db))
}

func TestCreateFormStoresAnswers(t *testing.T) {
	db := newTestDB(t)
	svc := newFormService(db)

	owner := createUser(t, db, "owner@example.com", models.RoleUser)
	submitter := createUser(t, db, "submitter@example.com", models.RoleUser)
	template := createTemplate(t, db, owner.ID, "T", "", true)
	q1 := createQuestion(t, db, template.ID, "q1")
	q2 := createQuestion(t, db, template.ID, "q2")

	dto, err := svc.Create(actorFor(submitter), FormInput{
		TemplateID: template.ID,
		Answers: []AnswerInput{
			{QuestionID: q1.ID, Value: "yes"},
			{QuestionID: q2.ID, Value: "no"},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, submitter.ID, dto.UserID)
	assert.Equal(t, template.ID, dto.TemplateID)
	require.Len(t, dto.Answers, 2)
	assert.Equal(t, "yes", dto.Answers[0].Value)
	assert.False(t, dto.CreatedAt.IsZero())
}

func TestCreateFormAgainstMissingTemplate(t *testing.T) {
	db := newTestDB(t)
	svc := newFormService(db)

	submitter := createUser(t, db, "submitter@example.com", models.RoleUser)
	_, err := svc.Create(actorFor(submitter), FormInput{
		TemplateID: 99,
		Answers:    []AnswerInput{{QuestionID: 1, Value: "x"}},
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateFormRequiresActorAndAnswers(t *testing.T) {
	db := newTestDB(t)
	svc := newFormService(db)

	owner := createUser(t, db, "owner@example.com", models.RoleUser)
	template := createTemplate(t, db, owner.ID, "T", "", true)

	_, err := svc.Create(nil, FormInput{TemplateID: template.ID, Answers: []AnswerInput{{QuestionID: 1}}})
	assert.ErrorIs(t, err, ErrAuthRequired)

	_, err = svc.Create(actorFor(owner), FormInput{TemplateID: template.ID})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestGetFormOwnership(t *testing.T) {
	db := newTestDB(t)
	svc := newFormService(db)

	owner := createUser(t, db, "owner@example.com", models.RoleUser)
	other := createUser(t, db, "other@example.com", models.RoleUser)
	admin := createUser(t, db, "admin@example.com", models.RoleAdmin)
	template := createTemplate(t, db, owner.ID, "T", "", true)
	form := createForm(t, db, template.ID, owner.ID, 1)

	dto, err := svc.Get(actorFor(owner), form.ID)
	require.NoError(t, err)
	assert.Len(t, dto.Answers, 1)

	_, err = svc.Get(actorFor(other), form.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = svc.Get(nil, form.ID)
	assert.ErrorIs(t, err, ErrAuthRequired)

	_, err = svc.Get(actorFor(admin), form.ID)
	assert.NoError(t, err)

	_, err = svc.Get(actorFor(owner), 999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListFormsIsScopedToCaller(t *testing.T) {
	db := newTestDB(t)
	svc := newFormService(db)

	owner := createUser(t, db, "owner@example.com", models.RoleUser)
	a := createUser(t, db, "a@example.com", models.RoleUser)
	b := createUser(t, db, "b@example.com", models.RoleUser)
	template := createTemplate(t, db, owner.ID, "T", "", true)
	for i := 0; i < 12; i++ {
		createForm(t, db, template.ID, a.ID, 1)
	}
	createForm(t, db, template.ID, b.ID, 1)

	resp, err := svc.List(actorFor(a), 2, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 12, resp.TotalCount)
	assert.Len(t, resp.Items, 2)
	for _, item := range resp.Items {
		assert.Equal(t, a.ID, item.UserID)
	}

	_, err = svc.List(nil, 1, 10)
	assert.ErrorIs(t, err, ErrAuthRequired)
}

func TestUpdateFormReplacesAnswers(t *testing.T) {
	db := newTestDB(t)
	svc := newFormService(db)

	owner := createUser(t, db, "owner@example.com", models.RoleUser)
	template := createTemplate(t, db, owner.ID, "T", "", true)
	form := createForm(t, db, template.ID, owner.ID, 3)

	dto, err := svc.Update(actorFor(owner), form.ID, []AnswerInput{
		{QuestionID: 7, Value: "replaced"},
	})
	require.NoError(t, err)

	require.Len(t, dto.Answers, 1)
	assert.Equal(t, "replaced", dto.Answers[0].Value)
	assert.EqualValues(t, 1, countRows(t, db, &models.Answer{}))
}

func TestUpdateFormOwnership(t *testing.T) {
	db := newTestDB(t)
	svc := newFormService(db)

	owner := createUser(t, db, "owner@example.com", models.RoleUser)
	other := createUser(t, db, "other@example.com", models.RoleUser)
	template := createTemplate(t, db, owner.ID, "T", "", true)
	form := createForm(t, db, template.ID, owner.ID, 1)

	_, err := svc.Update(actorFor(other), form.ID, []AnswerInput{{QuestionID: 1, Value: "x"}})
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = svc.Update(nil, form.ID, []AnswerInput{{QuestionID: 1, Value: "x"}})
	assert.ErrorIs(t, err, ErrAuthRequired)
}

func TestDeleteFormRemovesAnswers(t *testing.T) {
	db := newTestDB(t)
	svc := newFormService(db)

	owner := createUser(t, db, "owner@example.com", models.RoleUser)
	template := createTemplate(t, db, owner.ID, "T", "", true)
	form := createForm(t, db, template.ID, owner.ID, 3)
	keep := createForm(t, db, template.ID, owner.ID, 2)

	require.NoError(t, svc.Delete(actorFor(owner), form.ID))

	assert.EqualValues(t, 1, countRows(t, db, &models.Form{}))
	var n int64
	require.NoError(t, db.Model(&models.Answer{}).Where("form_id = ?", keep.ID).Count(&n).Error)
	assert.EqualValues(t, 2, n)
	require.NoError(t, db.Model(&models.Answer{}).Where("form_id = ?", form.ID).Count(&n).Error)
	assert.Zero(t, n)

	assert.ErrorIs(t, svc.Delete(actorFor(owner), form.ID), ErrNotFound)
}

func TestFormsAcrossTemplatesStayIndependent(t *testing.T) {
	db := newTestDB(t)
	svc := newFormService(db)

	owner := createUser(t, db, "owner@example.com", models.RoleUser)
	template1 := createTemplate(t, db, owner.ID, "T1", "", true)
	template2 := createTemplate(t, db, owner.ID, "T2", "", true)

	var forms []*models.Form
	for i := 0; i < 3; i++ {
		forms = append(forms, createForm(t, db, template1.ID, owner.ID, 1))
	}
	createForm(t, db, template2.ID, owner.ID, 1)

	for _, f := range forms {
		require.NoError(t, svc.Delete(actorFor(owner), f.ID))
	}

	var n int64
	require.NoError(t, db.Model(&models.Form{}).Where("template_id = ?", template2.ID).Count(&n).Error)
	assert.EqualValues(t, 1, n)
}
