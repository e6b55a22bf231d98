package models

import "time"

// TemplateDto is the read-side projection of a template: its questions
// plus the aggregated rating, never the raw rating rows.
type TemplateDto struct {
	ID            uint       `json:"id"`
	UserID        uint       `json:"user_id"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	IsPublic      bool       `json:"is_public"`
	Questions     []Question `json:"questions"`
	AverageRating float64    `json:"average_rating"`
}

type FormDto struct {
	ID         uint        `json:"id"`
	TemplateID uint        `json:"template_id"`
	UserID     uint        `json:"user_id"`
	CreatedAt  time.Time   `json:"created_at"`
	Answers    []AnswerDto `json:"answers"`
}

type AnswerDto struct {
	ID         uint   `json:"id"`
	QuestionID uint   `json:"question_id"`
	Value      string `json:"value"`
}
