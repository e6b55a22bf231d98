package models

type Question struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	TemplateID uint   `gorm:"not null;index" json:"template_id"`
	Text       string `gorm:"type:text;not null" json:"text"`
	Type       string `gorm:"size:20;not null;default:'text'" json:"type"`
	// Options holds the serialized choice list for multipleChoice questions.
	Options string `gorm:"size:500" json:"options,omitempty"`
}

const (
	QuestionTypeText           = "text"
	QuestionTypeMultipleChoice = "multipleChoice"
)
