package models

type Answer struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	FormID     uint   `gorm:"not null;index" json:"form_id"`
	QuestionID uint   `gorm:"not null;index" json:"question_id"`
	Value      string `gorm:"size:500" json:"value"`
}
