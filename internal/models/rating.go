package models

type Rating struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	TemplateID uint `gorm:"not null;uniqueIndex:idx_rating_unique" json:"template_id"`
	UserID     uint `gorm:"not null;uniqueIndex:idx_rating_unique" json:"user_id"`
	Value      int  `gorm:"not null" json:"value"`
}
