package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FeedbackModel struct {
	ID             string         `gorm:"type:uuid;primary_key"`
	SubmissionID   string         `gorm:"type:uuid;not null;index"`
	AuthorID       string         `gorm:"type:uuid;not null"`
	AuthorName     string         `gorm:"type:varchar(255)"`
	Comment        string         `gorm:"type:text;not null"`
	RequiresAction bool           `gorm:"default:false"`
	IsRead         bool           `gorm:"default:false"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      gorm.DeletedAt `gorm:"index"`
}

func (FeedbackModel) TableName() string { return "feedback" }

func (f *FeedbackModel) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.New().String()
	}
	return nil
}
